// SPDX-License-Identifier: MIT

package classes

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/burnside/perm"
)

// MolecularClasses is the free commutative monoid generated by the atomic
// classes. Its elements are the molecular classes: conjugacy classes of
// subgroups of S_n, identified with the multiset of atomic classes of the
// blocks of their disjoint direct product decomposition.
type MolecularClasses struct {
	atoms *AtomicClasses

	mu    sync.Mutex
	ids   map[string]int
	forms []form
}

// form is an interned molecule: its atom id → power pairs sorted by atom id,
// and their canonical encoding.
type form struct {
	key   string
	terms []term
}

type term struct {
	atom  int
	power int
}

// Factor is one atomic class together with its multiplicity.
type Factor struct {
	Atom  Class
	Power int
}

// Molecule is a molecular class. Molecule values are comparable; two
// molecules of the same monoid are equal iff they have the same factors.
// The zero Molecule belongs to no monoid.
type Molecule struct {
	set *MolecularClasses
	id  int
}

// NewMolecular returns the monoid of molecular classes over a fresh set of
// atomic classes.
func NewMolecular(opts ...Option) *MolecularClasses {
	m := &MolecularClasses{atoms: NewAtomic(opts...), ids: make(map[string]int)}
	// the identity is interned first, as id 0
	m.fromCounts(nil)

	return m
}

// Atoms returns the underlying atomic classes.
func (m *MolecularClasses) Atoms() *AtomicClasses { return m.atoms }

// One returns the identity: the class of S_0, with no factors.
func (m *MolecularClasses) One() Molecule { return Molecule{set: m, id: 0} }

// Gen returns the molecule made of the single atom c.
// Returns ErrForeignClass if c was not produced by m.Atoms().
func (m *MolecularClasses) Gen(c Class) (Molecule, error) {
	if !m.atoms.Owns(c) {
		return Molecule{}, fmt.Errorf("%w: %v", ErrForeignClass, c)
	}

	return m.fromCounts(map[int]int{c.id: 1}), nil
}

// Construct returns the molecular class of h.
//
// Implementation:
//   - Stage 1: split h into its disjoint direct product decomposition.
//   - Stage 2: project every block to a group on 0..k-1.
//   - Stage 3: intern each projection as an atomic class and count.
//
// A group of degree 0 has no blocks and yields One.
func (m *MolecularClasses) Construct(h *perm.Group) (Molecule, error) {
	if h == nil {
		return Molecule{}, fmt.Errorf("%w: nil group", ErrConversion)
	}

	counts := make(map[int]int)
	for _, part := range h.DisjointDirectProductDecomposition() {
		block, err := h.Project(part)
		if err != nil {
			return Molecule{}, fmt.Errorf("%w %v: %w", ErrConversion, h, err)
		}
		atom, err := m.atoms.Construct(block)
		if err != nil {
			return Molecule{}, err
		}
		counts[atom.id]++
	}

	return m.fromCounts(counts), nil
}

// Contains reports whether h can be converted. Every permutation group is
// a molecular class.
func (m *MolecularClasses) Contains(h *perm.Group) bool { return h != nil }

// Owns reports whether x belongs to m.
func (m *MolecularClasses) Owns(x Molecule) bool { return x.set == m }

// Grade returns the degree of x.
func (m *MolecularClasses) Grade(x Molecule) int { return x.Degree() }

// OfDegree yields the molecular classes of degree n, one per conjugacy
// class of subgroups of S_n, by increasing order of the subgroup.
func (m *MolecularClasses) OfDegree(n int) iter.Seq[Molecule] {
	return func(yield func(Molecule) bool) {
		if n < 0 {
			return
		}
		seen := make(map[Molecule]struct{})
		for _, h := range m.atoms.symmetricGroup(n).ConjugacyClassesSubgroups() {
			x, err := m.Construct(h)
			if err != nil {
				continue
			}
			if _, dup := seen[x]; dup {
				continue
			}
			seen[x] = struct{}{}
			if !yield(x) {
				return
			}
		}
	}
}

func (m *MolecularClasses) String() string {
	return "Set of all molecular conjugacy classes on 1 sort"
}

// fromCounts interns the molecule with the given atom id → power
// multiplicities. Its canonical encoding is "id^power;" sorted by id.
func (m *MolecularClasses) fromCounts(counts map[int]int) Molecule {
	terms := make([]term, 0, len(counts))
	for id, p := range counts {
		if p > 0 {
			terms = append(terms, term{atom: id, power: p})
		}
	}
	slices.SortFunc(terms, func(a, b term) int { return cmp.Compare(a.atom, b.atom) })

	var sb strings.Builder
	for _, t := range terms {
		sb.WriteString(strconv.Itoa(t.atom))
		sb.WriteByte('^')
		sb.WriteString(strconv.Itoa(t.power))
		sb.WriteByte(';')
	}
	key := sb.String()

	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.ids[key]; ok {
		return Molecule{set: m, id: id}
	}
	id := len(m.forms)
	m.forms = append(m.forms, form{key: key, terms: terms})
	m.ids[key] = id

	return Molecule{set: m, id: id}
}

func (m *MolecularClasses) form(id int) form {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.forms[id]
}

// Monoid returns the monoid x belongs to.
func (x Molecule) Monoid() *MolecularClasses { return x.set }

// IsOne reports whether x is the identity.
func (x Molecule) IsOne() bool { return x.set != nil && x.id == 0 }

// Equal reports whether x and y are the same molecule of the same monoid.
func (x Molecule) Equal(y Molecule) bool { return x.set != nil && x == y }

// Mul returns the product x·y, adding multiplicities.
// It panics if x and y belong to different monoids.
func (x Molecule) Mul(y Molecule) Molecule {
	if x.set == nil || x.set != y.set {
		panic("classes: product of molecules from different monoids")
	}
	counts := x.counts()
	for id, p := range y.counts() {
		counts[id] += p
	}

	return x.set.fromCounts(counts)
}

// Factors returns the atoms of x with their multiplicities, ordered by
// degree and then by interning order.
func (x Molecule) Factors() []Factor {
	if x.set == nil {
		return nil
	}
	terms := x.set.form(x.id).terms
	out := make([]Factor, 0, len(terms))
	for _, t := range terms {
		out = append(out, Factor{Atom: Class{table: x.set.atoms.table, id: t.atom}, Power: t.power})
	}
	slices.SortFunc(out, func(a, b Factor) int {
		return cmp.Or(cmp.Compare(a.Atom.Degree(), b.Atom.Degree()), cmp.Compare(a.Atom.id, b.Atom.id))
	})

	return out
}

// Degree returns Σ power·degree over the factors of x.
func (x Molecule) Degree() int {
	n := 0
	for _, f := range x.Factors() {
		n += f.Power * f.Atom.Degree()
	}

	return n
}

// Subgroup returns a representative subgroup of S_n: the direct product of
// the factors' representatives on consecutive blocks of points.
func (x Molecule) Subgroup() *perm.Group {
	var blocks []*perm.Group
	for _, f := range x.Factors() {
		for range f.Power {
			blocks = append(blocks, f.Atom.Subgroup())
		}
	}

	return perm.DirectProduct(blocks...)
}

// Hash returns a hash of the canonical encoding of x.
func (x Molecule) Hash() uint64 {
	if x.set == nil {
		return 0
	}

	return xxhash.Sum64String(x.set.form(x.id).key)
}

// String renders x as "1" or as factors joined by "*", with "^k" for
// multiplicities above one, e.g. "{1, [()]}^3*{2, [(1,2)]}".
func (x Molecule) String() string {
	if x.set == nil {
		return "<nil molecule>"
	}
	if x.IsOne() {
		return "1"
	}
	fs := x.Factors()
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.Atom.String()
		if f.Power > 1 {
			parts[i] += "^" + strconv.Itoa(f.Power)
		}
	}

	return strings.Join(parts, "*")
}

func (x Molecule) counts() map[int]int {
	terms := x.set.form(x.id).terms
	out := make(map[int]int, len(terms))
	for _, t := range terms {
		out[t.atom] = t.power
	}

	return out
}
