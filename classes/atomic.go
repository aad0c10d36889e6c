// SPDX-License-Identifier: MIT

package classes

import (
	"fmt"
	"iter"
	"sync"

	"github.com/katalvlaran/burnside/perm"
)

// AtomicClasses is the infinite set of atomic conjugacy classes: classes of
// subgroups of S_n whose disjoint direct product decomposition has exactly
// one part. It is graded by the degree n, and the ambient group of a
// class of degree n is S_n.
type AtomicClasses struct {
	table *Table

	mu        sync.Mutex
	symmetric map[int]*perm.Group
}

// NewAtomic returns an empty set of atomic classes.
func NewAtomic(opts ...Option) *AtomicClasses {
	a := &AtomicClasses{symmetric: make(map[int]*perm.Group)}
	ambient := func(h *perm.Group) *perm.Group { return a.symmetricGroup(h.Degree()) }
	admit := func(h *perm.Group) error {
		if !isAtomic(h) {
			return fmt.Errorf("%w: %v", ErrNotAtomic, h)
		}

		return nil
	}
	a.table = newTable(ambient, admit, renderAtomic, buildOptions(opts))

	return a
}

// symmetricGroup returns S_n, built once per degree.
func (a *AtomicClasses) symmetricGroup(n int) *perm.Group {
	a.mu.Lock()
	defer a.mu.Unlock()
	if g, ok := a.symmetric[n]; ok {
		return g
	}
	g := perm.Symmetric(n)
	a.symmetric[n] = g

	return g
}

// Table returns the backing cache.
func (a *AtomicClasses) Table() *Table { return a.table }

// Construct returns the atomic class of h. It fails with ErrConversion
// (wrapping ErrNotAtomic) when h decomposes into more than one part.
func (a *AtomicClasses) Construct(h *perm.Group) (Class, error) {
	if h == nil {
		return Class{}, fmt.Errorf("%w: nil group", ErrConversion)
	}
	c, err := a.table.Normalize(h)
	if err != nil {
		return Class{}, fmt.Errorf("%w %v into %v: %w", ErrConversion, h, a, err)
	}

	return c, nil
}

// Contains reports whether h is atomic.
func (a *AtomicClasses) Contains(h *perm.Group) bool {
	return h != nil && isAtomic(h)
}

// Owns reports whether c was produced by this set.
func (a *AtomicClasses) Owns(c Class) bool { return c.table == a.table }

// Grade returns the degree of c.
func (a *AtomicClasses) Grade(c Class) int { return c.Degree() }

// OfDegree yields the atomic classes of degree n, by increasing order.
func (a *AtomicClasses) OfDegree(n int) iter.Seq[Class] {
	return func(yield func(Class) bool) {
		if n < 0 {
			return
		}
		for _, h := range a.symmetricGroup(n).ConjugacyClassesSubgroups() {
			if !isAtomic(h) {
				continue
			}
			if !yield(a.table.intern(h)) {
				return
			}
		}
	}
}

func (a *AtomicClasses) String() string {
	return "Set of all atomic conjugacy classes on 1 sort"
}

func isAtomic(h *perm.Group) bool {
	return len(h.DisjointDirectProductDecomposition()) == 1
}

func renderAtomic(rep *perm.Group) string {
	return fmt.Sprintf("{%d, %s}", rep.Degree(), perm.FormatGenerators(rep.SmallGenerators()))
}
