// SPDX-License-Identifier: MIT

package classes

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/burnside/oracle"
	"github.com/katalvlaran/burnside/perm"
)

// Table is the equivalence-class cache: an append-only interning table of
// canonical subgroup representatives, bucketed by Key.
//
// Consumers only ever see Normalize and read accessors; the buckets are
// never exposed. One mutex guards buckets, representatives and names.
type Table struct {
	mu      sync.Mutex
	oracle  oracle.Oracle
	logger  *zap.Logger
	ambient func(h *perm.Group) *perm.Group
	admit   func(h *perm.Group) error
	render  func(rep *perm.Group) string

	buckets map[Key][]int
	reps    []*perm.Group
	names   map[int]string
}

// newTable builds a table. ambient resolves the group in which a subgroup
// is conjugated; admit rejects groups that do not belong to the index set;
// render formats an unnamed representative.
func newTable(
	ambient func(*perm.Group) *perm.Group,
	admit func(*perm.Group) error,
	render func(*perm.Group) string,
	o options,
) *Table {
	return &Table{
		oracle:  o.oracle,
		logger:  o.logger,
		ambient: ambient,
		admit:   admit,
		render:  render,
		buckets: make(map[Key][]int),
		names:   make(map[int]string),
	}
}

// Normalize returns the class of h, interning h as a new representative
// when no conjugate is cached yet. The returned class wraps the first
// subgroup of the class that was ever normalized.
//
// Returns ErrNilGroup for a nil h, and ErrNotSubgroup (or ErrNotAtomic for
// an atomic table) when h does not belong to the table's index set. A
// rejected group is never interned.
//
// Implementation:
//   - Stage 1: admit h and compute Key{Order, Degree}.
//   - Stage 2: scan the bucket, one oracle query per representative.
//   - Stage 3: on a miss, append h to the bucket.
//
// Complexity: O(b) oracle calls where b is the bucket size.
func (t *Table) Normalize(h *perm.Group) (Class, error) {
	if h == nil {
		return Class{}, ErrNilGroup
	}
	if err := t.admit(h); err != nil {
		return Class{}, err
	}

	return t.intern(h), nil
}

// intern is Normalize for groups already known to be admissible.
func (t *Table) intern(h *perm.Group) Class {
	key := Key{Order: h.Order(), Degree: h.Degree()}
	g := t.ambient(h)

	t.mu.Lock()
	defer t.mu.Unlock()

	// 1. Hit: some cached representative is conjugate to h
	for _, id := range t.buckets[key] {
		if t.reps[id] == h || t.oracle.IsConjugate(g, t.reps[id], h) {
			return Class{table: t, id: id}
		}
	}

	// 2. Miss: h becomes the representative of a new class
	id := len(t.reps)
	t.reps = append(t.reps, h)
	t.buckets[key] = append(t.buckets[key], id)
	t.logger.Debug("new conjugacy class",
		zap.Int("id", id),
		zap.Int("order", key.Order),
		zap.Int("degree", key.Degree),
		zap.Int("bucket", len(t.buckets[key])),
	)

	return Class{table: t, id: id}
}

// Len returns the number of classes interned so far.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.reps)
}

// Buckets returns the number of representatives cached under each key.
func (t *Table) Buckets() map[Key]int {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[Key]int, len(t.buckets))
	for k, ids := range t.buckets {
		out[k] = len(ids)
	}

	return out
}

// SetName assigns a display name to c.
func (t *Table) SetName(c Class, name string) error {
	if c.table != t {
		return fmt.Errorf("%w: %v", ErrForeignClass, c)
	}
	if name == "" {
		return ErrEmptyName
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.names[c.id] = name

	return nil
}

// ClearName removes the display name of c, if any.
func (t *Table) ClearName(c Class) error {
	if c.table != t {
		return fmt.Errorf("%w: %v", ErrForeignClass, c)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.names, c.id)

	return nil
}

func (t *Table) rep(id int) *perm.Group {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.reps[id]
}

func (t *Table) name(id int) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, ok := t.names[id]

	return n, ok
}
