// SPDX-License-Identifier: MIT

package classes

import (
	"errors"
	"iter"

	"go.uber.org/zap"

	"github.com/katalvlaran/burnside/oracle"
	"github.com/katalvlaran/burnside/perm"
)

var (
	// ErrConversion is returned when a value cannot be interpreted as a basis index.
	ErrConversion = errors.New("classes: unable to convert")

	// ErrNotSubgroup indicates a group that is not a subgroup of the ambient group.
	ErrNotSubgroup = errors.New("classes: not a subgroup")

	// ErrNotAtomic indicates a group whose disjoint direct product decomposition
	// has more than one part (or none).
	ErrNotAtomic = errors.New("classes: not atomic")

	// ErrForeignClass indicates a class that belongs to a different table.
	ErrForeignClass = errors.New("classes: class belongs to another table")

	// ErrEmptyName indicates an attempt to assign an empty display name.
	ErrEmptyName = errors.New("classes: empty name")

	// ErrNilGroup indicates a nil group where a group is required.
	ErrNilGroup = errors.New("classes: group is nil")
)

// Key is the cheap invariant used to bucket subgroups before asking the
// oracle. Conjugate subgroups always share a Key.
type Key struct {
	Order  int
	Degree int
}

// Normalizer maps a subgroup to the class of its conjugacy class.
type Normalizer interface {
	Normalize(h *perm.Group) (Class, error)
}

// Basis converts subgroups into basis indices of type K.
type Basis[K comparable] interface {
	Construct(h *perm.Group) (K, error)
	Contains(h *perm.Group) bool
}

// Enumerable is a finite, restartable enumeration of indices.
type Enumerable[K comparable] interface {
	All() iter.Seq[K]
}

// Graded is an infinite set of indices graded by degree, enumerable one
// degree at a time.
type Graded[K comparable] interface {
	Grade(k K) int
	OfDegree(n int) iter.Seq[K]
}

var (
	_ Normalizer        = (*Table)(nil)
	_ Basis[Class]      = (*ConjugacyClasses)(nil)
	_ Enumerable[Class] = (*ConjugacyClasses)(nil)
	_ Basis[Class]      = (*AtomicClasses)(nil)
	_ Graded[Class]     = (*AtomicClasses)(nil)
	_ Basis[Molecule]   = (*MolecularClasses)(nil)
	_ Graded[Molecule]  = (*MolecularClasses)(nil)
)

// Option configures a Table and the index sets built on it.
type Option func(*options)

type options struct {
	oracle oracle.Oracle
	logger *zap.Logger
}

func defaultOptions() options {
	return options{
		oracle: oracle.Exhaustive{},
		logger: zap.NewNop(),
	}
}

// WithOracle sets the conjugacy oracle. A nil oracle is ignored.
func WithOracle(o oracle.Oracle) Option {
	return func(opts *options) {
		if o != nil {
			opts.oracle = o
		}
	}
}

// WithLogger sets the logger used for cache activity. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(opts *options) {
		if l != nil {
			opts.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
