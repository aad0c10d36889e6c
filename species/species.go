// SPDX-License-Identifier: MIT

package species

import (
	"cmp"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/burnside/classes"
	"github.com/katalvlaran/burnside/linear"
	"github.com/katalvlaran/burnside/oracle"
	"github.com/katalvlaran/burnside/perm"
)

var (
	// ErrForeignElement indicates a molecule of another decomposition.
	ErrForeignElement = errors.New("species: element of another decomposition")

	// ErrNegativePower indicates Pow with a negative exponent.
	ErrNegativePower = errors.New("species: negative exponent")
)

// Option configures a Decomposition.
type Option func(*options)

type options struct {
	oracle oracle.Oracle
	logger *zap.Logger
}

// WithOracle sets the conjugacy oracle used to intern atomic classes.
func WithOracle(o oracle.Oracle) Option {
	return func(opts *options) {
		if o != nil {
			opts.oracle = o
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(opts *options) {
		if l != nil {
			opts.logger = l
		}
	}
}

// Decomposition is the polynomial molecular decomposition with
// coefficients in C.
type Decomposition[C linear.Scalar] struct {
	indices *classes.MolecularClasses
	logger  *zap.Logger
}

// New returns the decomposition over the integers.
func New(opts ...Option) *Decomposition[int64] {
	return NewOver[int64](opts...)
}

// NewOver returns the decomposition with coefficients in C.
func NewOver[C linear.Scalar](opts ...Option) *Decomposition[C] {
	o := options{oracle: oracle.Exhaustive{}, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Decomposition[C]{
		indices: classes.NewMolecular(classes.WithOracle(o.oracle), classes.WithLogger(o.logger)),
		logger:  o.logger,
	}
}

// Indices returns the molecular classes indexing the basis.
func (d *Decomposition[C]) Indices() *classes.MolecularClasses { return d.indices }

// Basis returns the basis element of the molecular class of h.
func (d *Decomposition[C]) Basis(h *perm.Group) (linear.Combination[classes.Molecule, C], error) {
	m, err := d.indices.Construct(h)
	if err != nil {
		return linear.Combination[classes.Molecule, C]{}, err
	}
	d.logger.Debug("molecular class",
		zap.Int("degree", h.Degree()),
		zap.Int("order", h.Order()),
		zap.Stringer("molecule", m),
	)

	return linear.Term(m, C(1)), nil
}

// OfDegree returns every basis element of degree n.
func (d *Decomposition[C]) OfDegree(n int) []linear.Combination[classes.Molecule, C] {
	var out []linear.Combination[classes.Molecule, C]
	for m := range d.indices.OfDegree(n) {
		out = append(out, linear.Term(m, C(1)))
	}

	return out
}

// OneBasis returns the class of S_0.
func (d *Decomposition[C]) OneBasis() classes.Molecule { return d.indices.One() }

// One returns the unit.
func (d *Decomposition[C]) One() linear.Combination[classes.Molecule, C] {
	return linear.Term(d.indices.One(), C(1))
}

// ProductOnBasis returns the product of two molecular classes: the class
// of the disjoint union of their actions.
// Returns ErrForeignElement if x or y belongs to another decomposition.
func (d *Decomposition[C]) ProductOnBasis(x, y classes.Molecule) (linear.Combination[classes.Molecule, C], error) {
	if !d.indices.Owns(x) || !d.indices.Owns(y) {
		return linear.Combination[classes.Molecule, C]{}, fmt.Errorf("%w: %v * %v", ErrForeignElement, x, y)
	}

	return linear.Term(x.Mul(y), C(1)), nil
}

// Mul returns a·b.
func (d *Decomposition[C]) Mul(a, b linear.Combination[classes.Molecule, C]) (linear.Combination[classes.Molecule, C], error) {
	return linear.Product(a, b, d.ProductOnBasis)
}

// Add returns a + b.
func (d *Decomposition[C]) Add(a, b linear.Combination[classes.Molecule, C]) linear.Combination[classes.Molecule, C] {
	return a.Add(b)
}

// Scale returns s·a.
func (d *Decomposition[C]) Scale(a linear.Combination[classes.Molecule, C], s C) linear.Combination[classes.Molecule, C] {
	return a.Scale(s)
}

// Pow returns a^n by repeated squaring, with a^0 = 1.
// Returns ErrNegativePower for n < 0.
func (d *Decomposition[C]) Pow(a linear.Combination[classes.Molecule, C], n int) (linear.Combination[classes.Molecule, C], error) {
	if n < 0 {
		return linear.Combination[classes.Molecule, C]{}, fmt.Errorf("%w: %d", ErrNegativePower, n)
	}

	return linear.Power(a, d.One(), n, d.ProductOnBasis)
}

// Homogeneous returns the degree-n part of a.
func (d *Decomposition[C]) Homogeneous(a linear.Combination[classes.Molecule, C], n int) linear.Combination[classes.Molecule, C] {
	terms := make(map[classes.Molecule]C)
	for m, c := range a.Terms() {
		if m.Degree() == n {
			terms[m] = c
		}
	}

	return linear.New(terms)
}

// Format renders a with terms sorted by degree, e.g. "1 + 2*{1, [()]}^2".
func (d *Decomposition[C]) Format(a linear.Combination[classes.Molecule, C]) string {
	return a.Format(classes.Molecule.String, func(x, y classes.Molecule) int {
		return cmp.Or(cmp.Compare(x.Degree(), y.Degree()), strings.Compare(x.String(), y.String()))
	})
}

func (d *Decomposition[C]) String() string {
	return "Polynomial Molecular Decomposition"
}
