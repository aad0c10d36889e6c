// SPDX-License-Identifier: MIT

package ring

import (
	"cmp"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/burnside/classes"
	"github.com/katalvlaran/burnside/linear"
	"github.com/katalvlaran/burnside/oracle"
	"github.com/katalvlaran/burnside/perm"
)

// Ring is the Burnside ring of a finite permutation group with
// coefficients in C. A Ring is safe for concurrent use.
type Ring[C linear.Scalar] struct {
	group   *perm.Group
	indices *classes.ConjugacyClasses
	oracle  oracle.Oracle
	logger  *zap.Logger
	product ProductMethod
	one     classes.Class

	mu       sync.Mutex
	products map[[2]int]linear.Combination[classes.Class, C]
}

// New returns the Burnside ring of g over the integers.
// Returns ErrNilGroup if g is nil.
func New(g *perm.Group, opts ...Option) (*Ring[int64], error) {
	return NewOver[int64](g, opts...)
}

// NewOver returns the Burnside ring of g with coefficients in C.
// The class of g is named "1".
func NewOver[C linear.Scalar](g *perm.Group, opts ...Option) (*Ring[C], error) {
	// 1. Validate
	if g == nil {
		return nil, ErrNilGroup
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Basis index set
	indices, err := classes.New(g, classes.WithOracle(o.oracle), classes.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}
	one, err := indices.Construct(g)
	if err != nil {
		return nil, err
	}
	if err = indices.Table().SetName(one, "1"); err != nil {
		return nil, err
	}

	return &Ring[C]{
		group:    g,
		indices:  indices,
		oracle:   o.oracle,
		logger:   o.logger,
		product:  o.product,
		one:      one,
		products: make(map[[2]int]linear.Combination[classes.Class, C]),
	}, nil
}

// Group returns the ambient group.
func (r *Ring[C]) Group() *perm.Group { return r.group }

// Indices returns the basis index set.
func (r *Ring[C]) Indices() *classes.ConjugacyClasses { return r.indices }

// Basis returns the basis element [h].
// Fails with classes.ErrConversion if h is not a subgroup of the group.
func (r *Ring[C]) Basis(h *perm.Group) (linear.Combination[classes.Class, C], error) {
	c, err := r.indices.Construct(h)
	if err != nil {
		return linear.Combination[classes.Class, C]{}, err
	}

	return linear.Term(c, C(1)), nil
}

// Gens returns every basis element, by increasing order of the subgroup.
func (r *Ring[C]) Gens() []linear.Combination[classes.Class, C] {
	var out []linear.Combination[classes.Class, C]
	for c := range r.indices.All() {
		out = append(out, linear.Term(c, C(1)))
	}

	return out
}

// OneBasis returns the class of the whole group.
func (r *Ring[C]) OneBasis() classes.Class { return r.one }

// One returns the unit.
func (r *Ring[C]) One() linear.Combination[classes.Class, C] {
	return linear.Term(r.one, C(1))
}

// Zero returns the zero element.
func (r *Ring[C]) Zero() linear.Combination[classes.Class, C] {
	return linear.Combination[classes.Class, C]{}
}

// FromScalar returns c·1.
func (r *Ring[C]) FromScalar(c C) linear.Combination[classes.Class, C] {
	return linear.Term(r.one, c)
}

// Add returns a + b.
func (r *Ring[C]) Add(a, b linear.Combination[classes.Class, C]) linear.Combination[classes.Class, C] {
	return a.Add(b)
}

// Sub returns a - b.
func (r *Ring[C]) Sub(a, b linear.Combination[classes.Class, C]) linear.Combination[classes.Class, C] {
	return a.Sub(b)
}

// Scale returns s·a.
func (r *Ring[C]) Scale(a linear.Combination[classes.Class, C], s C) linear.Combination[classes.Class, C] {
	return a.Scale(s)
}

// Mul returns a·b using the product selected by WithProduct.
// Returns ErrForeignElement if a or b is indexed by another ring's classes.
func (r *Ring[C]) Mul(a, b linear.Combination[classes.Class, C]) (linear.Combination[classes.Class, C], error) {
	return linear.Product(a, b, r.cachedProduct)
}

// Pow returns a^n by repeated squaring, with a^0 = 1.
// Returns ErrNegativePower for n < 0.
func (r *Ring[C]) Pow(a linear.Combination[classes.Class, C], n int) (linear.Combination[classes.Class, C], error) {
	if n < 0 {
		return linear.Combination[classes.Class, C]{}, fmt.Errorf("%w: %d", ErrNegativePower, n)
	}

	return linear.Power(a, r.One(), n, r.cachedProduct)
}

// Tensor returns a ⊗ b in B(G) ⊗ B(G).
func (r *Ring[C]) Tensor(a, b linear.Combination[classes.Class, C]) linear.Combination[linear.Pair[classes.Class, classes.Class], C] {
	return linear.Tensor(a, b)
}

// TensorMul multiplies two elements of B(G) ⊗ B(G) factorwise.
func (r *Ring[C]) TensorMul(
	a, b linear.Combination[linear.Pair[classes.Class, classes.Class], C],
) (linear.Combination[linear.Pair[classes.Class, classes.Class], C], error) {
	return linear.TensorProduct(a, b, r.cachedProduct, r.cachedProduct)
}

// Format renders a with basis elements sorted by subgroup order, e.g.
// "B[(1,2)] + 2*B[()] - 3". Named classes print as their name.
func (r *Ring[C]) Format(a linear.Combination[classes.Class, C]) string {
	return a.Format(formatClass, compareClasses)
}

// FormatTensor renders an element of B(G) ⊗ B(G) as "B[x] # B[y] + ...".
func (r *Ring[C]) FormatTensor(a linear.Combination[linear.Pair[classes.Class, classes.Class], C]) string {
	return a.Format(func(p linear.Pair[classes.Class, classes.Class]) string {
		return formatClass(p.Left) + " # " + formatClass(p.Right)
	}, func(x, y linear.Pair[classes.Class, classes.Class]) int {
		return cmp.Or(compareClasses(x.Left, y.Left), compareClasses(x.Right, y.Right))
	})
}

func (r *Ring[C]) String() string {
	return "Burnside ring of " + r.group.String()
}

// cachedProduct dispatches to the selected basis product and memoizes the
// result per unordered pair of classes.
func (r *Ring[C]) cachedProduct(h, k classes.Class) (linear.Combination[classes.Class, C], error) {
	if err := r.owns(h, k); err != nil {
		return linear.Combination[classes.Class, C]{}, err
	}
	key := [2]int{min(h.ID(), k.ID()), max(h.ID(), k.ID())}

	r.mu.Lock()
	p, ok := r.products[key]
	r.mu.Unlock()
	if ok {
		return p, nil
	}

	var err error
	switch r.product {
	case ProductCartesian:
		p, err = r.CartesianProductOnBasis(h, k)
	default:
		p, err = r.ProductOnBasis(h, k)
	}
	if err != nil {
		return linear.Combination[classes.Class, C]{}, err
	}

	r.mu.Lock()
	r.products[key] = p
	r.mu.Unlock()

	return p, nil
}

func (r *Ring[C]) owns(cs ...classes.Class) error {
	for _, c := range cs {
		if !r.indices.Owns(c) {
			return fmt.Errorf("%w: %v", ErrForeignElement, c)
		}
	}

	return nil
}

func formatClass(c classes.Class) string {
	if name, ok := c.Name(); ok {
		return name
	}

	return "B" + c.String()
}

func compareClasses(x, y classes.Class) int {
	return cmp.Or(cmp.Compare(x.Order(), y.Order()), cmp.Compare(x.ID(), y.ID()))
}
