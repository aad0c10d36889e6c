// SPDX-License-Identifier: MIT

package ring_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/burnside/classes"
	"github.com/katalvlaran/burnside/linear"
	"github.com/katalvlaran/burnside/perm"
	"github.com/katalvlaran/burnside/ring"
)

type element = linear.Combination[classes.Class, int64]

// pair is a 2-subset {a, b} with a < b.
type pair struct{ a, b int }

func twoSubsets(n int) []pair {
	var out []pair
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			out = append(out, pair{a, b})
		}
	}

	return out
}

func onPairs(g perm.Perm, x pair) pair {
	a, b := g.Apply(x.a), g.Apply(x.b)
	if a > b {
		a, b = b, a
	}

	return pair{a, b}
}

func orders(e element) []int {
	var out []int
	for c, n := range e.Terms() {
		for range n {
			out = append(out, c.Order())
		}
	}
	slices.Sort(out)

	return out
}

type RingSuite struct {
	suite.Suite
	s3 *ring.Ring[int64]
	s4 *ring.Ring[int64]
}

func (s *RingSuite) SetupTest() {
	var err error
	s.s3, err = ring.New(perm.Symmetric(3))
	s.Require().NoError(err)
	s.s4, err = ring.New(perm.Symmetric(4))
	s.Require().NoError(err)
}

func (s *RingSuite) mul(r *ring.Ring[int64], a, b element) element {
	p, err := r.Mul(a, b)
	s.Require().NoError(err)

	return p
}

func (s *RingSuite) TestGensS4() {
	var got []int
	for _, b := range s.s4.Gens() {
		require.Equal(s.T(), 1, b.Len())
		got = append(got, orders(b)...)
	}
	s.Equal([]int{1, 2, 2, 3, 4, 4, 4, 6, 8, 12, 24}, got)
	s.Len(s.s3.Gens(), 4)
}

func (s *RingSuite) TestUnitLaw() {
	one := s.s4.One()
	for _, b := range s.s4.Gens() {
		x := b.Scale(3).Add(s.s4.FromScalar(2))
		s.True(s.mul(s.s4, x, one).Equal(x))
		s.True(s.mul(s.s4, one, x).Equal(x))
	}
	s.Equal("1", s.s4.Format(one))
	for c := range one.Terms() {
		s.Equal(s.s4.OneBasis(), c)
		s.True(c.Subgroup().Equal(s.s4.Group()))
	}
}

func (s *RingSuite) TestMultiplicationTableS3() {
	gens := s.s3.Gens() // orders 1, 2, 3, 6
	require.Len(s.T(), gens, 4)
	triv, c2, c3, whole := gens[0], gens[1], gens[2], gens[3]

	s.True(s.mul(s.s3, triv, triv).Equal(triv.Scale(6)))
	s.True(s.mul(s.s3, triv, c2).Equal(triv.Scale(3)))
	s.True(s.mul(s.s3, triv, c3).Equal(triv.Scale(2)))
	s.True(s.mul(s.s3, c2, c2).Equal(triv.Add(c2)))
	s.True(s.mul(s.s3, c2, c3).Equal(triv))
	s.True(s.mul(s.s3, c3, c3).Equal(c3.Scale(2)))
	s.True(s.mul(s.s3, whole, c2).Equal(c2))
	s.True(whole.Equal(s.s3.One()))
}

func (s *RingSuite) TestSquareOfTransposition() {
	b, err := s.s3.Basis(perm.MustNew(3, perm.MustCycles(3, []int{1, 2})))
	s.Require().NoError(err)
	sq, err := s.s3.Pow(b, 2)
	s.Require().NoError(err)
	s.Equal("B[()] + B[(1,2)]", s.s3.Format(sq))
}

func (s *RingSuite) TestActionOnTwoSubsets() {
	b, err := ring.ConstructFromAction(s.s3, onPairs, twoSubsets(3))
	s.Require().NoError(err)
	s.Equal(1, b.Len())
	s.Equal([]int{2}, orders(b))
	s.Equal("B[(1,2)]", s.s3.Format(b))
}

func (s *RingSuite) TestActionByConjugation() {
	g := s.s4.Group()
	b, err := ring.ConstructFromAction(s.s4, func(x, y perm.Perm) perm.Perm {
		return y.Conjugate(x)
	}, g.Elements())
	s.Require().NoError(err)
	s.Equal(5, b.Len())
	for _, n := range b.Terms() {
		s.EqualValues(1, n)
	}
	s.Equal([]int{3, 4, 4, 8, 24}, orders(b))
}

func (s *RingSuite) TestActionNotClosed() {
	_, err := ring.ConstructFromAction(s.s3, onPairs, twoSubsets(3)[:2])
	s.ErrorIs(err, ring.ErrActionNotClosed)
}

func (s *RingSuite) TestScalars() {
	s.Equal("-3", s.s4.Format(s.s4.FromScalar(-3)))
	s.Equal("0", s.s4.Format(s.s4.Zero()))

	x, err := s.s4.Pow(s.s4.FromScalar(2), 3)
	s.Require().NoError(err)
	s.True(x.Equal(s.s4.FromScalar(8)))

	_, err = s.s4.Pow(s.s4.One(), -1)
	s.ErrorIs(err, ring.ErrNegativePower)

	one, err := s.s4.Pow(s.s4.Gens()[0], 0)
	s.Require().NoError(err)
	s.True(one.Equal(s.s4.One()))
}

func (s *RingSuite) TestForeignAndInvalid() {
	_, err := s.s3.Mul(s.s3.One(), s.s4.One())
	s.ErrorIs(err, ring.ErrForeignElement)

	_, err = s.s3.Basis(perm.Cyclic(4))
	s.ErrorIs(err, classes.ErrConversion)

	_, err = ring.New(nil)
	s.ErrorIs(err, ring.ErrNilGroup)

	s.Equal("Burnside ring of Symmetric group S4", s.s4.String())
	s.True(s.s4.Group().Equal(perm.Symmetric(4)))
}

func (s *RingSuite) TestTensorSquare() {
	b, err := ring.ConstructFromAction(s.s4, onPairs, twoSubsets(4))
	s.Require().NoError(err)
	s.Equal("B[(3,4), (1,2)]", s.s4.Format(b))

	var k classes.Class
	for c := range b.Terms() {
		k = c
	}
	triv, err := s.s4.Indices().Construct(perm.Trivial(4))
	s.Require().NoError(err)

	t := s.s4.Tensor(b, b)
	s.Equal(1, t.Len())
	sq, err := s.s4.TensorMul(t, t)
	s.Require().NoError(err)
	s.Equal(4, sq.Len())
	type p = linear.Pair[classes.Class, classes.Class]
	s.EqualValues(1, sq.Coefficient(p{Left: triv, Right: triv}))
	s.EqualValues(2, sq.Coefficient(p{Left: triv, Right: k}))
	s.EqualValues(2, sq.Coefficient(p{Left: k, Right: triv}))
	s.EqualValues(4, sq.Coefficient(p{Left: k, Right: k}))
	s.Equal("B[(3,4), (1,2)] # B[(3,4), (1,2)]", s.s4.FormatTensor(t))
}

func TestRingSuite(t *testing.T) {
	suite.Run(t, new(RingSuite))
}

func TestSquareOfTwoSubsetsOfSix(t *testing.T) {
	r, err := ring.New(perm.Symmetric(6))
	require.NoError(t, err)

	b, err := ring.ConstructFromAction(r, onPairs, twoSubsets(6))
	require.NoError(t, err)
	assert.Equal(t, []int{48}, orders(b))

	sq, err := r.Mul(b, b)
	require.NoError(t, err)
	assert.Equal(t, 3, sq.Len())
	assert.Equal(t, []int{6, 8, 48}, orders(sq))

	// only the order-48 stabilizer and the two new classes were interned
	assert.Equal(t, map[classes.Key]int{
		{Order: 6, Degree: 6}:   1,
		{Order: 8, Degree: 6}:   1,
		{Order: 48, Degree: 6}:  1,
		{Order: 720, Degree: 6}: 1,
	}, r.Indices().Table().Buckets())
}

func TestProductFormulationsAgree(t *testing.T) {
	groups := []*perm.Group{
		perm.Symmetric(4),
		perm.Alternating(4),
		perm.Dihedral(4),
		perm.Symmetric(5),
	}
	for _, g := range groups {
		t.Run(g.String(), func(t *testing.T) {
			r, err := ring.New(g)
			require.NoError(t, err)
			n := g.Order()
			basis := slices.Collect(r.Indices().All())
			for _, h := range basis {
				for _, k := range basis {
					dc, err := r.ProductOnBasis(h, k)
					require.NoError(t, err)
					cart, err := r.CartesianProductOnBasis(h, k)
					require.NoError(t, err)
					require.True(t, dc.Equal(cart), "%v * %v: %s vs %s", h, k, r.Format(dc), r.Format(cart))

					swapped, err := r.ProductOnBasis(k, h)
					require.NoError(t, err)
					require.True(t, dc.Equal(swapped), "commutativity %v * %v", h, k)

					// |G/H|·|G/K| = Σ c·|G/L|
					total := 0
					for c, m := range dc.Terms() {
						total += int(m) * n / c.Order()
					}
					require.Equal(t, (n/h.Order())*(n/k.Order()), total)
				}
			}
		})
	}
}

func TestCartesianProductMethod(t *testing.T) {
	r, err := ring.New(perm.Dihedral(4), ring.WithProduct(ring.ProductCartesian))
	require.NoError(t, err)

	basis := slices.Collect(r.Indices().All())
	for _, h := range basis {
		for _, k := range basis {
			got, err := r.Mul(linear.Term(h, int64(1)), linear.Term(k, int64(1)))
			require.NoError(t, err)
			want, err := r.ProductOnBasis(h, k)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "%v * %v: %s vs %s", h, k, r.Format(want), r.Format(got))
		}
	}
	assert.Equal(t, "cartesian", ring.ProductCartesian.String())
}

func TestIndicesRejectNonSubgroups(t *testing.T) {
	r, err := ring.New(perm.Alternating(4))
	require.NoError(t, err)
	require.Len(t, r.Gens(), 5)

	_, err = r.Indices().Table().Normalize(perm.MustNew(4, perm.MustCycles(4, []int{1, 2})))
	require.ErrorIs(t, err, classes.ErrNotSubgroup)
	assert.Equal(t, 5, r.Indices().Table().Len())

	foreign, err := classes.New(perm.Symmetric(4))
	require.NoError(t, err)
	c, err := foreign.Construct(perm.MustNew(4, perm.MustCycles(4, []int{1, 2})))
	require.NoError(t, err)
	_, err = r.ProductOnBasis(c, c)
	assert.ErrorIs(t, err, ring.ErrForeignElement)
}
