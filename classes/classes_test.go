// SPDX-License-Identifier: MIT

package classes_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/burnside/classes"
	"github.com/katalvlaran/burnside/oracle"
	"github.com/katalvlaran/burnside/perm"
)

func transposition(n, a, b int) *perm.Group {
	return perm.MustNew(n, perm.MustCycles(n, []int{a, b}))
}

type ConjugacySuite struct {
	suite.Suite
	s3 *classes.ConjugacyClasses
	s4 *classes.ConjugacyClasses
}

func (s *ConjugacySuite) SetupTest() {
	var err error
	s.s3, err = classes.New(perm.Symmetric(3))
	s.Require().NoError(err)
	s.s4, err = classes.New(perm.Symmetric(4))
	s.Require().NoError(err)
}

func (s *ConjugacySuite) TestEnumerationS3() {
	var orders []int
	for c := range s.s3.All() {
		orders = append(orders, c.Order())
	}
	s.Equal([]int{1, 2, 3, 6}, orders)
}

func (s *ConjugacySuite) TestEnumerationS4() {
	var orders []int
	for c := range s.s4.All() {
		orders = append(orders, c.Order())
	}
	s.Equal([]int{1, 2, 2, 3, 4, 4, 4, 6, 8, 12, 24}, orders)
	s.Equal(11, s.s4.Table().Len())

	s.Equal(map[classes.Key]int{
		{Order: 1, Degree: 4}:  1,
		{Order: 2, Degree: 4}:  2,
		{Order: 3, Degree: 4}:  1,
		{Order: 4, Degree: 4}:  3,
		{Order: 6, Degree: 4}:  1,
		{Order: 8, Degree: 4}:  1,
		{Order: 12, Degree: 4}: 1,
		{Order: 24, Degree: 4}: 1,
	}, s.s4.Table().Buckets())

	// a second pass interns nothing new
	for range s.s4.All() {
	}
	s.Equal(11, s.s4.Table().Len())
}

func (s *ConjugacySuite) TestCacheReturnsFirstRepresentative() {
	require := require.New(s.T())
	first := transposition(3, 1, 2)
	a, err := s.s3.Construct(first)
	require.NoError(err)
	b, err := s.s3.Construct(transposition(3, 2, 3))
	require.NoError(err)
	c, err := s.s3.Construct(transposition(3, 1, 3))
	require.NoError(err)

	require.True(a.Equal(b))
	require.Equal(a, c)
	require.Same(first, b.Subgroup())
	require.Same(first, c.Subgroup())
	require.Equal(a.Hash(), b.Hash())
}

func (s *ConjugacySuite) TestEqualityMatchesConjugacy() {
	g := s.s4.Group()
	var o oracle.Exhaustive
	subgroups := []*perm.Group{
		perm.Dihedral(2),
		perm.MustNew(4, perm.MustCycles(4, []int{1, 2}), perm.MustCycles(4, []int{3, 4})),
		perm.MustNew(4, perm.MustCycles(4, []int{1, 3}), perm.MustCycles(4, []int{2, 4})),
		perm.Cyclic(4),
		transposition(4, 1, 2),
		perm.MustNew(4, perm.MustCycles(4, []int{1, 2}, []int{3, 4})),
	}
	for _, h1 := range subgroups {
		for _, h2 := range subgroups {
			c1, err := s.s4.Construct(h1)
			s.Require().NoError(err)
			c2, err := s.s4.Construct(h2)
			s.Require().NoError(err)
			s.Equal(o.IsConjugate(g, h1, h2), c1.Equal(c2), "%v vs %v", h1, h2)
			if c1.Equal(c2) {
				s.Equal(c1.Hash(), c2.Hash())
			}
		}
	}
}

func (s *ConjugacySuite) TestConstructRejectsNonSubgroup() {
	c3, err := classes.New(perm.Cyclic(3))
	s.Require().NoError(err)

	_, err = c3.Construct(transposition(3, 1, 2))
	s.ErrorIs(err, classes.ErrConversion)
	s.ErrorIs(err, classes.ErrNotSubgroup)
	s.False(c3.Contains(transposition(3, 1, 2)))

	_, err = c3.Construct(nil)
	s.ErrorIs(err, classes.ErrConversion)

	_, err = classes.New(nil)
	s.ErrorIs(err, classes.ErrNilGroup)
}

func (s *ConjugacySuite) TestOrder() {
	all := slices.Collect(s.s4.All())
	for _, a := range all {
		s.True(a.Le(a), "reflexive %v", a)
		s.False(a.Lt(a))
		for _, b := range all {
			if a.Lt(b) {
				s.True(a.Le(b))
				s.False(a.Equal(b))
				s.Zero(b.Order()%a.Order(), "%v < %v", a, b)
			}
			for _, c := range all {
				if a.Le(b) && b.Le(c) {
					s.True(a.Le(c), "%v <= %v <= %v", a, b, c)
				}
			}
		}
	}

	trivial, err := s.s4.Construct(perm.Trivial(4))
	s.Require().NoError(err)
	whole, err := s.s4.Construct(s.s4.Group())
	s.Require().NoError(err)
	c3, err := s.s4.Construct(perm.MustNew(4, perm.MustCycles(4, []int{1, 2, 3})))
	s.Require().NoError(err)
	klein, err := s.s4.Construct(perm.Dihedral(2))
	s.Require().NoError(err)

	s.True(trivial.Lt(c3))
	s.True(c3.Lt(whole))
	s.False(c3.Le(klein))
	s.False(klein.Le(c3))
}

func (s *ConjugacySuite) TestNames() {
	require := require.New(s.T())
	whole, err := s.s3.Construct(s.s3.Group())
	require.NoError(err)
	require.Equal(perm.FormatGenerators(whole.Subgroup().SmallGenerators()), whole.String())

	require.NoError(s.s3.Table().SetName(whole, "1"))
	require.Equal("1", whole.String())
	name, ok := whole.Name()
	require.True(ok)
	require.Equal("1", name)

	require.ErrorIs(s.s3.Table().SetName(whole, ""), classes.ErrEmptyName)

	foreign, err := s.s4.Construct(perm.Trivial(4))
	require.NoError(err)
	require.ErrorIs(s.s3.Table().SetName(foreign, "x"), classes.ErrForeignClass)
	require.False(whole.Equal(foreign))
	require.False(foreign.Le(whole))

	require.NoError(s.s3.Table().ClearName(whole))
	_, ok = whole.Name()
	require.False(ok)

	require.Equal("<nil class>", classes.Class{}.String())
}

func (s *ConjugacySuite) TestIndexSetIdentity() {
	other, err := classes.New(perm.MustNew(3, perm.MustCycles(3, []int{1, 2}), perm.MustCycles(3, []int{1, 2, 3})))
	s.Require().NoError(err)
	s.True(s.s3.Equal(other))
	s.Equal(s.s3.Hash(), other.Hash())
	s.False(s.s3.Equal(s.s4))
	s.Equal("Conjugacy classes of subgroups of Symmetric group S3", s.s3.String())
}

func (s *ConjugacySuite) TestOracleIsOnlyAskedWithinBucket() {
	counting := oracle.NewCounting(oracle.Exhaustive{})
	set, err := classes.New(perm.Symmetric(3), classes.WithOracle(counting))
	s.Require().NoError(err)

	for range set.All() {
	}
	// every key of S_3 holds a single class: nothing to compare against
	s.Zero(counting.ConjugacyCalls())

	_, err = set.Construct(transposition(3, 2, 3))
	s.Require().NoError(err)
	s.EqualValues(1, counting.ConjugacyCalls())
}

func TestConjugacySuite(t *testing.T) {
	suite.Run(t, new(ConjugacySuite))
}

func TestAtomicClasses(t *testing.T) {
	atoms := classes.NewAtomic()

	assert.Len(t, slices.Collect(atoms.OfDegree(0)), 0)
	assert.Len(t, slices.Collect(atoms.OfDegree(1)), 1)
	assert.Len(t, slices.Collect(atoms.OfDegree(2)), 1)
	assert.Len(t, slices.Collect(atoms.OfDegree(3)), 2)
	assert.Len(t, slices.Collect(atoms.OfDegree(4)), 6)

	diagonal := perm.MustNew(4, perm.MustCycles(4, []int{1, 2}, []int{3, 4}))
	c, err := atoms.Construct(diagonal)
	require.NoError(t, err)
	assert.Equal(t, 4, atoms.Grade(c))
	assert.True(t, c.Ambient().Equal(perm.Symmetric(4)))

	_, err = atoms.Construct(transposition(3, 1, 2))
	assert.ErrorIs(t, err, classes.ErrConversion)
	assert.ErrorIs(t, err, classes.ErrNotAtomic)
	assert.False(t, atoms.Contains(perm.Trivial(2)))
	assert.False(t, atoms.Contains(perm.Trivial(0)))

	s2, err := atoms.Construct(perm.Symmetric(2))
	require.NoError(t, err)
	assert.Equal(t, "{2, [(1,2)]}", s2.String())
	assert.Equal(t, "Set of all atomic conjugacy classes on 1 sort", atoms.String())
}

func TestMolecularClasses(t *testing.T) {
	m := classes.NewMolecular()

	one, err := m.Construct(perm.Symmetric(0))
	require.NoError(t, err)
	assert.True(t, one.IsOne())
	assert.Equal(t, m.One(), one)
	assert.Equal(t, "1", one.String())
	assert.Zero(t, one.Degree())

	a, err := m.Construct(perm.Trivial(3))
	require.NoError(t, err)
	b, err := m.Construct(perm.Trivial(2))
	require.NoError(t, err)
	assert.Equal(t, "{1, [()]}^5", a.Mul(b).String())
	assert.Equal(t, 5, a.Mul(b).Degree())

	x, err := m.Construct(transposition(3, 1, 2))
	require.NoError(t, err)
	y, err := m.Construct(perm.Symmetric(2))
	require.NoError(t, err)
	xy := x.Mul(y)
	assert.Equal(t, "{1, [()]}*{2, [(1,2)]}^2", xy.String())
	assert.Equal(t, xy, y.Mul(x))
	assert.Equal(t, x, x.Mul(m.One()))
	assert.Equal(t, xy.Hash(), y.Mul(x).Hash())

	// the representative reassembles into a conjugate of the original
	z, err := m.Construct(xy.Subgroup())
	require.NoError(t, err)
	assert.Equal(t, xy, z)

	factors := xy.Factors()
	require.Len(t, factors, 2)
	assert.Equal(t, 1, factors[0].Atom.Degree())
	assert.Equal(t, 1, factors[0].Power)
	assert.Equal(t, 2, factors[1].Power)

	gen, err := m.Gen(factors[1].Atom)
	require.NoError(t, err)
	assert.Equal(t, y, gen)

	_, err = m.Gen(classes.Class{})
	assert.ErrorIs(t, err, classes.ErrForeignClass)

	other := classes.NewMolecular()
	assert.Panics(t, func() { x.Mul(other.One()) })
}

func TestMolecularOfDegree(t *testing.T) {
	m := classes.NewMolecular()
	assert.Len(t, slices.Collect(m.OfDegree(0)), 1)
	assert.Len(t, slices.Collect(m.OfDegree(3)), 4)
	assert.Len(t, slices.Collect(m.OfDegree(4)), 11)
	for x := range m.OfDegree(4) {
		assert.Equal(t, 4, m.Grade(x))
	}
}

func TestNormalizeRejectsOutsiders(t *testing.T) {
	a4, err := classes.New(perm.Alternating(4))
	require.NoError(t, err)
	for range a4.All() {
	}
	before := a4.Table().Len()
	require.Equal(t, 5, before)

	_, err = a4.Table().Normalize(transposition(4, 1, 2))
	assert.ErrorIs(t, err, classes.ErrNotSubgroup)
	_, err = a4.Table().Normalize(nil)
	assert.ErrorIs(t, err, classes.ErrNilGroup)
	assert.Equal(t, before, a4.Table().Len())

	klein := perm.MustNew(4, perm.MustCycles(4, []int{1, 2}, []int{3, 4}), perm.MustCycles(4, []int{1, 3}, []int{2, 4}))
	c, err := a4.Table().Normalize(klein)
	require.NoError(t, err)
	assert.True(t, a4.Owns(c))
	assert.Equal(t, 4, c.Order())
	assert.Equal(t, before, a4.Table().Len())

	atoms := classes.NewAtomic()
	_, err = atoms.Table().Normalize(perm.Trivial(2))
	assert.ErrorIs(t, err, classes.ErrNotAtomic)
	assert.Zero(t, atoms.Table().Len())
}

func TestZeroClass(t *testing.T) {
	var c classes.Class
	assert.Zero(t, c.Order())
	assert.Zero(t, c.Degree())
	assert.Nil(t, c.Subgroup())
	assert.Nil(t, c.Ambient())
	assert.Zero(t, c.Hash())
	assert.False(t, c.Equal(classes.Class{}))
}

func TestMoleculeFactorsRoundTrip(t *testing.T) {
	m := classes.NewMolecular()
	x, err := m.Construct(perm.Trivial(12))
	require.NoError(t, err)
	assert.Equal(t, "{1, [()]}^12", x.String())
	require.Len(t, x.Factors(), 1)
	assert.Equal(t, 12, x.Factors()[0].Power)

	y, err := m.Construct(perm.Trivial(11))
	require.NoError(t, err)
	one, err := m.Construct(perm.Trivial(1))
	require.NoError(t, err)
	assert.Equal(t, x, y.Mul(one))
	assert.Equal(t, 12, y.Mul(one).Degree())

	var zero classes.Molecule
	assert.Zero(t, zero.Hash())
	assert.Zero(t, zero.Degree())
	assert.False(t, zero.IsOne())
}
