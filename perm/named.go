// SPDX-License-Identifier: MIT

package perm

import "fmt"

// Trivial returns the trivial group acting on n points. A negative n is
// treated as 0.
func Trivial(n int) *Group {
	if n < 0 {
		n = 0
	}

	return generate(n, nil)
}

// Symmetric returns S_n, generated by (1,2) and (1,2,...,n).
// Symmetric(0) is the trivial group on the empty domain; it is the unit of
// the molecular monoid and must not go through generic construction.
func Symmetric(n int) *Group {
	if n <= 1 {
		return Trivial(n).named(fmt.Sprintf("Symmetric group S%d", max(n, 0)))
	}
	cycle := make([]int, n)
	for i := range cycle {
		cycle[i] = i + 1
	}
	gens := []Perm{MustCycles(n, []int{1, 2})}
	if n > 2 {
		gens = append(gens, MustCycles(n, cycle))
	}

	return generate(n, gens).named(fmt.Sprintf("Symmetric group S%d", n))
}

// Alternating returns A_n, generated by the 3-cycles (1,2,k) for k = 3..n.
func Alternating(n int) *Group {
	if n < 3 {
		return Trivial(n).named(fmt.Sprintf("Alternating group A%d", max(n, 0)))
	}
	gens := make([]Perm, 0, n-2)
	for k := 3; k <= n; k++ {
		gens = append(gens, MustCycles(n, []int{1, 2, k}))
	}

	return generate(n, gens).named(fmt.Sprintf("Alternating group A%d", n))
}

// Cyclic returns the cyclic group of order n generated by (1,2,...,n).
func Cyclic(n int) *Group {
	if n <= 1 {
		return Trivial(n).named(fmt.Sprintf("Cyclic group C%d", max(n, 0)))
	}
	cycle := make([]int, n)
	for i := range cycle {
		cycle[i] = i + 1
	}

	return generate(n, []Perm{MustCycles(n, cycle)}).named(fmt.Sprintf("Cyclic group C%d", n))
}

// Dihedral returns the dihedral group of order 2n. For n ≥ 3 it acts on the
// n vertices of a polygon; D1 acts on 2 points and D2 is the Klein four
// group acting regularly on 4 points.
func Dihedral(n int) *Group {
	name := fmt.Sprintf("Dihedral group D%d", n)
	switch {
	case n <= 0:
		return Trivial(0).named(name)
	case n == 1:
		return generate(2, []Perm{MustCycles(2, []int{1, 2})}).named(name)
	case n == 2:
		return generate(4, []Perm{
			MustCycles(4, []int{1, 2}, []int{3, 4}),
			MustCycles(4, []int{1, 3}, []int{2, 4}),
		}).named(name)
	}

	rot := make([]int, n)
	ref := make([]int, n)
	for i := 0; i < n; i++ {
		rot[i] = (i + 1) % n
		ref[i] = (n - i) % n
	}
	r, _ := FromImages(rot)
	s, _ := FromImages(ref)

	return generate(n, []Perm{r, s}).named(name)
}

// DirectProduct returns the direct product of gs acting on consecutive
// blocks of points: gs[0] on the first Degree() points, gs[1] on the next,
// and so on. With no arguments it returns the trivial group of degree 0.
// It panics if the total degree exceeds MaxDegree.
//
// Complexity: O(|G|·|gens|·n) for the product group G.
func DirectProduct(gs ...*Group) *Group {
	n := 0
	for _, g := range gs {
		n += g.degree
	}
	if n > MaxDegree {
		panic(fmt.Errorf("%w: %d", ErrDegreeTooLarge, n))
	}

	var gens []Perm
	offset := 0
	for _, g := range gs {
		for _, s := range g.gens {
			b := []byte(Identity(n))
			for i := 0; i < g.degree; i++ {
				b[offset+i] = byte(offset + s.Apply(i))
			}
			gens = append(gens, Perm(b))
		}
		offset += g.degree
	}

	return generate(n, gens)
}
