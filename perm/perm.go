// SPDX-License-Identifier: MIT

package perm

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxDegree is the largest supported degree: one byte stores one image.
const MaxDegree = 256

// Perm is an immutable permutation of {0..n-1}, where n = len(p).
// Byte i holds the image of point i. The zero value is the identity of degree 0.
type Perm string

// Identity returns the identity permutation of degree n.
// Complexity: O(n).
func Identity(n int) Perm {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}

	return Perm(b)
}

// FromImages builds the permutation sending i to images[i] (0-based).
// Returns ErrDegreeTooLarge or ErrNotPermutation on invalid input.
// Complexity: O(n).
func FromImages(images []int) (Perm, error) {
	n := len(images)
	if n > MaxDegree {
		return "", fmt.Errorf("%w: %d", ErrDegreeTooLarge, n)
	}
	seen := make([]bool, n)
	b := make([]byte, n)
	for i, v := range images {
		if v < 0 || v >= n || seen[v] {
			return "", fmt.Errorf("%w: image %d of point %d", ErrNotPermutation, v, i)
		}
		seen[v] = true
		b[i] = byte(v)
	}

	return Perm(b), nil
}

// Cycles builds a permutation of degree n from disjoint cycles written with
// 1-based points, e.g. Cycles(4, []int{1, 2}, []int{3, 4}) is (1,2)(3,4).
// Points not mentioned are fixed.
// Complexity: O(n + total cycle length).
func Cycles(n int, cycles ...[]int) (Perm, error) {
	if n < 0 || n > MaxDegree {
		return "", fmt.Errorf("%w: %d", ErrDegreeTooLarge, n)
	}
	images := make([]int, n)
	for i := range images {
		images[i] = i
	}
	seen := make([]bool, n)
	for _, c := range cycles {
		for j, pt := range c {
			if pt < 1 || pt > n || seen[pt-1] {
				return "", fmt.Errorf("%w: point %d in %v", ErrBadCycle, pt, c)
			}
			seen[pt-1] = true
			images[pt-1] = c[(j+1)%len(c)] - 1
		}
	}

	return FromImages(images)
}

// MustCycles is like Cycles but panics on error. Intended for tests and
// package-level fixtures.
func MustCycles(n int, cycles ...[]int) Perm {
	p, err := Cycles(n, cycles...)
	if err != nil {
		panic(err)
	}

	return p
}

// ParseCycles parses 1-based disjoint cycle notation such as "(1,2)(3,4)".
// The empty string and "()" both denote the identity.
func ParseCycles(n int, s string) (Perm, error) {
	var cycles [][]int
	rest := strings.TrimSpace(s)
	for rest != "" {
		if rest[0] != '(' {
			return "", fmt.Errorf("%w: %q", ErrBadCycle, s)
		}
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return "", fmt.Errorf("%w: unbalanced %q", ErrBadCycle, s)
		}
		body := strings.TrimSpace(rest[1:end])
		if body != "" {
			var cycle []int
			for _, field := range strings.Split(body, ",") {
				v, err := strconv.Atoi(strings.TrimSpace(field))
				if err != nil {
					return "", fmt.Errorf("%w: %q: %v", ErrBadCycle, s, err)
				}
				cycle = append(cycle, v)
			}
			cycles = append(cycles, cycle)
		}
		rest = strings.TrimSpace(rest[end+1:])
	}

	return Cycles(n, cycles...)
}

// Degree returns the number of points p acts on.
func (p Perm) Degree() int { return len(p) }

// Apply returns the image of the 0-based point i.
func (p Perm) Apply(i int) int { return int(p[i]) }

// Mul returns the composition p∘q (q applied first). Both operands must
// have the same degree.
// Complexity: O(n).
func (p Perm) Mul(q Perm) Perm {
	b := make([]byte, len(q))
	for i := 0; i < len(q); i++ {
		b[i] = p[q[i]]
	}

	return Perm(b)
}

// Inverse returns p⁻¹.
// Complexity: O(n).
func (p Perm) Inverse() Perm {
	b := make([]byte, len(p))
	for i := 0; i < len(p); i++ {
		b[p[i]] = byte(i)
	}

	return Perm(b)
}

// Conjugate returns g∘p∘g⁻¹, which maps g(i) to g(p(i)).
// Complexity: O(n).
func (p Perm) Conjugate(g Perm) Perm {
	b := make([]byte, len(p))
	for i := 0; i < len(p); i++ {
		b[g[i]] = g[p[i]]
	}

	return Perm(b)
}

// IsIdentity reports whether p fixes every point.
func (p Perm) IsIdentity() bool {
	for i := 0; i < len(p); i++ {
		if int(p[i]) != i {
			return false
		}
	}

	return true
}

// Order returns the multiplicative order of p (lcm of its cycle lengths).
func (p Perm) Order() int {
	order := 1
	for _, c := range p.cycles() {
		order = lcm(order, len(c))
	}

	return order
}

// CycleTuples returns the non-trivial cycles of p with 1-based points,
// each starting at its smallest point, ordered by that point.
func (p Perm) CycleTuples() [][]int {
	var out [][]int
	for _, c := range p.cycles() {
		if len(c) < 2 {
			continue
		}
		tuple := make([]int, len(c))
		for i, pt := range c {
			tuple[i] = pt + 1
		}
		out = append(out, tuple)
	}

	return out
}

// String renders p in 1-based disjoint cycle notation; the identity is "()".
func (p Perm) String() string {
	tuples := p.CycleTuples()
	if len(tuples) == 0 {
		return "()"
	}
	var sb strings.Builder
	for _, c := range tuples {
		sb.WriteByte('(')
		for i, pt := range c {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(pt))
		}
		sb.WriteByte(')')
	}

	return sb.String()
}

// cycles returns all cycles of p (fixed points included), 0-based.
func (p Perm) cycles() [][]int {
	seen := make([]bool, len(p))
	var out [][]int
	for start := 0; start < len(p); start++ {
		if seen[start] {
			continue
		}
		var c []int
		for i := start; !seen[i]; i = int(p[i]) {
			seen[i] = true
			c = append(c, i)
		}
		out = append(out, c)
	}

	return out
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
