// SPDX-License-Identifier: MIT

// Package linear provides finite formal linear combinations over a basis
// of comparable keys: the free module machinery on top of which the
// Burnside ring and the molecular decomposition are built.
//
// A Combination is an immutable value. Zero coefficients are never stored,
// keys are unique, and every operation returns a new value.
//
// Products are bilinear extensions of a product on basis keys (Product),
// and tensor products pair keys of two modules (Tensor, TensorProduct).
package linear

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Scalar is the coefficient ring: any built-in integer or float kind.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Combination is a finite sum Σ c_k·k over basis keys k.
// The zero value is the zero combination.
type Combination[K comparable, C Scalar] struct {
	terms map[K]C
}

// New builds a combination from a key → coefficient map. The map is copied
// and zero coefficients are dropped.
func New[K comparable, C Scalar](terms map[K]C) Combination[K, C] {
	out := make(map[K]C, len(terms))
	for k, c := range terms {
		if c != 0 {
			out[k] = c
		}
	}

	return Combination[K, C]{terms: out}
}

// Term returns the one-term combination c·k.
func Term[K comparable, C Scalar](k K, c C) Combination[K, C] {
	if c == 0 {
		return Combination[K, C]{}
	}

	return Combination[K, C]{terms: map[K]C{k: c}}
}

// Coefficient returns the coefficient of k (zero when absent).
func (a Combination[K, C]) Coefficient(k K) C { return a.terms[k] }

// Len returns the number of non-zero terms.
func (a Combination[K, C]) Len() int { return len(a.terms) }

// IsZero reports whether a has no terms.
func (a Combination[K, C]) IsZero() bool { return len(a.terms) == 0 }

// Terms iterates over (key, coefficient) pairs in unspecified order.
func (a Combination[K, C]) Terms() iter.Seq2[K, C] {
	return maps.All(a.terms)
}

// Support returns the keys sorted by cmp.
func (a Combination[K, C]) Support(cmp func(x, y K) int) []K {
	keys := slices.Collect(maps.Keys(a.terms))
	slices.SortFunc(keys, cmp)

	return keys
}

// Add returns a + b.
func (a Combination[K, C]) Add(b Combination[K, C]) Combination[K, C] {
	acc := make(map[K]C, len(a.terms)+len(b.terms))
	for k, c := range a.terms {
		acc[k] = c
	}
	for k, c := range b.terms {
		acc[k] += c
	}

	return New(acc)
}

// Sub returns a - b.
func (a Combination[K, C]) Sub(b Combination[K, C]) Combination[K, C] {
	return a.Add(b.Neg())
}

// Neg returns -a.
func (a Combination[K, C]) Neg() Combination[K, C] {
	var minusOne C = 0
	minusOne--

	return a.Scale(minusOne)
}

// Scale returns s·a.
func (a Combination[K, C]) Scale(s C) Combination[K, C] {
	acc := make(map[K]C, len(a.terms))
	for k, c := range a.terms {
		acc[k] = s * c
	}

	return New(acc)
}

// Equal reports whether a and b have the same terms.
func (a Combination[K, C]) Equal(b Combination[K, C]) bool {
	return maps.Equal(a.terms, b.terms)
}

// Map returns the combination as a fresh key → coefficient map.
func (a Combination[K, C]) Map() map[K]C {
	return maps.Clone(a.terms)
}

// Format renders a as "2*k1 + k2 - 3*k3" with keys sorted by cmp and
// printed by key. The zero combination renders as "0". A key printed as
// "1" is taken to be the unit, so its coefficient is written alone.
func (a Combination[K, C]) Format(key func(K) string, cmp func(x, y K) int) string {
	if a.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i, k := range a.Support(cmp) {
		c := a.terms[k]
		neg := c < 0
		if neg {
			c = -c
		}
		switch {
		case i == 0 && neg:
			sb.WriteString("-")
		case i > 0 && neg:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		name := key(k)
		switch {
		case name == "1" && c != 1:
			sb.WriteString(fmt.Sprint(c))
		case c != 1:
			sb.WriteString(fmt.Sprint(c))
			sb.WriteString("*")
			sb.WriteString(name)
		default:
			sb.WriteString(name)
		}
	}

	return sb.String()
}
