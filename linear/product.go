// SPDX-License-Identifier: MIT

package linear

import "errors"

// ErrNegativePower is returned by Power for a negative exponent.
var ErrNegativePower = errors.New("linear: negative exponent")

// BasisProduct multiplies two basis keys. It may fail, for instance when a
// key does not belong to the algebra that is asked to multiply it.
type BasisProduct[K comparable, C Scalar] func(x, y K) (Combination[K, C], error)

// Product is the bilinear extension of basis to a·b:
//
//	(Σ a_x·x)(Σ b_y·y) = Σ a_x·b_y·basis(x, y)
//
// The first error returned by basis aborts the product.
//
// Complexity: O(|a|·|b|) calls to basis plus the size of their results.
func Product[K comparable, C Scalar](a, b Combination[K, C], basis BasisProduct[K, C]) (Combination[K, C], error) {
	acc := make(map[K]C)
	for x, ax := range a.terms {
		for y, by := range b.terms {
			p, err := basis(x, y)
			if err != nil {
				return Combination[K, C]{}, err
			}
			for k, c := range p.terms {
				acc[k] += ax * by * c
			}
		}
	}

	return New(acc), nil
}

// Power returns a^n by repeated squaring, with a^0 = one.
// Returns ErrNegativePower for n < 0.
//
// Complexity: O(log n) products.
func Power[K comparable, C Scalar](a, one Combination[K, C], n int, basis BasisProduct[K, C]) (Combination[K, C], error) {
	if n < 0 {
		return Combination[K, C]{}, ErrNegativePower
	}
	result, base := one, a
	for n > 0 {
		var err error
		if n&1 == 1 {
			if result, err = Product(result, base, basis); err != nil {
				return Combination[K, C]{}, err
			}
		}
		n >>= 1
		if n > 0 {
			if base, err = Product(base, base, basis); err != nil {
				return Combination[K, C]{}, err
			}
		}
	}

	return result, nil
}

// Pair is a basis key of a tensor product: Left ⊗ Right.
type Pair[A, B comparable] struct {
	Left  A
	Right B
}

// Tensor returns a ⊗ b = Σ a_x·b_y·(x ⊗ y).
func Tensor[A, B comparable, C Scalar](a Combination[A, C], b Combination[B, C]) Combination[Pair[A, B], C] {
	acc := make(map[Pair[A, B]]C, len(a.terms)*len(b.terms))
	for x, ax := range a.terms {
		for y, by := range b.terms {
			acc[Pair[A, B]{Left: x, Right: y}] = ax * by
		}
	}

	return New(acc)
}

// TensorProduct multiplies two elements of a tensor product of algebras
// factorwise: (x1 ⊗ y1)(x2 ⊗ y2) = (x1·x2) ⊗ (y1·y2).
func TensorProduct[A, B comparable, C Scalar](
	a, b Combination[Pair[A, B], C],
	left BasisProduct[A, C],
	right BasisProduct[B, C],
) (Combination[Pair[A, B], C], error) {
	return Product(a, b, func(p, q Pair[A, B]) (Combination[Pair[A, B], C], error) {
		l, err := left(p.Left, q.Left)
		if err != nil {
			return Combination[Pair[A, B], C]{}, err
		}
		r, err := right(p.Right, q.Right)
		if err != nil {
			return Combination[Pair[A, B], C]{}, err
		}

		return Tensor(l, r), nil
	})
}
