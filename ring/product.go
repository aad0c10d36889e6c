// SPDX-License-Identifier: MIT

package ring

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/burnside/classes"
	"github.com/katalvlaran/burnside/linear"
	"github.com/katalvlaran/burnside/perm"
)

// ProductOnBasis returns [H]·[K] = Σ [H ∩ gKg⁻¹], one term per double
// coset HgK of the group.
// Returns ErrForeignElement if h or k belongs to another ring.
func (r *Ring[C]) ProductOnBasis(h, k classes.Class) (linear.Combination[classes.Class, C], error) {
	if err := r.owns(h, k); err != nil {
		return linear.Combination[classes.Class, C]{}, err
	}
	H, K := h.Subgroup(), k.Subgroup()

	reps := r.oracle.DoubleCosetRepsAndSizes(r.group, H, K)
	counts := make(map[classes.Class]C, len(reps))
	for _, dc := range reps {
		p := r.oracle.Intersection(H, r.oracle.ConjugateSubgroup(K, dc.Rep))
		c, err := r.indices.Construct(p)
		if err != nil {
			return linear.Combination[classes.Class, C]{}, err
		}
		counts[c]++
	}

	r.logger.Debug("double coset product",
		zap.Stringer("left", h),
		zap.Stringer("right", k),
		zap.Int("double_cosets", len(reps)),
	)

	return linear.New(counts), nil
}

// cosetPair is a point of G/H × G/K, as a pair of coset indices.
type cosetPair struct {
	left, right int
}

// CartesianProductOnBasis returns [H]·[K] by decomposing the diagonal
// action of the group on G/H × G/K. It agrees with ProductOnBasis.
// Returns ErrForeignElement if h or k belongs to another ring.
func (r *Ring[C]) CartesianProductOnBasis(h, k classes.Class) (linear.Combination[classes.Class, C], error) {
	if err := r.owns(h, k); err != nil {
		return linear.Combination[classes.Class, C]{}, err
	}
	left, err := r.group.LeftCosets(h.Subgroup())
	if err != nil {
		return linear.Combination[classes.Class, C]{}, err
	}
	right, err := r.group.LeftCosets(k.Subgroup())
	if err != nil {
		return linear.Combination[classes.Class, C]{}, err
	}

	domain := make([]cosetPair, 0, left.Len()*right.Len())
	for i := 0; i < left.Len(); i++ {
		for j := 0; j < right.Len(); j++ {
			domain = append(domain, cosetPair{left: i, right: j})
		}
	}
	action := func(g perm.Perm, x cosetPair) cosetPair {
		return cosetPair{left: left.Act(g, x.left), right: right.Act(g, x.right)}
	}

	return ConstructFromAction(r, action, domain)
}
