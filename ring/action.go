// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/burnside/classes"
	"github.com/katalvlaran/burnside/linear"
	"github.com/katalvlaran/burnside/perm"
)

// ConstructFromAction returns the element of B(G) of the G-set domain
// under action: the sum over orbits of the class of a point stabilizer.
//
// action must be a left action of the ring's group: action(1, x) = x and
// action(g·h, x) = action(g, action(h, x)). This is not checked beyond
// requiring that images of generators stay in the domain. Duplicate domain
// points are ignored.
//
// Implementation:
//   - Stage 1: index the domain and walk orbits along the group's generators.
//   - Stage 2: for the first point p of each orbit, collect every g with
//     action(g, p) = p and regenerate that stabilizer from a small
//     generating set.
//   - Stage 3: canonicalize each stabilizer and count.
//
// Returns ErrActionNotClosed if some generator maps a point outside domain.
//
// Complexity: O(|X|·|gens| + k·|G|) action calls for k orbits.
func ConstructFromAction[C linear.Scalar, X comparable](
	r *Ring[C],
	action func(g perm.Perm, x X) X,
	domain []X,
) (linear.Combination[classes.Class, C], error) {
	// 1. Index the domain
	index := make(map[X]int, len(domain))
	points := make([]X, 0, len(domain))
	for _, x := range domain {
		if _, dup := index[x]; dup {
			continue
		}
		index[x] = len(points)
		points = append(points, x)
	}

	// 2. Orbits under the generators
	gens := r.group.Generators()
	seen := make([]bool, len(points))
	var reps []X
	for start := range points {
		if seen[start] {
			continue
		}
		seen[start] = true
		reps = append(reps, points[start])
		queue := []int{start}
		for i := 0; i < len(queue); i++ {
			x := points[queue[i]]
			for _, s := range gens {
				y := action(s, x)
				j, ok := index[y]
				if !ok {
					return linear.Combination[classes.Class, C]{}, fmt.Errorf("%w: %v maps %v to %v", ErrActionNotClosed, s, x, y)
				}
				if !seen[j] {
					seen[j] = true
					queue = append(queue, j)
				}
			}
		}
	}

	// 3. Stabilizers, canonicalized and counted
	counts := make(map[classes.Class]C, len(reps))
	for _, p := range reps {
		stab, err := stabilizer(r.group, action, p)
		if err != nil {
			return linear.Combination[classes.Class, C]{}, err
		}
		c, err := r.indices.Construct(stab)
		if err != nil {
			return linear.Combination[classes.Class, C]{}, err
		}
		counts[c]++
	}

	r.logger.Debug("decomposed action",
		zap.Int("points", len(points)),
		zap.Int("orbits", len(reps)),
		zap.Int("classes", len(counts)),
	)

	return linear.New(counts), nil
}

// stabilizer returns the subgroup of g fixing p, generated by a small
// generating set.
func stabilizer[X comparable](g *perm.Group, action func(perm.Perm, X) X, p X) (*perm.Group, error) {
	var fixing []perm.Perm
	for x := range g.All() {
		if action(x, p) == p {
			fixing = append(fixing, x)
		}
	}
	full, err := g.Subgroup(fixing...)
	if err != nil {
		return nil, err
	}

	return g.Subgroup(full.SmallGenerators()...)
}
