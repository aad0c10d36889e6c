// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/burnside/classes"
	"github.com/katalvlaran/burnside/linear"
	"github.com/katalvlaran/burnside/perm"
	"github.com/katalvlaran/burnside/ring"
)

var actionSquare bool

// maxSubsetDegree keeps the subset lattice enumerable.
const maxSubsetDegree = 16

var actionCmd = &cobra.Command{
	Use:   "action [group] <points|subsets k|conjugation>",
	Short: "Decompose a group action into orbit types",
	Long: `Decompose a standard action of the group into a sum of basis elements
of its Burnside ring, one term per orbit type.

  points       the natural action on {1..n}
  subsets k    the induced action on k-element subsets
  conjugation  the action of the group on itself by conjugation

Examples:
  burnside action S4 subsets 2
  burnside action S6 subsets 2 --square
  burnside action S4 conjugation`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runAction,
}

func init() {
	rootCmd.AddCommand(actionCmd)
	actionCmd.Flags().BoolVar(&actionSquare, "square", false, "Also print the square of the decomposition")
}

func runAction(cmd *cobra.Command, args []string) error {
	g, rest, err := resolveGroup(args)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return fmt.Errorf("missing action: points, subsets k or conjugation")
	}
	r, err := ring.New(g, ring.WithLogger(logger))
	if err != nil {
		return err
	}

	var b linear.Combination[classes.Class, int64]
	switch rest[0] {
	case "points":
		b, err = ring.ConstructFromAction(r, perm.Perm.Apply, points(g.Degree()))
	case "subsets":
		if len(rest) != 2 {
			return fmt.Errorf("subsets needs a size k")
		}
		if g.Degree() > maxSubsetDegree {
			return fmt.Errorf("subsets: degree %d exceeds %d", g.Degree(), maxSubsetDegree)
		}
		k, convErr := strconv.Atoi(rest[1])
		if convErr != nil || k < 0 || k > g.Degree() {
			return fmt.Errorf("invalid subset size %q for degree %d", rest[1], g.Degree())
		}
		b, err = ring.ConstructFromAction(r, onSubsets, subsets(g.Degree(), k))
	case "conjugation":
		b, err = ring.ConstructFromAction(r, func(x, y perm.Perm) perm.Perm {
			return y.Conjugate(x)
		}, g.Elements())
	default:
		return fmt.Errorf("unknown action %q", rest[0])
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, r.Format(b))
	if actionSquare {
		sq, err := r.Mul(b, b)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, r.Format(sq))
	}

	return nil
}

func points(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// subsets returns the k-subsets of {0..n-1} as bitmasks.
func subsets(n, k int) []uint64 {
	var out []uint64
	for mask := uint64(0); mask < 1<<n; mask++ {
		if bits.OnesCount64(mask) == k {
			out = append(out, mask)
		}
	}

	return out
}

func onSubsets(g perm.Perm, mask uint64) uint64 {
	var image uint64
	for i := 0; i < g.Degree(); i++ {
		if mask&(1<<i) != 0 {
			image |= 1 << g.Apply(i)
		}
	}

	return image
}
