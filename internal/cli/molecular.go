// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/burnside/species"
)

var molecularCmd = &cobra.Command{
	Use:   "molecular <n> [m]",
	Short: "List molecular classes of degree n, or multiply degrees n and m",
	Long: `With one argument, list the molecular classes of degree n: one per
conjugacy class of subgroups of S_n, written as products of atomic classes.
With two, print every product of a class of degree n with one of degree m.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runMolecular,
}

func init() {
	rootCmd.AddCommand(molecularCmd)
}

func parseDegree(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > maxNamedDegree {
		return 0, fmt.Errorf("invalid degree %q: want 0..%d", s, maxNamedDegree)
	}

	return n, nil
}

func runMolecular(cmd *cobra.Command, args []string) error {
	n, err := parseDegree(args[0])
	if err != nil {
		return err
	}
	d := species.New(species.WithLogger(logger))
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		gens := d.OfDegree(n)
		for _, x := range gens {
			fmt.Fprintln(out, d.Format(x))
		}
		fmt.Fprintf(out, "%d molecular classes of degree %d\n", len(gens), n)

		return nil
	}

	m, err := parseDegree(args[1])
	if err != nil {
		return err
	}
	for _, x := range d.OfDegree(n) {
		for _, y := range d.OfDegree(m) {
			p, err := d.Mul(x, y)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s * %s = %s\n", d.Format(x), d.Format(y), d.Format(p))
		}
	}

	return nil
}
