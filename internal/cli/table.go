// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/burnside/ring"
)

var tableMethod string

var tableCmd = &cobra.Command{
	Use:   "table [group]",
	Short: "Print the multiplication table of the Burnside ring",
	Long: `Print B[H]*B[K] for every pair of basis elements with H before K.

The product is computed from double cosets by default; --method cartesian
decomposes the diagonal action on G/H x G/K instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().StringVar(&tableMethod, "method", "double-coset", "Basis product: double-coset or cartesian")
}

func productMethod(name string) (ring.ProductMethod, error) {
	for _, m := range []ring.ProductMethod{ring.ProductDoubleCoset, ring.ProductCartesian} {
		if m.String() == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("unknown product method %q", name)
}

func runTable(cmd *cobra.Command, args []string) error {
	g, _, err := resolveGroup(args)
	if err != nil {
		return err
	}
	method, err := productMethod(tableMethod)
	if err != nil {
		return err
	}
	r, err := ring.New(g, ring.WithLogger(logger), ring.WithProduct(method))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, r)
	gens := r.Gens()
	for i, a := range gens {
		for _, b := range gens[i:] {
			p, err := r.Mul(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s * %s = %s\n", r.Format(a), r.Format(b), r.Format(p))
		}
	}

	return nil
}
