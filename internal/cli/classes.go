// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/burnside/classes"
	"github.com/katalvlaran/burnside/poset"
)

var classesCmd = &cobra.Command{
	Use:   "classes [group]",
	Short: "List the conjugacy classes of subgroups",
	Long: `List one representative per conjugacy class of subgroups, by order.

Examples:
  burnside classes S4
  burnside classes --degree 5 --gen "(1,2,3,4,5)" --gen "(2,5)(3,4)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClasses,
}

var posetCmd = &cobra.Command{
	Use:   "poset [group]",
	Short: "Print the covering relations of the subgroup lattice up to conjugacy",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPoset,
}

func init() {
	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(posetCmd)
}

func runClasses(cmd *cobra.Command, args []string) error {
	g, _, err := resolveGroup(args)
	if err != nil {
		return err
	}
	set, err := classes.New(g, classes.WithLogger(logger))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, set)
	for c := range set.All() {
		fmt.Fprintf(out, "%3d  order %-5d %v\n", c.ID(), c.Order(), c)
	}
	fmt.Fprintf(out, "%d classes\n", set.Table().Len())

	return nil
}

func runPoset(cmd *cobra.Command, args []string) error {
	g, _, err := resolveGroup(args)
	if err != nil {
		return err
	}
	set, err := classes.New(g, classes.WithLogger(logger))
	if err != nil {
		return err
	}
	p, err := poset.Build(slices.Collect(set.All()), classes.Class.Le, poset.WithContext(cmd.Context()))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, c := range p.Covers() {
		fmt.Fprintf(out, "%v (%d) < %v (%d)\n", c.Lower, c.Lower.Order(), c.Upper, c.Upper.Order())
	}
	fmt.Fprintf(out, "%d classes, %d covering relations\n", p.Len(), p.CoverCount())

	return nil
}
