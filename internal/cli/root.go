// SPDX-License-Identifier: MIT

// Package cli implements the burnside command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose    bool
	degreeFlag int
	genFlags   []string

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "burnside",
	Short: "Burnside rings and molecular decompositions of permutation groups",
	Long: `burnside explores the Burnside ring of a finite permutation group.

Groups are written S<n>, A<n>, C<n> or D<n> with n <= 6, or given by
generators in cycle notation with --degree and --gen. Subgroups are
enumerated exhaustively, so large groups given by generators are slow.

Examples:
  burnside classes S4
  burnside table --degree 4 --gen "(1,2,3,4)" --gen "(1,3)"
  burnside action S6 subsets 2 --square
  burnside molecular 2 1`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log cache activity to stderr")
	rootCmd.PersistentFlags().IntVar(&degreeFlag, "degree", 0, "Degree of the group given by --gen")
	rootCmd.PersistentFlags().StringArrayVar(&genFlags, "gen", nil, "Generator in cycle notation, e.g. \"(1,2)(3,4)\" (repeatable)")
}

func setupLogger(cmd *cobra.Command, args []string) error {
	if !verbose {
		logger = zap.NewNop()

		return nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	logger = l

	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	defer func() { _ = logger.Sync() }()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		return 1
	}

	return 0
}
