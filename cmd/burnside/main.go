// SPDX-License-Identifier: MIT

// burnside prints conjugacy classes of subgroups, Burnside ring products
// and molecular decompositions of small permutation groups.
package main

import (
	"os"

	"github.com/katalvlaran/burnside/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
