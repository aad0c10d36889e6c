// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/burnside/perm"
)

// maxNamedDegree bounds named groups and molecular degrees. Subgroup
// enumeration is exhaustive: S_6 has 1455 subgroups, S_7 already 11300.
const maxNamedDegree = 6

var errNoGroup = errors.New("no group given: pass a name such as S4 or --degree with --gen")

// resolveGroup returns the group selected by --gen/--degree, or else by the
// first positional argument, together with the remaining arguments.
func resolveGroup(args []string) (*perm.Group, []string, error) {
	if len(genFlags) > 0 {
		g, err := groupFromGenerators(degreeFlag, genFlags)

		return g, args, err
	}
	if len(args) == 0 {
		return nil, nil, errNoGroup
	}
	g, err := parseGroup(args[0])

	return g, args[1:], err
}

// parseGroup reads names like S4, A5, C6 or D4.
func parseGroup(name string) (*perm.Group, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return nil, fmt.Errorf("unknown group %q", name)
	}
	n, err := strconv.Atoi(name[1:])
	if err != nil || n < 0 {
		return nil, fmt.Errorf("unknown group %q", name)
	}
	if n > maxNamedDegree {
		return nil, fmt.Errorf("group %q: degree %d exceeds %d", name, n, maxNamedDegree)
	}

	switch strings.ToUpper(name[:1]) {
	case "S":
		return perm.Symmetric(n), nil
	case "A":
		return perm.Alternating(n), nil
	case "C":
		if n < 1 {
			return nil, fmt.Errorf("group %q: cyclic groups need n >= 1", name)
		}
		return perm.Cyclic(n), nil
	case "D":
		if n < 1 {
			return nil, fmt.Errorf("group %q: dihedral groups need n >= 1", name)
		}
		return perm.Dihedral(n), nil
	default:
		return nil, fmt.Errorf("unknown group %q", name)
	}
}

func groupFromGenerators(degree int, gens []string) (*perm.Group, error) {
	if degree <= 0 {
		return nil, fmt.Errorf("--gen needs a positive --degree, got %d", degree)
	}
	ps := make([]perm.Perm, 0, len(gens))
	for _, s := range gens {
		p, err := perm.ParseCycles(degree, s)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}

	return perm.New(degree, ps...)
}
