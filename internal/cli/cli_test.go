// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	verbose, degreeFlag, genFlags = false, 0, nil
	tableMethod, actionSquare = "double-coset", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return out.String(), err
}

func TestCommandsAreRegistered(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"classes", "table", "poset", "molecular", "action"} {
		assert.Contains(t, names, want)
	}
	assert.NotNil(t, tableCmd.Flags().Lookup("method"))
	assert.Equal(t, "double-coset", tableCmd.Flags().Lookup("method").DefValue)
}

func TestClasses(t *testing.T) {
	out, err := run(t, "classes", "S3")
	require.NoError(t, err)
	assert.Contains(t, out, "Conjugacy classes of subgroups of Symmetric group S3")
	assert.Contains(t, out, "4 classes")
}

func TestPoset(t *testing.T) {
	out, err := run(t, "poset", "S4")
	require.NoError(t, err)
	assert.Contains(t, out, "11 classes, 17 covering relations")
}

func TestAction(t *testing.T) {
	out, err := run(t, "action", "S3", "subsets", "2")
	require.NoError(t, err)
	assert.Equal(t, "B[(1,2)]\n", out)

	out, err = run(t, "action", "S4", "subsets", "2", "--square")
	require.NoError(t, err)
	assert.Equal(t, "B[(3,4), (1,2)]\nB[()] + 2*B[(3,4), (1,2)]\n", out)

	out, err = run(t, "action", "C4", "points")
	require.NoError(t, err)
	assert.Equal(t, "B[()]\n", out)

	_, err = run(t, "action", "S3", "orbits")
	assert.Error(t, err)
	_, err = run(t, "action", "S3", "subsets", "5")
	assert.Error(t, err)
}

func TestTableFromGenerators(t *testing.T) {
	out, err := run(t, "table", "--degree", "3", "--gen", "(1,2,3)")
	require.NoError(t, err)
	assert.Contains(t, out, "Burnside ring of permutation group of degree 3 and order 3 generated by [(1,2,3)]")
	assert.Contains(t, out, "B[()] * B[()] = 3*B[()]\n")
	assert.Contains(t, out, "B[()] * 1 = B[()]\n")
	assert.Contains(t, out, "1 * 1 = 1\n")

	cart, err := run(t, "table", "--degree", "3", "--gen", "(1,2,3)", "--method", "cartesian")
	require.NoError(t, err)
	assert.Equal(t, out, cart)

	_, err = run(t, "table", "S3", "--method", "fastest")
	assert.Error(t, err)
}

func TestMolecular(t *testing.T) {
	out, err := run(t, "molecular", "2")
	require.NoError(t, err)
	assert.Equal(t, "{1, [()]}^2\n{2, [(1,2)]}\n2 molecular classes of degree 2\n", out)

	out, err = run(t, "molecular", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, "{1, [()]} * {1, [()]} = {1, [()]}^2\n", out)

	_, err = run(t, "molecular", "-1")
	assert.Error(t, err)
	_, err = run(t, "molecular", "7")
	assert.Error(t, err)
}

func TestGroupErrors(t *testing.T) {
	_, err := run(t, "classes")
	assert.ErrorIs(t, err, errNoGroup)

	for _, name := range []string{"X4", "S", "Sx", "S99", "S7", "C0"} {
		_, err = parseGroup(name)
		assert.Error(t, err, name)
	}

	_, err = run(t, "classes", "--gen", "(1,2)")
	assert.Error(t, err, "--gen without --degree")

	g, err := parseGroup("d4")
	require.NoError(t, err)
	assert.Equal(t, 8, g.Order())
}
