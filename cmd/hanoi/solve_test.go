package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSolveCmd_Enumerated(t *testing.T) {
	out, _, err := run(t, "solve", "--disks", "2")
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"steps":[{"stepNumber":1,"from":"A","to":"B","disk":1},{"stepNumber":2,"from":"A","to":"C","disk":2},{"stepNumber":3,"from":"B","to":"C","disk":1}],"totalSteps":3}`,
		out)
}

func TestSolveCmd_CountOnly(t *testing.T) {
	out, _, err := run(t, "solve", "-n", "64")
	require.NoError(t, err)
	assert.Equal(t, "{\"totalSteps\":18446744073709551615}\n", out)
}

func TestSolveCmd_Pretty(t *testing.T) {
	out, _, err := run(t, "solve", "--disks", "11", "--pretty")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"totalSteps\": 2047\n}\n", out)
}

func TestSolveCmd_Verify(t *testing.T) {
	_, stderr, err := run(t, "solve", "--disks", "4", "--verify")
	require.NoError(t, err)
	assert.Contains(t, stderr, "verified: 15 moves")

	// Count-only answers are enumerated just for the replay.
	_, stderr, err = run(t, "solve", "--disks", "12", "--verify")
	require.NoError(t, err)
	assert.Contains(t, stderr, "verified: 4095 moves")

	_, _, err = run(t, "solve", "--disks", "30", "--verify")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot verify 30 disks")
}

func TestSolveCmd_Errors(t *testing.T) {
	_, _, err := run(t, "solve", "--disks", "0")
	require.EqualError(t, err, "numberOfDisks must be a number greater than 0")

	_, _, err = run(t, "solve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disks")
}

func TestVersionCmd(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "hanoi version dev\n", out)
}
