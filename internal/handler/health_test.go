package handler

import (
	"math/big"
	"testing"

	"github.com/deppfellow/go-hanoi/internal/hanoi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSolution(t *testing.T) {
	moves, err := hanoi.Enumerate(3, hanoi.Canonical)
	require.NoError(t, err)

	assert.NoError(t, checkSolution(hanoi.Solution{Disks: 3, Moves: moves, Total: big.NewInt(7)}))
	assert.NoError(t, checkSolution(hanoi.NewSolver(hanoi.WithEnumerationLimit(2)).Solve(3)))

	assert.Error(t, checkSolution(hanoi.Solution{Disks: 3, Total: big.NewInt(8)}))

	swapped := append([]hanoi.Move(nil), moves...)
	swapped[0], swapped[1] = swapped[1], swapped[0]
	assert.Error(t, checkSolution(hanoi.Solution{Disks: 3, Moves: swapped, Total: big.NewInt(7)}))
}
