package hanoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplay_RejectsIllegalMoves(t *testing.T) {
	valid, err := Enumerate(3, Canonical)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func([]Move) []Move
	}{
		{
			name: "larger disk on smaller",
			mutate: func(m []Move) []Move {
				m[1].To = PegC
				return m
			},
		},
		{
			name: "empty source peg",
			mutate: func(m []Move) []Move {
				m[0].From = PegB
				return m
			},
		},
		{
			name: "same peg",
			mutate: func(m []Move) []Move {
				m[0].To = PegA
				return m
			},
		},
		{
			name: "step gap",
			mutate: func(m []Move) []Move {
				m[2].Step = 9
				return m
			},
		},
		{
			name: "wrong disk label",
			mutate: func(m []Move) []Move {
				m[0].Disk = 2
				return m
			},
		},
		{
			name: "incomplete",
			mutate: func(m []Move) []Move {
				return m[:len(m)-1]
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves := append([]Move(nil), valid...)
			assert.Error(t, Replay(3, Canonical, tt.mutate(moves)))
		})
	}
}

func TestReplay_ReportsOffendingMove(t *testing.T) {
	moves := []Move{{Step: 1, From: PegA, To: PegB, Disk: 2}}

	err := Replay(2, Canonical, moves)

	var replayErr *ReplayError
	require.ErrorAs(t, err, &replayErr)
	assert.Equal(t, moves[0], replayErr.Move)
	assert.Contains(t, err.Error(), "top disk on A is 1")
}

func TestOrientation_Validate(t *testing.T) {
	assert.NoError(t, Canonical.Validate())
	assert.Error(t, Orientation{From: PegA, To: PegB, Aux: PegB}.Validate())
	assert.Error(t, Orientation{From: "X", To: PegB, Aux: PegC}.Validate())
}
