package hanoi

import (
	"fmt"
	"math/big"
)

// ReplayError describes the first move that broke the rules.
type ReplayError struct {
	Move   Move
	Reason string
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("illegal move %s: %s", e.Move, e.Reason)
}

// Replay plays moves against a fresh tower of disks stacked on o.From and
// checks that every move is legal and that the tower ends up on o.To.
//
// A move is legal when its step number follows the previous one, its pegs
// differ, the source peg is not empty, the moved disk is the top disk of the
// source peg, and it never lands on a smaller disk.
func Replay(disks int, o Orientation, moves []Move) error {
	if err := o.Validate(); err != nil {
		return err
	}

	stacks := map[Peg][]int{PegA: nil, PegB: nil, PegC: nil}
	for d := disks; d >= 1; d-- {
		stacks[o.From] = append(stacks[o.From], d)
	}

	for i, m := range moves {
		if m.Step != i+1 {
			return &ReplayError{Move: m, Reason: fmt.Sprintf("expected step %d", i+1)}
		}
		if !m.From.Valid() || !m.To.Valid() {
			return &ReplayError{Move: m, Reason: "unknown peg"}
		}
		if m.From == m.To {
			return &ReplayError{Move: m, Reason: "source and target are the same peg"}
		}

		src := stacks[m.From]
		if len(src) == 0 {
			return &ReplayError{Move: m, Reason: "source peg is empty"}
		}
		top := src[len(src)-1]
		if top != m.Disk {
			return &ReplayError{Move: m, Reason: fmt.Sprintf("top disk on %s is %d", m.From, top)}
		}

		dst := stacks[m.To]
		if len(dst) > 0 && dst[len(dst)-1] < top {
			return &ReplayError{Move: m, Reason: fmt.Sprintf("disk %d cannot sit on disk %d", top, dst[len(dst)-1])}
		}

		stacks[m.From] = src[:len(src)-1]
		stacks[m.To] = append(dst, top)
	}

	if len(stacks[o.To]) != disks {
		return fmt.Errorf("tower incomplete: %d of %d disks on %s", len(stacks[o.To]), disks, o.To)
	}
	if want := MoveCount(disks); want.Cmp(big.NewInt(int64(len(moves)))) != 0 {
		return fmt.Errorf("solution has %d moves, optimal is %s", len(moves), want)
	}
	return nil
}
