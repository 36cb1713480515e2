package hanoi

import (
	"fmt"
	"math/big"
)

// DefaultEnumerationLimit is the largest disk count for which the full move
// list is materialized. 10 disks produce 1023 moves; anything above that is
// answered with the move count alone.
const DefaultEnumerationLimit = 10

// MaxEnumerableDisks caps any enumeration request. 20 disks already means
// 1,048,575 moves held in memory.
const MaxEnumerableDisks = 20

// Solution is the result of a solve.
//
// Moves is nil when the disk count was above the enumeration limit.
// Total is always set.
type Solution struct {
	Disks int
	Moves []Move
	Total *big.Int
}

// Enumerated reports whether the solution carries the full move list.
func (s Solution) Enumerated() bool {
	return s.Moves != nil
}

// Solver picks between enumeration and count-only answers.
type Solver struct {
	limit int
}

// Option configures a Solver.
type Option func(*Solver)

// WithEnumerationLimit overrides DefaultEnumerationLimit.
// Values outside 1..MaxEnumerableDisks are ignored.
func WithEnumerationLimit(limit int) Option {
	return func(s *Solver) {
		if limit >= 1 && limit <= MaxEnumerableDisks {
			s.limit = limit
		}
	}
}

// NewSolver creates a Solver.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{limit: DefaultEnumerationLimit}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnumerationLimit returns the largest disk count that is enumerated.
func (s *Solver) EnumerationLimit() int {
	return s.limit
}

// Solve solves the puzzle for disks in the canonical orientation.
//
// disks must be positive; callers validate input before calling.
func (s *Solver) Solve(disks int) Solution {
	solution := Solution{
		Disks: disks,
		Total: MoveCount(disks),
	}
	if disks > s.limit {
		return solution
	}

	// Canonical is always valid, the error can't happen.
	solution.Moves, _ = Enumerate(disks, Canonical)
	return solution
}

// Enumerate returns every move that relocates disks from o.From to o.To.
func Enumerate(disks int, o Orientation) ([]Move, error) {
	if disks < 1 {
		return nil, fmt.Errorf("disk count must be positive, got %d", disks)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if disks > MaxEnumerableDisks {
		return nil, fmt.Errorf("disk count %d is too large to enumerate", disks)
	}

	moves := make([]Move, 0, (1<<uint(disks))-1)
	step := 0
	relocate(disks, o.From, o.To, o.Aux, &step, &moves)
	return moves, nil
}

// relocate moves n disks from -> to using aux. step is the last emitted
// sequence number and is shared by the whole recursion.
func relocate(n int, from, to, aux Peg, step *int, moves *[]Move) {
	if n == 1 {
		emit(1, from, to, step, moves)
		return
	}

	relocate(n-1, from, aux, to, step, moves)
	emit(n, from, to, step, moves)
	relocate(n-1, aux, to, from, step, moves)
}

func emit(disk int, from, to Peg, step *int, moves *[]Move) {
	*step++
	*moves = append(*moves, Move{
		Step: *step,
		From: from,
		To:   to,
		Disk: disk,
	})
}
