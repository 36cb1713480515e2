// Package hanoi computes Tower of Hanoi solutions.
//
// It is the only part of the service with algorithmic content:
//   - enumerate the ordered move list for small disk counts
//   - return the closed-form move count (2^n - 1) for large ones
//   - replay a move list against three pegs to prove it is legal
//
// Everything here is pure. No call shares state with another call,
// so a Solver can be used from many goroutines at once.
package hanoi

import (
	"fmt"
	"math/big"
)

// Peg identifies one of the three fixed positions a disk can occupy.
type Peg string

const (
	PegA Peg = "A"
	PegB Peg = "B"
	PegC Peg = "C"
)

// Valid reports whether p is one of A, B or C.
func (p Peg) Valid() bool {
	switch p {
	case PegA, PegB, PegC:
		return true
	}
	return false
}

// Move is a single relocation of one disk from one peg to another.
//
// Step is 1-based and strictly increasing in emission order.
// Disk is the size label of the moved disk (1 = smallest).
type Move struct {
	Step int `json:"stepNumber"`
	From Peg `json:"from"`
	To   Peg `json:"to"`
	Disk int `json:"disk"`
}

func (m Move) String() string {
	return fmt.Sprintf("#%d disk %d %s->%s", m.Step, m.Disk, m.From, m.To)
}

// Orientation assigns the source, target and auxiliary roles to pegs.
type Orientation struct {
	From Peg
	To   Peg
	Aux  Peg
}

// Canonical is the orientation used for a top-level solve: A to C via B.
var Canonical = Orientation{From: PegA, To: PegC, Aux: PegB}

// Validate checks that the orientation names three distinct known pegs.
func (o Orientation) Validate() error {
	for _, p := range []Peg{o.From, o.To, o.Aux} {
		if !p.Valid() {
			return fmt.Errorf("unknown peg %q", p)
		}
	}
	if o.From == o.To || o.From == o.Aux || o.To == o.Aux {
		return fmt.Errorf("orientation %s/%s/%s reuses a peg", o.From, o.To, o.Aux)
	}
	return nil
}

// MoveCount returns 2^disks - 1, the length of an optimal solution.
//
// The value is exact for any disk count; fixed-width integers overflow
// long before the sizes callers are allowed to ask for.
func MoveCount(disks int) *big.Int {
	if disks <= 0 {
		return new(big.Int)
	}
	count := new(big.Int).Lsh(big.NewInt(1), uint(disks))
	return count.Sub(count, big.NewInt(1))
}
