// Package service contains the business logic.
//
// It sits between the handler layer and the solver.
// It receives validated data from the handler, applies the
// service limits, and calls the hanoi package to do the work
package service

import (
	"github.com/deppfellow/go-hanoi/internal/server"
)

// Services groups every business service behind one value.
type Services struct {
	Solver *SolverService
}

// NewService constructs all services from the application container.
func NewService(s *server.Server) (*Services, error) {
	return &Services{
		Solver: NewSolverService(s),
	}, nil
}
