package service

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/deppfellow/go-hanoi/internal/errs"
	"github.com/deppfellow/go-hanoi/internal/hanoi"
	"github.com/deppfellow/go-hanoi/internal/metrics"
	"github.com/deppfellow/go-hanoi/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// SolveResponse is the body returned for a successful solve.
//
// Steps is omitted entirely (not null) for count-only answers.
// TotalSteps marshals as an exact JSON integer of any size.
type SolveResponse struct {
	Steps      []hanoi.Move `json:"steps,omitempty"`
	TotalSteps *big.Int     `json:"totalSteps"`
}

// SolverService applies the service limits around hanoi.Solver and
// records logs, metrics and New Relic events for every solve.
type SolverService struct {
	server   *server.Server
	solver   *hanoi.Solver
	maxDisks int
}

// NewSolverService builds the service from the shared server container.
func NewSolverService(s *server.Server) *SolverService {
	return &SolverService{
		server:   s,
		solver:   s.Solver,
		maxDisks: s.Config.Solver.MaxDisks,
	}
}

// MaxDisks is the largest disk count the service accepts.
func (ss *SolverService) MaxDisks() int {
	return ss.maxDisks
}

// EnumerationLimit is the largest disk count answered with the full move list.
func (ss *SolverService) EnumerationLimit() int {
	return ss.solver.EnumerationLimit()
}

// Solve validates the disk count against the service limits and solves.
//
// disks must already be a positive integer (request validation guarantees it).
// A count above MaxDisks is a 400 *errs.HTTPError.
func (ss *SolverService) Solve(ctx context.Context, disks int) (*SolveResponse, error) {
	logger := loggerFromContext(ctx, ss.server.Logger)

	if disks < 1 {
		metrics.RecordRejected()
		return nil, errs.NewBadRequestError(errs.MsgInvalidDiskCount, nil, nil)
	}
	if disks > ss.maxDisks {
		metrics.RecordRejected()
		logger.Warn().
			Int("disks", disks).
			Int("max_disks", ss.maxDisks).
			Msg("disk count above limit")
		return nil, errs.NewBadRequestError(fmt.Sprintf("numberOfDisks must not exceed %d", ss.maxDisks), nil, nil)
	}

	start := time.Now()
	solution := ss.solver.Solve(disks)
	elapsed := time.Since(start)

	metrics.RecordSolve(disks, solution.Enumerated(), len(solution.Moves), elapsed.Seconds())

	mode := metrics.ModeCountOnly
	if solution.Enumerated() {
		mode = metrics.ModeEnumerated
	}

	logger.Debug().
		Int("disks", disks).
		Str("mode", mode).
		Int("moves", len(solution.Moves)).
		Dur("solve_duration", elapsed).
		Msg("puzzle solved")

	if txn := newrelic.FromContext(ctx); txn != nil {
		txn.AddAttribute("hanoi.disks", disks)
		txn.AddAttribute("hanoi.mode", mode)
	}
	if app := ss.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HanoiSolve", map[string]interface{}{
			"disks":       disks,
			"mode":        mode,
			"duration_ms": elapsed.Milliseconds(),
		})
	}

	return &SolveResponse{
		Steps:      solution.Moves,
		TotalSteps: solution.Total,
	}, nil
}

// loggerFromContext prefers the request-scoped logger stored by the
// middleware, falling back to the server logger.
func loggerFromContext(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return fallback
}
