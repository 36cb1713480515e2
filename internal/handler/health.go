package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/go-hanoi/internal/hanoi"
	"github.com/deppfellow/go-hanoi/internal/middleware"
	"github.com/deppfellow/go-hanoi/internal/server"
	"github.com/deppfellow/go-hanoi/internal/service"
	"github.com/labstack/echo/v4"
)

// selfCheckDisks is solved on every health check. It is small enough to
// cost nothing and large enough to exercise the recursion. The check runs on
// the bare solver so it never shows up in solve metrics or events.
const selfCheckDisks = 3

// HealthHandler exposes a "system" endpoint that uptime monitors and load
// balancers use to verify the service is alive and the solver answers.
type HealthHandler struct {
	Handler
	solverService *service.SolverService
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server, solverService *service.SolverService) *HealthHandler {
	return &HealthHandler{
		Handler:       NewHandler(s),
		solverService: solverService,
	}
}

// CheckHealth returns system health status and the solver self-check.
//
// Response includes:
//   - overall status (healthy/unhealthy)
//   - timestamp (UTC)
//   - environment (from config)
//   - solver limits and the self-check result
//
// It returns 200 when the self-check solves correctly and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	solverCheck := map[string]interface{}{
		"enumeration_limit": h.solverService.EnumerationLimit(),
		"max_disks":         h.solverService.MaxDisks(),
	}
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks": map[string]interface{}{
			"solver": solverCheck,
		},
	}

	checkStart := time.Now()
	err := checkSolution(h.server.Solver.Solve(selfCheckDisks))
	solverCheck["response_time"] = time.Since(checkStart).String()

	if err != nil {
		solverCheck["status"] = "unhealthy"
		solverCheck["error"] = err.Error()
		response["status"] = "unhealthy"

		logger.Error().
			Err(err).
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
				"check_type":    "solver",
				"operation":     "health_check",
				"error_message": err.Error(),
			})
		}

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	solverCheck["status"] = "healthy"

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

// checkSolution verifies the total and, when moves were listed, replays them.
func checkSolution(solution hanoi.Solution) error {
	if want := hanoi.MoveCount(solution.Disks); solution.Total.Cmp(want) != 0 {
		return fmt.Errorf("total is %s, want %s", solution.Total, want)
	}
	if !solution.Enumerated() {
		return nil
	}
	return hanoi.Replay(solution.Disks, hanoi.Canonical, solution.Moves)
}
