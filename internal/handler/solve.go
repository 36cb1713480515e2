package handler

import (
	"encoding/json"
	"errors"
	"math"
	"strings"

	"github.com/deppfellow/go-hanoi/internal/errs"
	"github.com/deppfellow/go-hanoi/internal/server"
	"github.com/deppfellow/go-hanoi/internal/service"
	"github.com/deppfellow/go-hanoi/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// SolveRequest is the body of POST /solve.
//
//	{ "numberOfDisks": 3 }
//
// NumberOfDisks is kept raw so that a string, a boolean or a missing field
// all end up as the same validation error instead of a decode failure.
type SolveRequest struct {
	NumberOfDisks json.RawMessage `json:"numberOfDisks"`

	disks int
}

// diskCount is what validator checks once the raw value is known to be a number.
type diskCount struct {
	NumberOfDisks float64 `validate:"gte=1"`
}

// Validate checks that numberOfDisks is a whole number >= 1 and remembers it.
func (r *SolveRequest) Validate() error {
	invalid := validation.CustomValidationErrors{{
		Field:   "numberOfDisks",
		Message: errs.MsgInvalidDiskCount,
	}}

	// null, "3", true, {} and absent all fail here.
	var n float64
	if len(r.NumberOfDisks) == 0 || string(r.NumberOfDisks) == "null" {
		return invalid
	}
	if err := json.Unmarshal(r.NumberOfDisks, &n); err != nil {
		// A literal beyond float64 (1e400) is a number, just too large.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && strings.HasPrefix(typeErr.Value, "number") &&
			r.NumberOfDisks[0] != '-' {
			r.disks = math.MaxInt32
			return nil
		}
		return invalid
	}

	if err := validate.Struct(diskCount{NumberOfDisks: n}); err != nil {
		return invalid
	}

	if n != math.Trunc(n) {
		return validation.CustomValidationErrors{{
			Field:   "numberOfDisks",
			Message: errs.MsgWholeDiskCount,
		}}
	}

	// Anything this large is refused by the service limit anyway.
	if n > math.MaxInt32 {
		n = math.MaxInt32
	}
	r.disks = int(n)

	return nil
}

// Disks returns the validated disk count.
func (r *SolveRequest) Disks() int {
	return r.disks
}

// SolveHandler serves the puzzle endpoint.
type SolveHandler struct {
	Handler
	solverService *service.SolverService
}

// NewSolveHandler constructs a SolveHandler.
func NewSolveHandler(s *server.Server, solverService *service.SolverService) *SolveHandler {
	return &SolveHandler{
		Handler:       NewHandler(s),
		solverService: solverService,
	}
}

// Solve answers with the move list (small counts) or just the total.
func (h *SolveHandler) Solve(c echo.Context, req *SolveRequest) (*service.SolveResponse, error) {
	return h.solverService.Solve(c.Request().Context(), req.Disks())
}
