package handler

import (
	"time"

	"github.com/deppfellow/go-hanoi/internal/middleware"
	"github.com/deppfellow/go-hanoi/internal/server"
	"github.com/deppfellow/go-hanoi/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// Handler carries the shared server container. Concrete handlers embed it.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint. Req is a pointer type so the body can be
// decoded into it.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// Handle adapts a typed endpoint to echo. The request body is decoded into a
// fresh newReq() and validated before fn runs; the result is written as JSON
// with status.
//
// Errors are returned untouched so the global error handler shapes them.
//
//	router.POST("/solve", handler.Handle(h, h.Solve, http.StatusOK, func() *SolveRequest { return &SolveRequest{} }))
func Handle[Req validation.Validatable, Res any](
	h Handler,
	fn HandlerFunc[Req, Res],
	status int,
	newReq func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		txn := newrelic.FromContext(c.Request().Context())
		logger := middleware.GetLogger(c).With().Str("route", c.Path()).Logger()

		if txn != nil {
			txn.AddAttribute("handler.name", c.Path())
		}

		req := newReq()
		if err := validation.BindAndValidate(c, req); err != nil {
			failed(logger, txn, "validation", err, time.Since(start))
			return err
		}
		validated := time.Now()
		phaseDone(txn, "validation", validated.Sub(start))

		res, err := fn(c, req)
		if err != nil {
			failed(logger, txn, "handler", err, time.Since(validated))
			return err
		}
		phaseDone(txn, "handler", time.Since(validated))

		logger.Info().
			Dur("validation_duration", validated.Sub(start)).
			Dur("total_duration", time.Since(start)).
			Msg("request completed")

		return c.JSON(status, res)
	}
}

// failed logs a phase failure and notices it on the transaction.
func failed(logger zerolog.Logger, txn *newrelic.Transaction, phase string, err error, d time.Duration) {
	logger.Warn().Err(err).Str("phase", phase).Dur("duration", d).Msg(phase + " failed")

	if txn != nil {
		txn.NoticeError(nrpkgerrors.Wrap(err))
		txn.AddAttribute(phase+".status", "error")
		txn.AddAttribute(phase+".duration_ms", d.Milliseconds())
	}
}

func phaseDone(txn *newrelic.Transaction, phase string, d time.Duration) {
	if txn != nil {
		txn.AddAttribute(phase+".status", "success")
		txn.AddAttribute(phase+".duration_ms", d.Milliseconds())
	}
}
