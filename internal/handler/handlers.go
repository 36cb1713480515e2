// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It parses requests, handles input validation using the..
// validation package, and calls the appropriate service layer.
// It acts as the interface between the HTTP request and the core..
// business logic.
package handler

import (
	"github.com/deppfellow/go-hanoi/internal/server"
	"github.com/deppfellow/go-hanoi/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
type Handlers struct {
	Solve   *SolveHandler   // Solve serves POST /solve.
	Health  *HealthHandler  // Health serves service health endpoints.
	OpenAPI *OpenAPIHandler // OpenAPI serves the API document.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Solve:   NewSolveHandler(s, services.Solver),
		Health:  NewHealthHandler(s, services.Solver),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
