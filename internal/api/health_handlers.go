package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns server health status with component checks",
		Tags:        []string{"Health"},
	}, s.handleHealthCheck)
}

// ComponentHealth describes the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status" doc:"Component status: healthy, degraded, or unhealthy"`
	Message string `json:"message,omitempty" doc:"Additional status information"`
}

// HealthResponse contains health check data in API responses.
type HealthResponse struct {
	Status     string                     `json:"status" doc:"Overall status: healthy or degraded"`
	Components map[string]ComponentHealth `json:"components" doc:"Individual component statuses"`
}

// HealthOutput wraps the health response for Huma.
type HealthOutput struct {
	Body HealthResponse
}

func (s *Server) handleHealthCheck(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	components := make(map[string]ComponentHealth)
	overall := "healthy"

	// The taxonomy is compiled at startup; an empty pattern table means
	// every profile degrades to the general shelf.
	tax := s.store.Current()
	if len(tax.Patterns) > 0 {
		components["taxonomy"] = ComponentHealth{Status: "healthy"}
	} else {
		components["taxonomy"] = ComponentHealth{
			Status:  "degraded",
			Message: "no genre patterns loaded",
		}
		overall = "degraded"
	}

	// Readwise is optional; without it only the explicit-history endpoints
	// work.
	if s.history.Configured() {
		components["readwise"] = ComponentHealth{Status: "healthy"}
	} else {
		components["readwise"] = ComponentHealth{
			Status:  "degraded",
			Message: "readwise token not configured",
		}
		if overall == "healthy" {
			overall = "degraded"
		}
	}

	return &HealthOutput{
		Body: HealthResponse{
			Status:     overall,
			Components: components,
		},
	}, nil
}
