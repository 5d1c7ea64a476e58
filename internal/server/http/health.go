package http

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

type (
	HealthResponseDTO struct {
		Status         string    `json:"status"`
		Timestamp      time.Time `json:"timestamp"`
		RuntimeVersion string    `json:"runtime_version"`
	}

	HealthOutput struct {
		Body HealthResponseDTO
	}
)

// RegisterHealth registers the health operation. It touches no
// dependencies.
func RegisterHealth(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Liveness check",
		Tags:        []string{"health"},
	}, func(context.Context, *struct{}) (*HealthOutput, error) {
		return &HealthOutput{
			Body: HealthResponseDTO{
				Status:         "ok",
				Timestamp:      time.Now().UTC(),
				RuntimeVersion: runtime.Version(),
			},
		}, nil
	})
}
