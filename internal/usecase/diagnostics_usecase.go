package usecase

import (
	"context"
	"log"
	"time"

	"comercial_moveis/internal/infrastructure/probe"
	"comercial_moveis/internal/usecase/interfaces"
)

// BackendReport is the outcome of probing the commercial backend.
type BackendReport struct {
	Healthy   bool           `json:"healthy"`
	CheckedAt time.Time      `json:"checked_at"`
	Results   []probe.Result `json:"results"`
}

type IDiagnosticsUseCase interface {
	CheckBackend(ctx context.Context, paths []string) BackendReport
}

type DiagnosticsUseCase struct {
	probe interfaces.IBackendProbe
}

var _ IDiagnosticsUseCase = (*DiagnosticsUseCase)(nil)

func NewDiagnosticsUseCase(p interfaces.IBackendProbe) *DiagnosticsUseCase {
	return &DiagnosticsUseCase{probe: p}
}

// CheckBackend never fails; Healthy is true only when every endpoint answered 2xx.
func (u *DiagnosticsUseCase) CheckBackend(ctx context.Context, paths []string) BackendReport {
	results := u.probe.CheckEndpoints(ctx, paths)
	healthy := len(results) > 0
	for _, r := range results {
		if !r.Success {
			healthy = false
		}
	}
	log.Printf("[diagnostics][usecase] backend check healthy=%t endpoints=%d", healthy, len(results))
	return BackendReport{Healthy: healthy, CheckedAt: time.Now().UTC(), Results: results}
}
