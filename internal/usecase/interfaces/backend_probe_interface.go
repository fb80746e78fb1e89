package interfaces

import (
	"context"

	"comercial_moveis/internal/infrastructure/probe"
)

// IBackendProbe checks connectivity with the external commercial backend.
type IBackendProbe interface {
	CheckHealth(ctx context.Context) probe.Result
	CheckEndpoints(ctx context.Context, paths []string) []probe.Result
}
