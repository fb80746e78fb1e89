package interfaces

import (
	"context"

	"comercial_moveis/internal/domain/budget"
)

// ISessionStore keeps the inputs of open simulation sessions.
//
// Load of an unknown or expired session returns found == false.
type ISessionStore interface {
	Save(ctx context.Context, sessionID string, st budget.State) error
	Load(ctx context.Context, sessionID string) (st budget.State, found bool, err error)
	Delete(ctx context.Context, sessionID string) error
}
