package server

import (
	"context"

	"football-player-service/internal/roster"
)

// Refresher abstracts the roster refresh loop for easier testing.
type Refresher interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() roster.Status
}
