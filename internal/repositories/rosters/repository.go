// Package rosters persists dungeon rosters. A roster snapshot is the
// ordered list of living NPCs; loading one replaces whatever roster the
// service currently holds.
package rosters

//go:generate mockgen -destination=mock/mock_repository.go -package=mockrosters -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/dungeon-sim/internal/entities"
)

// Repository defines the interface for roster storage operations
type Repository interface {
	// Save overwrites the roster stored at target with the given NPCs,
	// preserving order
	Save(ctx context.Context, target string, npcs []*entities.NPC) error

	// Load retrieves the roster stored at target in saved order. A missing
	// target yields a not found error; unparsable entries are skipped.
	Load(ctx context.Context, target string) ([]*entities.NPC, error)
}
