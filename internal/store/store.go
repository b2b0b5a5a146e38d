// Package store persists save games as versioned JSON snapshots.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/sfwrprogclass/MoneySmarts/internal/game"
)

var (
	ErrNotFound    = errors.New("save not found")
	ErrCorruptSave = errors.New("save data is corrupt")
)

// SaveInfo describes one saved game without loading its snapshot.
type SaveInfo struct {
	ID         string    `json:"id"`
	PlayerName string    `json:"player_name"`
	SavedAt    time.Time `json:"saved_at"`
}

// Store persists snapshots keyed by save id. Implementations must leave
// existing data untouched when a save fails, and must return
// ErrCorruptSave (not a partial snapshot) for undecodable data.
type Store interface {
	Save(ctx context.Context, id string, snap game.Snapshot) error
	Load(ctx context.Context, id string) (game.Snapshot, error)
	List(ctx context.Context) ([]SaveInfo, error)
	Delete(ctx context.Context, id string) error
}
