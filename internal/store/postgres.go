package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sfwrprogclass/MoneySmarts/internal/game"
)

// PGStore persists snapshots in Postgres. Each save row holds the full
// snapshot as jsonb keyed by the save id.
type PGStore struct {
	pool *pgxpool.Pool
}

func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// EnsureSchema creates the saves table when it does not exist yet.
func (s *PGStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS smartz_saves (
			id          text PRIMARY KEY,
			player_name text NOT NULL,
			snapshot    jsonb NOT NULL,
			saved_at    timestamptz NOT NULL
		)`)
	return err
}

func (s *PGStore) Save(ctx context.Context, id string, snap game.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	playerName := ""
	if snap.Player != nil {
		playerName = snap.Player.Name
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO smartz_saves (id, player_name, snapshot, saved_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET player_name = EXCLUDED.player_name,
		    snapshot    = EXCLUDED.snapshot,
		    saved_at    = EXCLUDED.saved_at`,
		id, playerName, raw, time.Now().UTC())
	return err
}

func (s *PGStore) Load(ctx context.Context, id string) (game.Snapshot, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT snapshot FROM smartz_saves WHERE id = $1`, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return game.Snapshot{}, ErrNotFound
	}
	if err != nil {
		return game.Snapshot{}, err
	}
	var snap game.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return game.Snapshot{}, fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}
	if snap.Player == nil {
		return game.Snapshot{}, ErrCorruptSave
	}
	return snap, nil
}

func (s *PGStore) List(ctx context.Context) ([]SaveInfo, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, player_name, saved_at
		FROM smartz_saves
		ORDER BY saved_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SaveInfo
	for rows.Next() {
		var info SaveInfo
		if err := rows.Scan(&info.ID, &info.PlayerName, &info.SavedAt); err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

func (s *PGStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM smartz_saves WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
