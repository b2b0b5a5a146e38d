package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sfwrprogclass/MoneySmarts/internal/game"
)

// FileStore keeps one JSON file per save under a directory, defaulting to
// ~/.smartz/saves.
type FileStore struct {
	dir string
}

// NewFileStore creates the save directory if needed. An empty dir selects
// the default under the user home.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".smartz", "saves")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

type fileEnvelope struct {
	ID         string        `json:"id"`
	PlayerName string        `json:"player_name"`
	SavedAt    time.Time     `json:"saved_at"`
	Snapshot   game.Snapshot `json:"snapshot"`
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

func (s *FileStore) Save(_ context.Context, id string, snap game.Snapshot) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("save id is required")
	}
	env := fileEnvelope{
		ID:       id,
		SavedAt:  time.Now().UTC(),
		Snapshot: snap,
	}
	if snap.Player != nil {
		env.PlayerName = snap.Player.Name
	}
	raw, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}
	// Write to a temp file first so a failed write never clobbers the
	// previous save.
	tmp := s.path(id) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(id))
}

func (s *FileStore) Load(_ context.Context, id string) (game.Snapshot, error) {
	raw, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return game.Snapshot{}, ErrNotFound
		}
		return game.Snapshot{}, err
	}
	if len(raw) == 0 {
		return game.Snapshot{}, ErrNotFound
	}
	var env fileEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return game.Snapshot{}, fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}
	if env.Snapshot.Player == nil {
		return game.Snapshot{}, ErrCorruptSave
	}
	return env.Snapshot, nil
}

func (s *FileStore) List(_ context.Context) ([]SaveInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var out []SaveInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			continue
		}
		var env fileEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			continue
		}
		if env.ID == "" {
			env.ID = strings.TrimSuffix(name, ".json")
		}
		out = append(out, SaveInfo{ID: env.ID, PlayerName: env.PlayerName, SavedAt: env.SavedAt})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SavedAt.After(out[j].SavedAt) })
	return out, nil
}

func (s *FileStore) Delete(_ context.Context, id string) error {
	err := os.Remove(s.path(id))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}
