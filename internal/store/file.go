package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/obslog"
	"github.com/lgbarn/chess-go/internal/session"
)

// Ext is the file extension of saved games.
const Ext = ".chess"

// FileStore keeps one snapshot file per game in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a store over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Path returns the file a game is saved to.
func (s *FileStore) Path(id string) string {
	return filepath.Join(s.dir, id+Ext)
}

// Save writes the snapshot, replacing any earlier save of the game.
func (s *FileStore) Save(_ context.Context, id string, snap session.Snapshot) error {
	if err := checkID(id); err != nil {
		return err
	}
	text, err := snap.MarshalText()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, id+".*.tmp")
	if err != nil {
		return fmt.Errorf("saving %s: %w", id, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(text); err != nil {
		tmp.Close()
		return fmt.Errorf("saving %s: %w", id, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("saving %s: %w", id, err)
	}
	if err := os.Rename(tmp.Name(), s.Path(id)); err != nil {
		return fmt.Errorf("saving %s: %w", id, err)
	}
	obslog.L().Debug("store_save", zap.String("backend", "file"), zap.String("id", id))
	return nil
}

// Load reads a saved game.
func (s *FileStore) Load(_ context.Context, id string) (session.Snapshot, error) {
	if err := checkID(id); err != nil {
		return session.Snapshot{}, err
	}
	return LoadFile(s.Path(id))
}

// LoadFile reads a snapshot file from any path.
func LoadFile(path string) (session.Snapshot, error) {
	text, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return session.Snapshot{}, fmt.Errorf("%s: %w", path, errors.ErrNotFound)
	}
	if err != nil {
		return session.Snapshot{}, err
	}

	var snap session.Snapshot
	if err := snap.UnmarshalText(text); err != nil {
		var parseErr *errors.ParseError
		if errors.As(err, &parseErr) {
			parseErr.File = path
		}
		return session.Snapshot{}, err
	}
	return snap, nil
}

// List returns the IDs of saved games in name order.
func (s *FileStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), Ext))
	}
	sort.Strings(ids)
	return ids, nil
}

// Delete removes a saved game.
func (s *FileStore) Delete(_ context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	err := os.Remove(s.Path(id))
	if os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", id, errors.ErrNotFound)
	}
	return err
}
