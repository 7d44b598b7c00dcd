package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/obslog"
	"github.com/lgbarn/chess-go/internal/session"
)

// record is the JSON value stored per game.
type record struct {
	ID       string    `json:"id"`
	SavedAt  time.Time `json:"saved_at"`
	Snapshot string    `json:"snapshot"`
}

// RedisStore keeps snapshots in redis under "<prefix>:game:<id>", with an
// index set "<prefix>:games" of saved IDs.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

// NewRedisStore returns a store over rdb. A zero ttl keeps games forever.
func NewRedisStore(rdb *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix, ttl: ttl, now: time.Now}
}

func (s *RedisStore) keyGame(id string) string { return s.prefix + ":game:" + id }
func (s *RedisStore) keyIndex() string         { return s.prefix + ":games" }

// Save writes the snapshot and refreshes its expiry.
func (s *RedisStore) Save(ctx context.Context, id string, snap session.Snapshot) error {
	if err := checkID(id); err != nil {
		return err
	}
	text, err := snap.MarshalText()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(record{ID: id, SavedAt: s.now().UTC(), Snapshot: string(text)})
	if err != nil {
		return err
	}

	if err := s.rdb.Set(ctx, s.keyGame(id), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("saving %s: %w", id, err)
	}
	if err := s.rdb.SAdd(ctx, s.keyIndex(), id).Err(); err != nil {
		return fmt.Errorf("indexing %s: %w", id, err)
	}
	obslog.L().Debug("store_save", zap.String("backend", "redis"), zap.String("id", id))
	return nil
}

// Load reads a saved game.
func (s *RedisStore) Load(ctx context.Context, id string) (session.Snapshot, error) {
	rec, err := s.load(ctx, id)
	if err != nil {
		return session.Snapshot{}, err
	}
	var snap session.Snapshot
	if err := snap.UnmarshalText([]byte(rec.Snapshot)); err != nil {
		return session.Snapshot{}, fmt.Errorf("%s: %w", id, err)
	}
	return snap, nil
}

// SavedAt reports when a game was last saved.
func (s *RedisStore) SavedAt(ctx context.Context, id string) (time.Time, error) {
	rec, err := s.load(ctx, id)
	if err != nil {
		return time.Time{}, err
	}
	return rec.SavedAt, nil
}

func (s *RedisStore) load(ctx context.Context, id string) (record, error) {
	if err := checkID(id); err != nil {
		return record{}, err
	}
	raw, err := s.rdb.Get(ctx, s.keyGame(id)).Bytes()
	if err == redis.Nil {
		return record{}, fmt.Errorf("%s: %w", id, errors.ErrNotFound)
	}
	if err != nil {
		return record{}, err
	}
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return record{}, fmt.Errorf("%s: %w", id, errors.ErrInvalidSnapshot)
	}
	return rec, nil
}

// List returns the IDs of saved games that have not expired, in name
// order. Expired IDs are dropped from the index.
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	ids, err := s.rdb.SMembers(ctx, s.keyIndex()).Result()
	if err != nil {
		return nil, err
	}

	live := ids[:0]
	for _, id := range ids {
		n, err := s.rdb.Exists(ctx, s.keyGame(id)).Result()
		if err != nil {
			return nil, err
		}
		if n == 0 {
			_ = s.rdb.SRem(ctx, s.keyIndex(), id).Err()
			continue
		}
		live = append(live, id)
	}
	sort.Strings(live)
	return live, nil
}

// Delete removes a saved game.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	n, err := s.rdb.Del(ctx, s.keyGame(id)).Result()
	if err != nil {
		return err
	}
	_ = s.rdb.SRem(ctx, s.keyIndex(), id).Err()
	if n == 0 {
		return fmt.Errorf("%s: %w", id, errors.ErrNotFound)
	}
	return nil
}
