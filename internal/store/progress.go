package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// ProgressKey is the fixed storage key for the single saved game.
// Kept identical to the original web build so the record shape is shared.
const ProgressKey = "cerebral_nexus_progress"

// ProgressData is the serialized progression record. Older records may
// lack seenPuzzles or medals; Load fills them with empty defaults.
type ProgressData struct {
	UnlockedLevel int            `json:"unlockedLevel"`
	LevelWins     map[int]int    `json:"levelWins"`
	TotalScore    int            `json:"totalScore"`
	SeenPuzzles   []string       `json:"seenPuzzles"`
	Medals        map[int]string `json:"medals"`
}

// ProgressRepo loads and saves the durable progression record.
type ProgressRepo interface {
	// Load returns the saved record, or nil if none exists.
	Load(ctx context.Context) (*ProgressData, error)

	// Save upserts the record under the fixed key.
	Save(ctx context.Context, data *ProgressData) error
}

type progressRepo struct {
	db *sql.DB
}

func (r *progressRepo) Load(ctx context.Context) (*ProgressData, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM progress WHERE key = ?`, ProgressKey,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	var data ProgressData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("parse progress record: %w", err)
	}

	// Backward compatibility with records written before these fields existed.
	if data.SeenPuzzles == nil {
		data.SeenPuzzles = []string{}
	}
	if data.Medals == nil {
		data.Medals = map[int]string{}
	}
	if data.LevelWins == nil {
		data.LevelWins = map[int]int{}
	}

	return &data, nil
}

func (r *progressRepo) Save(ctx context.Context, data *ProgressData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal progress record: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO progress (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		ProgressKey, string(raw),
	)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// Reset deletes the saved game. Used by the reset command.
func (s *Store) Reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM progress WHERE key = ?`, ProgressKey)
	if err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}
