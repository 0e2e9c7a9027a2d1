// Package postgres persists whole-state snapshots of the in-memory store.
// The live model never reads from the database during normal operation; the
// snapshot exists so a restart can pick up where the last save left off.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// SnapshotDTO is the single-row table holding the latest snapshot as a JSON
// document. Every save replaces the previous one.
type SnapshotDTO struct {
	ID      int `gorm:"primaryKey"`
	TakenAt time.Time
	Payload []byte `gorm:"type:jsonb"`
}

// TableName overrides GORM's default naming to use "snapshots".
func (SnapshotDTO) TableName() string {
	return "snapshots"
}

// SnapshotStore implements ports.SnapshotStore on PostgreSQL via GORM.
type SnapshotStore struct {
	db *gorm.DB
}

// NewSnapshotStore creates a snapshot store over the given connection.
func NewSnapshotStore(db *gorm.DB) SnapshotStore {
	return SnapshotStore{db: db}
}

// Migrate creates the snapshots table.
func (s SnapshotStore) Migrate() error {
	return s.db.AutoMigrate(&SnapshotDTO{})
}

// Save serializes the snapshot and upserts the single row.
func (s SnapshotStore) Save(ctx context.Context, snap ports.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	dto := SnapshotDTO{
		ID:      1,
		TakenAt: snap.TakenAt,
		Payload: payload,
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"taken_at", "payload"}),
		}).
		Create(&dto).Error
}

// Load reads and deserializes the latest snapshot.
func (s SnapshotStore) Load(ctx context.Context) (ports.Snapshot, error) {
	var dto SnapshotDTO
	err := s.db.WithContext(ctx).First(&dto, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.Snapshot{}, errs.NewObjectNotFoundErrorWithCause("snapshot", 1, err)
	}
	if err != nil {
		return ports.Snapshot{}, err
	}

	var snap ports.Snapshot
	if err = json.Unmarshal(dto.Payload, &snap); err != nil {
		return ports.Snapshot{}, err
	}
	return snap, nil
}
