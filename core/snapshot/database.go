package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one persisted collection.
type Record struct {
	Key       string    `gorm:"column:snapshot_key;primaryKey;size:191"`
	Data      []byte    `gorm:"column:data"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName pins the table name regardless of gorm naming strategy.
func (Record) TableName() string { return "snapshots" }

// DatabaseStore persists snapshots in a SQL table.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a DatabaseStore. Call Migrate before first use on
// a fresh database.
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// Migrate creates the snapshots table if needed.
func (s *DatabaseStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Record{}); err != nil {
		return fmt.Errorf("failed to migrate snapshots table: %w", err)
	}
	return nil
}

func (s *DatabaseStore) Name() string { return BackendDatabase }

func (s *DatabaseStore) Load(ctx context.Context, key string) ([]byte, error) {
	var rec Record
	err := s.db.WithContext(ctx).Where("snapshot_key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}
	return rec.Data, nil
}

func (s *DatabaseStore) Save(ctx context.Context, key string, data []byte) error {
	rec := Record{Key: key, Data: data, UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "snapshot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}
	return nil
}
