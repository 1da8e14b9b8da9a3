package kvstore

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Item is one row of the persisted namespace.
type Item struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

func (Item) TableName() string {
	return "kv_items"
}

type gormStore struct {
	keyLocker
	db *gorm.DB
}

// NewGormStore persists the namespace in a single table through gorm. This is
// the durable "local storage" backend; sqlite keeps everything in one file on
// the machine running the simulator.
func NewGormStore(db *gorm.DB) (*gormStore, error) {
	if err := db.AutoMigrate(&Item{}); err != nil {
		return nil, err
	}

	return &gormStore{keyLocker: newKeyLocker(), db: db}, nil
}

func (s *gormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var item Item
	err := s.db.WithContext(ctx).Where(&Item{Key: key}).Take(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return item.Value, nil
}

func (s *gormStore) Set(ctx context.Context, key string, value []byte) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&Item{Key: key, Value: value, UpdatedAt: time.Now()}).Error
}

func (s *gormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where(&Item{Key: key}).Delete(&Item{}).Error
}

func (s *gormStore) Update(ctx context.Context, key string, fn func(old []byte) ([]byte, error)) error {
	return update(ctx, s, s.keyLocker, key, fn)
}
