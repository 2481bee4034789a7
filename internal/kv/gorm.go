package kv

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var _ KV = (*Gorm)(nil)

type kvEntry struct {
	Key   string `gorm:"primaryKey"`
	Value []byte
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

// Gorm is the sqlite driver, for deployments that want the data inspectable
// with ordinary SQL tooling.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(path string) (*Gorm, error) {
	newLogger := logger.New(
		logrus.New(),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: newLogger, TranslateError: true})
	if err != nil {
		return nil, errors.Wrapf(err, "opening sqlite at %s", path)
	}
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, errors.Wrap(err, "migrating kv_entries")
	}
	return &Gorm{db: db}, nil
}

func (g *Gorm) Get(ctx context.Context, key string) ([]byte, error) {
	var entry kvEntry
	result := g.db.WithContext(ctx).First(&entry, "key = ?", key)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrKeyNotFound
	}
	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "getting key %s", key)
	}
	return entry.Value, nil
}

func (g *Gorm) Set(ctx context.Context, key string, value []byte) error {
	entry := kvEntry{Key: key, Value: value}
	result := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry)
	return errors.Wrapf(result.Error, "setting key %s", key)
}

func (g *Gorm) Delete(ctx context.Context, key string) error {
	result := g.db.WithContext(ctx).Delete(&kvEntry{}, "key = ?", key)
	return errors.Wrapf(result.Error, "deleting key %s", key)
}

func (g *Gorm) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
