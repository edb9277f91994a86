// Package cache is the local persistent store boundary: an opaque
// get/set/remove over string keys, backed by the sqlite cache_entries
// table. No transactionality is assumed across keys.
package cache

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"solartech.app/field-service/pkg/db"
	"solartech.app/field-service/pkg/models"
)

// Keys under which record collections and credentials are persisted.
const (
	KeyInterventions = "solartech_interventions"
	KeyCompanies     = "solartech_companies"
	KeyUsers         = "solartech_users"
	KeyAuthToken     = "solartech_auth_token"
	KeyAuthUser      = "solartech_user"
)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

type SqliteStore struct {
	Db db.DB
}

func NewSqliteStore(dbInstance db.DB) *SqliteStore {
	return &SqliteStore{Db: dbInstance}
}

func (s *SqliteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry models.CacheEntry
	err := s.Db.Conn.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return entry.Value, true, nil
}

func (s *SqliteStore) Set(ctx context.Context, key string, value []byte) error {
	entry := models.CacheEntry{Key: key, Value: value}
	return s.Db.Conn.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&entry).Error
}

func (s *SqliteStore) Remove(ctx context.Context, key string) error {
	return s.Db.Conn.WithContext(ctx).Delete(&models.CacheEntry{}, "key = ?", key).Error
}
