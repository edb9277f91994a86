package models

import "time"

// CacheEntry backs the opaque key/value local store: one row per storage
// key, value is a serialized record collection or credential blob.
type CacheEntry struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}
