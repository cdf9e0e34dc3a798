package store

import (
	"errors"

	"gorm.io/gorm"
)

// KV is whole-value, JSON-blob persistence. Each logical key is read and
// written as one unit; there are no partial updates.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// KVEntry is the backing row for a stored value.
type KVEntry struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"type:text"`
}

// GormKV stores values in a single key/value table.
type GormKV struct {
	db *gorm.DB
}

func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

func (s *GormKV) Get(key string) ([]byte, bool, error) {
	var entry KVEntry
	err := s.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(entry.Value), true, nil
}

func (s *GormKV) Set(key string, value []byte) error {
	// Save upserts on the primary key.
	return s.db.Save(&KVEntry{Key: key, Value: string(value)}).Error
}

func (s *GormKV) Delete(key string) error {
	return s.db.Delete(&KVEntry{}, "key = ?", key).Error
}
