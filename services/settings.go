package services

import (
	"sync"

	"github.com/mekbib/bingo-gateway/models"
	"github.com/mekbib/bingo-gateway/utils/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MemorySettings is the in-process settings store used when no
// database is configured.
type MemorySettings struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemorySettings() *MemorySettings {
	return &MemorySettings{m: make(map[string]string)}
}

func (s *MemorySettings) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *MemorySettings) Set(key, value string) {
	s.mu.Lock()
	s.m[key] = value
	s.mu.Unlock()
}

// DBSettings persists preferences to the preferences table. Reads and
// writes are best-effort: a failed write only costs a cosmetic setting.
type DBSettings struct {
	db *gorm.DB
}

func NewDBSettings(db *gorm.DB) *DBSettings {
	return &DBSettings{db: db}
}

func (s *DBSettings) Get(key string) (string, bool) {
	var pref models.Preference
	if err := s.db.First(&pref, "key = ?", key).Error; err != nil {
		return "", false
	}
	return pref.Value, true
}

func (s *DBSettings) Set(key, value string) {
	pref := models.Preference{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
	if err != nil {
		logger.Errorf("settings: save %q: %v", key, err)
	}
}
