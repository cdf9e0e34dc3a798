package store

import (
	"encoding/json"
	"fmt"

	"github.com/Khatixer/farmguard-ai/models"
)

// SettingsStore persists each user's app settings as one JSON value.
type SettingsStore struct {
	kv KV
}

func NewSettingsStore(kv KV) *SettingsStore {
	return &SettingsStore{kv: kv}
}

func settingsKey(userID uint) string { return fmt.Sprintf("settings:%d", userID) }

// Get returns the saved settings, or the defaults when none were saved.
func (s *SettingsStore) Get(userID uint) (models.AppSettings, error) {
	raw, ok, err := s.kv.Get(settingsKey(userID))
	if err != nil {
		return models.AppSettings{}, err
	}
	if !ok {
		return models.DefaultSettings(), nil
	}
	var settings models.AppSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return models.AppSettings{}, fmt.Errorf("corrupt settings for user %d: %w", userID, err)
	}
	return settings, nil
}

func (s *SettingsStore) Put(userID uint, settings models.AppSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return s.kv.Set(settingsKey(userID), raw)
}

// PendingProfileStore caches the profile fields submitted at signup, keyed
// by account id, until the first successful login consumes them.
type PendingProfileStore struct {
	kv KV
}

func NewPendingProfileStore(kv KV) *PendingProfileStore {
	return &PendingProfileStore{kv: kv}
}

func pendingKey(userID uint) string { return fmt.Sprintf("pending_profile:%d", userID) }

func (s *PendingProfileStore) Cache(userID uint, profile models.PendingProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.kv.Set(pendingKey(userID), raw)
}

// Consume returns the cached profile and deletes the cache entry. The
// second return is false when nothing was cached.
func (s *PendingProfileStore) Consume(userID uint) (*models.PendingProfile, bool, error) {
	raw, ok, err := s.kv.Get(pendingKey(userID))
	if err != nil || !ok {
		return nil, false, err
	}
	var profile models.PendingProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, false, fmt.Errorf("corrupt pending profile for user %d: %w", userID, err)
	}
	if err := s.kv.Delete(pendingKey(userID)); err != nil {
		return nil, false, err
	}
	return &profile, true, nil
}
