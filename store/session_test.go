package store

import (
	"testing"

	"github.com/Khatixer/farmguard-ai/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaultsWhenAbsent(t *testing.T) {
	s := NewSettingsStore(newTestKV(t))

	settings, err := s.Get(7)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), settings)
}

func TestSettingsPutGet(t *testing.T) {
	s := NewSettingsStore(newTestKV(t))

	want := models.AppSettings{
		Theme:         "dark",
		Notifications: false,
		OfflineMode:   true,
		HighContrast:  true,
	}
	require.NoError(t, s.Put(7, want))

	got, err := s.Get(7)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPendingProfileConsumeDeletes(t *testing.T) {
	s := NewPendingProfileStore(newTestKV(t))

	profile := models.PendingProfile{
		Name:     "Amina",
		MainCrop: "Maize",
		FarmSize: 3.5,
		FarmType: "Organic",
	}
	require.NoError(t, s.Cache(4, profile))

	got, found, err := s.Consume(4)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, profile, *got)

	// second consume finds nothing
	_, found, err = s.Consume(4)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPendingProfileConsumeMissing(t *testing.T) {
	s := NewPendingProfileStore(newTestKV(t))

	_, found, err := s.Consume(99)
	require.NoError(t, err)
	assert.False(t, found)
}
