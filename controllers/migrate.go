package controllers

import (
	"github.com/Khatixer/farmguard-ai/config"
	"github.com/Khatixer/farmguard-ai/models"
	"github.com/Khatixer/farmguard-ai/store"

	"gorm.io/gorm"
)

// Blob stores shared by the handlers, wired by MigrateModels.
var (
	History         *store.HistoryStore
	Settings        *store.SettingsStore
	PendingProfiles *store.PendingProfileStore
)

// MigrateModels runs the database migrations and wires the stores.
func MigrateModels(db *gorm.DB) {
	config.DB = db
	db.AutoMigrate(&models.User{}, &store.KVEntry{})

	kv := store.NewGormKV(db)
	History = store.NewHistoryStore(kv)
	Settings = store.NewSettingsStore(kv)
	PendingProfiles = store.NewPendingProfileStore(kv)
}
