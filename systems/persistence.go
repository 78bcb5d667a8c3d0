package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/balloons-static/config"
	"github.com/automoto/balloons-static/logging"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const settingsItem = "settings"

// SavedSettings are the viewer toggles remembered between runs.
type SavedSettings struct {
	WallVisible      bool   `json:"wallVisible"`
	ShowCharges      string `json:"showCharges"`
	ShowGrid         bool   `json:"showGrid"`
	ShowChargedArea  bool   `json:"showChargedArea"`
	ShowChargeCenter bool   `json:"showChargeCenter"`
	TwoBalloons      bool   `json:"twoBalloons"`
}

// ItemStore is the subset of gdata.Manager the settings need.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SettingsStore reads and writes SavedSettings. A store without a backend
// silently does nothing.
type SettingsStore struct {
	items ItemStore
	log   *zap.Logger
}

// OpenSettings opens the per-user gdata storage for appName.
func OpenSettings(cfg config.PersistenceConfig, logger *zap.Logger) (*SettingsStore, error) {
	s := &SettingsStore{log: logging.OrNop(logger).Named("persistence")}
	if !cfg.Enabled {
		return s, nil
	}
	m, err := gdata.Open(gdata.Config{AppName: cfg.AppName})
	if err != nil {
		return s, fmt.Errorf("open settings storage: %w", err)
	}
	s.items = m
	return s, nil
}

// NewSettingsStore wraps an existing item store.
func NewSettingsStore(items ItemStore, logger *zap.Logger) *SettingsStore {
	return &SettingsStore{items: items, log: logging.OrNop(logger).Named("persistence")}
}

// Load returns the saved settings, or nil when nothing has been saved yet.
func (s *SettingsStore) Load() (*SavedSettings, error) {
	if s.items == nil {
		return nil, nil
	}
	data, err := s.items.LoadItem(settingsItem)
	if err != nil {
		s.log.Warn("could not load settings", zap.Error(err))
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var saved SavedSettings
	if err := json.Unmarshal(data, &saved); err != nil {
		s.log.Warn("could not parse saved settings", zap.Error(err))
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &saved, nil
}

// Save stores settings.
func (s *SettingsStore) Save(saved *SavedSettings) error {
	if s.items == nil {
		return nil
	}
	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.items.SaveItem(settingsItem, data); err != nil {
		s.log.Warn("could not save settings", zap.Error(err))
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SettingsFromFlags captures the current flags.
func SettingsFromFlags(f config.FlagsConfig, twoBalloons bool) *SavedSettings {
	return &SavedSettings{
		WallVisible:      f.WallVisible,
		ShowCharges:      f.ShowCharges,
		ShowGrid:         f.ShowGrid,
		ShowChargedArea:  f.ShowChargedArea,
		ShowChargeCenter: f.ShowChargeCenter,
		TwoBalloons:      twoBalloons,
	}
}

// ApplySavedSettings copies saved settings over f. Unknown charge modes are
// ignored.
func ApplySavedSettings(f *config.FlagsConfig, saved *SavedSettings) {
	if saved == nil {
		return
	}
	f.WallVisible = saved.WallVisible
	switch saved.ShowCharges {
	case config.ShowChargesAll, config.ShowChargesNone, config.ShowChargesDiff:
		f.ShowCharges = saved.ShowCharges
	}
	f.ShowGrid = saved.ShowGrid
	f.ShowChargedArea = saved.ShowChargedArea
	f.ShowChargeCenter = saved.ShowChargeCenter
}
