package main

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/zoomboard/common"
)

// Settings is the small persisted preference set.
type Settings struct {
	Volume float64 `yaml:"volume"`
	Muted  bool    `yaml:"muted"`
}

func DefaultSettings() Settings {
	return Settings{Volume: 0.8}
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsManager loads and saves Settings through gdata. A nil store
// degrades to in-memory settings that last for the session.
type SettingsManager struct {
	store    *gdata.Manager
	settings Settings
}

func NewSettingsManager(store *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{store: store, settings: DefaultSettings()}
	if err := sm.load(); err != nil {
		log.Printf("settings: load failed: %v (using defaults)", err)
	}
	return sm
}

func (sm *SettingsManager) load() error {
	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}
	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("unmarshal settings: %w", err)
	}
	sm.settings = loaded
	return nil
}

func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Volume returns the cue volume and whether cues are muted. Shaped to
// plug straight into the cue player.
func (sm *SettingsManager) Volume() (float64, bool) {
	return sm.settings.Volume, sm.settings.Muted
}

func (sm *SettingsManager) ToggleMute() {
	sm.settings.Muted = !sm.settings.Muted
}

// AdjustVolume nudges the volume by delta, clamped to [0, 1].
func (sm *SettingsManager) AdjustVolume(delta float64) {
	sm.settings.Volume = common.Clamp(sm.settings.Volume+delta, 0, 1)
}
