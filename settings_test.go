package main

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func testStore(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	store, err := gdata.Open(gdata.Config{AppName: "zoomboard_test"})
	if err != nil {
		t.Fatalf("gdata.Open: %v", err)
	}
	return store
}

func TestSettingsRoundTrip(t *testing.T) {
	store := testStore(t)

	sm := NewSettingsManager(store)
	sm.AdjustVolume(-0.3)
	sm.ToggleMute()
	if err := sm.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded := NewSettingsManager(store)
	vol, muted := reloaded.Volume()
	if vol != 0.5 {
		t.Fatalf("volume = %v, want 0.5", vol)
	}
	if !muted {
		t.Fatal("mute flag did not persist")
	}
}

func TestSettingsDefaultsWithoutStore(t *testing.T) {
	sm := NewSettingsManager(nil)
	vol, muted := sm.Volume()
	if vol != DefaultSettings().Volume || muted {
		t.Fatalf("defaults = (%v, %v)", vol, muted)
	}
	if err := sm.Save(); err != nil {
		t.Fatalf("Save without a store: %v", err)
	}
}

func TestAdjustVolumeClamps(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.AdjustVolume(5)
	if vol, _ := sm.Volume(); vol != 1 {
		t.Fatalf("volume = %v, want 1", vol)
	}
	sm.AdjustVolume(-5)
	if vol, _ := sm.Volume(); vol != 0 {
		t.Fatalf("volume = %v, want 0", vol)
	}
}
