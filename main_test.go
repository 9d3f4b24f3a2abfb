package main

import (
	"testing"
	"time"

	"fatcat/internal/config"
	"fatcat/internal/pet"
)

func TestCatchUp(t *testing.T) {
	cfg := &config.Config{Engine: config.EngineConfig{
		TickInterval:   pet.TickInterval,
		OfflineCatchUp: true,
		MaxCatchUp:     24 * time.Hour,
	}}

	tests := []struct {
		name      string
		readOnly  bool
		enabled   bool
		wantTicks int
		wantSaves int
	}{
		{"Catches up an hour", false, true, 720, 1},
		{"Stats view leaves the pet alone", true, true, 0, 0},
		{"Disabled in config", false, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := pet.NewStats("Tester")
			s.LastSaved = time.Now().Add(-time.Hour)
			store := pet.NewMemoryStore()
			if err := store.Save(s); err != nil {
				t.Fatal(err)
			}
			engine := pet.NewEngine(store, pet.DefaultTuning())
			cfg.Engine.OfflineCatchUp = tt.enabled

			if n := catchUp(engine, cfg, tt.readOnly); n != tt.wantTicks {
				t.Errorf("Expected %d ticks, got %d", tt.wantTicks, n)
			}
			if got := store.Saves() - 1; got != tt.wantSaves {
				t.Errorf("Expected %d saves, got %d", tt.wantSaves, got)
			}
			if tt.wantTicks == 0 && engine.Snapshot() != s {
				t.Error("Expected the pet to be unchanged")
			}
		})
	}
}
