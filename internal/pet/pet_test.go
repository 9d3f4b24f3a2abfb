package pet

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func mockTimeNow(t *testing.T) time.Time {
	originalTimeNow := TimeNow
	currentTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	TimeNow = func() time.Time { return currentTime }
	t.Cleanup(func() { TimeNow = originalTimeNow })
	return currentTime
}

// mockClock is mockTimeNow with a clock the test can move forward.
func mockClock(t *testing.T) *time.Time {
	originalTimeNow := TimeNow
	currentTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	TimeNow = func() time.Time { return currentTime }
	t.Cleanup(func() { TimeNow = originalTimeNow })
	return &currentTime
}

func mockRandFloat64(t *testing.T, v float64) {
	originalRand := RandFloat64
	RandFloat64 = func() float64 { return v }
	t.Cleanup(func() { RandFloat64 = originalRand })
}

// newTestEngine returns an engine over an in-memory store seeded with s.
func newTestEngine(t *testing.T, s Stats) (*Engine, *MemoryStore) {
	t.Helper()
	store := &MemoryStore{stats: &s}
	return NewEngine(store, DefaultTuning()), store
}

// fullStats is an awake pet with every need topped up.
func fullStats() Stats {
	s := NewStats("Tester")
	s.Health = MaxStat
	return s
}

func TestNewStats(t *testing.T) {
	currentTime := mockTimeNow(t)

	s := NewStats("")
	if s.Name != DefaultPetName {
		t.Errorf("Expected name %q, got %q", DefaultPetName, s.Name)
	}
	if _, err := uuid.Parse(s.ID); err != nil {
		t.Errorf("Expected a UUID id, got %q: %v", s.ID, err)
	}
	if s.Health != DefaultHealth {
		t.Errorf("Expected health %d, got %d", DefaultHealth, s.Health)
	}
	for _, n := range Needs(s)[1:] {
		if n.Value != MaxStat {
			t.Errorf("Expected %s to start at %d, got %d", n.Need, MaxStat, n.Value)
		}
	}
	if s.Level != MinLevel || s.Exp != 0 {
		t.Errorf("Expected level %d with 0 exp, got level %d with %d exp", MinLevel, s.Level, s.Exp)
	}
	if s.State != StateNormal {
		t.Errorf("Expected state %s, got %s", StateNormal, s.State)
	}
	if s.ForcedSleep || s.ForcedSleepStart != nil {
		t.Error("Expected a new pet not to be in forced sleep")
	}
	if !s.LastSaved.Equal(currentTime) {
		t.Errorf("Expected LastSaved %v, got %v", currentTime, s.LastSaved)
	}

	if named := NewStats("Mochi"); named.Name != "Mochi" {
		t.Errorf("Expected name Mochi, got %q", named.Name)
	}
	if other := NewStats(""); other.ID == s.ID {
		t.Error("Expected every new pet to get its own id")
	}
}

func TestNormalize(t *testing.T) {
	start := time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		in     Stats
		verify func(t *testing.T, s Stats)
	}{
		{
			name: "Stats are clamped to 0..100",
			in:   Stats{Health: 150, Hunger: -5, Thirst: 101, Sleep: -1, Happiness: 50, Level: 1, State: StateNormal},
			verify: func(t *testing.T, s Stats) {
				if s.Health != 100 || s.Hunger != 0 || s.Thirst != 100 || s.Sleep != 0 || s.Happiness != 50 {
					t.Errorf("Expected 100/0/100/0/50, got %d/%d/%d/%d/%d", s.Health, s.Hunger, s.Thirst, s.Sleep, s.Happiness)
				}
			},
		},
		{
			name: "Level is clamped to 1..99",
			in:   Stats{Level: 0, State: StateNormal},
			verify: func(t *testing.T, s Stats) {
				if s.Level != MinLevel {
					t.Errorf("Expected level %d, got %d", MinLevel, s.Level)
				}
			},
		},
		{
			name: "Level above max is clamped",
			in:   Stats{Level: 500, Exp: 12345, State: StateNormal},
			verify: func(t *testing.T, s Stats) {
				if s.Level != MaxLevel {
					t.Errorf("Expected level %d, got %d", MaxLevel, s.Level)
				}
				if s.Exp != 12345 {
					t.Errorf("Expected exp at max level to be kept, got %d", s.Exp)
				}
			},
		},
		{
			name: "Exp stays below the next level",
			in:   Stats{Level: 2, Exp: 900, State: StateNormal},
			verify: func(t *testing.T, s Stats) {
				if s.Exp != 199 {
					t.Errorf("Expected exp 199, got %d", s.Exp)
				}
			},
		},
		{
			name: "Negative exp becomes zero",
			in:   Stats{Level: 3, Exp: -10, State: StateNormal},
			verify: func(t *testing.T, s Stats) {
				if s.Exp != 0 {
					t.Errorf("Expected exp 0, got %d", s.Exp)
				}
			},
		},
		{
			name: "Unknown state becomes normal",
			in:   Stats{Level: 1, State: "dancing"},
			verify: func(t *testing.T, s Stats) {
				if s.State != StateNormal {
					t.Errorf("Expected state %s, got %s", StateNormal, s.State)
				}
			},
		},
		{
			name: "Forced sleep implies the sleep state",
			in:   Stats{Level: 1, State: StateHappy, ForcedSleep: true, ForcedSleepStart: &start},
			verify: func(t *testing.T, s Stats) {
				if s.State != StateSleep {
					t.Errorf("Expected state %s, got %s", StateSleep, s.State)
				}
				if s.ForcedSleepStart == nil || !s.ForcedSleepStart.Equal(start) {
					t.Errorf("Expected forced sleep start to be kept, got %v", s.ForcedSleepStart)
				}
			},
		},
		{
			name: "Stale forced sleep start is dropped",
			in:   Stats{Level: 1, State: StateNormal, ForcedSleepStart: &start},
			verify: func(t *testing.T, s Stats) {
				if s.ForcedSleepStart != nil {
					t.Errorf("Expected nil forced sleep start, got %v", s.ForcedSleepStart)
				}
			},
		},
		{
			name: "Game counters are repaired",
			in:   Stats{Level: 1, State: StateNormal, Games: GameStats{Total: 1, Wins: 2, Draws: -1, Loses: 1}},
			verify: func(t *testing.T, s Stats) {
				if s.Games.Draws != 0 {
					t.Errorf("Expected draws 0, got %d", s.Games.Draws)
				}
				if s.Games.Total != 3 {
					t.Errorf("Expected total 3, got %d", s.Games.Total)
				}
			},
		},
		{
			name: "Missing identity is filled in",
			in:   Stats{Level: 1, State: StateNormal},
			verify: func(t *testing.T, s Stats) {
				if s.ID == "" {
					t.Error("Expected an id to be assigned")
				}
				if s.Name != DefaultPetName {
					t.Errorf("Expected name %q, got %q", DefaultPetName, s.Name)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.in
			s.Normalize()
			tt.verify(t, s)
		})
	}
}

func TestStateValid(t *testing.T) {
	for _, s := range []State{StateNormal, StateDaze, StateSleep, StateHappy, StateSad, StateAngry, StateSurprised} {
		if !s.Valid() {
			t.Errorf("Expected %s to be valid", s)
		}
	}
	if State("").Valid() || State("dead").Valid() {
		t.Error("Expected unknown states to be invalid")
	}
}
