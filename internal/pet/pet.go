package pet

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Testable time and random functions
var (
	TimeNow     = func() time.Time { return time.Now().UTC() }
	RandFloat64 = rand.Float64
)

// State is the pet's discrete behavioural state.
type State string

const (
	StateNormal    State = "normal"
	StateDaze      State = "daze"
	StateSleep     State = "sleep"
	StateHappy     State = "happy"
	StateSad       State = "sad"
	StateAngry     State = "angry"
	StateSurprised State = "surprised"
)

// Valid reports whether s is one of the known states.
func (s State) Valid() bool {
	switch s {
	case StateNormal, StateDaze, StateSleep, StateHappy, StateSad, StateAngry, StateSurprised:
		return true
	}
	return false
}

// GameStats counts rock-paper-scissors rounds
type GameStats struct {
	Total int `json:"total"`
	Wins  int `json:"wins"`
	Draws int `json:"draws"`
	Loses int `json:"loses"`
}

// Gender of the pet, shown on its profile
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is a known gender.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Stats represents the virtual pet's state
type Stats struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Gender      Gender    `json:"gender"`
	Birthday    time.Time `json:"birthday"`
	Personality string    `json:"personality"`
	Hobby       string    `json:"hobby"`

	Health    int `json:"health"` // energy
	Hunger    int `json:"hunger"` // satiety, 100 = full
	Thirst    int `json:"thirst"`
	Sleep     int `json:"sleep"`
	Happiness int `json:"happiness"`

	Level int `json:"level"`
	Exp   int `json:"exp"`

	State            State      `json:"state"`
	ForcedSleep      bool       `json:"forced_sleep"`
	ForcedSleepStart *time.Time `json:"forced_sleep_start,omitempty"`

	Games     GameStats `json:"games"`
	LastSaved time.Time `json:"last_saved"`
}

// NewStats creates a pet with default values
func NewStats(name string) Stats {
	if name == "" {
		name = DefaultPetName
	}
	now := TimeNow()
	return Stats{
		ID:          uuid.NewString(),
		Name:        name,
		Gender:      DefaultGender,
		Birthday:    now,
		Personality: DefaultPersonality,
		Hobby:       DefaultHobby,
		Health:      DefaultHealth,
		Hunger:      MaxStat,
		Thirst:      MaxStat,
		Sleep:       MaxStat,
		Happiness:   MaxStat,
		Level:       MinLevel,
		Exp:         0,
		State:       StateNormal,
		LastSaved:   now,
	}
}

// Normalize clamps every field into its valid range. Values loaded from disk
// go through here instead of being rejected.
func (s *Stats) Normalize() {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Name == "" {
		s.Name = DefaultPetName
	}
	s.normalizeProfile()
	s.Health = clampStat(s.Health)
	s.Hunger = clampStat(s.Hunger)
	s.Thirst = clampStat(s.Thirst)
	s.Sleep = clampStat(s.Sleep)
	s.Happiness = clampStat(s.Happiness)

	s.Level = max(MinLevel, min(s.Level, MaxLevel))
	if s.Exp < 0 {
		s.Exp = 0
	}
	if s.Level < MaxLevel && s.Exp >= ExpForNextLevel(s.Level) {
		s.Exp = ExpForNextLevel(s.Level) - 1
	}

	if !s.State.Valid() {
		s.State = StateNormal
	}
	if s.ForcedSleep {
		s.State = StateSleep
	} else {
		s.ForcedSleepStart = nil
	}

	s.Games.Wins = max(s.Games.Wins, 0)
	s.Games.Draws = max(s.Games.Draws, 0)
	s.Games.Loses = max(s.Games.Loses, 0)
	s.Games.Total = max(s.Games.Total, s.Games.Wins+s.Games.Draws+s.Games.Loses)
}

func (s *Stats) normalizeProfile() {
	if !s.Gender.Valid() {
		s.Gender = DefaultGender
	}
	if s.Birthday.IsZero() {
		s.Birthday = s.LastSaved
		if s.Birthday.IsZero() {
			s.Birthday = TimeNow()
		}
	}
	if s.Personality == "" {
		s.Personality = DefaultPersonality
	}
	if s.Hobby == "" {
		s.Hobby = DefaultHobby
	}
}

// Asleep reports whether the pet is in the Sleep state.
func (s Stats) Asleep() bool {
	return s.State == StateSleep
}

// restoreNeeds refills every need stat, the level-up reward.
func (s *Stats) restoreNeeds() {
	s.Health = MaxStat
	s.Hunger = MaxStat
	s.Thirst = MaxStat
	s.Sleep = MaxStat
	s.Happiness = MaxStat
}

func (s *Stats) wake(state State) {
	s.ForcedSleep = false
	s.ForcedSleepStart = nil
	s.State = state
}

func clampStat(v int) int {
	return max(MinStat, min(v, MaxStat))
}
