package pet

import "time"

// Game constants
const (
	DefaultPetName     = "Fat Bobo"
	DefaultGender      = GenderMale
	DefaultPersonality = "lively"
	DefaultHobby       = "sleeping"
	MaxStat            = 100
	MinStat            = 0
	DefaultHealth      = 80 // New pets start a little tired

	MinLevel = 1
	MaxLevel = 99
	ExpBase  = 100 // Lv.1 -> Lv.2 needs 100, Lv.2 -> Lv.3 needs 200, ...

	TickInterval          = 5 * time.Second
	ForcedSleepMinimum    = 30 * time.Minute
	IdleOscillationPeriod = 30 * time.Second

	// Interaction rewards
	PatHeadHappiness = 10
	HugHappiness     = 15
	FeedHunger       = 20
	FeedWaterThirst  = 20

	// Rock-paper-scissors rewards and costs
	ExpWin         = 50
	ExpDraw        = 20
	ExpLose        = 10
	EnergyCostWin  = 5
	EnergyCostDraw = 3
	EnergyCostLose = 3

	// Status alerts
	StatusAlertThreshold = 20
	StatusAlertInterval  = 5 * time.Minute

	// Speech pacing
	SpeechUrgentInterval = 30 * time.Second
	SpeechNormalInterval = 60 * time.Second
	LowHealthThreshold   = 30

	// Status emojis
	StatusEmojiNormal    = "😺"
	StatusEmojiDaze      = "😶"
	StatusEmojiSleeping  = "😴"
	StatusEmojiHappy     = "😸"
	StatusEmojiSad       = "😿"
	StatusEmojiAngry     = "😾"
	StatusEmojiSurprised = "🙀"
)

// SleepMetabolism selects what happens to hunger and thirst while asleep.
type SleepMetabolism string

const (
	// MetabolismHold keeps hunger and thirst constant during sleep.
	MetabolismHold SleepMetabolism = "hold"
	// MetabolismSlow decays hunger and thirst at a fraction of the idle rate during sleep.
	MetabolismSlow SleepMetabolism = "metabolism"
)

// Rate is a per-tick change for one stat, idle and while moving.
type Rate struct {
	Idle   float64
	Moving float64
}

// Tuning holds every threshold and rate the engine uses.
type Tuning struct {
	// State machine thresholds (health)
	CriticalThreshold  int // below this the pet is forced to sleep
	RecoveredThreshold int // a sleeping pet wakes at or above this
	TiredThreshold     int // below this an awake pet dazes
	MoveThreshold      int // at or above this the pet may walk around

	// Mood thresholds
	SadThreshold   int // happiness below this -> Sad
	HappyThreshold int // happiness at or above this -> Happy
	AngryThreshold int // hunger or thirst below this -> Angry

	ForcedSleepMinimum    time.Duration
	IdleOscillationPeriod time.Duration

	// Decay rates (per tick)
	HealthDecay    Rate
	HungerDecay    Rate
	ThirstDecay    Rate
	SleepDecay     Rate
	HappinessDecay Rate

	// Recovery rates while asleep (per tick)
	HealthRecovery float64
	SleepRecovery  float64

	SleepMetabolism       SleepMetabolism
	SleepMetabolismFactor float64
}

// DefaultTuning returns the stock thresholds and rates for a 5 second tick.
func DefaultTuning() Tuning {
	return Tuning{
		CriticalThreshold:  20,
		RecoveredThreshold: 50,
		TiredThreshold:     50,
		MoveThreshold:      20,

		SadThreshold:   20,
		HappyThreshold: 90,
		AngryThreshold: 10,

		ForcedSleepMinimum:    ForcedSleepMinimum,
		IdleOscillationPeriod: IdleOscillationPeriod,

		HealthDecay:    Rate{Idle: 1, Moving: 2},
		HungerDecay:    Rate{Idle: 0.0694, Moving: 0.1388}, // 100 -> 0 in 2h idle
		ThirstDecay:    Rate{Idle: 0.0926, Moving: 0.1852}, // 1.5h
		SleepDecay:     Rate{Idle: 0.0347, Moving: 0.0694}, // 4h
		HappinessDecay: Rate{Idle: 0.1389, Moving: 0.2778}, // 1h

		HealthRecovery: 1,
		SleepRecovery:  0.1389, // about an hour to refill

		SleepMetabolism:       MetabolismHold,
		SleepMetabolismFactor: 0.25,
	}
}

// ForTickInterval rescales every per-tick rate for ticks of length d, so
// stats run down over the same wall-clock time as with TickInterval.
func (t Tuning) ForTickInterval(d time.Duration) Tuning {
	if d <= 0 || d == TickInterval {
		return t
	}
	f := float64(d) / float64(TickInterval)
	scale := func(r Rate) Rate {
		return Rate{Idle: r.Idle * f, Moving: r.Moving * f}
	}
	t.HealthDecay = scale(t.HealthDecay)
	t.HungerDecay = scale(t.HungerDecay)
	t.ThirstDecay = scale(t.ThirstDecay)
	t.SleepDecay = scale(t.SleepDecay)
	t.HappinessDecay = scale(t.HappinessDecay)
	t.HealthRecovery *= f
	t.SleepRecovery *= f
	return t
}
