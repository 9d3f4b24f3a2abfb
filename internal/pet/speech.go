package pet

import "time"

// Speech trigger constants
const (
	SpeechRandom   = "random"
	SpeechHungry   = "hungry"
	SpeechThirsty  = "thirsty"
	SpeechTired    = "tired"
	SpeechSad      = "sad"
	SpeechHappy    = "happy"
	SpeechSleeping = "sleeping"
	SpeechLevelUp  = "level_up"
)

// SpeechDefinition describes when the pet says something and what
type SpeechDefinition struct {
	Trigger   string
	Urgent    bool
	Lines     []string
	Condition func(s Stats) bool
}

// GetSpeechDefinitions returns every speech bubble the pet knows, most urgent first.
func GetSpeechDefinitions() []SpeechDefinition {
	return []SpeechDefinition{
		{
			Trigger: SpeechSleeping,
			Lines:   []string{"Zzz...", "*snore*", "mmm... fish..."},
			Condition: func(s Stats) bool {
				return s.Asleep()
			},
		},
		{
			Trigger: SpeechTired,
			Urgent:  true,
			Lines:   []string{"I can barely keep my eyes open...", "Need... a nap..."},
			Condition: func(s Stats) bool {
				return s.Health < LowHealthThreshold
			},
		},
		{
			Trigger: SpeechThirsty,
			Urgent:  true,
			Lines:   []string{"Water, please!", "My bowl is empty..."},
			Condition: func(s Stats) bool {
				return s.Thirst < StatusAlertThreshold
			},
		},
		{
			Trigger: SpeechHungry,
			Urgent:  true,
			Lines:   []string{"I'm starving!", "Is it dinner time yet?", "Feed me, human."},
			Condition: func(s Stats) bool {
				return s.Hunger < StatusAlertThreshold
			},
		},
		{
			Trigger: SpeechSad,
			Lines:   []string{"Nobody plays with me...", "Pat me?"},
			Condition: func(s Stats) bool {
				return s.Happiness < StatusAlertThreshold
			},
		},
		{
			Trigger: SpeechHappy,
			Lines:   []string{"Purrrr~", "Best day ever!", "I like you."},
			Condition: func(s Stats) bool {
				return s.State == StateHappy
			},
		},
		{
			Trigger: SpeechLevelUp,
			Lines:   []string{"I feel stronger!", "Level up!"},
			Condition: func(s Stats) bool {
				return false // only on request
			},
		},
		{
			Trigger: SpeechRandom,
			Lines:   []string{"Meow.", "What are you working on?", "*stretches*", "Hmm..."},
			Condition: func(s Stats) bool {
				return true
			},
		},
	}
}

// GetSpeechDefinition returns the definition for a trigger
func GetSpeechDefinition(trigger string) *SpeechDefinition {
	for _, def := range GetSpeechDefinitions() {
		if def.Trigger == trigger {
			return &def
		}
	}
	return nil
}

// Speak picks a line for the pet. With trigger "" the first definition whose
// condition holds is used; otherwise the named trigger is used directly.
func Speak(s Stats, trigger string) (line string, urgent bool) {
	var def *SpeechDefinition
	if trigger != "" {
		def = GetSpeechDefinition(trigger)
	} else {
		for _, d := range GetSpeechDefinitions() {
			if d.Condition(s) {
				def = &d
				break
			}
		}
	}
	if def == nil || len(def.Lines) == 0 {
		return "", false
	}
	i := int(RandFloat64() * float64(len(def.Lines)))
	if i >= len(def.Lines) {
		i = len(def.Lines) - 1
	}
	return def.Lines[i], def.Urgent
}

// SpeechGate paces speech bubbles: urgent lines may repeat sooner than idle chatter.
type SpeechGate struct {
	Last time.Time
}

// Allow reports whether the pet may speak now and records it if so.
func (g *SpeechGate) Allow(now time.Time, urgent bool) bool {
	interval := SpeechNormalInterval
	if urgent {
		interval = SpeechUrgentInterval
	}
	if !g.Last.IsZero() && now.Sub(g.Last) < interval {
		return false
	}
	g.Last = now
	return true
}
