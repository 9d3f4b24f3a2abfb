package pet

import (
	"fmt"
	"strings"
)

// Need names one of the pet's need stats.
type Need string

const (
	NeedHealth    Need = "health"
	NeedHunger    Need = "hunger"
	NeedThirst    Need = "thirst"
	NeedSleep     Need = "sleep"
	NeedHappiness Need = "happiness"
)

// NeedValue pairs a need with its current value
type NeedValue struct {
	Need  Need
	Value int
}

// Needs returns every need stat in display order.
func Needs(s Stats) []NeedValue {
	return []NeedValue{
		{NeedHealth, s.Health},
		{NeedHunger, s.Hunger},
		{NeedThirst, s.Thirst},
		{NeedSleep, s.Sleep},
		{NeedHappiness, s.Happiness},
	}
}

// LowNeeds returns the needs below threshold, lowest first.
func LowNeeds(s Stats, threshold int) []NeedValue {
	var low []NeedValue
	for _, n := range Needs(s) {
		if n.Value >= threshold {
			continue
		}
		i := len(low)
		for i > 0 && low[i-1].Value > n.Value {
			i--
		}
		low = append(low, NeedValue{})
		copy(low[i+1:], low[i:])
		low[i] = n
	}
	return low
}

// GetStatus returns the status emoji for the pet's state
func GetStatus(s Stats) string {
	switch s.State {
	case StateSleep:
		return StatusEmojiSleeping
	case StateDaze:
		return StatusEmojiDaze
	case StateHappy:
		return StatusEmojiHappy
	case StateSad:
		return StatusEmojiSad
	case StateAngry:
		return StatusEmojiAngry
	case StateSurprised:
		return StatusEmojiSurprised
	default:
		return StatusEmojiNormal
	}
}

// GetStatusWithLabel returns status with a text label for the UI
func GetStatusWithLabel(s Stats, t Tuning) string {
	status := GetStatus(s)

	switch s.State {
	case StateSleep:
		if s.ForcedSleep {
			return status + " Sleeping (tucked in)"
		}
		return status + " Sleeping"
	case StateDaze:
		if s.Health < t.TiredThreshold {
			return status + " Tired"
		}
		return status + " Daydreaming"
	case StateHappy:
		return status + " Happy"
	case StateSad:
		return status + " Sad"
	case StateAngry:
		return status + " Grumpy"
	case StateSurprised:
		return status + " Surprised!"
	default:
		return status + " Normal"
	}
}

// AlertMessage describes the needs below threshold, or "" when all are fine.
func AlertMessage(s Stats, threshold int) string {
	low := LowNeeds(s, threshold)
	if len(low) == 0 {
		return ""
	}
	parts := make([]string, 0, len(low))
	for _, n := range low {
		parts = append(parts, fmt.Sprintf("%s %d%%", n.Need, n.Value))
	}
	return fmt.Sprintf("⚠️ %s needs care: %s", s.Name, strings.Join(parts, ", "))
}
