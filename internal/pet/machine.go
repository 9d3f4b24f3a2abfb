package pet

import "time"

// Transition is a single state change chosen by NextState.
type Transition struct {
	From   State
	To     State
	Reason string

	// ReleaseForcedSleep clears the forced-sleep flag along with the change.
	ReleaseForcedSleep bool
}

// NextState picks the state the pet should move to given the current stats.
// Rules are checked top to bottom and the first one that matches decides; ok
// is false when the pet stays where it is this tick.
func NextState(s Stats, now time.Time, t Tuning) (tr Transition, ok bool) {
	tr.From = s.State
	move := func(to State, reason string) (Transition, bool) {
		if to == s.State {
			return Transition{}, false
		}
		tr.To = to
		tr.Reason = reason
		return tr, true
	}

	// Forced sleep: only a full battery plus the minimum nap gets the pet up.
	if s.ForcedSleep && s.Asleep() {
		if s.Health >= MaxStat && forcedSleepElapsed(s, now) >= t.ForcedSleepMinimum {
			tr.To = StateNormal
			tr.Reason = "forced sleep over"
			tr.ReleaseForcedSleep = true
			return tr, true
		}
		return Transition{}, false
	}

	if s.Health < t.CriticalThreshold {
		return move(StateSleep, "exhausted")
	}

	if s.Asleep() {
		if s.Health < t.RecoveredThreshold {
			return Transition{}, false
		}
		return move(StateNormal, "rested")
	}

	if s.Health < t.TiredThreshold {
		return move(StateDaze, "tired")
	}

	switch {
	case s.Hunger < t.AngryThreshold || s.Thirst < t.AngryThreshold:
		return move(StateAngry, "neglected")
	case s.Happiness < t.SadThreshold:
		return move(StateSad, "lonely")
	case s.Happiness >= t.HappyThreshold:
		return move(StateHappy, "cheerful")
	}

	if idleBucket(now, t.IdleOscillationPeriod)%2 == 0 {
		return move(StateDaze, "idle")
	}
	return move(StateNormal, "idle")
}

// forcedSleepElapsed treats a missing start time as long enough ago.
func forcedSleepElapsed(s Stats, now time.Time) time.Duration {
	if s.ForcedSleepStart == nil || s.ForcedSleepStart.IsZero() {
		return time.Duration(1<<63 - 1)
	}
	return now.Sub(*s.ForcedSleepStart)
}

// idleBucket is the coarse time slot used for the Normal/Daze idle swing. It is
// a pure function of the clock so the swing is slow and reproducible.
func idleBucket(now time.Time, period time.Duration) int64 {
	if period <= 0 {
		period = TickInterval
	}
	return now.UnixNano() / int64(period)
}
