package pet

import (
	"testing"
	"time"
)

// evenBucket falls in an even idle slot; evenBucket+30s is the next, odd one.
var evenBucket = time.Unix(1704110400, 0).UTC()

func TestNextState(t *testing.T) {
	longAgo := evenBucket.Add(-time.Hour)
	recently := evenBucket.Add(-10 * time.Minute)
	justOver := evenBucket.Add(-31 * time.Minute)

	stats := func(f func(*Stats)) Stats {
		s := Stats{Health: 80, Hunger: 80, Thirst: 80, Sleep: 80, Happiness: 50, Level: 1, State: StateNormal}
		f(&s)
		return s
	}

	tests := []struct {
		name        string
		stats       Stats
		now         time.Time
		wantChange  bool
		wantState   State
		wantRelease bool
	}{
		{
			name: "Forced sleep ends when rested and slept long enough",
			stats: stats(func(s *Stats) {
				s.State, s.ForcedSleep, s.ForcedSleepStart, s.Health = StateSleep, true, &justOver, 100
			}),
			now: evenBucket, wantChange: true, wantState: StateNormal, wantRelease: true,
		},
		{
			name: "Forced sleep holds before the minimum time",
			stats: stats(func(s *Stats) {
				s.State, s.ForcedSleep, s.ForcedSleepStart, s.Health = StateSleep, true, &recently, 100
			}),
			now: evenBucket, wantChange: false,
		},
		{
			name: "Forced sleep holds until fully rested",
			stats: stats(func(s *Stats) {
				s.State, s.ForcedSleep, s.ForcedSleepStart, s.Health = StateSleep, true, &longAgo, 99
			}),
			now: evenBucket, wantChange: false,
		},
		{
			name: "Forced sleep without a start time counts as elapsed",
			stats: stats(func(s *Stats) {
				s.State, s.ForcedSleep, s.Health = StateSleep, true, 100
			}),
			now: evenBucket, wantChange: true, wantState: StateNormal, wantRelease: true,
		},
		{
			name:  "Exhausted pet falls asleep",
			stats: stats(func(s *Stats) { s.Health = 19 }),
			now:   evenBucket, wantChange: true, wantState: StateSleep,
		},
		{
			name:  "Exhausted happy pet falls asleep",
			stats: stats(func(s *Stats) { s.Health, s.State, s.Happiness = 5, StateHappy, 100 }),
			now:   evenBucket, wantChange: true, wantState: StateSleep,
		},
		{
			name:  "Exhausted sleeping pet stays asleep",
			stats: stats(func(s *Stats) { s.Health, s.State = 10, StateSleep }),
			now:   evenBucket, wantChange: false,
		},
		{
			name:  "Recovering pet stays asleep",
			stats: stats(func(s *Stats) { s.Health, s.State = 49, StateSleep }),
			now:   evenBucket, wantChange: false,
		},
		{
			name:  "Rested pet wakes up",
			stats: stats(func(s *Stats) { s.Health, s.State = 50, StateSleep }),
			now:   evenBucket, wantChange: true, wantState: StateNormal,
		},
		{
			name:  "Tired pet dazes",
			stats: stats(func(s *Stats) { s.Health = 20 }),
			now:   evenBucket.Add(30 * time.Second), wantChange: true, wantState: StateDaze,
		},
		{
			name:  "Tired outranks mood",
			stats: stats(func(s *Stats) { s.Health, s.Happiness = 49, 100 }),
			now:   evenBucket, wantChange: true, wantState: StateDaze,
		},
		{
			name:  "Starving pet gets angry",
			stats: stats(func(s *Stats) { s.Hunger = 9 }),
			now:   evenBucket, wantChange: true, wantState: StateAngry,
		},
		{
			name:  "Thirsty pet gets angry",
			stats: stats(func(s *Stats) { s.Thirst = 0 }),
			now:   evenBucket, wantChange: true, wantState: StateAngry,
		},
		{
			name:  "Lonely pet is sad",
			stats: stats(func(s *Stats) { s.Happiness = 19 }),
			now:   evenBucket, wantChange: true, wantState: StateSad,
		},
		{
			name:  "Content pet is happy",
			stats: stats(func(s *Stats) { s.Happiness = 90 }),
			now:   evenBucket, wantChange: true, wantState: StateHappy,
		},
		{
			name:  "Idle pet dazes in an even slot",
			stats: stats(func(s *Stats) {}),
			now:   evenBucket, wantChange: true, wantState: StateDaze,
		},
		{
			name:  "Idle pet perks up in an odd slot",
			stats: stats(func(s *Stats) { s.State = StateDaze }),
			now:   evenBucket.Add(30 * time.Second), wantChange: true, wantState: StateNormal,
		},
		{
			name:  "Idle pet already in the slot's state stays",
			stats: stats(func(s *Stats) { s.State = StateDaze }),
			now:   evenBucket.Add(29 * time.Second), wantChange: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, ok := NextState(tt.stats, tt.now, DefaultTuning())
			if ok != tt.wantChange {
				t.Fatalf("Expected change %v, got %v (%+v)", tt.wantChange, ok, tr)
			}
			if !ok {
				return
			}
			if tr.From != tt.stats.State {
				t.Errorf("Expected from %s, got %s", tt.stats.State, tr.From)
			}
			if tr.To != tt.wantState {
				t.Errorf("Expected %s, got %s (%s)", tt.wantState, tr.To, tr.Reason)
			}
			if tr.ReleaseForcedSleep != tt.wantRelease {
				t.Errorf("Expected release %v, got %v", tt.wantRelease, tr.ReleaseForcedSleep)
			}
		})
	}
}

func TestForcedSleepLastsTheMinimum(t *testing.T) {
	clock := mockClock(t)

	s := fullStats()
	s.Health = 50
	e, _ := newTestEngine(t, s)
	e.ForceSleep()

	ticks := int(ForcedSleepMinimum / TickInterval)
	for i := 1; i < ticks; i++ {
		*clock = clock.Add(TickInterval)
		got := e.Tick(false)
		if got.State != StateSleep {
			t.Fatalf("Expected pet to stay asleep on tick %d, got %s", i, got.State)
		}
	}
	if got := e.Snapshot(); got.Health != MaxStat {
		t.Fatalf("Expected health %d just before the minimum, got %d", MaxStat, got.Health)
	}

	*clock = clock.Add(TickInterval)
	got := e.Tick(false)
	if got.State != StateNormal {
		t.Errorf("Expected pet to wake after %s, got %s", ForcedSleepMinimum, got.State)
	}
	if got.ForcedSleep || got.ForcedSleepStart != nil {
		t.Error("Expected forced sleep to be released")
	}
}

func TestExhaustedPetSleepsUntilRecovered(t *testing.T) {
	mockTimeNow(t)

	s := fullStats()
	s.Health = 19
	e, _ := newTestEngine(t, s)

	got := e.Tick(false)
	if got.State != StateSleep || got.Health != 20 {
		t.Fatalf("Expected asleep at 20 after the first tick, got %s at %d", got.State, got.Health)
	}

	for i := 2; i <= 31; i++ {
		got = e.Tick(true)
		if got.State != StateSleep {
			t.Fatalf("Expected pet to keep sleeping on tick %d at health %d, got %s", i, got.Health, got.State)
		}
	}
	if got.Health != 50 {
		t.Fatalf("Expected health 50 after 31 ticks, got %d", got.Health)
	}

	got = e.Tick(false)
	if got.State != StateNormal {
		t.Errorf("Expected pet to wake once rested, got %s", got.State)
	}
	if got.Health != 49 {
		t.Errorf("Expected awake decay on the waking tick, health got %d", got.Health)
	}
}

func TestTickUpdatesStateBeforeDecay(t *testing.T) {
	clock := mockClock(t)
	*clock = evenBucket.Add(30 * time.Second)

	s := fullStats()
	s.Health = 50
	s.Happiness = 50
	e, _ := newTestEngine(t, s)

	got := e.Tick(false)
	if got.State != StateNormal {
		t.Errorf("Expected state to be decided on health 50, got %s", got.State)
	}
	if got.Health != 49 {
		t.Errorf("Expected health 49 after decay, got %d", got.Health)
	}
}

func TestIdleOscillationIsSlow(t *testing.T) {
	tuning := DefaultTuning()
	s := Stats{Health: 80, Hunger: 80, Thirst: 80, Sleep: 80, Happiness: 50, Level: 1, State: StateDaze}

	changes := 0
	for i := 0; i < 60; i++ {
		now := evenBucket.Add(time.Duration(i) * TickInterval)
		if tr, ok := NextState(s, now, tuning); ok {
			s.State = tr.To
			changes++
		}
	}
	// five minutes of 5s ticks spans ten 30s slots
	if changes != 9 {
		t.Errorf("Expected 9 idle swings in five minutes, got %d", changes)
	}
}

func TestIdleBucketShortPeriods(t *testing.T) {
	tuning := DefaultTuning()
	tuning.IdleOscillationPeriod = 500 * time.Microsecond
	s := Stats{Health: 80, Hunger: 80, Thirst: 80, Sleep: 80, Happiness: 50, Level: 1, State: StateNormal}

	// evenBucket is a whole number of 500µs slots, so it is an even one
	tr, ok := NextState(s, evenBucket, tuning)
	if !ok || tr.To != StateDaze {
		t.Errorf("Expected Daze in an even slot, got %+v", tr)
	}
	s.State = StateDaze
	tr, ok = NextState(s, evenBucket.Add(500*time.Microsecond), tuning)
	if !ok || tr.To != StateNormal {
		t.Errorf("Expected Normal in the next slot, got %+v", tr)
	}

	tuning.IdleOscillationPeriod = 0
	if _, ok := NextState(s, evenBucket, tuning); ok {
		t.Error("Expected a zero period to fall back to the tick interval")
	}
}
