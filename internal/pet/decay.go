package pet

import "math"

// accumulatorScale is the fixed-point resolution of an accumulator: rates are
// kept in millionths of a stat point so long runs add up exactly.
const accumulatorScale = 1_000_000

// accumulator carries the fractional part of a per-tick rate between ticks.
type accumulator struct {
	frac int64 // always in [0, accumulatorScale)
}

// step adds rate and returns the whole points to apply this tick.
func (a *accumulator) step(rate float64) int {
	if rate <= 0 {
		return 0
	}
	a.frac += int64(math.Round(rate * accumulatorScale))
	whole := a.frac / accumulatorScale
	a.frac -= whole * accumulatorScale
	return int(whole)
}

func (a *accumulator) reset() {
	a.frac = 0
}

// fraction returns the carried remainder in [0,1).
func (a *accumulator) fraction() float64 {
	return float64(a.frac) / accumulatorScale
}

// Decayer applies one tick of need decay or sleep recovery. Its accumulators
// live only in memory and start at zero on every process start.
type Decayer struct {
	tuning Tuning

	health    accumulator
	hunger    accumulator
	thirst    accumulator
	sleep     accumulator
	happiness accumulator

	healthRecovery accumulator
	sleepRecovery  accumulator

	asleep bool // mode seen on the previous tick
}

// NewDecayer creates a decay engine for the given tuning.
func NewDecayer(tuning Tuning) *Decayer {
	return &Decayer{tuning: tuning}
}

// Reset zeroes every accumulator.
func (d *Decayer) Reset() {
	for _, a := range d.all() {
		a.reset()
	}
	d.asleep = false
}

func (d *Decayer) all() []*accumulator {
	return []*accumulator{
		&d.health, &d.hunger, &d.thirst, &d.sleep, &d.happiness,
		&d.healthRecovery, &d.sleepRecovery,
	}
}

// Apply mutates s by one tick.
func (d *Decayer) Apply(s *Stats, isMoving bool) {
	asleep := s.Asleep()
	if asleep != d.asleep {
		d.switchMode(asleep)
	}

	if asleep {
		d.applySleep(s)
		return
	}

	rate := func(r Rate) float64 {
		if isMoving {
			return r.Moving
		}
		return r.Idle
	}
	t := d.tuning
	s.Health = clampStat(s.Health - d.health.step(rate(t.HealthDecay)))
	s.Hunger = clampStat(s.Hunger - d.hunger.step(rate(t.HungerDecay)))
	s.Thirst = clampStat(s.Thirst - d.thirst.step(rate(t.ThirstDecay)))
	s.Sleep = clampStat(s.Sleep - d.sleep.step(rate(t.SleepDecay)))
	s.Happiness = clampStat(s.Happiness - d.happiness.step(rate(t.HappinessDecay)))
}

func (d *Decayer) applySleep(s *Stats) {
	t := d.tuning
	s.Health = clampStat(s.Health + d.healthRecovery.step(t.HealthRecovery))
	s.Sleep = clampStat(s.Sleep + d.sleepRecovery.step(t.SleepRecovery))

	if t.SleepMetabolism == MetabolismSlow {
		f := t.SleepMetabolismFactor
		s.Hunger = clampStat(s.Hunger - d.hunger.step(t.HungerDecay.Idle*f))
		s.Thirst = clampStat(s.Thirst - d.thirst.step(t.ThirstDecay.Idle*f))
	}
}

// switchMode drops remainders that belong to the mode being left, so a
// carried fraction never shows up as a jump after the switch.
func (d *Decayer) switchMode(asleep bool) {
	if asleep {
		d.health.reset()
		d.sleep.reset()
		d.happiness.reset()
		if d.tuning.SleepMetabolism != MetabolismSlow {
			d.hunger.reset()
			d.thirst.reset()
		}
	} else {
		d.healthRecovery.reset()
		d.sleepRecovery.reset()
	}
	d.asleep = asleep
}
