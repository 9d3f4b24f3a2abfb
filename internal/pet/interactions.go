package pet

import "log"

// PatHead cheers the pet up. A pet in forced sleep wakes up for it.
func (e *Engine) PatHead() {
	e.comfort(PatHeadHappiness, "Patted")
}

// Hug cheers the pet up more than a pat and wakes it from forced sleep.
func (e *Engine) Hug() {
	e.comfort(HugHappiness, "Hugged")
}

func (e *Engine) comfort(happiness int, verb string) {
	e.modifyStats(func(s *Stats) {
		if s.ForcedSleep && s.Asleep() {
			s.wake(StateHappy)
			log.Printf("%s pet awake from forced sleep", verb)
		}
		s.Happiness = clampStat(s.Happiness + happiness)
		s.State = StateHappy
		log.Printf("%s pet. Happiness is now %d", verb, s.Happiness)
	})
}

// Feed fills the pet up. A sleeping pet is fed without waking it.
func (e *Engine) Feed() {
	e.modifyStats(func(s *Stats) {
		s.Hunger = clampStat(s.Hunger + FeedHunger)
		log.Printf("Fed pet. Hunger is now %d", s.Hunger)
	})
}

// FeedWater quenches the pet's thirst. A sleeping pet is not woken.
func (e *Engine) FeedWater() {
	e.modifyStats(func(s *Stats) {
		s.Thirst = clampStat(s.Thirst + FeedWaterThirst)
		log.Printf("Gave pet water. Thirst is now %d", s.Thirst)
	})
}

// ForceSleep puts the pet to bed until it is fully rested and has slept at
// least the minimum forced-sleep time. Calling it again while the pet is
// already in forced sleep keeps the original start time.
func (e *Engine) ForceSleep() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stats.ForcedSleep && e.stats.Asleep() {
		return
	}
	now := TimeNow()
	e.stats.State = StateSleep
	e.stats.ForcedSleep = true
	e.stats.ForcedSleepStart = &now
	log.Printf("Pet sent to sleep (health %d)", e.stats.Health)
	e.commit()
}

// CanMove reports whether the pet is free to walk around.
func (e *Engine) CanMove() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats.State == StateNormal && e.stats.Health >= e.tuning.MoveThreshold
}
