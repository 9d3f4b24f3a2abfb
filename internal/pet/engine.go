package pet

import (
	"context"
	"log"
	"math"
	"sync"
	"time"
)

// Engine owns one pet. Every public method takes the engine lock, so a tick
// and a user interaction never interleave their read-modify-write of stats.
type Engine struct {
	mu      sync.Mutex
	store   Store
	tuning  Tuning
	decayer *Decayer
	stats   Stats
	subs    map[chan Stats]struct{}
}

// NewEngine loads the pet from store and returns an engine ready to tick.
func NewEngine(store Store, tuning Tuning) *Engine {
	s, err := store.Load()
	if err != nil {
		log.Printf("Error loading state: %v. Starting with a new pet.", err)
	}
	s.Normalize()
	return &Engine{
		store:   store,
		tuning:  tuning,
		decayer: NewDecayer(tuning),
		stats:   s,
		subs:    make(map[chan Stats]struct{}),
	}
}

// Tuning returns the thresholds and rates the engine runs with.
func (e *Engine) Tuning() Tuning {
	return e.tuning
}

// Snapshot returns a copy of the current stats.
func (e *Engine) Snapshot() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

// Subscribe delivers the latest stats after every change. Slow readers only
// ever see the newest value. The channel closes when ctx is done.
func (e *Engine) Subscribe(ctx context.Context) <-chan Stats {
	ch := make(chan Stats, 1)
	e.mu.Lock()
	e.subs[ch] = struct{}{}
	ch <- e.stats
	e.mu.Unlock()

	go func() {
		<-ctx.Done()
		e.mu.Lock()
		delete(e.subs, ch)
		close(ch)
		e.mu.Unlock()
	}()
	return ch
}

// modifyStats applies f and saves the result
func (e *Engine) modifyStats(f func(*Stats)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	f(&e.stats)
	e.commit()
}

// commit writes the current stats through to the store and notifies
// subscribers. A failed write is logged; the next commit writes again.
func (e *Engine) commit() {
	e.stats.LastSaved = TimeNow()
	if err := e.store.Save(e.stats); err != nil {
		log.Printf("Error saving state: %v", err)
	}
	for ch := range e.subs {
		select {
		case <-ch:
		default:
		}
		ch <- e.stats
	}
}

// Tick runs one periodic update: the state machine first, then decay.
func (e *Engine) Tick(isMoving bool) Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.step(TimeNow(), isMoving)
	e.commit()
	return e.stats
}

func (e *Engine) step(now time.Time, isMoving bool) {
	if tr, ok := NextState(e.stats, now, e.tuning); ok {
		e.stats.State = tr.To
		if tr.ReleaseForcedSleep {
			e.stats.wake(tr.To)
		}
		log.Printf("Pet state %s -> %s (%s, health %d)", tr.From, tr.To, tr.Reason, e.stats.Health)
	}
	e.decayer.Apply(&e.stats, isMoving)
}

// CatchUp replays idle ticks for time spent while the program was not
// running, up to limit, and saves once at the end. It returns the number of
// ticks applied.
func (e *Engine) CatchUp(elapsed, interval, limit time.Duration) int {
	if interval <= 0 || elapsed < interval {
		return 0
	}
	if limit > 0 && elapsed > limit {
		elapsed = limit
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	now := TimeNow()
	start := now.Add(-elapsed)
	n := int(elapsed / interval)
	for i := 1; i <= n; i++ {
		e.step(start.Add(time.Duration(i)*interval), false)
	}
	e.commit()
	log.Printf("Caught up %d ticks (%s offline)", n, elapsed.Round(time.Second))
	return n
}

// Reset replaces the pet with a new one and forgets all decay progress.
func (e *Engine) Reset() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.store.Clear(); err != nil {
		log.Printf("Error clearing state: %v", err)
	}
	s, err := e.store.Load()
	if err != nil {
		log.Printf("Error loading state after reset: %v", err)
	}
	s.Normalize()
	e.stats = s
	e.decayer.Reset()
	e.commit()
	log.Printf("Pet reset: %s", e.stats.Name)
	return e.stats
}

// AddExp grants experience and reports whether the pet levelled up at least
// once. Each level gained is saved on its own.
func (e *Engine) AddExp(amount int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.addExp(amount)
}

func (e *Engine) addExp(amount int) bool {
	if e.stats.Level >= MaxLevel {
		return false
	}
	e.stats.Exp += min(max(amount, 0), math.MaxInt-e.stats.Exp)

	leveledUp := false
	for levelUp(&e.stats) {
		leveledUp = true
		log.Printf("Pet reached level %d (exp %d/%d)", e.stats.Level, e.stats.Exp, ExpForNextLevel(e.stats.Level))
		e.commit()
	}
	if !leveledUp {
		e.commit()
	}
	return leveledUp
}

// LevelProgress returns progress toward the next level in [0,1].
func (e *Engine) LevelProgress() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return LevelProgress(e.stats)
}

// ExpForNextLevel returns the experience needed at the current level.
func (e *Engine) ExpForNextLevel() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ExpForNextLevel(e.stats.Level)
}
