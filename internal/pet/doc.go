// Package pet simulates the desktop pet: its needs, mood and level.
//
// An Engine owns one pet and is the only way to change it. A timer calls
// Tick every TickInterval; each tick first lets the state machine pick the
// pet's next state (NextState) and then decays or recovers the need stats
// (Decayer). User actions (PatHead, Hug, Feed, FeedWater, ForceSleep,
// PlayMiniGame) and ticks are serialized by the engine lock.
//
// Every change is written through to a Store before the method returns.
// Save errors are logged and not returned; the next change saves again.
//
// Decay rates are fractional. Each stat carries an in-memory remainder so
// that, for example, 0.0694 points per tick empties a full stat in exactly
// 1441 ticks rather than drifting. The remainders are not persisted.
package pet
