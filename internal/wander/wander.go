package wander

import (
	"math"
	"math/rand"
)

const (
	DefaultSpeed       = 1 // cells per step
	DefaultMinDistance = 4
	DefaultMaxDistance = 16
	DefaultMargin      = 1
)

// RandFloat64 is swapped out in tests
var RandFloat64 = rand.Float64

// Point is a position on the pet's playground
type Point struct {
	X, Y int
}

// Walker moves the pet toward random targets inside a bounded area, one
// step at a time. Whether the last step moved the pet is the "moving" signal
// fed to the pet engine's tick.
type Walker struct {
	Pos    Point
	Target *Point
	Width  int
	Height int

	Speed       int
	MinDistance int
	MaxDistance int
	Margin      int
}

// New creates a walker in the middle of a width x height area.
func New(width, height int) *Walker {
	return &Walker{
		Pos:         Point{X: width / 2, Y: height / 2},
		Width:       width,
		Height:      height,
		Speed:       DefaultSpeed,
		MinDistance: DefaultMinDistance,
		MaxDistance: DefaultMaxDistance,
		Margin:      DefaultMargin,
	}
}

// Resize changes the area and pulls the pet and its target back inside.
func (w *Walker) Resize(width, height int) {
	w.Width = width
	w.Height = height
	w.Pos = w.clamp(w.Pos)
	if w.Target != nil {
		t := w.clamp(*w.Target)
		w.Target = &t
	}
}

// Step advances the pet once. When canMove is false the current target is
// dropped and the pet stays put. It reports whether the pet moved.
func (w *Walker) Step(canMove bool) bool {
	if !canMove {
		w.Target = nil
		return false
	}
	if w.Target == nil {
		t := w.randomTarget()
		w.Target = &t
	}

	next, ok := w.nextStep(*w.Target)
	if !ok {
		w.Target = nil
		return false
	}
	w.Pos = next
	return true
}

// randomTarget picks a point MinDistance..MaxDistance away in a random direction.
func (w *Walker) randomTarget() Point {
	angle := RandFloat64() * 2 * math.Pi
	dist := float64(w.MinDistance) + RandFloat64()*float64(w.MaxDistance-w.MinDistance)
	return w.clamp(Point{
		X: w.Pos.X + int(math.Round(math.Cos(angle)*dist)),
		Y: w.Pos.Y + int(math.Round(math.Sin(angle)*dist)),
	})
}

// nextStep moves up to Speed cells toward target; ok is false once there.
func (w *Walker) nextStep(target Point) (Point, bool) {
	dx := target.X - w.Pos.X
	dy := target.Y - w.Pos.Y
	if dx == 0 && dy == 0 {
		return w.Pos, false
	}
	dist := math.Hypot(float64(dx), float64(dy))
	if dist <= float64(w.Speed) {
		return target, true
	}
	scale := float64(w.Speed) / dist
	return w.clamp(Point{
		X: w.Pos.X + int(math.Round(float64(dx)*scale)),
		Y: w.Pos.Y + int(math.Round(float64(dy)*scale)),
	}), true
}

func (w *Walker) clamp(p Point) Point {
	minX, minY := w.Margin, w.Margin
	maxX := max(minX, w.Width-1-w.Margin)
	maxY := max(minY, w.Height-1-w.Margin)
	p.X = max(minX, min(p.X, maxX))
	p.Y = max(minY, min(p.Y, maxY))
	return p
}
