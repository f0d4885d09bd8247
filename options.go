package twistcube

import "time"

// Defaults for the gesture mapper. These are fixed tuning constants,
// not runtime configuration; override them per-mapper with options.
const (
	// DefaultDragThreshold is the movement magnitude, in cube units
	// along the dominant orthogonal axis, at which a drag commits a
	// turn.
	DefaultDragThreshold = 0.35

	// DefaultRotateTimeout bounds how long the mapper stays in the
	// Rotating state when the host never signals TurnCompleted.
	DefaultRotateTimeout = 300 * time.Millisecond
)

// Option configures a Mapper.
type Option func(*Mapper)

// WithDragThreshold sets the movement threshold for continuous-gesture
// turns. Drags that release below the threshold cancel the selection
// without emitting a move.
func WithDragThreshold(threshold float64) Option {
	return func(m *Mapper) {
		m.dragThreshold = threshold
	}
}

// WithRotateTimeout sets how long the Rotating gate holds before it
// self-releases. The gate also releases on an explicit TurnCompleted
// call, whichever comes first.
func WithRotateTimeout(d time.Duration) Option {
	return func(m *Mapper) {
		m.rotateTimeout = d
	}
}

// WithClock replaces the mapper's time source. Tests use this to step
// time deterministically; hosts with their own frame clock can supply
// it here.
func WithClock(now func() time.Time) Option {
	return func(m *Mapper) {
		m.now = now
	}
}

// WithOnCommit sets a callback that fires after each committed move,
// with the move and the new cube state. Presentation layers use it to
// drive the visual tween.
func WithOnCommit(cb func(Move, *Cube)) Option {
	return func(m *Mapper) {
		m.onCommit = cb
	}
}
