package twistcube

import (
	"math"
	"time"
)

// MapperState identifies the gesture state machine's current state.
type MapperState int

const (
	// StateIdle means nothing is selected.
	StateIdle MapperState = iota
	// StateSelected means a pick exists and the mapper is waiting for
	// a direction command or threshold-crossing drag.
	StateSelected
	// StateRotating means a move has been committed and its visual
	// completion is pending; all move-producing input is rejected.
	StateRotating
)

// String returns the string representation of the mapper state.
func (s MapperState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelected:
		return "selected"
	case StateRotating:
		return "rotating"
	default:
		return "unknown"
	}
}

// Selection identifies the piece and face the user is manipulating. It
// exists only between a pick and the commit or cancel of the gesture.
type Selection struct {
	Piece Piece
	Face  FaceLabel
}

// Mapper owns a cube and turns interaction signals into moves on it.
//
// The machine has three states: Idle, Selected, Rotating. A pick moves
// Idle to Selected, an explicit direction command or a drag past the
// threshold commits a move and enters Rotating, and the Rotating gate
// releases on TurnCompleted or after the rotate timeout. At most one
// move is in flight at any time; picks and direction input arriving
// while Rotating are silently ignored. That gate is intentional
// backpressure, not an error.
//
// All methods are meant for a single event-loop goroutine.
type Mapper struct {
	cube  *Cube
	state MapperState
	sel   Selection
	drag  Vec3

	now           func() time.Time
	rotatingUntil time.Time
	dragThreshold float64
	rotateTimeout time.Duration
	onCommit      func(Move, *Cube)
}

// NewMapper creates a mapper owning the given cube. A nil cube starts
// from the solved state.
func NewMapper(cube *Cube, opts ...Option) *Mapper {
	if cube == nil {
		cube = New()
	}
	m := &Mapper{
		cube:          cube,
		now:           time.Now,
		dragThreshold: DefaultDragThreshold,
		rotateTimeout: DefaultRotateTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Cube returns the current cube state. The returned value is replaced
// wholesale on each committed move; callers never observe a partially
// turned state.
func (m *Mapper) Cube() *Cube {
	return m.cube
}

// State returns the current machine state, releasing an expired
// Rotating gate first.
func (m *Mapper) State() MapperState {
	m.expireRotation()
	return m.state
}

// Selection returns the active gesture selection, if any.
func (m *Mapper) Selection() (Selection, bool) {
	m.expireRotation()
	return m.sel, m.state == StateSelected
}

// Pick begins a gesture on the given piece and face. It reports whether
// the pick was accepted; picks while a turn is still completing are
// ignored. Picking while already Selected re-targets the selection.
func (m *Mapper) Pick(p Piece, face FaceLabel) bool {
	m.expireRotation()
	if m.state == StateRotating {
		return false
	}
	m.state = StateSelected
	m.sel = Selection{Piece: p, Face: face}
	m.drag = Vec3{}
	return true
}

// Turn commits the selected gesture with an explicit direction, the
// normative discrete-command path. The move's axis comes from the
// grabbed face and its layer from the grabbed piece's position.
//
// The boolean reports whether a move was emitted; it is false when no
// selection is active. A non-nil error means the engine rejected the
// move (an invariant violation) and the cube was left untouched.
func (m *Mapper) Turn(dir Direction) (Move, bool, error) {
	m.expireRotation()
	if m.state != StateSelected {
		return Move{}, false, nil
	}
	axis := FaceAxis(m.sel.Face)
	move := Move{Axis: axis, Layer: LayerOf(m.sel.Piece.Pos, axis), Direction: dir}
	if err := m.commit(move); err != nil {
		return Move{}, false, err
	}
	return move, true, nil
}

// Drag accumulates manipulator movement for the active gesture and
// commits a move once the accumulated movement crosses the threshold.
//
// The direction heuristic is best-effort: movement is projected onto
// the two axes orthogonal to the grabbed face's axis (taken in X, Y, Z
// order), the component with the larger magnitude dominates, and its
// sign becomes the turn direction. Discrete Turn commands are the
// normative path; hosts that need exact screen-space semantics should
// translate to Turn themselves.
//
// At most one move is emitted per grab. Return values are as for Turn.
func (m *Mapper) Drag(delta Vec3) (Move, bool, error) {
	m.expireRotation()
	if m.state != StateSelected {
		return Move{}, false, nil
	}

	m.drag = m.drag.Add(delta)
	a1, a2 := orthogonalAxes(FaceAxis(m.sel.Face))
	dominant := m.drag.Component(a1)
	if c2 := m.drag.Component(a2); math.Abs(c2) > math.Abs(dominant) {
		dominant = c2
	}
	if math.Abs(dominant) < m.dragThreshold {
		return Move{}, false, nil
	}

	dir := DirPos
	if dominant < 0 {
		dir = DirNeg
	}
	axis := FaceAxis(m.sel.Face)
	move := Move{Axis: axis, Layer: LayerOf(m.sel.Piece.Pos, axis), Direction: dir}
	if err := m.commit(move); err != nil {
		return Move{}, false, err
	}
	return move, true, nil
}

// Release ends the gesture. A release before the drag threshold is a
// cancelled selection: back to Idle with the cube unchanged. A release
// while Rotating does not cut the gate short; the committed turn still
// has to complete.
func (m *Mapper) Release() {
	m.expireRotation()
	if m.state == StateSelected {
		m.reset(StateIdle)
	}
}

// Cancel is an alias for Release for hosts that distinguish the two
// events.
func (m *Mapper) Cancel() {
	m.Release()
}

// TurnCompleted is the host's explicit signal that the visual turn has
// finished; it releases the Rotating gate immediately.
func (m *Mapper) TurnCompleted() {
	if m.state == StateRotating {
		m.reset(StateIdle)
	}
}

// commit applies the move and enters Rotating. The selection lives
// until the gate releases so it stays inspectable during the tween.
func (m *Mapper) commit(move Move) error {
	next, err := Apply(m.cube, move)
	if err != nil {
		return err
	}
	m.cube = next
	m.state = StateRotating
	m.rotatingUntil = m.now().Add(m.rotateTimeout)
	m.drag = Vec3{}
	if m.onCommit != nil {
		m.onCommit(move, next)
	}
	return nil
}

// expireRotation releases the Rotating gate once the timeout elapses.
// Every event entrypoint runs this first so a host that never calls
// TurnCompleted still makes progress.
func (m *Mapper) expireRotation() {
	if m.state == StateRotating && !m.now().Before(m.rotatingUntil) {
		m.reset(StateIdle)
	}
}

func (m *Mapper) reset(s MapperState) {
	m.state = s
	m.sel = Selection{}
	m.drag = Vec3{}
}

// orthogonalAxes returns the two axes orthogonal to a, in canonical
// X, Y, Z order.
func orthogonalAxes(a Axis) (Axis, Axis) {
	switch a {
	case AxisX:
		return AxisY, AxisZ
	case AxisY:
		return AxisX, AxisZ
	default:
		return AxisX, AxisY
	}
}
