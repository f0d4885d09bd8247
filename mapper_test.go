package twistcube

import (
	"testing"
	"time"
)

// fakeClock steps time manually so gate timeouts are deterministic.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestMapper(t *testing.T, opts ...Option) (*Mapper, *fakeClock) {
	t.Helper()
	clk := &fakeClock{t: time.Unix(1000, 0)}
	opts = append([]Option{WithClock(clk.now)}, opts...)
	return NewMapper(New(), opts...), clk
}

func pickCorner(t *testing.T, m *Mapper) {
	t.Helper()
	p, ok := m.Cube().PieceAt(Vec3{X: 1, Y: 1, Z: 1})
	if !ok {
		t.Fatal("Missing corner piece at (1,1,1)")
	}
	if !m.Pick(p, FaceRight) {
		t.Fatal("Pick should be accepted from idle")
	}
}

func TestPickThenDirectionEmitsMove(t *testing.T) {
	m, _ := newTestMapper(t)

	pickCorner(t, m)
	if m.State() != StateSelected {
		t.Fatalf("State = %s, want selected", m.State())
	}

	move, ok, err := m.Turn(DirPos)
	if err != nil {
		t.Fatalf("Turn failed: %v", err)
	}
	if !ok {
		t.Fatal("Turn should emit a move from selected")
	}
	want := Move{Axis: AxisX, Layer: 1, Direction: DirPos}
	if move != want {
		t.Errorf("Move = %+v, want %+v", move, want)
	}
	if m.State() != StateRotating {
		t.Errorf("State = %s, want rotating", m.State())
	}
	if m.Cube().IsSolved() {
		t.Error("Cube should have turned")
	}
}

func TestRotatingGateIgnoresInput(t *testing.T) {
	m, _ := newTestMapper(t)
	pickCorner(t, m)
	if _, ok, _ := m.Turn(DirPos); !ok {
		t.Fatal("First turn should commit")
	}
	after := *m.Cube()

	p, _ := m.Cube().PieceAt(Vec3{Y: 1})
	if m.Pick(p, FaceTop) {
		t.Error("Pick while rotating should be ignored")
	}
	if _, ok, _ := m.Turn(DirNeg); ok {
		t.Error("Turn while rotating should be ignored")
	}
	if _, ok, _ := m.Drag(Vec3{X: 10}); ok {
		t.Error("Drag while rotating should be ignored")
	}
	if *m.Cube() != after {
		t.Error("Gated input must leave the cube unchanged")
	}
}

func TestRotateTimeoutReleasesGate(t *testing.T) {
	m, clk := newTestMapper(t, WithRotateTimeout(200*time.Millisecond))
	pickCorner(t, m)
	if _, ok, _ := m.Turn(DirPos); !ok {
		t.Fatal("Turn should commit")
	}

	clk.advance(199 * time.Millisecond)
	if m.State() != StateRotating {
		t.Error("Gate should still hold before the timeout")
	}

	clk.advance(1 * time.Millisecond)
	if m.State() != StateIdle {
		t.Error("Gate should release at the timeout")
	}
	pickCorner(t, m) // accepted again
}

func TestTurnCompletedReleasesGate(t *testing.T) {
	m, _ := newTestMapper(t)
	pickCorner(t, m)
	if _, ok, _ := m.Turn(DirNeg); !ok {
		t.Fatal("Turn should commit")
	}

	m.TurnCompleted()
	if m.State() != StateIdle {
		t.Errorf("State = %s, want idle after completion signal", m.State())
	}
}

func TestReleaseBelowThresholdCancels(t *testing.T) {
	m, _ := newTestMapper(t)
	pickCorner(t, m)

	if _, ok, _ := m.Drag(Vec3{Y: 0.1}); ok {
		t.Fatal("Sub-threshold drag should not commit")
	}
	m.Release()

	if m.State() != StateIdle {
		t.Errorf("State = %s, want idle after cancel", m.State())
	}
	if !m.Cube().IsSolved() {
		t.Error("Cancelled gesture must leave the cube unchanged")
	}
	if _, active := m.Selection(); active {
		t.Error("Selection should be discarded on cancel")
	}
}

func TestDragAccumulatesToThreshold(t *testing.T) {
	m, _ := newTestMapper(t)
	pickCorner(t, m)

	// Face right is on X; movement projects onto Y and Z.
	if _, ok, _ := m.Drag(Vec3{Y: 0.2, X: 50}); ok {
		t.Fatal("Drag below threshold should not commit (X movement is discarded)")
	}
	move, ok, err := m.Drag(Vec3{Y: 0.2})
	if err != nil {
		t.Fatalf("Drag failed: %v", err)
	}
	if !ok {
		t.Fatal("Accumulated drag past the threshold should commit")
	}
	want := Move{Axis: AxisX, Layer: 1, Direction: DirPos}
	if move != want {
		t.Errorf("Move = %+v, want %+v", move, want)
	}
}

func TestDragDirectionFollowsDominantSign(t *testing.T) {
	m, _ := newTestMapper(t)
	pickCorner(t, m)

	move, ok, err := m.Drag(Vec3{Y: 0.1, Z: -0.5})
	if err != nil {
		t.Fatalf("Drag failed: %v", err)
	}
	if !ok {
		t.Fatal("Drag past the threshold should commit")
	}
	if move.Direction != DirNeg {
		t.Errorf("Direction = %d, want -1 from negative dominant component", move.Direction)
	}
}

func TestOneMovePerGrab(t *testing.T) {
	m, _ := newTestMapper(t)
	pickCorner(t, m)

	if _, ok, _ := m.Drag(Vec3{Y: 1}); !ok {
		t.Fatal("First drag should commit")
	}
	if _, ok, _ := m.Drag(Vec3{Y: 1}); ok {
		t.Error("Only one move may be emitted per grab")
	}
}

func TestTurnFromIdleIsIgnored(t *testing.T) {
	m, _ := newTestMapper(t)
	if _, ok, err := m.Turn(DirPos); ok || err != nil {
		t.Errorf("Turn from idle = (%v, %v), want ignored no-op", ok, err)
	}
	if !m.Cube().IsSolved() {
		t.Error("Ignored input must not touch the cube")
	}
}

func TestOnCommitCallback(t *testing.T) {
	var gotMove Move
	var gotCube *Cube
	m, _ := newTestMapper(t, WithOnCommit(func(mv Move, c *Cube) {
		gotMove = mv
		gotCube = c
	}))

	pickCorner(t, m)
	move, ok, _ := m.Turn(DirPos)
	if !ok {
		t.Fatal("Turn should commit")
	}
	if gotMove != move {
		t.Errorf("Callback move = %+v, want %+v", gotMove, move)
	}
	if gotCube != m.Cube() {
		t.Error("Callback should receive the new cube state")
	}
}

func TestNilCubeStartsSolved(t *testing.T) {
	m := NewMapper(nil)
	if !m.Cube().IsSolved() {
		t.Error("NewMapper(nil) should start from the solved cube")
	}
}

func TestSliceLayerThroughMapper(t *testing.T) {
	m, _ := newTestMapper(t)

	// Grabbing a piece on the X=0 slice by a face on the X axis
	// resolves to the middle layer.
	p, ok := m.Cube().PieceAt(Vec3{Z: 1})
	if !ok {
		t.Fatal("Missing front center piece")
	}
	if !m.Pick(p, FaceRight) {
		t.Fatal("Pick should be accepted")
	}
	move, ok, err := m.Turn(DirNeg)
	if err != nil {
		t.Fatalf("Turn failed: %v", err)
	}
	if !ok {
		t.Fatal("Turn should commit")
	}
	want := Move{Axis: AxisX, Layer: 0, Direction: DirNeg}
	if move != want {
		t.Errorf("Move = %+v, want %+v", move, want)
	}
}
