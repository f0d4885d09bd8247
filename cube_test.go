package twistcube

import (
	"errors"
	"testing"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := New()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("New cube should validate: %v", err)
	}
}

func TestNewCubePositionsAreUnique(t *testing.T) {
	c := New()
	seen := make(map[Vec3]bool)
	for _, p := range c.Pieces {
		if seen[p.Pos] {
			t.Errorf("Duplicate position %v", p.Pos)
		}
		seen[p.Pos] = true
	}
	if len(seen) != NumPieces {
		t.Errorf("Expected %d distinct positions, got %d", NumPieces, len(seen))
	}
}

func TestNewCubeHasNoInteriorPiece(t *testing.T) {
	c := New()
	if _, ok := c.PieceAt(Vec3{}); ok {
		t.Error("The fully-interior position should not be materialized")
	}
}

func TestSolvedStickerAssignment(t *testing.T) {
	c := New()

	// Corner at (1,1,1): right, top, front stickers, nothing else.
	p, ok := c.PieceAt(Vec3{X: 1, Y: 1, Z: 1})
	if !ok {
		t.Fatal("Missing corner piece at (1,1,1)")
	}
	want := [numFaces]Color{}
	want[FaceRight] = Red
	want[FaceTop] = White
	want[FaceFront] = Green
	if p.Colors != want {
		t.Errorf("Corner colors = %v, want %v", p.Colors, want)
	}

	// Center of the back face: a single blue sticker.
	p, ok = c.PieceAt(Vec3{Z: -1})
	if !ok {
		t.Fatal("Missing center piece at (0,0,-1)")
	}
	for f := FaceLabel(0); f < numFaces; f++ {
		wantColor := ColorNone
		if f == FaceBack {
			wantColor = Blue
		}
		if p.Color(f) != wantColor {
			t.Errorf("Back center face %s = %s, want %s", f, p.Color(f), wantColor)
		}
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := New()
	if err := c.ApplyMoves(R); err != nil {
		t.Fatalf("ApplyMoves(R) failed: %v", err)
	}
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestValidateAfterScramble(t *testing.T) {
	c := New()
	if err := c.ApplyNotation("R U2 F' D L2 B E M' S U' R2 F"); err != nil {
		t.Fatalf("Scramble failed: %v", err)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Scrambled cube should still validate: %v", err)
	}
}

func TestValidateDetectsDuplicatePosition(t *testing.T) {
	c := New()
	c.Pieces[0].Pos = c.Pieces[1].Pos
	if err := c.Validate(); !errors.Is(err, ErrDuplicatePosition) {
		t.Errorf("Validate = %v, want ErrDuplicatePosition", err)
	}
}

func TestValidateDetectsStickerLoss(t *testing.T) {
	c := New()
	for i := range c.Pieces {
		if c.Pieces[i].Colors[FaceTop] == White {
			c.Pieces[i].Colors[FaceTop] = Green
			break
		}
	}
	if err := c.Validate(); !errors.Is(err, ErrColorImbalance) {
		t.Errorf("Validate = %v, want ErrColorImbalance", err)
	}
}

func TestApplyNotationInvalidLeavesStateUntouched(t *testing.T) {
	c := New()
	if err := c.ApplyNotation("R QQ U"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("ApplyNotation = %v, want ErrInvalidNotation", err)
	}
	if !c.IsSolved() {
		t.Error("Cube should be untouched after a parse failure")
	}
}

func TestStickerAtSolvedCenters(t *testing.T) {
	c := New()
	centers := map[FaceLabel]Color{
		FaceTop:    White,
		FaceBottom: Yellow,
		FaceFront:  Green,
		FaceBack:   Blue,
		FaceRight:  Red,
		FaceLeft:   Orange,
	}
	for f, want := range centers {
		if got := c.StickerAt(f, 1, 1); got != want {
			t.Errorf("Center of %s = %s, want %s", f, got, want)
		}
	}
}

func TestStickerCyclesAfterFrontTurn(t *testing.T) {
	c := New()
	if err := c.ApplyMoves(F); err != nil {
		t.Fatalf("ApplyMoves(F) failed: %v", err)
	}

	// The front face itself stays green; the adjacent rows cycle
	// top <- left, right <- top, bottom <- right, left <- bottom.
	for col := 0; col < cubeDim; col++ {
		if got := c.StickerAt(FaceFront, 1, col); got != Green {
			t.Errorf("Front row 1 col %d = %s, want G", col, got)
		}
		if got := c.StickerAt(FaceTop, 2, col); got != Orange {
			t.Errorf("Top front row col %d = %s, want O", col, got)
		}
		if got := c.StickerAt(FaceBottom, 0, col); got != Red {
			t.Errorf("Bottom front row col %d = %s, want R", col, got)
		}
	}
}
