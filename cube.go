package twistcube

import (
	"fmt"
	"strings"
)

const (
	cubeDim      = 3
	centerOffset = (cubeDim - 1) / 2

	// NumPieces is the number of visible pieces of the puzzle. The one
	// fully-interior position is never materialized.
	NumPieces = cubeDim*cubeDim*cubeDim - 1

	stickersPerColor = cubeDim * cubeDim
)

// Cube is the full state of the puzzle: 26 pieces in a fixed array
// order. Cube values are comparable with ==, which the tests rely on
// for exact state equality.
type Cube struct {
	Pieces [NumPieces]Piece
}

// New creates a solved cube with the standard orientation: white on
// top, green in front, red on the right.
func New() *Cube {
	c := &Cube{}
	i := 0
	for x := 0; x < cubeDim; x++ {
		for y := 0; y < cubeDim; y++ {
			for z := 0; z < cubeDim; z++ {
				if x == centerOffset && y == centerOffset && z == centerOffset {
					continue // fully interior
				}
				p := Piece{Pos: Vec3{
					X: float64(x - centerOffset),
					Y: float64(y - centerOffset),
					Z: float64(z - centerOffset),
				}}
				if x == cubeDim-1 {
					p.Colors[FaceRight] = solvedColor(FaceRight)
				}
				if x == 0 {
					p.Colors[FaceLeft] = solvedColor(FaceLeft)
				}
				if y == cubeDim-1 {
					p.Colors[FaceTop] = solvedColor(FaceTop)
				}
				if y == 0 {
					p.Colors[FaceBottom] = solvedColor(FaceBottom)
				}
				if z == cubeDim-1 {
					p.Colors[FaceFront] = solvedColor(FaceFront)
				}
				if z == 0 {
					p.Colors[FaceBack] = solvedColor(FaceBack)
				}
				c.Pieces[i] = p
				i++
			}
		}
	}
	return c
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// PieceAt returns the piece at the given centered lattice position.
func (c *Cube) PieceAt(pos Vec3) (Piece, bool) {
	pos = pos.Round()
	for _, p := range c.Pieces {
		if p.Pos == pos {
			return p, true
		}
	}
	return Piece{}, false
}

// IsSolved returns true if every sticker matches its face's canonical
// color, regardless of how pieces are ordered in the array.
func (c *Cube) IsSolved() bool {
	for _, p := range c.Pieces {
		if p.Colors != solvedColorsAt(p.Pos) {
			return false
		}
	}
	return true
}

// solvedColorsAt returns the sticker assignment a piece at pos carries
// in the solved state: canonical color on each exterior face, ColorNone
// elsewhere.
func solvedColorsAt(pos Vec3) [numFaces]Color {
	var colors [numFaces]Color
	for f := FaceLabel(0); f < numFaces; f++ {
		if pos.Component(FaceAxis(f)) == faceSign(f) {
			colors[f] = solvedColor(f)
		}
	}
	return colors
}

// ApplyMoves applies a sequence of moves, replacing the cube's state
// wholesale after each successful turn. On error the state is left at
// the last successfully applied move.
func (c *Cube) ApplyMoves(moves ...Move) error {
	for _, m := range moves {
		next, err := Apply(c, m)
		if err != nil {
			return err
		}
		*c = *next
	}
	return nil
}

// ApplyNotation parses a notation string and applies the moves.
// Example: "R U R' U'"
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	return c.ApplyMoves(moves...)
}

// Validate checks the structural invariants of the state: exactly one
// piece per boundary lattice position, a sticker exactly on each
// exterior face, and nine stickers of each of the six colors. A
// non-nil error indicates a corrupted state or an engine bug, never a
// user condition.
func (c *Cube) Validate() error {
	seen := make(map[Vec3]bool, NumPieces)
	counts := make(map[Color]int, numFaces)

	for _, p := range c.Pieces {
		if seen[p.Pos] {
			return fmt.Errorf("%w: %v", ErrDuplicatePosition, p.Pos)
		}
		seen[p.Pos] = true

		for f := FaceLabel(0); f < numFaces; f++ {
			exterior := p.Pos.Component(FaceAxis(f)) == faceSign(f)
			colored := p.Colors[f] != ColorNone
			if exterior != colored {
				return fmt.Errorf("%w: piece %v face %s", ErrStickerPlacement, p.Pos, f)
			}
			if colored {
				counts[p.Colors[f]]++
			}
		}
	}

	for _, color := range []Color{White, Yellow, Green, Blue, Red, Orange} {
		if counts[color] != stickersPerColor {
			return fmt.Errorf("%w: %s has %d stickers", ErrColorImbalance, color, counts[color])
		}
	}
	return nil
}

// String returns a text representation of the cube as an unfolded net:
// top on top, then left/front/right/back, then bottom.
func (c *Cube) String() string {
	var b strings.Builder

	for row := 0; row < cubeDim; row++ {
		b.WriteString("      ")
		for col := 0; col < cubeDim; col++ {
			b.WriteString(c.StickerAt(FaceTop, row, col).String())
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	for row := 0; row < cubeDim; row++ {
		for _, f := range []FaceLabel{FaceLeft, FaceFront, FaceRight, FaceBack} {
			for col := 0; col < cubeDim; col++ {
				b.WriteString(c.StickerAt(f, row, col).String())
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	for row := 0; row < cubeDim; row++ {
		b.WriteString("      ")
		for col := 0; col < cubeDim; col++ {
			b.WriteString(c.StickerAt(FaceBottom, row, col).String())
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// StickerAt returns the color at one cell of a face's 3x3 grid in the
// conventional unfolded-net orientation: row 0 is the upper edge of the
// face as drawn, except that the top face's row 0 is its back edge and
// the bottom face's row 0 is its front edge.
func (c *Cube) StickerAt(f FaceLabel, row, col int) Color {
	var pos Vec3
	r, q := float64(row-centerOffset), float64(col-centerOffset)
	switch f {
	case FaceTop:
		pos = Vec3{X: q, Y: 1, Z: r}
	case FaceBottom:
		pos = Vec3{X: q, Y: -1, Z: -r}
	case FaceFront:
		pos = Vec3{X: q, Y: -r, Z: 1}
	case FaceBack:
		pos = Vec3{X: -q, Y: -r, Z: -1}
	case FaceLeft:
		pos = Vec3{X: -1, Y: -r, Z: q}
	case FaceRight:
		pos = Vec3{X: 1, Y: -r, Z: -q}
	}
	p, ok := c.PieceAt(pos)
	if !ok {
		return ColorNone
	}
	return p.Colors[f]
}
