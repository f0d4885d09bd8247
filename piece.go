package twistcube

// Color represents a sticker color.
type Color byte

const (
	ColorNone Color = 0 // interior face, no sticker
	White     Color = 1 // Top face when solved
	Yellow    Color = 2 // Bottom face when solved
	Green     Color = 3 // Front face when solved
	Blue      Color = 4 // Back face when solved
	Red       Color = 5 // Right face when solved
	Orange    Color = 6 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	case ColorNone:
		return "."
	default:
		return "?"
	}
}

// FaceLabel identifies one of the six faces of a piece. The labels pair
// up along the three axes: right/left on X, top/bottom on Y, front/back
// on Z.
type FaceLabel int

const (
	FaceRight  FaceLabel = 0
	FaceLeft   FaceLabel = 1
	FaceTop    FaceLabel = 2
	FaceBottom FaceLabel = 3
	FaceFront  FaceLabel = 4
	FaceBack   FaceLabel = 5

	numFaces = 6
)

func (f FaceLabel) String() string {
	switch f {
	case FaceRight:
		return "right"
	case FaceLeft:
		return "left"
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	default:
		return "?"
	}
}

// Axis identifies a rotation axis.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// Direction is the sense of a quarter turn: +90 or -90 degrees about
// the move's axis, in the orientation convention of Vec3.RotateQuarter.
type Direction int

const (
	DirPos Direction = 1  // +90 degrees
	DirNeg Direction = -1 // -90 degrees
)

// Piece is one visible unit cube of the puzzle. Pos holds its centered
// lattice position; Colors holds one sticker slot per FaceLabel, with
// ColorNone on interior faces.
type Piece struct {
	Pos    Vec3
	Colors [numFaces]Color
}

// Color returns the sticker color on the given face of the piece.
func (p Piece) Color(f FaceLabel) Color {
	return p.Colors[f]
}

// solvedColor returns the canonical color of a face in the solved state.
func solvedColor(f FaceLabel) Color {
	switch f {
	case FaceRight:
		return Red
	case FaceLeft:
		return Orange
	case FaceTop:
		return White
	case FaceBottom:
		return Yellow
	case FaceFront:
		return Green
	case FaceBack:
		return Blue
	default:
		return ColorNone
	}
}
