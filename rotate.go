package twistcube

import (
	"fmt"
	"math"
)

// layerEpsilon tolerates floating intermediates when matching a piece's
// coordinate against a layer value.
const layerEpsilon = 1e-6

// layerSize is the number of pieces in any one rotating layer.
const layerSize = cubeDim * cubeDim

// MalformedLayerError reports a layer selection that did not contain
// exactly nine pieces. It indicates a corrupted cube state or an engine
// bug and is never a retryable condition.
type MalformedLayerError struct {
	Axis  Axis
	Layer int
	Count int
}

func (e *MalformedLayerError) Error() string {
	return fmt.Sprintf("twistcube: malformed layer %s=%d: selected %d pieces, want %d",
		e.Axis, e.Layer, e.Count, layerSize)
}

// colorCycles lists, per axis, the four faces orthogonal to that axis
// in the order a positive turn carries colors through them. The same
// order governs piece movement (see Vec3.RotateQuarter), so a sticker
// facing front before an X-positive turn faces top after it, on a piece
// that itself moved from the front pole toward the top pole.
var colorCycles = [3][4]FaceLabel{
	AxisX: {FaceFront, FaceTop, FaceBack, FaceBottom},
	AxisY: {FaceFront, FaceRight, FaceBack, FaceLeft},
	AxisZ: {FaceTop, FaceRight, FaceBottom, FaceLeft},
}

// Apply returns a new cube with the layer selected by move turned by a
// quarter. The input cube is never modified; callers observe the turn
// only through the returned state.
//
// If the layer selection matches anything other than exactly nine
// pieces, Apply returns a *MalformedLayerError and no new state.
func Apply(c *Cube, move Move) (*Cube, error) {
	if move.Direction != DirPos && move.Direction != DirNeg {
		return nil, fmt.Errorf("%w: direction %d", ErrInvalidMove, int(move.Direction))
	}

	next := c.Clone()
	count := 0
	for i := range next.Pieces {
		p := &next.Pieces[i]
		if math.Abs(p.Pos.Component(move.Axis)-float64(move.Layer)) >= layerEpsilon {
			continue
		}
		count++
		p.Pos = p.Pos.RotateQuarter(move.Axis, move.Direction).Round()
		p.Colors = cycleColors(p.Colors, move.Axis, move.Direction)
	}

	if count != layerSize {
		return nil, &MalformedLayerError{Axis: move.Axis, Layer: move.Layer, Count: count}
	}
	return next, nil
}

// cycleColors permutes the four side-face stickers orthogonal to axis.
// The two faces on the axis itself keep their stickers. Colors are only
// moved between faces, never created or dropped, which is what keeps
// the global color multiset invariant.
func cycleColors(colors [numFaces]Color, axis Axis, dir Direction) [numFaces]Color {
	cycle := colorCycles[axis]
	out := colors
	for i, from := range cycle {
		var to FaceLabel
		if dir == DirPos {
			to = cycle[(i+1)%len(cycle)]
		} else {
			to = cycle[(i+len(cycle)-1)%len(cycle)]
		}
		out[to] = colors[from]
	}
	return out
}
