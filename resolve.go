package twistcube

import (
	"fmt"
	"math"
)

// DetectFace returns the face label whose axis carries the largest
// absolute coordinate of pos; the sign of that coordinate selects which
// of the axis's two labels. Ties resolve in X, Y, Z priority order.
func DetectFace(pos Vec3) FaceLabel {
	axis, mag := AxisX, math.Abs(pos.X)
	if math.Abs(pos.Y) > mag {
		axis, mag = AxisY, math.Abs(pos.Y)
	}
	if math.Abs(pos.Z) > mag {
		axis = AxisZ
	}

	positive := pos.Component(axis) >= 0
	switch axis {
	case AxisX:
		if positive {
			return FaceRight
		}
		return FaceLeft
	case AxisY:
		if positive {
			return FaceTop
		}
		return FaceBottom
	default:
		if positive {
			return FaceFront
		}
		return FaceBack
	}
}

// FaceAxis returns the rotation axis a face label lies on. An unknown
// label is a contract violation by the caller and panics.
func FaceAxis(f FaceLabel) Axis {
	switch f {
	case FaceRight, FaceLeft:
		return AxisX
	case FaceTop, FaceBottom:
		return AxisY
	case FaceFront, FaceBack:
		return AxisZ
	default:
		panic(fmt.Sprintf("twistcube: unknown face label %d", int(f)))
	}
}

// faceSign returns +1 for the positive-pole label of an axis and -1 for
// the negative one.
func faceSign(f FaceLabel) float64 {
	switch f {
	case FaceRight, FaceTop, FaceFront:
		return 1
	default:
		return -1
	}
}

// LayerOf returns the layer coordinate of pos along axis. This is the
// discriminator that selects the nine pieces of one rotating layer.
func LayerOf(pos Vec3, axis Axis) int {
	return int(math.Round(pos.Component(axis)))
}
