package twistcube

import "math"

// Vec3 is a point or direction in the cube's centered lattice space.
// Piece positions use exact coordinates in {-1, 0, 1}; gesture movement
// vectors are arbitrary.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Add returns the sum of v and o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale returns v multiplied by the scalar s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: s * v.X, Y: s * v.Y, Z: s * v.Z}
}

// Component returns the coordinate of v along axis.
func (v Vec3) Component(axis Axis) float64 {
	switch axis {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// Round snaps each coordinate to the nearest integer. Applied after
// rotations so positions stay exact lattice points. Adding zero folds
// IEEE negative zero into positive zero, keeping Vec3 usable as a map
// key.
func (v Vec3) Round() Vec3 {
	return Vec3{X: math.Round(v.X) + 0, Y: math.Round(v.Y) + 0, Z: math.Round(v.Z) + 0}
}

// RotateQuarter rotates v by dir*90 degrees about axis.
//
// Orientation convention: a positive turn carries the front pole toward
// the top pole about X, front toward right about Y, and top toward right
// about Z. The color cycles in the rotation engine follow the same
// convention, which is what keeps geometry and stickers in agreement.
func (v Vec3) RotateQuarter(axis Axis, dir Direction) Vec3 {
	theta := float64(dir) * math.Pi / 2
	sin, cos := math.Sin(theta), math.Cos(theta)
	switch axis {
	case AxisX:
		return Vec3{
			X: v.X,
			Y: v.Y*cos + v.Z*sin,
			Z: -v.Y*sin + v.Z*cos,
		}
	case AxisY:
		return Vec3{
			X: v.X*cos + v.Z*sin,
			Y: v.Y,
			Z: -v.X*sin + v.Z*cos,
		}
	default:
		return Vec3{
			X: v.X*cos + v.Y*sin,
			Y: -v.X*sin + v.Y*cos,
			Z: v.Z,
		}
	}
}
