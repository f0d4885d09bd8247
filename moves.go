package twistcube

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube.ApplyMoves(twistcube.R, twistcube.U, twistcube.RPrime, twistcube.UPrime)
var (
	// Right face moves
	R      = Move{Axis: AxisX, Layer: 1, Direction: DirPos}  // Right clockwise
	RPrime = Move{Axis: AxisX, Layer: 1, Direction: DirNeg}  // Right counter-clockwise

	// Left face moves
	L      = Move{Axis: AxisX, Layer: -1, Direction: DirNeg} // Left clockwise
	LPrime = Move{Axis: AxisX, Layer: -1, Direction: DirPos} // Left counter-clockwise

	// Up face moves
	U      = Move{Axis: AxisY, Layer: 1, Direction: DirNeg}  // Up clockwise
	UPrime = Move{Axis: AxisY, Layer: 1, Direction: DirPos}  // Up counter-clockwise

	// Down face moves
	D      = Move{Axis: AxisY, Layer: -1, Direction: DirPos} // Down clockwise
	DPrime = Move{Axis: AxisY, Layer: -1, Direction: DirNeg} // Down counter-clockwise

	// Front face moves
	F      = Move{Axis: AxisZ, Layer: 1, Direction: DirPos}  // Front clockwise
	FPrime = Move{Axis: AxisZ, Layer: 1, Direction: DirNeg}  // Front counter-clockwise

	// Back face moves
	B      = Move{Axis: AxisZ, Layer: -1, Direction: DirNeg} // Back clockwise
	BPrime = Move{Axis: AxisZ, Layer: -1, Direction: DirPos} // Back counter-clockwise

	// Slice moves
	M      = Move{Axis: AxisX, Layer: 0, Direction: DirNeg}  // Middle slice, follows L
	MPrime = Move{Axis: AxisX, Layer: 0, Direction: DirPos}
	E      = Move{Axis: AxisY, Layer: 0, Direction: DirPos}  // Equator slice, follows D
	EPrime = Move{Axis: AxisY, Layer: 0, Direction: DirNeg}
	S      = Move{Axis: AxisZ, Layer: 0, Direction: DirPos}  // Standing slice, follows F
	SPrime = Move{Axis: AxisZ, Layer: 0, Direction: DirNeg}
)
