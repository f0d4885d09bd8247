// Package twistcube models a 3x3x3 twisty puzzle as 26 positioned pieces
// and maps user gestures onto quarter-turn moves.
//
// # Features
//
//   - Piece-based cube state (position + per-face sticker colors)
//   - Pure rotation engine with invariant checking
//   - Face and layer resolution from spatial positions
//   - Gesture-to-move mapping (pick, drag, discrete direction commands)
//   - Standard move notation parsing and formatting
//
// # Quick Start
//
// Create a solved cube and apply moves:
//
//	cube := twistcube.New()
//
//	// Apply moves using predefined constants
//	if err := cube.ApplyMoves(twistcube.R, twistcube.U, twistcube.RPrime, twistcube.UPrime); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Or from notation
//	cube.ApplyNotation("F B2 L' D")
//
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Gesture Mapping
//
// The Mapper turns interaction signals into moves. A host input layer
// (pointer, keyboard, hand tracking) feeds it pick, drag, and release
// events; the mapper resolves the grabbed face to an axis and layer,
// commits at most one move per grab, and rejects input while a committed
// turn is still visually completing:
//
//	mapper := twistcube.NewMapper(cube,
//	    twistcube.WithOnCommit(func(m twistcube.Move, c *twistcube.Cube) {
//	        fmt.Println("committed:", m.Notation())
//	    }))
//
//	piece, _ := cube.PieceAt(twistcube.Vec3{X: 1, Y: 1, Z: 1})
//	mapper.Pick(piece, twistcube.FaceRight)
//	mapper.Turn(twistcube.DirPos) // emits {X, 1, +1}
//
// # Predefined Moves
//
// The package provides predefined moves for convenience:
//
//	twistcube.R      // Right face clockwise
//	twistcube.RPrime // Right face counter-clockwise
//	twistcube.M      // Middle slice (follows L)
//	// ... and similarly for L, U, D, F, B, E, S
package twistcube
