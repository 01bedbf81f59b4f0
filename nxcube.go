// Package nxcube models NxNxN twisty puzzles and applies moves to them.
//
// # Features
//
//   - Cubes of any size from 2x2x2 up
//   - Standard move notation: face turns, inner layers, slices and
//     whole-cube rotations
//   - Move inversion for single tokens and sequences
//   - Face grids, solved check and a state fingerprint for search
//   - Reproducible scrambles
//
// # Quick Start
//
//	cube, err := nxcube.New(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Apply moves from notation
//	if err := cube.ApplySequence("R U R' U'"); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Print(cube)
//
// # Notation
//
//	U D L R F B      outer layer of a face, clockwise seen from that face
//	u d l r f b      second layer from that face
//	2R 3U ...        layer N counted from the face (1 is the outer layer)
//	M E S            second layer from L, D and F, turning like that face
//	X Y Z            the whole cube, turning like R, U and F (x y z also work)
//	'                counter-clockwise
//	2                half turn
//
// # Coordinates
//
// Cubies sit at integer positions (x, y, z) in [0, size-1]. x grows from
// Left to Right, y from Down to Up and z from Back to Front. Only the outer
// shell is stored.
//
// # Copies and concurrency
//
// A Cube is owned by one goroutine at a time. Search code that explores
// several branches should Copy the cube for each branch.
package nxcube
