package nxcube

// Well-known algorithms as token sequences.
//
// Example:
//
//	cube.ApplyAll(nxcube.SexyMove)
var (
	// Sexy move: R U R' U' - one of the most common algorithms
	SexyMove = []string{"R", "U", "R'", "U'"}

	// Inverse sexy move: U R U' R'
	InverseSexyMove = []string{"U", "R", "U'", "R'"}

	// T-perm algorithm
	TPerm = []string{"R", "U", "R'", "U'", "R'", "F", "R2", "U'", "R'", "U'", "R", "U", "R'", "F'"}

	// Sune: orients three last-layer corners
	Sune = []string{"R", "U", "R'", "U", "R", "U2", "R'"}

	// Superflip on a 3x3: every edge flipped in place
	Superflip = []string{
		"U", "R2", "F", "B", "R", "B2", "R", "U2", "L", "B2", "R",
		"U'", "D'", "R2", "F", "R'", "L", "B2", "U2", "F2",
	}
)
