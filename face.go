package nxcube

// Face identifies one of the six sides of the cube.
// The ordinal order (U, R, F, D, L, B) is used for iteration and for
// the state string.
type Face int

const (
	FaceU Face = iota // Up
	FaceR             // Right
	FaceF             // Front
	FaceD             // Down
	FaceL             // Left
	FaceB             // Back
)

// NumFaces is the number of faces on a cube.
const NumFaces = 6

// Faces lists every face in ordinal order.
var Faces = [NumFaces]Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceR:
		return "R"
	case FaceF:
		return "F"
	case FaceD:
		return "D"
	case FaceL:
		return "L"
	case FaceB:
		return "B"
	default:
		return "?"
	}
}

// Name returns the long name of the face.
func (f Face) Name() string {
	switch f {
	case FaceU:
		return "Up"
	case FaceR:
		return "Right"
	case FaceF:
		return "Front"
	case FaceD:
		return "Down"
	case FaceL:
		return "Left"
	case FaceB:
		return "Back"
	default:
		return "Unknown"
	}
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= FaceU && f <= FaceB
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	switch f {
	case FaceU:
		return FaceD
	case FaceD:
		return FaceU
	case FaceR:
		return FaceL
	case FaceL:
		return FaceR
	case FaceF:
		return FaceB
	default:
		return FaceF
	}
}

// Axis returns the coordinate axis normal to the face.
func (f Face) Axis() Axis {
	switch f {
	case FaceL, FaceR:
		return AxisX
	case FaceD, FaceU:
		return AxisY
	default:
		return AxisZ
	}
}

// positive reports whether the face sits at the high end of its axis.
func (f Face) positive() bool {
	return f == FaceR || f == FaceU || f == FaceF
}

// SolvedColor returns the color a face shows when the cube is solved.
func (f Face) SolvedColor() Color {
	switch f {
	case FaceU:
		return White
	case FaceR:
		return Red
	case FaceF:
		return Green
	case FaceD:
		return Yellow
	case FaceL:
		return Orange
	default:
		return Blue
	}
}

// faceFromLetter maps an uppercase face letter to its Face.
func faceFromLetter(b byte) (Face, bool) {
	switch b {
	case 'U':
		return FaceU, true
	case 'R':
		return FaceR, true
	case 'F':
		return FaceF, true
	case 'D':
		return FaceD, true
	case 'L':
		return FaceL, true
	case 'B':
		return FaceB, true
	default:
		return 0, false
	}
}

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Red    Color = 1 // Right face when solved
	Green  Color = 2 // Front face when solved
	Yellow Color = 3 // Down face when solved
	Orange Color = 4 // Left face when solved
	Blue   Color = 5 // Back face when solved
)

// NumColors is the number of sticker colors.
const NumColors = 6

// Colors lists every color in code order.
var Colors = [NumColors]Color{White, Red, Green, Yellow, Orange, Blue}

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Red:
		return "R"
	case Green:
		return "G"
	case Yellow:
		return "Y"
	case Orange:
		return "O"
	case Blue:
		return "B"
	default:
		return "?"
	}
}

// Name returns the lowercase color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Orange:
		return "orange"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// Code returns the single digit used for the color in state strings.
func (c Color) Code() byte {
	return '0' + byte(c)
}

// Axis is one of the three coordinate axes.
type Axis int

const (
	AxisX Axis = iota // Left to Right
	AxisY             // Down to Up
	AxisZ             // Back to Front
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}
