package nxcube

import "strings"

// Net renders the cube unfolded as a cross:
//
//	  U
//	L F R B
//	  D
//
// Each sticker is drawn by cell and blank fills the empty corners, one
// blank per sticker. Every face is drawn top row first, so adjacent faces
// line up along their shared edges.
func (c *Cube) Net(cell func(Color) string, blank string) string {
	var grids [NumFaces][][]Color
	for _, f := range Faces {
		grids[f] = c.FaceColors(f)
	}

	pad := strings.Repeat(blank, c.size)
	var b strings.Builder

	writeRow := func(f Face, row int) {
		for _, col := range grids[f][row] {
			b.WriteString(cell(col))
		}
	}

	for row := c.size - 1; row >= 0; row-- {
		b.WriteString(pad)
		writeRow(FaceU, row)
		b.WriteString("\n")
	}
	for row := c.size - 1; row >= 0; row-- {
		for _, f := range []Face{FaceL, FaceF, FaceR, FaceB} {
			writeRow(f, row)
		}
		b.WriteString("\n")
	}
	for row := c.size - 1; row >= 0; row-- {
		b.WriteString(pad)
		writeRow(FaceD, row)
		b.WriteString("\n")
	}

	return b.String()
}

// String returns a text representation of the cube.
func (c *Cube) String() string {
	return c.Net(func(col Color) string { return col.String() + " " }, "  ")
}
