package notation

import (
	"strconv"
	"strings"

	"github.com/SeamusWaldron/nxcube"
)

// Reference frame: White on top, Green in front, facing the cube.
var (
	faceWords = map[byte]string{
		'U': "top", 'D': "bottom", 'L': "left", 'R': "right", 'F': "front", 'B': "back",
		'M': "middle slice", 'E': "equator slice", 'S': "standing slice",
		'X': "whole cube", 'Y': "whole cube", 'Z': "whole cube",
	}

	// How a clockwise turn looks from the front.
	clockwiseWords = map[byte]string{
		'U': "left", 'D': "right", 'L': "down", 'R': "up", 'F': "clockwise", 'B': "anti-clockwise",
		'M': "down", 'E': "right", 'S': "clockwise",
		'X': "up", 'Y': "left", 'Z': "clockwise",
	}

	opposite = map[string]string{
		"left": "right", "right": "left", "up": "down", "down": "up",
		"clockwise": "anti-clockwise", "anti-clockwise": "clockwise",
	}
)

// Describe returns a plain description of a move as seen from the front.
//
//	R   -> "right layer up"
//	U'  -> "top layer right"
//	3F2 -> "3rd front layer twice"
//	Y   -> "whole cube left"
func Describe(m nxcube.Move) string {
	var b strings.Builder

	if m.Layer > 0 {
		b.WriteString(ordinal(m.Layer + 1))
		b.WriteByte(' ')
	}
	b.WriteString(faceWords[m.Base])
	if _, ok := m.Face(); ok {
		b.WriteString(" layer")
	}
	b.WriteByte(' ')

	dir := clockwiseWords[m.Base]
	switch {
	case m.Double:
		b.WriteString("twice")
	case m.Prime:
		b.WriteString(opposite[dir])
	default:
		b.WriteString(dir)
	}
	return b.String()
}

// DescribeSequence describes each token, joined with commas.
func DescribeSequence(tokens []string) (string, error) {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		m, err := nxcube.ParseMove(tok)
		if err != nil {
			return "", err
		}
		parts[i] = Describe(m)
	}
	return strings.Join(parts, ", "), nil
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}
