package nxcube

import "strconv"

var (
	scrambleFaces     = [...]string{"U", "R", "F", "D", "L", "B"}
	scrambleModifiers = [...]string{"", "'", "2"}
)

// Scramble applies n random moves and returns them so the scramble can be
// reproduced. On cubes of size 4 and up, half of the moves turn an inner
// layer, written with a numeric prefix such as 2R'.
func (c *Cube) Scramble(n int) ([]string, error) {
	moves := make([]string, 0, max(n, 0))
	for i := 0; i < n; i++ {
		tok := scrambleFaces[c.rng.Intn(len(scrambleFaces))]
		mod := scrambleModifiers[c.rng.Intn(len(scrambleModifiers))]

		if c.size >= 4 && c.rng.Float64() < 0.5 {
			layer := 1 + c.rng.Intn(c.size-2)
			tok = strconv.Itoa(layer+1) + tok
		}

		moves = append(moves, tok+mod)
	}

	if err := c.ApplyAll(moves); err != nil {
		return nil, err
	}
	c.logger.Debug("scrambled", "size", c.size, "moves", len(moves))
	return moves, nil
}
