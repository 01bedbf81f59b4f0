package nxcube

import (
	"fmt"
	"strings"
)

// Apply parses a move token and applies it to the cube.
//
// The move is atomic: if the token cannot be parsed (*ParseError) or cannot
// be performed on this cube (*UnknownMoveError), the cube is left unchanged.
// On success the token is appended to the history.
func (c *Cube) Apply(token string) error {
	m, err := ParseMove(token)
	if err != nil {
		return err
	}
	return c.applyMove(m, strings.TrimSpace(token))
}

// ApplyMove applies a parsed move. Its canonical notation is recorded in
// the history.
func (c *Cube) ApplyMove(m Move) error {
	return c.applyMove(m, m.Notation())
}

// ApplyAll applies tokens in order, stopping at the first one that fails.
// Moves before the failing one stay applied.
func (c *Cube) ApplyAll(tokens []string) error {
	for i, tok := range tokens {
		if err := c.Apply(tok); err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return nil
}

// ApplySequence applies a whitespace-separated sequence such as "R U R' U'".
func (c *Cube) ApplySequence(seq string) error {
	return c.ApplyAll(strings.Fields(seq))
}

func (c *Cube) applyMove(m Move, token string) error {
	rots, err := c.rotations(m, token)
	if err != nil {
		return err
	}

	next := c.plan(rots)
	c.commit(next)

	if c.keepHistory {
		c.history = append(c.history, token)
	}
	c.logger.Debug("applied move", "move", token, "cubies", len(next))
	return nil
}

// rotations resolves a move into the layer turns that perform it.
func (c *Cube) rotations(m Move, token string) ([]rotation, error) {
	t := m.turn()

	switch m.Base {
	case 'X':
		return c.wholeCube(FaceR, t), nil
	case 'Y':
		return c.wholeCube(FaceU, t), nil
	case 'Z':
		return c.wholeCube(FaceF, t), nil
	// Slices turn with the face they are numbered from: M with L, E with D,
	// S with F.
	case 'M':
		return []rotation{{face: FaceL, layer: 1, turn: t}}, nil
	case 'E':
		return []rotation{{face: FaceD, layer: 1, turn: t}}, nil
	case 'S':
		return []rotation{{face: FaceF, layer: 1, turn: t}}, nil
	}

	f, ok := m.Face()
	if !ok {
		return nil, &UnknownMoveError{Token: token, Reason: fmt.Sprintf("no face or rotation for %q", m.Base)}
	}
	if m.Layer < 0 || m.Layer >= c.size {
		return nil, &UnknownMoveError{
			Token:  token,
			Reason: fmt.Sprintf("layer %d does not exist on a %dx%dx%d cube", m.Layer+1, c.size, c.size, c.size),
		}
	}
	return []rotation{{face: f, layer: m.Layer, turn: t}}, nil
}

// wholeCube turns every layer along the axis of f.
func (c *Cube) wholeCube(f Face, t turn) []rotation {
	rots := make([]rotation, c.size)
	for i := range rots {
		rots[i] = rotation{face: f, layer: i, turn: t}
	}
	return rots
}
