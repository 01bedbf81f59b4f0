package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/notation"
)

func newApplyCmd(opts *rootOptions) *cobra.Command {
	var (
		size     int
		simplify bool
		inverse  bool
		describe bool
		color    bool
	)

	cmd := &cobra.Command{
		Use:   "apply <moves>",
		Short: "Apply a move sequence to a solved cube",
		Long: `Apply a move sequence to a solved cube and show the result.

Moves use standard notation: U D L R F B, lowercase or a numeric prefix for
inner layers (r, 3F'), slices M E S and rotations X Y Z.

Examples:
  nxcube apply "R U R' U'"
  nxcube apply --size 4 "r U2 2R'"
  nxcube apply --inverse "R U R' U'"
  nxcube apply --simplify "R R U U'"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens := notation.Split(strings.Join(args, " "))
			if _, err := nxcube.ParseMoves(notation.Format(tokens)); err != nil {
				return err
			}

			var err error
			if inverse {
				if tokens, err = nxcube.InverseSequence(tokens); err != nil {
					return err
				}
			}
			if simplify {
				if tokens, err = notation.Simplify(tokens); err != nil {
					return err
				}
			}

			cube, err := opts.newCube(cmd, size)
			if err != nil {
				return err
			}
			if err := cube.ApplyAll(tokens); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Moves:  %s\n", moveStyle.Render(notation.Format(tokens)))
			if describe {
				text, err := notation.DescribeSequence(tokens)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "        %s\n", statusStyle.Render(text))
			}
			fmt.Fprintf(out, "Solved: %s\n", solvedLabel(cube.IsSolved()))
			fmt.Fprintf(out, "State:  %s\n\n", cube.StateString())
			fmt.Fprint(out, renderNet(cube, color))
			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", 0, "Cube size (default from config)")
	cmd.Flags().BoolVar(&simplify, "simplify", false, "Merge adjacent turns of the same layer first")
	cmd.Flags().BoolVar(&inverse, "inverse", false, "Apply the inverse of the sequence")
	cmd.Flags().BoolVar(&describe, "describe", false, "Describe each move in words")
	cmd.Flags().BoolVar(&color, "color", false, "Draw the net with colored stickers")

	return cmd
}
