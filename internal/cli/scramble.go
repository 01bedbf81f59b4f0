package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/notation"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

func newScrambleCmd(opts *rootOptions) *cobra.Command {
	var (
		length int
		size   int
		seed   int64
		save   bool
		color  bool
		notes  string
	)

	cmd := &cobra.Command{
		Use:   "scramble",
		Short: "Generate a random scramble",
		Long: `Generate a random scramble and show the scrambled cube.

On cubes of size 4 and up, inner layers are turned too and written with a
numeric prefix such as 3R'.

Examples:
  nxcube scramble
  nxcube scramble --size 5 -n 60
  nxcube scramble --seed 42 --save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("length") {
				length = opts.cfg.ScrambleLength
			}
			if length < 0 {
				return fmt.Errorf("scramble length must not be negative")
			}

			cube, err := opts.newCube(cmd, size)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cube, err = nxcube.New(cube.Size(),
					nxcube.WithSeed(seed),
					nxcube.WithLogger(loggerFromContext(cmd.Context())))
				if err != nil {
					return err
				}
			}

			moves, err := cube.Scramble(length)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, moveStyle.Render(notation.Format(moves)))
			fmt.Fprintln(out)
			fmt.Fprint(out, renderNet(cube, color))

			if !save {
				return nil
			}

			db, err := opts.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			sessions := storage.NewSessionRepository(db)
			id, err := sessions.Create(cube.Size(), notation.Format(moves), notes)
			if err != nil {
				return err
			}
			if err := sessions.End(id, cube.IsSolved(), cube.StateString()); err != nil {
				return err
			}

			loggerFromContext(cmd.Context()).Info("saved scramble", "session", id)
			fmt.Fprintf(out, "\nSession: %s\n", id)
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "n", 20, "Number of moves (default from config)")
	cmd.Flags().IntVarP(&size, "size", "s", 0, "Cube size (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for a reproducible scramble")
	cmd.Flags().BoolVar(&save, "save", false, "Record the scramble as a session")
	cmd.Flags().BoolVar(&color, "color", false, "Draw the net with colored stickers")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes stored with a saved session")

	return cmd
}
