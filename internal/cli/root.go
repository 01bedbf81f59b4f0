// Package cli implements the nxcube command-line interface.
//
// Commands scramble, apply and play cubes of any size; sessions played
// interactively or saved from a scramble are kept in a SQLite database and
// can be listed, exported and analyzed. All commands support --verbose (-v)
// for debug-level logging; the logger travels through the command context.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/config"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

var version = "0.1.0"

// SetVersion sets the version displayed by --version.
func SetVersion(v string) {
	version = v
}

// rootOptions holds global flags and the configuration resolved from them.
type rootOptions struct {
	configFile string
	dbPath     string
	verbose    bool

	cfg *config.Config
}

// Execute runs the nxcube CLI.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "nxcube",
		Short: "NxNxN cube simulator",
		Long: `nxcube - a command-line simulator for NxNxN twisty puzzles.

Scramble and apply moves in standard notation on cubes from 2x2x2 up,
play interactively in the terminal, and keep a history of sessions with
move-by-move analysis.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "Config file (default: ~/.nxcube/config.yaml)")
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "Database file path (default: ~/.nxcube/nxcube.db)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newScrambleCmd(opts))
	root.AddCommand(newApplyCmd(opts))
	root.AddCommand(newPlayCmd(opts))
	root.AddCommand(newHistoryCmd(opts))
	root.AddCommand(newExportCmd(opts))
	root.AddCommand(newReportCmd(opts))
	root.AddCommand(newVerifyCmd(opts))
	root.AddCommand(newConfigCmd(opts))

	return root
}

// load resolves configuration and attaches the logger to the command context.
func (o *rootOptions) load(cmd *cobra.Command) error {
	loader := config.NewLoader()
	if o.dbPath != "" {
		loader.Set("db_path", o.dbPath)
	}

	cfg, err := loader.Load(o.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	o.cfg = cfg

	level := cfg.Level()
	if o.verbose {
		level = log.DebugLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level)
	cmd.SetContext(withLogger(cmd.Context(), logger))

	logger.Debug("config loaded", "size", cfg.Size, "db", cfg.DBPath)
	return nil
}

// newCube builds a solved cube of the given size (0 means the configured
// size) with the configured seed and the command's logger.
func (o *rootOptions) newCube(cmd *cobra.Command, size int) (*nxcube.Cube, error) {
	if size == 0 {
		size = o.cfg.Size
	}

	cubeOpts := []nxcube.Option{
		nxcube.WithMoveHistory(o.cfg.History),
		nxcube.WithLogger(loggerFromContext(cmd.Context())),
	}
	if o.cfg.Seed != 0 {
		cubeOpts = append(cubeOpts, nxcube.WithSeed(o.cfg.Seed))
	}

	return nxcube.New(size, cubeOpts...)
}

// openDB opens the configured session database.
func (o *rootOptions) openDB() (*storage.DB, error) {
	db, err := storage.Open(o.cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// findSession resolves --id or --last to a stored session.
func findSession(db *storage.DB, id string, last bool) (*storage.Session, error) {
	if id == "" && !last {
		return nil, fmt.Errorf("specify --id or --last")
	}

	sessions := storage.NewSessionRepository(db)
	var (
		s   *storage.Session
		err error
	)
	if last {
		s, err = sessions.GetLast()
	} else {
		s, err = sessions.Get(id)
	}
	if err != nil {
		return nil, err
	}
	if s == nil {
		if last {
			return nil, fmt.Errorf("no sessions found")
		}
		return nil, fmt.Errorf("session %s not found", id)
	}
	return s, nil
}

// Main runs the CLI and exits with status 1 on error.
func Main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
