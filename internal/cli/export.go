package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/nxcube/internal/notation"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

// exportedMove is one move in a json or yaml export.
type exportedMove struct {
	MoveIndex int    `json:"move_index" yaml:"move_index"`
	TsMs      int64  `json:"ts_ms" yaml:"ts_ms"`
	Notation  string `json:"notation" yaml:"notation"`
}

// exportedSession is the json or yaml export of a session.
type exportedSession struct {
	SessionID string         `json:"session_id" yaml:"session_id"`
	CubeSize  int            `json:"cube_size" yaml:"cube_size"`
	Scramble  string         `json:"scramble,omitempty" yaml:"scramble,omitempty"`
	Solved    bool           `json:"solved" yaml:"solved"`
	Moves     []exportedMove `json:"moves" yaml:"moves"`
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export session data",
		Long:  `Export session data in various formats.`,
	}
	cmd.AddCommand(newExportMovesCmd(opts))
	return cmd
}

func newExportMovesCmd(opts *rootOptions) *cobra.Command {
	var (
		sessionID string
		last      bool
		format    string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "moves",
		Short: "Export moves from a session",
		Long: `Export the move sequence from a session as text, JSON or YAML.

Examples:
  nxcube export moves --last
  nxcube export moves --id <session_id> --format json
  nxcube export moves --id <session_id> --format yaml -o moves.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := opts.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			s, err := findSession(db, sessionID, last)
			if err != nil {
				return err
			}

			moves, err := storage.NewMoveRepository(db).GetBySession(s.SessionID)
			if err != nil {
				return err
			}
			if len(moves) == 0 {
				return fmt.Errorf("no moves found for session %s", s.SessionID)
			}

			data, err := formatExport(s, moves, format)
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), data)
				return nil
			}

			if dir := filepath.Dir(output); dir != "" && dir != "." {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("failed to create output directory: %w", err)
				}
			}
			if err := os.WriteFile(output, []byte(data+"\n"), 0644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d moves to %s\n", len(moves), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "id", "", "Session ID to export")
	cmd.Flags().BoolVar(&last, "last", false, "Export the last session")
	cmd.Flags().StringVar(&format, "format", "txt", "Export format (txt, json, yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func formatExport(s *storage.Session, moves []storage.MoveRecord, format string) (string, error) {
	switch strings.ToLower(format) {
	case "txt":
		return notation.Format(storage.Tokens(moves)), nil

	case "json", "yaml":
		doc := exportedSession{
			SessionID: s.SessionID,
			CubeSize:  s.CubeSize,
			Solved:    s.Solved,
			Moves:     make([]exportedMove, len(moves)),
		}
		if s.ScrambleText != nil {
			doc.Scramble = *s.ScrambleText
		}
		for i, m := range moves {
			doc.Moves[i] = exportedMove{MoveIndex: m.MoveIndex, TsMs: m.TsMs, Notation: m.Notation}
		}

		if strings.ToLower(format) == "yaml" {
			data, err := yaml.Marshal(doc)
			if err != nil {
				return "", fmt.Errorf("failed to marshal YAML: %w", err)
			}
			return strings.TrimRight(string(data), "\n"), nil
		}

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil

	default:
		return "", fmt.Errorf("unknown format: %s (use txt, json or yaml)", format)
	}
}
