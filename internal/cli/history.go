package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube/internal/storage"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded sessions",
		Long:  `Display recent sessions with their cube size, move count and result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := opts.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			sessionRepo := storage.NewSessionRepository(db)
			sessions, err := sessionRepo.List(limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(sessions) == 0 {
				fmt.Fprintln(out, "No sessions found. Start one with: nxcube play")
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(statusStyle).
				Headers("ID", "SIZE", "STARTED", "MOVES", "DURATION", "RESULT")
			for _, s := range sessions {
				count, err := sessionRepo.GetMoveCount(s.SessionID)
				if err != nil {
					return err
				}

				result := "not solved"
				if s.Solved {
					result = "solved"
				}
				if s.EndedAt == nil {
					result = "in progress"
				}

				t.Row(
					s.SessionID[:8],
					fmt.Sprintf("%dx%d", s.CubeSize, s.CubeSize),
					s.StartedAt.Local().Format("2006-01-02 15:04"),
					strconv.Itoa(count),
					s.Duration().Round(time.Second).String(),
					result,
				)
			}
			fmt.Fprintln(out, t.Render())
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Number of sessions to show")

	cmd.AddCommand(newHistoryDeleteCmd(opts))
	return cmd
}

func newHistoryDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <session-id>",
		Short: "Delete a session and its moves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := opts.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			s, err := findSession(db, args[0], false)
			if err != nil {
				return err
			}
			if err := storage.NewSessionRepository(db).Delete(s.SessionID); err != nil {
				return err
			}

			loggerFromContext(cmd.Context()).Info("deleted session", "session", s.SessionID)
			return nil
		},
	}
}
