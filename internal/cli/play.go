package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/analysis"
	"github.com/SeamusWaldron/nxcube/internal/notation"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

func newPlayCmd(opts *rootOptions) *cobra.Command {
	var (
		size     int
		scramble int
		noSave   bool
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a cube interactively",
		Long: `Play a cube interactively in the terminal.

Type moves and press Enter to apply them. The session and its moves are
saved when you quit.

Keys:
  enter    apply the typed moves
  ctrl+z   undo the last move
  ctrl+r   back to the start position
  ctrl+d   show or hide move descriptions
  esc      quit and save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cube, err := opts.newCube(cmd, size)
			if err != nil {
				return err
			}

			var scrambleMoves []string
			if scramble > 0 {
				if scrambleMoves, err = cube.Scramble(scramble); err != nil {
					return err
				}
			}

			model := newPlayModel(cube, scrambleMoves)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("play error: %w", err)
			}

			if noSave || len(model.moves) == 0 {
				return nil
			}

			db, err := opts.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			id, err := saveSession(db, model, notes)
			if err != nil {
				return err
			}

			logger.Info("saved session", "session", id, "moves", len(model.moves), "solved", model.cube.IsSolved())
			fmt.Fprintf(cmd.OutOrStdout(), "Session %s saved (%d moves, %s)\n",
				id, len(model.moves), solvedLabel(model.cube.IsSolved()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", 0, "Cube size (default from config)")
	cmd.Flags().IntVar(&scramble, "scramble", 0, "Start from a random scramble of this many moves")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not record the session")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes stored with the session")

	return cmd
}

// saveSession stores a finished play session with its moves.
func saveSession(db *storage.DB, m *playModel, notes string) (string, error) {
	sessions := storage.NewSessionRepository(db)
	id, err := sessions.Create(m.cube.Size(), notation.Format(m.scramble), notes)
	if err != nil {
		return "", err
	}

	records := make([]storage.MoveRecord, len(m.moves))
	for i, mv := range m.moves {
		records[i] = storage.MoveRecord{MoveIndex: i, Notation: mv.Notation, TsMs: mv.TsMs}
	}
	if err := storage.NewMoveRepository(db).CreateBatch(id, records); err != nil {
		return "", err
	}

	if err := sessions.End(id, m.cube.IsSolved(), m.cube.StateString()); err != nil {
		return "", err
	}
	return id, nil
}

// playModel is the interactive session.
type playModel struct {
	cube     *nxcube.Cube
	start    *nxcube.Cube
	scramble []string
	moves    []analysis.TimedMove

	input     string
	err       error
	describe  bool
	startTime time.Time
	now       func() time.Time
	quitting  bool
}

func newPlayModel(cube *nxcube.Cube, scramble []string) *playModel {
	return &playModel{
		cube:      cube,
		start:     cube.Copy(),
		scramble:  scramble,
		startTime: time.Now(),
		now:       time.Now,
	}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		m.submit()

	case tea.KeyCtrlZ:
		m.undo()

	case tea.KeyCtrlR:
		m.cube = m.start.Copy()
		m.moves = nil
		m.err = nil

	case tea.KeyCtrlD:
		m.describe = !m.describe

	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}

	case tea.KeySpace:
		m.input += " "

	case tea.KeyRunes:
		m.input += string(key.Runes)
	}

	return m, nil
}

// submit applies the typed moves. Nothing is applied unless every token
// parses and fits the cube.
func (m *playModel) submit() {
	tokens := notation.Split(m.input)
	if len(tokens) == 0 {
		return
	}

	trial := m.cube.Copy()
	if err := trial.ApplyAll(tokens); err != nil {
		m.err = err
		return
	}

	ts := m.now().Sub(m.startTime).Milliseconds()
	for _, tok := range tokens {
		m.moves = append(m.moves, analysis.TimedMove{Notation: tok, TsMs: ts})
	}
	m.cube = trial
	m.input = ""
	m.err = nil
}

// undo reverts the last move by applying its inverse.
func (m *playModel) undo() {
	if len(m.moves) == 0 {
		return
	}
	last := m.moves[len(m.moves)-1]
	inv, err := nxcube.Inverse(last.Notation)
	if err == nil {
		err = m.cube.Apply(inv)
	}
	if err != nil {
		m.err = err
		return
	}
	m.moves = m.moves[:len(m.moves)-1]
	m.err = nil
}

func (m *playModel) tokens() []string {
	return analysis.Tokens(m.moves)
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	size := m.cube.Size()
	b.WriteString(titleStyle.Render(fmt.Sprintf("nxcube %dx%dx%d", size, size, size)))
	b.WriteString("\n\n")

	if len(m.scramble) > 0 {
		b.WriteString(statusStyle.Render("Scramble: " + notation.Format(m.scramble)))
		b.WriteString("\n\n")
	}

	b.WriteString(renderNet(m.cube, true))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %d moves\n\n", solvedLabel(m.cube.IsSolved()), len(m.moves))

	if n := len(m.moves); n > 0 {
		recent := m.tokens()[max(0, n-20):]
		b.WriteString(moveStyle.Render(notation.Format(recent)))
		b.WriteString("\n")
		if m.describe {
			if text, err := notation.DescribeSequence(recent[len(recent)-1:]); err == nil {
				b.WriteString(statusStyle.Render(text))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "> %s\n", m.input)

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: apply • ctrl+z: undo • ctrl+r: restart • ctrl+d: describe • esc: quit"))
	return b.String()
}
