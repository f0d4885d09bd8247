package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rowanmaddox/twistcube"
	"github.com/rowanmaddox/twistcube/internal/render"
	"github.com/rowanmaddox/twistcube/internal/session"
)

var noRecord bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive play mode",
	Long: `Start an interactive TUI for turning the cube.

Keyboard shortcuts:
  r l u d f b - pick a face
  m e s       - pick a middle slice
  left/down   - turn the picked layer -90 degrees
  right/up    - turn the picked layer +90 degrees
  Esc         - cancel the current pick
  q           - quit

Committed turns are recorded to the session database unless --no-record
is given.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&noRecord, "no-record", false, "Do not record this session")
	rootCmd.AddCommand(playCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// rotateTween is how long the TUI pretends a turn animation takes; the
// mapper's Rotating gate is released by a tick after this delay.
const rotateTween = 300 * time.Millisecond

// Messages
type turnDoneMsg struct{}

// Model
type playModel struct {
	mapper *twistcube.Mapper

	// Recording
	db        *session.DB
	sessions  *session.SessionRepository
	turns     *session.TurnRepository
	sessionID string
	startTime time.Time
	seq       int

	moves    []twistcube.Move
	lastMove string
	err      error
	quitting bool
}

// pickTargets maps a face key to the piece position and face label the
// pick resolves to. Slice keys grab a layer-0 piece by a face on the
// slice's axis, which the resolver turns into the middle layer.
var pickTargets = map[string]struct {
	pos  twistcube.Vec3
	face twistcube.FaceLabel
}{
	"r": {twistcube.Vec3{X: 1}, twistcube.FaceRight},
	"l": {twistcube.Vec3{X: -1}, twistcube.FaceLeft},
	"u": {twistcube.Vec3{Y: 1}, twistcube.FaceTop},
	"d": {twistcube.Vec3{Y: -1}, twistcube.FaceBottom},
	"f": {twistcube.Vec3{Z: 1}, twistcube.FaceFront},
	"b": {twistcube.Vec3{Z: -1}, twistcube.FaceBack},
	"m": {twistcube.Vec3{Z: 1}, twistcube.FaceRight},
	"e": {twistcube.Vec3{Z: 1}, twistcube.FaceTop},
	"s": {twistcube.Vec3{X: 1}, twistcube.FaceFront},
}

func runPlay(cmd *cobra.Command, args []string) error {
	m := playModel{
		mapper:    twistcube.NewMapper(nil, twistcube.WithRotateTimeout(rotateTween)),
		startTime: time.Now(),
	}

	if !noRecord {
		db, err := openDB()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		if err := db.MigrateUp(); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}

		m.db = db
		m.sessions = session.NewSessionRepository(db)
		m.turns = session.NewTurnRepository(db)
		id, err := m.sessions.Create(m.startTime)
		if err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		m.sessionID = id
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("TUI failed: %w", err)
	}

	fm := final.(playModel)
	if fm.sessions != nil {
		if err := fm.sessions.End(fm.sessionID, time.Now(), fm.seq); err != nil {
			return fmt.Errorf("failed to end session: %w", err)
		}
		fmt.Printf("Recorded session %s (%d turns)\n", fm.sessionID, fm.seq)
	}
	return nil
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case turnDoneMsg:
		m.mapper.TurnCompleted()
		return m, nil

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "esc":
			m.mapper.Cancel()
			return m, nil

		case "left", "down":
			return m.turn(twistcube.DirNeg)
		case "right", "up":
			return m.turn(twistcube.DirPos)

		default:
			target, ok := pickTargets[key]
			if !ok {
				return m, nil
			}
			piece, found := m.mapper.Cube().PieceAt(target.pos)
			if !found {
				m.err = fmt.Errorf("no piece at %v", target.pos)
				return m, nil
			}
			m.mapper.Pick(piece, target.face)
			return m, nil
		}
	}
	return m, nil
}

func (m playModel) turn(dir twistcube.Direction) (tea.Model, tea.Cmd) {
	move, ok, err := m.mapper.Turn(dir)
	if err != nil {
		m.err = err
		return m, nil
	}
	if !ok {
		return m, nil
	}

	m.lastMove = move.Notation()
	m.moves = append(m.moves, move)
	if m.turns != nil {
		ts := time.Since(m.startTime).Milliseconds()
		if _, err := m.turns.Append(m.sessionID, m.seq, move, ts); err != nil {
			m.err = err
		}
	}
	m.seq++

	return m, tea.Tick(rotateTween, func(time.Time) tea.Msg {
		return turnDoneMsg{}
	})
}

func (m playModel) View() string {
	if m.quitting {
		return ""
	}

	s := titleStyle.Render("twistcube") + "\n\n"
	s += render.Net(m.mapper.Cube()) + "\n"

	switch m.mapper.State() {
	case twistcube.StateSelected:
		sel, _ := m.mapper.Selection()
		s += selectStyle.Render(fmt.Sprintf("picked %s layer - turn with arrows", sel.Face)) + "\n"
	case twistcube.StateRotating:
		s += statusStyle.Render(fmt.Sprintf("turning %s...", m.lastMove)) + "\n"
	default:
		if m.mapper.Cube().IsSolved() && m.seq > 0 {
			s += moveStyle.Render("solved!") + "\n"
		} else {
			s += statusStyle.Render("pick a face: r l u d f b m e s") + "\n"
		}
	}

	if len(m.moves) > 0 {
		tail := m.moves
		if len(tail) > 20 {
			tail = tail[len(tail)-20:]
		}
		s += moveStyle.Render(twistcube.FormatMoves(tail)) + "\n"
	}
	s += statusStyle.Render(fmt.Sprintf("turns: %d", m.seq)) + "\n"
	if m.sessionID != "" {
		s += statusStyle.Render("session: "+m.sessionID) + "\n"
	}
	if m.err != nil {
		s += errorStyle.Render("error: "+m.err.Error()) + "\n"
	}

	s += "\n" + helpStyle.Render("r/l/u/d/f/b/m/e/s pick - arrows turn - esc cancel - q quit")
	return s
}
