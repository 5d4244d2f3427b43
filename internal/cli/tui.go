package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/puzzlecube/puzzlecube"
	"github.com/puzzlecube/puzzlecube/notation"
)

var tuiSize int

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive cube session",
	Long: `Start an interactive TUI for turning a cube from the keyboard.

Keyboard shortcuts:
  f/r/u/l/b/d - turn that face clockwise
  F/R/U/L/B/D - turn that face anticlockwise
  s           - scramble (25 random rotations)
  x           - reset to solved
  q/Esc       - quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().IntVar(&tuiSize, "size", 3, "Cube side length")
	rootCmd.AddCommand(tuiCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type tuiModel struct {
	cube     *puzzlecube.Cube
	history  []puzzlecube.Rotation
	lastMove string
	errMsg   string
}

func newTUIModel(size int) (tuiModel, error) {
	cube, err := puzzlecube.New(size)
	if err != nil {
		return tuiModel{}, err
	}
	return tuiModel{cube: cube}, nil
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "s":
		count := 25
		for range count {
			r := puzzlecube.RandomRotation(m.cube.SideLength())
			_ = m.cube.Rotate(r)
			m.history = append(m.history, r)
		}
		m.lastMove = fmt.Sprintf("scrambled (%d rotations)", count)
		m.errMsg = ""
		return m, nil

	case "x":
		cube, err := puzzlecube.New(m.cube.SideLength())
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.cube = cube
		m.history = nil
		m.lastMove = "reset"
		m.errMsg = ""
		return m, nil
	}

	if face, direction, ok := faceForKey(keyMsg.String()); ok {
		r := puzzlecube.Rotation{RelativeTo: face, Direction: direction}
		if err := m.cube.Rotate(r); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.history = append(m.history, r)
		m.lastMove = r.Notation()
		m.errMsg = ""
	}
	return m, nil
}

func faceForKey(key string) (puzzlecube.Face, puzzlecube.Direction, bool) {
	if len(key) != 1 {
		return 0, 0, false
	}

	direction := puzzlecube.Clockwise
	c := key[0]
	if c >= 'A' && c <= 'Z' {
		direction = puzzlecube.Anticlockwise
		c += 'a' - 'A'
	}

	switch c {
	case 'f':
		return puzzlecube.Front, direction, true
	case 'r':
		return puzzlecube.Right, direction, true
	case 'u':
		return puzzlecube.Up, direction, true
	case 'l':
		return puzzlecube.Left, direction, true
	case 'b':
		return puzzlecube.Back, direction, true
	case 'd':
		return puzzlecube.Down, direction, true
	default:
		return 0, 0, false
	}
}

func (m tuiModel) View() string {
	var b strings.Builder

	n := m.cube.SideLength()
	b.WriteString(titleStyle.Render(fmt.Sprintf("puzzlecube %dx%dx%d", n, n, n)))
	b.WriteString("\n\n")
	b.WriteString(renderCube(m.cube))
	b.WriteString("\n")

	switch {
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	case m.lastMove != "":
		b.WriteString(moveStyle.Render("last: "+m.lastMove) +
			statusStyle.Render(fmt.Sprintf("  (%d moves)", len(m.history))))
	default:
		b.WriteString(statusStyle.Render("make a move"))
	}
	if m.cube.IsSolved() && len(m.history) > 0 {
		b.WriteString(statusStyle.Render("  solved!"))
	}
	b.WriteString("\n\n")

	if len(m.history) > 0 {
		b.WriteString(statusStyle.Render(notation.FormatSequence(m.history)))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("f/r/u/l/b/d turn  shift=anticlockwise  s scramble  x reset  q quit"))
	b.WriteString("\n")
	return b.String()
}

func runTUI(cmd *cobra.Command, args []string) error {
	model, err := newTUIModel(tuiSize)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model)
	_, err = p.Run()
	return err
}
