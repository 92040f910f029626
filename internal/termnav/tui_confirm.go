package termnav

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel is a Bubble Tea yes/no prompt asking whether to finalize
// on a directory. Enter and Esc answer no.
type ConfirmModel struct {
	header string
	path   string
	theme  theme
	answer bool
	done   bool
	err    error
}

// NewConfirmModel creates a confirmation prompt for path.
func NewConfirmModel(t theme, header, path string) ConfirmModel {
	return ConfirmModel{header: header, path: path, theme: t}
}

// Init initializes the confirm model.
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles input for the confirm prompt.
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		m.answer = true
		m.done = true
		return m, tea.Quit
	case "n", "N", "enter", "esc":
		m.answer = false
		m.done = true
		return m, tea.Quit
	case "ctrl+c":
		m.err = ErrInterrupted
		return m, tea.Quit
	}
	return m, nil
}

// Answer reports whether the user said yes.
func (m ConfirmModel) Answer() bool { return m.answer }

// Done reports whether the user answered.
func (m ConfirmModel) Done() bool { return m.done }

// Err returns ErrInterrupted if the user pressed Ctrl+C.
func (m ConfirmModel) Err() error { return m.err }

// View renders the prompt.
func (m ConfirmModel) View() string {
	var b strings.Builder
	if m.header != "" {
		b.WriteString(m.header)
		b.WriteString("\n")
	}
	b.WriteString(m.theme.prompt.Render("? "))
	b.WriteString("Confirm navigation to: ")
	b.WriteString(m.theme.leaf.Render(m.path))
	b.WriteString("? ")
	b.WriteString(m.theme.help.Render("[y/N]"))
	return b.String()
}
