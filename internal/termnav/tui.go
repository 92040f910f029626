package termnav

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// SelectRequest describes one run of the selection UI.
type SelectRequest struct {
	Items   []string
	Results int
}

// Selector lets the user pick one item. ok is false when the user
// cancelled; index is then meaningless.
type Selector interface {
	Select(ctx context.Context, req SelectRequest) (index int, ok bool, err error)
}

// Display is told which directories the next prompt is about.
type Display interface {
	Refresh(origin, current string)
}

// TerminalUI runs the selector and confirm prompts as Bubble Tea programs
// on the alternate screen of the terminal behind out.
type TerminalUI struct {
	in     io.Reader
	out    io.Writer
	theme  theme
	simple bool
	header string
}

// NewTerminalUI creates a UI reading keys from in and drawing on out. With
// simple set no header is drawn.
func NewTerminalUI(in io.Reader, out io.Writer, simple bool) *TerminalUI {
	return &TerminalUI{
		in:     in,
		out:    out,
		theme:  newTheme(lipgloss.NewRenderer(out)),
		simple: simple,
	}
}

// CheckTerminal reports an error when f is not an interactive terminal.
func CheckTerminal(f *os.File) error {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return nil
	}
	return fmt.Errorf("termnav needs an interactive terminal on %s", f.Name())
}

// Refresh rebuilds the header for the next prompt.
func (u *TerminalUI) Refresh(origin, current string) {
	if u.simple {
		u.header = ""
		return
	}
	u.header = renderHeader(u.theme, origin, current)
}

// Select runs the fuzzy selector.
func (u *TerminalUI) Select(ctx context.Context, req SelectRequest) (int, bool, error) {
	model := NewFuzzySelectModel(u.theme, u.header, req.Items, req.Results)
	out, err := u.run(ctx, model)
	if err != nil {
		return 0, false, fmt.Errorf("selection prompt: %w", err)
	}
	final, ok := out.(FuzzySelectModel)
	if !ok {
		return 0, false, fmt.Errorf("selection prompt: unexpected model %T", out)
	}
	if final.Err() != nil {
		return 0, false, final.Err()
	}
	index, chosen := final.Chosen()
	return index, chosen, nil
}

// Confirm asks whether to finalize on path.
func (u *TerminalUI) Confirm(ctx context.Context, path string) (bool, error) {
	out, err := u.run(ctx, NewConfirmModel(u.theme, u.header, path))
	if err != nil {
		return false, fmt.Errorf("confirm prompt: %w", err)
	}
	final, ok := out.(ConfirmModel)
	if !ok {
		return false, fmt.Errorf("confirm prompt: unexpected model %T", out)
	}
	if final.Err() != nil {
		return false, final.Err()
	}
	return final.Answer(), nil
}

func (u *TerminalUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(u.in),
		tea.WithOutput(u.out),
		tea.WithAltScreen(),
	)
	out, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return out, err
}
