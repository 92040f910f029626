package termnav

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const headerTitle = "TERM-NAVIGATOR"

// Colors for the termnav theme.
var (
	accentColor = lipgloss.Color("#00d4aa")
	dimColor    = lipgloss.Color("#555555")
	parentColor = lipgloss.Color("#5f87d7")
	leafColor   = lipgloss.Color("#d75fd7")
	matchColor  = lipgloss.Color("#ffaa00")
)

// theme holds styles bound to the renderer of the UI stream, which is
// stderr rather than the stdout the default renderer inspects.
type theme struct {
	title    lipgloss.Style
	box      lipgloss.Style
	parent   lipgloss.Style
	leaf     lipgloss.Style
	prompt   lipgloss.Style
	cursor   lipgloss.Style
	selected lipgloss.Style
	item     lipgloss.Style
	match    lipgloss.Style
	help     lipgloss.Style
}

func newTheme(r *lipgloss.Renderer) theme {
	return theme{
		title: r.NewStyle().Bold(true).Foreground(accentColor),
		box: r.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(accentColor).
			Padding(0, 10).
			Align(lipgloss.Center),
		parent:   r.NewStyle().Foreground(parentColor).Faint(true),
		leaf:     r.NewStyle().Foreground(leafColor).Bold(true),
		prompt:   r.NewStyle().Foreground(accentColor),
		cursor:   r.NewStyle().Foreground(accentColor).Bold(true),
		selected: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")),
		item:     r.NewStyle().Foreground(lipgloss.Color("#aaaaaa")),
		match:    r.NewStyle().Foreground(matchColor).Underline(true),
		help:     r.NewStyle().Foreground(dimColor),
	}
}

// renderHeader draws the banner with the launch directory, followed by the
// directory currently being browsed.
func renderHeader(t theme, origin, current string) string {
	box := t.box.Render(lipgloss.JoinVertical(lipgloss.Center,
		t.title.Render(headerTitle),
		"",
		"Working Directory << "+origin+" >>",
	))

	parent, leaf := splitCurrent(current)
	line := "🚀 The current directory is " + t.parent.Render(parent) + t.leaf.Render(leaf)
	rule := strings.Repeat("=", max(lipgloss.Width(box), lipgloss.Width(line)))

	return strings.Join([]string{box, line, rule}, "\n")
}

// splitCurrent splits dir into its parent (with trailing separator) and
// base name. The root has no parent.
func splitCurrent(dir string) (string, string) {
	parent := filepath.Dir(dir)
	if parent == dir {
		return "", dir
	}
	if !strings.HasSuffix(parent, string(filepath.Separator)) {
		parent += string(filepath.Separator)
	}
	return parent, filepath.Base(dir)
}
