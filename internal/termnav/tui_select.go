/*
 * Copyright (c) 2026. AXIOM STUDIO AI Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package termnav

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// ErrInterrupted is returned when the user presses Ctrl+C in a prompt.
var ErrInterrupted = errors.New("interrupted")

const filterPrompt = "🔎 Filter: "

type selectKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Choose   key.Binding
	Cancel   key.Binding
	Quit     key.Binding
}

func defaultSelectKeyMap() selectKeyMap {
	return selectKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Choose:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// selectMatch is one visible row: the original item index plus the byte
// offsets of characters matched by the filter.
type selectMatch struct {
	index   int
	matched []int
}

// FuzzySelectModel is a Bubble Tea model for choosing one item from a list
// narrowed by a fuzzy filter.
type FuzzySelectModel struct {
	header  string
	items   []string
	results int
	input   textinput.Model
	keys    selectKeyMap
	theme   theme
	matches []selectMatch
	cursor  int
	offset  int
	chosen  int
	ok      bool
	err     error
}

// NewFuzzySelectModel builds a selector over items showing at most results
// rows at a time. The cursor starts on the first item.
func NewFuzzySelectModel(t theme, header string, items []string, results int) FuzzySelectModel {
	ti := textinput.New()
	ti.Prompt = t.prompt.Render(filterPrompt)
	ti.Placeholder = "type to filter"
	ti.PlaceholderStyle = t.help
	ti.Focus()

	if results < 1 {
		results = 1
	}
	m := FuzzySelectModel{
		header:  header,
		items:   items,
		results: results,
		input:   ti,
		keys:    defaultSelectKeyMap(),
		theme:   t,
		chosen:  -1,
	}
	m.refilter()
	return m
}

// Init starts the cursor blink.
func (m FuzzySelectModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key input for the selector.
func (m FuzzySelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.err = ErrInterrupted
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.ok = false
			return m, tea.Quit
		case key.Matches(msg, m.keys.Choose):
			if len(m.matches) == 0 {
				return m, nil
			}
			m.chosen = m.matches[m.cursor].index
			m.ok = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.move(1)
			return m, nil
		case key.Matches(msg, m.keys.PageUp):
			m.move(-m.results)
			return m, nil
		case key.Matches(msg, m.keys.PageDown):
			m.move(m.results)
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refilter()
	}
	return m, cmd
}

// move shifts the cursor by delta, clamped to the visible matches, and
// scrolls the window to keep it in view.
func (m *FuzzySelectModel) move(delta int) {
	if len(m.matches) == 0 {
		return
	}
	m.cursor = max(0, min(len(m.matches)-1, m.cursor+delta))
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.results {
		m.offset = m.cursor - m.results + 1
	}
}

// refilter ranks items against the filter text. An empty filter keeps the
// original order.
func (m *FuzzySelectModel) refilter() {
	m.cursor = 0
	m.offset = 0
	pattern := m.input.Value()
	if pattern == "" {
		m.matches = make([]selectMatch, len(m.items))
		for i := range m.items {
			m.matches[i] = selectMatch{index: i}
		}
		return
	}
	found := fuzzy.Find(pattern, m.items)
	m.matches = make([]selectMatch, len(found))
	for i, f := range found {
		m.matches[i] = selectMatch{index: f.Index, matched: f.MatchedIndexes}
	}
}

// Chosen returns the original index of the chosen item and whether a
// choice was made.
func (m FuzzySelectModel) Chosen() (int, bool) { return m.chosen, m.ok }

// Err returns ErrInterrupted if the user pressed Ctrl+C.
func (m FuzzySelectModel) Err() error { return m.err }

// View renders the header, the filter line and the visible rows.
func (m FuzzySelectModel) View() string {
	var b strings.Builder
	if m.header != "" {
		b.WriteString(m.header)
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if len(m.matches) == 0 {
		b.WriteString(m.theme.help.Render("  no matches"))
		b.WriteString("\n")
	}
	end := min(len(m.matches), m.offset+m.results)
	for i := m.offset; i < end; i++ {
		match := m.matches[i]
		label := m.highlight(m.items[match.index], match.matched)
		if i == m.cursor {
			b.WriteString(m.theme.cursor.Render("❯ "))
			b.WriteString(m.theme.selected.Render(label))
		} else {
			b.WriteString("  ")
			b.WriteString(label)
		}
		b.WriteString("\n")
	}

	if len(m.matches) > m.results {
		b.WriteString(m.theme.help.Render(fmt.Sprintf("  %d/%d", m.cursor+1, len(m.matches))))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.help.Render("↑/↓: move  enter: choose  esc: quit"))
	return b.String()
}

// highlight styles the matched characters of label.
func (m FuzzySelectModel) highlight(label string, matched []int) string {
	if len(matched) == 0 {
		return m.theme.item.Render(label)
	}
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}
	var b strings.Builder
	for i, r := range label {
		if hit[i] {
			b.WriteString(m.theme.match.Render(string(r)))
		} else {
			b.WriteString(m.theme.item.Render(string(r)))
		}
	}
	return b.String()
}
