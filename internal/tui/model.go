// Package tui is an interactive search screen over a session.
package tui

import (
	"fmt"
	"strings"

	"github.com/bastiangx/dinesearch/internal/utils"
	"github.com/bastiangx/dinesearch/pkg/feed"
	"github.com/bastiangx/dinesearch/pkg/index"
	"github.com/bastiangx/dinesearch/pkg/search"
	"github.com/bastiangx/dinesearch/pkg/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const helpLine = "↑/↓ suggestion · enter pick · ←/→ tag · ctrl+t toggle tag · tab facet · ctrl+f feed · esc clear · ctrl+c quit"

// Model is the bubbletea model of the search screen. The session holds all
// search state; the model only tracks cursors and layout.
type Model struct {
	session  *session.Session
	sections []feed.Section

	suggestionCursor int // -1 means the input has focus
	tagCursor        int
	showFeed         bool
	width            int
}

// New creates a model over sess. sections feed the home view.
func New(sess *session.Session, sections []feed.Section) Model {
	return Model{
		session:          sess,
		sections:         sections,
		suggestionCursor: -1,
		width:            80,
	}
}

// Run starts the screen and blocks until the user quits.
func Run(sess *session.Session, sections []feed.Section) error {
	_, err := tea.NewProgram(New(sess, sections), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyCtrlF:
		m.showFeed = !m.showFeed
		return m, nil
	}
	if m.showFeed {
		if msg.Type == tea.KeyEsc {
			m.showFeed = false
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyRunes:
		m.editQuery(m.session.Query() + string(msg.Runes))
	case tea.KeySpace:
		m.editQuery(m.session.Query() + " ")
	case tea.KeyBackspace:
		q := []rune(m.session.Query())
		if len(q) > 0 {
			m.editQuery(string(q[:len(q)-1]))
		}
	case tea.KeyUp:
		if m.suggestionCursor >= 0 {
			m.suggestionCursor--
		}
	case tea.KeyDown:
		if m.suggestionCursor < len(m.session.Suggestions())-1 {
			m.suggestionCursor++
		}
	case tea.KeyEnter:
		suggestions := m.session.Suggestions()
		if m.suggestionCursor >= 0 && m.suggestionCursor < len(suggestions) {
			m.session.Select(suggestions[m.suggestionCursor])
			m.suggestionCursor = -1
			m.clampTagCursor()
		}
	case tea.KeyLeft:
		if m.tagCursor > 0 {
			m.tagCursor--
		}
	case tea.KeyRight:
		if m.tagCursor < len(m.session.BrowsableTags())-1 {
			m.tagCursor++
		}
	case tea.KeyCtrlT:
		tags := m.session.BrowsableTags()
		if m.tagCursor < len(tags) {
			m.session.ToggleTag(tags[m.tagCursor])
			m.suggestionCursor = -1
		}
	case tea.KeyTab:
		m.session.SetFacet(m.session.Facet().Next())
		m.tagCursor = 0
	case tea.KeyEsc:
		if m.session.Query() != "" {
			m.editQuery("")
		} else {
			m.session.Reset()
			m.tagCursor = 0
		}
		m.suggestionCursor = -1
	}
	return m, nil
}

func (m *Model) editQuery(q string) {
	m.session.EditQuery(q)
	m.suggestionCursor = -1
	log.Debug("Query edited", "q", q)
}

func (m *Model) clampTagCursor() {
	if n := len(m.session.BrowsableTags()); m.tagCursor >= n {
		m.tagCursor = max(n-1, 0)
	}
}

func (m Model) View() string {
	if m.showFeed {
		return m.feedView()
	}

	snap := m.session.Snapshot()
	var b strings.Builder

	b.WriteString(titleStyle.Render("Search restaurants"))
	b.WriteString("\n")
	input := snap.Query
	if input == "" {
		input = placeholderStyle.Render("Search restaurants, cuisines or areas...")
	}
	b.WriteString(inputStyle.Width(max(m.width-4, 20)).Render(input))
	b.WriteString("\n")

	for i, sug := range snap.Suggestions {
		line := sug.Value
		if sug.Kind == search.KindTag {
			line += " " + kindStyle.Render("tag")
		}
		if i == m.suggestionCursor {
			b.WriteString(activeSuggestionStyle.Render("› " + line))
		} else {
			b.WriteString(suggestionStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.facetTabs())
	b.WriteString("\n")
	b.WriteString(m.chips(snap))
	b.WriteString("\n\n")

	if snap.Empty {
		b.WriteString(emptyStyle.Render("No restaurants found"))
		b.WriteString("\n")
	} else {
		for _, r := range snap.Results {
			b.WriteString(nameStyle.Render(r.Name))
			b.WriteString("  ")
			b.WriteString(metaStyle.Render(r.Location))
			b.WriteString("\n  ")
			b.WriteString(metaStyle.Render(utils.Truncate(strings.Join(r.Tags, " · ")+"  "+r.Description, max(m.width-2, 10))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpLine))
	return b.String()
}

func (m Model) facetTabs() string {
	current := m.session.Facet()
	tabs := make([]string, 0, len(index.Facets))
	for _, f := range index.Facets {
		if f == current {
			tabs = append(tabs, activeFacetStyle.Render(f.Label()))
		} else {
			tabs = append(tabs, facetStyle.Render(f.Label()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) chips(snap session.Snapshot) string {
	selected := search.NewTagSet(snap.Selected...)
	tags := m.session.Tags()
	chips := make([]string, 0, len(snap.BrowsableTags))
	for i, tag := range snap.BrowsableTags {
		style := chipStyle
		if tags.IsLocation(tag) {
			style = locationChipStyle
		}
		if selected.Has(tag) {
			style = selectedChipStyle
		}
		if i == m.tagCursor {
			style = style.Inherit(cursorChipStyle)
		}
		chips = append(chips, style.Render(tag))
	}
	return lipgloss.NewStyle().Width(max(m.width, 20)).Render(strings.Join(chips, " "))
}

func (m Model) feedView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Home"))
	b.WriteString("\n\n")
	if len(m.sections) == 0 {
		b.WriteString(emptyStyle.Render("Nothing to show"))
		b.WriteString("\n")
	}
	for _, sec := range m.sections {
		b.WriteString(titleStyle.Render(sec.Title))
		b.WriteString("\n")
		for _, r := range sec.Records {
			line := fmt.Sprintf("  %s  %s %s  %s",
				nameStyle.Render(r.Name),
				starStyle.Render("★"), fmt.Sprintf("%.1f", r.Rating),
				metaStyle.Render(r.DeliveryTime+" · "+r.Location))
			if r.Deal != "" {
				line += "  " + dealStyle.Render(r.Deal)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("ctrl+f search · ctrl+c quit"))
	return b.String()
}
