// Package tui is the interactive terminal front end: a search box over a
// paginated list, one tab per browse kind.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stahnma/gh-explore/internal/browse"
	"github.com/stahnma/gh-explore/internal/present"
)

// scrollThreshold is how close to the last row the selection gets before the
// next page is requested.
const scrollThreshold = 2

// Controller is the part of *browse.Browser the model drives.
type Controller interface {
	Kind() browse.Kind
	LoadInitial()
	ScrollNearBottom()
	QueryChanged(text string)
	QuerySubmitted(text string)
	Snapshot() browse.State
}

type tab struct {
	ctrl     Controller
	loaded   bool
	query    string
	display  browse.Display
	items    []present.Item
	selected int
	result   present.Item
	message  string
}

// Model is the bubbletea model.
type Model struct {
	tabs   []*tab
	active int
	input  textinput.Model
	styles *Styles
	width  int
	height int
}

// NewModel creates a model with one tab per controller; the first is active.
func NewModel(styles *Styles, ctrls ...Controller) *Model {
	if styles == nil {
		styles = DefaultStyles()
	}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Focus()

	m := &Model{input: ti, styles: styles}
	for _, c := range ctrls {
		m.tabs = append(m.tabs, &tab{ctrl: c})
	}
	m.setPlaceholder()
	return m
}

func (m *Model) current() *tab { return m.tabs[m.active] }

func (m *Model) setPlaceholder() {
	if len(m.tabs) == 0 {
		return
	}
	if m.current().ctrl.Kind() == browse.Repositories {
		m.input.Placeholder = "login or owner/repo"
	} else {
		m.input.Placeholder = "login"
	}
}

func (m *Model) Init() tea.Cmd {
	if len(m.tabs) == 0 {
		return tea.Quit
	}
	m.ensureLoaded()
	return textinput.Blink
}

func (m *Model) ensureLoaded() {
	t := m.current()
	if !t.loaded {
		t.loaded = true
		t.ctrl.LoadInitial()
	}
}

func (m *Model) tabFor(kind browse.Kind) *tab {
	for _, t := range m.tabs {
		if t.ctrl.Kind() == kind {
			return t
		}
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-8, 20)
		return m, nil

	case listMsg:
		if t := m.tabFor(msg.kind); t != nil {
			t.display = browse.ShowList
			t.items = msg.items
			t.result, t.message = nil, ""
			if msg.firstPage || t.selected >= len(t.items) {
				t.selected = 0
			}
		}
		return m, nil

	case resultMsg:
		if t := m.tabFor(msg.kind); t != nil {
			t.display = browse.ShowResult
			t.result, t.message = msg.item, ""
		}
		return m, nil

	case errorMsg:
		if t := m.tabFor(msg.kind); t != nil {
			t.message = msg.message
			// A failed page keeps the list on screen so scrolling can retry it.
			if t.display != browse.ShowList || len(t.items) == 0 {
				t.display = browse.ShowError
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.switchTab()
		return m, nil
	case "enter":
		if !m.input.Focused() && m.openSelected() {
			return m, nil
		}
		m.current().ctrl.QuerySubmitted(m.input.Value())
		m.input.Blur()
		return m, nil
	case "down":
		m.moveDown()
		return m, nil
	case "up":
		m.moveUp()
		return m, nil
	}

	if !m.input.Focused() {
		switch msg.String() {
		case "j":
			m.moveDown()
		case "k":
			m.moveUp()
		case "/":
			return m, m.input.Focus()
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		t := m.current()
		t.query = v
		t.ctrl.QueryChanged(v)
	}
	return m, cmd
}

func (m *Model) switchTab() {
	if len(m.tabs) < 2 {
		return
	}
	m.current().query = m.input.Value()
	m.active = (m.active + 1) % len(m.tabs)
	m.input.SetValue(m.current().query)
	m.setPlaceholder()
	m.ensureLoaded()
}

func (m *Model) moveDown() {
	t := m.current()
	if t.display != browse.ShowList || len(t.items) == 0 {
		return
	}
	if t.selected < len(t.items)-1 {
		t.selected++
	}
	if t.selected >= len(t.items)-1-scrollThreshold {
		t.ctrl.ScrollNearBottom()
	}
}

// openSelected searches for the selected row, which brings up its full
// profile or repository detail. It reports false when no row is selected.
func (m *Model) openSelected() bool {
	t := m.current()
	if t.display != browse.ShowList || len(t.items) == 0 {
		return false
	}
	key := t.items[t.selected].Key()
	t.query = key
	m.input.SetValue(key)
	t.ctrl.QuerySubmitted(key)
	return true
}

func (m *Model) moveUp() {
	t := m.current()
	if t.selected > 0 {
		t.selected--
	}
}

func (m *Model) View() string {
	if len(m.tabs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.styles.Input.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		name := strings.ToUpper(t.ctrl.Kind().String()[:1]) + t.ctrl.Kind().String()[1:]
		if i == m.active {
			parts = append(parts, m.styles.ActiveTab.Render(name))
		} else {
			parts = append(parts, m.styles.Tab.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderBody() string {
	t := m.current()
	switch t.display {
	case browse.ShowError:
		return m.styles.Error.Render(t.message)
	case browse.ShowResult:
		return m.renderResult(t.result)
	case browse.ShowList:
		if len(t.items) == 0 {
			return m.styles.Muted.Render("Nothing to show")
		}
		return m.renderList(t)
	default:
		return m.styles.Muted.Render("Loading...")
	}
}

// visibleRows is how many list rows fit under the chrome. Zero means all.
func (m *Model) visibleRows() int {
	if m.height == 0 {
		return 0
	}
	return max(m.height-7, 1)
}

func (m *Model) renderList(t *tab) string {
	start, end := 0, len(t.items)
	if n := m.visibleRows(); n > 0 && n < len(t.items) {
		start = max(t.selected-n+1, 0)
		end = start + n
	}
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		line := row(t.items[i])
		if i == t.selected {
			lines = append(lines, m.styles.Selected.Render("> "+line))
		} else {
			lines = append(lines, m.styles.Item.Render(line))
		}
	}
	if t.message != "" {
		lines = append(lines, m.styles.Error.Render(t.message))
	}
	return strings.Join(lines, "\n")
}

func row(it present.Item) string {
	switch v := it.(type) {
	case *present.Repository:
		return fmt.Sprintf("%s  ★ %d  %s · %s", v.FullName, v.Stars, v.Language, v.Description)
	case *present.User:
		return fmt.Sprintf("%s  %s", v.Login, v.Name)
	default:
		return it.Key()
	}
}

func (m *Model) renderResult(it present.Item) string {
	var lines []string
	switch v := it.(type) {
	case *present.Repository:
		lines = []string{
			m.styles.Title.Render(v.FullName),
			v.Description,
			fmt.Sprintf("Language: %s", v.Language),
			fmt.Sprintf("Stars: %d  Forks: %d  Private: %t", v.Stars, v.Forks, v.Private),
			fmt.Sprintf("Owner: %s", v.Owner),
			m.styles.Muted.Render(v.HTMLURL),
		}
	case *present.User:
		lines = []string{
			m.styles.Title.Render(v.Login),
			v.Name,
			v.Bio,
			fmt.Sprintf("Repos: %d  Followers: %d  Following: %d", v.PublicRepos, v.Followers, v.Following),
			m.styles.Muted.Render(v.HTMLURL),
		}
	default:
		return ""
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderStatus() string {
	t := m.current()
	s := t.ctrl.Snapshot()
	status := fmt.Sprintf("%s · page %d", s.Mode, s.Page)
	if s.PagerState == browse.Loading {
		status += " · loading"
	} else if s.Mode == browse.Browsing && !s.HasMore {
		status += " · end of list"
	}
	status += " · tab: switch · enter: search or open · esc: quit"
	return m.styles.Status.Render(status)
}
