// Package snippets is the interactive catalog browser: a query input ranked
// live against the published index snapshot, with the per-result actions
// bound to keys.
package snippets

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/snipstash/snip/internal/actions"
	"github.com/snipstash/snip/internal/handler"
	"github.com/snipstash/snip/internal/rank"
	"github.com/snipstash/snip/internal/state"
)

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#5F5FD7")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}).
			Render
)

type tickMsg time.Time

// rerankMsg asks the update loop to rebuild the list from the current
// snapshot. Init emits one so the catalog is visible before the user types.
type rerankMsg struct{}

type editorFinishedMsg struct {
	err error
}

// Model drives the snippet browser.
type Model struct {
	state   *state.State
	builder *actions.Builder
	keys    *listKeyMap

	input textinput.Model
	list  list.Model

	gen         uint64
	listFocused bool

	naming     bool
	createText string
	savedQuery string

	pendingRemove string
}

func NewModel(s *state.State) Model {
	keys := newListKeyMap()

	input := textinput.New()
	input.Placeholder = "Search snippets, +text to create"
	input.Prompt = "> "
	input.Focus()

	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.Title = "Snippets"
	l.Styles.Title = titleStyle
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	// Trash confirmation happens through the double keypress in this
	// surface, so the builder's confirmer always approves.
	builder := s.ActionBuilder(nil, func(string) (bool, error) { return true, nil })

	return Model{
		state:   s,
		builder: builder,
		keys:    keys,
		input:   input,
		list:    l,
		gen:     s.Index.Snapshot().Generation(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return rerankMsg{} },
		textinput.Blink,
		tickCmd(),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-3)
		m.input.Width = msg.Width - h - 4
		return m, nil

	case rerankMsg:
		return m, m.rerank()

	case tickMsg:
		// The watcher feeds rescans in the background; pick up fresh
		// generations as they publish.
		if snap := m.state.Index.Snapshot(); snap.Generation() != m.gen {
			m.gen = snap.Generation()
			return m, tea.Batch(m.rerank(), tickCmd())
		}
		return m, tickCmd()

	case editorFinishedMsg:
		if msg.err != nil {
			return m, m.list.NewStatusMessage(statusStyle("Editor failed: " + msg.err.Error()))
		}
		return m, m.rerank()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.naming {
		return m.handleNamingKey(msg)
	}

	if key.Matches(msg, m.keys.toggleFocus) {
		m.listFocused = !m.listFocused
		if m.listFocused {
			m.input.Blur()
			return m, nil
		}
		return m, m.input.Focus()
	}

	if m.listFocused {
		return m.handleListKey(msg)
	}

	if msg.Type == tea.KeyEnter {
		m.listFocused = true
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, tea.Batch(cmd, m.rerank())
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.remove) {
		m.pendingRemove = ""
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.activate):
		res, ok := m.selection()
		if !ok {
			return m, nil
		}
		if res.Create {
			return m.enterNaming(res.CreateText)
		}
		return m, m.runAction(res, "c", "Copied "+res.Entry.Identifier)

	case key.Matches(msg, m.keys.copy):
		res, ok := m.selection()
		if !ok || res.Create {
			return m, nil
		}
		return m, m.runAction(res, "c", "Copied "+res.Entry.Identifier)

	case key.Matches(msg, m.keys.paste):
		res, ok := m.selection()
		if !ok || res.Create {
			return m, nil
		}
		return m, m.runAction(res, "cp", "Pasted "+res.Entry.Identifier)

	case key.Matches(msg, m.keys.edit):
		res, ok := m.selection()
		if !ok || res.Create {
			return m, nil
		}
		return m, m.editSnippet(res.Entry.Identifier)

	case key.Matches(msg, m.keys.remove):
		return m.removeSelection()

	case key.Matches(msg, m.keys.refresh):
		m.state.Index.RequestRescan()
		return m, m.list.NewStatusMessage(statusStyle("Rescanning"))
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleNamingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.exitNaming):
		return m.exitNaming(), nil
	case msg.Type == tea.KeyEnter:
		return m.submitName()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) enterNaming(createText string) (tea.Model, tea.Cmd) {
	m.naming = true
	m.createText = createText
	m.savedQuery = m.input.Value()
	m.input.Reset()
	m.input.Placeholder = "New snippet name"
	m.listFocused = false
	return m, m.input.Focus()
}

func (m Model) exitNaming() Model {
	m.naming = false
	m.input.Reset()
	m.input.Placeholder = "Search snippets, +text to create"
	m.input.SetValue(m.savedQuery)
	return m
}

func (m Model) submitName() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.input.Value())
	if err := handler.ValidateName(name); err != nil {
		return m, m.list.NewStatusMessage(statusStyle(err.Error()))
	}

	// Empty text means the user authors the snippet, so the file is created
	// directly and the editor launched through the program's exec hook
	// rather than the builder's blocking editor.
	if m.createText == "" {
		path, err := m.state.Handler.Create(name, "")
		if err != nil {
			return m, m.createFailed(name, err)
		}
		next := m.exitNaming()
		return next.editPath(path)
	}

	builder := *m.builder
	builder.Name = func(string) (string, error) { return name, nil }

	action := builder.ForResult(rank.Result{Create: true, CreateText: m.createText})[0]
	if err := action.Run(); err != nil {
		return m, m.createFailed(name, err)
	}

	next := m.exitNaming()
	return next, tea.Batch(
		next.list.NewStatusMessage(statusStyle("Created "+name)),
		next.rerank(),
	)
}

func (m *Model) createFailed(name string, err error) tea.Cmd {
	if errors.Is(err, handler.ErrNameConflict) {
		return m.list.NewStatusMessage(statusStyle(fmt.Sprintf("Snippet %q already exists", name)))
	}
	return m.list.NewStatusMessage(statusStyle("Create failed: " + err.Error()))
}

func (m Model) removeSelection() (tea.Model, tea.Cmd) {
	res, ok := m.selection()
	if !ok || res.Create {
		return m, nil
	}

	id := res.Entry.Identifier
	if m.pendingRemove != id {
		m.pendingRemove = id
		return m, m.list.NewStatusMessage(statusStyle(fmt.Sprintf("Press d again to trash %q", id)))
	}

	m.pendingRemove = ""
	return m, m.runAction(res, "r", "Trashed "+id)
}

func (m Model) editSnippet(id string) tea.Cmd {
	_, cmd := m.editPath(m.state.Handler.Path(id))
	return cmd
}

func (m Model) editPath(path string) (Model, tea.Cmd) {
	args := append(append([]string(nil), m.state.Config.EditorArgs...), path)
	c := exec.Command(m.state.Config.Editor, args...)
	return m, tea.ExecProcess(c, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// runAction looks the action up by its identifier on the result's action
// list and executes it.
func (m Model) runAction(res rank.Result, id, okStatus string) tea.Cmd {
	for _, action := range m.builder.ForResult(res) {
		if action.ID != id {
			continue
		}
		if err := action.Run(); err != nil {
			return m.list.NewStatusMessage(statusStyle("Failed: " + err.Error()))
		}
		return m.list.NewStatusMessage(statusStyle(okStatus))
	}
	return m.list.NewStatusMessage(statusStyle("Action not available"))
}

func (m Model) selection() (rank.Result, bool) {
	item, ok := m.list.SelectedItem().(resultItem)
	if !ok {
		return rank.Result{}, false
	}
	return item.res, true
}

func (m *Model) rerank() tea.Cmd {
	results := rank.Rank(m.input.Value(), m.state.Index.Snapshot())
	items := make([]list.Item, 0, len(results))
	for _, res := range results {
		items = append(items, resultItem{res: res})
	}
	return m.list.SetItems(items)
}

func (m Model) View() string {
	if m.naming {
		return appStyle.Render(
			titleStyle.Render("Create new snippet") + "\n\n" + m.input.View(),
		)
	}
	return appStyle.Render(m.input.View() + "\n\n" + m.list.View())
}

// Run starts the browser and blocks until the user quits.
func Run(s *state.State) error {
	_, err := tea.NewProgram(NewModel(s), tea.WithAltScreen()).Run()
	return err
}
