package ui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"findbar/internal/eventbus"
	"findbar/internal/findbar"
	"findbar/internal/ui/handlers"
	"findbar/internal/ui/input"
	"findbar/internal/ui/input/keys"
	inputtypes "findbar/internal/ui/input/types"
	"findbar/internal/ui/views"
	"findbar/internal/viewer"
)

// Model is the document viewer with its find bar
type Model struct {
	bus    eventbus.EventBus
	finder *findbar.Coordinator
	engine *viewer.Engine

	// UI-specific state
	width       int
	height      int
	help        help.Model
	viewport    viewport.Model
	keys        keys.KeyMap
	selected    int            // keyword list selection
	drafts      map[int]string // unsaved keyword edits by item index
	items       []findbar.Item // last rendered list, to drop stale drafts
	doc         *viewer.Document
	inPagerMode bool // tracks if we're currently in pager mode

	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	inputHandler *input.Handler

	// Program reference for terminal management
	program *tea.Program
	helpOps *HelpOps
}

// NewModel creates the UI model and attaches it to the coordinator as its view
func NewModel(bus eventbus.EventBus, finder *findbar.Coordinator, engine *viewer.Engine) *Model {
	km := keys.Default()
	m := &Model{
		bus:          bus,
		finder:       finder,
		engine:       engine,
		help:         help.New(),
		viewport:     viewport.New(80, 20),
		keys:         km,
		drafts:       make(map[int]string),
		renderer:     views.NewRenderer(),
		eventHandler: handlers.NewEventHandler(finder),
		inputHandler: input.New(km),
	}
	finder.SetView(m)
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// FocusQuery implements findbar.View
func (m *Model) FocusQuery() {
	m.inputHandler.ChangeMode(inputtypes.ModeQuery, m.context())
}

// Overflows implements findbar.View
func (m *Model) Overflows() bool {
	if m.width <= 0 {
		return false
	}
	return m.renderer.BarWidth(m.viewState()) > m.width
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.bus.Publish(eventbus.ResizeEvent{Width: msg.Width, Height: msg.Height})

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			slog.Warn("ui: help pager failed", "error", msg.err)
		}

	case EventMsg:
		cmds = append(cmds, m.eventHandler.HandleEvent(msg.Event))

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		actions, cmd := m.inputHandler.HandleKey(msg, m.context())
		cmds = append(cmds, cmd)
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}

	default:
		cmds = append(cmds, m.finder.Update(msg), m.inputHandler.Update(msg))
	}

	m.syncItems()
	m.refreshDocument()
	return m, tea.Batch(cmds...)
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.QuitAction:
		return tea.Quit

	case inputtypes.ToggleHelpAction:
		if m.program == nil {
			return nil
		}
		return m.fetchHelpPager(RenderHelpContent(m.keys))

	case inputtypes.ToggleFindBarAction:
		m.finder.Toggle()
		if !m.finder.IsOpen() {
			m.inputHandler.ChangeMode(inputtypes.ModeDocument, m.context())
		}

	case inputtypes.CloseFindBarAction:
		m.finder.Close()
		m.inputHandler.ChangeMode(inputtypes.ModeDocument, m.context())

	case inputtypes.FindAgainAction:
		m.finder.FindAgain(a.Previous)

	case inputtypes.KeywordStepAction:
		if a.Previous {
			m.finder.FindPreviousKeyword()
		} else {
			m.finder.FindNextKeyword()
		}

	case inputtypes.ToggleOptionAction:
		switch a.Option {
		case inputtypes.OptionHighlightAll:
			m.finder.ToggleHighlightAll()
		case inputtypes.OptionCaseSensitive:
			m.finder.ToggleCaseSensitive()
		case inputtypes.OptionEntireWord:
			m.finder.ToggleEntireWord()
		}

	case inputtypes.SaveQueryAction:
		m.finder.SaveQuery()

	case inputtypes.UpdateTextAction:
		switch a.Mode {
		case inputtypes.ModeQuery:
			if a.Text != m.finder.Query() {
				m.finder.SetQuery(a.Text)
			}
		case inputtypes.ModeEdit:
			m.drafts[m.selected] = a.Text
		}

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeEdit {
			m.drafts[m.selected] = a.Text
		}

	case inputtypes.CancelTextAction:
		if a.Mode == inputtypes.ModeEdit {
			m.restoreDraft(a.Text)
		}

	case inputtypes.SelectItemAction:
		m.selected = clamp(m.selected+a.Delta, 0, len(m.items)-1)

	case inputtypes.ItemControlAction:
		ctx := m.context()
		m.finder.HandleItemEvent(findbar.ItemEvent{
			Index:   m.selected,
			Control: a.Control,
			Text:    ctx.ItemText(m.selected),
		})

	case inputtypes.ScrollAction:
		m.scroll(a.Direction)
	}
	return nil
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

func (m *Model) scroll(direction string) {
	switch direction {
	case "up":
		m.viewport.SetYOffset(m.viewport.YOffset - 1)
	case "down":
		m.viewport.SetYOffset(m.viewport.YOffset + 1)
	case "pageup":
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
	case "pagedown":
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
	case "home":
		m.viewport.GotoTop()
	case "end":
		m.viewport.GotoBottom()
	}
}

// restoreDraft puts back the text the selected item showed before an abandoned edit
func (m *Model) restoreDraft(text string) {
	if m.selected < len(m.items) && text == m.items[m.selected].Keyword {
		delete(m.drafts, m.selected)
		return
	}
	m.drafts[m.selected] = text
}

// syncItems drops drafts and clamps the selection when the host replaced the list.
// An edit in progress is discarded, since its index now points at another entry.
func (m *Model) syncItems() {
	items := m.finder.Items()
	if !sameItems(items, m.items) {
		m.drafts = make(map[int]string)
		m.inputHandler.DiscardEdit(m.context())
	}
	m.items = items
	m.selected = clamp(m.selected, 0, len(items)-1)
	if len(items) == 0 {
		switch m.inputHandler.CurrentMode() {
		case inputtypes.ModeList, inputtypes.ModeEdit:
			m.inputHandler.ChangeMode(inputtypes.ModeQuery, m.context())
		}
	}
}

// refreshDocument re-renders the document and keeps the current match in view
func (m *Model) refreshDocument() {
	state := m.viewState()
	height := m.height - m.renderer.ChromeHeight(state)
	if height < 1 {
		height = 1
	}
	if m.width > 0 {
		m.viewport.Width = m.width
		m.viewport.Height = height
	}

	doc := m.engine.Document()
	ds := views.DocumentState{
		Matches:      m.engine.Matches(),
		HighlightAll: m.engine.HighlightAll(),
		Keywords:     m.engine.Keywords(),
	}
	if doc != nil {
		ds.Lines = doc.Lines
	}
	ds.Current, ds.HasCurrent = m.engine.Current()
	m.viewport.SetContent(m.renderer.RenderDocument(ds))

	if doc != m.doc {
		m.doc = doc
		m.viewport.GotoTop()
	}
	if ds.HasCurrent {
		line := ds.Current.Line
		if line < m.viewport.YOffset || line >= m.viewport.YOffset+m.viewport.Height {
			m.viewport.SetYOffset(line - m.viewport.Height/2)
		}
	}
}

func (m *Model) context() *input.ModelContext {
	return &input.ModelContext{
		Snapshot: m.finder.Snapshot(),
		Selected: m.selected,
		Drafts:   m.drafts,
	}
}

func (m *Model) viewState() views.ViewState {
	ti := m.inputHandler.QueryInput()
	return views.ViewState{
		Width:        m.width,
		Height:       m.height,
		Title:        m.title(),
		Subtitle:     m.subtitle(),
		Bar:          m.finder.Snapshot(),
		QueryView:    ti.View(),
		EditView:     m.inputHandler.EditInput().View(),
		Mode:         m.inputHandler.CurrentMode().String(),
		Selected:     m.selected,
		Drafts:       m.drafts,
		HelpModel:    m.help,
		HelpBindings: m.keys.ShortHelpFor(m.inputHandler.CurrentMode()),
	}
}

func (m *Model) title() string {
	if doc := m.engine.Document(); doc != nil {
		return doc.Name
	}
	return "findbar"
}

func (m *Model) subtitle() string {
	doc := m.engine.Document()
	if doc == nil {
		return ""
	}
	return fmt.Sprintf("%s · %d lines · %s", doc.SizeLabel(), len(doc.Lines), doc.MIME)
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	state := m.viewState()
	state.Document = m.viewport.View()
	return m.renderer.Render(state)
}

func sameItems(a, b []findbar.Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Keyword != b[i].Keyword || a[i].ReadOnly != b[i].ReadOnly {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
