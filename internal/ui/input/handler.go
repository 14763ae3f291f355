package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"findbar/internal/ui/input/keys"
	"findbar/internal/ui/input/modes"
	"findbar/internal/ui/input/types"
)

// Handler routes keys to the active mode and owns the text inputs
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        *keys.KeyMap
	queryInput  *textinput.Model
	editInput   *textinput.Model
}

// New creates a handler in document mode with empty query and edit inputs
func New(km keys.KeyMap) *Handler {
	query := textinput.New()
	query.Placeholder = "Find in document"
	query.CharLimit = 256
	edit := textinput.New()
	edit.CharLimit = 256

	h := &Handler{
		currentMode: types.ModeDocument,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        &km,
		queryInput:  &query,
		editInput:   &edit,
	}

	h.modes[types.ModeDocument] = modes.NewDocumentMode(h.keys)
	h.modes[types.ModeQuery] = modes.NewQueryMode(h.keys, h.queryInput)
	h.modes[types.ModeList] = modes.NewListMode(h.keys)
	h.modes[types.ModeEdit] = modes.NewEditMode(h.keys, h.editInput)

	return h
}

// HandleKey runs msg through the current mode. Keys a text mode does not
// consume go to its input and yield an UpdateTextAction.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed && !isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
			if isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
			continue
		}
		allActions = append(allActions, action)
	}

	if !consumed && isTextMode(h.currentMode) {
		ti := h.input(h.currentMode)
		before := ti.Value()
		*ti, cmd = ti.Update(msg)
		if ti.Value() != before {
			allActions = append(allActions, types.UpdateTextAction{Text: ti.Value(), Mode: h.currentMode})
		}
	}

	return allActions, cmd
}

// ChangeMode switches modes outside of key handling, as when the view focuses the query
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	return h.switchMode(mode, ctx)
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var out []types.Action
	if cur := h.modes[h.currentMode]; cur != nil {
		out = append(out, cur.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		out = append(out, next.Enter(ctx)...)
	}
	return out
}

// CurrentMode returns the mode keys are routed to
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// QueryInput is the find bar query field
func (h *Handler) QueryInput() *textinput.Model {
	return h.queryInput
}

// EditInput is the selected keyword's input while editing
func (h *Handler) EditInput() *textinput.Model {
	return h.editInput
}

// Update handles non-keyboard messages for the focused text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if !isTextMode(h.currentMode) {
		return nil
	}
	ti := h.input(h.currentMode)
	var cmd tea.Cmd
	*ti, cmd = ti.Update(msg)
	return cmd
}

// DiscardEdit clears the edit input and, when editing, returns to the list.
// The item being edited may no longer exist once the host replaced the list.
func (h *Handler) DiscardEdit(ctx types.Context) []types.Action {
	var out []types.Action
	if h.currentMode == types.ModeEdit {
		out = h.switchMode(types.ModeList, ctx)
	}
	h.editInput.Reset()
	return out
}

func (h *Handler) input(mode types.Mode) *textinput.Model {
	if mode == types.ModeEdit {
		return h.editInput
	}
	return h.queryInput
}

func isTextMode(mode types.Mode) bool {
	return mode == types.ModeQuery || mode == types.ModeEdit
}
