package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"findbar/internal/ui/input/keys"
	"findbar/internal/ui/input/types"
)

// DocumentMode scrolls the document and drives the find bar while it is unfocused
type DocumentMode struct {
	keys *keys.KeyMap
}

// NewDocumentMode creates the mode active while the find bar is unfocused
func NewDocumentMode(km *keys.KeyMap) *DocumentMode {
	return &DocumentMode{keys: km}
}

// Name returns the mode name
func (m *DocumentMode) Name() string {
	return "document"
}

// Enter has nothing to prepare
func (m *DocumentMode) Enter(ctx types.Context) []types.Action {
	return nil
}

// Exit has nothing to release
func (m *DocumentMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// HandleKey maps scrolling, find-again and keyword stepping keys
func (m *DocumentMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, k.ToggleBar):
		return []types.Action{types.ToggleFindBarAction{}}, true

	case key.Matches(msg, k.FocusQuery):
		if !ctx.FindBarOpen() {
			// Opening focuses the query through the view
			return []types.Action{types.ToggleFindBarAction{}}, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery}}, true

	case key.Matches(msg, k.Close):
		if ctx.FindBarOpen() {
			return []types.Action{types.CloseFindBarAction{}}, true
		}
		return nil, false

	case key.Matches(msg, k.FocusList):
		if ctx.FindBarOpen() && ctx.ItemCount() > 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeList}}, true
		}
		return nil, true

	case key.Matches(msg, k.FindAgain):
		return []types.Action{types.FindAgainAction{}}, true

	case key.Matches(msg, k.FindBack):
		return []types.Action{types.FindAgainAction{Previous: true}}, true

	case key.Matches(msg, k.NextKeyword):
		return []types.Action{types.KeywordStepAction{}}, true

	case key.Matches(msg, k.PrevKeyword):
		return []types.Action{types.KeywordStepAction{Previous: true}}, true

	case key.Matches(msg, k.Up):
		return []types.Action{types.ScrollAction{Direction: "up"}}, true

	case key.Matches(msg, k.Down):
		return []types.Action{types.ScrollAction{Direction: "down"}}, true

	case key.Matches(msg, k.PageUp):
		return []types.Action{types.ScrollAction{Direction: "pageup"}}, true

	case key.Matches(msg, k.PageDown):
		return []types.Action{types.ScrollAction{Direction: "pagedown"}}, true

	case key.Matches(msg, k.Top):
		return []types.Action{types.ScrollAction{Direction: "home"}}, true

	case key.Matches(msg, k.Bottom):
		return []types.Action{types.ScrollAction{Direction: "end"}}, true
	}
	return nil, false
}
