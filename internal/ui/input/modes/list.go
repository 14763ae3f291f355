package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"findbar/internal/findbar"
	"findbar/internal/ui/input/keys"
	"findbar/internal/ui/input/types"
)

// ListMode moves through the keyword list and activates item controls
type ListMode struct {
	keys *keys.KeyMap
}

// NewListMode creates the keyword list mode
func NewListMode(km *keys.KeyMap) *ListMode {
	return &ListMode{keys: km}
}

// Name returns the mode name
func (m *ListMode) Name() string {
	return "list"
}

// Enter keeps the current selection
func (m *ListMode) Enter(ctx types.Context) []types.Action {
	return nil
}

// Exit has nothing to release
func (m *ListMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// HandleKey maps keys to item controls. Save, delete and edit only apply to editable items.
func (m *ListMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	editable := ctx.ItemEditable(ctx.SelectedItem())

	switch {
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, k.Close), key.Matches(msg, k.FocusList), key.Matches(msg, k.FocusQuery):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery}}, true

	case key.Matches(msg, k.ToggleBar):
		return []types.Action{
			types.ToggleFindBarAction{},
			types.ChangeModeAction{Mode: types.ModeDocument},
		}, true

	case key.Matches(msg, k.Up):
		return []types.Action{types.SelectItemAction{Delta: -1}}, true

	case key.Matches(msg, k.Down):
		return []types.Action{types.SelectItemAction{Delta: 1}}, true

	case key.Matches(msg, k.ItemFindPrev):
		return []types.Action{types.ItemControlAction{Control: findbar.ControlFindPrevious}}, true

	case key.Matches(msg, k.ItemFindNext), key.Matches(msg, k.Submit):
		return []types.Action{types.ItemControlAction{Control: findbar.ControlFindNext}}, true

	case key.Matches(msg, k.NextKeyword):
		return []types.Action{types.KeywordStepAction{}}, true

	case key.Matches(msg, k.PrevKeyword):
		return []types.Action{types.KeywordStepAction{Previous: true}}, true

	case key.Matches(msg, k.ItemEdit):
		if editable {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeEdit}}, true
		}
		return nil, true

	case key.Matches(msg, k.ItemSave):
		if editable {
			return []types.Action{types.ItemControlAction{Control: findbar.ControlSave}}, true
		}
		return nil, true

	case key.Matches(msg, k.ItemDelete):
		if editable {
			return []types.Action{types.ItemControlAction{Control: findbar.ControlDelete}}, true
		}
		return nil, true
	}
	return nil, true
}
