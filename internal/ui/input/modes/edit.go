package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"findbar/internal/findbar"
	"findbar/internal/ui/input/keys"
	"findbar/internal/ui/input/types"
)

// EditMode types into the selected keyword's own input
type EditMode struct {
	TextInputMode
	original string // value when editing began, restored on cancel
}

// NewEditMode creates the edit mode around the shared edit input
func NewEditMode(km *keys.KeyMap, ti *textinput.Model) *EditMode {
	return &EditMode{
		TextInputMode: NewTextInputMode(types.ModeEdit, "edit", km, ti),
	}
}

// Enter loads the selected item's current text
func (m *EditMode) Enter(ctx types.Context) []types.Action {
	m.original = ctx.ItemText(ctx.SelectedItem())
	if m.textInput != nil {
		m.textInput.SetValue(m.original)
	}
	return m.TextInputMode.Enter(ctx)
}

// HandleKey submits, saves or cancels the edit. Other keys reach the input.
func (m *EditMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case msg.String() == "ctrl+c":
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Close):
		return []types.Action{
			types.CancelTextAction{Text: m.original, Mode: types.ModeEdit},
			types.ChangeModeAction{Mode: types.ModeList},
		}, true

	case key.Matches(msg, m.keys.Submit):
		return []types.Action{
			types.SubmitTextAction{Text: m.value(), Mode: types.ModeEdit},
			types.ChangeModeAction{Mode: types.ModeList},
		}, true

	case key.Matches(msg, m.keys.SaveQuery):
		return []types.Action{
			types.SubmitTextAction{Text: m.value(), Mode: types.ModeEdit},
			types.ItemControlAction{Control: findbar.ControlSave},
			types.ChangeModeAction{Mode: types.ModeList},
		}, true
	}
	return nil, false
}
