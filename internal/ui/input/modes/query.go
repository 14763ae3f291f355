package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"findbar/internal/ui/input/keys"
	"findbar/internal/ui/input/types"
)

// QueryMode edits the find bar query. Unbound keys fall through to the text input.
type QueryMode struct {
	TextInputMode
}

// NewQueryMode creates the query mode around the shared query input
func NewQueryMode(km *keys.KeyMap, ti *textinput.Model) *QueryMode {
	return &QueryMode{
		TextInputMode: NewTextInputMode(types.ModeQuery, "query", km, ti),
	}
}

// HandleKey handles find bar controls; other keys are left for the input
func (m *QueryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case msg.String() == "ctrl+c":
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, k.Close):
		return []types.Action{
			types.CloseFindBarAction{},
			types.ChangeModeAction{Mode: types.ModeDocument},
		}, true

	case key.Matches(msg, k.ToggleBar):
		return []types.Action{
			types.ToggleFindBarAction{},
			types.ChangeModeAction{Mode: types.ModeDocument},
		}, true

	case key.Matches(msg, k.Submit):
		return []types.Action{types.FindAgainAction{}}, true

	case key.Matches(msg, k.SubmitBack):
		return []types.Action{types.FindAgainAction{Previous: true}}, true

	case key.Matches(msg, k.NextKeyword):
		return []types.Action{types.KeywordStepAction{}}, true

	case key.Matches(msg, k.PrevKeyword):
		return []types.Action{types.KeywordStepAction{Previous: true}}, true

	case key.Matches(msg, k.HighlightAll):
		return []types.Action{types.ToggleOptionAction{Option: types.OptionHighlightAll}}, true

	case key.Matches(msg, k.MatchCase):
		return []types.Action{types.ToggleOptionAction{Option: types.OptionCaseSensitive}}, true

	case key.Matches(msg, k.WholeWord):
		return []types.Action{types.ToggleOptionAction{Option: types.OptionEntireWord}}, true

	case key.Matches(msg, k.SaveQuery):
		return []types.Action{types.SaveQueryAction{}}, true

	case key.Matches(msg, k.FocusList):
		if ctx.ItemCount() > 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeList}}, true
		}
		return nil, true
	}
	// Let the handler update the text input
	return nil, false
}
