package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"findbar/internal/ui/input/keys"
	"findbar/internal/ui/input/types"
)

// TextInputMode is a base for modes that accept text input
type TextInputMode struct {
	mode      types.Mode
	name      string
	keys      *keys.KeyMap
	textInput *textinput.Model
}

// NewTextInputMode creates the shared text mode state
func NewTextInputMode(mode types.Mode, name string, km *keys.KeyMap, ti *textinput.Model) TextInputMode {
	return TextInputMode{
		mode:      mode,
		name:      name,
		keys:      km,
		textInput: ti,
	}
}

// Name returns the mode name
func (m TextInputMode) Name() string {
	return m.name
}

// Enter focuses the input and keeps its value
func (m TextInputMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Prompt = "" // Prompt is handled in the UI layer
		m.textInput.Focus()
		m.textInput.CursorEnd()
	}
	return nil
}

// Exit blurs the input
func (m TextInputMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m TextInputMode) value() string {
	if m.textInput == nil {
		return ""
	}
	return m.textInput.Value()
}
