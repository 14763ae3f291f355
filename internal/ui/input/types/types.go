package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	// ModeDocument scrolls the document; the find bar may be open but unfocused
	ModeDocument Mode = iota
	// ModeQuery types into the find bar query field
	ModeQuery
	// ModeList moves through the keyword list
	ModeList
	// ModeEdit types into the selected keyword's own input
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeQuery:
		return "query"
	case ModeList:
		return "list"
	case ModeEdit:
		return "edit"
	default:
		return "document"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	FindBarOpen() bool
	ItemCount() int
	SelectedItem() int
	ItemEditable(index int) bool
	ItemText(index int) string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
