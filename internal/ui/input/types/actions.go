package types

import "findbar/internal/findbar"

// Document actions
type ScrollAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a ScrollAction) Type() string { return "scroll" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode // Which mode's input changed
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode
}

func (a SubmitTextAction) Type() string { return "submit_text" }

// CancelTextAction abandons an edit. Text is the value the input held when editing began.
type CancelTextAction struct {
	Text string
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Find bar actions
type ToggleFindBarAction struct{}

func (a ToggleFindBarAction) Type() string { return "toggle_findbar" }

type CloseFindBarAction struct{}

func (a CloseFindBarAction) Type() string { return "close_findbar" }

type FindAgainAction struct {
	Previous bool
}

func (a FindAgainAction) Type() string { return "find_again" }

type KeywordStepAction struct {
	Previous bool
}

func (a KeywordStepAction) Type() string { return "keyword_step" }

// Option names carried by ToggleOptionAction
const (
	OptionHighlightAll  = "highlight_all"
	OptionCaseSensitive = "case_sensitive"
	OptionEntireWord    = "entire_word"
)

type ToggleOptionAction struct {
	Option string
}

func (a ToggleOptionAction) Type() string { return "toggle_option" }

type SaveQueryAction struct{}

func (a SaveQueryAction) Type() string { return "save_query" }

// Keyword list actions
type SelectItemAction struct {
	Delta int
}

func (a SelectItemAction) Type() string { return "select_item" }

// ItemControlAction activates one of the selected item's controls
type ItemControlAction struct {
	Control findbar.Control
}

func (a ItemControlAction) Type() string { return "item_control" }

// Other actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
