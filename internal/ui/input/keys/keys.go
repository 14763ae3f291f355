package keys

import (
	"github.com/charmbracelet/bubbles/key"

	"findbar/internal/ui/input/types"
)

// KeyMap holds every binding the find bar UI reacts to
type KeyMap struct {
	ToggleBar key.Binding
	Close     key.Binding
	Help      key.Binding
	Quit      key.Binding

	// Document
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Top        key.Binding
	Bottom     key.Binding
	FindAgain  key.Binding
	FindBack   key.Binding
	FocusQuery key.Binding

	// Find bar
	Submit       key.Binding
	SubmitBack   key.Binding
	NextKeyword  key.Binding
	PrevKeyword  key.Binding
	HighlightAll key.Binding
	MatchCase    key.Binding
	WholeWord    key.Binding
	SaveQuery    key.Binding
	FocusList    key.Binding

	// Keyword list
	ItemFindPrev key.Binding
	ItemFindNext key.Binding
	ItemEdit     key.Binding
	ItemSave     key.Binding
	ItemDelete   key.Binding
}

// Default returns the standard bindings
func Default() KeyMap {
	return KeyMap{
		ToggleBar: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "find")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown", "ctrl+d", " "), key.WithHelp("pgdn", "page down")),
		Top:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		FindAgain:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next match")),
		FindBack:   key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "previous match")),
		FocusQuery: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "edit query")),

		Submit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next match")),
		SubmitBack:   key.NewBinding(key.WithKeys("alt+enter", "shift+tab"), key.WithHelp("alt+enter", "previous match")),
		NextKeyword:  key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next keyword")),
		PrevKeyword:  key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "previous keyword")),
		HighlightAll: key.NewBinding(key.WithKeys("alt+h"), key.WithHelp("alt+h", "highlight all")),
		MatchCase:    key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "match case")),
		WholeWord:    key.NewBinding(key.WithKeys("alt+w"), key.WithHelp("alt+w", "whole words")),
		SaveQuery:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save query")),
		FocusList:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "keywords")),

		ItemFindPrev: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "find previous")),
		ItemFindNext: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "find next")),
		ItemEdit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		ItemSave:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		ItemDelete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	}
}

// ShortHelpFor returns the help line bindings for a mode
func (k KeyMap) ShortHelpFor(mode types.Mode) []key.Binding {
	switch mode {
	case types.ModeQuery:
		return []key.Binding{k.Submit, k.SubmitBack, k.NextKeyword, k.MatchCase, k.WholeWord, k.SaveQuery, k.FocusList, k.Close}
	case types.ModeList:
		return []key.Binding{k.Up, k.Down, k.ItemFindPrev, k.ItemFindNext, k.ItemEdit, k.ItemSave, k.ItemDelete, k.Close}
	case types.ModeEdit:
		return []key.Binding{k.Submit, k.Close}
	default:
		return []key.Binding{k.ToggleBar, k.FindAgain, k.FindBack, k.NextKeyword, k.Help, k.Quit}
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return k.ShortHelpFor(types.ModeDocument)
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.ToggleBar, k.FocusQuery, k.FindAgain, k.FindBack, k.NextKeyword, k.PrevKeyword},
		{k.Submit, k.SubmitBack, k.HighlightAll, k.MatchCase, k.WholeWord, k.SaveQuery, k.FocusList},
		{k.ItemFindPrev, k.ItemFindNext, k.ItemEdit, k.ItemSave, k.ItemDelete},
		{k.Close, k.Help, k.Quit},
	}
}
