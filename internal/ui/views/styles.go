package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	Help         lipgloss.Style
	Bar          lipgloss.Style
	Prompt       lipgloss.Style
	OptionOn     lipgloss.Style
	OptionOff    lipgloss.Style
	NotFound     lipgloss.Style
	Message      lipgloss.Style
	Count        lipgloss.Style
	Pending      lipgloss.Style
	Item         lipgloss.Style
	ItemCursor   lipgloss.Style
	ItemReadOnly lipgloss.Style
	SelectionBg  lipgloss.Style
	Match        lipgloss.Style
	MatchCurrent lipgloss.Style
	Keyword      lipgloss.Style
	LineNumber   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:   lipgloss.NewStyle().Faint(true),
		Bar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("241")),
		Prompt:       lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		OptionOn:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		OptionOff:    lipgloss.NewStyle().Faint(true),
		NotFound:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Message:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Count:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Item:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemCursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		ItemReadOnly: lipgloss.NewStyle().Foreground(lipgloss.Color("33")), // blue
		SelectionBg:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Match:        lipgloss.NewStyle().Background(lipgloss.Color("58")),
		MatchCurrent: lipgloss.NewStyle().Background(lipgloss.Color("214")).Foreground(lipgloss.Color("0")),
		Keyword:      lipgloss.NewStyle().Background(lipgloss.Color("24")),
		LineNumber:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
