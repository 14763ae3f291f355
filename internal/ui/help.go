package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"findbar/internal/ui/input/keys"
)

// helpSection groups bindings under a heading
type helpSection struct {
	title    string
	bindings []key.Binding
}

func helpSections(k keys.KeyMap) []helpSection {
	return []helpSection{
		{"Document", []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom}},
		{"Find bar", []key.Binding{k.ToggleBar, k.FocusQuery, k.FindAgain, k.FindBack, k.Close}},
		{"Query", []key.Binding{k.Submit, k.SubmitBack, k.HighlightAll, k.MatchCase, k.WholeWord, k.SaveQuery, k.FocusList}},
		{"Keywords", []key.Binding{k.NextKeyword, k.PrevKeyword, k.ItemFindPrev, k.ItemFindNext, k.ItemEdit, k.ItemSave, k.ItemDelete}},
		{"Other", []key.Binding{k.Help, k.Quit}},
	}
}

// RenderHelpContent renders the help page for the pager
func RenderHelpContent(k keys.KeyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render("Find Bar Help"))
	help.WriteString("\n")

	for i, section := range helpSections(k) {
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, b := range section.bindings {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
		if i < len(helpSections(k))-1 {
			help.WriteString("\n")
		}
	}
	return strings.TrimSuffix(help.String(), "\n")
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Give ov time to leave the alternate screen
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Do not write the page back to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
