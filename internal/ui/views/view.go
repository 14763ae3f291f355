package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"findbar/internal/findbar"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Title    string
	Subtitle string
	Document string // rendered viewport

	Bar       findbar.Snapshot
	QueryView string
	EditView  string
	Mode      string
	Selected  int
	Drafts    map[int]string

	HelpModel    help.Model
	HelpBindings []key.Binding
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	var b strings.Builder

	title := r.styles.Title.Render(state.Title)
	if state.Subtitle != "" {
		title = fmt.Sprintf("%s  %s", title, r.styles.Dim.Render(state.Subtitle))
	}
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(state.Document)

	if bar := r.RenderBar(state); bar != "" {
		b.WriteString("\n")
		b.WriteString(bar)
	}

	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render(state.HelpModel.ShortHelpView(state.HelpBindings)))
	return b.String()
}

// ChromeHeight is the number of rows around the document for the given state
func (r *Renderer) ChromeHeight(state ViewState) int {
	rows := 2 // title and help line
	if bar := r.RenderBar(state); bar != "" {
		rows += lipgloss.Height(bar)
	}
	return rows
}
