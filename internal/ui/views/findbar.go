package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"findbar/internal/findbar"
)

// BarRow lays out the bar on a single row: query, options and status
func (r *Renderer) BarRow(state ViewState) string {
	parts := []string{r.queryField(state), r.options(state.Bar)}
	if status := r.status(state.Bar); status != "" {
		parts = append(parts, status)
	}
	return strings.Join(parts, "  ")
}

// BarWidth is the width of the single-row layout
func (r *Renderer) BarWidth(state ViewState) int {
	return lipgloss.Width(r.BarRow(state))
}

// RenderBar draws the open bar and its keyword list; a closed bar renders empty
func (r *Renderer) RenderBar(state ViewState) string {
	if !state.Bar.Open {
		return ""
	}

	var rows []string
	if state.Bar.Wrapped {
		rows = append(rows, r.queryField(state), r.options(state.Bar))
		if status := r.status(state.Bar); status != "" {
			rows = append(rows, status)
		}
	} else {
		rows = append(rows, r.BarRow(state))
	}
	if list := r.RenderList(state); list != "" {
		rows = append(rows, list)
	}

	bar := strings.Join(rows, "\n")
	if state.Width > 0 {
		return r.styles.Bar.Width(state.Width).Render(bar)
	}
	return r.styles.Bar.Render(bar)
}

// RenderList draws one row per keyword. The arrow marks the keyword the next
// cyclic search uses; the highlighted row is the list selection.
func (r *Renderer) RenderList(state ViewState) string {
	items := state.Bar.Items
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	for i, it := range items {
		marker := "  "
		if i == state.Bar.Cursor {
			marker = r.styles.ItemCursor.Render("→ ")
		}

		text := it.Keyword
		if draft, ok := state.Drafts[i]; ok {
			text = draft
		}
		var body string
		switch {
		case state.Mode == "edit" && i == state.Selected:
			body = state.EditView
		case it.ReadOnly:
			body = r.styles.ItemReadOnly.Render(text)
		default:
			body = r.styles.Item.Render(text)
		}

		row := fmt.Sprintf("%s%s  %s", marker, body, r.styles.Dim.Render(controlHint(it)))
		if state.Mode == "list" && i == state.Selected {
			row = r.styles.SelectionBg.Render(row)
		}
		b.WriteString(row)
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func controlHint(it findbar.Item) string {
	hints := make([]string, 0, len(it.Controls))
	for _, c := range it.Controls {
		switch c {
		case findbar.ControlFindPrevious:
			hints = append(hints, "p")
		case findbar.ControlFindNext:
			hints = append(hints, "n")
		case findbar.ControlSave:
			hints = append(hints, "s")
		case findbar.ControlDelete:
			hints = append(hints, "d")
		}
	}
	return "[" + strings.Join(hints, " ") + "]"
}

func (r *Renderer) queryField(state ViewState) string {
	prompt := r.styles.Prompt.Render("Find:")
	query := state.QueryView
	if state.Bar.NotFound {
		query = r.styles.NotFound.Render(state.Bar.Query)
		if state.Mode == "query" {
			query = r.styles.NotFound.Render(state.QueryView)
		}
	}
	return prompt + " " + query
}

func (r *Renderer) options(s findbar.Snapshot) string {
	opt := func(on bool, label string) string {
		if on {
			return r.styles.OptionOn.Render(label)
		}
		return r.styles.OptionOff.Render(label)
	}
	return strings.Join([]string{
		opt(s.HighlightAll, "[H]ighlight"),
		opt(s.CaseSensitive, "[C]ase"),
		opt(s.EntireWord, "[W]hole"),
	}, " ")
}

func (r *Renderer) status(s findbar.Snapshot) string {
	var parts []string
	if s.Status == findbar.StatusPending {
		parts = append(parts, r.styles.Pending.Render("…"))
	}
	if s.Message != "" {
		style := r.styles.Message
		if s.NotFound {
			style = r.styles.NotFound
		}
		parts = append(parts, style.Render(s.Message))
	}
	if s.ResultsShown && s.ResultsCount != "" {
		parts = append(parts, r.styles.Count.Render(s.ResultsCount))
	}
	return strings.Join(parts, "  ")
}
