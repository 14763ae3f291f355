package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"findbar/internal/viewer"
)

// DocumentState is what the document pane needs from the search engine
type DocumentState struct {
	Lines        []string
	Matches      []viewer.Span
	Current      viewer.Span
	HasCurrent   bool
	HighlightAll bool
	Keywords     []viewer.KeywordHit
}

type mark uint8

const (
	markNone mark = iota
	markKeyword
	markMatch
	markCurrent
)

// RenderDocument returns the numbered, highlighted document text. The current
// match wins over other matches, which win over keyword highlights.
func (r *Renderer) RenderDocument(state DocumentState) string {
	if len(state.Lines) == 0 {
		return r.styles.Dim.Render("No document loaded")
	}

	byLine := make(map[int][]markedSpan)
	for _, kw := range state.Keywords {
		for _, sp := range kw.Spans {
			byLine[sp.Line] = append(byLine[sp.Line], markedSpan{sp, markKeyword})
		}
	}
	if state.HighlightAll {
		for _, sp := range state.Matches {
			byLine[sp.Line] = append(byLine[sp.Line], markedSpan{sp, markMatch})
		}
	}
	if state.HasCurrent {
		byLine[state.Current.Line] = append(byLine[state.Current.Line], markedSpan{state.Current, markCurrent})
	}

	width := len(fmt.Sprint(len(state.Lines)))
	out := make([]string, len(state.Lines))
	for i, line := range state.Lines {
		num := r.styles.LineNumber.Render(fmt.Sprintf("%*d ", width, i+1))
		out[i] = num + r.renderLine(line, byLine[i])
	}
	return strings.Join(out, "\n")
}

type markedSpan struct {
	viewer.Span
	mark mark
}

func (r *Renderer) renderLine(line string, spans []markedSpan) string {
	if len(spans) == 0 {
		return line
	}
	marks := make([]mark, len(line))
	for _, sp := range spans {
		for i := sp.Start; i < sp.End && i < len(line); i++ {
			if sp.mark > marks[i] {
				marks[i] = sp.mark
			}
		}
	}

	var b strings.Builder
	start := 0
	for i := 1; i <= len(line); i++ {
		if i < len(line) && marks[i] == marks[start] {
			continue
		}
		b.WriteString(r.markStyle(marks[start]).Render(line[start:i]))
		start = i
	}
	return b.String()
}

func (r *Renderer) markStyle(m mark) lipgloss.Style {
	switch m {
	case markCurrent:
		return r.styles.MatchCurrent
	case markMatch:
		return r.styles.Match
	case markKeyword:
		return r.styles.Keyword
	default:
		return lipgloss.NewStyle()
	}
}
