package findbar

import (
	"log/slog"
	"slices"
	"strings"

	"findbar/internal/domain"
	"findbar/internal/hostmsg"
)

// Control is a button on a rendered keyword item
type Control string

const (
	ControlFindPrevious Control = "findPrevious"
	ControlFindNext     Control = "findNext"
	ControlSave         Control = "saveToPopular"
	ControlDelete       Control = "delete"
)

var (
	fixedControls    = []Control{ControlFindPrevious, ControlFindNext}
	editableControls = []Control{ControlFindPrevious, ControlFindNext, ControlSave, ControlDelete}
)

// Item is one rendered keyword. Fixed items are read-only and only offer find controls.
type Item struct {
	Index    int
	ID       string
	Keyword  string
	ReadOnly bool
	Controls []Control
}

// Has reports whether the item offers ctl
func (it Item) Has(ctl Control) bool {
	for _, c := range it.Controls {
		if c == ctl {
			return true
		}
	}
	return false
}

// ItemEvent is a control activation on a rendered item. Text is the value of
// that item's own input, which may differ from the stored keyword while being edited.
type ItemEvent struct {
	Index   int
	Control Control
	Text    string
}

// Items returns a copy of the rendered keyword list
func (c *Coordinator) Items() []Item {
	out := make([]Item, len(c.items))
	for i, it := range c.items {
		it.Controls = slices.Clone(it.Controls)
		out[i] = it
	}
	return out
}

// Cursor returns the keyword index the next cyclic navigation searches
func (c *Coordinator) Cursor() int {
	return c.store.Cursor()
}

// receiveHostParams runs on the host source's goroutine
func (c *Coordinator) receiveHostParams(p domain.HostParams) {
	if c.post != nil {
		c.post(HostParamsMsg{owner: c.id, Params: p})
		return
	}
	c.ApplyHostParams(p)
}

// ApplyHostParams replaces the host params and rebuilds the keyword list:
// the cursor resets, the items are re-rendered and every keyword is searched at once.
func (c *Coordinator) ApplyHostParams(p domain.HostParams) {
	c.params = p
	c.hasParams = true
	c.initView()
}

func (c *Coordinator) initView() {
	if !c.hasParams {
		return
	}
	c.store.Replace(c.params.Keywords)
	c.renderItems()
	slog.Debug("findbar: keyword list rebuilt", "keywords", len(c.items))

	if p := c.params.Path; p != "" && p != c.docPath {
		c.docPath = p
		c.bus.Publish(domain.DocumentOpenEvent{Path: p})
	}
	c.DispatchKeywordsSearch(domain.RequestNew, false, "")
	c.adjustWidth()
}

func (c *Coordinator) renderItems() {
	entries := c.store.Entries()
	items := make([]Item, 0, len(entries))
	for i, e := range entries {
		it := Item{Index: i, Keyword: e.Keyword}
		if e.Editable() {
			it.ID = e.ID
			it.Controls = slices.Clone(editableControls)
		} else {
			it.ReadOnly = true
			it.Controls = slices.Clone(fixedControls)
		}
		items = append(items, it)
	}
	c.items = items
}

// FindNextKeyword searches the keyword under the cursor, then advances the cursor with wrap-around
func (c *Coordinator) FindNextKeyword() {
	entry, ok := c.store.Current()
	if !ok {
		return
	}
	c.DispatchKeywordsSearch(domain.RequestAgain, false, entry.Keyword)
	c.store.Advance()
}

// FindPreviousKeyword searches the keyword under the cursor, then moves the cursor back with wrap-around
func (c *Coordinator) FindPreviousKeyword() {
	entry, ok := c.store.Current()
	if !ok {
		return
	}
	c.DispatchKeywordsSearch(domain.RequestAgain, true, entry.Keyword)
	c.store.Retreat()
}

// HandleItemEvent routes a control activation on a rendered item.
// Save and delete are only posted to the host; the list changes when the host sends a new set.
func (c *Coordinator) HandleItemEvent(ev ItemEvent) {
	if ev.Index < 0 || ev.Index >= len(c.items) {
		return
	}
	item := c.items[ev.Index]
	if !item.Has(ev.Control) {
		return
	}

	switch ev.Control {
	case ControlFindPrevious:
		c.DispatchKeywordsSearch(domain.RequestAgain, true, ev.Text)
	case ControlFindNext:
		c.DispatchKeywordsSearch(domain.RequestAgain, false, ev.Text)
	case ControlSave:
		text := strings.TrimSpace(ev.Text)
		if text == "" {
			return
		}
		c.postHost(hostmsg.SaveKey(text, item.ID))
	case ControlDelete:
		c.postHost(hostmsg.DeleteKey(item.ID))
	}
}
