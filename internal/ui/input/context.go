package input

import (
	"findbar/internal/findbar"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Snapshot findbar.Snapshot
	Selected int
	// Drafts holds unsaved edits keyed by item index
	Drafts map[int]string
}

func (c *ModelContext) FindBarOpen() bool {
	return c.Snapshot.Open
}

func (c *ModelContext) ItemCount() int {
	return len(c.Snapshot.Items)
}

func (c *ModelContext) SelectedItem() int {
	return c.Selected
}

// ItemEditable reports whether the item at index offers save and delete
func (c *ModelContext) ItemEditable(index int) bool {
	if index < 0 || index >= len(c.Snapshot.Items) {
		return false
	}
	return !c.Snapshot.Items[index].ReadOnly
}

// ItemText returns the item's draft when it has one, otherwise its keyword
func (c *ModelContext) ItemText(index int) string {
	if text, ok := c.Drafts[index]; ok {
		return text
	}
	if index < 0 || index >= len(c.Snapshot.Items) {
		return ""
	}
	return c.Snapshot.Items[index].Keyword
}
