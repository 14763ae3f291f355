// Package viewer holds the loaded document and answers find requests
// published on the event bus
package viewer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
)

// ErrNotText is returned when a document is not plain text
var ErrNotText = errors.New("document is not text")

// Document is a text document split into lines
type Document struct {
	Path  string
	Name  string
	Lines []string
	Size  int64
	MIME  string
}

// SizeLabel renders the document size for the status line
func (d *Document) SizeLabel() string {
	if d == nil {
		return ""
	}
	return humanize.Bytes(uint64(d.Size))
}

// LoadDocument reads a text document from disk
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	mt := mimetype.Detect(data)
	if !isText(mt) {
		return nil, fmt.Errorf("%s (%s): %w", path, mt.String(), ErrNotText)
	}
	doc := NewDocument(filepath.Base(path), string(data))
	doc.Path = path
	doc.MIME = mt.String()
	return doc, nil
}

// NewDocument builds an in-memory document
func NewDocument(name, text string) *Document {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return &Document{
		Name:  name,
		Lines: strings.Split(strings.TrimSuffix(text, "\n"), "\n"),
		Size:  int64(len(text)),
		MIME:  "text/plain",
	}
}

func isText(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		if m.Is("text/plain") || strings.HasPrefix(m.String(), "text/") {
			return true
		}
	}
	return false
}
