package hostmsg

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// FileOrigin is the origin reported for payloads read from a local file
func FileOrigin(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return "file://" + filepath.ToSlash(abs)
}

// FileSource re-delivers a keywords file to the hub every time it is written
type FileSource struct {
	path    string
	hub     *Hub
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// WatchFile delivers the current file contents, if any, and then watches for changes.
// The parent directory is watched so editors that replace the file are picked up.
func WatchFile(path string, hub *Hub) (*FileSource, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	fs := &FileSource{path: abs, hub: hub, watcher: w, done: make(chan struct{})}
	if _, err := os.Stat(abs); err == nil {
		fs.load()
	}
	go fs.loop()
	return fs, nil
}

func (fs *FileSource) loop() {
	defer close(fs.done)
	for {
		select {
		case event, ok := <-fs.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != fs.path {
				continue
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
				fs.load()
			}
		case err, ok := <-fs.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("hostmsg: file watch error", "path", fs.path, "error", err)
		}
	}
}

func (fs *FileSource) load() {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		slog.Warn("hostmsg: read keywords file", "path", fs.path, "error", err)
		return
	}
	// Delivery errors are already logged by the hub
	_ = fs.hub.Deliver(FileOrigin(fs.path), data)
}

// Close stops watching
func (fs *FileSource) Close() error {
	err := fs.watcher.Close()
	<-fs.done
	return err
}

// OutboxSink appends outbound messages as JSON lines to a file
type OutboxSink struct {
	mu   sync.Mutex
	path string
}

// NewOutboxSink creates the file's directory if needed
func NewOutboxSink(path string) (*OutboxSink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create outbox directory: %w", err)
	}
	return &OutboxSink{path: path}, nil
}

// Post appends msg. Write failures are logged and otherwise ignored.
func (o *OutboxSink) Post(msg Outbound) {
	if err := msg.Validate(); err != nil {
		slog.Warn("hostmsg: refusing invalid outbound message", "error", err)
		return
	}
	line, err := json.Marshal(msg)
	if err != nil {
		slog.Warn("hostmsg: marshal outbound", "error", err)
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	f, err := os.OpenFile(o.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.Warn("hostmsg: open outbox", "path", o.path, "error", err)
		return
	}
	defer f.Close()
	if _, err := f.Write(append(line, '\n')); err != nil {
		slog.Warn("hostmsg: write outbox", "path", o.path, "error", err)
	}
}
