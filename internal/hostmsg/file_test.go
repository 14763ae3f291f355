package hostmsg

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findbar/internal/domain"
)

func TestWatchFileDeliversExistingContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keywords.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"keywords":[{"keyword":"a","type":"FIXED"},{"keyword":"b","type":"PERSONAL","id":"k2"}]}`), 0o644))

	policy, err := NewOriginPolicy("", []string{"file://*"})
	require.NoError(t, err)
	hub := NewHub(policy)
	var got []domain.HostParams
	hub.Subscribe(func(p domain.HostParams) { got = append(got, p) })

	fs, err := WatchFile(path, hub)
	require.NoError(t, err)
	defer fs.Close()

	require.Len(t, got, 1)
	assert.Len(t, got[0].Keywords, 2)
	assert.Equal(t, "k2", got[0].Keywords[1].ID)
}

func TestFileOriginIsAbsolute(t *testing.T) {
	o := FileOrigin("keywords.json")
	assert.True(t, strings.HasPrefix(o, "file:///"), o)
	assert.True(t, strings.HasSuffix(o, "/keywords.json"), o)
}

func TestOutboxSinkAppendsJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "outbox.ndjson")
	sink, err := NewOutboxSink(path)
	require.NoError(t, err)

	sink.Post(SaveKey("deposit", "k1"))
	sink.Post(SaveKey("", ""))
	sink.Post(DeleteKey(""))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var got []Outbound
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var m Outbound
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		got = append(got, m)
	}
	assert.Equal(t, []Outbound{SaveKey("deposit", "k1"), DeleteKey("")}, got)
}
