package domain

// KeywordKind distinguishes host-supplied read-only keywords from user-editable ones
type KeywordKind string

const (
	KindFixed    KeywordKind = "FIXED"
	KindEditable KeywordKind = "EDITABLE"
)

// KeywordEntry is one stored phrase eligible for search
type KeywordEntry struct {
	ID      string // empty for fixed entries and for editable entries never persisted
	Keyword string
	Kind    KeywordKind
}

// Editable reports whether the entry exposes save/delete controls
func (e KeywordEntry) Editable() bool {
	return e.Kind == KindEditable
}

// HostParams is the host-supplied configuration delivered by an inbound message
type HostParams struct {
	Path     string
	Keywords []KeywordEntry
}

// SearchQuery is the snapshot sent to the search engine for a single-query search
type SearchQuery struct {
	Text          string
	CaseSensitive bool
	EntireWord    bool
	HighlightAll  bool
	PhraseSearch  bool
}

// FindState is the search engine's verdict for the last request
type FindState int

const (
	FindFound FindState = iota
	FindNotFound
	FindWrapped
	FindPending
)

func (s FindState) String() string {
	switch s {
	case FindFound:
		return "found"
	case FindNotFound:
		return "notfound"
	case FindWrapped:
		return "wrapped"
	case FindPending:
		return "pending"
	default:
		return "unknown"
	}
}

// MatchesCount is the current match position and total reported by the search engine
type MatchesCount struct {
	Current int
	Total   int
}
