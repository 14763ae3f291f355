package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventFind             EventType = "find"
	EventFindWords        EventType = "findwords"
	EventFindBarClose     EventType = "findbarclose"
	EventResize           EventType = "resize"
	EventFindStatus       EventType = "findstatus"
	EventFindMatchesCount EventType = "findmatchescount"
	EventDocumentOpen     EventType = "documentopen"
)

// Request types carried by find and findwords events
const (
	RequestNew                = ""
	RequestAgain              = "again"
	RequestHighlightAllChange = "highlightallchange"
	RequestCaseChange         = "casesensitivitychange"
	RequestEntireWordChange   = "entirewordchange"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// FindEvent requests a single-query search
type FindEvent struct {
	Source        string
	RequestType   string
	Query         string
	PhraseSearch  bool
	CaseSensitive bool
	EntireWord    bool
	HighlightAll  bool
	FindPrevious  bool
}

func (e FindEvent) Type() EventType { return EventFind }

// FindWordsEvent requests a multi-keyword search. Query is either one keyword
// or the comma-joined list; an empty query clears keyword highlighting.
type FindWordsEvent struct {
	Source       string
	RequestType  string
	Query        string
	FindPrevious bool
}

func (e FindWordsEvent) Type() EventType { return EventFindWords }

// FindBarCloseEvent is emitted when the find bar closes
type FindBarCloseEvent struct {
	Source string
}

func (e FindBarCloseEvent) Type() EventType { return EventFindBarClose }

// ResizeEvent is emitted when the terminal size changes
type ResizeEvent struct {
	Width  int
	Height int
}

func (e ResizeEvent) Type() EventType { return EventResize }

// FindStatusEvent is reported by the search engine after each request
type FindStatusEvent struct {
	State        FindState
	Previous     bool
	MatchesCount MatchesCount
}

func (e FindStatusEvent) Type() EventType { return EventFindStatus }

// FindMatchesCountEvent reports a match count change without a state change
type FindMatchesCountEvent struct {
	MatchesCount MatchesCount
}

func (e FindMatchesCountEvent) Type() EventType { return EventFindMatchesCount }

// DocumentOpenEvent asks the viewer to load a document
type DocumentOpenEvent struct {
	Path string
}

func (e DocumentOpenEvent) Type() EventType { return EventDocumentOpen }
