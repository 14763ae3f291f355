// Package hostmsg carries messages between the find bar and its embedding host:
// keyword sets inbound, persistence requests outbound.
package hostmsg

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"findbar/internal/domain"
)

var (
	ErrEmptyPayload   = errors.New("hostmsg: empty payload")
	ErrInvalidEntry   = errors.New("hostmsg: invalid keyword entry")
	ErrUnknownEvent   = errors.New("hostmsg: unknown outbound event")
	ErrOriginRejected = errors.New("hostmsg: origin rejected")
)

// wireKeyword is one keyword as the host sends it
type wireKeyword struct {
	ID      *string `json:"id"`
	Keyword string  `json:"keyword"`
	Type    string  `json:"type"`
}

// wireParams is the inbound payload
type wireParams struct {
	Path     string         `json:"path,omitempty"`
	Keywords *[]wireKeyword `json:"keywords"`
}

// kindAliases maps every accepted wire kind onto the two entry kinds.
// NON_STANDARD, CUSTOM and PERSONAL are the names older hosts send.
var kindAliases = map[string]domain.KeywordKind{
	"FIXED":        domain.KindFixed,
	"NON_STANDARD": domain.KindFixed,
	"CUSTOM":       domain.KindFixed,
	"EDITABLE":     domain.KindEditable,
	"PERSONAL":     domain.KindEditable,
}

// DecodeParams parses and validates an inbound payload.
// A payload without a keywords field is empty; any invalid entry rejects the whole payload.
func DecodeParams(data []byte) (domain.HostParams, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return domain.HostParams{}, ErrEmptyPayload
	}

	var wp wireParams
	if err := json.Unmarshal(trimmed, &wp); err != nil {
		return domain.HostParams{}, fmt.Errorf("hostmsg: decode payload: %w", err)
	}
	if wp.Keywords == nil {
		return domain.HostParams{}, ErrEmptyPayload
	}

	params := domain.HostParams{
		Path:     strings.TrimSpace(wp.Path),
		Keywords: make([]domain.KeywordEntry, 0, len(*wp.Keywords)),
	}
	for i, wk := range *wp.Keywords {
		entry, err := wk.entry()
		if err != nil {
			return domain.HostParams{}, fmt.Errorf("keyword %d: %w", i, err)
		}
		params.Keywords = append(params.Keywords, entry)
	}
	return params, nil
}

func (wk wireKeyword) entry() (domain.KeywordEntry, error) {
	if strings.TrimSpace(wk.Keyword) == "" {
		return domain.KeywordEntry{}, fmt.Errorf("%w: blank keyword", ErrInvalidEntry)
	}
	kind, ok := kindAliases[strings.ToUpper(strings.TrimSpace(wk.Type))]
	if !ok {
		return domain.KeywordEntry{}, fmt.Errorf("%w: unknown type %q", ErrInvalidEntry, wk.Type)
	}

	entry := domain.KeywordEntry{Keyword: wk.Keyword, Kind: kind}
	// Only editable entries are addressable by the host
	if kind == domain.KindEditable && wk.ID != nil {
		entry.ID = strings.TrimSpace(*wk.ID)
	}
	return entry, nil
}

// EncodeParams renders params in the inbound wire shape. Hosts written in Go and tests use it.
func EncodeParams(p domain.HostParams) ([]byte, error) {
	kws := make([]wireKeyword, len(p.Keywords))
	for i, e := range p.Keywords {
		kws[i] = wireKeyword{Keyword: e.Keyword, Type: string(e.Kind)}
		if e.ID != "" {
			id := e.ID
			kws[i].ID = &id
		}
	}
	return json.Marshal(wireParams{Path: p.Path, Keywords: &kws})
}

// EventKind tags an outbound message
type EventKind string

const (
	EventSaveKey   EventKind = "saveKey"
	EventDeleteKey EventKind = "deleteKey"
)

// OutboundParams is the body of an outbound message. ID is omitted for entries never persisted.
type OutboundParams struct {
	Keyword string `json:"keyword,omitempty"`
	ID      string `json:"id,omitempty"`
}

// Outbound is a fire-and-forget request to the host
type Outbound struct {
	Event  EventKind      `json:"event"`
	Params OutboundParams `json:"params"`
}

// SaveKey asks the host to persist keyword; id is empty for a new entry
func SaveKey(keyword, id string) Outbound {
	return Outbound{Event: EventSaveKey, Params: OutboundParams{Keyword: keyword, ID: id}}
}

// DeleteKey asks the host to delete an entry; id is empty for an entry never persisted
func DeleteKey(id string) Outbound {
	return Outbound{Event: EventDeleteKey, Params: OutboundParams{ID: id}}
}

// Validate checks the message against its tag
func (o Outbound) Validate() error {
	switch o.Event {
	case EventSaveKey:
		if strings.TrimSpace(o.Params.Keyword) == "" {
			return fmt.Errorf("%w: saveKey without keyword", ErrInvalidEntry)
		}
	case EventDeleteKey:
		if o.Params.Keyword != "" {
			return fmt.Errorf("%w: deleteKey carries a keyword", ErrInvalidEntry)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, o.Event)
	}
	return nil
}
