package league

import (
	"encoding/json"
	"errors"
	"fmt"
)

// EntryKind discriminates schedule entries.
type EntryKind string

const (
	KindMatch EntryKind = "match"
	KindBreak EntryKind = "break"
)

// Entry is one schedule item: exactly one of Break or Match is set.
type Entry struct {
	Break *Break
	Match *Match
}

// BreakEntry wraps b as a schedule entry.
func BreakEntry(b Break) Entry {
	return Entry{Break: &b}
}

// MatchEntry wraps m as a schedule entry.
func MatchEntry(m Match) Entry {
	return Entry{Match: &m}
}

// Kind reports which variant the entry holds.
func (e Entry) Kind() EntryKind {
	if e.Break != nil {
		return KindBreak
	}
	return KindMatch
}

func (e Entry) check() error {
	switch {
	case e.Break != nil && e.Match != nil:
		return errors.New("entry holds both a break and a match")
	case e.Break == nil && e.Match == nil:
		return errors.New("entry holds neither a break nor a match")
	}
	return nil
}

// UnmarshalJSON decodes the variant selected by the "type" field. A
// missing type is a match.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	switch EntryKind(head.Type) {
	case KindBreak:
		var b Break
		if err := json.Unmarshal(data, &b); err != nil {
			return fmt.Errorf("break entry: %w", err)
		}
		*e = Entry{Break: &b}
	case "", KindMatch:
		var m Match
		if err := json.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("match entry: %w", err)
		}
		*e = Entry{Match: &m}
	default:
		return fmt.Errorf("unknown schedule entry type %q", head.Type)
	}
	return nil
}

// MarshalJSON writes the entry back in the document's flat shape.
func (e Entry) MarshalJSON() ([]byte, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	if e.Break != nil {
		return json.Marshal(struct {
			Type EntryKind `json:"type"`
			*Break
		}{KindBreak, e.Break})
	}
	return json.Marshal(struct {
		Type EntryKind `json:"type"`
		*Match
	}{KindMatch, e.Match})
}
