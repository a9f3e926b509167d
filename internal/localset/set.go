// Package localset holds the device-resident working set of event
// identifiers a visitor curates before saving an itinerary. The set is
// anonymous: no account, no server-side state, just a cookie.
package localset

import (
	"encoding/json"
	"strings"
)

// Set is a deduplicated collection of event identifiers. Insertion order
// is preserved so the visitor's list renders stably across reloads.
type Set struct {
	ids   []string
	index map[string]struct{}
}

func New() *Set {
	return &Set{index: make(map[string]struct{})}
}

// FromIDs builds a set from a raw identifier list, dropping blanks and
// duplicates while keeping first-seen order.
func FromIDs(ids []string) *Set {
	s := New()
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id if absent. Adding an existing or blank id is a no-op.
func (s *Set) Add(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = struct{}{}
	s.ids = append(s.ids, id)
	return true
}

// Remove deletes id if present.
func (s *Set) Remove(id string) bool {
	id = strings.TrimSpace(id)
	if _, ok := s.index[id]; !ok {
		return false
	}
	delete(s.index, id)
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return true
}

func (s *Set) Has(id string) bool {
	_, ok := s.index[strings.TrimSpace(id)]
	return ok
}

func (s *Set) Clear() {
	s.ids = nil
	s.index = make(map[string]struct{})
}

func (s *Set) Count() int {
	return len(s.ids)
}

// IDs returns a copy of the identifiers in insertion order.
func (s *Set) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Merge applies every identifier from src with add-if-absent semantics
// and returns how many were actually added. Merging twice is the same as
// merging once.
func (s *Set) Merge(src []string) int {
	added := 0
	for _, id := range src {
		if s.Add(id) {
			added++
		}
	}
	return added
}

// MergePreview splits src into identifiers already present and those
// that would be added, without mutating the set.
func (s *Set) MergePreview(src []string) (already, fresh []string) {
	already = []string{}
	fresh = []string{}
	seen := make(map[string]struct{})
	for _, id := range src {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if s.Has(id) {
			already = append(already, id)
		} else {
			fresh = append(fresh, id)
		}
	}
	return already, fresh
}

// Encode serializes the set as a JSON array of identifiers.
func (s *Set) Encode() string {
	b, err := json.Marshal(s.ids)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// Decode rebuilds a set from stored data. Malformed or missing data
// yields an empty set, never an error: local-set corruption silently
// resets rather than surfacing to the visitor.
func Decode(raw string) *Set {
	if raw == "" {
		return New()
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return New()
	}
	return FromIDs(ids)
}
