package faq

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateID   = errors.New("duplicate entry id")
	ErrEmptyID       = errors.New("entry id is empty")
	ErrEmptyKeywords = errors.New("entry has no keywords")
)

// Entry is a single canned answer in the knowledge base.
type Entry struct {
	ID       string   `yaml:"id" json:"id"`
	Keywords []string `yaml:"keywords" json:"keywords"`
	Content  string   `yaml:"content" json:"content"`
	// CatchAll entries are allowed to carry no keywords.
	CatchAll bool `yaml:"catch_all,omitempty" json:"catch_all,omitempty"`
}

// clone copies e so the caller cannot reach the stored keyword slice.
func (e Entry) clone() Entry {
	e.Keywords = append([]string(nil), e.Keywords...)
	return e
}

type indexedEntry struct {
	entry Entry
	terms map[string]struct{}
}

// KnowledgeBase is an ordered, immutable list of entries with their term sets
// computed once at construction.
type KnowledgeBase struct {
	entries []indexedEntry
}

// NewKnowledgeBase validates entries and precomputes the matching terms of
// each one. Order is preserved; it decides ties during matching.
func NewKnowledgeBase(entries []Entry) (*KnowledgeBase, error) {
	seen := make(map[string]struct{}, len(entries))
	indexed := make([]indexedEntry, 0, len(entries))

	for i, e := range entries {
		if strings.TrimSpace(e.ID) == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyID)
		}
		if _, ok := seen[e.ID]; ok {
			return nil, fmt.Errorf("entry %q: %w", e.ID, ErrDuplicateID)
		}
		seen[e.ID] = struct{}{}

		keywords := normalizeKeywords(e.Keywords)
		if len(keywords) == 0 && !e.CatchAll {
			return nil, fmt.Errorf("entry %q: %w", e.ID, ErrEmptyKeywords)
		}

		terms := tokenSet(strings.ToLower(e.Content))
		for _, k := range keywords {
			terms[k] = struct{}{}
		}

		stored := e
		stored.Keywords = keywords
		indexed = append(indexed, indexedEntry{entry: stored, terms: terms})
	}

	return &KnowledgeBase{entries: indexed}, nil
}

// MustKnowledgeBase is like NewKnowledgeBase but panics on invalid input.
// Intended for package-level fixed lists.
func MustKnowledgeBase(entries []Entry) *KnowledgeBase {
	kb, err := NewKnowledgeBase(entries)
	if err != nil {
		panic(err)
	}
	return kb
}

// Len returns the number of entries.
func (kb *KnowledgeBase) Len() int {
	return len(kb.entries)
}

// Entries returns a copy of the entries in their fixed order.
func (kb *KnowledgeBase) Entries() []Entry {
	out := make([]Entry, len(kb.entries))
	for i, ie := range kb.entries {
		out[i] = ie.entry.clone()
	}
	return out
}

// Lookup returns the entry with the given id.
func (kb *KnowledgeBase) Lookup(id string) (Entry, bool) {
	for _, ie := range kb.entries {
		if ie.entry.ID == id {
			return ie.entry.clone(), true
		}
	}
	return Entry{}, false
}

// normalizeKeywords lowercases and deduplicates keywords, keeping first-seen order.
// Multi-word keywords are kept whole.
func normalizeKeywords(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
