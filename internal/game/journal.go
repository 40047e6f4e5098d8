package game

import (
	"fmt"
	"strings"
)

// Journal categories.
const (
	CatCursor  = "cursor"
	CatMode    = "mode"
	CatSelect  = "select"
	CatScore   = "score"
	CatTooltip = "tooltip"
)

// JournalEntry is one recorded state change.
type JournalEntry struct {
	Event    int    // index of the input event that caused it
	Category string // cursor, mode, select, score, tooltip
	Key      string // specific change within the category
	Value    string // human-readable detail
}

// String formats the entry as a fixed-width log line.
//
//	[E=012] select   add              (3,4)
func (e JournalEntry) String() string {
	return fmt.Sprintf("[E=%03d] %-8s %-16s %s", e.Event, e.Category, e.Key, e.Value)
}

// Journal collects structured state changes, one batch per input event.
// It is unbounded and meant for tests and the headless report; the on-screen
// tooltip panel is the bounded, human-facing view.
type Journal struct {
	entries []JournalEntry
	event   int
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Begin starts a new input event and returns its index.
func (j *Journal) Begin() int {
	j.event++
	return j.event
}

// Events returns how many input events were recorded.
func (j *Journal) Events() int { return j.event }

// Add records an entry against the current event.
func (j *Journal) Add(category, key, value string) {
	j.entries = append(j.entries, JournalEntry{
		Event:    j.event,
		Category: category,
		Key:      key,
		Value:    value,
	})
}

// Entries returns all recorded entries.
func (j *Journal) Entries() []JournalEntry {
	return j.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (j *Journal) Filter(category, key string) []JournalEntry {
	var out []JournalEntry
	for _, e := range j.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match category and key.
func (j *Journal) Count(category, key string) int {
	return len(j.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (j *Journal) LastOf(category, key string) (JournalEntry, bool) {
	entries := j.Filter(category, key)
	if len(entries) == 0 {
		return JournalEntry{}, false
	}
	return entries[len(entries)-1], true
}

// Format returns the full journal as a single string for t.Log output.
func (j *Journal) Format() string {
	var sb strings.Builder
	for _, e := range j.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
