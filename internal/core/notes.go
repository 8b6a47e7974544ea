package core

import (
	"fmt"
	"time"
)

// DefaultTimestampFormat stamps note entries to the minute in local time.
const DefaultTimestampFormat = "2006-01-02 15:04"

// NoteAppender formats and appends timestamped note entries.
type NoteAppender struct {
	layout string
	now    func() time.Time
}

// NewNoteAppender returns a NoteAppender using layout (a Go time layout) and
// the given clock. Empty layout and nil clock select the defaults.
func NewNoteAppender(layout string, now func() time.Time) *NoteAppender {
	if layout == "" {
		layout = DefaultTimestampFormat
	}
	if now == nil {
		now = time.Now
	}
	return &NoteAppender{layout: layout, now: now}
}

// Entry renders a single note entry: "[timestamp] text".
func (a *NoteAppender) Entry(text string) string {
	return fmt.Sprintf("[%s] %s", a.now().Local().Format(a.layout), text)
}

// Append adds a new entry after the existing notes, newline separated.
// Existing content is kept byte for byte.
func (a *NoteAppender) Append(notes, text string) string {
	entry := a.Entry(text)
	if notes == "" {
		return entry
	}
	return notes + "\n" + entry
}
