package form

import (
	"fmt"
	"slices"

	"github.com/alexanderramin/tenement/internal/domain"
	"github.com/google/uuid"
)

// NoticeList is the editable notice list of one tenement or collection.
// Entries are addressed by a client-side key so unsaved notices can be
// edited before the server assigns them an id.
type NoticeList struct {
	entries []domain.Notice
	removed []string
}

// NewNoticeList wraps stored notices.
func NewNoticeList(stored []domain.Notice) *NoticeList {
	l := &NoticeList{entries: make([]domain.Notice, 0, len(stored))}
	for _, n := range stored {
		l.Append(n)
	}
	return l
}

// Append adds n at the end and returns its key.
func (l *NoticeList) Append(n domain.Notice) string {
	n.Key = uuid.NewString()
	l.entries = append(l.entries, n)
	return n.Key
}

// Add appends a blank notice and returns its key.
func (l *NoticeList) Add() string {
	return l.Append(domain.Notice{})
}

// Change sets one field of the entry with the given key. The id is not
// editable.
func (l *NoticeList) Change(key, field, value string) error {
	i := l.index(key)
	if i < 0 {
		return fmt.Errorf("notice %s not found", key)
	}
	if field == "id" {
		return fmt.Errorf("%w: id", ErrImmutableField)
	}
	next := l.entries[i]
	if err := set(&next, field, value); err != nil {
		return err
	}
	l.entries[i] = next
	return nil
}

// Remove drops the entry. A stored notice is remembered for deletion; an
// unsaved one simply disappears.
func (l *NoticeList) Remove(key string) error {
	i := l.index(key)
	if i < 0 {
		return fmt.Errorf("notice %s not found", key)
	}
	if id := l.entries[i].ID; id != "" {
		l.removed = append(l.removed, id)
	}
	l.entries = slices.Delete(l.entries, i, i+1)
	return nil
}

// Entries returns the current list in order.
func (l *NoticeList) Entries() []domain.Notice {
	return slices.Clone(l.entries)
}

// KeyOf returns the key of the stored notice with the given id.
func (l *NoticeList) KeyOf(id string) (string, bool) {
	for _, n := range l.entries {
		if n.ID != "" && n.ID == id {
			return n.Key, true
		}
	}
	return "", false
}

// Len returns the number of entries.
func (l *NoticeList) Len() int { return len(l.entries) }

// Batch splits the list into the calls a save needs. Removed entries only
// ever appear as deletions.
func (l *NoticeList) Batch() domain.NoticeBatch {
	var b domain.NoticeBatch
	for _, n := range l.entries {
		if n.ID == "" {
			b.Create = append(b.Create, n)
		} else {
			b.Update = append(b.Update, n)
		}
	}
	b.Delete = slices.Clone(l.removed)
	return b
}

// Saved records that a batch went through: created entries take the ids
// the server returned, in order, and pending deletions are cleared.
func (l *NoticeList) Saved(created []domain.Notice) {
	j := 0
	for i := range l.entries {
		if l.entries[i].ID != "" {
			continue
		}
		if j >= len(created) {
			break
		}
		l.entries[i].ID = created[j].ID
		j++
	}
	l.removed = nil
}

func (l *NoticeList) index(key string) int {
	return slices.IndexFunc(l.entries, func(n domain.Notice) bool { return n.Key == key })
}
