// Package listview turns fetched record lists into filtered, searched and
// sorted rows for tabular display. Everything runs over the records already
// in memory.
package listview

import (
	"fmt"
	"sort"
)

// Column describes one table column over records of type R.
type Column[R any] struct {
	Title string
	Key   string
	// Width is the preferred display width in cells; 0 lets the renderer decide.
	Width int
	// Options are the preset values offered for filtering.
	Options []string
	Value   func(R) string
	// Filter overrides the default substring match.
	Filter func(value string, r R) bool
	// Sorter makes the column sortable.
	Sorter     func(a, b R) int
	Searchable bool
}

// Matches reports whether r passes the filter value for this column.
func (c Column[R]) Matches(value string, r R) bool {
	if c.Filter != nil {
		return c.Filter(value, r)
	}
	return Contains(c.Value(r), value)
}

// Row is the display projection of one record.
type Row[R any] struct {
	Key    string
	Record R
	Cells  []string
}

// View is the user's current filter, search and sort choice.
type View struct {
	// Filters maps a column key to accepted values. Values for one column
	// are OR-ed; columns are AND-ed.
	Filters map[string][]string
	// Search maps a searchable column key to a substring.
	Search     map[string]string
	SortKey    string
	Descending bool
}

// Active reports whether the view narrows or reorders anything.
func (v View) Active() bool {
	for _, vals := range v.Filters {
		if len(vals) > 0 {
			return true
		}
	}
	for _, s := range v.Search {
		if s != "" {
			return true
		}
	}
	return v.SortKey != ""
}

// Table binds a column set to a row key.
type Table[R any] struct {
	Columns []Column[R]
	Key     func(R) string
}

// Column looks up a column by key.
func (t Table[R]) Column(key string) (Column[R], bool) {
	for _, c := range t.Columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column[R]{}, false
}

// Titles returns the column titles in display order.
func (t Table[R]) Titles() []string {
	titles := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		titles[i] = c.Title
	}
	return titles
}

// Rows projects records into rows. Duplicate keys get an occurrence suffix
// ("54323#2") so every row key is unique within one build.
func (t Table[R]) Rows(records []R) []Row[R] {
	rows := make([]Row[R], 0, len(records))
	seen := make(map[string]int, len(records))
	for _, r := range records {
		key := t.Key(r)
		seen[key]++
		if n := seen[key]; n > 1 {
			key = fmt.Sprintf("%s#%d", key, n)
		}
		cells := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			cells[i] = c.Value(r)
		}
		rows = append(rows, Row[R]{Key: key, Record: r, Cells: cells})
	}
	return rows
}

// Apply filters, searches and sorts rows, in that order. The input slice is
// not modified. Unknown column keys in v are ignored.
func (t Table[R]) Apply(rows []Row[R], v View) []Row[R] {
	out := make([]Row[R], 0, len(rows))
	for _, row := range rows {
		if t.keep(row.Record, v) {
			out = append(out, row)
		}
	}

	col, ok := t.Column(v.SortKey)
	if !ok || col.Sorter == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if v.Descending {
			return col.Sorter(out[j].Record, out[i].Record) < 0
		}
		return col.Sorter(out[i].Record, out[j].Record) < 0
	})
	return out
}

// Build is Rows followed by Apply.
func (t Table[R]) Build(records []R, v View) []Row[R] {
	return t.Apply(t.Rows(records), v)
}

func (t Table[R]) keep(r R, v View) bool {
	for key, vals := range v.Filters {
		if len(vals) == 0 {
			continue
		}
		col, ok := t.Column(key)
		if !ok {
			continue
		}
		matched := false
		for _, val := range vals {
			if col.Matches(val, r) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for key, term := range v.Search {
		if term == "" {
			continue
		}
		col, ok := t.Column(key)
		if !ok || !col.Searchable {
			continue
		}
		if !Contains(col.Value(r), term) {
			return false
		}
	}
	return true
}
