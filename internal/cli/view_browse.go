package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/alexanderramin/tenement/internal/cli/formatter"
	"github.com/alexanderramin/tenement/internal/listview"
	"github.com/alexanderramin/tenement/internal/resource"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// browseKeys are the key bindings of the list browser.
type browseKeys struct {
	Up, Down, Search, Sort, Reverse, Filter, Reload, Quit key.Binding
}

var defaultBrowseKeys = browseKeys{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Sort:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
	Reverse: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reverse")),
	Filter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
	Reload:  key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reload")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp lists the bindings shown in the help line.
func (k browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Search, k.Sort, k.Reverse, k.Filter, k.Reload, k.Quit}
}

// alertBox keeps the latest alert raised while the browser runs. A
// blocking prompt cannot be shown inside a running program, so alerts are
// drawn in the status line instead.
type alertBox struct {
	mu  sync.Mutex
	msg string
}

func (a *alertBox) Alert(_ context.Context, msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.msg = msg
}

func (a *alertBox) take() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	msg := a.msg
	a.msg = ""
	return msg
}

// browseLoadedMsg carries the result of one list fetch.
type browseLoadedMsg[R any] struct {
	records []R
	err     error
}

// listBrowser is an interactive, filterable view over one record list.
// title is drawn as given, so callers style it.
type listBrowser[R any] struct {
	title  string
	table  listview.Table[R]
	load   func(ctx context.Context) ([]R, error)
	scope  *resource.Scope
	alerts *alertBox
	keys   browseKeys

	rows    []listview.Row[R]
	total   int
	view    listview.View
	cursor  int
	loading bool
	err     error
	alert   string

	searchKey string
	searching bool

	sortable []string
	sortIdx  int

	filterKey  string
	filterOpts []string
	filterIdx  int

	quitting bool
}

func newListBrowser[R any](title string, t listview.Table[R], load func(context.Context) ([]R, error), scope *resource.Scope, alerts *alertBox) *listBrowser[R] {
	b := &listBrowser[R]{
		title:     title,
		table:     t,
		load:      load,
		scope:     scope,
		alerts:    alerts,
		keys:      defaultBrowseKeys,
		loading:   true,
		sortIdx:   -1,
		filterIdx: -1,
		view:      listview.View{Filters: map[string][]string{}, Search: map[string]string{}},
	}
	for _, c := range t.Columns {
		if c.Searchable && b.searchKey == "" {
			b.searchKey = c.Key
		}
		if c.Sorter != nil {
			b.sortable = append(b.sortable, c.Key)
		}
		if len(c.Options) > 0 && b.filterKey == "" {
			b.filterKey = c.Key
			b.filterOpts = c.Options
		}
	}
	return b
}

func (b *listBrowser[R]) Init() tea.Cmd {
	return b.fetch()
}

func (b *listBrowser[R]) fetch() tea.Cmd {
	load := b.load
	return func() tea.Msg {
		records, err := load(context.Background())
		return browseLoadedMsg[R]{records: records, err: err}
	}
}

func (b *listBrowser[R]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case browseLoadedMsg[R]:
		if errors.Is(msg.err, resource.ErrClosed) {
			return b, nil
		}
		b.loading = false
		b.alert = b.alerts.take()
		b.err = msg.err
		if msg.err == nil {
			b.rows = b.table.Rows(msg.records)
			b.total = len(msg.records)
			b.clampCursor()
		}
		return b, nil

	case tea.KeyMsg:
		if b.searching {
			return b.updateSearch(msg)
		}
		return b.updateNormal(msg)
	}
	return b, nil
}

func (b *listBrowser[R]) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Quit):
		b.quitting = true
		b.scope.Close()
		return b, tea.Quit
	case key.Matches(msg, b.keys.Up):
		if b.cursor > 0 {
			b.cursor--
		}
	case key.Matches(msg, b.keys.Down):
		if b.cursor < len(b.visible())-1 {
			b.cursor++
		}
	case key.Matches(msg, b.keys.Search):
		if b.searchKey != "" {
			b.searching = true
		}
	case key.Matches(msg, b.keys.Sort):
		if len(b.sortable) > 0 {
			b.sortIdx = (b.sortIdx+2)%(len(b.sortable)+1) - 1
			b.view.SortKey = ""
			if b.sortIdx >= 0 {
				b.view.SortKey = b.sortable[b.sortIdx]
			}
		}
	case key.Matches(msg, b.keys.Reverse):
		b.view.Descending = !b.view.Descending
	case key.Matches(msg, b.keys.Filter):
		if len(b.filterOpts) > 0 {
			b.filterIdx = (b.filterIdx+2)%(len(b.filterOpts)+1) - 1
			delete(b.view.Filters, b.filterKey)
			if b.filterIdx >= 0 {
				b.view.Filters[b.filterKey] = []string{b.filterOpts[b.filterIdx]}
			}
			b.clampCursor()
		}
	case key.Matches(msg, b.keys.Reload):
		b.loading = true
		return b, b.fetch()
	}
	return b, nil
}

func (b *listBrowser[R]) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	term := b.view.Search[b.searchKey]
	switch msg.Type {
	case tea.KeyEsc:
		b.searching = false
		term = ""
	case tea.KeyEnter:
		b.searching = false
	case tea.KeyBackspace:
		if r := []rune(term); len(r) > 0 {
			term = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		term += string(msg.Runes)
	}
	b.view.Search[b.searchKey] = term
	b.cursor = 0
	return b, nil
}

func (b *listBrowser[R]) visible() []listview.Row[R] {
	return b.table.Apply(b.rows, b.view)
}

func (b *listBrowser[R]) clampCursor() {
	if n := len(b.visible()); b.cursor >= n {
		b.cursor = max(n-1, 0)
	}
}

// status describes the active sort and filter.
func (b *listBrowser[R]) status() string {
	var parts []string
	if b.filterIdx >= 0 {
		c, _ := b.table.Column(b.filterKey)
		parts = append(parts, c.Title+": "+b.filterOpts[b.filterIdx])
	}
	if b.view.SortKey != "" {
		c, _ := b.table.Column(b.view.SortKey)
		dir := "↑"
		if b.view.Descending {
			dir = "↓"
		}
		parts = append(parts, "排序 "+c.Title+" "+dir)
	}
	return strings.Join(parts, "  ")
}

func (b *listBrowser[R]) View() string {
	if b.quitting {
		return ""
	}

	var s strings.Builder
	s.WriteString("\n  " + b.title)
	if st := b.status(); st != "" {
		s.WriteString("  " + formatter.Dim(st))
	}
	s.WriteString("\n\n")

	if b.alert != "" {
		s.WriteString("  " + formatter.Failure(b.alert) + "\n\n")
	}
	if b.loading {
		s.WriteString("  " + formatter.Dim("載入中...") + "\n")
		return s.String()
	}
	if b.err != nil {
		s.WriteString("  " + formatter.Failure(formatter.ReadError) + "\n")
		if len(b.rows) == 0 {
			return s.String()
		}
		s.WriteString("\n")
	}

	if b.searching || b.view.Search[b.searchKey] != "" {
		c, _ := b.table.Column(b.searchKey)
		cursor := ""
		if b.searching {
			cursor = "█"
		}
		s.WriteString("  " + formatter.StyleYellow.Render("/") + " " + formatter.Dim(c.Title+": ") + b.view.Search[b.searchKey] + cursor + "\n\n")
	}

	visible := b.visible()
	if len(visible) == 0 {
		s.WriteString("  " + formatter.RenderEmpty("符合條件的資料") + "\n")
	} else {
		headers := append([]string{""}, b.table.Titles()...)
		rows := make([][]string, len(visible))
		for i, r := range visible {
			marker := ""
			if i == b.cursor {
				marker = formatter.StyleGreen.Render("▸")
			}
			cells := make([]string, 0, len(r.Cells)+1)
			cells = append(cells, marker)
			for _, c := range r.Cells {
				if i == b.cursor {
					c = formatter.Bold(c)
				}
				cells = append(cells, c)
			}
			rows[i] = cells
		}
		for _, line := range strings.Split(strings.TrimRight(formatter.RenderTable(headers, rows), "\n"), "\n") {
			s.WriteString("  " + line + "\n")
		}
	}

	s.WriteString("\n  " + formatter.Dim(fmt.Sprintf("%d / %d 筆", len(visible), b.total)) + "\n")
	s.WriteString("  " + b.help() + "\n")
	return s.String()
}

func (b *listBrowser[R]) help() string {
	var parts []string
	for _, k := range b.keys.ShortHelp() {
		h := k.Help()
		parts = append(parts, formatter.StyleFg.Render(h.Key)+" "+formatter.Dim(h.Desc))
	}
	return strings.Join(parts, formatter.Dim(" • "))
}
