package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tenement/internal/listview"
	"github.com/spf13/pflag"
)

// assignment is one key=value pair from the command line.
type assignment struct {
	Key   string
	Value string
}

// assignments is a repeatable key=value flag. Unlike pflag's StringToString
// it keeps order and repeated keys, so "--filter status=上架 --filter
// status=下架" means either status.
type assignments []assignment

var _ pflag.Value = (*assignments)(nil)

func (a *assignments) String() string {
	parts := make([]string, len(*a))
	for i, kv := range *a {
		parts[i] = kv.Key + "=" + kv.Value
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (a *assignments) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("invalid %q, expected key=value", s)
	}
	*a = append(*a, assignment{Key: key, Value: value})
	return nil
}

func (a *assignments) Type() string { return "key=value" }

// last collapses repeated keys, keeping the final value.
func (a assignments) last() map[string]string {
	out := make(map[string]string, len(a))
	for _, kv := range a {
		out[kv.Key] = kv.Value
	}
	return out
}

// grouped collects every value given for each key.
func (a assignments) grouped() map[string][]string {
	out := make(map[string][]string, len(a))
	for _, kv := range a {
		out[kv.Key] = append(out[kv.Key], kv.Value)
	}
	return out
}

// listFlags are the in-memory filter, search and sort controls shared by
// every list command.
type listFlags struct {
	filter assignments
	search assignments
	sort   string
	desc   bool
}

func (f *listFlags) register(fs *pflag.FlagSet) {
	fs.Var(&f.filter, "filter", "Keep rows whose column matches (column=value, repeatable)")
	fs.Var(&f.search, "search", "Substring search on a searchable column (column=text)")
	fs.StringVar(&f.sort, "sort", "", "Sort by column key")
	fs.BoolVar(&f.desc, "desc", false, "Sort descending")
}

func (f *listFlags) view() listview.View {
	return listview.View{
		Filters:    f.filter.grouped(),
		Search:     f.search.last(),
		SortKey:    f.sort,
		Descending: f.desc,
	}
}

// checkColumns rejects filter, search and sort keys the table does not have.
func checkColumns[R any](t listview.Table[R], f *listFlags) error {
	check := func(flag, key string, want func(listview.Column[R]) bool) error {
		c, ok := t.Column(key)
		if !ok {
			return fmt.Errorf("--%s: unknown column %q", flag, key)
		}
		if want != nil && !want(c) {
			return fmt.Errorf("--%s: column %q does not support it", flag, key)
		}
		return nil
	}
	for _, kv := range f.filter {
		if err := check("filter", kv.Key, nil); err != nil {
			return err
		}
	}
	for _, kv := range f.search {
		if err := check("search", kv.Key, func(c listview.Column[R]) bool { return c.Searchable }); err != nil {
			return err
		}
	}
	if f.sort != "" {
		return check("sort", f.sort, func(c listview.Column[R]) bool { return c.Sorter != nil })
	}
	return nil
}
