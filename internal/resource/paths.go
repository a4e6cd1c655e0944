package resource

import (
	"fmt"
	"net/url"
	"strings"
)

// path joins escaped segments below a fixed prefix:
// path("/user", "7") == "/user/7".
func path(prefix string, segments ...string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

func withQuery(p, rawQuery string) string {
	if rawQuery == "" {
		return p
	}
	return p + "?" + rawQuery
}

func itoa(n int) string { return fmt.Sprintf("%d", n) }
