package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tenement/internal/domain"
	"github.com/alexanderramin/tenement/internal/form"
)

// parseScope accepts "collection" or any tenement kind spelling.
func parseScope(s string) (domain.NoticeScope, error) {
	if strings.EqualFold(strings.TrimSpace(s), string(domain.NoticeCollection)) {
		return domain.NoticeCollection, nil
	}
	kind, err := domain.ParseTenementKind(s)
	if err != nil {
		return "", fmt.Errorf("unknown notice scope %q (want collection, rent, sell, develop or market)", s)
	}
	return domain.NoticeScopeFor(kind), nil
}

// appendNotice adds one notice written on the command line to l. The text
// is either a bare record, or field=value pairs separated by ";", e.g.
// "record=看屋;remindDate=2024-06-01".
func appendNotice(l *form.NoticeList, text string) error {
	key := l.Add()
	if !strings.Contains(text, "=") {
		return l.Change(key, "record", text)
	}
	for _, part := range strings.Split(text, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		var kv assignments
		if err := kv.Set(part); err != nil {
			return err
		}
		if err := l.Change(key, kv[0].Key, kv[0].Value); err != nil {
			return err
		}
	}
	return nil
}
