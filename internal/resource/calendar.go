package resource

import (
	"context"
	"net/http"

	"github.com/alexanderramin/tenement/internal/api"
	"github.com/alexanderramin/tenement/internal/domain"
)

// Month selects one calendar page. Month is 1-based.
type Month struct {
	Year  int
	Month int
}

// CalendarHooks loads month views of tenement and collection events.
type CalendarHooks struct {
	Tenements   *Query[Month, []domain.CalendarDay]
	Collections *Query[Month, []domain.CalendarDay]
}

func NewCalendarHooks(env Env) *CalendarHooks {
	month := func(name, prefix string) *Query[Month, []domain.CalendarDay] {
		return NewQuery(name, func(ctx context.Context, m Month) ([]domain.CalendarDay, error) {
			return api.Fetch[[]domain.CalendarDay](ctx, env.API, http.MethodGet, path(prefix, itoa(m.Year), itoa(m.Month)), nil, domain.CalendarShape)
		}, env.with(WithAlert(MsgFetchFailed))...)
	}
	return &CalendarHooks{
		Tenements:   month("calendar.tenements", "/calender"),
		Collections: month("calendar.collections", "/calender/collection"),
	}
}
