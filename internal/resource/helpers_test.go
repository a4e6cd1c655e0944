package resource

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/tenement/internal/api"
	"github.com/alexanderramin/tenement/internal/session"
	"github.com/alexanderramin/tenement/internal/testutil"
)

type alertLog struct {
	mu   sync.Mutex
	msgs []string
}

func (a *alertLog) Alert(_ context.Context, msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.msgs = append(a.msgs, msg)
}

func (a *alertLog) all() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.msgs...)
}

type fixture struct {
	api    *testutil.MockAPI
	alerts *alertLog
	sess   *session.Context
	env    Env
}

func newFixture(t *testing.T, token string) *fixture {
	t.Helper()
	mock := testutil.NewMockAPI(t)
	sess := session.NewMemory(token)
	alerts := &alertLog{}
	return &fixture{
		api:    mock,
		alerts: alerts,
		sess:   sess,
		env: Env{
			API:     api.NewClient(mock.URL, sess, nil),
			Session: sess,
			Alerts:  alerts,
		},
	}
}
