package resource

import (
	"context"
	"net/http"
	"testing"

	"github.com/alexanderramin/tenement/internal/api"
	"github.com/alexanderramin/tenement/internal/db"
	"github.com/alexanderramin/tenement/internal/domain"
	"github.com/alexanderramin/tenement/internal/repository"
	"github.com/alexanderramin/tenement/internal/schema"
	"github.com/alexanderramin/tenement/internal/session"
	"github.com/alexanderramin/tenement/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_LoginStoresToken(t *testing.T) {
	f := newFixture(t, "")
	database := testutil.NewTestDB(t)
	tokens := repository.NewTokenStore(repository.NewSQLiteKVStore(database), db.NewSQLiteUnitOfWork(database))
	sess, err := session.Open(context.Background(), tokens)
	require.NoError(t, err)
	f.env.Session = sess
	f.env.API = api.NewClient(f.api.URL, sess, nil)

	f.api.Reply(http.MethodPost, "/user/login", map[string]string{"token": "T1"})

	auth := NewAuth(f.env)
	assert.False(t, auth.IsLogin())

	_, err = auth.Login.Run(context.Background(), domain.Credentials{UserEmail: "a@b.com", UserPassword: "x"})
	require.NoError(t, err)

	assert.True(t, auth.IsLogin())
	assert.Equal(t, "T1", sess.Token())
	stored, err := tokens.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "T1", stored)

	var body domain.Credentials
	f.api.Calls(http.MethodPost, "/user/login")[0].JSON(t, &body)
	assert.Equal(t, domain.Credentials{UserEmail: "a@b.com", UserPassword: "x"}, body)

	f.api.Reply(http.MethodGet, "/user/auth", map[string]bool{"isadmin": true})
	role, err := auth.Role.Load(context.Background(), api.None{})
	require.NoError(t, err)
	assert.True(t, role.IsAdmin)
	assert.Equal(t, "Bearer T1", f.api.Calls(http.MethodGet, "/user/auth")[0].Auth)

	require.NoError(t, auth.Logout(context.Background()))
	assert.False(t, auth.IsLogin())
	stored, err = tokens.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestAuth_LoginFailure(t *testing.T) {
	f := newFixture(t, "")
	f.api.Fail(http.MethodPost, "/user/login", http.StatusUnauthorized)

	auth := NewAuth(f.env)
	_, err := auth.Login.Run(context.Background(), domain.Credentials{UserEmail: "a@b.com", UserPassword: "bad"})

	assert.True(t, api.IsStatus(err, http.StatusUnauthorized))
	assert.False(t, auth.IsLogin())
	assert.Equal(t, []string{MsgLoginFailed}, f.alerts.all())
}

func TestMutation_ServerErrorAlertsOnce(t *testing.T) {
	f := newFixture(t, "T1")
	hooks := NewCollectionHooks(f.env)

	f.api.Reply(http.MethodPut, "/collection/7", nil)
	first := testutil.NewTestCollection("管理費")
	first.CollectionID = "7"
	_, err := hooks.Update.Run(context.Background(), first)
	require.NoError(t, err)
	require.True(t, hooks.Update.Done())
	prior := hooks.Update.State()

	f.api.Fail(http.MethodPut, "/collection/7", http.StatusInternalServerError)
	_, err = hooks.Update.Run(context.Background(), first)

	var se *api.StatusError
	require.ErrorAs(t, err, &se)
	st := hooks.Update.State()
	assert.True(t, st.IsError())
	assert.False(t, st.IsLoading())
	assert.False(t, hooks.Update.Done())
	assert.Equal(t, prior.Data, st.Data)
	assert.Equal(t, prior.HasData, st.HasData)
	assert.Equal(t, []string{MsgOperationFailed}, f.alerts.all())
}

func TestMutation_ValidationFailureIsError(t *testing.T) {
	f := newFixture(t, "T1")
	hooks := NewNoticeHooks(f.env)
	f.api.Reply(http.MethodPost, "/notices/rent/9", []map[string]any{{"id": 1}})

	_, err := hooks.Create.Run(context.Background(), NoticeWrite{
		Target:  NoticeTarget{Scope: domain.NoticeRent, ParentID: "9"},
		Notices: []domain.Notice{{Record: "看屋紀錄"}},
	})

	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, hooks.Create.State().IsError())
	assert.Len(t, f.alerts.all(), 1)
}

func TestTenementHooks_List(t *testing.T) {
	f := newFixture(t, "")
	rows := []domain.TenementListItem{
		testutil.NewTestTenementRow(54323, domain.KindRent, "上架"),
		testutil.NewTestTenementRow(12, domain.KindSell, "下架"),
	}
	f.api.Reply(http.MethodGet, "/tenements", rows)

	hooks := NewTenementHooks(f.env)
	got, err := hooks.List.Load(context.Background(), "tenement_status=%E4%B8%8A%E6%9E%B6")
	require.NoError(t, err)

	assert.Equal(t, rows, got)
	assert.Equal(t, "tenement_status=%E4%B8%8A%E6%9E%B6", f.api.Calls(http.MethodGet, "/tenements")[0].Query)
}

func TestTenementHooks_ListShapeDrift(t *testing.T) {
	f := newFixture(t, "")
	f.api.Reply(http.MethodGet, "/tenements/sell", []map[string]any{{"tenement_address": "not a number"}})

	hooks := NewTenementHooks(f.env)
	_, err := hooks.SellList.Load(context.Background(), "")

	require.Error(t, err)
	assert.True(t, hooks.SellList.State().IsError())
	assert.Equal(t, []string{MsgFetchFailed}, f.alerts.all())
}

func TestTenementHooks_SaveAndRefetchRoundTrip(t *testing.T) {
	f := newFixture(t, "T1")
	var stored domain.TenementSell
	f.api.Handle(http.MethodPost, "/tenement/edit/sell/5", func(w http.ResponseWriter, r *http.Request) {
		req := f.api.Calls(http.MethodPost, "/tenement/edit/sell/5")
		req[len(req)-1].JSON(t, &stored)
		testutil.WriteEnvelope(w, http.StatusOK, nil)
	})
	f.api.Handle(http.MethodGet, "/tenement/edit/sell/5", func(w http.ResponseWriter, r *http.Request) {
		testutil.WriteEnvelope(w, http.StatusOK, stored)
	})

	hooks := NewTenementHooks(f.env)
	sent := testutil.NewTestSell("台北市信義路5號")
	sent.TenementID = "5"

	_, err := hooks.SaveSell.Run(context.Background(), sent)
	require.NoError(t, err)

	got, err := hooks.Sell.Load(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, sent, got)
}

func TestTenementHooks_AddAndDelete(t *testing.T) {
	f := newFixture(t, "T1")
	f.api.Reply(http.MethodPost, "/tenement/add/market", nil)
	f.api.Reply(http.MethodDelete, "/delete/tenement/3", nil)
	hooks := NewTenementHooks(f.env)

	_, err := hooks.Add.Run(context.Background(), NewTenement{
		Kind:   domain.KindMarket,
		Record: domain.TenementMarket{MarketState: "進行中"},
	})
	require.NoError(t, err)
	_, err = hooks.Delete.Run(context.Background(), "3")
	require.NoError(t, err)

	var body map[string]any
	f.api.Calls(http.MethodPost, "/tenement/add/market")[0].JSON(t, &body)
	assert.Equal(t, "進行中", body["market_state"])
	assert.Len(t, f.api.Calls(http.MethodDelete, "/delete/tenement/3"), 1)
}

func TestCollectionHooks_GetSetsID(t *testing.T) {
	f := newFixture(t, "T1")
	c := testutil.NewTestCollection("管理費", testutil.WithNotices(testutil.NewTestNotice("第一次拜訪")))
	f.api.Reply(http.MethodGet, "/collection/12", c)

	hooks := NewCollectionHooks(f.env)
	got, err := hooks.Get.Load(context.Background(), "12")
	require.NoError(t, err)

	assert.Equal(t, "12", got.CollectionID)
	assert.Equal(t, c.Notices, got.Notices)
	assert.Empty(t, f.alerts.all())
}

func TestCollectionHooks_ListFailureIsQuiet(t *testing.T) {
	f := newFixture(t, "T1")
	f.api.Fail(http.MethodGet, "/collections", http.StatusBadGateway)

	hooks := NewCollectionHooks(f.env)
	_, err := hooks.List.Load(context.Background(), api.None{})

	require.Error(t, err)
	assert.True(t, hooks.List.State().IsError())
	assert.Empty(t, f.alerts.all())
}

func TestUserHooks_CRUD(t *testing.T) {
	f := newFixture(t, "T1")
	u := testutil.NewTestUser("amy", testutil.AsAdmin())
	f.api.Reply(http.MethodGet, "/user/"+u.UserID, u)
	f.api.Reply(http.MethodPut, "/user/"+u.UserID, nil)
	f.api.Reply(http.MethodPost, "/user", nil)
	f.api.Reply(http.MethodDelete, "/user/"+u.UserID, nil)

	hooks := NewUserHooks(f.env)
	got, err := hooks.Get.Load(context.Background(), u.UserID)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	_, err = hooks.Update.Run(context.Background(), got)
	require.NoError(t, err)
	_, err = hooks.Create.Run(context.Background(), got)
	require.NoError(t, err)
	_, err = hooks.Delete.Run(context.Background(), u.UserID)
	require.NoError(t, err)
	assert.Len(t, f.api.Requests(), 4)
}

func TestNoticeHooks_SaveBatch(t *testing.T) {
	f := newFixture(t, "T1")
	f.api.Reply(http.MethodPost, "/notices/collection/4", []domain.Notice{{ID: "100", Record: "新增"}})
	f.api.Reply(http.MethodPut, "/notices/collection/4", nil)
	f.api.Reply(http.MethodDelete, "/notices/8/collection", nil)

	hooks := NewNoticeHooks(f.env)
	err := hooks.SaveBatch(context.Background(), NoticeTarget{Scope: domain.NoticeCollection, ParentID: "4"}, domain.NoticeBatch{
		Create: []domain.Notice{{Record: "新增"}},
		Update: []domain.Notice{{ID: "7", Record: "修改"}},
		Delete: []string{"8"},
	})
	require.NoError(t, err)

	reqs := f.api.Requests()
	require.Len(t, reqs, 3)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, http.MethodPut, reqs[1].Method)
	assert.Equal(t, "/notices/8/collection", reqs[2].Path)
	assert.Equal(t, "100", hooks.Create.State().Data[0].ID)
}

func TestNoticeHooks_SaveBatchStopsAtFirstFailure(t *testing.T) {
	f := newFixture(t, "T1")
	f.api.Fail(http.MethodPut, "/notices/rent/4", http.StatusInternalServerError)

	hooks := NewNoticeHooks(f.env)
	err := hooks.SaveBatch(context.Background(), NoticeTarget{Scope: domain.NoticeRent, ParentID: "4"}, domain.NoticeBatch{
		Update: []domain.Notice{{ID: "7"}},
		Delete: []string{"8"},
	})

	require.Error(t, err)
	assert.Len(t, f.api.Requests(), 1)
	assert.Equal(t, []string{MsgOperationFailed}, f.alerts.all())
}

func TestNoticeHooks_List(t *testing.T) {
	f := newFixture(t, "T1")
	n := testutil.NewTestNotice("帶看")
	f.api.Reply(http.MethodGet, "/notices/3/sell", []domain.Notice{n})

	got, err := NewNoticeHooks(f.env).List.Load(context.Background(), NoticeTarget{Scope: domain.NoticeSell, ParentID: "3"})
	require.NoError(t, err)
	assert.Equal(t, []domain.Notice{n}, got)
}

func TestCalendarHooks(t *testing.T) {
	f := newFixture(t, "T1")
	days := []domain.CalendarDay{{Day: 3, Events: []domain.CalendarEvent{{Content: "收租", ID: "1", Class: "collection"}}}}
	f.api.Reply(http.MethodGet, "/calender/2024/5", days)
	f.api.Fail(http.MethodGet, "/calender/collection/2024/5", http.StatusInternalServerError)

	hooks := NewCalendarHooks(f.env)
	got, err := hooks.Tenements.Load(context.Background(), Month{Year: 2024, Month: 5})
	require.NoError(t, err)
	assert.Equal(t, days, got)

	_, err = hooks.Collections.Load(context.Background(), Month{Year: 2024, Month: 5})
	require.Error(t, err)
	assert.Equal(t, []string{MsgFetchFailed}, f.alerts.all())
}

func TestFileHooks_DeleteEscapesName(t *testing.T) {
	f := newFixture(t, "T1")
	f.api.Reply(http.MethodDelete, "/files/delete/a b.png", nil)

	_, err := NewFileHooks(f.env).Delete.Run(context.Background(), "a b.png")
	require.NoError(t, err)
}
