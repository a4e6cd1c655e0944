package cli

import (
	"bytes"
	"net/http"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/tenement/internal/api"
	"github.com/alexanderramin/tenement/internal/cli/formatter"
	"github.com/alexanderramin/tenement/internal/domain"
	"github.com/alexanderramin/tenement/internal/form"
	"github.com/alexanderramin/tenement/internal/resource"
	"github.com/alexanderramin/tenement/internal/session"
	"github.com/alexanderramin/tenement/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// testApp returns an App talking to a fresh mock API. A non-empty token
// starts the app logged in.
func testApp(t *testing.T, token string) (*App, *testutil.MockAPI) {
	t.Helper()
	mock := testutil.NewMockAPI(t)
	sess := session.NewMemory(token)
	app := NewApp(resource.Env{
		API:     api.NewClient(mock.URL, sess, nil),
		Session: sess,
	})
	return app, mock
}

func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

// --- Session ---

func TestRootCmd_RequiresLogin(t *testing.T) {
	app, mock := testApp(t, "")

	_, err := executeCmd(t, app, "tenement", "list")
	require.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Empty(t, mock.Requests())
}

func TestRootCmd_HelpIsPublic(t *testing.T) {
	app, _ := testApp(t, "")

	out, err := executeCmd(t, app, "tenement", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Manage tenement listings")
}

func TestLoginCmd_Success(t *testing.T) {
	app, mock := testApp(t, "")
	mock.Reply(http.MethodPost, "/user/login", map[string]string{"token": "T1"})

	out, err := executeCmd(t, app, "login", "--email", "amy@example.com", "--password", "secret")
	require.NoError(t, err)

	assert.Contains(t, out, "已登入 amy@example.com")
	assert.Equal(t, "T1", app.Session.Token())
	assert.Equal(t, "amy@example.com", app.Session.Account())
}

func TestLoginCmd_Failure(t *testing.T) {
	app, mock := testApp(t, "")
	mock.Fail(http.MethodPost, "/user/login", http.StatusUnauthorized)

	out, err := executeCmd(t, app, "login", "--email", "amy@example.com", "--password", "bad")
	require.Error(t, err)

	assert.Contains(t, out, resource.MsgLoginFailed)
	assert.False(t, app.Auth.IsLogin())
}

func TestLoginCmd_NeedsFlagsWithoutTerminal(t *testing.T) {
	app, mock := testApp(t, "")

	_, err := executeCmd(t, app, "login")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--email and --password")
	assert.Empty(t, mock.Requests())
}

func TestLogoutCmd(t *testing.T) {
	app, _ := testApp(t, "T1")

	out, err := executeCmd(t, app, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "已登出")
	assert.False(t, app.Auth.IsLogin())
}

func TestWhoamiCmd(t *testing.T) {
	app, mock := testApp(t, "T1")
	mock.Reply(http.MethodGet, "/user/auth", map[string]bool{"isadmin": true})

	out, err := executeCmd(t, app, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "管理員")
	assert.Equal(t, "Bearer T1", mock.Calls(http.MethodGet, "/user/auth")[0].Auth)
}

// --- Tenements ---

func TestTenementList_ServerQueryAndLocalView(t *testing.T) {
	app, mock := testApp(t, "T1")
	mock.Reply(http.MethodGet, "/tenements", []domain.TenementListItem{
		testutil.NewTestTenementRow(54323, domain.KindRent, "上架"),
		testutil.NewTestTenementRow(12345, domain.KindRent, "上架"),
		testutil.NewTestTenementRow(67890, domain.KindRent, "下架"),
	})

	out, err := executeCmd(t, app, "tenement", "list",
		"--query", "rent_price_max=20000",
		"--filter", "tenement_status=上架",
		"--sort", "tenement_address")
	require.NoError(t, err)

	assert.Equal(t, "rent_price_max=20000", mock.Calls(http.MethodGet, "/tenements")[0].Query)
	assert.Contains(t, out, "全部房屋 › 租金 max: 20000")
	assert.Contains(t, out, "2 / 3 筆")
	assert.NotContains(t, out, "67890")
	assert.Less(t, strings.Index(out, "12345"), strings.Index(out, "54323"))
}

func TestTenementList_RejectsInvertedRange(t *testing.T) {
	app, mock := testApp(t, "T1")

	_, err := executeCmd(t, app, "tenement", "list",
		"--query", "rent_price_min=30000",
		"--query", "rent_price_max=20000")
	require.Error(t, err)
	assert.Empty(t, mock.Requests())
}

func TestTenementList_UnknownColumn(t *testing.T) {
	app, mock := testApp(t, "T1")

	_, err := executeCmd(t, app, "tenement", "list", "--sort", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown column "nope"`)
	assert.Empty(t, mock.Requests())
}

func TestTenementEdit_PostsDraftAndRefetches(t *testing.T) {
	app, mock := testApp(t, "T1")
	stored := testutil.NewTestSell("台北市信義路5號")
	mock.Handle(http.MethodGet, "/tenement/edit/sell/5", func(w http.ResponseWriter, _ *http.Request) {
		testutil.WriteEnvelope(w, http.StatusOK, stored)
	})
	mock.Handle(http.MethodPost, "/tenement/edit/sell/5", func(w http.ResponseWriter, r *http.Request) {
		calls := mock.Calls(http.MethodPost, "/tenement/edit/sell/5")
		calls[len(calls)-1].JSON(t, &stored)
		stored.TenementID = ""
		testutil.WriteEnvelope(w, http.StatusOK, nil)
	})

	out, err := executeCmd(t, app, "tenement", "edit", "sell", "5", "--set", "selling_price=9900000")
	require.NoError(t, err)

	assert.Contains(t, out, resource.MsgSaved)
	assert.Contains(t, out, "9900000")
	assert.Equal(t, "9900000", stored.SellingPrice)
	assert.Len(t, mock.Calls(http.MethodGet, "/tenement/edit/sell/5"), 2)
}

func TestTenementEdit_IDIsImmutable(t *testing.T) {
	app, mock := testApp(t, "T1")
	mock.Reply(http.MethodGet, "/tenement/edit/sell/5", testutil.NewTestSell("台北市信義路5號"))

	_, err := executeCmd(t, app, "tenement", "edit", "sell", "5", "--set", "tenement_id=6")
	require.Error(t, err)
	assert.Empty(t, mock.Calls(http.MethodPost, "/tenement/edit/sell/5"))
}

func TestTenementEdit_ShortValueWarnsButSaves(t *testing.T) {
	app, mock := testApp(t, "T1")
	mock.Reply(http.MethodGet, "/tenement/edit/sell/5", testutil.NewTestSell("台北市信義路5號"))
	mock.Reply(http.MethodPost, "/tenement/edit/sell/5", nil)

	out, err := executeCmd(t, app, "tenement", "edit", "sell", "5", "--set", "buyer_name=李")
	require.NoError(t, err)

	assert.Contains(t, out, "! buyer_name: 至少需要 3 個字")
	assert.Len(t, mock.Calls(http.MethodPost, "/tenement/edit/sell/5"), 1)
}

func TestTenementEdit_NeedsChangesWithoutTerminal(t *testing.T) {
	app, mock := testApp(t, "T1")
	mock.Reply(http.MethodGet, "/tenement/edit/sell/5", testutil.NewTestSell("台北市信義路5號"))

	_, err := executeCmd(t, app, "tenement", "edit", "sell", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to change")
}

func TestTenementAdd(t *testing.T) {
	app, mock := testApp(t, "T1")
	mock.Reply(http.MethodPost, "/tenement/add/rent", nil)

	out, err := executeCmd(t, app, "tenement", "add", "rent", "--set", "tenement_address=台北市中山路1號")
	require.NoError(t, err)
	assert.Contains(t, out, resource.MsgSaved)

	var body map[string]any
	mock.Calls(http.MethodPost, "/tenement/add/rent")[0].JSON(t, &body)
	assert.Equal(t, "台北市中山路1號", body["tenement_address"])
	assert.Equal(t, domain.KindRent.Label(), body["tenement_type"])
}

func TestTenementDelete_NeedsConfirmation(t *testing.T) {
	app, mock := testApp(t, "T1")
	mock.Reply(http.MethodDelete, "/delete/tenement/3", nil)

	_, err := executeCmd(t, app, "tenement", "delete", "3")
	require.Error(t, err)
	assert.Empty(t, mock.Requests())

	out, err := executeCmd(t, app, "tenement", "delete", "3", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "已刪除房屋 3")
	assert.Len(t, mock.Calls(http.MethodDelete, "/delete/tenement/3"), 1)
}

func TestTenementShow_FetchFailureAlerts(t *testing.T) {
	app, mock := testApp(t, "T1")
	mock.Fail(http.MethodGet, "/tenement/edit/market/8", http.StatusInternalServerError)

	out, err := executeCmd(t, app, "tenement", "show", "market", "8")
	require.Error(t, err)
	assert.Contains(t, out, resource.MsgFetchFailed)
}

// --- Collections ---

func TestCollectionList(t *testing.T) {
	app, mock := testApp(t, "T1")
	mock.Reply(http.MethodGet, "/collections", []domain.CollectionListItem{
		testutil.NewTestCollectionRow(1, "管理費", "代收", "1000"),
		testutil.NewTestCollectionRow(2, "其他費用", "代付", "500"),
	})

	out, err := executeCmd(t, app, "collection", "list", "--filter", "collection_name=其他費用")
	require.NoError(t, err)
	assert.Contains(t, out, "其他費用")
	assert.NotContains(t, out, "管理費")
	assert.Contains(t, out, "1 / 2 筆")
}

func TestCollectionList_ReadFailureShowsPlaceholder(t *testing.T) {
	app, mock := testApp(t, "T1")
	mock.Fail(http.MethodGet, "/collections", http.StatusInternalServerError)

	out, err := executeCmd(t, app, "collection", "list")
	require.Error(t, err)
	assert.Contains(t, out, formatter.ReadError)
	assert.NotContains(t, out, resource.MsgFetchFailed)
}

func TestCollectionShow(t *testing.T) {
	app, mock := testApp(t, "T1")
	mock.Reply(http.MethodGet, "/collection/4", testutil.NewTestCollection("管理費",
		testutil.WithPrice("2500"),
		testutil.WithNotices(testutil.NewTestNotice("第一次拜訪"))))

	out, err := executeCmd(t, app, "collection", "show", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "2500")
	assert.Contains(t, out, "第一次拜訪")
	assert.NotContains(t, out, formatter.ReadError)
}

func TestCollectionShow_ReadFailureShowsPlaceholder(t *testing.T) {
	app, mock := testApp(t, "T1")
	mock.Fail(http.MethodGet, "/collection/4", http.StatusInternalServerError)

	out, err := executeCmd(t, app, "collection", "show", "4")
	require.Error(t, err)
	assert.Contains(t, out, formatter.ReadError)
}

func TestCollectionEdit_SavesNotices(t *testing.T) {
	app, mock := testApp(t, "T1")
	kept := testutil.NewTestNotice("第一次拜訪")
	dropped := testutil.NewTestNotice("第二次拜訪")
	c := testutil.NewTestCollection("管理費", testutil.WithNotices(kept, dropped))
	mock.Reply(http.MethodGet, "/collection/4", c)
	mock.Reply(http.MethodPut, "/collection/4", nil)
	mock.Reply(http.MethodPost, "/collection/notices", nil)
	mock.Reply(http.MethodDelete, "/notices/"+dropped.ID+"/collection", nil)

	out, err := executeCmd(t, app, "collection", "edit", "4",
		"--set", "price=2000",
		"--add-notice", "record=簽約;remindDate=2024-06-01",
		"--remove-notice", dropped.ID)
	require.NoError(t, err)
	assert.Contains(t, out, resource.MsgSaved)

	var sent domain.Collection
	mock.Calls(http.MethodPut, "/collection/4")[0].JSON(t, &sent)
	assert.Equal(t, "2000", sent.Price)
	require.Len(t, sent.Notices, 2)
	assert.Equal(t, kept.ID, sent.Notices[0].ID)
	assert.Equal(t, "簽約", sent.Notices[1].Record)

	var notices []domain.Notice
	mock.Calls(http.MethodPost, "/collection/notices")[0].JSON(t, &notices)
	assert.Len(t, notices, 2)
	assert.Len(t, mock.Calls(http.MethodDelete, "/notices/"+dropped.ID+"/collection"), 1)
	assert.Len(t, mock.Calls(http.MethodGet, "/collection/4"), 2)
}

func TestCollectionEdit_UnknownNotice(t *testing.T) {
	app, mock := testApp(t, "T1")
	mock.Reply(http.MethodGet, "/collection/4", testutil.NewTestCollection("管理費"))

	_, err := executeCmd(t, app, "collection", "edit", "4", "--remove-notice", "999")
	require.Error(t, err)
	assert.Empty(t, mock.Calls(http.MethodPut, "/collection/4"))
}

func TestCollectionAdd_WithoutNewNoticesSkipsNoticePost(t *testing.T) {
	app, mock := testApp(t, "T1")
	mock.Reply(http.MethodPost, "/collections", nil)

	_, err := executeCmd(t, app, "collection", "add", "--set", "collection_name=管理費")
	require.NoError(t, err)
	assert.Len(t, mock.Calls(http.MethodPost, "/collections"), 1)
	assert.Empty(t, mock.Calls(http.MethodPost, "/collection/notices"))
}

// --- Users ---

func TestUserCRUD(t *testing.T) {
	app, mock := testApp(t, "T1")
	u := testutil.NewTestUser("amy")
	mock.Reply(http.MethodGet, "/users", []domain.UserListItem{
		{UserID: u.UserID, UserName: u.UserName, UserEmail: u.UserEmail, Status: u.Status},
	})
	mock.Reply(http.MethodGet, "/user/"+u.UserID, u)
	mock.Reply(http.MethodPut, "/user/"+u.UserID, nil)
	mock.Reply(http.MethodPost, "/user", nil)
	mock.Reply(http.MethodDelete, "/user/"+u.UserID, nil)

	out, err := executeCmd(t, app, "user", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "amy@example.com")
	assert.Contains(t, out, "● 在職中")

	_, err = executeCmd(t, app, "user", "edit", u.UserID, "--set", "status=已離職")
	require.NoError(t, err)
	var sent domain.User
	mock.Calls(http.MethodPut, "/user/"+u.UserID)[0].JSON(t, &sent)
	assert.Equal(t, "已離職", sent.Status)
	assert.Equal(t, u.UserID, sent.UserID)

	_, err = executeCmd(t, app, "user", "add", "--set", "user_name=bob", "--set", "user_email=bob@example.com")
	require.NoError(t, err)
	var created domain.User
	mock.Calls(http.MethodPost, "/user")[0].JSON(t, &created)
	assert.Equal(t, "在職中", created.Status)
	assert.Equal(t, "false", created.IsAdmin)

	_, err = executeCmd(t, app, "user", "delete", u.UserID, "-y")
	require.NoError(t, err)
	assert.Len(t, mock.Calls(http.MethodDelete, "/user/"+u.UserID), 1)
}

// --- Notices ---

func TestNoticeAdd(t *testing.T) {
	app, mock := testApp(t, "T1")
	mock.Reply(http.MethodPost, "/notices/rent/9", []domain.Notice{
		{ID: "100", VisitDate: "2024-05-01", Record: "看屋", RemindDate: "", Remind: ""},
	})

	out, err := executeCmd(t, app, "notice", "add", "rent", "9", "看屋")
	require.NoError(t, err)
	assert.Contains(t, out, "100")
	assert.NotContains(t, out, "new")

	var sent []domain.Notice
	mock.Calls(http.MethodPost, "/notices/rent/9")[0].JSON(t, &sent)
	require.Len(t, sent, 1)
	assert.Equal(t, "看屋", sent[0].Record)
}

func TestNoticeEdit(t *testing.T) {
	app, mock := testApp(t, "T1")
	n := testutil.NewTestNotice("看屋")
	mock.Reply(http.MethodGet, "/notices/9/sell", []domain.Notice{n})
	mock.Reply(http.MethodPut, "/notices/sell/9", nil)

	out, err := executeCmd(t, app, "notice", "edit", "sell", "9", n.ID, "--set", "remind=再次電話")
	require.NoError(t, err)
	assert.Contains(t, out, resource.MsgSaved)

	var sent []domain.Notice
	mock.Calls(http.MethodPut, "/notices/sell/9")[0].JSON(t, &sent)
	require.Len(t, sent, 1)
	assert.Equal(t, n.ID, sent[0].ID)
	assert.Equal(t, "再次電話", sent[0].Remind)
	assert.Empty(t, mock.Calls(http.MethodPost, "/notices/sell/9"))
}

func TestNoticeDelete(t *testing.T) {
	app, mock := testApp(t, "T1")
	mock.Reply(http.MethodDelete, "/notices/7/collection", nil)

	out, err := executeCmd(t, app, "notice", "delete", "collection", "7", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "已刪除提醒 7")
}

func TestNoticeCmd_UnknownScope(t *testing.T) {
	app, mock := testApp(t, "T1")

	_, err := executeCmd(t, app, "notice", "list", "garage", "1")
	require.Error(t, err)
	assert.Empty(t, mock.Requests())
}

// --- Calendar and files ---

func TestCalendarCmd(t *testing.T) {
	app, mock := testApp(t, "T1")
	mock.Reply(http.MethodGet, "/calender/collection/2024/5", []domain.CalendarDay{
		{Day: 3, Events: []domain.CalendarEvent{{Content: "收租", ID: "7", Class: "collection"}}},
	})

	out, err := executeCmd(t, app, "calendar", "--month", "2024-05", "--collection")
	require.NoError(t, err)
	assert.Contains(t, out, "2024 年 5 月")
	assert.Contains(t, out, "收租")
}

func TestCalendarCmd_BadMonth(t *testing.T) {
	app, _ := testApp(t, "T1")

	_, err := executeCmd(t, app, "calendar", "--month", "May")
	require.Error(t, err)
}

func TestParseMonth_DefaultsToNow(t *testing.T) {
	m, err := parseMonth("", time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, resource.Month{Year: 2025, Month: 3}, m)
}

func TestFileDelete(t *testing.T) {
	app, mock := testApp(t, "T1")
	mock.Reply(http.MethodDelete, "/files/delete/a.png", nil)

	out, err := executeCmd(t, app, "file", "delete", "a.png", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "已刪除檔案 a.png")
}

// --- Flag parsing ---

func TestAssignments(t *testing.T) {
	var a assignments
	require.NoError(t, a.Set("status=上架"))
	require.NoError(t, a.Set("status=下架"))
	require.NoError(t, a.Set("note=a=b"))
	assert.Error(t, a.Set("novalue"))
	assert.Error(t, a.Set("=x"))

	assert.Equal(t, map[string][]string{"status": {"上架", "下架"}, "note": {"a=b"}}, a.grouped())
	assert.Equal(t, "下架", a.last()["status"])
}

func TestParseScope(t *testing.T) {
	s, err := parseScope("Collection")
	require.NoError(t, err)
	assert.Equal(t, domain.NoticeCollection, s)

	s, err = parseScope("rent")
	require.NoError(t, err)
	assert.Equal(t, domain.NoticeRent, s)

	_, err = parseScope("garage")
	assert.Error(t, err)
}

func TestAppendNotice(t *testing.T) {
	l := form.NewNoticeList(nil)
	require.NoError(t, appendNotice(l, "看屋"))
	require.NoError(t, appendNotice(l, "record=簽約;remindDate=2024-06-01;"))
	assert.Error(t, appendNotice(l, "nope=x"))

	entries := l.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "看屋", entries[0].Record)
	assert.Equal(t, "簽約", entries[1].Record)
	assert.Equal(t, "2024-06-01", entries[1].RemindDate)
}
