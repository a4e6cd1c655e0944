package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/alexanderramin/tenement/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

type recordingObserver struct {
	mu     sync.Mutex
	events []RequestEvent
}

func (o *recordingObserver) OnRequest(_ context.Context, e RequestEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func TestClient_SendsHeadersAndBody(t *testing.T) {
	var gotPath, gotAuth, gotType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"ok","data":null}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", staticToken("T1"), nil)
	resp, err := c.Post(context.Background(), "/user/login", map[string]string{"user_email": "a@b.c"})
	require.NoError(t, err)

	assert.True(t, resp.OK)
	assert.Equal(t, "/api/user/login", gotPath)
	assert.Equal(t, "Bearer T1", gotAuth)
	assert.Equal(t, "application/json", gotType)
	assert.JSONEq(t, `{"user_email":"a@b.c"}`, gotBody)
}

func TestClient_EmptyTokenStillSendsBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, staticToken(""), nil).Get(context.Background(), "/users")
	require.NoError(t, err)
	assert.Equal(t, "Bearer ", gotAuth)
}

func TestClient_NonSuccessIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	resp, err := NewClient(srv.URL, nil, obs).Delete(context.Background(), "/delete/tenement/1", nil)
	require.NoError(t, err)
	assert.False(t, resp.OK)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.Equal(t, "STATUS", obs.events[0].ErrorCode)
	assert.Equal(t, http.MethodDelete, obs.events[0].Method)
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, nil, nil).Get(context.Background(), "/users")
	assert.ErrorIs(t, err, ErrTransport)
}

func TestClient_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, nil, nil).Get(ctx, "/users")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, ErrTransport)
}

type loginToken struct {
	Token string `json:"token"`
}

var tokenShape = schema.Object(schema.Field("token", schema.String()))

func TestFetch_DecodesValidatedData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "ok",
			"data":    map[string]any{"token": "T1", "extra": 1},
		})
	}))
	defer srv.Close()

	got, err := Fetch[loginToken](context.Background(), NewClient(srv.URL, nil, nil), http.MethodPost, "/user/login", nil, tokenShape)
	require.NoError(t, err)
	assert.Equal(t, "T1", got.Token)
}

func TestFetch_ShapeMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"ok","data":{"token":42}}`))
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	_, err := Fetch[loginToken](context.Background(), NewClient(srv.URL, nil, obs), http.MethodGet, "/user/auth", nil, tokenShape)

	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "data.token", verr.Path)
}

func TestFetch_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := Fetch[loginToken](context.Background(), NewClient(srv.URL, nil, nil), http.MethodGet, "/user/auth", nil, tokenShape)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
	assert.Equal(t, "nope", se.Body)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
}

func TestSend(t *testing.T) {
	codes := []int{http.StatusOK, http.StatusBadRequest}
	for _, code := range codes {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))
		err := Send(context.Background(), NewClient(srv.URL, nil, nil), http.MethodPut, "/notices/rent/1", []int{})
		srv.Close()

		if code == http.StatusOK {
			assert.NoError(t, err)
		} else {
			assert.True(t, IsStatus(err, code))
		}
	}
}

func TestFetch_StatusErrorTruncatesOnRuneBoundary(t *testing.T) {
	msg := strings.Repeat("資料錯誤", 60)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, msg, http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := Fetch[loginToken](context.Background(), NewClient(srv.URL, nil, nil), http.MethodGet, "/user/auth", nil, tokenShape)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.True(t, utf8.ValidString(se.Body))
	assert.Equal(t, maxErrorBody, utf8.RuneCountInString(se.Body))
	assert.True(t, strings.HasPrefix(msg, se.Body))
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"canceled", fmt.Errorf("%w: %w", ErrTransport, context.Canceled), "CANCELED"},
		{"timeout", fmt.Errorf("%w: %w", ErrTransport, context.DeadlineExceeded), "TIMEOUT"},
		{"transport", fmt.Errorf("%w: connection refused", ErrTransport), "TRANSPORT"},
		{"other", errors.New("marshaling request"), "UNKNOWN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorCode(tt.err))
		})
	}
}
