package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proval-lk/valuer-client/internal/notify"
)

type staticTokens struct {
	tok string
	ok  bool
}

func (s *staticTokens) Token() (string, bool) { return s.tok, s.ok }

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newTestClient(t *testing.T, url string, ts TokenSource, rec *notify.Recorder) *Client {
	t.Helper()
	c, err := New(url, 0, "test", ts, rec, newNoopLogger())
	require.NoError(t, err)
	return c
}

func TestNew_ProdRequiresHTTPS(t *testing.T) {
	_, err := New("http://api.example.com", 0, "prod", &staticTokens{}, &notify.Recorder{}, newNoopLogger())
	assert.Error(t, err)

	_, err = New("https://api.example.com", 0, "prod", &staticTokens{}, &notify.Recorder{}, newNoopLogger())
	assert.NoError(t, err)
}

func TestClient_AttachesTokenAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, &staticTokens{tok: "tok-1", ok: true}, &notify.Recorder{})
	require.NoError(t, c.Get(context.Background(), "/auth/me", nil))

	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, &staticTokens{}, &notify.Recorder{})
	require.NoError(t, c.Get(context.Background(), "/auth/me", nil))
	assert.Empty(t, gotAuth)
}

func TestClient_StatusPolicy(t *testing.T) {
	tests := []struct {
		name              string
		status            int
		body              string
		wantNotifications []string
		wantMessage       string
	}{
		{
			name:              "403 with message",
			status:            http.StatusForbidden,
			body:              `{"message":"access denied"}`,
			wantNotifications: []string{"access denied"},
			wantMessage:       "access denied",
		},
		{
			name:              "404 without message",
			status:            http.StatusNotFound,
			body:              `{}`,
			wantNotifications: nil,
		},
		{
			name:              "422 with details notifies each",
			status:            http.StatusUnprocessableEntity,
			body:              `{"message":"validation failed","details":["field A is required","field B is required"]}`,
			wantNotifications: []string{"field A is required", "field B is required"},
			wantMessage:       "validation failed",
		},
		{
			name:              "422 without details uses message",
			status:            http.StatusUnprocessableEntity,
			body:              `{"message":"Email is already registered"}`,
			wantNotifications: []string{"Email is already registered"},
			wantMessage:       "Email is already registered",
		},
		{
			name:              "429 fixed notification",
			status:            http.StatusTooManyRequests,
			body:              `{"message":"too many requests"}`,
			wantNotifications: []string{msgRateLimit},
		},
		{
			name:              "500 generic notification",
			status:            http.StatusInternalServerError,
			body:              ``,
			wantNotifications: []string{msgServer},
		},
		{
			name:              "503 generic notification",
			status:            http.StatusServiceUnavailable,
			body:              `{"message":"maintenance"}`,
			wantNotifications: []string{msgServer},
		},
		{
			name:              "unexpected status without message",
			status:            http.StatusTeapot,
			body:              ``,
			wantNotifications: []string{msgUnexpected},
		},
		{
			name:              "unexpected status with message",
			status:            http.StatusConflict,
			body:              `{"message":"conflict"}`,
			wantNotifications: []string{"conflict"},
			wantMessage:       "conflict",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			rec := &notify.Recorder{}
			c := newTestClient(t, srv.URL, &staticTokens{}, rec)

			err := c.Get(context.Background(), "/x", nil)
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, apiErr.Message)
			}
			assert.Equal(t, tt.wantNotifications, rec.Messages)
		})
	}
}

func TestClient_UnauthorizedTriggersTeardown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid or expired token"}`))
	}))
	defer srv.Close()

	rec := &notify.Recorder{}
	c := newTestClient(t, srv.URL, &staticTokens{tok: "stale", ok: true}, rec)

	called := false
	c.OnUnauthorized(func() { called = true })

	err := c.Get(context.Background(), "/users/dashboard", nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.True(t, called, "401 must raise the unauthorized event")
	assert.Empty(t, rec.Messages, "401 is a hard reset, not a notification")
}

func TestClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // сервер уже недоступен

	rec := &notify.Recorder{}
	c := newTestClient(t, srv.URL, &staticTokens{}, rec)

	err := c.Get(context.Background(), "/x", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, []string{msgNetwork}, rec.Messages)
}

func TestClient_DecodesSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"sent"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, &staticTokens{}, &notify.Recorder{})

	var out struct {
		Message string `json:"message"`
	}
	require.NoError(t, c.Post(context.Background(), "/auth/resend-verification", nil, &out))
	assert.Equal(t, "sent", out.Message)
}
