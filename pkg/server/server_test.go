package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locaddo/locaddo/pkg/config"
	"github.com/locaddo/locaddo/pkg/mailer"
	"github.com/locaddo/locaddo/pkg/mailer/mailertest"
	"github.com/locaddo/locaddo/pkg/utils/ptr"
	"github.com/locaddo/locaddo/pkg/version"
)

func newTestServer(rec *mailertest.Recorder, raw *config.RawFileConfig) *Server {
	s := New(config.NewFileFromConfig(raw, ""), rec)
	s.now = func() time.Time { return time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC) }
	return s
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "locaddo-test")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decodeJoin(t *testing.T, w *httptest.ResponseRecorder) JoinResponse {
	t.Helper()
	var resp JoinResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestJoinWaitlist(t *testing.T) {
	rec := &mailertest.Recorder{}
	s := newTestServer(rec, nil)

	w := do(t, s, http.MethodPost, "/api/waitlist", `{"email":"jo@example.com","name":"Jo"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, JoinResponse{Message: msgJoined, Success: true}, decodeJoin(t, w))

	sent := rec.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, []string{"jo@example.com"}, sent[0].To)
	assert.Contains(t, sent[1].HTML, "locaddo-test")
}

func TestJoinWaitlistBadRequests(t *testing.T) {
	cases := []struct {
		name string
		body string
		msg  string
	}{
		{"malformed json", `{"email":`, msgInvalidBody},
		{"empty body", ``, msgInvalidBody},
		{"missing email", `{"name":"Jo"}`, msgInvalidEmail},
		{"no at sign", `{"email":"not-an-email"}`, msgInvalidEmail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &mailertest.Recorder{}
			w := do(t, newTestServer(rec, nil), http.MethodPost, "/api/waitlist", tc.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeJoin(t, w)
			assert.Equal(t, tc.msg, resp.Message)
			assert.False(t, resp.Success)
			assert.Empty(t, rec.Sent())
		})
	}
}

func TestJoinWaitlistSendFailure(t *testing.T) {
	boom := errors.New("provider down")

	t.Run("hides cause", func(t *testing.T) {
		w := do(t, newTestServer(&mailertest.Recorder{FailOn: 1, Err: boom}, nil),
			http.MethodPost, "/api/waitlist", `{"email":"jo@example.com"}`)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decodeJoin(t, w)
		assert.Equal(t, msgFailed, resp.Message)
		assert.False(t, resp.Success)
		assert.Empty(t, resp.Error)
	})

	t.Run("debug shows cause", func(t *testing.T) {
		rec := &mailertest.Recorder{FailOn: 2, Err: boom}
		w := do(t, newTestServer(rec, &config.RawFileConfig{Debug: ptr.To(true)}),
			http.MethodPost, "/api/waitlist", `{"email":"jo@example.com"}`)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, decodeJoin(t, w).Error, "provider down")
		assert.Len(t, rec.Sent(), 1)
	})
}

func TestWaitlistStatus(t *testing.T) {
	w := do(t, newTestServer(&mailertest.Recorder{}, nil), http.MethodGet, "/api/waitlist", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, msgRunning, resp.Message)
	assert.Equal(t, "2026-10-15T09:30:00Z", resp.Timestamp)
	assert.Equal(t, []string{"POST"}, resp.Methods)
}

func TestWaitlistPreflight(t *testing.T) {
	w := do(t, newTestServer(&mailertest.Recorder{}, nil), http.MethodOptions, "/api/waitlist", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, GET, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))

	w = do(t, newTestServer(&mailertest.Recorder{}, &config.RawFileConfig{AllowedOrigin: ptr.To("https://locaddo.com")}),
		http.MethodOptions, "/api/waitlist", "")
	assert.Equal(t, "https://locaddo.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestVersion(t *testing.T) {
	w := do(t, newTestServer(&mailertest.Recorder{}, nil), http.MethodGet, "/version", "")
	require.Equal(t, http.StatusOK, w.Code)

	var v string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	assert.Equal(t, version.Version, v)
}

func TestUnknownRoute(t *testing.T) {
	w := do(t, newTestServer(&mailertest.Recorder{}, nil), http.MethodGet, "/api/bmi", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReloadRebuildsSenderAndKeepsListenOverride(t *testing.T) {
	t.Setenv(config.EnvListen, "")
	t.Setenv(config.EnvMailProvider, "")
	t.Setenv(config.EnvResendAPIKey, "")

	p := filepath.Join(t.TempDir(), "locaddo.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"mailProvider":"log","listen":":8080"}`), 0644))
	conf, err := config.NewFile(p)
	require.NoError(t, err)

	old := &mailertest.Recorder{}
	s := New(conf, old)
	s.listen = ":9999"
	conf.SetListen(s.listen)

	var providers []string
	fresh := &mailertest.Recorder{}
	s.newSender = func(_ context.Context, c config.Config) (mailer.Sender, error) {
		providers = append(providers, c.MailProvider())
		return fresh, nil
	}

	require.NoError(t, os.WriteFile(p, []byte(`{"mailProvider":"ses","listen":":8080"}`), 0644))
	require.NoError(t, s.Reload(context.Background()))

	assert.Equal(t, []string{config.MailProviderSES}, providers)
	assert.Equal(t, ":9999", conf.Listen())

	w := do(t, s, http.MethodPost, "/api/waitlist", `{"email":"jo@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, old.Sent())
	assert.Len(t, fresh.Sent(), 2)
}

func TestReloadKeepsSenderOnError(t *testing.T) {
	t.Setenv(config.EnvListen, "")
	t.Setenv(config.EnvMailProvider, "")

	p := filepath.Join(t.TempDir(), "locaddo.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"mailProvider":"log"}`), 0644))
	conf, err := config.NewFile(p)
	require.NoError(t, err)

	old := &mailertest.Recorder{}
	s := New(conf, old)

	require.NoError(t, os.WriteFile(p, []byte(`{"mailProvider":"carrier-pigeon"}`), 0644))
	assert.Error(t, s.Reload(context.Background()))
	assert.Same(t, old, s.svc.Sender())

	require.NoError(t, os.WriteFile(p, []byte(`{not json`), 0644))
	assert.Error(t, s.Reload(context.Background()))
	assert.Same(t, old, s.svc.Sender())
}
