package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mew-mate-api/internal/platform/metrics"
	"mew-mate-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubVerifier struct {
	want string
}

func (v stubVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if token != v.want {
		return auth.Claims{}, errors.New("bad token")
	}
	return auth.Claims{UserID: "falconer-1"}, nil
}

func callerEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := CallerID(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(id))
	})
}

func TestAuthContext_DebugHeader(t *testing.T) {
	h := AuthContext(nil, zap.NewNop())(callerEcho())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(DebugUserHeader, " f1 ")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "f1", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthContext_Verifier(t *testing.T) {
	h := AuthContext(stubVerifier{want: "good"}, nil)(callerEcho())

	cases := []struct {
		name   string
		header string
		debug  string
		status int
	}{
		{name: "valid bearer", header: "Bearer good", status: http.StatusOK},
		{name: "lowercase scheme", header: "bearer good", status: http.StatusOK},
		{name: "invalid token", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "no scheme", header: "good", status: http.StatusUnauthorized},
		{name: "debug header ignored", debug: "f1", status: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.debug != "" {
				req.Header.Set(DebugUserHeader, tc.debug)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestRecover_LogsAndReturns500(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	h := Recover(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "panic recovered", logs.All()[0].Message)
}

func TestAccessLog_UsesRoutePattern(t *testing.T) {
	m, err := metrics.NewHTTPMetrics()
	require.NoError(t, err)
	core, logs := observer.New(zapcore.InfoLevel)

	r := chi.NewRouter()
	r.Use(AccessLog(zap.New(core), m))
	r.Get("/bird/{birdID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bird/abc", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "/bird/{birdID}", entry.ContextMap()["route"])

	scrape := httptest.NewRecorder()
	m.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.True(t, strings.Contains(scrape.Body.String(), `route="/bird/{birdID}"`))
}

func TestAccessLog_TrailingSlashSharesRoute(t *testing.T) {
	m, err := metrics.NewHTTPMetrics()
	require.NoError(t, err)
	core, logs := observer.New(zapcore.InfoLevel)

	r := chi.NewRouter()
	r.Use(AccessLog(zap.New(core), m))
	r.Route("/bird", func(br chi.Router) {
		br.Get("/", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	})

	for _, path := range []string{"/bird", "/bird/"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}

	require.Equal(t, 2, logs.Len())
	for _, e := range logs.All() {
		assert.Equal(t, "/bird", e.ContextMap()["route"])
	}
	assert.Equal(t, "/", routeLabel("/"))
}

func TestAccessLog_RecordsRecoveredPanic(t *testing.T) {
	m, err := metrics.NewHTTPMetrics()
	require.NoError(t, err)
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	r := chi.NewRouter()
	r.Use(AccessLog(log, m))
	r.Use(Recover(log))
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var access []observer.LoggedEntry
	for _, e := range logs.All() {
		if e.Message == "request" {
			access = append(access, e)
		}
	}
	require.Len(t, access, 1)
	assert.Equal(t, zapcore.ErrorLevel, access[0].Level)
	assert.EqualValues(t, http.StatusInternalServerError, access[0].ContextMap()["status"])

	scrape := httptest.NewRecorder()
	m.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, scrape.Body.String(), `route="/boom",status="500"`)
}
