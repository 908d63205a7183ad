package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newRouter(logger *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(chiMid.RequestID)
	r.Use(InjectLogger(logger))
	r.Use(Trace)
	r.Use(RequestLogger)
	r.Use(Recovery(logger))
	r.Get("/voice", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	})
	return r
}

func TestRequestLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	router := newRouter(zap.New(core))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/voice", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	entry := entries[0]
	require.Equal(t, zapcore.InfoLevel, entry.Level)
	fields := entry.ContextMap()
	require.Equal(t, "/voice", fields["route"])
	require.Equal(t, "GET", fields["method"])
	require.EqualValues(t, 200, fields["status"])
	require.EqualValues(t, 5, fields["bytes"])
	require.NotEmpty(t, fields["request_id"])
	require.NotContains(t, fields, "trace_id", "no incoming trace context")
}

func TestTraceParentReachesLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	router := newRouter(zap.New(core))

	req := httptest.NewRequest(http.MethodGet, "/voice", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("traceparent"), "4bf92f3577b34da6a3ce929d0e0e4736")

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", fields["trace_id"])
	require.Equal(t, true, fields["trace_sampled"])
}

func TestCloudTraceHeaderReachesLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	router := newRouter(zap.New(core))

	req := httptest.NewRequest(http.MethodGet, "/voice", nil)
	req.Header.Set("X-Cloud-Trace-Context", "105445aa7843bc8bf206b12000100000/1;o=0")
	router.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "105445aa7843bc8bf206b12000100000", fields["trace_id"])
	require.Equal(t, "0000000000000001", fields["span_id"])
	require.Equal(t, false, fields["trace_sampled"])
}

func TestParseCloudTrace(t *testing.T) {
	cases := []struct {
		header string
		ok     bool
		span   string
	}{
		{"105445aa7843bc8bf206b12000100000/2;o=1", true, "0000000000000002"},
		{"105445aa7843bc8bf206b12000100000/ff", true, "00000000000000ff"},
		{"105445aa7843bc8bf206b12000100000", false, ""},
		{"not-a-trace/1;o=1", false, ""},
		{"105445aa7843bc8bf206b12000100000/0", false, ""},
		{"", false, ""},
	}
	for _, tc := range cases {
		sc, ok := parseCloudTrace(tc.header)
		require.Equal(t, tc.ok, ok, tc.header)
		if tc.ok {
			require.Equal(t, tc.span, sc.SpanID().String(), tc.header)
			require.True(t, sc.IsRemote())
		}
	}
}

func TestRequestLoggerQuietRoutes(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	router := newRouter(zap.New(core))

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 2)
	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
	require.Equal(t, "unmatched", entries[1].ContextMap()["route"])
}

func TestRecoveryLogsPanic(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	router := newRouter(zap.New(core))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	panics := logs.FilterMessage("panic recovered").All()
	require.Len(t, panics, 1)
	require.Equal(t, "kaboom", panics[0].ContextMap()["panic"])

	completed := logs.FilterMessage("request completed").All()
	require.Len(t, completed, 1)
	require.Equal(t, zapcore.ErrorLevel, completed[0].Level)
	require.EqualValues(t, 500, completed[0].ContextMap()["status"])
}

func TestAssetsWithCache(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "site.css"), []byte("body{}"), 0o644))

	h := http.StripPrefix("/assets", AssetsWithCache(dir))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "body{}", rec.Body.String())
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)
	require.Contains(t, rec.Header().Get("Cache-Control"), "max-age=604800")

	req := httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotModified, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/css/", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSanitize(t *testing.T) {
	require.Equal(t, "/", SanitizeRoute(""))
	require.Equal(t, "/ab", SanitizeRoute("/a\nb"))
	require.Equal(t, "GETPOSTPUT", SanitizeMethod("GETPOSTPUTDELETE"))
}
