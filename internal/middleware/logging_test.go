package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestRequestLogging(t *testing.T) {
	logs := captureLogs(t)

	h := RequestLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/boom" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))

	for _, path := range []string{"/index.html", "/css/site.css", "/boom"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	out := logs.String()
	if !strings.Contains(out, "path=/index.html status=200 bytes=2") {
		t.Errorf("missing page log line:\n%s", out)
	}
	if strings.Contains(out, "/css/site.css") {
		t.Error("asset requests should not be logged")
	}
	if !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "path=/boom status=500") {
		t.Errorf("server error should log at error level:\n%s", out)
	}
}
