package verify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"leadtracker_backend/platform/logger"
)

func newTestProber() *WebsiteClient {
	return NewWebsiteClient(2*time.Second, logger.New("test"))
}

func TestProbe_ActiveSiteWithTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html><head><title>Acme | Custom Software</title></head><body></body></html>"))
	}))
	defer server.Close()

	ok, title := newTestProber().Probe(context.Background(), server.URL)
	if !ok {
		t.Fatal("expected site to be active")
	}
	if title != "Acme | Custom Software" {
		t.Fatalf("expected page title, got %q", title)
	}
}

func TestProbe_ActiveSiteWithoutTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html><body>no title here</body></html>"))
	}))
	defer server.Close()

	ok, title := newTestProber().Probe(context.Background(), server.URL)
	if !ok {
		t.Fatal("expected site to be active")
	}
	if title != "" {
		t.Fatalf("expected empty title, got %q", title)
	}
}

func TestProbe_ErrorStatusIsInactive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	if ok, _ := newTestProber().Probe(context.Background(), server.URL); ok {
		t.Fatal("expected 404 to report inactive")
	}
}

func TestProbe_UnreachableHostIsInactive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	if ok, _ := newTestProber().Probe(context.Background(), server.URL); ok {
		t.Fatal("expected connection failure to report inactive")
	}
}

func TestProbe_EmptyURL(t *testing.T) {
	if ok, _ := newTestProber().Probe(context.Background(), "   "); ok {
		t.Fatal("expected empty url to report inactive")
	}
}

func TestProbe_TruncatesOversizedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html><head>"))
		w.Write([]byte(strings.Repeat("<!-- padding -->", maxProbeBody/8)))
		w.Write([]byte("<title>Buried</title></head></html>"))
	}))
	defer server.Close()

	ok, title := newTestProber().Probe(context.Background(), server.URL)
	if !ok {
		t.Fatal("expected site to be active")
	}
	if title != "" {
		t.Fatalf("title beyond the read limit must be skipped, got %q", title)
	}
}

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"acme.com", "https://acme.com"},
		{"http://acme.com", "http://acme.com"},
		{"https://acme.com", "https://acme.com"},
		{"  acme.com  ", "https://acme.com"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := normalizeURL(tc.in); got != tc.want {
			t.Fatalf("normalizeURL(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
