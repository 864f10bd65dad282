package verify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"leadtracker_backend/platform/logger"
)

// presenceServer answers /v1/presence with found=true for the listed platforms.
func presenceServer(t *testing.T, foundOn map[string]bool, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/presence" {
			http.NotFound(w, r)
			return
		}
		if hits != nil {
			hits.Add(1)
		}
		platform := r.URL.Query().Get("platform")
		json.NewEncoder(w).Encode(map[string]bool{"found": foundOn[platform]})
	}))
}

func TestPresenceLinkedIn(t *testing.T) {
	server := presenceServer(t, map[string]bool{"linkedin": true}, nil)
	defer server.Close()

	client := NewPresenceClient(server.URL, "test-key", 2*time.Second, nil, logger.New("test"))

	if !client.LinkedIn(context.Background(), "Jane Doe", "Acme Solutions Inc") {
		t.Fatal("expected linkedin presence found")
	}
	if client.SocialMedia(context.Background(), "Jane Doe", "Acme Solutions Inc") {
		t.Fatal("expected no social presence when only linkedin matches")
	}
}

func TestPresenceSocialMedia_AnyPlatformCounts(t *testing.T) {
	server := presenceServer(t, map[string]bool{"instagram": true}, nil)
	defer server.Close()

	client := NewPresenceClient(server.URL, "", 2*time.Second, nil, logger.New("test"))

	if !client.SocialMedia(context.Background(), "Jane Doe", "") {
		t.Fatal("expected a single platform match to count")
	}
}

func TestPresence_DisabledWithoutBaseURL(t *testing.T) {
	client := NewPresenceClient("", "", 2*time.Second, nil, logger.New("test"))

	if client.LinkedIn(context.Background(), "Jane Doe", "Acme") {
		t.Fatal("expected not found with lookups disabled")
	}
	if client.SocialMedia(context.Background(), "Jane Doe", "Acme") {
		t.Fatal("expected not found with lookups disabled")
	}
}

func TestPresence_ServerErrorIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewPresenceClient(server.URL, "", 2*time.Second, nil, logger.New("test"))
	if client.LinkedIn(context.Background(), "Jane Doe", "Acme") {
		t.Fatal("expected server error to degrade to not found")
	}
}

func TestPresence_RepeatLookupHitsCache(t *testing.T) {
	var hits atomic.Int64
	server := presenceServer(t, map[string]bool{"linkedin": true}, &hits)
	defer server.Close()

	cache, _ := newMiniredisCache(t, time.Hour)
	client := NewPresenceClient(server.URL, "", 2*time.Second, cache, logger.New("test"))

	for i := 0; i < 3; i++ {
		if !client.LinkedIn(context.Background(), "Jane Doe", "Acme Solutions Inc") {
			t.Fatal("expected linkedin presence found")
		}
	}
	if hits.Load() != 1 {
		t.Fatalf("expected one upstream hit, got %d", hits.Load())
	}
}

func TestCompanyVerify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/companies/verify" {
			http.NotFound(w, r)
			return
		}
		verified := r.URL.Query().Get("name") == "Acme Solutions Inc"
		json.NewEncoder(w).Encode(map[string]bool{"verified": verified})
	}))
	defer server.Close()

	client := NewCompanyClient(server.URL, "test-key", 2*time.Second, nil, logger.New("test"))

	if !client.Verify(context.Background(), "Acme Solutions Inc") {
		t.Fatal("expected company verified")
	}
	if client.Verify(context.Background(), "Nonexistent Widgets") {
		t.Fatal("expected unknown company unverified")
	}
}

func TestCompanyVerify_DisabledWithoutBaseURL(t *testing.T) {
	client := NewCompanyClient("", "", 2*time.Second, nil, logger.New("test"))
	if client.Verify(context.Background(), "Acme Solutions Inc") {
		t.Fatal("expected not verified with the check disabled")
	}
}
