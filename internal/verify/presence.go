package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"leadtracker_backend/platform/logger"
)

// socialPlatforms is the fixed platform set checked for social presence.
// The lead counts as found when at least one platform matches.
var socialPlatforms = []string{"twitter", "facebook", "instagram"}

// PresenceClient looks up person/company presence through an external
// presence-search API. Each query hits one platform endpoint and returns a
// boolean; any failure counts as not found.
type PresenceClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *Cache
	log        *logger.Logger
}

// NewPresenceClient creates a presence lookup client. An empty baseURL
// disables lookups entirely: every query reports not found.
func NewPresenceClient(baseURL, apiKey string, timeout time.Duration, cache *Cache, log *logger.Logger) *PresenceClient {
	return &PresenceClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache,
		log:        log,
	}
}

// LinkedIn reports a LinkedIn presence for the given name and company.
func (p *PresenceClient) LinkedIn(ctx context.Context, fullName, companyName string) bool {
	key := fmt.Sprintf("presence:linkedin:%s:%s", strings.ToLower(fullName), strings.ToLower(companyName))
	return p.cache.Remember(ctx, key, func() bool {
		return p.query(ctx, "linkedin", fullName, companyName)
	})
}

// SocialMedia reports presence on at least one social platform.
func (p *PresenceClient) SocialMedia(ctx context.Context, fullName, companyName string) bool {
	key := fmt.Sprintf("presence:social:%s:%s", strings.ToLower(fullName), strings.ToLower(companyName))
	return p.cache.Remember(ctx, key, func() bool {
		for _, platform := range socialPlatforms {
			if p.query(ctx, platform, fullName, companyName) {
				return true
			}
		}
		return false
	})
}

func (p *PresenceClient) query(ctx context.Context, platform, fullName, companyName string) bool {
	if p.baseURL == "" {
		return false
	}

	q := url.Values{}
	q.Set("platform", platform)
	q.Set("name", fullName)
	if companyName != "" {
		q.Set("company", companyName)
	}

	endpoint := p.baseURL + "/v1/presence?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false
	}
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.LookupDegraded("presence_lookup", platform, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	var body struct {
		Found bool `json:"found"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		p.log.LookupDegraded("presence_decode", platform, err)
		return false
	}

	return body.Found
}
