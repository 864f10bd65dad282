package verify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"leadtracker_backend/platform/logger"
)

// CompanyClient asks an external company-data API whether a company name is
// plausible (registered, indexed, or otherwise known). Failure counts as
// not verified.
type CompanyClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *Cache
	log        *logger.Logger
}

// NewCompanyClient creates a company plausibility client. An empty baseURL
// disables the check: every company reports not verified.
func NewCompanyClient(baseURL, apiKey string, timeout time.Duration, cache *Cache, log *logger.Logger) *CompanyClient {
	return &CompanyClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache,
		log:        log,
	}
}

// Verify reports whether the external source knows the company.
func (c *CompanyClient) Verify(ctx context.Context, companyName string) bool {
	key := "company:" + strings.ToLower(companyName)
	return c.cache.Remember(ctx, key, func() bool {
		return c.query(ctx, companyName)
	})
}

func (c *CompanyClient) query(ctx context.Context, companyName string) bool {
	if c.baseURL == "" {
		return false
	}

	q := url.Values{}
	q.Set("name", companyName)

	endpoint := c.baseURL + "/v1/companies/verify?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.LookupDegraded("company_verify", companyName, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	var body struct {
		Verified bool `json:"verified"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.log.LookupDegraded("company_decode", companyName, err)
		return false
	}

	return body.Verified
}
