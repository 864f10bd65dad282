package visitors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"leadtracker_backend/platform/logger"
)

// locationUnknown is the fallback when geo lookup fails or times out.
const locationUnknown = "Unknown"

// GeoLocation is the resolved location of a visitor IP.
type GeoLocation struct {
	Location string
	Country  string
	City     string
}

// GeoLookup resolves an IP address to a coarse location. Failure degrades
// to Unknown, never an error.
type GeoLookup interface {
	Lookup(ctx context.Context, ip string) GeoLocation
}

// GeoIPClient resolves visitor locations through an ipapi-style endpoint.
type GeoIPClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewGeoIPClient creates a geo-IP client with a bounded per-lookup timeout.
func NewGeoIPClient(baseURL string, timeout time.Duration, log *logger.Logger) *GeoIPClient {
	return &GeoIPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Lookup resolves ip to a city/region/country label.
func (g *GeoIPClient) Lookup(ctx context.Context, ip string) GeoLocation {
	unknown := GeoLocation{Location: locationUnknown, Country: locationUnknown, City: locationUnknown}
	if g.baseURL == "" || ip == "" {
		return unknown
	}

	endpoint := fmt.Sprintf("%s/%s/json/", g.baseURL, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return unknown
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.log.LookupDegraded("geoip", ip, err)
		return unknown
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return unknown
	}

	var body struct {
		City        string `json:"city"`
		Region      string `json:"region"`
		CountryName string `json:"country_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		g.log.LookupDegraded("geoip_decode", ip, err)
		return unknown
	}

	return GeoLocation{
		Location: fmt.Sprintf("%s, %s, %s", body.City, body.Region, body.CountryName),
		Country:  body.CountryName,
		City:     body.City,
	}
}

// Compile-time check that GeoIPClient implements GeoLookup.
var _ GeoLookup = (*GeoIPClient)(nil)
