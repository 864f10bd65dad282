package verify

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"leadtracker_backend/platform/logger"

	"golang.org/x/net/html"
)

// maxProbeBody bounds how much of a page is read when sniffing the title.
const maxProbeBody = 64 << 10

// WebsiteClient probes lead websites for reachability and a display title.
// Probes are not cached: reachability is checked live per submission.
type WebsiteClient struct {
	httpClient *http.Client
	timeout    time.Duration
	log        *logger.Logger
}

// NewWebsiteClient creates a website prober with a bounded per-probe timeout.
func NewWebsiteClient(timeout time.Duration, log *logger.Logger) *WebsiteClient {
	return &WebsiteClient{
		httpClient: &http.Client{Timeout: timeout},
		timeout:    timeout,
		log:        log,
	}
}

// Probe reports whether the website responds, plus a best-effort page title.
// Any error, timeout, or server-error status degrades to ok=false.
func (w *WebsiteClient) Probe(ctx context.Context, url string) (bool, string) {
	url = normalizeURL(url)
	if url == "" {
		return false, ""
	}

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, ""
	}
	req.Header.Set("User-Agent", "LeadTracker/1.0 (+website verification)")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		w.log.LookupDegraded("website_probe", url, err)
		return false, ""
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return false, ""
	}

	return true, pageTitle(io.LimitReader(resp.Body, maxProbeBody))
}

// normalizeURL defaults bare domains to https.
func normalizeURL(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}
	return url
}

// pageTitle extracts the <title> text from an HTML stream.
func pageTitle(r io.Reader) string {
	tokenizer := html.NewTokenizer(r)
	inTitle := false
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if string(name) == "title" {
				inTitle = true
			}
		case html.TextToken:
			if inTitle {
				return strings.TrimSpace(string(tokenizer.Text()))
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if string(name) == "title" {
				return ""
			}
		}
	}
}
