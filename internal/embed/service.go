// Package embed generates the copy-paste snippet and QR code site owners
// use to install the lead-capture widget.
package embed

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"leadtracker_backend/platform/apperr"

	qrcode "github.com/skip2/go-qrcode"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Options are the recognized embed configuration options. They are consumed
// by the browser-side widget; the backend only validates and echoes them.
type Options struct {
	Theme               string `json:"theme" validate:"omitempty,oneof=light dark"`
	Position            string `json:"position" validate:"omitempty,oneof=bottom-right bottom-left inline"`
	Title               string `json:"title" validate:"omitempty,max=100"`
	Subtitle            string `json:"subtitle" validate:"omitempty,max=200"`
	PrimaryColor        string `json:"primaryColor" validate:"omitempty"`
	ShowVisitorTracking *bool  `json:"showVisitorTracking,omitempty"`
	APIEndpoint         string `json:"apiEndpoint" validate:"omitempty,url,max=500"`
}

// Snippet is the generated install payload.
type Snippet struct {
	Config Options `json:"config"`
	HTML   string  `json:"html"`
}

// Service builds embed snippets and QR codes for the hosted form.
type Service struct {
	baseURL string
}

// NewService creates the embed service. baseURL is where the widget script
// and hosted form live.
func NewService(baseURL string) *Service {
	return &Service{baseURL: strings.TrimRight(baseURL, "/")}
}

// defaults mirror the widget's built-in configuration.
func (s *Service) defaults() Options {
	tracking := true
	return Options{
		Theme:               "light",
		Position:            "bottom-right",
		Title:               "Get Your Free Quote",
		Subtitle:            "Tell us about your project",
		PrimaryColor:        "#3b82f6",
		ShowVisitorTracking: &tracking,
		APIEndpoint:         s.baseURL + "/api/v1/public",
	}
}

// Build merges the caller's options over the defaults and renders the
// install snippet.
func (s *Service) Build(opts Options) (Snippet, error) {
	merged := s.defaults()

	if opts.Theme != "" {
		merged.Theme = opts.Theme
	}
	if opts.Position != "" {
		merged.Position = opts.Position
	}
	if opts.Title != "" {
		merged.Title = opts.Title
	}
	if opts.Subtitle != "" {
		merged.Subtitle = opts.Subtitle
	}
	if opts.PrimaryColor != "" {
		if !hexColorPattern.MatchString(opts.PrimaryColor) {
			return Snippet{}, apperr.Validation("primaryColor must be a #rrggbb hex value")
		}
		merged.PrimaryColor = opts.PrimaryColor
	}
	if opts.ShowVisitorTracking != nil {
		merged.ShowVisitorTracking = opts.ShowVisitorTracking
	}
	if opts.APIEndpoint != "" {
		merged.APIEndpoint = opts.APIEndpoint
	}

	configJSON, err := json.MarshalIndent(merged, "  ", "  ")
	if err != nil {
		return Snippet{}, apperr.Wrap(apperr.KindInternal, "failed to render embed config", err)
	}

	html := fmt.Sprintf(`<script src="%s/embed/leadtracker.js"></script>
<script>
  LeadTracker.init(%s);
</script>`, s.baseURL, string(configJSON))

	return Snippet{Config: merged, HTML: html}, nil
}

// FormURL returns the hosted form address encoded in the QR code.
func (s *Service) FormURL() string {
	return s.baseURL + "/form"
}

// QRCode renders a PNG QR code pointing at the hosted form.
func (s *Service) QRCode(size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(s.FormURL(), qrcode.Medium, size)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to render QR code", err)
	}
	return png, nil
}
