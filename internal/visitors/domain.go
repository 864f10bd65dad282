// Package visitors records embed-widget visitor beacons: who viewed a page
// hosting the widget, enriched with geo-IP and device classification.
package visitors

import (
	"time"

	"github.com/google/uuid"
)

// createdAtDisplayLayout matches the dashboard's display formatting.
const createdAtDisplayLayout = "Jan 02, 2006 15:04"

// retentionLimit caps how many visitor records are kept; older ones are
// pruned on insert.
const retentionLimit = 1000

// Visitor is one recorded page view from the embed widget.
type Visitor struct {
	ID               uuid.UUID
	IPAddress        string
	UserAgent        string
	Language         string
	Referrer         string
	URL              string
	Page             string
	Device           string
	Location         string
	Country          string
	City             string
	CreatedAt        time.Time
	CreatedAtDisplay string
}

// Stats summarizes visitor traffic for the dashboard.
type Stats struct {
	Total  int `json:"total"`
	Unique int `json:"unique"`
	Today  int `json:"today"`
}
