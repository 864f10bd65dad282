package visitors

import (
	"time"

	"github.com/google/uuid"
)

// TrackVisitorRequest is the beacon payload the embed script posts. The
// visitor's IP comes from the connection, not the payload.
type TrackVisitorRequest struct {
	UserAgent string `json:"userAgent" validate:"required,max=1000"`
	Language  string `json:"language" validate:"omitempty,max=50"`
	Referrer  string `json:"referrer" validate:"omitempty,max=2000"`
	URL       string `json:"url" validate:"required,max=2000"`
}

// VisitorResponse is one visitor record for the dashboard.
type VisitorResponse struct {
	ID        uuid.UUID `json:"id"`
	IPAddress string    `json:"ipAddress"`
	UserAgent string    `json:"userAgent"`
	Language  string    `json:"language,omitempty"`
	Referrer  string    `json:"referrer,omitempty"`
	URL       string    `json:"url"`
	Page      string    `json:"pageVisited"`
	Device    string    `json:"device"`
	Location  string    `json:"location"`
	Country   string    `json:"country"`
	City      string    `json:"city"`
	Timestamp time.Time `json:"timestamp"`
	CreatedAt string    `json:"createdAt"`
}

// VisitorListResponse wraps the dashboard visitor list.
type VisitorListResponse struct {
	Items []VisitorResponse `json:"items"`
	Total int               `json:"total"`
}

func toVisitorResponse(v Visitor) VisitorResponse {
	return VisitorResponse{
		ID:        v.ID,
		IPAddress: v.IPAddress,
		UserAgent: v.UserAgent,
		Language:  v.Language,
		Referrer:  v.Referrer,
		URL:       v.URL,
		Page:      v.Page,
		Device:    v.Device,
		Location:  v.Location,
		Country:   v.Country,
		City:      v.City,
		Timestamp: v.CreatedAt,
		CreatedAt: v.CreatedAtDisplay,
	}
}
