package visitors

import (
	"context"
	"net/url"
	"strings"
	"time"

	"leadtracker_backend/internal/events"
	"leadtracker_backend/platform/logger"

	"github.com/google/uuid"
)

// Service records visitor beacons and serves the dashboard traffic views.
type Service struct {
	repo Repository
	geo  GeoLookup
	bus  events.Bus
	log  *logger.Logger
}

// NewService creates the visitors service.
func NewService(repo Repository, geo GeoLookup, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, geo: geo, bus: bus, log: log}
}

// Track records a visitor beacon. A visitor already seen with the same IP
// and user agent is not recorded again. Geo lookup failure degrades to
// Unknown; the beacon is stored regardless.
func (s *Service) Track(ctx context.Context, ipAddress string, req TrackVisitorRequest) (*VisitorResponse, error) {
	seen, err := s.repo.Exists(ctx, ipAddress, req.UserAgent)
	if err != nil {
		return nil, err
	}
	if seen {
		return nil, nil
	}

	geo := s.geo.Lookup(ctx, ipAddress)

	now := time.Now().UTC()
	visitor := Visitor{
		ID:               uuid.New(),
		IPAddress:        ipAddress,
		UserAgent:        req.UserAgent,
		Language:         req.Language,
		Referrer:         req.Referrer,
		URL:              req.URL,
		Page:             pageName(req.URL),
		Device:           classifyDevice(req.UserAgent),
		Location:         geo.Location,
		Country:          geo.Country,
		City:             geo.City,
		CreatedAt:        now,
		CreatedAtDisplay: now.Format(createdAtDisplayLayout),
	}

	created, err := s.repo.Create(ctx, visitor)
	if err != nil {
		return nil, err
	}

	if err := s.repo.PruneBeyond(ctx, retentionLimit); err != nil {
		s.log.DatabaseError("prune visitors", err)
	}

	s.bus.Publish(ctx, events.VisitorTracked{
		BaseEvent: events.NewBaseEvent(),
		VisitorID: created.ID,
		IPAddress: created.IPAddress,
		Page:      created.Page,
	})

	resp := toVisitorResponse(created)
	return &resp, nil
}

// List retrieves all visitors, most recent first.
func (s *Service) List(ctx context.Context) (VisitorListResponse, error) {
	visitors, err := s.repo.List(ctx)
	if err != nil {
		return VisitorListResponse{}, err
	}

	items := make([]VisitorResponse, 0, len(visitors))
	for _, v := range visitors {
		items = append(items, toVisitorResponse(v))
	}

	return VisitorListResponse{Items: items, Total: len(items)}, nil
}

// GetByID retrieves a single visitor.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (VisitorResponse, error) {
	visitor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return VisitorResponse{}, err
	}
	return toVisitorResponse(visitor), nil
}

// GetStats returns the dashboard traffic summary.
func (s *Service) GetStats(ctx context.Context) (Stats, error) {
	return s.repo.Stats(ctx)
}

// classifyDevice buckets a user agent into Mobile, Tablet, or Desktop.
func classifyDevice(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "mobile") || strings.Contains(ua, "android") || strings.Contains(ua, "iphone"):
		return "Mobile"
	case strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad"):
		return "Tablet"
	default:
		return "Desktop"
	}
}

// pageName derives a readable page label from the visited URL.
func pageName(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "Unknown"
	}

	path := parsed.Path
	switch {
	case path == "" || path == "/":
		return "Home"
	case strings.Contains(path, "/about"):
		return "About"
	case strings.Contains(path, "/services"):
		return "Services"
	case strings.Contains(path, "/contact"):
		return "Contact"
	case strings.Contains(path, "/blog"):
		return "Blog"
	}

	segments := strings.Split(strings.TrimRight(path, "/"), "/")
	if last := segments[len(segments)-1]; last != "" {
		return last
	}
	return "Unknown"
}
