package visitors

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadtracker_backend/platform/apperr"
)

const visitorNotFoundMessage = "visitor not found"

const visitorColumns = `
	id, ip_address, user_agent, language, referrer, url, page, device,
	location, country, city, created_at, created_at_display`

// Repository persists visitor records.
type Repository interface {
	Create(ctx context.Context, visitor Visitor) (Visitor, error)
	Exists(ctx context.Context, ipAddress, userAgent string) (bool, error)
	List(ctx context.Context) ([]Visitor, error)
	GetByID(ctx context.Context, id uuid.UUID) (Visitor, error)
	Stats(ctx context.Context) (Stats, error)
	PruneBeyond(ctx context.Context, keep int) error
}

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new visitors repository.
func NewRepository(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Create inserts a visitor record.
func (r *Repo) Create(ctx context.Context, visitor Visitor) (Visitor, error) {
	query := `
		INSERT INTO visitors (
			id, ip_address, user_agent, language, referrer, url, page,
			device, location, country, city, created_at, created_at_display
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, query,
		visitor.ID, visitor.IPAddress, visitor.UserAgent, visitor.Language,
		visitor.Referrer, visitor.URL, visitor.Page, visitor.Device,
		visitor.Location, visitor.Country, visitor.City,
		visitor.CreatedAt, visitor.CreatedAtDisplay,
	)
	if err != nil {
		return Visitor{}, fmt.Errorf("insert visitor: %w", err)
	}

	return visitor, nil
}

// Exists reports whether a visitor with the same IP and user agent was
// already recorded.
func (r *Repo) Exists(ctx context.Context, ipAddress, userAgent string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM visitors WHERE ip_address = $1 AND user_agent = $2)`,
		ipAddress, userAgent,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("visitor exists: %w", err)
	}
	return exists, nil
}

// List retrieves all visitors, most recent first.
func (r *Repo) List(ctx context.Context) ([]Visitor, error) {
	query := `SELECT ` + visitorColumns + ` FROM visitors ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	defer rows.Close()

	var visitors []Visitor
	for rows.Next() {
		var v Visitor
		var createdAt time.Time
		if err := rows.Scan(
			&v.ID, &v.IPAddress, &v.UserAgent, &v.Language, &v.Referrer,
			&v.URL, &v.Page, &v.Device, &v.Location, &v.Country, &v.City,
			&createdAt, &v.CreatedAtDisplay,
		); err != nil {
			return nil, fmt.Errorf("scan visitor: %w", err)
		}
		v.CreatedAt = createdAt
		visitors = append(visitors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}

	return visitors, nil
}

// GetByID retrieves a visitor by its ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Visitor, error) {
	query := `SELECT ` + visitorColumns + ` FROM visitors WHERE id = $1`

	var v Visitor
	var createdAt time.Time
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.IPAddress, &v.UserAgent, &v.Language, &v.Referrer,
		&v.URL, &v.Page, &v.Device, &v.Location, &v.Country, &v.City,
		&createdAt, &v.CreatedAtDisplay,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Visitor{}, apperr.NotFound(visitorNotFoundMessage)
		}
		return Visitor{}, fmt.Errorf("get visitor by id: %w", err)
	}
	v.CreatedAt = createdAt

	return v, nil
}

// Stats returns total, unique-by-IP, and today's visitor counts.
func (r *Repo) Stats(ctx context.Context) (Stats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(DISTINCT ip_address),
			COUNT(*) FILTER (WHERE created_at >= date_trunc('day', now()))
		FROM visitors`

	var stats Stats
	if err := r.pool.QueryRow(ctx, query).Scan(&stats.Total, &stats.Unique, &stats.Today); err != nil {
		return Stats{}, fmt.Errorf("visitor stats: %w", err)
	}

	return stats, nil
}

// PruneBeyond deletes all but the newest keep records.
func (r *Repo) PruneBeyond(ctx context.Context, keep int) error {
	query := `
		DELETE FROM visitors
		WHERE id NOT IN (
			SELECT id FROM visitors ORDER BY created_at DESC LIMIT $1
		)`

	if _, err := r.pool.Exec(ctx, query, keep); err != nil {
		return fmt.Errorf("prune visitors: %w", err)
	}
	return nil
}
