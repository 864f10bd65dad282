// Package repository persists lead records in PostgreSQL.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadtracker_backend/internal/leads/domain"
	"leadtracker_backend/platform/apperr"
)

const leadNotFoundMessage = "lead not found"

const leadColumns = `
	id, full_name, company_name, email, phone, website, location,
	additional_info, service_interest, budget_range, timeframe,
	validation, scoring, score, status, created_at, created_at_display`

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new leads repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Create inserts a lead record. The validation report and scoring breakdown
// are stored as JSONB alongside the denormalized score and status columns.
func (r *Repo) Create(ctx context.Context, lead domain.Lead) (domain.Lead, error) {
	validationJSON, err := json.Marshal(lead.Validation)
	if err != nil {
		return domain.Lead{}, fmt.Errorf("marshal validation report: %w", err)
	}
	scoringJSON, err := json.Marshal(lead.Scoring)
	if err != nil {
		return domain.Lead{}, fmt.Errorf("marshal scoring breakdown: %w", err)
	}

	query := `
		INSERT INTO leads (
			id, full_name, company_name, email, phone, website, location,
			additional_info, service_interest, budget_range, timeframe,
			validation, scoring, score, status, created_at, created_at_display
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err = r.pool.Exec(ctx, query,
		lead.ID, lead.Submission.FullName, lead.Submission.CompanyName,
		lead.Submission.Email, lead.Submission.Phone, lead.Submission.Website,
		lead.Submission.Location, lead.Submission.AdditionalInfo,
		lead.Submission.ServiceInterest, lead.Submission.BudgetRange,
		lead.Submission.Timeframe, validationJSON, scoringJSON,
		string(lead.Score), lead.Status, lead.CreatedAt, lead.CreatedAtDisplay,
	)
	if err != nil {
		return domain.Lead{}, fmt.Errorf("insert lead: %w", err)
	}

	return lead, nil
}

// List retrieves all leads, most recent first.
func (r *Repo) List(ctx context.Context) ([]domain.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var leads []domain.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}

	return leads, nil
}

// GetByID retrieves a lead by its ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead, err := scanLead(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Lead{}, apperr.NotFound(leadNotFoundMessage)
		}
		return domain.Lead{}, fmt.Errorf("get lead by id: %w", err)
	}

	return lead, nil
}

// Update applies a partial dashboard update and returns the updated lead.
func (r *Repo) Update(ctx context.Context, params UpdateParams) (domain.Lead, error) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Status != nil {
		add("status", *params.Status)
	}
	if params.Phone != nil {
		add("phone", *params.Phone)
	}
	if params.Location != nil {
		add("location", *params.Location)
	}
	if params.AdditionalInfo != nil {
		add("additional_info", *params.AdditionalInfo)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, params.ID)
	}

	args = append(args, params.ID)
	query := fmt.Sprintf(
		`UPDATE leads SET %s WHERE id = $%d RETURNING `+leadColumns,
		strings.Join(sets, ", "), len(args),
	)

	lead, err := scanLead(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Lead{}, apperr.NotFound(leadNotFoundMessage)
		}
		return domain.Lead{}, fmt.Errorf("update lead: %w", err)
	}

	return lead, nil
}

// Delete removes a lead by its ID.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(leadNotFoundMessage)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (domain.Lead, error) {
	var (
		lead           domain.Lead
		validationJSON []byte
		scoringJSON    []byte
		score          string
		createdAt      time.Time
	)

	err := row.Scan(
		&lead.ID, &lead.Submission.FullName, &lead.Submission.CompanyName,
		&lead.Submission.Email, &lead.Submission.Phone, &lead.Submission.Website,
		&lead.Submission.Location, &lead.Submission.AdditionalInfo,
		&lead.Submission.ServiceInterest, &lead.Submission.BudgetRange,
		&lead.Submission.Timeframe, &validationJSON, &scoringJSON,
		&score, &lead.Status, &createdAt, &lead.CreatedAtDisplay,
	)
	if err != nil {
		return domain.Lead{}, err
	}

	if err := json.Unmarshal(validationJSON, &lead.Validation); err != nil {
		return domain.Lead{}, fmt.Errorf("unmarshal validation report: %w", err)
	}
	if err := json.Unmarshal(scoringJSON, &lead.Scoring); err != nil {
		return domain.Lead{}, fmt.Errorf("unmarshal scoring breakdown: %w", err)
	}

	lead.Score = domain.Category(score)
	lead.CreatedAt = createdAt

	return lead, nil
}
