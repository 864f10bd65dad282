package repository

import (
	"context"

	"leadtracker_backend/internal/leads/domain"

	"github.com/google/uuid"
)

// UpdateParams carries a partial dashboard-side update for a lead.
// Nil fields are left unchanged; the scoring pipeline never re-runs.
type UpdateParams struct {
	ID             uuid.UUID
	Status         *string
	Phone          *string
	Location       *string
	AdditionalInfo *string
}

// Repository persists and retrieves lead records. Create must be safe under
// concurrent submissions: ids are unique and readers never observe a
// partially written record.
type Repository interface {
	Create(ctx context.Context, lead domain.Lead) (domain.Lead, error)
	List(ctx context.Context) ([]domain.Lead, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Lead, error)
	Update(ctx context.Context, params UpdateParams) (domain.Lead, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
