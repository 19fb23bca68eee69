package repository

import (
	"context"

	"leadintake/internal/model"
)

// LeadRepository defines data access for leads.
// No business logic here, strictly persistence operations.
type LeadRepository interface {
	// Create inserts one lead row. The caller supplies ID and CreatedAt.
	// Returns the stored lead as written.
	Create(ctx context.Context, lead *model.Lead) (*model.Lead, error)
}
