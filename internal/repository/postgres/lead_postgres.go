package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"leadintake/internal/model"
	"leadintake/internal/repository"
)

// LeadPostgres is a PostgreSQL implementation of repository.LeadRepository.
type LeadPostgres struct {
	db *sql.DB
}

// NewLeadPostgres creates a new LeadPostgres repository.
func NewLeadPostgres(db *sql.DB) *LeadPostgres {
	return &LeadPostgres{db: db}
}

var _ repository.LeadRepository = (*LeadPostgres)(nil)

// Create inserts a new lead row. A nil TechUsed is written as an empty array.
func (r *LeadPostgres) Create(ctx context.Context, lead *model.Lead) (*model.Lead, error) {
	const q = `
		INSERT INTO "Lead" (id, "firstName", "lastName", "companyName", budget, timeline, "techUsed", "createdAt")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING "createdAt"
	`
	techUsed := lead.TechUsed
	if techUsed == nil {
		techUsed = []string{}
	}

	out := *lead
	out.TechUsed = techUsed
	if err := r.db.QueryRowContext(ctx, q,
		lead.ID,
		lead.FirstName,
		lead.LastName,
		lead.CompanyName,
		lead.Budget,
		lead.Timeline,
		pq.Array(techUsed),
		lead.CreatedAt,
	).Scan(&out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}
