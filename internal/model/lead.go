package model

import "time"

// Lead is a prospective client's intake record.
// Budget and Timeline are free-form text as submitted by the client.
type Lead struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	CompanyName string    `json:"company_name"`
	Budget      string    `json:"budget"`
	Timeline    string    `json:"timeline"`
	TechUsed    []string  `json:"tech_used"`
	CreatedAt   time.Time `json:"created_at"`
}
