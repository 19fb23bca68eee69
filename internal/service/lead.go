package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"leadintake/internal/model"
	"leadintake/internal/repository"
)

// LeadInput carries the six intake fields exactly as the caller submitted them.
type LeadInput struct {
	FirstName   string
	LastName    string
	CompanyName string
	Budget      string
	Timeline    string
	TechUsed    []string
}

// LeadService defines the lead intake use case.
type LeadService interface {
	// ProcessLead stores one lead and acknowledges it. Store failures are
	// reported in the returned value, never as a Go error.
	ProcessLead(ctx context.Context, in LeadInput) model.ProcessLeadResponse
}

type leadService struct {
	repo repository.LeadRepository
	log  *zap.Logger
	now  func() time.Time
}

// NewLeadService constructs a new LeadService.
func NewLeadService(repo repository.LeadRepository, log *zap.Logger) LeadService {
	if log == nil {
		log = zap.NewNop()
	}
	return &leadService{repo: repo, log: log, now: time.Now}
}

func (s *leadService) ProcessLead(ctx context.Context, in LeadInput) model.ProcessLeadResponse {
	lead := &model.Lead{
		ID:          uuid.NewString(),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		CompanyName: in.CompanyName,
		Budget:      in.Budget,
		Timeline:    in.Timeline,
		TechUsed:    in.TechUsed,
		CreatedAt:   s.now().UTC(),
	}

	if _, err := s.repo.Create(ctx, lead); err != nil {
		s.log.Warn("lead processing failed", zap.String("lead_id", lead.ID), zap.Error(err))
		return model.LeadFailed(err)
	}

	s.log.Debug("lead stored", zap.String("lead_id", lead.ID))
	return model.LeadAccepted()
}
