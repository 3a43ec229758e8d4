package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/zatekoja/clinicsite/internal/domain/entities"
	"github.com/zatekoja/clinicsite/internal/domain/repositories"
	"github.com/zatekoja/clinicsite/internal/infrastructure/observability"
)

// FAQInput is the payload for creating an FAQ
type FAQInput struct {
	Question     string `json:"question" validate:"required"`
	Answer       string `json:"answer" validate:"required"`
	Category     string `json:"category,omitempty"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
	IsActive     *bool  `json:"is_active,omitempty"`
}

// FAQService manages FAQ entries
type FAQService struct {
	repo repositories.FAQRepository
	accessor
}

// NewFAQService creates a new FAQ service
func NewFAQService(repo repositories.FAQRepository, logger *zerolog.Logger, metrics *observability.Metrics) *FAQService {
	return &FAQService{
		repo:     repo,
		accessor: newAccessor("faq", logger, metrics),
	}
}

// List returns FAQs in display order
func (s *FAQService) List(ctx context.Context, filter repositories.FAQFilter) []*entities.FAQ {
	if s.repo == nil {
		return []*entities.FAQ{}
	}
	defer s.observe(ctx, "list", time.Now())

	faqs, err := s.repo.List(ctx, filter)
	if err != nil {
		s.report(ctx, "list", err)
		return []*entities.FAQ{}
	}
	return faqs
}

// GetByID returns the FAQ with id, or nil
func (s *FAQService) GetByID(ctx context.Context, id string) *entities.FAQ {
	if s.repo == nil {
		return nil
	}
	defer s.observe(ctx, "get_by_id", time.Now())

	faq, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.report(ctx, "get_by_id", err)
		return nil
	}
	return faq
}

// Create stores a new FAQ and returns it, or nil
func (s *FAQService) Create(ctx context.Context, input FAQInput) *entities.FAQ {
	if s.repo == nil {
		return nil
	}

	now := time.Now().UTC()
	faq := &entities.FAQ{
		ID:           uuid.New().String(),
		Question:     strings.TrimSpace(input.Question),
		Answer:       strings.TrimSpace(input.Answer),
		Category:     input.Category,
		DisplayOrder: input.DisplayOrder,
		IsActive:     input.IsActive == nil || *input.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	defer s.observe(ctx, "create", time.Now())
	created, err := s.repo.Create(ctx, faq)
	if err != nil {
		s.report(ctx, "create", err)
		return nil
	}
	return created
}

// Update applies patch to the FAQ with id and returns the result, or nil
func (s *FAQService) Update(ctx context.Context, id string, patch entities.FAQPatch) *entities.FAQ {
	if s.repo == nil {
		return nil
	}
	defer s.observe(ctx, "update", time.Now())

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		s.report(ctx, "update", err)
		return nil
	}
	return updated
}

// Delete removes the FAQ with id and reports whether it existed
func (s *FAQService) Delete(ctx context.Context, id string) bool {
	if s.repo == nil {
		return false
	}
	defer s.observe(ctx, "delete", time.Now())

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.report(ctx, "delete", err)
		return false
	}
	return deleted
}
