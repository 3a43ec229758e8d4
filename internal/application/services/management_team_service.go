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

// ManagementTeamInput is the payload for adding a management team member
type ManagementTeamInput struct {
	Name        string   `json:"name" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Bio         string   `json:"bio,omitempty"`
	Image       string   `json:"image,omitempty"`
	Credentials string   `json:"credentials,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
	OrderIndex  int      `json:"order_index" validate:"gte=0"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// ManagementTeamService manages the leadership roster
type ManagementTeamService struct {
	repo repositories.ManagementTeamRepository
	accessor
}

// NewManagementTeamService creates a new management team service
func NewManagementTeamService(repo repositories.ManagementTeamRepository, logger *zerolog.Logger, metrics *observability.Metrics) *ManagementTeamService {
	return &ManagementTeamService{
		repo:     repo,
		accessor: newAccessor("management_team", logger, metrics),
	}
}

// List returns members in roster order
func (s *ManagementTeamService) List(ctx context.Context, filter repositories.ManagementTeamFilter) []*entities.ManagementTeamMember {
	if s.repo == nil {
		return []*entities.ManagementTeamMember{}
	}
	defer s.observe(ctx, "list", time.Now())

	members, err := s.repo.List(ctx, filter)
	if err != nil {
		s.report(ctx, "list", err)
		return []*entities.ManagementTeamMember{}
	}
	return members
}

// GetByID returns the member with id, or nil
func (s *ManagementTeamService) GetByID(ctx context.Context, id string) *entities.ManagementTeamMember {
	if s.repo == nil {
		return nil
	}
	defer s.observe(ctx, "get_by_id", time.Now())

	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.report(ctx, "get_by_id", err)
		return nil
	}
	return member
}

// Create adds a member and returns it, or nil
func (s *ManagementTeamService) Create(ctx context.Context, input ManagementTeamInput) *entities.ManagementTeamMember {
	if s.repo == nil {
		return nil
	}

	now := time.Now().UTC()
	member := &entities.ManagementTeamMember{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(input.Name),
		Title:       strings.TrimSpace(input.Title),
		Bio:         input.Bio,
		Image:       input.Image,
		Credentials: input.Credentials,
		Specialties: input.Specialties,
		OrderIndex:  input.OrderIndex,
		IsActive:    input.IsActive == nil || *input.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	defer s.observe(ctx, "create", time.Now())
	created, err := s.repo.Create(ctx, member)
	if err != nil {
		s.report(ctx, "create", err)
		return nil
	}
	return created
}

// Update applies patch to the member with id and returns the result, or nil
func (s *ManagementTeamService) Update(ctx context.Context, id string, patch entities.ManagementTeamMemberPatch) *entities.ManagementTeamMember {
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

// Delete deactivates the member with id and reports whether it existed
func (s *ManagementTeamService) Delete(ctx context.Context, id string) bool {
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
