package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/zatekoja/clinicsite/internal/domain/entities"
	"github.com/zatekoja/clinicsite/internal/domain/repositories"
	"github.com/zatekoja/clinicsite/internal/domain/seed"
	"github.com/zatekoja/clinicsite/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/clinicsite/pkg/errors"
)

// LocationInput is the payload for creating a location
type LocationInput struct {
	Name           string               `json:"name" validate:"required"`
	Slug           string               `json:"slug,omitempty"`
	Address        string               `json:"address" validate:"required"`
	Phone          string               `json:"phone,omitempty"`
	Email          string               `json:"email,omitempty" validate:"omitempty,email"`
	Hours          entities.WeeklyHours `json:"hours,omitempty"`
	Services       []string             `json:"services,omitempty"`
	Images         []string             `json:"images,omitempty"`
	HeroImage      string               `json:"hero_image,omitempty"`
	Description    string               `json:"description,omitempty"`
	MapURL         string               `json:"map_url,omitempty" validate:"omitempty,url"`
	SEOTitle       string               `json:"seo_title,omitempty"`
	SEODescription string               `json:"seo_description,omitempty"`
	IsActive       *bool                `json:"is_active,omitempty"`
	DisplayOrder   int                  `json:"display_order" validate:"gte=0"`
}

// LocationService manages clinic locations. When the relational store is not
// configured, or the locations table does not exist yet, reads are served
// from the built-in locations.
type LocationService struct {
	repo repositories.LocationRepository
	accessor
}

// NewLocationService creates a new location service. repo may be nil.
func NewLocationService(repo repositories.LocationRepository, logger *zerolog.Logger, metrics *observability.Metrics) *LocationService {
	return &LocationService{
		repo:     repo,
		accessor: newAccessor("locations", logger, metrics),
	}
}

// List returns locations in display order
func (s *LocationService) List(ctx context.Context, filter repositories.LocationFilter) []*entities.Location {
	if s.repo == nil {
		return fallbackLocations(filter)
	}
	defer s.observe(ctx, "list", time.Now())

	locations, err := s.repo.List(ctx, filter)
	if err != nil {
		s.report(ctx, "list", err)
		if apperrors.IsNotProvisioned(err) {
			return fallbackLocations(filter)
		}
		return []*entities.Location{}
	}
	return locations
}

// GetBySlug returns the active location with slug, or nil
func (s *LocationService) GetBySlug(ctx context.Context, slug string) *entities.Location {
	if s.repo == nil {
		return findFallbackLocation(func(l *entities.Location) bool { return l.IsActive && l.Slug == slug })
	}
	defer s.observe(ctx, "get_by_slug", time.Now())

	location, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		s.report(ctx, "get_by_slug", err)
		if apperrors.IsNotProvisioned(err) {
			return findFallbackLocation(func(l *entities.Location) bool { return l.IsActive && l.Slug == slug })
		}
		return nil
	}
	return location
}

// GetByID returns the location with id, or nil
func (s *LocationService) GetByID(ctx context.Context, id string) *entities.Location {
	if s.repo == nil {
		return findFallbackLocation(func(l *entities.Location) bool { return l.ID == id })
	}
	defer s.observe(ctx, "get_by_id", time.Now())

	location, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.report(ctx, "get_by_id", err)
		if apperrors.IsNotProvisioned(err) {
			return findFallbackLocation(func(l *entities.Location) bool { return l.ID == id })
		}
		return nil
	}
	return location
}

// Create stores a new location and returns it, or nil
func (s *LocationService) Create(ctx context.Context, input LocationInput) *entities.Location {
	if s.repo == nil {
		return nil
	}

	slug := Slugify(input.Slug)
	if slug == "" {
		slug = Slugify(input.Name)
	}
	hours := input.Hours
	if hours == nil {
		hours = entities.WeeklyHours{}
	}

	now := time.Now().UTC()
	location := &entities.Location{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(input.Name),
		Slug:           slug,
		Address:        input.Address,
		Phone:          input.Phone,
		Email:          input.Email,
		Hours:          hours,
		Services:       input.Services,
		Images:         input.Images,
		HeroImage:      input.HeroImage,
		Description:    input.Description,
		MapURL:         input.MapURL,
		SEOTitle:       input.SEOTitle,
		SEODescription: input.SEODescription,
		IsActive:       input.IsActive == nil || *input.IsActive,
		DisplayOrder:   input.DisplayOrder,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	defer s.observe(ctx, "create", time.Now())
	created, err := s.repo.Create(ctx, location)
	if err != nil {
		s.report(ctx, "create", err)
		return nil
	}
	return created
}

// Update applies patch to the location with id and returns the result, or nil.
// A slug with nothing left after slugifying leaves the current slug in place.
func (s *LocationService) Update(ctx context.Context, id string, patch entities.LocationPatch) *entities.Location {
	if s.repo == nil {
		return nil
	}
	if patch.Slug != nil {
		if slug := Slugify(*patch.Slug); slug != "" {
			patch.Slug = &slug
		} else {
			patch.Slug = nil
		}
	}
	defer s.observe(ctx, "update", time.Now())

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		s.report(ctx, "update", err)
		return nil
	}
	return updated
}

// Delete deactivates the location with id and reports whether it existed.
// The location stays in the unfiltered admin listing.
func (s *LocationService) Delete(ctx context.Context, id string) bool {
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

// ProvisionDefaults inserts the built-in locations into an empty table and
// returns how many were inserted. Unlike the other methods it reports
// failures, since it is only run by operators.
func (s *LocationService) ProvisionDefaults(ctx context.Context) (int, error) {
	if s.repo == nil {
		return 0, apperrors.NewNotProvisionedError("relational store is not configured", nil)
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.log(ctx).Info().Int("existing", count).Msg("Locations table already populated; skipping")
		return 0, nil
	}

	inserted := 0
	now := time.Now().UTC()
	for _, location := range seed.Locations() {
		location.CreatedAt = now
		location.UpdatedAt = now
		if _, err := s.repo.Create(ctx, location); err != nil {
			return inserted, fmt.Errorf("insert location %s: %w", location.Slug, err)
		}
		inserted++
	}
	return inserted, nil
}

func fallbackLocations(filter repositories.LocationFilter) []*entities.Location {
	locations := []*entities.Location{}
	for _, location := range seed.Locations() {
		if filter.ActiveOnly && !location.IsActive {
			continue
		}
		locations = append(locations, location)
	}
	return locations
}

func findFallbackLocation(match func(*entities.Location) bool) *entities.Location {
	for _, location := range seed.Locations() {
		if match(location) {
			return location
		}
	}
	return nil
}
