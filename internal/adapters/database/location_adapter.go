package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
	"github.com/zatekoja/clinicsite/internal/domain/entities"
	"github.com/zatekoja/clinicsite/internal/domain/repositories"
	"github.com/zatekoja/clinicsite/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/clinicsite/pkg/errors"
)

const locationsTable = "locations"

var locationColumns = []interface{}{
	"id", "name", "slug", "address", "phone", "email", "hours",
	"services", "images", "hero_image", "description", "map_url",
	"seo_title", "seo_description", "is_active", "display_order",
	"created_at", "updated_at",
}

// LocationAdapter implements LocationRepository
type LocationAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewLocationAdapter creates a new location adapter
func NewLocationAdapter(client *postgres.Client) repositories.LocationRepository {
	return &LocationAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List retrieves locations in display order
func (a *LocationAdapter) List(ctx context.Context, filter repositories.LocationFilter) ([]*entities.Location, error) {
	ds := a.db.Select(locationColumns...).From(locationsTable)

	if filter.ActiveOnly {
		ds = ds.Where(goqu.Ex{"is_active": true})
	}

	query, args, err := ds.Order(goqu.I("display_order").Asc()).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build location list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, queryError("failed to list locations", locationsTable, err)
	}
	defer rows.Close()

	locations := []*entities.Location{}
	for rows.Next() {
		location, err := scanLocation(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan location", err)
		}
		locations = append(locations, location)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("failed to list locations", locationsTable, err)
	}

	return locations, nil
}

// GetBySlug retrieves an active location by slug
func (a *LocationAdapter) GetBySlug(ctx context.Context, slug string) (*entities.Location, error) {
	return a.getOne(ctx, goqu.Ex{"slug": slug, "is_active": true}, "slug", slug)
}

// GetByID retrieves a location by ID, active or not
func (a *LocationAdapter) GetByID(ctx context.Context, id string) (*entities.Location, error) {
	return a.getOne(ctx, goqu.Ex{"id": id}, "id", id)
}

func (a *LocationAdapter) getOne(ctx context.Context, where goqu.Ex, field, value string) (*entities.Location, error) {
	query, args, err := a.db.Select(locationColumns...).
		From(locationsTable).
		Where(where).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build location query", err)
	}

	location, err := scanLocation(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("location with %s %s not found", field, value))
	}
	if err != nil {
		return nil, queryError("failed to get location", locationsTable, err)
	}

	return location, nil
}

// Create inserts a location and returns the stored row
func (a *LocationAdapter) Create(ctx context.Context, location *entities.Location) (*entities.Location, error) {
	if location == nil {
		return nil, apperrors.NewInternalError("location is nil", fmt.Errorf("location is nil"))
	}

	record := goqu.Record{
		"id":              location.ID,
		"name":            location.Name,
		"slug":            location.Slug,
		"address":         location.Address,
		"phone":           nullString(location.Phone),
		"email":           nullString(location.Email),
		"hours":           location.Hours,
		"services":        pq.Array(orEmpty(location.Services)),
		"images":          pq.Array(orEmpty(location.Images)),
		"hero_image":      nullString(location.HeroImage),
		"description":     nullString(location.Description),
		"map_url":         nullString(location.MapURL),
		"seo_title":       nullString(location.SEOTitle),
		"seo_description": nullString(location.SEODescription),
		"is_active":       location.IsActive,
		"display_order":   location.DisplayOrder,
		"created_at":      location.CreatedAt,
		"updated_at":      location.UpdatedAt,
	}

	query, args, err := a.db.Insert(locationsTable).Rows(record).Returning(locationColumns...).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build location insert query", err)
	}

	created, err := scanLocation(a.client.DB().QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, queryError("failed to create location", locationsTable, err)
	}

	return created, nil
}

// Update applies the non-nil fields of patch and returns the stored row
func (a *LocationAdapter) Update(ctx context.Context, id string, patch entities.LocationPatch) (*entities.Location, error) {
	record := goqu.Record{"updated_at": time.Now().UTC()}

	setString(record, "name", patch.Name)
	setString(record, "slug", patch.Slug)
	setString(record, "address", patch.Address)
	setNullString(record, "phone", patch.Phone)
	setNullString(record, "email", patch.Email)
	if patch.Hours != nil {
		record["hours"] = patch.Hours
	}
	if patch.Services != nil {
		record["services"] = pq.Array(patch.Services)
	}
	if patch.Images != nil {
		record["images"] = pq.Array(patch.Images)
	}
	setNullString(record, "hero_image", patch.HeroImage)
	setNullString(record, "description", patch.Description)
	setNullString(record, "map_url", patch.MapURL)
	setNullString(record, "seo_title", patch.SEOTitle)
	setNullString(record, "seo_description", patch.SEODescription)
	if patch.IsActive != nil {
		record["is_active"] = *patch.IsActive
	}
	if patch.DisplayOrder != nil {
		record["display_order"] = *patch.DisplayOrder
	}

	query, args, err := a.db.Update(locationsTable).
		Set(record).
		Where(goqu.Ex{"id": id}).
		Returning(locationColumns...).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build location update query", err)
	}

	updated, err := scanLocation(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("location with id %s not found", id))
	}
	if err != nil {
		return nil, queryError("failed to update location", locationsTable, err)
	}

	return updated, nil
}

// Delete deactivates a location (soft delete)
func (a *LocationAdapter) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := a.db.Update(locationsTable).
		Set(goqu.Record{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build location delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return false, queryError("failed to delete location", locationsTable, err)
	}

	return affected(result)
}

// Count returns the number of stored locations, active or not
func (a *LocationAdapter) Count(ctx context.Context) (int, error) {
	query, args, err := a.db.Select(goqu.COUNT(goqu.Star())).From(locationsTable).ToSQL()
	if err != nil {
		return 0, apperrors.NewInternalError("failed to build location count query", err)
	}

	var count int
	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, queryError("failed to count locations", locationsTable, err)
	}
	return count, nil
}

func scanLocation(row rowScanner) (*entities.Location, error) {
	location := &entities.Location{}
	var phone, email, heroImage, description, mapURL, seoTitle, seoDescription sql.NullString

	err := row.Scan(
		&location.ID,
		&location.Name,
		&location.Slug,
		&location.Address,
		&phone,
		&email,
		&location.Hours,
		pq.Array(&location.Services),
		pq.Array(&location.Images),
		&heroImage,
		&description,
		&mapURL,
		&seoTitle,
		&seoDescription,
		&location.IsActive,
		&location.DisplayOrder,
		&location.CreatedAt,
		&location.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	location.Phone = phone.String
	location.Email = email.String
	location.HeroImage = heroImage.String
	location.Description = description.String
	location.MapURL = mapURL.String
	location.SEOTitle = seoTitle.String
	location.SEODescription = seoDescription.String
	location.Services = orEmpty(location.Services)
	location.Images = orEmpty(location.Images)

	return location, nil
}
