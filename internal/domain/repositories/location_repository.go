package repositories

import (
	"context"

	"github.com/zatekoja/clinicsite/internal/domain/entities"
)

// LocationFilter narrows a location listing. The zero value lists every
// location, including soft-deleted ones.
type LocationFilter struct {
	ActiveOnly bool
}

// LocationRepository defines location storage. Delete is a soft delete.
type LocationRepository interface {
	List(ctx context.Context, filter LocationFilter) ([]*entities.Location, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Location, error)
	GetByID(ctx context.Context, id string) (*entities.Location, error)
	Create(ctx context.Context, location *entities.Location) (*entities.Location, error)
	Update(ctx context.Context, id string, patch entities.LocationPatch) (*entities.Location, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}
