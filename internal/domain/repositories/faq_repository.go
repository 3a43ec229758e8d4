package repositories

import (
	"context"

	"github.com/zatekoja/clinicsite/internal/domain/entities"
)

// FAQFilter narrows an FAQ listing
type FAQFilter struct {
	Category   string
	ActiveOnly bool
}

// FAQRepository defines FAQ storage
type FAQRepository interface {
	List(ctx context.Context, filter FAQFilter) ([]*entities.FAQ, error)
	GetByID(ctx context.Context, id string) (*entities.FAQ, error)
	Create(ctx context.Context, faq *entities.FAQ) (*entities.FAQ, error)
	Update(ctx context.Context, id string, patch entities.FAQPatch) (*entities.FAQ, error)
	Delete(ctx context.Context, id string) (bool, error)
}
