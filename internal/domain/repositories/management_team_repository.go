package repositories

import (
	"context"

	"github.com/zatekoja/clinicsite/internal/domain/entities"
)

// ManagementTeamFilter narrows a management team listing
type ManagementTeamFilter struct {
	ActiveOnly bool
}

// ManagementTeamRepository defines management team storage. Delete is a soft delete.
type ManagementTeamRepository interface {
	List(ctx context.Context, filter ManagementTeamFilter) ([]*entities.ManagementTeamMember, error)
	GetByID(ctx context.Context, id string) (*entities.ManagementTeamMember, error)
	Create(ctx context.Context, member *entities.ManagementTeamMember) (*entities.ManagementTeamMember, error)
	Update(ctx context.Context, id string, patch entities.ManagementTeamMemberPatch) (*entities.ManagementTeamMember, error)
	Delete(ctx context.Context, id string) (bool, error)
}
