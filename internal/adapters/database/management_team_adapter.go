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

const managementTeamTable = "management_team"

var managementTeamColumns = []interface{}{
	"id", "name", "title", "bio", "image", "credentials", "specialties",
	"order_index", "is_active", "created_at", "updated_at",
}

// ManagementTeamAdapter implements ManagementTeamRepository
type ManagementTeamAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewManagementTeamAdapter creates a new management team adapter
func NewManagementTeamAdapter(client *postgres.Client) repositories.ManagementTeamRepository {
	return &ManagementTeamAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List retrieves management team members in order
func (a *ManagementTeamAdapter) List(ctx context.Context, filter repositories.ManagementTeamFilter) ([]*entities.ManagementTeamMember, error) {
	ds := a.db.Select(managementTeamColumns...).From(managementTeamTable)

	if filter.ActiveOnly {
		ds = ds.Where(goqu.Ex{"is_active": true})
	}

	query, args, err := ds.Order(goqu.I("order_index").Asc()).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build management team list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, queryError("failed to list management team", managementTeamTable, err)
	}
	defer rows.Close()

	members := []*entities.ManagementTeamMember{}
	for rows.Next() {
		member, err := scanManagementTeamMember(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan management team member", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("failed to list management team", managementTeamTable, err)
	}

	return members, nil
}

// GetByID retrieves a management team member by ID
func (a *ManagementTeamAdapter) GetByID(ctx context.Context, id string) (*entities.ManagementTeamMember, error) {
	query, args, err := a.db.Select(managementTeamColumns...).
		From(managementTeamTable).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build management team query", err)
	}

	member, err := scanManagementTeamMember(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("management team member with id %s not found", id))
	}
	if err != nil {
		return nil, queryError("failed to get management team member", managementTeamTable, err)
	}

	return member, nil
}

// Create inserts a management team member and returns the stored row
func (a *ManagementTeamAdapter) Create(ctx context.Context, member *entities.ManagementTeamMember) (*entities.ManagementTeamMember, error) {
	if member == nil {
		return nil, apperrors.NewInternalError("management team member is nil", fmt.Errorf("management team member is nil"))
	}

	record := goqu.Record{
		"id":          member.ID,
		"name":        member.Name,
		"title":       member.Title,
		"bio":         nullString(member.Bio),
		"image":       nullString(member.Image),
		"credentials": nullString(member.Credentials),
		"specialties": pq.Array(orEmpty(member.Specialties)),
		"order_index": member.OrderIndex,
		"is_active":   member.IsActive,
		"created_at":  member.CreatedAt,
		"updated_at":  member.UpdatedAt,
	}

	query, args, err := a.db.Insert(managementTeamTable).Rows(record).Returning(managementTeamColumns...).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build management team insert query", err)
	}

	created, err := scanManagementTeamMember(a.client.DB().QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, queryError("failed to create management team member", managementTeamTable, err)
	}

	return created, nil
}

// Update applies the non-nil fields of patch and returns the stored row
func (a *ManagementTeamAdapter) Update(ctx context.Context, id string, patch entities.ManagementTeamMemberPatch) (*entities.ManagementTeamMember, error) {
	record := goqu.Record{"updated_at": time.Now().UTC()}

	setString(record, "name", patch.Name)
	setString(record, "title", patch.Title)
	setNullString(record, "bio", patch.Bio)
	setNullString(record, "image", patch.Image)
	setNullString(record, "credentials", patch.Credentials)
	if patch.Specialties != nil {
		record["specialties"] = pq.Array(patch.Specialties)
	}
	if patch.OrderIndex != nil {
		record["order_index"] = *patch.OrderIndex
	}
	if patch.IsActive != nil {
		record["is_active"] = *patch.IsActive
	}

	query, args, err := a.db.Update(managementTeamTable).
		Set(record).
		Where(goqu.Ex{"id": id}).
		Returning(managementTeamColumns...).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build management team update query", err)
	}

	updated, err := scanManagementTeamMember(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("management team member with id %s not found", id))
	}
	if err != nil {
		return nil, queryError("failed to update management team member", managementTeamTable, err)
	}

	return updated, nil
}

// Delete deactivates a management team member (soft delete)
func (a *ManagementTeamAdapter) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := a.db.Update(managementTeamTable).
		Set(goqu.Record{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build management team delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return false, queryError("failed to delete management team member", managementTeamTable, err)
	}

	return affected(result)
}

func scanManagementTeamMember(row rowScanner) (*entities.ManagementTeamMember, error) {
	member := &entities.ManagementTeamMember{}
	var bio, image, credentials sql.NullString

	err := row.Scan(
		&member.ID,
		&member.Name,
		&member.Title,
		&bio,
		&image,
		&credentials,
		pq.Array(&member.Specialties),
		&member.OrderIndex,
		&member.IsActive,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	member.Bio = bio.String
	member.Image = image.String
	member.Credentials = credentials.String
	member.Specialties = orEmpty(member.Specialties)

	return member, nil
}
