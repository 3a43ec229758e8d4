package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/zatekoja/clinicsite/internal/domain/entities"
	"github.com/zatekoja/clinicsite/internal/domain/repositories"
	"github.com/zatekoja/clinicsite/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/clinicsite/pkg/errors"
)

const faqsTable = "faqs"

var faqColumns = []interface{}{
	"id", "question", "answer", "category", "display_order",
	"is_active", "created_at", "updated_at",
}

// FAQAdapter implements FAQRepository
type FAQAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewFAQAdapter creates a new FAQ adapter
func NewFAQAdapter(client *postgres.Client) repositories.FAQRepository {
	return &FAQAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List retrieves FAQs in display order
func (a *FAQAdapter) List(ctx context.Context, filter repositories.FAQFilter) ([]*entities.FAQ, error) {
	ds := a.db.Select(faqColumns...).From(faqsTable)

	if filter.ActiveOnly {
		ds = ds.Where(goqu.Ex{"is_active": true})
	}
	if filter.Category != "" {
		ds = ds.Where(goqu.Ex{"category": filter.Category})
	}

	query, args, err := ds.Order(goqu.I("display_order").Asc()).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build faq list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, queryError("failed to list faqs", faqsTable, err)
	}
	defer rows.Close()

	faqs := []*entities.FAQ{}
	for rows.Next() {
		faq, err := scanFAQ(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan faq", err)
		}
		faqs = append(faqs, faq)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("failed to list faqs", faqsTable, err)
	}

	return faqs, nil
}

// GetByID retrieves an FAQ by ID
func (a *FAQAdapter) GetByID(ctx context.Context, id string) (*entities.FAQ, error) {
	query, args, err := a.db.Select(faqColumns...).
		From(faqsTable).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build faq query", err)
	}

	faq, err := scanFAQ(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("faq with id %s not found", id))
	}
	if err != nil {
		return nil, queryError("failed to get faq", faqsTable, err)
	}

	return faq, nil
}

// Create inserts an FAQ and returns the stored row
func (a *FAQAdapter) Create(ctx context.Context, faq *entities.FAQ) (*entities.FAQ, error) {
	if faq == nil {
		return nil, apperrors.NewInternalError("faq is nil", fmt.Errorf("faq is nil"))
	}

	record := goqu.Record{
		"id":            faq.ID,
		"question":      faq.Question,
		"answer":        faq.Answer,
		"category":      nullString(faq.Category),
		"display_order": faq.DisplayOrder,
		"is_active":     faq.IsActive,
		"created_at":    faq.CreatedAt,
		"updated_at":    faq.UpdatedAt,
	}

	query, args, err := a.db.Insert(faqsTable).Rows(record).Returning(faqColumns...).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build faq insert query", err)
	}

	created, err := scanFAQ(a.client.DB().QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, queryError("failed to create faq", faqsTable, err)
	}

	return created, nil
}

// Update applies the non-nil fields of patch and returns the stored row
func (a *FAQAdapter) Update(ctx context.Context, id string, patch entities.FAQPatch) (*entities.FAQ, error) {
	record := goqu.Record{"updated_at": time.Now().UTC()}

	setString(record, "question", patch.Question)
	setString(record, "answer", patch.Answer)
	setNullString(record, "category", patch.Category)
	if patch.DisplayOrder != nil {
		record["display_order"] = *patch.DisplayOrder
	}
	if patch.IsActive != nil {
		record["is_active"] = *patch.IsActive
	}

	query, args, err := a.db.Update(faqsTable).
		Set(record).
		Where(goqu.Ex{"id": id}).
		Returning(faqColumns...).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build faq update query", err)
	}

	updated, err := scanFAQ(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("faq with id %s not found", id))
	}
	if err != nil {
		return nil, queryError("failed to update faq", faqsTable, err)
	}

	return updated, nil
}

// Delete permanently removes an FAQ
func (a *FAQAdapter) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := a.db.Delete(faqsTable).Where(goqu.Ex{"id": id}).ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build faq delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return false, queryError("failed to delete faq", faqsTable, err)
	}

	return affected(result)
}

func scanFAQ(row rowScanner) (*entities.FAQ, error) {
	faq := &entities.FAQ{}
	var category sql.NullString

	err := row.Scan(
		&faq.ID,
		&faq.Question,
		&faq.Answer,
		&category,
		&faq.DisplayOrder,
		&faq.IsActive,
		&faq.CreatedAt,
		&faq.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	faq.Category = category.String
	return faq, nil
}
