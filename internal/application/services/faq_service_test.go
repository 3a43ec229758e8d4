package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/clinicsite/internal/domain/entities"
	"github.com/zatekoja/clinicsite/internal/domain/repositories"
	apperrors "github.com/zatekoja/clinicsite/pkg/errors"
)

type mockFAQRepository struct {
	mock.Mock
}

func (m *mockFAQRepository) List(ctx context.Context, filter repositories.FAQFilter) ([]*entities.FAQ, error) {
	args := m.Called(ctx, filter)
	faqs, _ := args.Get(0).([]*entities.FAQ)
	return faqs, args.Error(1)
}

func (m *mockFAQRepository) GetByID(ctx context.Context, id string) (*entities.FAQ, error) {
	args := m.Called(ctx, id)
	faq, _ := args.Get(0).(*entities.FAQ)
	return faq, args.Error(1)
}

func (m *mockFAQRepository) Create(ctx context.Context, faq *entities.FAQ) (*entities.FAQ, error) {
	args := m.Called(ctx, faq)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	return faq, nil
}

func (m *mockFAQRepository) Update(ctx context.Context, id string, patch entities.FAQPatch) (*entities.FAQ, error) {
	args := m.Called(ctx, id, patch)
	faq, _ := args.Get(0).(*entities.FAQ)
	return faq, args.Error(1)
}

func (m *mockFAQRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestFAQService_List(t *testing.T) {
	repo := &mockFAQRepository{}
	filter := repositories.FAQFilter{Category: "billing", ActiveOnly: true}
	repo.On("List", mock.Anything, filter).Return([]*entities.FAQ{{ID: "f1"}, {ID: "f2"}}, nil)

	logger := zerolog.Nop()
	svc := NewFAQService(repo, &logger, nil)

	faqs := svc.List(context.Background(), filter)
	require.Len(t, faqs, 2)
	assert.Equal(t, "f1", faqs[0].ID)
}

func TestFAQService_TotalOnFailure(t *testing.T) {
	repo := &mockFAQRepository{}
	failure := apperrors.NewInternalError("db down", errors.New("dial tcp: refused"))
	repo.On("List", mock.Anything, mock.Anything).Return(nil, failure)
	repo.On("GetByID", mock.Anything, mock.Anything).Return(nil, failure)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, failure)
	repo.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil, failure)
	repo.On("Delete", mock.Anything, mock.Anything).Return(false, failure)

	logger := zerolog.Nop()
	svc := NewFAQService(repo, &logger, nil)
	ctx := context.Background()

	faqs := svc.List(ctx, repositories.FAQFilter{})
	assert.NotNil(t, faqs)
	assert.Empty(t, faqs)
	assert.Nil(t, svc.GetByID(ctx, "f1"))
	assert.Nil(t, svc.Create(ctx, FAQInput{Question: "Q", Answer: "A"}))
	assert.Nil(t, svc.Update(ctx, "f1", entities.FAQPatch{}))
	assert.False(t, svc.Delete(ctx, "f1"))
}

func TestFAQService_CreateDefaultsToActive(t *testing.T) {
	repo := &mockFAQRepository{}
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, nil)

	logger := zerolog.Nop()
	svc := NewFAQService(repo, &logger, nil)

	created := svc.Create(context.Background(), FAQInput{Question: "  Do you take walk-ins? ", Answer: "Yes", DisplayOrder: 3})
	require.NotNil(t, created)
	assert.True(t, created.IsActive)
	assert.Equal(t, "Do you take walk-ins?", created.Question)
	assert.NotEmpty(t, created.ID)

	inactive := false
	created = svc.Create(context.Background(), FAQInput{Question: "Q", Answer: "A", IsActive: &inactive})
	require.NotNil(t, created)
	assert.False(t, created.IsActive)
}

func TestFAQService_NilRepository(t *testing.T) {
	svc := NewFAQService(nil, nil, nil)
	ctx := context.Background()

	assert.Empty(t, svc.List(ctx, repositories.FAQFilter{}))
	assert.Nil(t, svc.Create(ctx, FAQInput{Question: "Q", Answer: "A"}))
	assert.False(t, svc.Delete(ctx, "f1"))
}
