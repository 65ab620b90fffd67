package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/porcentagem/api-gateway/internal/domain"
	"github.com/porcentagem/api-gateway/internal/platform/logger"
	"github.com/porcentagem/api-gateway/internal/redact"
)

// CategoryStore is the core backend's category catalogue.
type CategoryStore interface {
	CreateCategory(ctx context.Context, input domain.CategoryInput) (domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (domain.Category, error)
	UpdateCategory(ctx context.Context, id string, patch domain.CategoryPatch) (domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// CategoryService forwards category management to the core backend.
type CategoryService interface {
	CreateCategory(ctx context.Context, input domain.CategoryInput) (domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (domain.Category, error)
	UpdateCategory(ctx context.Context, id string, patch domain.CategoryPatch) (domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type categoryServiceImpl struct {
	store  CategoryStore
	logger *slog.Logger
}

// NewCategoryService creates a CategoryService.
func NewCategoryService(store CategoryStore, logger *slog.Logger) (CategoryService, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &categoryServiceImpl{
		store:  store,
		logger: logger.With(slog.String("component", "category_service")),
	}, nil
}

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, input domain.CategoryInput) (domain.Category, error) {
	category, err := s.store.CreateCategory(ctx, input)
	if err != nil {
		s.logFailure(ctx, "failed to create category", err)
		return domain.Category{}, fail("CreateCategory", "failed to create category", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("category created", slog.String("category_id", category.ID))
	return category, nil
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		s.logFailure(ctx, "failed to list categories", err)
		return nil, fail("ListCategories", "failed to list categories", err)
	}
	return categories, nil
}

func (s *categoryServiceImpl) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	category, err := s.store.GetCategory(ctx, id)
	if err != nil {
		s.logFailure(ctx, "failed to get category", err, slog.String("category_id", id))
		return domain.Category{}, s.lookupFailure("GetCategory", err)
	}
	return category, nil
}

func (s *categoryServiceImpl) UpdateCategory(
	ctx context.Context,
	id string,
	patch domain.CategoryPatch,
) (domain.Category, error) {
	if patch.Empty() {
		return domain.Category{}, NewOperationError("UpdateCategory", domain.ErrValidation, "no fields to update", nil)
	}

	category, err := s.store.UpdateCategory(ctx, id, patch)
	if err != nil {
		s.logFailure(ctx, "failed to update category", err, slog.String("category_id", id))
		return domain.Category{}, s.lookupFailure("UpdateCategory", err)
	}
	return category, nil
}

func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, id string) error {
	if err := s.store.DeleteCategory(ctx, id); err != nil {
		s.logFailure(ctx, "failed to delete category", err, slog.String("category_id", id))
		return s.lookupFailure("DeleteCategory", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("category deleted", slog.String("category_id", id))
	return nil
}

func (s *categoryServiceImpl) lookupFailure(op string, err error) *OperationError {
	kind := classifyLookup(err)
	message := "category request failed"
	if kind == domain.ErrNotFound {
		message = "category not found"
	}
	return NewOperationError(op, kind, message, err)
}

func (s *categoryServiceImpl) logFailure(ctx context.Context, msg string, err error, attrs ...any) {
	attrs = append(attrs, slog.String("error", redact.Error(err)))
	logger.FromContextOrDefault(ctx, s.logger).Error(msg, attrs...)
}
