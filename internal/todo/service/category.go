package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/google/uuid"
	"github.com/samber/oops"
)

// CategoryService is ownership-scoped CRUD over categories. Names are
// unique per owner.
type CategoryService struct {
	Store store.Store
	Clock Clock
}

func (s *CategoryService) Create(ctx context.Context, userID, name string) (domain.Category, error) {
	now := s.Clock.now()
	c := domain.Category{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Categories().CreateCategory(ctx, c); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Category{}, ErrCategoryExists
		}
		return domain.Category{}, oops.Code("CATEGORY_CREATE_FAILED").With("user_id", userID).Wrap(err)
	}
	return c, nil
}

func (s *CategoryService) Get(ctx context.Context, userID, id string) (domain.Category, error) {
	c, err := s.Store.Categories().GetCategory(ctx, userID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Category{}, ErrCategoryNotFound
		}
		return domain.Category{}, oops.With("operation", "get category").With("category_id", id).Wrap(err)
	}
	return c, nil
}

func (s *CategoryService) List(ctx context.Context, userID string, f domain.CategoryFilter) (domain.Page[domain.Category], error) {
	f.ListParams = f.ListParams.Normalize()
	items, total, err := s.Store.Categories().ListCategories(ctx, userID, f)
	if err != nil {
		return domain.Page[domain.Category]{}, oops.Code("CATEGORY_LIST_FAILED").With("user_id", userID).Wrap(err)
	}
	return domain.NewPage(items, f.ListParams, total), nil
}

// Rename changes the category name.
func (s *CategoryService) Rename(ctx context.Context, userID, id, name string) (domain.Category, error) {
	c, err := s.Get(ctx, userID, id)
	if err != nil {
		return domain.Category{}, err
	}

	c.Name = strings.TrimSpace(name)
	c.UpdatedAt = s.Clock.now()

	if err := s.Store.Categories().UpdateCategory(ctx, c); err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.Category{}, ErrCategoryExists
		case errors.Is(err, store.ErrNotFound):
			return domain.Category{}, ErrCategoryNotFound
		}
		return domain.Category{}, oops.Code("CATEGORY_UPDATE_FAILED").With("category_id", id).Wrap(err)
	}
	return c, nil
}

// Delete removes the category. Its todos stay, with no category.
func (s *CategoryService) Delete(ctx context.Context, userID, id string) (domain.Category, error) {
	c, err := s.Store.Categories().DeleteCategory(ctx, userID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Category{}, ErrCategoryNotFound
		}
		return domain.Category{}, oops.Code("CATEGORY_DELETE_FAILED").With("category_id", id).Wrap(err)
	}
	return c, nil
}
