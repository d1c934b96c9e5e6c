package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"eventhub/internal/domain"
)

type categoryService struct {
	categoryRepo   domain.CategoryRepository
	contextTimeout time.Duration
}

func NewCategoryService(categoryRepo domain.CategoryRepository, timeout time.Duration) domain.CategoryService {
	return &categoryService{
		categoryRepo:   categoryRepo,
		contextTimeout: timeout,
	}
}

func (s *categoryService) ListCategories(ctx context.Context, sortParams domain.SortParams) ([]*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if sortParams.Field == "name" {
		desc := sortParams.Order == domain.OrderDesc
		sort.Slice(categories, func(i, j int) bool {
			cmp := compareStrings(categories[i].Name, categories[j].Name)
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}
	return categories, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := time.Now()
	category := domain.NewCategory(input.Name, input.Description, now, now)
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id string, input domain.UpdateCategoryInput) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	upd := domain.CategoryUpdate{
		Name:        input.Name,
		Description: input.Description,
	}
	if upd.IsZero() {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrInvalidInput)
	}
	category, err := s.categoryRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("delete category: %w", err)
	}
	return true, nil
}
