package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"eventhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoryRepo struct {
	byID   map[string]*domain.Category
	order  []string
	nextID int
	err    error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		byID:   make(map[string]*domain.Category),
		nextID: 1,
	}
}

func (f *fakeCategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	if f.err != nil {
		return f.err
	}
	c.ID = fmt.Sprintf("cat-%d", f.nextID)
	f.nextID++
	f.byID[c.ID] = c
	f.order = append(f.order, c.ID)
	return nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	if c, ok := f.byID[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Category
	for _, id := range f.order {
		copied := *f.byID[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, id string, upd domain.CategoryUpdate) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	c.UpdatedAt = time.Now()
	copied := *c
	return &copied, nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func TestCategoryService_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(newFakeCategoryRepo(), time.Second)

	created, err := svc.CreateCategory(ctx, domain.CreateCategoryInput{
		Name:        "Workshops",
		Description: "Hands-on sessions",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := svc.GetCategoryByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Workshops", got.Name)
	assert.Equal(t, "Hands-on sessions", got.Description)

	_, err = svc.GetCategoryByID(ctx, "cat-missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryService_ListCategories_Sort(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(newFakeCategoryRepo(), time.Second)

	for _, name := range []string{"Talks", "workshops", "Meetups"} {
		_, err := svc.CreateCategory(ctx, domain.CreateCategoryInput{Name: name})
		require.NoError(t, err)
	}

	categories, err := svc.ListCategories(ctx, domain.SortParams{Field: "name", Order: domain.OrderDesc})
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "workshops", categories[0].Name)
	assert.Equal(t, "Talks", categories[1].Name)
	assert.Equal(t, "Meetups", categories[2].Name)
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(newFakeCategoryRepo(), time.Second)

	created, err := svc.CreateCategory(ctx, domain.CreateCategoryInput{
		Name:        "Workshops",
		Description: "Hands-on sessions",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateCategory(ctx, created.ID, domain.UpdateCategoryInput{
		Description: strPtr("Practical, instructor-led sessions"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Workshops", updated.Name)
	assert.Equal(t, "Practical, instructor-led sessions", updated.Description)

	_, err = svc.UpdateCategory(ctx, created.ID, domain.UpdateCategoryInput{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(newFakeCategoryRepo(), time.Second)

	created, err := svc.CreateCategory(ctx, domain.CreateCategoryInput{Name: "Workshops"})
	require.NoError(t, err)

	found, err := svc.DeleteCategory(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = svc.DeleteCategory(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, found)
}
