package domain

import (
	"context"
	"time"
)

// Category represents an event category.
// swagger:model Category
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewCategory returns a new Category. ID is set by the repository on create.
func NewCategory(name, description string, createdAt, updatedAt time.Time) *Category {
	return &Category{
		Name:        name,
		Description: description,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// CategoryUpdate describes a partial update. Nil fields are left unchanged.
type CategoryUpdate struct {
	Name        *string
	Description *string
}

// IsZero reports whether no field is set.
func (u CategoryUpdate) IsZero() bool {
	return u.Name == nil && u.Description == nil
}

// CategoryRepository defines the interface for category storage.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	Update(ctx context.Context, id string, upd CategoryUpdate) (*Category, error)
	Delete(ctx context.Context, id string) error
}

// CreateCategoryInput is the validated input for creating a category.
type CreateCategoryInput struct {
	Name        string
	Description string
}

// UpdateCategoryInput is the validated partial input for updating a category.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
}

// CategoryService defines business operations on categories.
type CategoryService interface {
	ListCategories(ctx context.Context, sort SortParams) ([]*Category, error)
	GetCategoryByID(ctx context.Context, id string) (*Category, error)
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*Category, error)
	UpdateCategory(ctx context.Context, id string, input UpdateCategoryInput) (*Category, error)
	// DeleteCategory returns false with a nil error when the category does not exist.
	DeleteCategory(ctx context.Context, id string) (bool, error)
}
