package category

import (
	"context"

	"scaffold/internal/core/domain/category"
	"scaffold/internal/platform/repository"
)

// Manager is the slice of the category usecase the HTTP layer depends on.
type Manager interface {
	CreateCategory(ctx context.Context, slug, name string, status int) (*category.Entity, error)
	GetCategory(ctx context.Context, slug string) (*category.Entity, error)
	DeleteCategory(ctx context.Context, slug string) error
	ListCategories(ctx context.Context, page, pageSize int, name string) (*repository.Page[category.Entity], error)
}
