package product

import (
	"context"

	"scaffold/internal/core/domain/product"
	"scaffold/internal/platform/repository"
)

// Manager is the slice of the product usecase the HTTP layer depends on.
type Manager interface {
	CreateProduct(ctx context.Context, name string, status int, priceCents int64) (*product.Entity, error)
	GetProduct(ctx context.Context, id int64) (*product.Entity, error)
	UpdateProduct(ctx context.Context, id int64, name string, status int, priceCents int64) (*product.Entity, error)
	DeleteProduct(ctx context.Context, id int64) error
	ListProducts(ctx context.Context, page, pageSize int, filter product.Filter) (*repository.Page[product.Entity], error)
}
