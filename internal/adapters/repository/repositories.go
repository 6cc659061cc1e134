package repository

import (
	"scaffold/internal/adapters/database"
	"scaffold/internal/core/domain/category"
	"scaffold/internal/core/domain/product"
	"scaffold/internal/core/ports"
	"scaffold/internal/platform/repository"
)

// Constructors bind each entity module to the generic Bun repository,
// resolving the database handle through the lifecycle so they can be wired
// before the connection starts.

func NewProductRepository(db *database.Lifecycle) ports.ProductRepository {
	return repository.NewBunFromSource[product.Entity, int64](db)
}

func NewCategoryRepository(db *database.Lifecycle) ports.CategoryRepository {
	return repository.NewBunFromSource[category.Entity, string](db, repository.WithIDColumn("slug"))
}
