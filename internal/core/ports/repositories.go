package ports

import (
	"scaffold/internal/core/domain/category"
	"scaffold/internal/core/domain/product"
	"scaffold/internal/platform/repository"
)

// Each entity module instantiates the generic data-access contract with its
// own entity and identifier types.
type (
	ProductRepository  = repository.Repository[product.Entity, int64]
	CategoryRepository = repository.Repository[category.Entity, string]
)
