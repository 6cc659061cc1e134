package repository

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"scaffold/internal/core/domain/category"
	"scaffold/internal/core/domain/product"
)

// schemaModels lists every entity whose table is created on startup.
var schemaModels = []interface{}{
	(*product.Entity)(nil),
	(*category.Entity)(nil),
}

// EnsureSchema creates missing tables for all registered entities. Existing
// tables are left untouched.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	for _, model := range schemaModels {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create table for %T: %w", model, err)
		}
	}
	return nil
}
