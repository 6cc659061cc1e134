package repository

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"
)

// Reader holds the lookup side of the data-access contract.
type Reader[T any, ID any] interface {
	FindByID(ctx context.Context, id ID) (*T, error)
	FindAll(ctx context.Context) ([]*T, error)
	Find(ctx context.Context, criteria *Criteria) ([]*T, error)
	FindPage(ctx context.Context, req *PageRequest) (*Page[T], error)
	Count(ctx context.Context) (int, error)
	CountWhere(ctx context.Context, criteria *Criteria) (int, error)
	ExistsByID(ctx context.Context, id ID) (bool, error)
}

// Writer holds the mutation side of the data-access contract.
type Writer[T any, ID any] interface {
	Save(ctx context.Context, entity *T) error
	SaveAll(ctx context.Context, entities []*T) error
	Upsert(ctx context.Context, updateColumns []string, conflictColumns []string, entities ...*T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, entity *T) error
	DeleteByID(ctx context.Context, id ID) (bool, error)
}

// TxWriter mirrors Writer inside an explicit transaction.
type TxWriter[T any, ID any] interface {
	SaveTx(ctx context.Context, tx bun.Tx, entities ...*T) error
	UpdateTx(ctx context.Context, tx bun.Tx, entity *T) error
	DeleteByIDTx(ctx context.Context, tx bun.Tx, id ID) error
}

// Repository is the full generic data-access contract: CRUD, dynamic-filter
// pagination, counting, and transactional writes over a persisted entity type
// T addressed by identifier type ID. It also exposes the underlying query
// builders for the cases the generic surface does not cover.
type Repository[T any, ID any] interface {
	Reader[T, ID]
	Writer[T, ID]
	TxWriter[T, ID]

	Dialect() schema.Dialect
	NewSelect() *bun.SelectQuery
	NewInsert() *bun.InsertQuery
	NewUpdate() *bun.UpdateQuery
	NewDelete() *bun.DeleteQuery
}
