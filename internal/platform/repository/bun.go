package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/feature"
	"github.com/uptrace/bun/schema"
)

// DBSource yields the live Bun handle. Repositories resolve the handle per
// call so they can be constructed before the connection is started.
type DBSource interface {
	BunDB() *bun.DB
}

// bunRepository implements Repository over a Bun database handle. The id
// column name is configurable because not every entity calls its key "id".
type bunRepository[T any, ID any] struct {
	idb      func() bun.IDB
	idColumn string
}

type Option func(*options)

type options struct {
	idColumn string
}

// WithIDColumn overrides the column used by the *ByID operations.
func WithIDColumn(column string) Option {
	return func(o *options) { o.idColumn = column }
}

// NewBun returns a generic Repository backed by the provided Bun handle.
func NewBun[T any, ID any](db *bun.DB, opts ...Option) Repository[T, ID] {
	o := options{idColumn: "id"}
	for _, opt := range opts {
		opt(&o)
	}
	return &bunRepository[T, ID]{idb: func() bun.IDB { return db }, idColumn: o.idColumn}
}

// NewBunFromSource returns a Repository that resolves its handle from the
// source on every call, deferring connection to process startup.
func NewBunFromSource[T any, ID any](source DBSource, opts ...Option) Repository[T, ID] {
	o := options{idColumn: "id"}
	for _, opt := range opts {
		opt(&o)
	}
	return &bunRepository[T, ID]{idb: func() bun.IDB { return source.BunDB() }, idColumn: o.idColumn}
}

func (r *bunRepository[T, ID]) idPredicate() string {
	return fmt.Sprintf("%s = ?", r.idColumn)
}

func (r *bunRepository[T, ID]) Dialect() schema.Dialect { return r.idb().Dialect() }

func (r *bunRepository[T, ID]) NewSelect() *bun.SelectQuery { return r.idb().NewSelect() }

func (r *bunRepository[T, ID]) NewInsert() *bun.InsertQuery { return r.idb().NewInsert() }

func (r *bunRepository[T, ID]) NewUpdate() *bun.UpdateQuery { return r.idb().NewUpdate() }

func (r *bunRepository[T, ID]) NewDelete() *bun.DeleteQuery { return r.idb().NewDelete() }

func (r *bunRepository[T, ID]) FindByID(ctx context.Context, id ID) (*T, error) {
	var entity T
	err := r.idb().NewSelect().Model(&entity).Where(r.idPredicate(), id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *bunRepository[T, ID]) FindAll(ctx context.Context) ([]*T, error) {
	entities := make([]*T, 0)
	err := r.idb().NewSelect().Model(&entities).Scan(ctx)
	return entities, err
}

func (r *bunRepository[T, ID]) Find(ctx context.Context, criteria *Criteria) ([]*T, error) {
	entities := make([]*T, 0)
	query := r.idb().NewSelect().Model(&entities)
	if !criteria.Empty() {
		clause, args := criteria.Build()
		query = query.Where(clause, args...)
	}
	err := query.Scan(ctx)
	return entities, err
}

func (r *bunRepository[T, ID]) FindPage(ctx context.Context, req *PageRequest) (*Page[T], error) {
	if req == nil {
		req = NewPageRequest(DefaultPage, DefaultPageSize)
	}

	entities := make([]*T, 0)
	query := r.idb().NewSelect().Model(&entities)
	if !req.Criteria().Empty() {
		clause, args := req.Criteria().Build()
		query = query.Where(clause, args...)
	}

	page := NewPage[T](req)
	total, err := query.Count(ctx)
	if err != nil || total == 0 {
		return page, err
	}

	err = query.
		Offset(req.Offset()).
		Limit(req.PageSize()).
		Order(req.Orders()...).
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	page.TotalRecords = total
	page.Items = entities
	return page, nil
}

func (r *bunRepository[T, ID]) Count(ctx context.Context) (int, error) {
	return r.idb().NewSelect().Model((*T)(nil)).Count(ctx)
}

func (r *bunRepository[T, ID]) CountWhere(ctx context.Context, criteria *Criteria) (int, error) {
	query := r.idb().NewSelect().Model((*T)(nil))
	if !criteria.Empty() {
		clause, args := criteria.Build()
		query = query.Where(clause, args...)
	}
	return query.Count(ctx)
}

func (r *bunRepository[T, ID]) ExistsByID(ctx context.Context, id ID) (bool, error) {
	return r.idb().NewSelect().Model((*T)(nil)).Where(r.idPredicate(), id).Exists(ctx)
}

func (r *bunRepository[T, ID]) Save(ctx context.Context, entity *T) error {
	_, err := r.idb().NewInsert().Model(entity).Exec(ctx)
	return wrapDriverError(err)
}

func (r *bunRepository[T, ID]) SaveAll(ctx context.Context, entities []*T) error {
	if len(entities) == 0 {
		return nil
	}
	_, err := r.idb().NewInsert().Model(&entities).Exec(ctx)
	return wrapDriverError(err)
}

// Update relies on the driver reporting matched rows: the mysql DSN sets
// clientFoundRows so an update that leaves values unchanged still counts.
func (r *bunRepository[T, ID]) Update(ctx context.Context, entity *T) error {
	res, err := r.idb().NewUpdate().Model(entity).WherePK().Exec(ctx)
	if err != nil {
		return wrapDriverError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *bunRepository[T, ID]) Delete(ctx context.Context, entity *T) error {
	_, err := r.idb().NewDelete().Model(entity).WherePK().Exec(ctx)
	return err
}

// DeleteByID removes the row with the given identifier and reports whether a
// row actually existed.
func (r *bunRepository[T, ID]) DeleteByID(ctx context.Context, id ID) (bool, error) {
	exists, err := r.ExistsByID(ctx, id)
	if err != nil || !exists {
		return false, err
	}
	var entity T
	_, err = r.idb().NewDelete().Model(&entity).Where(r.idPredicate(), id).Exec(ctx)
	if err != nil {
		return false, err
	}
	return true, nil
}

// Upsert inserts the entities, updating updateColumns on key collision. The
// strategy follows the dialect: ON CONFLICT for postgres/sqlite, ON DUPLICATE
// KEY for mysql, and insert-then-update everywhere else.
func (r *bunRepository[T, ID]) Upsert(ctx context.Context, updateColumns []string, conflictColumns []string, entities ...*T) error {
	if len(updateColumns) == 0 {
		return fmt.Errorf("upsert requires at least one update column")
	}
	if len(entities) == 0 {
		return nil
	}

	switch {
	case r.idb().Dialect().Features().Has(feature.InsertOnConflict):
		return r.upsertOnConflict(ctx, updateColumns, conflictColumns, entities)
	case r.idb().Dialect().Features().Has(feature.InsertOnDuplicateKey):
		return r.upsertOnDuplicateKey(ctx, updateColumns, entities)
	default:
		return r.upsertFallback(ctx, entities)
	}
}

func (r *bunRepository[T, ID]) upsertOnConflict(ctx context.Context, updateColumns, conflictColumns []string, entities []*T) error {
	if len(conflictColumns) == 0 {
		conflictColumns = []string{r.idColumn}
	}
	assignments := make([]string, 0, len(updateColumns))
	for _, col := range updateColumns {
		assignments = append(assignments, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}
	_, err := r.idb().NewInsert().
		Model(&entities).
		On("CONFLICT (" + strings.Join(conflictColumns, ", ") + ") DO UPDATE").
		Set(strings.Join(assignments, ", ")).
		Exec(ctx)
	return err
}

func (r *bunRepository[T, ID]) upsertOnDuplicateKey(ctx context.Context, updateColumns []string, entities []*T) error {
	assignments := make([]string, 0, len(updateColumns))
	for _, col := range updateColumns {
		assignments = append(assignments, fmt.Sprintf("%s = VALUES(%s)", col, col))
	}
	_, err := r.idb().NewInsert().
		Model(&entities).
		On("DUPLICATE KEY UPDATE " + strings.Join(assignments, ", ")).
		Exec(ctx)
	return err
}

// upsertFallback only turns key conflicts into updates; any other insert
// failure is surfaced instead of degrading into a possibly empty update.
func (r *bunRepository[T, ID]) upsertFallback(ctx context.Context, entities []*T) error {
	for _, entity := range entities {
		_, err := r.idb().NewInsert().Model(entity).Exec(ctx)
		if err == nil {
			continue
		}

		var conflict *ConflictError
		if insertErr := wrapDriverError(err); !errors.As(insertErr, &conflict) {
			return fmt.Errorf("upsert fallback insert: %w", insertErr)
		}

		if _, err := r.idb().NewUpdate().Model(entity).WherePK().Exec(ctx); err != nil {
			return fmt.Errorf("upsert fallback update: %w", err)
		}
	}
	return nil
}

func (r *bunRepository[T, ID]) SaveTx(ctx context.Context, tx bun.Tx, entities ...*T) error {
	if len(entities) == 0 {
		return nil
	}
	_, err := tx.NewInsert().Model(&entities).Exec(ctx)
	return wrapDriverError(err)
}

func (r *bunRepository[T, ID]) UpdateTx(ctx context.Context, tx bun.Tx, entity *T) error {
	_, err := tx.NewUpdate().Model(entity).WherePK().Exec(ctx)
	return wrapDriverError(err)
}

func (r *bunRepository[T, ID]) DeleteByIDTx(ctx context.Context, tx bun.Tx, id ID) error {
	var entity T
	_, err := tx.NewDelete().Model(&entity).Where(r.idPredicate(), id).Exec(ctx)
	return err
}
