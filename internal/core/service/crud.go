package service

import (
	"context"

	"scaffold/internal/platform/logger"
	"scaffold/internal/platform/repository"
)

// Crud is the generic base service: a thin facade over a data-access object
// that concrete services embed. It carries no entity-specific behavior, only
// the operations every persisted type needs: writes, lookups, counts, and
// dynamic-condition pagination.
type Crud[T any, ID any] struct {
	repo repository.Repository[T, ID]
}

func NewCrud[T any, ID any](repo repository.Repository[T, ID]) *Crud[T, ID] {
	return &Crud[T, ID]{repo: repo}
}

// Repo exposes the wrapped data-access object for operations the facade
// does not cover.
func (s *Crud[T, ID]) Repo() repository.Repository[T, ID] {
	return s.repo
}

func (s *Crud[T, ID]) Save(ctx context.Context, entity *T) error {
	return s.repo.Save(ctx, entity)
}

func (s *Crud[T, ID]) SaveAll(ctx context.Context, entities []*T) error {
	return s.repo.SaveAll(ctx, entities)
}

// Update replaces the stored row with the given entity, matched by primary
// key.
func (s *Crud[T, ID]) Update(ctx context.Context, entity *T) error {
	return s.repo.Update(ctx, entity)
}

// DeleteByID removes the entity when it exists and reports whether it did;
// deleting an absent id is not an error.
func (s *Crud[T, ID]) DeleteByID(ctx context.Context, id ID) (bool, error) {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		logger.FromContext(ctx).Debug("Delete skipped, entity does not exist",
			logger.Any("entity_id", id))
	}
	return deleted, nil
}

func (s *Crud[T, ID]) Delete(ctx context.Context, entity *T) error {
	return s.repo.Delete(ctx, entity)
}

func (s *Crud[T, ID]) Get(ctx context.Context, id ID) (*T, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Crud[T, ID]) All(ctx context.Context) ([]*T, error) {
	return s.repo.FindAll(ctx)
}

func (s *Crud[T, ID]) Find(ctx context.Context, criteria *repository.Criteria) ([]*T, error) {
	return s.repo.Find(ctx, criteria)
}

// FindPage runs a dynamic-condition paginated query. A nil request degrades
// to the first page with default size over all rows.
func (s *Crud[T, ID]) FindPage(ctx context.Context, req *repository.PageRequest) (*repository.Page[T], error) {
	return s.repo.FindPage(ctx, req)
}

func (s *Crud[T, ID]) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *Crud[T, ID]) CountWhere(ctx context.Context, criteria *repository.Criteria) (int, error) {
	return s.repo.CountWhere(ctx, criteria)
}

func (s *Crud[T, ID]) Exists(ctx context.Context, id ID) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}
