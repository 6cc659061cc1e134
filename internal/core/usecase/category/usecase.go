package category

import (
	"context"
	"errors"

	"scaffold/internal/core/domain/category"
	"scaffold/internal/core/ports"
	"scaffold/internal/core/service"
	"scaffold/internal/platform/repository"
)

// Usecase drives the category module on top of the generic base service,
// instantiated with a string identifier.
type Usecase struct {
	*service.Crud[category.Entity, string]
	repo ports.CategoryRepository
}

func NewUsecase(repo ports.CategoryRepository) *Usecase {
	return &Usecase{
		Crud: service.NewCrud[category.Entity, string](repo),
		repo: repo,
	}
}

func (uc *Usecase) CreateCategory(ctx context.Context, slug, name string, status int) (*category.Entity, error) {
	entity, err := category.New(slug, name, status)
	if err != nil {
		return nil, err
	}

	if err := uc.Save(ctx, entity); err != nil {
		var conflict *repository.ConflictError
		if errors.As(err, &conflict) {
			return nil, &category.AlreadyExistsError{Slug: entity.Slug}
		}
		return nil, err
	}

	return entity, nil
}

func (uc *Usecase) GetCategory(ctx context.Context, slug string) (*category.Entity, error) {
	entity, err := uc.Get(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, category.ErrNotFound
		}
		return nil, err
	}
	return entity, nil
}

func (uc *Usecase) DeleteCategory(ctx context.Context, slug string) error {
	deleted, err := uc.DeleteByID(ctx, slug)
	if err != nil {
		return err
	}
	if !deleted {
		return category.ErrNotFound
	}
	return nil
}

// ListCategories pages through categories, newest first, optionally filtered
// by a name contains match.
func (uc *Usecase) ListCategories(ctx context.Context, page, pageSize int, name string) (*repository.Page[category.Entity], error) {
	criteria := repository.NewCriteria()
	if name != "" {
		criteria.Like("name", name)
	}

	req := repository.NewPageRequest(page, pageSize).
		WithCriteria(criteria).
		OrderBy("created_at DESC", "slug ASC")

	return uc.FindPage(ctx, req)
}
