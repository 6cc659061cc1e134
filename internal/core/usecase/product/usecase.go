package product

import (
	"context"
	"errors"

	"scaffold/internal/core/domain/product"
	"scaffold/internal/core/ports"
	"scaffold/internal/core/service"
	"scaffold/internal/platform/logger"
	"scaffold/internal/platform/repository"
)

// Usecase drives the product module. The embedded generic base service
// provides the plain CRUD surface; the methods here add validation, error
// translation, and the module's listing semantics.
type Usecase struct {
	*service.Crud[product.Entity, int64]
	repo ports.ProductRepository
}

func NewUsecase(repo ports.ProductRepository) *Usecase {
	return &Usecase{
		Crud: service.NewCrud[product.Entity, int64](repo),
		repo: repo,
	}
}

func (uc *Usecase) CreateProduct(ctx context.Context, name string, status int, priceCents int64) (*product.Entity, error) {
	log := logger.FromContext(ctx)
	log.Debug("Creating product", logger.String("name", name))

	entity, err := product.New(name, status, priceCents)
	if err != nil {
		log.Warn("Invalid product data", logger.String("name", name), logger.Error(err))
		return nil, err
	}

	if err := uc.Save(ctx, entity); err != nil {
		var conflict *repository.ConflictError
		if errors.As(err, &conflict) {
			return nil, &product.AlreadyExistsError{Name: entity.Name}
		}
		return nil, err
	}

	return entity, nil
}

func (uc *Usecase) GetProduct(ctx context.Context, id int64) (*product.Entity, error) {
	entity, err := uc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, product.ErrNotFound
		}
		return nil, err
	}
	return entity, nil
}

// UpdateProduct replaces the stored product with the given fields.
func (uc *Usecase) UpdateProduct(ctx context.Context, id int64, name string, status int, priceCents int64) (*product.Entity, error) {
	current, err := uc.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	replacement, err := product.New(name, status, priceCents)
	if err != nil {
		return nil, err
	}
	replacement.ID = current.ID
	replacement.CreatedAt = current.CreatedAt

	if err := uc.Update(ctx, replacement); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, product.ErrNotFound
		}
		var conflict *repository.ConflictError
		if errors.As(err, &conflict) {
			return nil, &product.AlreadyExistsError{Name: replacement.Name}
		}
		return nil, err
	}

	return replacement, nil
}

func (uc *Usecase) DeleteProduct(ctx context.Context, id int64) error {
	deleted, err := uc.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return product.ErrNotFound
	}
	return nil
}

// ListProducts pages through products matching the dynamic filter. The
// filter's name becomes a contains match and its status an equality match;
// an empty filter lists everything.
func (uc *Usecase) ListProducts(ctx context.Context, page, pageSize int, filter product.Filter) (*repository.Page[product.Entity], error) {
	criteria := repository.NewCriteria()
	if filter.Name != "" {
		criteria.Like("name", filter.Name)
	}
	if filter.Status != nil {
		criteria.Eq("status", *filter.Status)
	}

	req := repository.NewPageRequest(page, pageSize).
		WithCriteria(criteria).
		OrderBy("id ASC")

	return uc.FindPage(ctx, req)
}

// FindByNameLike returns all products whose name contains the given text.
func (uc *Usecase) FindByNameLike(ctx context.Context, name string) ([]*product.Entity, error) {
	return uc.Find(ctx, repository.NewCriteria().Like("name", name))
}

// CountByStatus reports how many products carry the given status.
func (uc *Usecase) CountByStatus(ctx context.Context, status int) (int, error) {
	return uc.CountWhere(ctx, repository.NewCriteria().Eq("status", status))
}
