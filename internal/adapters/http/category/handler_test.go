package category

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"scaffold/internal/adapters/http/response"
	categoryDomain "scaffold/internal/core/domain/category"
	httpErrors "scaffold/internal/platform/http"
	"scaffold/internal/platform/logger"
	"scaffold/internal/platform/repository"
	"scaffold/internal/platform/validator"
)

type fakeManager struct {
	createFn func(ctx context.Context, slug, name string, status int) (*categoryDomain.Entity, error)
	getFn    func(ctx context.Context, slug string) (*categoryDomain.Entity, error)
	deleteFn func(ctx context.Context, slug string) error
	listFn   func(ctx context.Context, page, pageSize int, name string) (*repository.Page[categoryDomain.Entity], error)
}

func (f *fakeManager) CreateCategory(ctx context.Context, slug, name string, status int) (*categoryDomain.Entity, error) {
	return f.createFn(ctx, slug, name, status)
}

func (f *fakeManager) GetCategory(ctx context.Context, slug string) (*categoryDomain.Entity, error) {
	return f.getFn(ctx, slug)
}

func (f *fakeManager) DeleteCategory(ctx context.Context, slug string) error {
	return f.deleteFn(ctx, slug)
}

func (f *fakeManager) ListCategories(ctx context.Context, page, pageSize int, name string) (*repository.Page[categoryDomain.Entity], error) {
	return f.listFn(ctx, page, pageSize, name)
}

type fakeValidator struct {
	err error
}

func (f *fakeValidator) Validate(s interface{}) error {
	return f.err
}

type HandlerTestSuite struct {
	suite.Suite
	manager   *fakeManager
	validator *fakeValidator
	handler   *Handler
	router    *chi.Mux
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.manager = &fakeManager{}
	suite.validator = &fakeValidator{}
	suite.handler = NewHandler(suite.manager, suite.validator)

	suite.router = chi.NewRouter()
	suite.router.Post("/categories", suite.wrap(suite.handler.CreateCategory))
	suite.router.Get("/categories", suite.wrap(suite.handler.ListCategories))
	suite.router.Get("/categories/{slug}", suite.wrap(suite.handler.GetCategory))
	suite.router.Delete("/categories/{slug}", suite.wrap(suite.handler.DeleteCategory))
}

func (suite *HandlerTestSuite) wrap(next func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			var httpErr *httpErrors.Error
			if errors.As(err, &httpErr) {
				response.RespondError(w, httpErr.StatusCode, httpErr)
				return
			}
			response.RespondError(w, http.StatusInternalServerError, err)
		}
	}
}

func (suite *HandlerTestSuite) serve(method, target string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req = req.WithContext(logger.WithLogger(req.Context(), logger.NewNop()))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) TestCreateCategory_Success() {
	suite.manager.createFn = func(ctx context.Context, slug, name string, status int) (*categoryDomain.Entity, error) {
		return &categoryDomain.Entity{Slug: slug, Name: name, Status: status}, nil
	}

	body, _ := json.Marshal(CreateCategoryRequest{Slug: "home-goods", Name: "Home Goods", Status: 1})
	w := suite.serve(http.MethodPost, "/categories", body)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var entity categoryDomain.Entity
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &entity))
	assert.Equal(suite.T(), "home-goods", entity.Slug)
	assert.Equal(suite.T(), "Home Goods", entity.Name)
}

func (suite *HandlerTestSuite) TestCreateCategory_MalformedBody() {
	w := suite.serve(http.MethodPost, "/categories", []byte("{not json"))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.JSONEq(suite.T(), `{"error":"invalid request payload"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestCreateCategory_ValidationFailure() {
	suite.validator.err = validator.ValidationError{
		Errors: []validator.FieldError{{Field: "Slug", Message: "This field is required"}},
	}

	body, _ := json.Marshal(CreateCategoryRequest{})
	w := suite.serve(http.MethodPost, "/categories", body)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateCategory_InvalidSlug() {
	suite.manager.createFn = func(ctx context.Context, slug, name string, status int) (*categoryDomain.Entity, error) {
		return nil, categoryDomain.ErrInvalidSlug
	}

	body, _ := json.Marshal(CreateCategoryRequest{Slug: "Home Goods", Name: "Home Goods", Status: 1})
	w := suite.serve(http.MethodPost, "/categories", body)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.JSONEq(suite.T(), `{"error":"Invalid category slug"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestCreateCategory_InvalidStatus() {
	suite.manager.createFn = func(ctx context.Context, slug, name string, status int) (*categoryDomain.Entity, error) {
		return nil, categoryDomain.ErrInvalidStatus
	}

	body, _ := json.Marshal(CreateCategoryRequest{Slug: "home-goods", Name: "Home Goods", Status: 1})
	w := suite.serve(http.MethodPost, "/categories", body)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.JSONEq(suite.T(), `{"error":"Invalid category status"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestCreateCategory_Duplicate() {
	suite.manager.createFn = func(ctx context.Context, slug, name string, status int) (*categoryDomain.Entity, error) {
		return nil, &categoryDomain.AlreadyExistsError{Slug: slug}
	}

	body, _ := json.Marshal(CreateCategoryRequest{Slug: "home-goods", Name: "Home Goods", Status: 1})
	w := suite.serve(http.MethodPost, "/categories", body)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
	assert.JSONEq(suite.T(), `{"error":"Category already exists"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestGetCategory_Success() {
	suite.manager.getFn = func(ctx context.Context, slug string) (*categoryDomain.Entity, error) {
		return &categoryDomain.Entity{Slug: slug, Name: "Home Goods"}, nil
	}

	w := suite.serve(http.MethodGet, "/categories/home-goods", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var entity categoryDomain.Entity
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &entity))
	assert.Equal(suite.T(), "home-goods", entity.Slug)
}

func (suite *HandlerTestSuite) TestGetCategory_NotFound() {
	suite.manager.getFn = func(ctx context.Context, slug string) (*categoryDomain.Entity, error) {
		return nil, categoryDomain.ErrNotFound
	}

	w := suite.serve(http.MethodGet, "/categories/missing", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.JSONEq(suite.T(), `{"error":"Category not found"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestDeleteCategory_Success() {
	suite.manager.deleteFn = func(ctx context.Context, slug string) error {
		return nil
	}

	w := suite.serve(http.MethodDelete, "/categories/home-goods", nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteCategory_NotFound() {
	suite.manager.deleteFn = func(ctx context.Context, slug string) error {
		return categoryDomain.ErrNotFound
	}

	w := suite.serve(http.MethodDelete, "/categories/missing", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListCategories_PassesQueryParameters() {
	var gotPage, gotPageSize int
	var gotName string
	suite.manager.listFn = func(ctx context.Context, page, pageSize int, name string) (*repository.Page[categoryDomain.Entity], error) {
		gotPage, gotPageSize, gotName = page, pageSize, name
		return repository.NewPage[categoryDomain.Entity](repository.NewPageRequest(page, pageSize)), nil
	}

	w := suite.serve(http.MethodGet, "/categories?page=3&pageSize=7&name=home", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), 3, gotPage)
	assert.Equal(suite.T(), 7, gotPageSize)
	assert.Equal(suite.T(), "home", gotName)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
