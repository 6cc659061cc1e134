package category

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"scaffold/internal/adapters/http/response"
	"scaffold/internal/core/domain/category"
	httpErrors "scaffold/internal/platform/http"
	"scaffold/internal/platform/logger"
	"scaffold/internal/platform/validator"
)

type Handler struct {
	manager  Manager
	validate validator.Validator
}

func NewHandler(manager Manager, validate validator.Validator) *Handler {
	return &Handler{
		manager:  manager,
		validate: validate,
	}
}

func (h *Handler) mapDomainError(err error) error {
	switch {
	case errors.Is(err, category.ErrNotFound):
		return httpErrors.NewNotFound("Category not found", err)
	case errors.Is(err, category.ErrInvalidSlug):
		return httpErrors.NewBadRequest("Invalid category slug", err)
	case errors.Is(err, category.ErrInvalidName):
		return httpErrors.NewBadRequest("Invalid category name", err)
	case errors.Is(err, category.ErrInvalidStatus):
		return httpErrors.NewBadRequest("Invalid category status", err)
	default:
		var alreadyExistsErr *category.AlreadyExistsError
		if errors.As(err, &alreadyExistsErr) {
			return httpErrors.NewConflict("Category already exists", err)
		}
		return err
	}
}

type CreateCategoryRequest struct {
	Slug   string `json:"slug" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Status int    `json:"status" validate:"min=0,max=1"`
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) error {
	contextLogger := logger.FromContext(r.Context())

	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		contextLogger.Warn("Failed to decode request body", logger.Error(err))
		response.RespondError(w, http.StatusBadRequest, errors.New("invalid request payload"))
		return nil
	}

	if err := h.validate.Validate(req); err != nil {
		var validationErr validator.ValidationError
		if errors.As(err, &validationErr) {
			contextLogger.Warn("Validation failed", logger.Error(err))
			response.RespondJSON(w, http.StatusBadRequest, toValidationResponse(validationErr))
		} else {
			contextLogger.Error("Unexpected validation error", logger.Error(err))
			response.RespondError(w, http.StatusBadRequest, errors.New("invalid request data"))
		}
		return nil
	}

	entity, err := h.manager.CreateCategory(r.Context(), req.Slug, req.Name, req.Status)
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusCreated, entity)
	return nil
}

func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) error {
	slug := chi.URLParam(r, "slug")

	entity, err := h.manager.GetCategory(r.Context(), slug)
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, entity)
	return nil
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) error {
	slug := chi.URLParam(r, "slug")

	if err := h.manager.DeleteCategory(r.Context(), slug); err != nil {
		return h.mapDomainError(err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("pageSize"))

	result, err := h.manager.ListCategories(r.Context(), page, pageSize, query.Get("name"))
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, result)
	return nil
}

func toValidationResponse(err validator.ValidationError) response.ValidationErrorResponse {
	resp := response.ValidationErrorResponse{Errors: make([]response.FieldError, 0, len(err.Errors))}
	for _, fieldErr := range err.Errors {
		resp.Errors = append(resp.Errors, response.FieldError{Field: fieldErr.Field, Message: fieldErr.Message})
	}
	return resp
}
