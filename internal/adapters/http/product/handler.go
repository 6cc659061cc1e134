package product

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"scaffold/internal/adapters/http/response"
	"scaffold/internal/core/domain/product"
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
	case errors.Is(err, product.ErrNotFound):
		return httpErrors.NewNotFound("Product not found", err)
	case errors.Is(err, product.ErrInvalidName):
		return httpErrors.NewBadRequest("Invalid product name", err)
	case errors.Is(err, product.ErrInvalidStatus):
		return httpErrors.NewBadRequest("Invalid product status", err)
	case errors.Is(err, product.ErrInvalidPrice):
		return httpErrors.NewBadRequest("Invalid product price", err)
	default:
		var alreadyExistsErr *product.AlreadyExistsError
		if errors.As(err, &alreadyExistsErr) {
			return httpErrors.NewConflict("Product already exists", err)
		}
		return err
	}
}

func productID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

type CreateProductRequest struct {
	Name       string `json:"name" validate:"required"`
	Status     int    `json:"status" validate:"min=0,max=1"`
	PriceCents int64  `json:"priceCents" validate:"min=0"`
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) error {
	contextLogger := logger.FromContext(r.Context())

	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		contextLogger.Warn("Failed to decode request body", logger.Error(err))
		response.RespondError(w, http.StatusBadRequest, errors.New("invalid request payload"))
		return nil
	}

	if !h.validRequest(w, req, contextLogger) {
		return nil
	}

	entity, err := h.manager.CreateProduct(r.Context(), req.Name, req.Status, req.PriceCents)
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusCreated, entity)
	return nil
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := productID(r)
	if err != nil {
		return httpErrors.NewBadRequest("Invalid product ID", err)
	}

	entity, err := h.manager.GetProduct(r.Context(), id)
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, entity)
	return nil
}

type UpdateProductRequest struct {
	Name       string `json:"name" validate:"required"`
	Status     int    `json:"status" validate:"min=0,max=1"`
	PriceCents int64  `json:"priceCents" validate:"min=0"`
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) error {
	contextLogger := logger.FromContext(r.Context())

	id, err := productID(r)
	if err != nil {
		return httpErrors.NewBadRequest("Invalid product ID", err)
	}

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		contextLogger.Warn("Failed to decode request body", logger.Error(err))
		response.RespondError(w, http.StatusBadRequest, errors.New("invalid request payload"))
		return nil
	}

	if !h.validRequest(w, req, contextLogger) {
		return nil
	}

	entity, err := h.manager.UpdateProduct(r.Context(), id, req.Name, req.Status, req.PriceCents)
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, entity)
	return nil
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := productID(r)
	if err != nil {
		return httpErrors.NewBadRequest("Invalid product ID", err)
	}

	if err := h.manager.DeleteProduct(r.Context(), id); err != nil {
		return h.mapDomainError(err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// ListProducts serves paginated listings. The name and status query
// parameters feed the dynamic filter; absent parameters place no condition.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("pageSize"))

	filter := product.Filter{Name: query.Get("name")}
	if raw := query.Get("status"); raw != "" {
		status, err := strconv.Atoi(raw)
		if err != nil {
			return httpErrors.NewBadRequest("Invalid status filter", err)
		}
		filter.Status = &status
	}

	result, err := h.manager.ListProducts(r.Context(), page, pageSize, filter)
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, result)
	return nil
}

// validRequest validates the payload, writing the 400 response itself when
// validation fails.
func (h *Handler) validRequest(w http.ResponseWriter, req interface{}, contextLogger logger.Logger) bool {
	err := h.validate.Validate(req)
	if err == nil {
		return true
	}

	var validationErr validator.ValidationError
	if errors.As(err, &validationErr) {
		contextLogger.Warn("Validation failed", logger.Error(err))
		response.RespondJSON(w, http.StatusBadRequest, toValidationResponse(validationErr))
	} else {
		contextLogger.Error("Unexpected validation error", logger.Error(err))
		response.RespondError(w, http.StatusBadRequest, errors.New("invalid request data"))
	}
	return false
}

func toValidationResponse(err validator.ValidationError) response.ValidationErrorResponse {
	resp := response.ValidationErrorResponse{Errors: make([]response.FieldError, 0, len(err.Errors))}
	for _, fieldErr := range err.Errors {
		resp.Errors = append(resp.Errors, response.FieldError{Field: fieldErr.Field, Message: fieldErr.Message})
	}
	return resp
}
