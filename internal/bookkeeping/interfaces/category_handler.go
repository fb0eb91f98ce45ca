package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/application"
	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
	bkErrors "github.com/mwolczyk/BudgetManager/internal/bookkeeping/errors"
)

type CategoryServiceInterface interface {
	CreateCategory(ctx context.Context, identity domain.Identity, category *domain.Category) error
	GetCategory(ctx context.Context, identity domain.Identity, categoryID int64) (*domain.Category, error)
	ListCategories(ctx context.Context, identity domain.Identity) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, identity domain.Identity, categoryID int64, update application.CategoryUpdate) (*domain.Category, error)
	DeleteCategory(ctx context.Context, identity domain.Identity, categoryID int64) error
}

// categoryListItem omits the parent. The list is a flat index, the detail
// endpoint carries the tree edge.
type categoryListItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *CategoryHandler) respondCategoryError(w http.ResponseWriter, err error) {
	switch {
	case bkErrors.IsValidationError(err):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, application.ErrForbidden):
		h.respondError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, application.ErrCategoryNotFound):
		h.respondError(w, http.StatusNotFound, "Category not found")
	default:
		log.WithError(err).Error("category operation failed")
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req struct {
		Name   string `json:"name"`
		Parent *int64 `json:"parent"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category := domain.Category{Name: req.Name, ParentID: req.Parent}
	if err := h.service.CreateCategory(r.Context(), identity, &category); err != nil {
		h.respondCategoryError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Category successfully created.",
		"data":    category,
	})
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categories, err := h.service.ListCategories(r.Context(), identity)
	if err != nil {
		h.respondCategoryError(w, err)
		return
	}

	items := make([]categoryListItem, len(categories))
	for i, category := range categories {
		items[i] = categoryListItem{ID: category.ID, Name: category.Name}
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Categories retrieved successfully.",
		"data":    items,
	})
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categoryID, err := pathID(r, "categoryID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	category, err := h.service.GetCategory(r.Context(), identity, categoryID)
	if err != nil {
		h.respondCategoryError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category retrieved successfully.",
		"data":    category,
	})
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categoryID, err := pathID(r, "categoryID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var req struct {
		Name   *string         `json:"name"`
		Parent json.RawMessage `json:"parent"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := application.CategoryUpdate{Name: req.Name}
	if len(req.Parent) > 0 {
		// an explicit null detaches the parent, absence leaves it alone
		if string(req.Parent) == "null" {
			update.ClearParent = true
		} else {
			var parentID int64
			if err := json.Unmarshal(req.Parent, &parentID); err != nil {
				h.respondError(w, http.StatusBadRequest, "Invalid parent value")
				return
			}
			update.ParentID = &parentID
		}
	}

	category, err := h.service.UpdateCategory(r.Context(), identity, categoryID, update)
	if err != nil {
		h.respondCategoryError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category successfully updated.",
		"data":    category,
	})
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categoryID, err := pathID(r, "categoryID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	if err := h.service.DeleteCategory(r.Context(), identity, categoryID); err != nil {
		h.respondCategoryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
