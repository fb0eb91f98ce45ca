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

type CategoryLinkServiceInterface interface {
	CreateLink(ctx context.Context, identity domain.Identity, link *domain.CategoryLink) error
	GetLink(ctx context.Context, identity domain.Identity, linkID int64) (*domain.CategoryLink, error)
	ListLinks(ctx context.Context, identity domain.Identity) ([]domain.CategoryLink, error)
	DeleteLink(ctx context.Context, identity domain.Identity, linkID int64) error
}

type CategoryLinkHandler struct {
	service      CategoryLinkServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewCategoryLinkHandler(
	service CategoryLinkServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *CategoryLinkHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryLinkHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *CategoryLinkHandler) respondLinkError(w http.ResponseWriter, err error) {
	switch {
	case bkErrors.IsValidationError(err):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrLinkExists):
		h.respondError(w, http.StatusConflict, "Category link already exists")
	case errors.Is(err, application.ErrForbidden):
		h.respondError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, application.ErrLinkNotFound):
		h.respondError(w, http.StatusNotFound, "Category link not found")
	default:
		log.WithError(err).Error("category link operation failed")
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func (h *CategoryLinkHandler) CreateLink(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req struct {
		CategoryID        int64 `json:"category_id"`
		TransactionTypeID int64 `json:"transaction_type_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	link := domain.CategoryLink{CategoryID: req.CategoryID, TransactionTypeID: req.TransactionTypeID}
	if err := h.service.CreateLink(r.Context(), identity, &link); err != nil {
		h.respondLinkError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Category link successfully created.",
		"data":    link,
	})
}

func (h *CategoryLinkHandler) GetLinks(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	links, err := h.service.ListLinks(r.Context(), identity)
	if err != nil {
		h.respondLinkError(w, err)
		return
	}
	if links == nil {
		links = []domain.CategoryLink{}
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category links retrieved successfully.",
		"data":    links,
	})
}

func (h *CategoryLinkHandler) GetLink(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	linkID, err := pathID(r, "linkID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid link ID")
		return
	}

	link, err := h.service.GetLink(r.Context(), identity, linkID)
	if err != nil {
		h.respondLinkError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category link retrieved successfully.",
		"data":    link,
	})
}

func (h *CategoryLinkHandler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	linkID, err := pathID(r, "linkID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid link ID")
		return
	}

	if err := h.service.DeleteLink(r.Context(), identity, linkID); err != nil {
		h.respondLinkError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
