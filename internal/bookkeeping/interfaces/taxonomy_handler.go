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

type AccountTypeServiceInterface interface {
	CreateAccountType(ctx context.Context, identity domain.Identity, accountType *domain.AccountType) error
	GetAccountType(ctx context.Context, accountTypeID int64) (*domain.AccountType, error)
	ListAccountTypes(ctx context.Context) ([]domain.AccountType, error)
	UpdateAccountType(ctx context.Context, identity domain.Identity, accountTypeID int64, name string) (*domain.AccountType, error)
	DeleteAccountType(ctx context.Context, identity domain.Identity, accountTypeID int64) error
}

type TransactionTypeServiceInterface interface {
	CreateTransactionType(ctx context.Context, identity domain.Identity, transactionType *domain.TransactionType) error
	GetTransactionType(ctx context.Context, transactionTypeID int64) (*domain.TransactionType, error)
	ListTransactionTypes(ctx context.Context) ([]domain.TransactionType, error)
	UpdateTransactionType(ctx context.Context, identity domain.Identity, transactionTypeID int64, name string) (*domain.TransactionType, error)
	DeleteTransactionType(ctx context.Context, identity domain.Identity, transactionTypeID int64) error
}

func respondTaxonomyError(respondError func(w http.ResponseWriter, status int, message string, errors ...[]string), w http.ResponseWriter, err error, notFound error, notFoundMsg string) {
	switch {
	case bkErrors.IsValidationError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, application.ErrForbidden):
		respondError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, notFound):
		respondError(w, http.StatusNotFound, notFoundMsg)
	default:
		log.WithError(err).Error("type catalogue operation failed")
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

type AccountTypeHandler struct {
	service      AccountTypeServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewAccountTypeHandler(
	service AccountTypeServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *AccountTypeHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &AccountTypeHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *AccountTypeHandler) CreateAccountType(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	accountType := domain.AccountType{Name: req.Name}
	if err := h.service.CreateAccountType(r.Context(), identity, &accountType); err != nil {
		respondTaxonomyError(h.respondError, w, err, application.ErrAccountTypeNotFound, "Account type not found")
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Account type successfully created.",
		"data":    accountType,
	})
}

func (h *AccountTypeHandler) GetAccountTypes(w http.ResponseWriter, r *http.Request) {
	if _, ok := identityFromRequest(r); !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	accountTypes, err := h.service.ListAccountTypes(r.Context())
	if err != nil {
		respondTaxonomyError(h.respondError, w, err, application.ErrAccountTypeNotFound, "Account type not found")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Account types retrieved successfully.",
		"data":    accountTypes,
	})
}

func (h *AccountTypeHandler) GetAccountType(w http.ResponseWriter, r *http.Request) {
	if _, ok := identityFromRequest(r); !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	accountTypeID, err := pathID(r, "accountTypeID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid account type ID")
		return
	}

	accountType, err := h.service.GetAccountType(r.Context(), accountTypeID)
	if err != nil {
		respondTaxonomyError(h.respondError, w, err, application.ErrAccountTypeNotFound, "Account type not found")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Account type retrieved successfully.",
		"data":    accountType,
	})
}

func (h *AccountTypeHandler) UpdateAccountType(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	accountTypeID, err := pathID(r, "accountTypeID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid account type ID")
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	accountType, err := h.service.UpdateAccountType(r.Context(), identity, accountTypeID, req.Name)
	if err != nil {
		respondTaxonomyError(h.respondError, w, err, application.ErrAccountTypeNotFound, "Account type not found")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Account type successfully updated.",
		"data":    accountType,
	})
}

func (h *AccountTypeHandler) DeleteAccountType(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	accountTypeID, err := pathID(r, "accountTypeID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid account type ID")
		return
	}

	if err := h.service.DeleteAccountType(r.Context(), identity, accountTypeID); err != nil {
		respondTaxonomyError(h.respondError, w, err, application.ErrAccountTypeNotFound, "Account type not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type TransactionTypeHandler struct {
	service      TransactionTypeServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewTransactionTypeHandler(
	service TransactionTypeServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *TransactionTypeHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionTypeHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *TransactionTypeHandler) CreateTransactionType(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transactionType := domain.TransactionType{Name: req.Name}
	if err := h.service.CreateTransactionType(r.Context(), identity, &transactionType); err != nil {
		respondTaxonomyError(h.respondError, w, err, application.ErrTransactionTypeNotFound, "Transaction type not found")
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Transaction type successfully created.",
		"data":    transactionType,
	})
}

func (h *TransactionTypeHandler) GetTransactionTypes(w http.ResponseWriter, r *http.Request) {
	if _, ok := identityFromRequest(r); !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	transactionTypes, err := h.service.ListTransactionTypes(r.Context())
	if err != nil {
		respondTaxonomyError(h.respondError, w, err, application.ErrTransactionTypeNotFound, "Transaction type not found")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction types retrieved successfully.",
		"data":    transactionTypes,
	})
}

func (h *TransactionTypeHandler) GetTransactionType(w http.ResponseWriter, r *http.Request) {
	if _, ok := identityFromRequest(r); !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	transactionTypeID, err := pathID(r, "transactionTypeID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction type ID")
		return
	}

	transactionType, err := h.service.GetTransactionType(r.Context(), transactionTypeID)
	if err != nil {
		respondTaxonomyError(h.respondError, w, err, application.ErrTransactionTypeNotFound, "Transaction type not found")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction type retrieved successfully.",
		"data":    transactionType,
	})
}

func (h *TransactionTypeHandler) UpdateTransactionType(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	transactionTypeID, err := pathID(r, "transactionTypeID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction type ID")
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transactionType, err := h.service.UpdateTransactionType(r.Context(), identity, transactionTypeID, req.Name)
	if err != nil {
		respondTaxonomyError(h.respondError, w, err, application.ErrTransactionTypeNotFound, "Transaction type not found")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction type successfully updated.",
		"data":    transactionType,
	})
}

func (h *TransactionTypeHandler) DeleteTransactionType(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	transactionTypeID, err := pathID(r, "transactionTypeID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction type ID")
		return
	}

	if err := h.service.DeleteTransactionType(r.Context(), identity, transactionTypeID); err != nil {
		respondTaxonomyError(h.respondError, w, err, application.ErrTransactionTypeNotFound, "Transaction type not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
