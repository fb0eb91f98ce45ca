package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/application"
	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
	bkErrors "github.com/mwolczyk/BudgetManager/internal/bookkeeping/errors"
)

const dateLayout = "2006-01-02"

type TransactionServiceInterface interface {
	CreateTransaction(ctx context.Context, identity domain.Identity, transaction *domain.Transaction) error
	GetTransaction(ctx context.Context, identity domain.Identity, transactionID int64) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, identity domain.Identity) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, identity domain.Identity, transactionID int64, update application.TransactionUpdate) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, identity domain.Identity, transactionID int64) error
}

type transactionResponse struct {
	ID                int64  `json:"id"`
	TransactionTypeID int64  `json:"transaction_type_id"`
	Description       string `json:"description"`
	Amount            string `json:"amount"`
	Date              string `json:"date"`
	CategoryID        int64  `json:"category_id"`
	AccountID         int64  `json:"account_id"`
}

func newTransactionResponse(transaction *domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:                transaction.ID,
		TransactionTypeID: transaction.TransactionTypeID,
		Description:       transaction.Description,
		Amount:            transaction.Amount.StringFixed(2),
		Date:              transaction.Date.Format(dateLayout),
		CategoryID:        transaction.CategoryID,
		AccountID:         transaction.AccountID,
	}
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *TransactionHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *TransactionHandler) respondTransactionError(w http.ResponseWriter, err error) {
	switch {
	case bkErrors.IsValidationError(err):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, application.ErrForbidden):
		h.respondError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, application.ErrTransactionNotFound):
		h.respondError(w, http.StatusNotFound, "Transaction not found")
	default:
		log.WithError(err).Error("transaction operation failed")
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req struct {
		TransactionTypeID int64           `json:"transaction_type_id"`
		Description       string          `json:"description"`
		Amount            decimal.Decimal `json:"amount"`
		Date              string          `json:"date"`
		CategoryID        int64           `json:"category_id"`
		AccountID         int64           `json:"account_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	transaction := domain.Transaction{
		TransactionTypeID: req.TransactionTypeID,
		Description:       req.Description,
		Amount:            req.Amount,
		Date:              date,
		CategoryID:        req.CategoryID,
		AccountID:         req.AccountID,
	}
	if err := h.service.CreateTransaction(r.Context(), identity, &transaction); err != nil {
		h.respondTransactionError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully created.",
		"data":    newTransactionResponse(&transaction),
	})
}

func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	transactions, err := h.service.ListTransactions(r.Context(), identity)
	if err != nil {
		h.respondTransactionError(w, err)
		return
	}

	responses := make([]transactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = newTransactionResponse(&transactions[i])
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transactions retrieved successfully.",
		"data":    responses,
	})
}

func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	transactionID, err := pathID(r, "transactionID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	transaction, err := h.service.GetTransaction(r.Context(), identity, transactionID)
	if err != nil {
		h.respondTransactionError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction retrieved successfully.",
		"data":    newTransactionResponse(transaction),
	})
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	transactionID, err := pathID(r, "transactionID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	var req struct {
		TransactionTypeID *int64           `json:"transaction_type_id"`
		Description       *string          `json:"description"`
		Amount            *decimal.Decimal `json:"amount"`
		Date              *string          `json:"date"`
		CategoryID        *int64           `json:"category_id"`
		AccountID         *int64           `json:"account_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := application.TransactionUpdate{
		TransactionTypeID: req.TransactionTypeID,
		Description:       req.Description,
		Amount:            req.Amount,
		CategoryID:        req.CategoryID,
		AccountID:         req.AccountID,
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid date format")
			return
		}
		update.Date = &date
	}

	transaction, err := h.service.UpdateTransaction(r.Context(), identity, transactionID, update)
	if err != nil {
		h.respondTransactionError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully updated.",
		"data":    newTransactionResponse(transaction),
	})
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	transactionID, err := pathID(r, "transactionID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	if err := h.service.DeleteTransaction(r.Context(), identity, transactionID); err != nil {
		h.respondTransactionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
