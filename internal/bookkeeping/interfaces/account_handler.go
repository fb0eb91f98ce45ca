package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/application"
	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
	bkErrors "github.com/mwolczyk/BudgetManager/internal/bookkeeping/errors"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, identity domain.Identity, account *domain.Account) error
	GetAccount(ctx context.Context, identity domain.Identity, accountID int64) (*domain.Account, error)
	ListAccounts(ctx context.Context, identity domain.Identity) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, identity domain.Identity, accountID int64, update application.AccountUpdate) (*domain.Account, error)
	DeleteAccount(ctx context.Context, identity domain.Identity, accountID int64) error
}

type accountResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Balance       string `json:"balance"`
	AccountTypeID int64  `json:"account_type_id"`
}

func newAccountResponse(account *domain.Account) accountResponse {
	return accountResponse{
		ID:            account.ID,
		Name:          account.Name,
		Description:   account.Description,
		Balance:       account.Balance.StringFixed(2),
		AccountTypeID: account.AccountTypeID,
	}
}

type AccountHandler struct {
	service      AccountServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewAccountHandler(
	service AccountServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *AccountHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &AccountHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *AccountHandler) respondAccountError(w http.ResponseWriter, err error) {
	switch {
	case bkErrors.IsValidationError(err):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, application.ErrForbidden):
		h.respondError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, application.ErrAccountNotFound):
		h.respondError(w, http.StatusNotFound, "Account not found")
	default:
		log.WithError(err).Error("account operation failed")
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req struct {
		Name          string          `json:"name"`
		Description   string          `json:"description"`
		Balance       decimal.Decimal `json:"balance"`
		AccountTypeID int64           `json:"account_type_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account := domain.Account{
		Name:          req.Name,
		Description:   req.Description,
		Balance:       req.Balance,
		AccountTypeID: req.AccountTypeID,
	}
	if err := h.service.CreateAccount(r.Context(), identity, &account); err != nil {
		h.respondAccountError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Account successfully created.",
		"data":    newAccountResponse(&account),
	})
}

func (h *AccountHandler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	accounts, err := h.service.ListAccounts(r.Context(), identity)
	if err != nil {
		h.respondAccountError(w, err)
		return
	}

	responses := make([]accountResponse, len(accounts))
	for i := range accounts {
		responses[i] = newAccountResponse(&accounts[i])
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Accounts retrieved successfully.",
		"data":    responses,
	})
}

func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	accountID, err := pathID(r, "accountID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	account, err := h.service.GetAccount(r.Context(), identity, accountID)
	if err != nil {
		h.respondAccountError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Account retrieved successfully.",
		"data":    newAccountResponse(account),
	})
}

func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	accountID, err := pathID(r, "accountID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	var req struct {
		Name          *string          `json:"name"`
		Description   *string          `json:"description"`
		Balance       *decimal.Decimal `json:"balance"`
		AccountTypeID *int64           `json:"account_type_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.service.UpdateAccount(r.Context(), identity, accountID, application.AccountUpdate{
		Name:          req.Name,
		Description:   req.Description,
		Balance:       req.Balance,
		AccountTypeID: req.AccountTypeID,
	})
	if err != nil {
		h.respondAccountError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Account successfully updated.",
		"data":    newAccountResponse(account),
	})
}

func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	accountID, err := pathID(r, "accountID")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	if err := h.service.DeleteAccount(r.Context(), identity, accountID); err != nil {
		h.respondAccountError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
