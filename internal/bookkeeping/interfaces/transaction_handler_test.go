package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/application"
	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/infrastructure"
)

func newTransactionHandlerFixture(t *testing.T) *TransactionHandler {
	t.Helper()
	ctx := context.Background()

	typeRepo := &infrastructure.MockTransactionTypeRepository{}
	assert.NoError(t, typeRepo.Save(ctx, &domain.TransactionType{Name: "Expense"}))
	categoryRepo := &infrastructure.MockCategoryRepository{}
	assert.NoError(t, categoryRepo.Save(ctx, &domain.Category{Name: "Groceries", UserID: "user-a"}))
	accountRepo := &infrastructure.MockAccountRepository{}
	assert.NoError(t, accountRepo.Save(ctx, &domain.Account{Name: "Wallet", AccountTypeID: 1, UserID: "user-a"}))

	service := application.NewTransactionService(&infrastructure.MockTransactionRepository{}, typeRepo, categoryRepo, accountRepo)
	return NewTransactionHandler(service, respondJSON, respondError)
}

func TestCreateTransaction_ResponseFormat(t *testing.T) {
	handler := newTransactionHandlerFixture(t)

	body := `{"transaction_type_id":1,"description":"weekly shopping","amount":"42.1","date":"2024-03-15","category_id":1,"account_id":1}`
	req := authedRequest(http.MethodPost, "/api/transactions", body, "user-a", false)
	w := httptest.NewRecorder()

	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "42.10", data["amount"])
	assert.Equal(t, "2024-03-15", data["date"])
}

func TestCreateTransaction_InvalidDate(t *testing.T) {
	handler := newTransactionHandlerFixture(t)

	body := `{"transaction_type_id":1,"amount":"10.00","date":"15-03-2024","category_id":1,"account_id":1}`
	req := authedRequest(http.MethodPost, "/api/transactions", body, "user-a", false)
	w := httptest.NewRecorder()

	handler.CreateTransaction(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestCreateTransaction_TooPreciseAmount(t *testing.T) {
	handler := newTransactionHandlerFixture(t)

	body := `{"transaction_type_id":1,"description":"x","amount":"10.123","date":"2024-03-15","category_id":1,"account_id":1}`
	req := authedRequest(http.MethodPost, "/api/transactions", body, "user-a", false)
	w := httptest.NewRecorder()

	handler.CreateTransaction(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestGetTransactions_Unauthorized(t *testing.T) {
	handler := newTransactionHandlerFixture(t)

	w := httptest.NewRecorder()
	handler.GetTransactions(w, authedRequest(http.MethodGet, "/api/transactions", "", "", false))
	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}
