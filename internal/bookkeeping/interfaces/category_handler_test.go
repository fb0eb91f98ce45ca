package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/application"
	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/infrastructure"
)

func newCategoryHandlerFixture() *CategoryHandler {
	service := application.NewCategoryService(&infrastructure.MockCategoryRepository{})
	return NewCategoryHandler(service, respondJSON, respondError)
}

func TestCategoryListOmitsParent_DetailCarriesIt(t *testing.T) {
	handler := newCategoryHandlerFixture()

	create := httptest.NewRecorder()
	handler.CreateCategory(create, authedRequest(http.MethodPost, "/api/categories", `{"name":"Food"}`, "user-a", false))
	assert.Equal(t, http.StatusCreated, create.Result().StatusCode)

	createChild := httptest.NewRecorder()
	handler.CreateCategory(createChild, authedRequest(http.MethodPost, "/api/categories", `{"name":"Groceries","parent":1}`, "user-a", false))
	assert.Equal(t, http.StatusCreated, createChild.Result().StatusCode)

	list := httptest.NewRecorder()
	handler.GetCategories(list, authedRequest(http.MethodGet, "/api/categories", "", "user-a", false))

	var listResponse map[string]interface{}
	assert.NoError(t, json.NewDecoder(list.Result().Body).Decode(&listResponse))
	items, ok := listResponse["data"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, items, 2)
	first, ok := items[0].(map[string]interface{})
	assert.True(t, ok)
	_, hasParent := first["parent"]
	assert.False(t, hasParent)

	detail := httptest.NewRecorder()
	req := authedRequest(http.MethodGet, "/api/categories/2", "", "user-a", false)
	req.SetPathValue("categoryID", "2")
	handler.GetCategory(detail, req)

	var detailResponse map[string]interface{}
	assert.NoError(t, json.NewDecoder(detail.Result().Body).Decode(&detailResponse))
	data, ok := detailResponse["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, float64(1), data["parent"])
}

func TestUpdateCategory_ExplicitNullDetachesParent(t *testing.T) {
	handler := newCategoryHandlerFixture()

	create := httptest.NewRecorder()
	handler.CreateCategory(create, authedRequest(http.MethodPost, "/api/categories", `{"name":"Food"}`, "user-a", false))

	createChild := httptest.NewRecorder()
	handler.CreateCategory(createChild, authedRequest(http.MethodPost, "/api/categories", `{"name":"Groceries","parent":1}`, "user-a", false))

	update := httptest.NewRecorder()
	req := authedRequest(http.MethodPatch, "/api/categories/2", `{"parent":null}`, "user-a", false)
	req.SetPathValue("categoryID", "2")
	handler.UpdateCategory(update, req)

	res := update.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Nil(t, data["parent"])
}

func TestDeleteCategory_ForeignOwnerForbidden(t *testing.T) {
	handler := newCategoryHandlerFixture()

	create := httptest.NewRecorder()
	handler.CreateCategory(create, authedRequest(http.MethodPost, "/api/categories", `{"name":"Food"}`, "user-a", false))

	w := httptest.NewRecorder()
	req := authedRequest(http.MethodDelete, "/api/categories/1", "", "user-b", false)
	req.SetPathValue("categoryID", "1")
	handler.DeleteCategory(w, req)
	assert.Equal(t, http.StatusForbidden, w.Result().StatusCode)
}
