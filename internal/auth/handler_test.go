package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleObtainToken_Success(t *testing.T) {
	service, _ := newTestAuthService(t)
	handler := NewHandler(service)

	body := `{"email":"john@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/token", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleObtainToken(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.NotEmpty(t, data["access"])
	assert.NotEmpty(t, data["refresh"])
}

func TestHandleObtainToken_MissingFields(t *testing.T) {
	service, _ := newTestAuthService(t)
	handler := NewHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/api/users/token", strings.NewReader(`{"email":"john@example.com"}`))
	w := httptest.NewRecorder()

	handler.HandleObtainToken(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandleObtainToken_WrongPassword(t *testing.T) {
	service, _ := newTestAuthService(t)
	handler := NewHandler(service)

	body := `{"email":"john@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/token", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleObtainToken(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestHandleRefreshToken_Success(t *testing.T) {
	service, _ := newTestAuthService(t)
	handler := NewHandler(service)

	_, _, refresh, err := service.Login("john@example.com", "secret123")
	assert.NoError(t, err)

	payload, err := json.Marshal(map[string]string{"refresh": refresh})
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/users/token/refresh", strings.NewReader(string(payload)))
	w := httptest.NewRecorder()

	handler.HandleRefreshToken(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.NotEmpty(t, data["access"])
	// the refresh token is not rotated on this path
	_, rotated := data["refresh"]
	assert.False(t, rotated)
}

func TestHandleRefreshToken_Invalid(t *testing.T) {
	service, _ := newTestAuthService(t)
	handler := NewHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/api/users/token/refresh", strings.NewReader(`{"refresh":"garbage"}`))
	w := httptest.NewRecorder()

	handler.HandleRefreshToken(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestHandleRefreshToken_MissingToken(t *testing.T) {
	service, _ := newTestAuthService(t)
	handler := NewHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/api/users/token/refresh", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	handler.HandleRefreshToken(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}
