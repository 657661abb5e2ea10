package preferences

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func setupRouter() (*gin.Engine, redismock.ClientMock) {
	gin.SetMode(gin.TestMode)
	s, mock := newMockStore()
	router := gin.New()
	NewHandler(s).RegisterRoutes(router.Group("/api"))
	return router, mock
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_Theme(t *testing.T) {
	router, mock := setupRouter()

	mock.ExpectGet(themeKey).SetVal("dark")
	w := serve(router, http.MethodGet, "/api/preferences/theme", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"theme":"dark"}`, w.Body.String())

	mock.ExpectSet(themeKey, "light", 0).SetVal("OK")
	w = serve(router, http.MethodPut, "/api/preferences/theme", `{"theme":"light"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(router, http.MethodPut, "/api/preferences/theme", `{"theme":"neon"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mock.ExpectGet(themeKey).SetVal("light")
	mock.ExpectSet(themeKey, "dark", 0).SetVal("OK")
	w = serve(router, http.MethodPost, "/api/preferences/theme/toggle", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"theme":"dark"}`, w.Body.String())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Expanded(t *testing.T) {
	router, mock := setupRouter()

	mock.ExpectHSet(expandedKey, "4", "false").SetVal(1)
	w := serve(router, http.MethodPut, "/api/preferences/expanded/4", `{"expanded":false}`)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(router, http.MethodPut, "/api/preferences/expanded/x", `{"expanded":true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(router, http.MethodPut, "/api/preferences/expanded/4", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mock.ExpectHGetAll(expandedKey).SetVal(map[string]string{"4": "false", "5": "true"})
	w = serve(router, http.MethodGet, "/api/preferences/expanded", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"4":false,"5":true}`, w.Body.String())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_ThemeStoreFailure(t *testing.T) {
	router, mock := setupRouter()

	mock.ExpectGet(themeKey).SetErr(assert.AnError)
	w := serve(router, http.MethodGet, "/api/preferences/theme", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
