package responses

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newContext(method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(method, target, nil)
	return c, rec
}

func TestBadRequest(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/api/getTournament")
	BadRequest(c, "Tournament not found with id: x")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":["Tournament not found with id: x"]}`, rec.Body.String())
	assert.True(t, c.IsAborted())
}

func TestBadRequestDefaultMessage(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/")
	BadRequest(c)
	assert.JSONEq(t, `{"errors":["Invalid request payload or parameters"]}`, rec.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	c, rec := newContext(http.MethodPatch, "/api/getTournaments")
	MethodNotAllowed(c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"errors":["Method PATCH not allowed"]}`, rec.Body.String())
}

func TestSendEmpty(t *testing.T) {
	c, rec := newContext(http.MethodDelete, "/api/removeTournament")
	SendEmpty(c, http.StatusOK)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
