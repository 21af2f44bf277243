package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serveWithError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		HandleServiceError(c, err)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestHandleServiceErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrProfileNotFound, http.StatusNotFound},
		{ErrInvalidInput, http.StatusBadRequest},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrEmailAlreadyExists, http.StatusConflict},
		{ErrDatabaseError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := serveWithError(tc.err)
		assert.Equal(t, tc.code, w.Code, "error %v", tc.err)
	}
}

func TestDatabaseErrorDetailsAreNotLeaked(t *testing.T) {
	w := serveWithError(ErrDatabaseError)
	assert.NotContains(t, w.Body.String(), ErrDatabaseError.Error())
	assert.Contains(t, w.Body.String(), "Internal server error")
}
