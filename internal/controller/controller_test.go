package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Nithishkumar647397/quizsense-ai/internal/apperr"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
	}{
		{apperr.NotFoundf("quiz %s", "q1"), http.StatusNotFound},
		{apperr.Forbiddenf("quiz %s", "q1"), http.StatusForbidden},
		{apperr.Conflictf("quiz %s", "q1"), http.StatusConflict},
		{apperr.InvalidInputf("count %d", 99), http.StatusBadRequest},
		{apperr.ErrInsufficientData, http.StatusUnprocessableEntity},
		{apperr.Upstream("load", assert.AnError), http.StatusServiceUnavailable},
		{assert.AnError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respondError(c, tc.err)

		assert.Equal(t, tc.status, w.Code, "error %v", tc.err)
		assert.Contains(t, w.Body.String(), "message")
	}
}
