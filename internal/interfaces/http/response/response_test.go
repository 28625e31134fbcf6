package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	domainerrors "fundvault.backend/internal/domain/errors"
)

func TestSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, http.StatusCreated, gin.H{"id": 7})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":7}`, w.Body.String())
}

func TestError_MapsAppError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    *domainerrors.AppError
		status int
		code   string
	}{
		{"not found", domainerrors.NotFound("project not found"), http.StatusNotFound, "ERR_NOT_FOUND"},
		{"bad request", domainerrors.BadRequest("goal must be positive"), http.StatusBadRequest, "ERR_INVALID_INPUT"},
		{"state conflict", domainerrors.StateConflict("project is not in funding"), http.StatusConflict, "ERR_STATE_CONFLICT"},
		{"already done", domainerrors.AlreadyDone("already backed"), http.StatusConflict, "ERR_ALREADY_DONE"},
		{"deadline", domainerrors.DeadlineViolation("funding window closed"), http.StatusUnprocessableEntity, "ERR_DEADLINE"},
		{"transfer", domainerrors.TransferFailed(errors.New("rpc timeout")), http.StatusBadGateway, "ERR_TRANSFER_FAILED"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Error(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.code)
		})
	}
}

func TestError_WrapsUnknownErrorsAsInternal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, errors.New("driver: bad connection"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_INTERNAL")
	assert.NotContains(t, w.Body.String(), "bad connection", "internal detail never leaks to clients")
}
