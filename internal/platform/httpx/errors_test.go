package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
		wantBody string
	}{
		{ErrUnauthorized, http.StatusUnauthorized, `{"message":"unauthorized access"}`},
		{ErrForbidden, http.StatusForbidden, `{"message":"forbidden access"}`},
		{ErrNotFound, http.StatusNotFound, `{"message":"not found"}`},
		{fmt.Errorf("listings: get by id: %w", ErrNotFound), http.StatusNotFound, `{"message":"not found"}`},
		{ErrValidation, http.StatusBadRequest, `{"message":"invalid payload"}`},
		{errors.New("pg: connection refused"), http.StatusInternalServerError, `{"message":"internal error"}`},
	}
	for _, tt := range tests {
		res := httptest.NewRecorder()
		RespondError(res, tt.err)
		assert.Equal(t, tt.wantCode, res.Code)
		assert.JSONEq(t, tt.wantBody, res.Body.String())
	}
}
