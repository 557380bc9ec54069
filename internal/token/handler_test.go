package token_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niladhikari/house-hunter-server/internal/token"
)

func TestIssueEndpoint(t *testing.T) {
	svc := token.NewService("testsecret", time.Hour)
	handler := token.NewHandler(slog.Default(), svc)

	body := `{"email":"a@x.com","name":"A"}`
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(body))
	res := httptest.NewRecorder()
	handler.Issue(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	var got map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &got))
	require.NotEmpty(t, got["token"])

	claims, err := svc.Verify(got["token"])
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims["email"])
}

func TestIssueEndpointRejectsBadJSON(t *testing.T) {
	handler := token.NewHandler(slog.Default(), token.NewService("testsecret", time.Hour))

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader("{"))
	res := httptest.NewRecorder()
	handler.Issue(res, req)

	assert.Equal(t, http.StatusBadRequest, res.Code)
}
