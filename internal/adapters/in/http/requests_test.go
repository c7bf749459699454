package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newJSONContext(t *testing.T, body string) echo.Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestBindStrict(t *testing.T) {
	t.Run("should decode a well-formed body", func(t *testing.T) {
		var req loginRequest
		err := bindStrict(newJSONContext(t, `{"email":"a@b.c","password":"hunter22"}`), &req)

		require.NoError(t, err)
		require.Equal(t, "a@b.c", req.Email)
		require.Equal(t, "hunter22", req.Password)
	})

	t.Run("should reject unknown fields", func(t *testing.T) {
		var req loginRequest
		err := bindStrict(newJSONContext(t,
			`{"email":"a@b.c","password":"hunter22","role":"admin"}`), &req)

		require.Error(t, err)
		require.Contains(t, err.Error(), "role")
	})

	t.Run("should reject fields outside the payload type", func(t *testing.T) {
		// Customers cannot smuggle a status change into an order edit.
		var req updateOrderRequest
		err := bindStrict(newJSONContext(t, `{
			"pickup": {"address": "1 First Ave", "latitude": 40.0, "longitude": -74.0},
			"dropoff": {"address": "2 Second Ave", "latitude": 40.1, "longitude": -74.1},
			"description": "documents",
			"price": 25.0,
			"delivery_status": "delivered"
		}`), &req)

		require.Error(t, err)
		require.Contains(t, err.Error(), "delivery_status")
	})

	t.Run("should reject trailing content", func(t *testing.T) {
		var req loginRequest
		err := bindStrict(newJSONContext(t,
			`{"email":"a@b.c","password":"hunter22"}{"email":"x@y.z"}`), &req)

		require.Error(t, err)
	})

	t.Run("should reject malformed JSON", func(t *testing.T) {
		var req loginRequest
		err := bindStrict(newJSONContext(t, `{"email":`), &req)

		require.Error(t, err)
	})
}
