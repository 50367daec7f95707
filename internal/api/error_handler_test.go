package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/teampulse/admin-console/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "user_not_found",
			err:         domain.ErrUserNotFound,
			wantCode:    http.StatusNotFound,
			wantMessage: "user not found",
		},
		{
			name:        "project_not_found",
			err:         domain.ErrProjectNotFound,
			wantCode:    http.StatusNotFound,
			wantMessage: "project not found",
		},
		{
			name:        "email_taken",
			err:         domain.ErrEmailTaken,
			wantCode:    http.StatusConflict,
			wantMessage: "email already in use",
		},
		{
			name:        "invalid_input",
			err:         domain.ErrInvalidInput,
			wantCode:    http.StatusBadRequest,
			wantMessage: domain.ErrInvalidInput.Error(),
		},
		{
			name:        "echo_http_error",
			err:         echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"),
			wantCode:    http.StatusUnauthorized,
			wantMessage: "missing authorization header",
		},
		{
			name:        "unexpected",
			err:         errors.New("connection reset"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
	}

	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(tc.err, c)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}

			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("bad envelope: %v", err)
			}
			if body.Message != tc.wantMessage {
				t.Fatalf("expected message %q, got %q", tc.wantMessage, body.Message)
			}
		})
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	handler := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.NoContent(http.StatusNoContent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	handler(domain.ErrUserNotFound, c)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("committed response must not be rewritten, got %d", rec.Code)
	}
}
