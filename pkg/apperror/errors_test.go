package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMapErrorToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("user lookup: %w", ErrNotFound), http.StatusNotFound},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"bad request", ErrBadRequest, http.StatusBadRequest},
		{"invalid input", ErrInvalidInput, http.StatusBadRequest},
		{"dependency", ErrDependency, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"app error code", New(http.StatusConflict, "conflict", nil), http.StatusConflict},
		{"wrapped app error", fmt.Errorf("outer: %w", New(http.StatusTeapot, "teapot", nil)), http.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapErrorToStatus(tt.err); got != tt.want {
				t.Errorf("MapErrorToStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	appErr := New(http.StatusBadRequest, "outer", inner)
	if !errors.Is(appErr, inner) {
		t.Error("AppError does not unwrap to its cause")
	}
	if appErr.Error() != "inner" {
		t.Errorf("Error() = %q, want the wrapped message", appErr.Error())
	}
}
