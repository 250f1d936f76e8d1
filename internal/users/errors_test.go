package users

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", ErrNotFound, http.StatusNotFound},
		{"no results", ErrNoResults, http.StatusNotFound},
		{"no photo", ErrNoPhoto, http.StatusNotFound},
		{"duplicate document", ErrDuplicateDocument, http.StatusConflict},
		{"duplicate email", ErrDuplicateEmail, http.StatusConflict},
		{"invalid document", ErrInvalidDocument, http.StatusUnprocessableEntity},
		{"empty name", ErrEmptyName, http.StatusUnprocessableEntity},
		{"invalid email", ErrInvalidEmail, http.StatusUnprocessableEntity},
		{"invalid date", ErrInvalidDate, http.StatusUnprocessableEntity},
		{"future date", ErrFutureDate, http.StatusUnprocessableEntity},
		{"empty patch", ErrEmptyPatch, http.StatusBadRequest},
		{"invalid body", ErrInvalidBody, http.StatusBadRequest},
		{"invalid csv", ErrInvalidCSV, http.StatusBadRequest},
		{"no file", ErrNoFile, http.StatusBadRequest},
		{"invalid photo type", ErrInvalidPhotoType, http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("lookup: %w", ErrNotFound), http.StatusNotFound},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapHTTPStatus(tt.err); got != tt.expected {
				t.Errorf("MapHTTPStatus(%v) = %d, expected %d", tt.err, got, tt.expected)
			}
		})
	}
}
