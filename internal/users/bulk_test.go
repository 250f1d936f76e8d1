package users

import (
	"errors"
	"strings"
	"testing"
)

func TestParseCSVHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		expected error
	}{
		{"required columns", []string{"nombre", "email", "documento_identidad", "fecha_nacimiento"}, nil},
		{"with foto", []string{"nombre", "email", "documento_identidad", "fecha_nacimiento", "foto"}, nil},
		{"uppercase header", []string{"NOMBRE", "EMAIL", "DOCUMENTO_IDENTIDAD", "FECHA_NACIMIENTO"}, nil},
		{"padded header", []string{" nombre ", "email", "documento_identidad", "fecha_nacimiento"}, nil},
		{"reordered", []string{"fecha_nacimiento", "documento_identidad", "email", "nombre"}, nil},
		{"missing email", []string{"nombre", "documento_identidad", "fecha_nacimiento"}, ErrInvalidCSV},
		{"missing document", []string{"nombre", "email", "fecha_nacimiento"}, ErrInvalidCSV},
		{"empty", []string{}, ErrInvalidCSV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			columns, err := parseCSVHeader(tt.header)
			if !errors.Is(err, tt.expected) {
				t.Fatalf("parseCSVHeader = %v, expected %v", err, tt.expected)
			}
			if err == nil && len(columns) != len(tt.header) {
				t.Errorf("mapped %d columns, expected %d", len(columns), len(tt.header))
			}
		})
	}
}

func TestRowToCommand(t *testing.T) {
	columns, err := parseCSVHeader([]string{"nombre", "email", "documento_identidad", "fecha_nacimiento", "foto"})
	if err != nil {
		t.Fatalf("parseCSVHeader failed: %v", err)
	}

	t.Run("full row", func(t *testing.T) {
		cmd, err := rowToCommand(
			[]string{"José Pérez", "jose@example.com", "ab123456", "1990-05-17", "https://example.com/f.png"},
			columns,
		)
		if err != nil {
			t.Fatalf("rowToCommand failed: %v", err)
		}

		if cmd.Name != "José Pérez" || cmd.Email != "jose@example.com" ||
			cmd.DocumentID != "ab123456" || cmd.BirthDate != "1990-05-17" {
			t.Errorf("unexpected command: %+v", cmd)
		}
		if cmd.PhotoURL == nil || *cmd.PhotoURL != "https://example.com/f.png" {
			t.Errorf("PhotoURL = %v, expected row value", cmd.PhotoURL)
		}
	})

	t.Run("without foto", func(t *testing.T) {
		cmd, err := rowToCommand(
			[]string{"Ana Torres", "ana@example.com", "xy345678", "1985-01-02"},
			columns,
		)
		if err != nil {
			t.Fatalf("rowToCommand failed: %v", err)
		}
		if cmd.PhotoURL != nil {
			t.Errorf("PhotoURL = %v, expected nil", cmd.PhotoURL)
		}
	})

	t.Run("padded values", func(t *testing.T) {
		cmd, err := rowToCommand(
			[]string{" Ana Torres ", " ana@example.com", "xy345678 ", "1985-01-02"},
			columns,
		)
		if err != nil {
			t.Fatalf("rowToCommand failed: %v", err)
		}
		if cmd.Name != "Ana Torres" || cmd.Email != "ana@example.com" || cmd.DocumentID != "xy345678" {
			t.Errorf("values not trimmed: %+v", cmd)
		}
	})

	t.Run("missing required value", func(t *testing.T) {
		_, err := rowToCommand(
			[]string{"Ana Torres", "", "xy345678", "1985-01-02"},
			columns,
		)
		if err == nil {
			t.Fatal("expected error for missing email")
		}
		if !strings.Contains(err.Error(), "email") {
			t.Errorf("error %q does not name the missing field", err)
		}
	})

	t.Run("short row", func(t *testing.T) {
		if _, err := rowToCommand([]string{"Ana Torres", "ana@example.com"}, columns); err == nil {
			t.Fatal("expected error for truncated row")
		}
	})
}
