package module

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func echoPath() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /usuarios/{documento}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.PathValue("documento")))
	})
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("root"))
	})
	return mux
}

func TestNewValidatesPrefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		valid  bool
	}{
		{"single level", "/api", true},
		{"empty", "", false},
		{"missing slash", "api", false},
		{"multi level", "/api/v1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				recovered := recover()
				if tt.valid && recovered != nil {
					t.Errorf("New(%q) panicked: %v", tt.prefix, recovered)
				}
				if !tt.valid && recovered == nil {
					t.Errorf("New(%q) did not panic", tt.prefix)
				}
			}()
			New(tt.prefix, echoPath())
		})
	}
}

func TestModuleServeStripsPrefix(t *testing.T) {
	m := New("/api", echoPath())

	rec := httptest.NewRecorder()
	m.Serve(rec, httptest.NewRequest("GET", "/api/usuarios/AB123456", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "AB123456" {
		t.Errorf("body = %q, expected path value after prefix strip", rec.Body.String())
	}
}

func TestModuleServeBarePrefix(t *testing.T) {
	m := New("/api", echoPath())

	rec := httptest.NewRecorder()
	m.Serve(rec, httptest.NewRequest("GET", "/api", nil))

	if rec.Body.String() != "root" {
		t.Errorf("body = %q, expected inner root handler", rec.Body.String())
	}
}

func TestModuleMiddlewareOrder(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	m := New("/api", echoPath())
	m.Use(tag("outer"))
	m.Use(tag("inner"))

	rec := httptest.NewRecorder()
	m.Serve(rec, httptest.NewRequest("GET", "/api/usuarios/X1", nil))

	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("middleware order = %v, expected [outer inner]", order)
	}
}

func TestRouterDispatch(t *testing.T) {
	router := NewRouter()
	router.Mount(New("/api", echoPath()))
	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	tests := []struct {
		name     string
		target   string
		expected string
		status   int
	}{
		{"module path", "/api/usuarios/AB123456", "AB123456", http.StatusOK},
		{"trailing slash normalized", "/api/usuarios/AB123456/", "AB123456", http.StatusOK},
		{"native fallback", "/healthz", "ok", http.StatusOK},
		{"unknown path", "/desconocido", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest("GET", tt.target, nil))

			if rec.Code != tt.status {
				t.Fatalf("status = %d, expected %d", rec.Code, tt.status)
			}
			if tt.expected != "" && rec.Body.String() != tt.expected {
				t.Errorf("body = %q, expected %q", rec.Body.String(), tt.expected)
			}
		})
	}
}
