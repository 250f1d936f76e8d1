package users

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/padronapp/padron/pkg/handlers"
	"github.com/padronapp/padron/pkg/pagination"
	"github.com/padronapp/padron/pkg/routes"
)

// Handler provides the HTTP endpoints of the user registry.
type Handler struct {
	sys           System
	logger        *slog.Logger
	pagination    pagination.Config
	maxUploadSize int64
}

// NewHandler creates a Handler with the given system, logger, pagination
// config, and photo upload size limit.
func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
	maxUploadSize int64,
) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "usuarios"),
		pagination:    pagination,
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route group definition for the registry endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/usuarios",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Register},
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "POST", Pattern: "/multiples", Handler: h.RegisterBatch},
			{Method: "POST", Pattern: "/csv", Handler: h.RegisterCSV},
			{Method: "GET", Pattern: "/email/{q}", Handler: h.SearchEmail},
			{Method: "GET", Pattern: "/nombre/{q}", Handler: h.SearchName},
			{Method: "GET", Pattern: "/documento/{q}", Handler: h.SearchDocument},
			{Method: "GET", Pattern: "/buscar/{valor}", Handler: h.SearchAny},
			{Method: "GET", Pattern: "/email-exacto/{q}", Handler: h.ExactEmail},
			{Method: "GET", Pattern: "/documento-exacto/{documento}", Handler: h.ExactDocument},
			{Method: "GET", Pattern: "/{documento}", Handler: h.Find},
			{Method: "PATCH", Pattern: "/{documento}", Handler: h.Update},
			{Method: "DELETE", Pattern: "/{documento}", Handler: h.Delete},
			{Method: "GET", Pattern: "/{documento}/foto", Handler: h.GetPhoto},
			{Method: "POST", Pattern: "/{documento}/foto", Handler: h.UploadPhoto},
			{Method: "DELETE", Pattern: "/{documento}/foto", Handler: h.DeletePhoto},
		},
	}
}

// Register creates a single user from a JSON body.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidBody)
		return
	}

	u, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, map[string]any{
		"message": "usuario registrado correctamente",
		"usuario": u,
	})
}

// Find returns a single user by document id.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	u, err := h.sys.Get(r.Context(), r.PathValue("documento"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, u)
}

// Update applies a partial update, optionally renaming the document key.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var patch Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidBody)
		return
	}

	u, err := h.sys.Update(r.Context(), r.PathValue("documento"), patch)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"message": "usuario actualizado correctamente",
		"usuario": u,
	})
}

// Delete removes a user and, best-effort, their photo blob.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.Delete(r.Context(), r.PathValue("documento")); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "usuario eliminado correctamente",
	})
}

// List returns all users windowed by skip/limit.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.FromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.List(r.Context(), page)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// SearchEmail returns users whose email contains the path query.
func (h *Handler) SearchEmail(w http.ResponseWriter, r *http.Request) {
	h.respondSearch(w, r, h.sys.SearchByEmail, r.PathValue("q"))
}

// SearchName returns users whose normalized name contains the path query,
// ignoring case and accents.
func (h *Handler) SearchName(w http.ResponseWriter, r *http.Request) {
	h.respondSearch(w, r, h.sys.SearchByName, r.PathValue("q"))
}

// SearchDocument returns users whose document id contains the path query.
func (h *Handler) SearchDocument(w http.ResponseWriter, r *http.Request) {
	h.respondSearch(w, r, h.sys.SearchByDocument, r.PathValue("q"))
}

// SearchAny returns users matching the path query on any searchable field.
func (h *Handler) SearchAny(w http.ResponseWriter, r *http.Request) {
	h.respondSearch(w, r, h.sys.SearchAny, r.PathValue("valor"))
}

// ExactEmail returns the single user holding the given email.
func (h *Handler) ExactEmail(w http.ResponseWriter, r *http.Request) {
	u, err := h.sys.ExactEmail(r.Context(), r.PathValue("q"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, u)
}

// ExactDocument returns the single user holding the given document id.
func (h *Handler) ExactDocument(w http.ResponseWriter, r *http.Request) {
	u, err := h.sys.ExactDocument(r.Context(), r.PathValue("documento"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, u)
}

// RegisterBatch ingests a JSON array of users, reporting per-item outcomes.
func (h *Handler) RegisterBatch(w http.ResponseWriter, r *http.Request) {
	var cmds []CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmds); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidBody)
		return
	}

	report := h.sys.Ingest(r.Context(), cmds)
	handlers.RespondJSON(w, http.StatusOK, report)
}

// RegisterCSV ingests users from an uploaded CSV file or raw CSV body.
func (h *Handler) RegisterCSV(w http.ResponseWriter, r *http.Request) {
	reader, err := h.csvReader(r)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	report, err := h.sys.IngestCSV(r.Context(), reader)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}

// GetPhoto returns the user's public photo URL.
func (h *Handler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	url, err := h.sys.GetPhoto(r.Context(), r.PathValue("documento"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"foto": url})
}

// UploadPhoto stores a new photo from a multipart form field named "foto",
// replacing any prior one.
func (h *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNoFile)
		return
	}

	file, header, err := r.FormFile("foto")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNoFile)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNoFile)
		return
	}

	contentType := detectContentType(header.Header.Get("Content-Type"), data)

	url, err := h.sys.UploadPhoto(r.Context(), r.PathValue("documento"), data, contentType)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, map[string]string{
		"message": "foto subida correctamente",
		"foto":    url,
	})
}

// DeletePhoto clears the user's photo field and removes the blob best-effort.
func (h *Handler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.DeletePhoto(r.Context(), r.PathValue("documento")); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "foto eliminada correctamente",
	})
}

type searchFunc func(ctx context.Context, q string, page pagination.Page) (*pagination.Result[User], error)

func (h *Handler) respondSearch(w http.ResponseWriter, r *http.Request, search searchFunc, q string) {
	page := pagination.FromQuery(r.URL.Query(), h.pagination)

	result, err := search(r.Context(), q, page)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// csvReader returns the CSV payload either from a multipart form field named
// "archivo" or from the raw request body.
func (h *Handler) csvReader(r *http.Request) (io.Reader, error) {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		return r.Body, nil
	}

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		return nil, ErrNoFile
	}

	file, _, err := r.FormFile("archivo")
	if err != nil {
		return nil, ErrNoFile
	}

	return file, nil
}

func detectContentType(header string, data []byte) string {
	header = strings.TrimSpace(header)
	if header != "" && header != "application/octet-stream" {
		return header
	}
	return http.DetectContentType(data)
}
