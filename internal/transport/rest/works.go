package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/libra-works/internal/domain"
	"github.com/heartmarshall/libra-works/internal/service/works"
)

// maxBodyBytes bounds the size of an update request.
const maxBodyBytes = 1 << 20

type worksService interface {
	List(ctx context.Context, start, limit int) ([]domain.Work, error)
	Search(ctx context.Context, in works.SearchInput) ([]domain.Work, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Work, error)
	History(ctx context.Context, id uuid.UUID, limit int) ([]domain.AuditEntry, error)
	UpdateWork(ctx context.Context, id uuid.UUID, patch works.Patch) (*domain.Work, error)
	DeleteWork(ctx context.Context, id uuid.UUID) error
}

// WorksHandler serves the works API.
type WorksHandler struct {
	svc worksService
	log *slog.Logger
}

// NewWorksHandler creates a WorksHandler.
func NewWorksHandler(svc worksService, logger *slog.Logger) *WorksHandler {
	return &WorksHandler{svc: svc, log: logger.With("handler", "works")}
}

// Register adds the works routes to mux, each wrapped by mw.
func (h *WorksHandler) Register(mux *http.ServeMux, mw func(http.Handler) http.Handler) {
	mux.Handle("GET /works", mw(http.HandlerFunc(h.List)))
	mux.Handle("GET /works/search", mw(http.HandlerFunc(h.Search)))
	mux.Handle("GET /works/{id}", mw(http.HandlerFunc(h.Get)))
	mux.Handle("GET /works/{id}/audit", mw(http.HandlerFunc(h.Audit)))
	mux.Handle("PUT /works/{id}", mw(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /works/{id}", mw(http.HandlerFunc(h.Delete)))
}

// List handles GET /works. Filter parameters turn the listing into a search.
func (h *WorksHandler) List(w http.ResponseWriter, r *http.Request) {
	in := searchInput(r)
	if in.HasFilter() {
		h.search(w, r, in)
		return
	}

	found, err := h.svc.List(r.Context(), in.Start, in.Limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeWorks(w, found)
}

// Search handles GET /works/search. At least one filter is required.
func (h *WorksHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, searchInput(r))
}

func (h *WorksHandler) search(w http.ResponseWriter, r *http.Request, in works.SearchInput) {
	found, err := h.svc.Search(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeWorks(w, found)
}

// Get handles GET /works/{id}.
func (h *WorksHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := workID(w, r)
	if !ok {
		return
	}
	work, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeWorks(w, []domain.Work{*work})
}

// Audit handles GET /works/{id}/audit.
func (h *WorksHandler) Audit(w http.ResponseWriter, r *http.Request) {
	id, ok := workID(w, r)
	if !ok {
		return
	}
	entries, err := h.svc.History(r.Context(), id, numeric(r.URL.Query().Get("limit"), 0))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, worksResponse{Status: http.StatusOK, Audit: toAuditEntries(entries)})
}

// Update handles PUT /works/{id}.
func (h *WorksHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := workID(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeStatus(w, http.StatusBadRequest, "unreadable request body")
		return
	}
	patch, _, err := works.ParsePatch(body)
	if err != nil {
		if _, getErr := h.svc.Get(r.Context(), id); getErr != nil {
			err = getErr
		}
		handleError(h.log, w, r, err)
		return
	}

	if _, err := h.svc.UpdateWork(r.Context(), id, patch); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeStatus(w, http.StatusOK, "")
}

// Delete handles DELETE /works/{id}.
func (h *WorksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := workID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteWork(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeStatus(w, http.StatusOK, "")
}

// writeWorks responds 200 with the works, or 404 when there are none.
func writeWorks(w http.ResponseWriter, found []domain.Work) {
	if len(found) == 0 {
		writeStatus(w, http.StatusNotFound, "")
		return
	}
	writeJSON(w, http.StatusOK, worksResponse{Status: http.StatusOK, Works: toWorkResponses(found)})
}

// workID parses the {id} path value. An id that is not a UUID cannot name a
// work and is answered with 404.
func workID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeStatus(w, http.StatusNotFound, "")
		return uuid.Nil, false
	}
	return id, true
}

func searchInput(r *http.Request) works.SearchInput {
	q := r.URL.Query()
	return works.SearchInput{
		Status:      q.Get("status"),
		AuthorEmail: firstOf(q.Get("author_email"), q.Get("authorEmail")),
		CreateDate:  firstOf(q.Get("create_date"), q.Get("createDate")),
		Start:       numeric(q.Get("start"), 0),
		Limit:       numeric(q.Get("limit"), 0),
	}
}

// numeric parses a non-negative integer parameter, falling back to def.
func numeric(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
