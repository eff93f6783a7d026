package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/libra-works/internal/domain"
)

// worksResponse is the envelope of every works endpoint.
type worksResponse struct {
	Status  int            `json:"status"`
	Works   []workResponse `json:"works,omitempty"`
	Audit   []auditEntry   `json:"audit,omitempty"`
	Message string         `json:"message,omitempty"`
}

type workResponse struct {
	ID                string   `json:"id"`
	Identifier        string   `json:"identifier,omitempty"`
	Status            string   `json:"status"`
	Title             string   `json:"title"`
	Abstract          string   `json:"abstract"`
	AuthorEmail       string   `json:"author_email"`
	AuthorFirstName   string   `json:"author_first_name"`
	AuthorLastName    string   `json:"author_last_name"`
	AuthorInstitution string   `json:"author_institution"`
	AuthorDepartment  string   `json:"author_department"`
	DepositorEmail    string   `json:"depositor_email"`
	CreatorEmail      string   `json:"creator_email"`
	Degree            string   `json:"degree"`
	EmbargoState      string   `json:"embargo_state"`
	EmbargoEndDate    string   `json:"embargo_end_date,omitempty"`
	Rights            string   `json:"rights"`
	Advisers          []string `json:"advisers"`
	Keywords          []string `json:"keywords"`
	Language          string   `json:"language"`
	RelatedLinks      []string `json:"related_links"`
	SponsoringAgency  string   `json:"sponsoring_agency"`
	Notes             string   `json:"notes"`
	AdminNotes        []string `json:"admin_notes"`
	Visibility        string   `json:"visibility"`
	WorkType          string   `json:"work_type"`
	Publisher         string   `json:"publisher"`
	License           string   `json:"license"`
	CreateDate        string   `json:"create_date"`
	ModifiedDate      string   `json:"modified_date"`
}

type auditEntry struct {
	Field     string    `json:"field"`
	Action    string    `json:"action"`
	OldValue  string    `json:"old_value"`
	NewValue  string    `json:"new_value"`
	Actor     string    `json:"actor"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func toWorkResponse(w domain.Work) workResponse {
	return workResponse{
		ID:                w.ID.String(),
		Identifier:        w.Identifier,
		Status:            domain.StatusOf(w.Draft).String(),
		Title:             w.Title,
		Abstract:          w.Abstract,
		AuthorEmail:       w.AuthorEmail,
		AuthorFirstName:   w.AuthorFirstName,
		AuthorLastName:    w.AuthorLastName,
		AuthorInstitution: w.AuthorInstitution,
		AuthorDepartment:  w.Department,
		DepositorEmail:    w.Depositor,
		CreatorEmail:      w.Creator,
		Degree:            w.Degree,
		EmbargoState:      w.EmbargoState.String(),
		EmbargoEndDate:    domain.FormatDate(w.EmbargoEndDate),
		Rights:            w.Rights,
		Advisers:          nonNil(w.Advisers),
		Keywords:          nonNil(w.Keywords),
		Language:          w.Language,
		RelatedLinks:      nonNil(w.RelatedLinks),
		SponsoringAgency:  w.SponsoringAgency,
		Notes:             w.Notes,
		AdminNotes:        nonNil(w.AdminNotes),
		Visibility:        w.Visibility.String(),
		WorkType:          w.WorkType,
		Publisher:         w.Publisher,
		License:           w.License,
		CreateDate:        w.DateCreated.Format(domain.DateLayout),
		ModifiedDate:      w.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toWorkResponses(works []domain.Work) []workResponse {
	out := make([]workResponse, len(works))
	for i, w := range works {
		out[i] = toWorkResponse(w)
	}
	return out
}

func toAuditEntries(entries []domain.AuditEntry) []auditEntry {
	out := make([]auditEntry, len(entries))
	for i, e := range entries {
		out[i] = auditEntry{
			Field:     e.Field,
			Action:    e.Action.String(),
			OldValue:  e.OldValue,
			NewValue:  e.NewValue,
			Actor:     e.Actor,
			Message:   e.Message(),
			CreatedAt: e.CreatedAt,
		}
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeStatus(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, worksResponse{Status: status, Message: message})
}

// handleError maps a service error onto a status envelope.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeStatus(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeStatus(w, http.StatusNotFound, "")
	case errors.Is(err, domain.ErrUnauthorized):
		writeStatus(w, http.StatusUnauthorized, "")
	case errors.Is(err, domain.ErrServiceUnavailable):
		log.WarnContext(r.Context(), "upstream service failed", slog.String("error", err.Error()))
		writeStatus(w, http.StatusBadGateway, "upstream service unavailable")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeStatus(w, http.StatusInternalServerError, "internal server error")
	}
}
