package work

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/libra-works/internal/domain"
)

// row is a works table row. Indexed attributes live in columns, the rest of
// the record in the JSONB document.
type row struct {
	ID          uuid.UUID `db:"id"`
	Identifier  *string   `db:"identifier"`
	Draft       bool      `db:"draft"`
	AuthorEmail string    `db:"author_email"`
	Depositor   string    `db:"depositor"`
	DateCreated time.Time `db:"date_created"`
	Document    []byte    `db:"document"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

var columns = []string{
	"id", "identifier", "draft", "author_email", "depositor",
	"date_created", "document", "created_at", "updated_at",
}

type document struct {
	Title             string   `json:"title,omitempty"`
	Abstract          string   `json:"abstract,omitempty"`
	AuthorFirstName   string   `json:"author_first_name,omitempty"`
	AuthorLastName    string   `json:"author_last_name,omitempty"`
	AuthorInstitution string   `json:"author_institution,omitempty"`
	Department        string   `json:"department,omitempty"`
	Creator           string   `json:"creator,omitempty"`
	EditUsers         []string `json:"edit_users,omitempty"`
	Degree            string   `json:"degree,omitempty"`
	EmbargoState      string   `json:"embargo_state,omitempty"`
	EmbargoEndDate    string   `json:"embargo_end_date,omitempty"`
	Rights            string   `json:"rights,omitempty"`
	Advisers          []string `json:"advisers,omitempty"`
	Keywords          []string `json:"keywords,omitempty"`
	Language          string   `json:"language,omitempty"`
	RelatedLinks      []string `json:"related_links,omitempty"`
	SponsoringAgency  string   `json:"sponsoring_agency,omitempty"`
	Notes             string   `json:"notes,omitempty"`
	AdminNotes        []string `json:"admin_notes,omitempty"`
	Visibility        string   `json:"visibility,omitempty"`
	WorkType          string   `json:"work_type,omitempty"`
	Publisher         string   `json:"publisher,omitempty"`
	License           string   `json:"license,omitempty"`
	DepositRequestID  string   `json:"deposit_request_id,omitempty"`
}

func toRow(w *domain.Work) (row, error) {
	doc := document{
		Title:             w.Title,
		Abstract:          w.Abstract,
		AuthorFirstName:   w.AuthorFirstName,
		AuthorLastName:    w.AuthorLastName,
		AuthorInstitution: w.AuthorInstitution,
		Department:        w.Department,
		Creator:           w.Creator,
		EditUsers:         w.EditUsers,
		Degree:            w.Degree,
		EmbargoState:      string(w.EmbargoState),
		EmbargoEndDate:    domain.FormatDate(w.EmbargoEndDate),
		Rights:            w.Rights,
		Advisers:          w.Advisers,
		Keywords:          w.Keywords,
		Language:          w.Language,
		RelatedLinks:      w.RelatedLinks,
		SponsoringAgency:  w.SponsoringAgency,
		Notes:             w.Notes,
		AdminNotes:        w.AdminNotes,
		Visibility:        string(w.Visibility),
		WorkType:          w.WorkType,
		Publisher:         w.Publisher,
		License:           w.License,
		DepositRequestID:  w.DepositRequestID,
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return row{}, fmt.Errorf("marshal work document: %w", err)
	}

	var identifier *string
	if w.HasIdentifier() {
		id := w.Identifier
		identifier = &id
	}

	return row{
		ID:          w.ID,
		Identifier:  identifier,
		Draft:       w.Draft,
		AuthorEmail: w.AuthorEmail,
		Depositor:   w.Depositor,
		DateCreated: w.DateCreated,
		Document:    data,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}, nil
}

func toDomain(r row) (domain.Work, error) {
	var doc document
	if len(r.Document) > 0 {
		if err := json.Unmarshal(r.Document, &doc); err != nil {
			return domain.Work{}, fmt.Errorf("unmarshal work %s document: %w", r.ID, err)
		}
	}

	w := domain.Work{
		ID:                r.ID,
		Title:             doc.Title,
		Abstract:          doc.Abstract,
		AuthorEmail:       r.AuthorEmail,
		AuthorFirstName:   doc.AuthorFirstName,
		AuthorLastName:    doc.AuthorLastName,
		AuthorInstitution: doc.AuthorInstitution,
		Department:        doc.Department,
		Depositor:         r.Depositor,
		Creator:           doc.Creator,
		EditUsers:         doc.EditUsers,
		Degree:            doc.Degree,
		EmbargoState:      domain.EmbargoState(doc.EmbargoState),
		Rights:            doc.Rights,
		Advisers:          doc.Advisers,
		Keywords:          doc.Keywords,
		Language:          doc.Language,
		RelatedLinks:      doc.RelatedLinks,
		SponsoringAgency:  doc.SponsoringAgency,
		Notes:             doc.Notes,
		AdminNotes:        doc.AdminNotes,
		Draft:             r.Draft,
		Visibility:        domain.Visibility(doc.Visibility),
		WorkType:          doc.WorkType,
		Publisher:         doc.Publisher,
		License:           doc.License,
		DepositRequestID:  doc.DepositRequestID,
		DateCreated:       r.DateCreated,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
	if r.Identifier != nil {
		w.Identifier = *r.Identifier
	}
	if doc.EmbargoEndDate != "" {
		d, err := domain.ParseDate(doc.EmbargoEndDate)
		if err != nil {
			return domain.Work{}, fmt.Errorf("work %s: %w", r.ID, err)
		}
		w.EmbargoEndDate = &d
	}
	return w, nil
}
