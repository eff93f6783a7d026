package works

import (
	"strings"

	"github.com/heartmarshall/libra-works/internal/domain"
)

// Envelope carries the request-level values sent alongside a patch.
type Envelope struct {
	Auth string `json:"auth"`
	User string `json:"user"`
}

// Patch is a sparse set of field assignments. Blank strings and empty lists
// mean the field is absent and left unchanged.
type Patch struct {
	Abstract          string `json:"abstract"`
	AuthorEmail       string `json:"author_email"`
	AuthorFirstName   string `json:"author_first_name"`
	AuthorLastName    string `json:"author_last_name"`
	AuthorDepartment  string `json:"author_department"`
	AuthorInstitution string `json:"author_institution"`
	Degree            string `json:"degree"`
	DepositorEmail    string `json:"depositor_email"`
	EmbargoState      string `json:"embargo_state"`
	EmbargoEndDate    string `json:"embargo_end_date"`
	Language          string `json:"language"`
	Notes             string `json:"notes"`
	Rights            string `json:"rights"`
	Title             string `json:"title"`
	SponsoringAgency  string `json:"sponsoring_agency"`

	AdminNotes   []string `json:"admin_notes"`
	Advisers     []string `json:"advisers"`
	Keywords     []string `json:"keywords"`
	RelatedLinks []string `json:"related_links"`
}

// IsEmpty reports whether no recognized field is present.
func (p Patch) IsEmpty() bool {
	for _, s := range p.scalars() {
		if s != "" {
			return false
		}
	}
	return len(p.AdminNotes) == 0 && len(p.Advisers) == 0 &&
		len(p.Keywords) == 0 && len(p.RelatedLinks) == 0
}

func (p Patch) scalars() []string {
	return []string{
		p.Abstract, p.AuthorEmail, p.AuthorFirstName, p.AuthorLastName,
		p.AuthorDepartment, p.AuthorInstitution, p.Degree, p.DepositorEmail,
		p.EmbargoState, p.EmbargoEndDate, p.Language, p.Notes, p.Rights,
		p.Title, p.SponsoringAgency,
	}
}

// Validate checks the patch as a whole. Any invalid value rejects the
// entire patch.
func (p Patch) Validate() error {
	var errs []domain.FieldError

	if p.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "work", Message: "at least one recognized field is required"})
	}
	if p.EmbargoState != "" && !domain.EmbargoState(p.EmbargoState).IsValid() {
		errs = append(errs, domain.FieldError{Field: "embargo_state", Message: "must be one of open, authenticated, restricted"})
	}
	if p.EmbargoEndDate != "" {
		if _, err := domain.ParseDate(p.EmbargoEndDate); err != nil {
			errs = append(errs, domain.FieldError{Field: "embargo_end_date", Message: "must be a date in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// normalize trims values so that whitespace-only input counts as absent.
func (p Patch) normalize() Patch {
	trim := strings.TrimSpace
	p.Abstract = trim(p.Abstract)
	p.AuthorEmail = trim(p.AuthorEmail)
	p.AuthorFirstName = trim(p.AuthorFirstName)
	p.AuthorLastName = trim(p.AuthorLastName)
	p.AuthorDepartment = trim(p.AuthorDepartment)
	p.AuthorInstitution = trim(p.AuthorInstitution)
	p.Degree = trim(p.Degree)
	p.DepositorEmail = trim(p.DepositorEmail)
	p.EmbargoState = trim(p.EmbargoState)
	p.EmbargoEndDate = trim(p.EmbargoEndDate)
	p.Language = trim(p.Language)
	p.Notes = trim(p.Notes)
	p.Rights = trim(p.Rights)
	p.Title = trim(p.Title)
	p.SponsoringAgency = trim(p.SponsoringAgency)
	p.AdminNotes = compact(p.AdminNotes)
	p.Advisers = compact(p.Advisers)
	p.Keywords = compact(p.Keywords)
	p.RelatedLinks = compact(p.RelatedLinks)
	return p
}

// compact trims list items and drops the blank ones. An all-blank list
// becomes nil.
func compact(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SearchInput holds the filters and window of a works search.
type SearchInput struct {
	Status      string
	AuthorEmail string
	CreateDate  string
	Start       int
	Limit       int
}

// HasFilter reports whether any filter value was supplied.
func (i SearchInput) HasFilter() bool {
	return i.Status != "" || i.AuthorEmail != "" || i.CreateDate != ""
}

// Filter validates the supplied values and converts them into an index
// filter. Every supplied value must be valid.
func (i SearchInput) Filter() (domain.WorkFilter, error) {
	var (
		f    domain.WorkFilter
		errs []domain.FieldError
	)

	if !i.HasFilter() {
		errs = append(errs, domain.FieldError{Field: "filter", Message: "one of status, author_email, create_date is required"})
	}
	if i.Status != "" {
		status := domain.WorkStatus(i.Status)
		if status.IsValid() {
			draft := status.Draft()
			f.Draft = &draft
		} else {
			errs = append(errs, domain.FieldError{Field: "status", Message: "must be pending or submitted"})
		}
	}
	if i.AuthorEmail != "" {
		email := i.AuthorEmail
		f.AuthorEmail = &email
	}
	if i.CreateDate != "" {
		d, err := domain.ParseDate(i.CreateDate)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "create_date", Message: "must be a date in YYYY-MM-DD format"})
		} else {
			f.CreatedOn = &d
		}
	}

	if len(errs) > 0 {
		return domain.WorkFilter{}, &domain.ValidationError{Errors: errs}
	}
	return f, nil
}
