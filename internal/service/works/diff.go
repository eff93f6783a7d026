package works

import (
	"slices"
	"strings"
	"time"

	"github.com/heartmarshall/libra-works/internal/domain"
)

// resyncFields lists the fields whose change must be sent to the identifier
// registrar.
var resyncFields = []string{"title"}

// DiffResult is the outcome of applying a patch to a work in memory.
type DiffResult struct {
	Next    domain.Work
	Entries []domain.AuditEntry
	Resync  bool
}

// Changed reports whether the patch changed the named field.
func (r DiffResult) Changed(field string) bool {
	return slices.ContainsFunc(r.Entries, func(e domain.AuditEntry) bool { return e.Field == field })
}

// differ accumulates changes against a private copy of the current work.
type differ struct {
	next    domain.Work
	actor   string
	now     time.Time
	entries []domain.AuditEntry
}

func (d *differ) record(field string, action domain.AuditAction, oldValue, newValue string) {
	d.entries = append(d.entries, domain.AuditEntry{
		WorkID:         d.next.ID,
		WorkIdentifier: d.next.Identifier,
		Field:          field,
		Action:         action,
		OldValue:       oldValue,
		NewValue:       newValue,
		Actor:          actorName(d.actor),
		CreatedAt:      d.now,
	})
}

// text applies a scalar assignment when it is present and differs.
func (d *differ) text(field, value string, target *string) {
	if value == "" || value == *target {
		return
	}
	d.record(field, domain.AuditActionChanged, *target, value)
	*target = value
}

// list applies an ordered list assignment when it is present and differs.
func (d *differ) list(field string, value []string, target *[]string) {
	if len(value) == 0 || slices.Equal(value, *target) {
		return
	}
	d.record(field, domain.AuditActionChanged, joinValues(*target), joinValues(value))
	*target = slices.Clone(value)
}

// Diff applies patch to a copy of current and returns the next state with
// one audit entry per changed field. current is never modified.
// Fields are visited in a fixed order so entries of one update are stable.
func Diff(current domain.Work, patch Patch, actor string, now time.Time) DiffResult {
	d := &differ{next: current.Clone(), actor: actor, now: now}
	w := &d.next

	d.text("abstract", patch.Abstract, &w.Abstract)
	d.text("author_email", patch.AuthorEmail, &w.AuthorEmail)
	d.text("author_first_name", patch.AuthorFirstName, &w.AuthorFirstName)
	d.text("author_last_name", patch.AuthorLastName, &w.AuthorLastName)
	d.text("author_institution", patch.AuthorInstitution, &w.AuthorInstitution)
	d.text("author_department", patch.AuthorDepartment, &w.Department)

	if patch.DepositorEmail != "" && patch.DepositorEmail != w.Depositor {
		d.record("depositor_email", domain.AuditActionChanged, w.Depositor, patch.DepositorEmail)
		w.ReassignDepositor(patch.DepositorEmail)
	}

	d.text("degree", patch.Degree, &w.Degree)

	if patch.EmbargoState != "" && domain.EmbargoState(patch.EmbargoState) != w.EmbargoState {
		d.record("embargo_state", domain.AuditActionChanged, w.EmbargoState.String(), patch.EmbargoState)
		w.EmbargoState = domain.EmbargoState(patch.EmbargoState)
	}
	if patch.EmbargoEndDate != "" {
		if end, err := domain.ParseDate(patch.EmbargoEndDate); err == nil {
			if old := domain.FormatDate(w.EmbargoEndDate); old != domain.FormatDate(&end) {
				d.record("embargo_end_date", domain.AuditActionChanged, old, domain.FormatDate(&end))
				w.EmbargoEndDate = &end
			}
		}
	}

	d.text("notes", patch.Notes, &w.Notes)

	if len(patch.AdminNotes) > 0 {
		d.record("admin_notes", domain.AuditActionAdded, "", joinValues(patch.AdminNotes))
		w.AppendAdminNotes(patch.AdminNotes...)
	}

	d.text("rights", patch.Rights, &w.Rights)
	d.text("title", patch.Title, &w.Title)
	d.list("advisers", patch.Advisers, &w.Advisers)

	if len(patch.Keywords) > 0 && !domain.SameSet(patch.Keywords, w.Keywords) {
		next := domain.UniqueStrings(patch.Keywords)
		d.record("keywords", domain.AuditActionChanged, joinValues(w.Keywords), joinValues(next))
		w.SetKeywords(next)
	}

	d.text("language", patch.Language, &w.Language)
	d.list("related_links", patch.RelatedLinks, &w.RelatedLinks)
	d.text("sponsoring_agency", patch.SponsoringAgency, &w.SponsoringAgency)

	res := DiffResult{Next: d.next, Entries: d.entries}
	for _, f := range resyncFields {
		if res.Changed(f) {
			res.Resync = true
			break
		}
	}
	return res
}

// checkEmbargo enforces that a work moved into a restricting embargo state
// carries an end date.
func checkEmbargo(res DiffResult) error {
	if res.Changed("embargo_state") && res.Next.EmbargoState.RestrictsAccess() && res.Next.EmbargoEndDate == nil {
		return domain.NewValidationError("embargo_end_date", "required when embargo_state restricts access")
	}
	return nil
}

func joinValues(values []string) string {
	return strings.Join(values, ", ")
}

// actorName reduces an email actor to its computing id.
func actorName(actor string) string {
	if i := strings.IndexByte(actor, '@'); i > 0 {
		return actor[:i]
	}
	return actor
}
