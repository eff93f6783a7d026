package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AuditEntry records one change to a work. Entries are append-only.
type AuditEntry struct {
	ID             uuid.UUID
	WorkID         uuid.UUID
	WorkIdentifier string
	Field          string
	Action         AuditAction
	OldValue       string
	NewValue       string
	Actor          string
	CreatedAt      time.Time
}

// Message renders the entry as a human-readable log line.
func (e AuditEntry) Message() string {
	label := FieldLabel(e.Field)
	switch e.Action {
	case AuditActionAdded:
		return fmt.Sprintf("%s for work id %s (%s) updated to include '%s' by %s",
			label, e.WorkID, e.WorkIdentifier, e.NewValue, e.Actor)
	case AuditActionDeleted:
		return fmt.Sprintf("Work id %s (%s) deleted by %s", e.WorkID, e.WorkIdentifier, e.Actor)
	case AuditActionCreated:
		return fmt.Sprintf("Work id %s (%s) created for %s", e.WorkID, e.WorkIdentifier, e.Actor)
	default:
		return fmt.Sprintf("%s for work id %s (%s) changed from '%s' to '%s' by %s",
			label, e.WorkID, e.WorkIdentifier, e.OldValue, e.NewValue, e.Actor)
	}
}

var fieldLabels = map[string]string{
	"abstract":           "Abstract",
	"author_email":       "Author Email",
	"author_first_name":  "Author First Name",
	"author_last_name":   "Author Last Name",
	"author_institution": "Author Institution",
	"author_department":  "Department",
	"depositor_email":    "Depositor Email",
	"degree":             "Degree",
	"embargo_state":      "Embargo Type",
	"embargo_end_date":   "Embargo End Date",
	"notes":              "Notes",
	"admin_notes":        "Admin Notes",
	"rights":             "Rights",
	"title":              "Title",
	"advisers":           "Advisers",
	"keywords":           "Keywords",
	"language":           "Language",
	"related_links":      "Related Links",
	"sponsoring_agency":  "Sponsoring Agency",
}

// FieldLabel returns the display label of a patchable field.
func FieldLabel(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}
