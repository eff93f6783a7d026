package domain

// EmbargoState controls who may access a published work.
type EmbargoState string

const (
	EmbargoOpen          EmbargoState = "open"
	EmbargoAuthenticated EmbargoState = "authenticated"
	EmbargoRestricted    EmbargoState = "restricted"
)

func (s EmbargoState) String() string { return string(s) }

func (s EmbargoState) IsValid() bool {
	switch s {
	case EmbargoOpen, EmbargoAuthenticated, EmbargoRestricted:
		return true
	}
	return false
}

// RestrictsAccess reports whether the state limits access and therefore
// needs an embargo end date.
func (s EmbargoState) RestrictsAccess() bool {
	return s == EmbargoAuthenticated || s == EmbargoRestricted
}

// Visibility is the access level of the stored record itself.
type Visibility string

const (
	VisibilityOpen          Visibility = "open"
	VisibilityAuthenticated Visibility = "authenticated"
	VisibilityPrivate       Visibility = "private"
)

func (v Visibility) String() string { return string(v) }

func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityOpen, VisibilityAuthenticated, VisibilityPrivate:
		return true
	}
	return false
}

// WorkStatus is the API-facing name of the draft flag.
type WorkStatus string

const (
	WorkStatusPending   WorkStatus = "pending"
	WorkStatusSubmitted WorkStatus = "submitted"
)

func (s WorkStatus) String() string { return string(s) }

func (s WorkStatus) IsValid() bool {
	return s == WorkStatusPending || s == WorkStatusSubmitted
}

// Draft maps the status onto the draft flag: pending works are drafts.
func (s WorkStatus) Draft() bool { return s == WorkStatusPending }

// StatusOf returns the API status for a draft flag.
func StatusOf(draft bool) WorkStatus {
	if draft {
		return WorkStatusPending
	}
	return WorkStatusSubmitted
}

// AuditAction represents the kind of change recorded in the audit log.
type AuditAction string

const (
	AuditActionCreated AuditAction = "CREATED"
	AuditActionChanged AuditAction = "CHANGED"
	AuditActionAdded   AuditAction = "ADDED"
	AuditActionDeleted AuditAction = "DELETED"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreated, AuditActionChanged, AuditActionAdded, AuditActionDeleted:
		return true
	}
	return false
}
