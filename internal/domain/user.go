package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a local account that owns deposited works.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	DisplayName  string
	Department   string
	Office       string
	Telephone    string
	Title        string
	CreatedAt    time.Time
}

// DirectoryRecord holds the directory attributes of a person.
type DirectoryRecord struct {
	ID          string
	Email       string
	DisplayName string
	FirstName   string
	LastName    string
	Department  string
	Title       string
	Office      string
	Phone       string
}

// EmailOrDefault returns the directory email, or a synthesized address in
// the given domain when the directory has none.
func (r DirectoryRecord) EmailOrDefault(domain string) string {
	if e := strings.TrimSpace(r.Email); e != "" {
		return e
	}
	return r.ID + "@" + domain
}

// DepositRequest authorizes a person to create a new work. IDs increase
// monotonically and are used as the polling cursor.
type DepositRequest struct {
	ID         int64
	Who        string
	Department string
	Degree     string
}
