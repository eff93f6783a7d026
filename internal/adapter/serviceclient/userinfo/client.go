// Package userinfo looks up people in the institutional directory.
package userinfo

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/heartmarshall/libra-works/internal/adapter/serviceclient"
	"github.com/heartmarshall/libra-works/internal/domain"
)

// ServiceName is the name of the config file and metrics label.
const ServiceName = "userinfo"

type directoryResponse struct {
	User *directoryUser `json:"user"`
}

type directoryUser struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Department  string `json:"department"`
	Title       string `json:"title"`
	Office      string `json:"office"`
	Phone       string `json:"phone"`
}

// Client reads directory records.
type Client struct {
	base *serviceclient.Client
	log  *slog.Logger
}

// New creates a Client on top of the shared transport.
func New(base *serviceclient.Client, logger *slog.Logger) *Client {
	return &Client{base: base, log: logger.With("adapter", ServiceName)}
}

// Lookup fetches the directory record of personID. The record is nil when
// the status is not OK or the body carries no user.
func (c *Client) Lookup(ctx context.Context, personID string) (int, *domain.DirectoryRecord) {
	res := c.base.Get(ctx, "/user/"+url.PathEscape(personID), nil)
	if !res.OK() {
		return res.Status, nil
	}

	var body directoryResponse
	if err := res.Decode(&body); err != nil || body.User == nil {
		c.log.WarnContext(ctx, "directory response without user", slog.String("person_id", personID))
		return res.Status, nil
	}

	u := body.User
	rec := &domain.DirectoryRecord{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Department:  u.Department,
		Title:       u.Title,
		Office:      u.Office,
		Phone:       u.Phone,
	}
	if rec.ID == "" {
		rec.ID = personID
	}
	return res.Status, rec
}
