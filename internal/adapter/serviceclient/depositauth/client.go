// Package depositauth reads pending deposit authorizations and reports
// their fulfilment.
package depositauth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/heartmarshall/libra-works/internal/adapter/serviceclient"
	"github.com/heartmarshall/libra-works/internal/domain"
)

// ServiceName is the name of the config file and metrics label.
const ServiceName = "depositauth"

type listResponse struct {
	Details []request `json:"details"`
}

type request struct {
	ID         json.Number `json:"id"`
	Who        string      `json:"who"`
	Department string      `json:"department"`
	Degree     string      `json:"degree"`
}

// Client talks to the deposit authorization service.
type Client struct {
	base *serviceclient.Client
	log  *slog.Logger
}

// New creates a Client on top of the shared transport.
func New(base *serviceclient.Client, logger *slog.Logger) *Client {
	return &Client{base: base, log: logger.With("adapter", ServiceName)}
}

// ListSince returns the requests with an id greater than cursor in the
// order the service sent them. Entries with a malformed id are skipped.
func (c *Client) ListSince(ctx context.Context, cursor int64) (int, []domain.DepositRequest) {
	q := url.Values{"later": {strconv.FormatInt(cursor, 10)}}
	res := c.base.Get(ctx, "/", q)
	if !res.OK() {
		return res.Status, nil
	}

	var body listResponse
	if err := res.Decode(&body); err != nil {
		c.log.WarnContext(ctx, "undecodable deposit request list", slog.String("error", err.Error()))
		return http.StatusBadGateway, nil
	}

	out := make([]domain.DepositRequest, 0, len(body.Details))
	for _, d := range body.Details {
		id, err := d.ID.Int64()
		if err != nil {
			c.log.WarnContext(ctx, "skipping deposit request with bad id", slog.String("id", d.ID.String()))
			continue
		}
		out = append(out, domain.DepositRequest{
			ID:         id,
			Who:        d.Who,
			Department: d.Department,
			Degree:     d.Degree,
		})
	}
	return res.Status, out
}

// MarkFulfilled reports that the request behind w produced a work.
func (c *Client) MarkFulfilled(ctx context.Context, w *domain.Work) int {
	if w.DepositRequestID == "" {
		return http.StatusBadRequest
	}
	q := url.Values{"deposit": {w.Identifier}}
	return c.base.Put(ctx, "/"+url.PathEscape(w.DepositRequestID), q, nil).Status
}
