// Package entityid mints and updates persistent identifiers.
package entityid

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/heartmarshall/libra-works/internal/adapter/serviceclient"
	"github.com/heartmarshall/libra-works/internal/domain"
)

// ServiceName is the name of the config file and metrics label.
const ServiceName = "entityid"

// Config extends the service config with the identifier shoulder.
type Config struct {
	serviceclient.Config `yaml:",inline"`
	Shoulder             string `yaml:"shoulder"`
}

// Validate checks the required keys.
func (c Config) Validate() error {
	if err := c.Config.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Shoulder) == "" {
		return fmt.Errorf("shoulder is required")
	}
	return nil
}

// metadata is the registrar payload describing a work.
type metadata struct {
	Title           string `json:"title"`
	Creator         string `json:"creator"`
	Publisher       string `json:"publisher"`
	PublicationYear string `json:"publication_year"`
	ResourceType    string `json:"resource_type"`
	Department      string `json:"department,omitempty"`
	Degree          string `json:"degree,omitempty"`
	Abstract        string `json:"abstract,omitempty"`
}

type mintResponse struct {
	Details struct {
		ID string `json:"id"`
	} `json:"details"`
}

// Client talks to the identifier registrar.
type Client struct {
	base     *serviceclient.Client
	shoulder string
	log      *slog.Logger
}

// New creates a Client that mints identifiers under shoulder.
func New(base *serviceclient.Client, shoulder string, logger *slog.Logger) *Client {
	return &Client{
		base:     base,
		shoulder: shoulder,
		log:      logger.With("adapter", ServiceName),
	}
}

// Mint requests a new identifier for w. A 2xx response that carries no
// identifier is reported as 502.
func (c *Client) Mint(ctx context.Context, w *domain.Work) (int, string) {
	res := c.base.Post(ctx, "/"+url.PathEscape(c.shoulder), nil, metadataOf(w))
	if !res.OK() {
		return res.Status, ""
	}

	var body mintResponse
	if err := res.Decode(&body); err != nil || strings.TrimSpace(body.Details.ID) == "" {
		c.log.WarnContext(ctx, "mint response without identifier", slog.Int("status", res.Status))
		return http.StatusBadGateway, ""
	}
	return res.Status, body.Details.ID
}

// Resync pushes the current metadata of w to the registrar. Works without
// an identifier are rejected with 400 without calling the registrar.
func (c *Client) Resync(ctx context.Context, w *domain.Work) int {
	if !w.HasIdentifier() {
		return http.StatusBadRequest
	}
	return c.base.Put(ctx, "/"+url.PathEscape(w.Identifier), nil, metadataOf(w)).Status
}

func metadataOf(w *domain.Work) metadata {
	creator := strings.TrimSpace(w.AuthorLastName)
	if first := strings.TrimSpace(w.AuthorFirstName); first != "" {
		if creator != "" {
			creator += ", "
		}
		creator += first
	}

	year := ""
	if !w.DateCreated.IsZero() {
		year = w.DateCreated.Format("2006")
	}

	return metadata{
		Title:           w.Title,
		Creator:         creator,
		Publisher:       w.Publisher,
		PublicationYear: year,
		ResourceType:    w.WorkType,
		Department:      w.Department,
		Degree:          w.Degree,
		Abstract:        w.Abstract,
	}
}
