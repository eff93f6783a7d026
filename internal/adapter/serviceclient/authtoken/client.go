// Package authtoken validates API credentials against the token service.
package authtoken

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/heartmarshall/libra-works/internal/adapter/serviceclient"
)

// ServiceName is the name of the config file and metrics label.
const ServiceName = "authtoken"

// Client checks whether a credential grants a scope of a service.
type Client struct {
	base *serviceclient.Client
}

// New creates a Client on top of the shared transport.
func New(base *serviceclient.Client) *Client {
	return &Client{base: base}
}

// Authenticate returns the status of GET /{service}/{scope}/{credential}.
// A blank credential is rejected with 401 without calling the service.
func (c *Client) Authenticate(ctx context.Context, service, scope, credential string) int {
	if strings.TrimSpace(credential) == "" {
		return http.StatusUnauthorized
	}
	path := "/" + url.PathEscape(service) + "/" + url.PathEscape(scope) + "/" + url.PathEscape(credential)
	return c.base.Get(ctx, path, nil).Status
}
