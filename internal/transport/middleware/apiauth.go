package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/heartmarshall/libra-works/pkg/ctxutil"
)

// maxPeekBytes bounds how much of a request body is read to find the
// credential and actor fields.
const maxPeekBytes = 1 << 20

type authenticator interface {
	Authenticate(ctx context.Context, service, scope, credential string) int
}

// APIAuth returns middleware that validates the request credential with the
// token service before any other work happens. The credential and the actor
// are read from the "auth" and "user" query parameters, or from the fields of
// the same name in a JSON body. Any non-2xx answer, including an unreachable
// token service, is rejected with 401.
func APIAuth(auth authenticator, service, scope string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential, actor := requestIdentity(r)

			status := auth.Authenticate(r.Context(), service, scope, credential)
			if status < 200 || status > 299 {
				writeStatus(w, http.StatusUnauthorized)
				return
			}

			ctx := r.Context()
			if actor != "" {
				ctx = ctxutil.WithActor(ctx, actor)
				noteActor(ctx, actor)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// requestIdentity extracts the credential and actor. The body, if read, is
// restored for the next handler.
func requestIdentity(r *http.Request) (credential, actor string) {
	q := r.URL.Query()
	credential = strings.TrimSpace(q.Get("auth"))
	actor = strings.TrimSpace(q.Get("user"))
	if credential != "" && actor != "" {
		return credential, actor
	}
	if r.Body == nil || r.Body == http.NoBody {
		return credential, actor
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxPeekBytes))
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil || len(raw) == 0 {
		return credential, actor
	}

	var envelope struct {
		Auth string `json:"auth"`
		User string `json:"user"`
	}
	if json.Unmarshal(raw, &envelope) != nil {
		return credential, actor
	}
	if credential == "" {
		credential = strings.TrimSpace(envelope.Auth)
	}
	if actor == "" {
		actor = strings.TrimSpace(envelope.User)
	}
	return credential, actor
}
