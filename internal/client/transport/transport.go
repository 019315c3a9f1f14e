// Package transport implements the request authorization pipeline: an
// http.RoundTripper that attaches bearer credentials to outgoing calls and
// transparently recovers from access-token expiry with a single
// refresh-and-retry cycle, falling back to forced logout.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/avendano-dev/backoffice/internal/logging"
)

// TokenSource is the slice of the session manager the pipeline needs.
type TokenSource interface {
	AccessToken() string
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
}

type bypassKey struct{}

// WithoutAuth marks a request context so the pipeline forwards the request
// unmodified. The auth endpoints (login, logout, refresh) use it to avoid
// infinite recursion; it is an explicit request attribute, not URL matching.
func WithoutAuth(ctx context.Context) context.Context {
	return context.WithValue(ctx, bypassKey{}, true)
}

func isBypass(ctx context.Context) bool {
	v, _ := ctx.Value(bypassKey{}).(bool)
	return v
}

// requestIDHeader identifies a logical request across the retry cycle.
const requestIDHeader = "X-Request-ID"

// AuthTransport is the authorizing round tripper. Wrap it around the base
// transport of the http.Client used for API calls.
type AuthTransport struct {
	Base    http.RoundTripper
	Session TokenSource
	Log     logging.Logger
}

func NewAuthTransport(base http.RoundTripper, session TokenSource, log logging.Logger) *AuthTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &AuthTransport{Base: base, Session: session, Log: log}
}

// RoundTrip implements http.RoundTripper. At most one refresh and one retry
// happen per original request; every other outcome propagates unchanged.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	out := req.Clone(ctx)
	if out.Header.Get(requestIDHeader) == "" {
		out.Header.Set(requestIDHeader, uuid.NewString())
	}

	if isBypass(ctx) {
		return t.Base.RoundTrip(out)
	}

	token := t.Session.AccessToken()
	if token == "" {
		// No credentials held; the server decides whether the call needs any.
		return t.Base.RoundTrip(out)
	}
	out.Header.Set("Authorization", "Bearer "+token)

	resp, err := t.Base.RoundTrip(out)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	t.Log.Debug(ctx, "access token rejected, refreshing",
		"method", req.Method, "url", req.URL.Path)

	if err := t.Session.Refresh(ctx); err != nil {
		drain(resp)
		_ = t.Session.Logout(ctx)
		return nil, fmt.Errorf("authorization retry aborted: %w", err)
	}

	retry, ok := t.rewind(req, out)
	if !ok {
		// Body cannot be replayed; surface the original 401.
		return resp, nil
	}
	drain(resp)

	retry.Header.Set("Authorization", "Bearer "+t.Session.AccessToken())
	t.Log.Debug(ctx, "retrying request with refreshed token",
		"method", req.Method, "url", req.URL.Path)
	return t.Base.RoundTrip(retry)
}

// rewind builds the retry request, replaying the body via GetBody. Returns
// false when the request carried a body that cannot be replayed.
func (t *AuthTransport) rewind(orig, sent *http.Request) (*http.Request, bool) {
	retry := sent.Clone(orig.Context())
	if orig.Body == nil || orig.Body == http.NoBody {
		return retry, true
	}
	if orig.GetBody == nil {
		return nil, false
	}
	body, err := orig.GetBody()
	if err != nil {
		return nil, false
	}
	retry.Body = body
	return retry, true
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
	_ = resp.Body.Close()
}
