// Package api contains the typed REST services the client uses to talk to
// the backoffice backend. Every service is a thin wrapper over Client, which
// handles JSON encoding, query building and the mapping of HTTP failures
// onto the shared error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/avendano-dev/backoffice/internal/common"
	"github.com/avendano-dev/backoffice/internal/logging"
)

// Client is the low-level HTTP client shared by all services. Its *http.Client
// is expected to carry the authorization pipeline as transport.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewClient builds a Client. baseURL is the API root including the /api
// prefix, e.g. "http://localhost:8000/api".
func NewClient(baseURL string, hc *http.Client, log logging.Logger) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc, log: log}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// Pipeline failures carry their own taxonomy; unwrap them from the
		// url.Error instead of reporting a network failure.
		if errors.Is(err, common.ErrRefreshRejected) || errors.Is(err, common.ErrNoRefreshToken) {
			var ue *url.Error
			if errors.As(err, &ue) {
				return ue.Err
			}
			return err
		}
		return fmt.Errorf("%w: %s %s: %v", common.ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(ctx, method, path, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response of %s %s: %w", method, path, err)
	}
	return nil
}

// StatusError carries the HTTP status and the backend's detail message. It
// unwraps to the matching taxonomy sentinel so callers can use errors.Is.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

func (e *StatusError) Unwrap() error {
	switch {
	case e.Status == http.StatusBadRequest:
		return common.ErrValidation
	case e.Status == http.StatusUnauthorized:
		return common.ErrSessionExpired
	case e.Status == http.StatusForbidden:
		return common.ErrPermissionDenied
	case e.Status == http.StatusNotFound:
		return common.ErrNotFound
	case e.Status >= 500:
		return common.ErrServer
	default:
		return nil
	}
}

func (c *Client) statusError(ctx context.Context, method, path string, resp *http.Response) error {
	detail := readDetail(resp.Body)
	c.log.Debug(ctx, "request failed",
		"method", method, "path", path, "status", resp.StatusCode, "detail", detail)
	return &StatusError{Status: resp.StatusCode, Detail: detail}
}

// readDetail extracts the DRF-style {"detail": "..."} message when present.
func readDetail(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4<<10))
	if err != nil {
		return ""
	}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || payload.Detail == "" {
		return strings.TrimSpace(string(data))
	}
	return payload.Detail
}

// boolParam renders a boolean query parameter the backend understands.
func boolParam(q url.Values, key string, v *bool) {
	if v != nil {
		q.Set(key, strconv.FormatBool(*v))
	}
}

// intParam sets key when v is positive.
func intParam(q url.Values, key string, v int) {
	if v > 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

func strParam(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}
