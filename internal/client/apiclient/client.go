// Package apiclient wraps every outgoing request to the admin REST API:
// it attaches the session's bearer credential, bounds the call with a fixed
// timeout, and classifies each failure into exactly one user-facing category.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/teampulse/admin-console/internal/client/notify"
	"github.com/teampulse/admin-console/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// PrincipalSource exposes the slice of the session store the client needs:
// the active principal for credential attachment, and teardown on 401.
type PrincipalSource interface {
	Principal() *domain.Principal
	Clear()
}

// Client dispatches JSON requests against the admin API.
type Client struct {
	baseURL string
	http    *http.Client
	session PrincipalSource
	notify  notify.Sink
	// onUnauthorized is invoked after a 401 clears the session; the
	// presentation layer uses it to force navigation to the login view.
	onUnauthorized func()
	log            zerolog.Logger
}

// New builds a Client. A timeout <= 0 falls back to the fixed 10s default.
func New(baseURL string, timeout time.Duration, session PrincipalSource, sink notify.Sink, onUnauthorized func(), log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		http:           &http.Client{Timeout: timeout},
		session:        session,
		notify:         sink,
		onUnauthorized: onUnauthorized,
		log:            log,
	}
}

// Do sends one request and decodes a successful JSON response into out
// (out may be nil for bodiless replies). On failure it returns an *Error,
// emits exactly one user notification, and, for 401 responses only, clears
// the persisted session and triggers the login redirect.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return c.fail(&Error{Category: CategoryUnexpected})
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return c.fail(&Error{Category: CategoryUnexpected})
	}
	req.Header.Set("Content-Type", "application/json")

	// Mock credential: the principal id stands in for a session token.
	if p := c.session.Principal(); p != nil {
		req.Header.Set("Authorization", "Bearer "+p.ID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(c.transportError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &Error{
			Category:      classify(resp.StatusCode),
			Status:        resp.StatusCode,
			ServerMessage: serverMessage(resp.Body),
		}
		if apiErr.Category == CategoryUnauthorized {
			// The only session teardown outside explicit logout.
			c.session.Clear()
			if c.onUnauthorized != nil {
				c.onUnauthorized()
			}
		}
		return c.fail(apiErr)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return c.fail(&Error{Category: CategoryUnexpected})
		}
	}
	return nil
}

// fail emits the single per-call notification and returns the error.
func (c *Client) fail(apiErr *Error) error {
	c.log.Debug().Str("category", string(apiErr.Category)).Int("status", apiErr.Status).Msg("api call failed")
	c.notify.Error(apiErr.Category.Message())
	return apiErr
}

// transportError classifies a failure with no HTTP response.
func (c *Client) transportError(err error) *Error {
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return &Error{Category: CategoryTimeout}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Category: CategoryTimeout}
	}
	return &Error{Category: CategoryNetwork}
}

// serverMessage extracts the optional {message} field from an error body.
func serverMessage(r io.Reader) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&envelope); err != nil {
		return ""
	}
	return envelope.Message
}
