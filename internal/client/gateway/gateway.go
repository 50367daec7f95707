// Package gateway exposes the typed CRUD surface per entity. Each operation
// is a single request through the API client; failures are re-raised as
// domain errors carrying only a user-facing message, never transport detail.
package gateway

import (
	"errors"

	"github.com/teampulse/admin-console/internal/client/apiclient"
	"github.com/teampulse/admin-console/internal/client/notify"
)

// wrap converts a failed call into the error callers see: the server's
// {message} when one was supplied, otherwise the fixed fallback. The
// gateway notifies and still re-raises; callers handle or ignore the
// rejection themselves.
func wrap(err error, fallback string, sink notify.Sink) error {
	msg := fallback
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) && apiErr.ServerMessage != "" {
		msg = apiErr.ServerMessage
	}
	sink.Error(msg)
	return errors.New(msg)
}
