// Package notify defines the user-facing notification sink used by the
// client stack. Components receive a Sink explicitly instead of reaching
// into a process-global message channel.
package notify

import "github.com/rs/zerolog"

// Sink receives user-facing notifications.
type Sink interface {
	Success(msg string)
	Error(msg string)
}

// LogSink renders notifications through a zerolog logger. It is the default
// sink for the terminal console.
type LogSink struct {
	Log zerolog.Logger
}

func (s LogSink) Success(msg string) { s.Log.Info().Msg(msg) }
func (s LogSink) Error(msg string)   { s.Log.Error().Msg(msg) }

// Discard drops every notification. Useful in tests.
type Discard struct{}

func (Discard) Success(string) {}
func (Discard) Error(string)   {}
