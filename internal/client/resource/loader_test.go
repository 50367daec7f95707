package resource

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type recordingSink struct {
	mu     sync.Mutex
	errors []string
}

func (s *recordingSink) Success(string) {}
func (s *recordingSink) Error(msg string) {
	s.mu.Lock()
	s.errors = append(s.errors, msg)
	s.mu.Unlock()
}

func TestLoader_Success(t *testing.T) {
	l := NewLoader(func(context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	}, &recordingSink{})

	l.Load(context.Background())

	data, ok := l.Data()
	if !ok || len(data) != 2 {
		t.Fatalf("expected data, got %v (ok=%v)", data, ok)
	}
	if l.Loading() {
		t.Fatalf("loading must be false after completion")
	}
	if l.Err() != "" {
		t.Fatalf("expected no error, got %q", l.Err())
	}
}

func TestLoader_FailureKeepsPriorDataAndNotifies(t *testing.T) {
	sink := &recordingSink{}
	fail := false
	l := NewLoader(func(context.Context) (int, error) {
		if fail {
			return 0, errors.New("Failed to fetch users. Please try again.")
		}
		return 42, nil
	}, sink)

	l.Load(context.Background())
	fail = true
	l.Refetch(context.Background())

	if data, ok := l.Data(); !ok || data != 42 {
		t.Fatalf("failure must preserve prior data, got %v (ok=%v)", data, ok)
	}
	if l.Err() != "Failed to fetch users. Please try again." {
		t.Fatalf("unexpected error message: %q", l.Err())
	}
	if len(sink.errors) != 1 {
		t.Fatalf("expected one notification, got %d", len(sink.errors))
	}
}

func TestLoader_RefetchClearsError(t *testing.T) {
	fail := true
	l := NewLoader(func(context.Context) (int, error) {
		if fail {
			return 0, errors.New("boom")
		}
		return 7, nil
	}, &recordingSink{})

	l.Load(context.Background())
	if l.Err() == "" {
		t.Fatalf("expected error after failed load")
	}

	fail = false
	l.Refetch(context.Background())
	if l.Err() != "" {
		t.Fatalf("refetch must clear the error, got %q", l.Err())
	}
	if data, _ := l.Data(); data != 7 {
		t.Fatalf("expected refreshed data, got %v", data)
	}
}

// Two overlapping loads: the older request finishes last, and its result
// must be discarded in favour of the newer one.
func TestLoader_StaleResponseDiscarded(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	call := 0
	var mu sync.Mutex

	l := NewLoader(func(context.Context) (int, error) {
		mu.Lock()
		call++
		n := call
		mu.Unlock()
		if n == 1 {
			close(firstStarted)
			<-releaseFirst // first request completes last
			return 1, nil
		}
		return 2, nil
	}, &recordingSink{})

	done := make(chan struct{})
	go func() {
		l.Load(context.Background()) // request 1, slow
		close(done)
	}()
	<-firstStarted

	l.Load(context.Background()) // request 2, completes immediately

	close(releaseFirst)
	<-done

	data, ok := l.Data()
	if !ok || data != 2 {
		t.Fatalf("stale response must be discarded: got %v (ok=%v), want 2", data, ok)
	}
	if l.Loading() {
		t.Fatalf("loading must settle once the newest request completes")
	}
}
