package maxbot_test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"maxbot-api/pkg/maxbot"
)

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
		kind     maxbot.ErrorKind
	}{
		{"Transport", &maxbot.TransportError{Err: errors.New("dial tcp: refused")}, maxbot.ErrTransport, maxbot.KindTransport},
		{"IO", &maxbot.IOError{Err: io.ErrUnexpectedEOF}, maxbot.ErrIO, maxbot.KindIO},
		{"JSON", &maxbot.JSONError{Err: errors.New("bad"), Offset: 3}, maxbot.ErrJSON, maxbot.KindJSON},
		{"Status", &maxbot.StatusError{Code: 418}, maxbot.ErrStatus, maxbot.KindStatus},
	}

	sentinels := []error{maxbot.ErrTransport, maxbot.ErrIO, maxbot.ErrJSON, maxbot.ErrStatus}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("caller: %w", tc.err)
			if !errors.Is(wrapped, tc.sentinel) {
				t.Errorf("expected errors.Is(%v, %v)", wrapped, tc.sentinel)
			}
			for _, s := range sentinels {
				if s != tc.sentinel && errors.Is(wrapped, s) {
					t.Errorf("error %v must not match %v", tc.err, s)
				}
			}
			if got := maxbot.KindOf(wrapped); got != tc.kind {
				t.Errorf("expected kind %v, got %v", tc.kind, got)
			}
		})
	}

	t.Run("Unknown", func(t *testing.T) {
		if got := maxbot.KindOf(errors.New("other")); got != maxbot.KindUnknown {
			t.Errorf("expected unknown kind, got %v", got)
		}
	})
}

func TestErrorMessages(t *testing.T) {
	if msg := (&maxbot.StatusError{Code: 404}).Error(); !strings.Contains(msg, "404") {
		t.Errorf("status code missing from %q", msg)
	}
	msg := (&maxbot.JSONError{Err: errors.New("boom"), Offset: 7, Field: "user_id"}).Error()
	if !strings.Contains(msg, "offset 7") || !strings.Contains(msg, "user_id") {
		t.Errorf("unexpected JSON error message %q", msg)
	}
	if !errors.Is(&maxbot.IOError{Err: io.ErrUnexpectedEOF}, io.ErrUnexpectedEOF) {
		t.Errorf("IOError must unwrap to its cause")
	}
}
