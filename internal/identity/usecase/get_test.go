package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"maxbot-api/internal/identity"
	"maxbot-api/pkg/maxbot"
)

const botJSON = `{"user_id":42,"first_name":"Bot","is_bot":true,"last_activity_time":1700000000000,"commands":[{"name":"start"}]}`

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("Caches within TTL", func(t *testing.T) {
		api := newFakeMaxAPI(t, http.StatusOK, botJSON)
		client, async := api.clients(t)
		uc := New(&mockLogger{}, client, async, time.Minute)

		first, err := uc.Get(ctx, identity.GetInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.FromCache || first.Bot.UserID != 42 {
			t.Errorf("unexpected first output: %+v", first)
		}

		second, err := uc.Get(ctx, identity.GetInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !second.FromCache || second.Bot.UserID != 42 {
			t.Errorf("expected cached output, got %+v", second)
		}
		if api.hits.Load() != 1 {
			t.Errorf("expected 1 upstream call, got %d", api.hits.Load())
		}
		if !uc.Ready() {
			t.Errorf("expected ready after a successful fetch")
		}
	})

	t.Run("Refresh bypasses cache", func(t *testing.T) {
		api := newFakeMaxAPI(t, http.StatusOK, botJSON)
		client, async := api.clients(t)
		uc := New(&mockLogger{}, client, async, time.Minute)

		uc.Get(ctx, identity.GetInput{})
		out, err := uc.Get(ctx, identity.GetInput{Refresh: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.FromCache || api.hits.Load() != 2 {
			t.Errorf("expected a fresh fetch, got %+v after %d calls", out, api.hits.Load())
		}
	})

	t.Run("Expired entry is refetched", func(t *testing.T) {
		api := newFakeMaxAPI(t, http.StatusOK, botJSON)
		client, async := api.clients(t)
		uc := New(&mockLogger{}, client, async, 10*time.Millisecond)

		uc.Get(ctx, identity.GetInput{})
		time.Sleep(50 * time.Millisecond)
		out, err := uc.Get(ctx, identity.GetInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.FromCache {
			t.Errorf("expected expired entry to be refetched")
		}
	})

	t.Run("Error mapping", func(t *testing.T) {
		cases := []struct {
			name   string
			status int
			body   string
			want   error
		}{
			{"Unauthorized", http.StatusUnauthorized, `{}`, identity.ErrUnauthorized},
			{"Forbidden", http.StatusForbidden, `{}`, identity.ErrUnauthorized},
			{"Server error", http.StatusInternalServerError, `{}`, identity.ErrUpstreamUnavailable},
			{"Invalid body", http.StatusOK, `{"first_name":"Bot"}`, identity.ErrUpstreamInvalid},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				api := newFakeMaxAPI(t, tc.status, tc.body)
				client, async := api.clients(t)
				l := &mockLogger{}
				uc := New(l, client, async, time.Minute)

				_, err := uc.Get(ctx, identity.GetInput{})
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
				if l.errorLogs != 0 {
					t.Errorf("failures are logged by the caller, got %d error logs", l.errorLogs)
				}
				if maxbot.KindOf(err) == maxbot.KindUnknown {
					t.Errorf("client error must stay in the chain: %v", err)
				}
				if uc.Ready() {
					t.Errorf("must not be ready after a failure")
				}
			})
		}
	})

	t.Run("Stalled body is a timeout", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"user_id":`))
			w.(http.Flusher).Flush()
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer ts.Close()

		client, err := maxbot.NewWithBaseURL("test-token", ts.URL,
			maxbot.WithHTTPSOnly(false), maxbot.WithTimeout(100*time.Millisecond))
		if err != nil {
			t.Fatalf("unexpected client error: %v", err)
		}
		uc := New(&mockLogger{}, client, nil, time.Minute)

		_, err = uc.Get(ctx, identity.GetInput{})
		if !errors.Is(err, identity.ErrUpstreamTimeout) {
			t.Fatalf("expected ErrUpstreamTimeout, got %v", err)
		}
		if !errors.Is(err, maxbot.ErrIO) {
			t.Errorf("I/O error must stay in the chain: %v", err)
		}
	})

	t.Run("Upstream down", func(t *testing.T) {
		api := newFakeMaxAPI(t, http.StatusOK, botJSON)
		client, async := api.clients(t)
		api.ts.Close()
		uc := New(&mockLogger{}, client, async, time.Minute)

		if _, err := uc.Get(ctx, identity.GetInput{}); !errors.Is(err, identity.ErrUpstreamUnavailable) {
			t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
		}
	})
}

func TestListCommands(t *testing.T) {
	api := newFakeMaxAPI(t, http.StatusOK, botJSON)
	client, async := api.clients(t)
	uc := New(&mockLogger{}, client, async, time.Minute)

	out, err := uc.ListCommands(context.Background(), identity.GetInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.BotID != 42 || len(out.Commands) != 1 || out.Commands[0].Name != "start" {
		t.Errorf("unexpected output: %+v", out)
	}
}

func TestWarmup(t *testing.T) {
	ctx := context.Background()

	t.Run("Populates cache", func(t *testing.T) {
		api := newFakeMaxAPI(t, http.StatusOK, botJSON)
		client, async := api.clients(t)
		uc := New(&mockLogger{}, client, async, time.Minute)

		select {
		case err := <-uc.Warmup(ctx):
			if err != nil {
				t.Fatalf("unexpected warmup error: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("warmup never finished")
		}

		if !uc.Ready() {
			t.Errorf("expected ready after warmup")
		}
		out, err := uc.Get(ctx, identity.GetInput{})
		if err != nil || !out.FromCache {
			t.Errorf("expected cached identity after warmup, got %+v, %v", out, err)
		}
	})

	t.Run("Reports failure", func(t *testing.T) {
		api := newFakeMaxAPI(t, http.StatusUnauthorized, `{}`)
		client, async := api.clients(t)
		uc := New(&mockLogger{}, client, async, time.Minute)

		if err := <-uc.Warmup(ctx); !errors.Is(err, identity.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
		if uc.Ready() {
			t.Errorf("must not be ready after failed warmup")
		}
	})
}
