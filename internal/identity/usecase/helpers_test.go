package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"maxbot-api/pkg/maxbot"
)

// Mock logger for testing
type mockLogger struct {
	errorLogs int
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    { m.errorLogs++ }
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  { m.errorLogs++ }
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeMaxAPI is a Max API double whose status and body can change between calls.
type fakeMaxAPI struct {
	ts     *httptest.Server
	status atomic.Int32
	body   atomic.Value
	hits   atomic.Int32
}

func newFakeMaxAPI(t *testing.T, status int, body string) *fakeMaxAPI {
	t.Helper()
	f := &fakeMaxAPI{}
	f.set(status, body)
	f.ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		w.WriteHeader(int(f.status.Load()))
		w.Write([]byte(f.body.Load().(string)))
	}))
	t.Cleanup(f.ts.Close)
	return f
}

func (f *fakeMaxAPI) set(status int, body string) {
	f.status.Store(int32(status))
	f.body.Store(body)
}

func (f *fakeMaxAPI) clients(t *testing.T) (*maxbot.Client, *maxbot.AsyncClient) {
	t.Helper()
	client, err := maxbot.NewWithBaseURL("test-token", f.ts.URL, maxbot.WithHTTPSOnly(false))
	if err != nil {
		t.Fatalf("unexpected client error: %v", err)
	}
	async, err := maxbot.NewAsyncWithBaseURL("test-token", f.ts.URL, maxbot.WithHTTPSOnly(false))
	if err != nil {
		t.Fatalf("unexpected async client error: %v", err)
	}
	return client, async
}
