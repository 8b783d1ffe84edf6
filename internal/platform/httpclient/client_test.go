package httpclient_test

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"fitcoach/internal/platform/httpclient"
	"fitcoach/internal/platform/logging"
)

func init() {
	logging.Discard()
}

func newClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("new jar: %v", err)
	}
	return httpclient.New(baseURL, jar, 5*time.Second)
}

func TestRefreshAndRetryOnce(t *testing.T) {
	t.Parallel()
	var refreshCalls, whoamiCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/refresh":
			refreshCalls.Add(1)
			w.WriteHeader(http.StatusOK)
		case "/api/users/whoami":
			if whoamiCalls.Add(1) == 1 {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Write([]byte(`{"username":"jo.hn_doe"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	resp, err := newClient(t, srv.URL).Get(context.Background(), "/api/users/whoami")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !resp.OK() {
		t.Fatalf("expected retried request to succeed, got %d", resp.StatusCode)
	}
	if got := refreshCalls.Load(); got != 1 {
		t.Fatalf("expected exactly one refresh call, got %d", got)
	}
	if got := whoamiCalls.Load(); got != 2 {
		t.Fatalf("expected original plus one retry, got %d calls", got)
	}
}

func TestRetryReplaysIdenticalBody(t *testing.T) {
	t.Parallel()
	var bodies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/refresh":
			w.WriteHeader(http.StatusOK)
		case "/api/chatbot/message":
			b, _ := io.ReadAll(r.Body)
			bodies = append(bodies, string(b))
			if len(bodies) == 1 {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Write([]byte(`{"response":"ok"}`))
		}
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).Post(context.Background(), "/api/chatbot/message", map[string]string{"message": "hola"})
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if len(bodies) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(bodies))
	}
	if bodies[0] != bodies[1] {
		t.Fatalf("retry body differs: %q vs %q", bodies[0], bodies[1])
	}
}

func TestFailedRefreshReturnsOriginal401(t *testing.T) {
	t.Parallel()
	var whoamiCalls, refreshCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/refresh":
			refreshCalls.Add(1)
			w.WriteHeader(http.StatusForbidden)
		case "/api/users/whoami":
			whoamiCalls.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	resp, err := newClient(t, srv.URL).Get(context.Background(), "/api/users/whoami")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected original 401, got %d", resp.StatusCode)
	}
	if got := whoamiCalls.Load(); got != 1 {
		t.Fatalf("must not retry after failed refresh, got %d calls", got)
	}
	if got := refreshCalls.Load(); got != 1 {
		t.Fatalf("expected a single refresh attempt, got %d", got)
	}
}

func TestRefreshEndpoint401DoesNotRecurse(t *testing.T) {
	t.Parallel()
	var refreshCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/refresh" {
			refreshCalls.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	resp, err := newClient(t, srv.URL).Post(context.Background(), "/api/auth/refresh", nil)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if got := refreshCalls.Load(); got != 1 {
		t.Fatalf("refresh must not refresh itself, got %d calls", got)
	}
}

func TestMessageFallsBackWhenBodyUnparseable(t *testing.T) {
	t.Parallel()
	resp := &httpclient.Response{Body: []byte("<html>boom</html>")}
	if got := resp.Message("generic"); got != "generic" {
		t.Fatalf("expected fallback, got %q", got)
	}
	resp = &httpclient.Response{Body: []byte(`{"error":"Email not found"}`)}
	if got := resp.Message("generic"); got != "Email not found" {
		t.Fatalf("expected server error field, got %q", got)
	}
	resp = &httpclient.Response{Body: []byte(`{"message":"Code expired"}`)}
	if got := resp.Message("generic"); got != "Code expired" {
		t.Fatalf("expected server message field, got %q", got)
	}
}
