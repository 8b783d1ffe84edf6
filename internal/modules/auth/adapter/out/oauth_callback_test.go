package out_test

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"testing"
	"time"

	"fitcoach/internal/modules/auth/adapter/out"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("probe free port: %v", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestWaitForRedirectParsesQuery(t *testing.T) {
	t.Parallel()
	port := freePort(t)
	srv := out.NewCallbackServer(port)

	type outcome struct {
		token, username string
		err             error
	}
	done := make(chan outcome, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		result, err := srv.WaitForRedirect(ctx)
		done <- outcome{token: result.Token, username: result.Username, err: err}
	}()

	// Give the listener a moment, then simulate the backend redirect.
	var resp *http.Response
	var err error
	for i := 0; i < 50; i++ {
		resp, err = http.Get(fmt.Sprintf(
			"http://127.0.0.1:%d/callback?google_auth=success&token=jwt123&username=%s&email=%s",
			port, url.QueryEscape("jo.hn_doe"), url.QueryEscape("user@example.com")))
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("hit callback: %v", err)
	}
	resp.Body.Close()

	got := <-done
	if got.err != nil {
		t.Fatalf("wait: %v", got.err)
	}
	if got.token != "jwt123" || got.username != "jo.hn_doe" {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestWaitForRedirectFailsOnRejectedAuth(t *testing.T) {
	t.Parallel()
	port := freePort(t)
	srv := out.NewCallbackServer(port)

	done := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, err := srv.WaitForRedirect(ctx)
		done <- err
	}()

	var resp *http.Response
	var err error
	for i := 0; i < 50; i++ {
		resp, err = http.Get(fmt.Sprintf("http://127.0.0.1:%d/callback?google_auth=error&message=denied", port))
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("hit callback: %v", err)
	}
	resp.Body.Close()

	if waitErr := <-done; waitErr == nil {
		t.Fatalf("expected error for rejected auth")
	}
}
