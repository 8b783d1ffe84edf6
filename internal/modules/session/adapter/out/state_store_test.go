package out_test

import (
	"context"
	"net/http"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"fitcoach/internal/modules/session/adapter/out"
	"fitcoach/internal/platform/clock"
)

type frozenClock struct{ at time.Time }

func (c frozenClock) Now() time.Time { return c.at }

func newStore(t *testing.T) (*out.SQLiteStateStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.db")
	store, err := out.NewSQLiteStateStore(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestIdentityRoundTripAndClear(t *testing.T) {
	t.Parallel()
	store, _ := newStore(t)
	ctx := context.Background()

	if err := store.SaveLegacyToken(ctx, "bearer-123"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	if err := store.SaveDisplay(ctx, "jo.hn_doe", "user@example.com"); err != nil {
		t.Fatalf("save display: %v", err)
	}

	token, err := store.LegacyToken(ctx)
	if err != nil || token != "bearer-123" {
		t.Fatalf("token round trip: %q, %v", token, err)
	}
	username, email, err := store.Display(ctx)
	if err != nil || username != "jo.hn_doe" || email != "user@example.com" {
		t.Fatalf("display round trip: %q %q %v", username, email, err)
	}

	if err := store.ClearIdentity(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	token, _ = store.LegacyToken(ctx)
	if token != "" {
		t.Fatalf("token survived clear: %q", token)
	}
}

func TestPersistentJarSurvivesReopen(t *testing.T) {
	t.Parallel()
	store, path := newStore(t)
	base := "http://localhost:4000"
	u, _ := url.Parse(base + "/api/auth/login")

	jar, err := out.NewPersistentJar(base, store, clock.SystemClock{})
	if err != nil {
		t.Fatalf("new jar: %v", err)
	}
	jar.SetCookies(u, []*http.Cookie{{
		Name:    "access_token",
		Value:   "abc",
		Path:    "/",
		Expires: time.Now().Add(time.Hour),
	}})
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	reopened, err := out.NewSQLiteStateStore(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()

	jar2, err := out.NewPersistentJar(base, reopened, clock.SystemClock{})
	if err != nil {
		t.Fatalf("rebuild jar: %v", err)
	}
	cookies := jar2.Cookies(u)
	if len(cookies) != 1 || cookies[0].Name != "access_token" || cookies[0].Value != "abc" {
		t.Fatalf("cookie did not survive restart: %+v", cookies)
	}
}

func TestPersistentJarDropsExpiredCookies(t *testing.T) {
	t.Parallel()
	store, path := newStore(t)
	base := "http://localhost:4000"
	u, _ := url.Parse(base + "/")

	start := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	jar, err := out.NewPersistentJar(base, store, frozenClock{at: start})
	if err != nil {
		t.Fatalf("new jar: %v", err)
	}
	jar.SetCookies(u, []*http.Cookie{{
		Name:    "stale",
		Value:   "x",
		Path:    "/",
		Expires: start.Add(time.Minute),
	}})
	_ = store.Close()

	reopened, err := out.NewSQLiteStateStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	// The clock has moved past the cookie's lifetime while the client
	// was closed, so the rebuilt jar must prune it.
	jar2, err := out.NewPersistentJar(base, reopened, frozenClock{at: start.Add(time.Hour)})
	if err != nil {
		t.Fatalf("rebuild jar: %v", err)
	}
	if cookies := jar2.Cookies(u); len(cookies) != 0 {
		t.Fatalf("expired cookie resurrected: %+v", cookies)
	}
}
