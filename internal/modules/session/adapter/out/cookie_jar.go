package out

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"fitcoach/internal/platform/clock"
)

// PersistentJar is a cookie jar scoped to the single backend origin. A
// browser persists auth cookies across page loads; this jar does the
// same across process restarts by writing through to the state store.
type PersistentJar struct {
	inner *cookiejar.Jar
	store *SQLiteStateStore
	base  *url.URL
	clk   clock.Clock
}

func NewPersistentJar(baseURL string, store *SQLiteStateStore, clk clock.Clock) (*PersistentJar, error) {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	jar := &PersistentJar{inner: inner, store: store, base: base, clk: clk}

	rows, err := store.listCookies(context.Background())
	if err != nil {
		return nil, err
	}
	now := clk.Now()
	var cookies []*http.Cookie
	for _, row := range rows {
		if !row.Expires.IsZero() && row.Expires.Before(now) {
			_ = store.deleteCookie(context.Background(), row.Name)
			continue
		}
		cookies = append(cookies, &http.Cookie{
			Name:     row.Name,
			Value:    row.Value,
			Path:     row.Path,
			Expires:  row.Expires,
			Secure:   row.Secure,
			HttpOnly: row.HTTPOnly,
		})
	}
	if len(cookies) > 0 {
		inner.SetCookies(base, cookies)
	}
	return jar, nil
}

func (j *PersistentJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.inner.SetCookies(u, cookies)
	if u.Host != j.base.Host {
		return
	}
	ctx := context.Background()
	now := j.clk.Now()
	for _, c := range cookies {
		if c.MaxAge < 0 || (!c.Expires.IsZero() && c.Expires.Before(now)) {
			if err := j.store.deleteCookie(ctx, c.Name); err != nil {
				slog.Warn("delete persisted cookie", "name", c.Name, "error", err)
			}
			continue
		}
		expires := c.Expires
		if c.MaxAge > 0 {
			expires = now.Add(time.Duration(c.MaxAge) * time.Second)
		}
		row := cookieRow{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Expires:  expires,
			Secure:   c.Secure,
			HTTPOnly: c.HttpOnly,
		}
		if err := j.store.upsertCookie(ctx, row); err != nil {
			slog.Warn("persist cookie", "name", c.Name, "error", err)
		}
	}
}

func (j *PersistentJar) Cookies(u *url.URL) []*http.Cookie {
	return j.inner.Cookies(u)
}
