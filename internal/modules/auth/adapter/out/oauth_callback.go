package out

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fitcoach/internal/modules/auth/dto"
)

// CallbackServer is the loopback HTTP listener for the Google OAuth
// redirect. A browser-based client receives the redirect on its own
// origin; here the backend redirects to localhost instead and the same
// query parameters are parsed off the request.
type CallbackServer struct {
	port int
}

func NewCallbackServer(port int) *CallbackServer {
	return &CallbackServer{port: port}
}

// RedirectURL is the value registered with the backend as the OAuth
// redirect target.
func (s *CallbackServer) RedirectURL() string {
	return fmt.Sprintf("http://127.0.0.1:%d/callback", s.port)
}

// WaitForRedirect serves until the first callback arrives or ctx is
// done. The listener is torn down before returning.
func (s *CallbackServer) WaitForRedirect(ctx context.Context) (dto.GoogleRedirectResult, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", s.port))
	if err != nil {
		return dto.GoogleRedirectResult{}, fmt.Errorf("listen on callback port: %w", err)
	}

	results := make(chan dto.GoogleRedirectResult, 1)
	fails := make(chan error, 1)

	r := chi.NewRouter()
	r.Get("/callback", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		if q.Get("google_auth") != "success" || q.Get("token") == "" {
			http.Error(w, "Google authentication failed. You can close this window.", http.StatusBadRequest)
			select {
			case fails <- fmt.Errorf("google auth rejected: %s", q.Get("message")):
			default:
			}
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>Signed in. You can close this window and return to the terminal.</body></html>"))
		select {
		case results <- dto.GoogleRedirectResult{
			Token:    q.Get("token"),
			UserID:   q.Get("user_id"),
			Username: q.Get("username"),
			Email:    q.Get("email"),
			Message:  q.Get("message"),
		}:
		default:
		}
	})

	srv := &http.Server{Handler: r}
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Warn("oauth callback server", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	select {
	case result := <-results:
		return result, nil
	case err := <-fails:
		return dto.GoogleRedirectResult{}, err
	case <-ctx.Done():
		return dto.GoogleRedirectResult{}, ctx.Err()
	}
}
