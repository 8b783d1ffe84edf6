package out_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	chatadapter "fitcoach/internal/modules/chat/adapter/out"
	apperrors "fitcoach/internal/platform/errors"
	"fitcoach/internal/platform/httpclient"
	"fitcoach/internal/platform/logging"
)

func init() {
	logging.Discard()
}

func newChat(t *testing.T, baseURL string) *chatadapter.RESTChat {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("new jar: %v", err)
	}
	return chatadapter.NewRESTChat(httpclient.New(baseURL, jar, 5*time.Second))
}

func TestHistoryDecodesEntries(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chatbot/history" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"history":[{"content":"hola","role":"user"},{"content":"Hi!","role":"assistant"}]}`))
	}))
	defer srv.Close()

	entries, err := newChat(t, srv.URL).History(context.Background())
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries", len(entries))
	}
	if entries[0].Role != "user" || entries[1].Content != "Hi!" {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestSendPostsMessageAndReadsResponse(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chatbot/message" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body.Message != "routine for legs" {
			t.Errorf("message = %q", body.Message)
		}
		w.Write([]byte(`{"response":"Try squats three times a week."}`))
	}))
	defer srv.Close()

	reply, err := newChat(t, srv.URL).Send(context.Background(), "routine for legs")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if reply != "Try squats three times a week." {
		t.Fatalf("reply = %q", reply)
	}
}

func TestSendMapsPersistent401ToSessionExpired(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newChat(t, srv.URL).Send(context.Background(), "hola")
	if !errors.Is(err, apperrors.ErrSessionExpired) {
		t.Fatalf("err = %v, want ErrSessionExpired", err)
	}
}
