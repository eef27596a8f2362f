package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketlens/internal/domain"
)

func TestCookieTokenProviderExtractsToken(t *testing.T) {
	want := makeToken(t, time.Now().Unix()+3600)
	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		// Decoys: right shape but not decodable as JWT segments.
		w.Write([]byte(`<html><script>var a="eyJub.eyJub.zzz";var t="` + want + `";</script></html>`))
	}))
	defer srv.Close()

	provider := NewCookieTokenProvider(ProviderConfig{
		ChartURL:  srv.URL,
		UserAgent: "test-agent",
		Cookie:    "sessionid=abc",
	})

	tok, err := provider.Acquire(context.Background())
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if tok != want {
		t.Fatalf("expected token %q, got %q", want, tok)
	}
	if gotCookie != "sessionid=abc" {
		t.Fatalf("expected cookie header, got %q", gotCookie)
	}
}

func TestCookieTokenProviderNoCookie(t *testing.T) {
	provider := NewCookieTokenProvider(ProviderConfig{ChartURL: "http://127.0.0.1:0"})

	_, err := provider.Acquire(context.Background())
	var aerr *domain.AuthError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
}

func TestCookieTokenProviderNoTokenInPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>logged out</html>"))
	}))
	defer srv.Close()

	provider := NewCookieTokenProvider(ProviderConfig{ChartURL: srv.URL, Cookie: "sessionid=stale"})

	_, err := provider.Acquire(context.Background())
	var aerr *domain.AuthError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
}

func TestCookieTokenProviderBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	provider := NewCookieTokenProvider(ProviderConfig{ChartURL: srv.URL, Cookie: "sessionid=abc"})

	_, err := provider.Acquire(context.Background())
	var aerr *domain.AuthError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
}
