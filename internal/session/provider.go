// Package session owns the bearer-token lifecycle for authenticated
// market-data fetches: scraping a JWT out of a logged-in chart page
// and caching it until shortly before its exp claim.
package session

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"marketlens/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// Candidate tokens are three dot-separated base64url segments whose
// first two decode as JSON objects.
var jwtPattern = regexp.MustCompile(`eyJ[A-Za-z0-9-_]+\.eyJ[A-Za-z0-9-_]+\.[A-Za-z0-9-_]+`)

const maxChartPageBytes = 8 << 20

// TokenProvider produces a fresh bearer token string.
type TokenProvider interface {
	Acquire(ctx context.Context) (string, error)
}

type ProviderConfig struct {
	ChartURL  string
	Host      string
	UserAgent string
	Cookie    string
	Timeout   time.Duration
}

// CookieTokenProvider extracts a JWT from a chart page fetched with
// the user's browser cookie.
type CookieTokenProvider struct {
	client *http.Client
	cfg    ProviderConfig
}

func NewCookieTokenProvider(cfg ProviderConfig) *CookieTokenProvider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &CookieTokenProvider{
		client: &http.Client{Timeout: timeout},
		cfg:    cfg,
	}
}

func (p *CookieTokenProvider) Acquire(ctx context.Context) (string, error) {
	if p.cfg.Cookie == "" {
		return "", &domain.AuthError{
			Message: "account is not connected: set TRADINGVIEW_COOKIE to connect your account",
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.ChartURL, nil)
	if err != nil {
		return "", &domain.AuthError{Message: "build chart page request", Cause: err}
	}
	if p.cfg.Host != "" {
		req.Host = p.cfg.Host
	}
	req.Header.Set("Cookie", p.cfg.Cookie)
	req.Header.Set("User-Agent", p.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &domain.AuthError{Message: "fetch chart page", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &domain.AuthError{
			Message: fmt.Sprintf("chart page returned status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxChartPageBytes))
	if err != nil {
		return "", &domain.AuthError{Message: "read chart page", Cause: err}
	}

	for _, candidate := range jwtPattern.FindAllString(string(body), -1) {
		if isWellFormedJWT(candidate) {
			return candidate, nil
		}
	}
	return "", &domain.AuthError{
		Message: "no session token found in chart page: verify the cookie is valid and not expired",
	}
}

func isWellFormedJWT(candidate string) bool {
	_, _, err := jwt.NewParser().ParseUnverified(candidate, jwt.MapClaims{})
	return err == nil
}
