package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"marketlens/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// A token is treated as expired this long before its exp claim so
// in-flight requests never ride a token that lapses mid-call.
const safetyMargin = 60 * time.Second

const mirrorKey = "marketlens:session-token"

// Token is the cached bearer credential. ExpiresAt is the token's
// exp claim in epoch seconds.
type Token struct {
	Value     string `json:"value"`
	ExpiresAt int64  `json:"expires_at"`
}

// TokenCache serializes token refreshes behind one mutex. An optional
// Redis mirror lets replicas and restarts reuse an unexpired token
// instead of re-scraping the chart page.
type TokenCache struct {
	mu       sync.Mutex
	provider TokenProvider
	mirror   *redis.Client
	token    Token
	now      func() time.Time
}

func NewTokenCache(provider TokenProvider, mirror *redis.Client) *TokenCache {
	return &TokenCache{
		provider: provider,
		mirror:   mirror,
		now:      time.Now,
	}
}

// Token returns the cached token while it is still valid past the
// safety margin, otherwise refreshes through the provider. A failed
// refresh returns an AuthError and leaves any previously cached token
// untouched.
func (c *TokenCache) Token(ctx context.Context, forceRefresh bool) (Token, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !forceRefresh {
		if c.valid(c.token) {
			return c.token, nil
		}
		if tok, ok := c.fromMirror(ctx); ok && c.valid(tok) {
			c.token = tok
			return tok, nil
		}
	}

	raw, err := c.provider.Acquire(ctx)
	if err != nil {
		var aerr *domain.AuthError
		if errors.As(err, &aerr) {
			return Token{}, err
		}
		return Token{}, &domain.AuthError{Message: "session token refresh failed", Cause: err}
	}

	exp, err := decodeExpiry(raw)
	if err != nil {
		return Token{}, &domain.AuthError{Message: "session token is not parseable", Cause: err}
	}

	tok := Token{Value: raw, ExpiresAt: exp}
	c.token = tok
	c.toMirror(ctx, tok)
	return tok, nil
}

// Bearer is the common path for callers that just need the current
// token string.
func (c *TokenCache) Bearer(ctx context.Context) (string, error) {
	tok, err := c.Token(ctx, false)
	if err != nil {
		return "", err
	}
	return tok.Value, nil
}

func (c *TokenCache) valid(tok Token) bool {
	return tok.Value != "" && c.now().Add(safetyMargin).Unix() < tok.ExpiresAt
}

func (c *TokenCache) fromMirror(ctx context.Context) (Token, bool) {
	if c.mirror == nil {
		return Token{}, false
	}
	raw, err := c.mirror.Get(ctx, mirrorKey).Result()
	if err != nil {
		return Token{}, false
	}
	var tok Token
	if err := json.Unmarshal([]byte(raw), &tok); err != nil {
		return Token{}, false
	}
	return tok, true
}

func (c *TokenCache) toMirror(ctx context.Context, tok Token) {
	if c.mirror == nil {
		return
	}
	ttl := time.Until(time.Unix(tok.ExpiresAt, 0))
	if ttl <= 0 {
		return
	}
	payload, err := json.Marshal(tok)
	if err != nil {
		return
	}
	if err := c.mirror.Set(ctx, mirrorKey, payload, ttl).Err(); err != nil {
		log.Printf("session token mirror write failed: %v", err)
	}
}

// decodeExpiry reads the exp claim without verifying the signature;
// the signing key belongs to the upstream and is not needed to know
// when to refresh.
func decodeExpiry(raw string) (int64, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return 0, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return 0, err
	}
	if exp == nil {
		return 0, errors.New("token has no exp claim")
	}
	return exp.Unix(), nil
}
