package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/flightprint/flightprint-api/internal/infrastructure/retry"
	"github.com/flightprint/flightprint-api/internal/infrastructure/timeutil"
)

// tokenExpiryMargin is subtracted from expires_in so a token is never used
// right at its expiry.
const tokenExpiryMargin = 300 * time.Second

// tokenSource fetches and caches an OAuth2 client-credentials token.
type tokenSource struct {
	mu       sync.Mutex
	endpoint string
	clientID string
	secret   string
	client   *http.Client
	clock    timeutil.Clock
	onFetch  func()

	token  string
	expiry time.Time
}

// Token returns the cached token or fetches a new one.
func (s *tokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && s.clock.Now().Before(s.expiry) {
		return s.token, nil
	}

	tok, err := s.fetch(ctx)
	if err != nil {
		return "", err
	}

	lifetime := time.Duration(tok.ExpiresIn)*time.Second - tokenExpiryMargin
	if lifetime <= 0 {
		lifetime = time.Duration(tok.ExpiresIn) * time.Second
	}
	s.token = tok.AccessToken
	s.expiry = s.clock.Now().Add(lifetime)
	if s.onFetch != nil {
		s.onFetch()
	}
	return s.token, nil
}

// Invalidate drops the cached token so the next call fetches a new one.
func (s *tokenSource) Invalidate() {
	s.mu.Lock()
	s.token = ""
	s.expiry = time.Time{}
	s.mu.Unlock()
}

func (s *tokenSource) fetch(ctx context.Context) (tokenResponse, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {s.clientID},
		"client_secret": {s.secret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return tokenResponse{}, retry.NewPermanent(fmt.Errorf("build token request: %w", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return tokenResponse{}, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return tokenResponse{}, fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return tokenResponse{}, newStatusError("authenticate", resp.StatusCode, body)
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return tokenResponse{}, retry.NewPermanent(fmt.Errorf("decode token response: %w", err))
	}
	if tok.AccessToken == "" {
		return tokenResponse{}, retry.NewPermanent(errors.New("token response has no access_token"))
	}
	return tok, nil
}
