package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"
)

const (
	defaultTokenEndpoint = "https://login.microsoftonline.com/%s/oauth2/v2.0/token"
	graphDefaultScope    = "https://graph.microsoft.com/.default"

	// Tokens are refreshed slightly before their actual expiry so an
	// in-flight request never carries a token about to lapse.
	expiryMargin = 2 * time.Minute
)

// TokenProvider supplies the Authorization header value for Graph requests.
// Acquisition failure aborts the whole run; there is no per-item auth.
type TokenProvider interface {
	Header(ctx context.Context) (string, error)
}

// Error wraps a token acquisition failure.
type Error struct {
	Err error
}

func (e *Error) Error() string { return "token acquisition failed: " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// Static returns a fixed, pre-acquired bearer token. Used when the caller
// already holds a token (GRAPH_ACCESS_TOKEN) and in tests.
type Static struct {
	Token string
}

func (s *Static) Header(context.Context) (string, error) {
	if s.Token == "" {
		return "", &Error{Err: fmt.Errorf("no access token configured")}
	}
	return "Bearer " + s.Token, nil
}

// ClientCredentials acquires tokens from the Azure AD v2 token endpoint via
// the OAuth2 client-credentials grant and caches them until shortly before
// expiry. Concurrent acquisitions are collapsed into a single request.
type ClientCredentials struct {
	TenantID     string
	ClientID     string
	ClientSecret string

	// TokenEndpoint overrides the Azure AD endpoint, primarily for tests.
	TokenEndpoint string
	HTTPClient    *http.Client

	group singleflight.Group

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

func (c *ClientCredentials) Header(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.token != "" && time.Now().Before(c.expiresAt.Add(-expiryMargin)) {
		header := "Bearer " + c.token
		c.mu.Unlock()
		return header, nil
	}
	c.mu.Unlock()

	result, err, _ := c.group.Do("token", func() (interface{}, error) {
		return c.fetchToken(ctx)
	})
	if err != nil {
		return "", &Error{Err: err}
	}

	return "Bearer " + result.(string), nil
}

func (c *ClientCredentials) fetchToken(ctx context.Context) (string, error) {
	if c.TenantID == "" || c.ClientID == "" || c.ClientSecret == "" {
		return "", fmt.Errorf("tenant id, client id, and client secret are all required")
	}

	endpoint := c.TokenEndpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf(defaultTokenEndpoint, url.PathEscape(c.TenantID))
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.ClientID},
		"client_secret": {c.ClientSecret},
		"scope":         {graphDefaultScope},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token endpoint unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("token endpoint returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var parsed tokenResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if parsed.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access token")
	}

	expiresAt := c.resolveExpiry(parsed)

	c.mu.Lock()
	c.token = parsed.AccessToken
	c.expiresAt = expiresAt
	c.mu.Unlock()

	log.Debug("Acquired Graph access token", "expires_at", expiresAt.Format(time.RFC3339))
	return parsed.AccessToken, nil
}

// resolveExpiry prefers the token's own exp claim over the advertised
// expires_in. The JWT is parsed without signature verification; the Graph
// API is the one validating it, the client only needs the expiry.
func (c *ClientCredentials) resolveExpiry(parsed tokenResponse) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(parsed.AccessToken, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	if parsed.ExpiresIn > 0 {
		return time.Now().Add(time.Duration(parsed.ExpiresIn) * time.Second)
	}
	return time.Now().Add(expiryMargin)
}
