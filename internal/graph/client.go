package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"

	"tisubmit/internal/api/dto"
	"tisubmit/internal/auth"
	"tisubmit/internal/domain"
)

const (
	// DefaultRoot is the production Graph endpoint root.
	DefaultRoot = "https://graph.microsoft.com"

	tiIndicatorsPath = "security/tiIndicators"
	userAgent        = "tisubmit/1.0"
)

// APIVersion selects the Graph API surface addressed by the client.
type APIVersion string

const (
	APIVersionV1   APIVersion = "v1.0"
	APIVersionBeta APIVersion = "beta"
)

// ParseAPIVersion maps the user-facing version spellings onto an APIVersion.
func ParseAPIVersion(value string) (APIVersion, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "v1", "v1.0":
		return APIVersionV1, nil
	case "beta":
		return APIVersionBeta, nil
	}
	return "", &ConfigurationError{Reason: fmt.Sprintf("unknown api version %q (expected v1.0 or beta)", value)}
}

// Client submits threat indicators to the Graph Security API. The token
// provider and HTTP client are injected; the client holds no other state.
type Client struct {
	root       string
	version    APIVersion
	tokens     auth.TokenProvider
	httpClient *http.Client
}

// NewClient validates the requested version and assembles a client. The
// tiIndicators resource only exists on the beta surface, so v1.0 is rejected
// here, before any request is made.
func NewClient(root string, version APIVersion, tokens auth.TokenProvider, httpClient *http.Client) (*Client, error) {
	switch version {
	case APIVersionBeta:
	case APIVersionV1:
		return nil, &ConfigurationError{Reason: "api version v1.0 does not expose security/tiIndicators; use beta"}
	default:
		return nil, &ConfigurationError{Reason: fmt.Sprintf("unknown api version %q", version)}
	}

	if root == "" {
		root = DefaultRoot
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if tokens == nil {
		return nil, &ConfigurationError{Reason: "no token provider configured"}
	}

	return &Client{
		root:       strings.TrimRight(root, "/"),
		version:    version,
		tokens:     tokens,
		httpClient: httpClient,
	}, nil
}

// SubmitIndicator issues exactly one POST of the shaped indicator and
// decodes the created resource. Non-2xx responses surface as an APIError
// with the full status and body; nothing is retried.
func (c *Client) SubmitIndicator(ctx context.Context, ti *domain.ThreatIndicator) (*dto.IndicatorResponse, error) {
	header, err := c.tokens.Header(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(ti)
	if err != nil {
		return nil, fmt.Errorf("encode indicator: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/%s", c.root, c.version, tiIndicatorsPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", header)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	log.Debug("Submitting indicator", "endpoint", endpoint, "bytes", len(payload))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: endpoint, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var created dto.IndicatorResponse
	if len(body) > 0 {
		if err := json.Unmarshal(body, &created); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
	}
	return &created, nil
}
