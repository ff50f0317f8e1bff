package graph

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"tisubmit/internal/auth"
	"tisubmit/internal/domain"
)

func testIndicator() *domain.ThreatIndicator {
	confidence := int32(85)
	return &domain.ThreatIndicator{
		Action:             domain.ActionBlock,
		Description:        "File hash for cryptominer.exe",
		ExpirationDateTime: time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC),
		TargetProduct:      "Azure Sentinel",
		ThreatType:         domain.ThreatCryptoMining,
		TLPLevel:           domain.TLPRed,
		Confidence:         &confidence,
		KillChain:          domain.StringList{"Exploitation", "Installation"},
		FileHashType:       domain.HashSHA256,
		FileHashValue:      "2d6b2b6bdf9e6b2cfdb6be27e25bd8ce3e1c4f5a7f2b2e7b9b7b18d7b2c57085",
	}
}

func TestParseAPIVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    APIVersion
		wantErr bool
	}{
		{"beta", APIVersionBeta, false},
		{"Beta", APIVersionBeta, false},
		{"v1.0", APIVersionV1, false},
		{"v1", APIVersionV1, false},
		{"v2", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAPIVersion(tt.input)
			if tt.wantErr {
				var cfgErr *ConfigurationError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("ParseAPIVersion(%q) error = %v, want ConfigurationError", tt.input, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ParseAPIVersion(%q) = %v, %v, want %v", tt.input, got, err, tt.want)
			}
		})
	}
}

func TestNewClientRejectsV1BeforeAnyRequest(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	_, err := NewClient(server.URL, APIVersionV1, &auth.Static{Token: "tok"}, server.Client())

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("NewClient returned %v, want ConfigurationError", err)
	}
	if calls != 0 {
		t.Fatalf("observed %d HTTP calls, want 0", calls)
	}
}

func TestSubmitIndicator(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	var gotPayload map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")

		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &gotPayload); err != nil {
			t.Errorf("request body is not valid JSON: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write(append([]byte(`{"id":"ti-123","azureTenantId":"tenant-1",`), body[1:]...))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, APIVersionBeta, &auth.Static{Token: "tok"}, server.Client())
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	created, err := client.SubmitIndicator(context.Background(), testIndicator())
	if err != nil {
		t.Fatalf("SubmitIndicator returned error: %v", err)
	}

	if gotPath != "/beta/security/tiIndicators" {
		t.Fatalf("POST path = %q, want /beta/security/tiIndicators", gotPath)
	}
	if gotAuth != "Bearer tok" {
		t.Fatalf("Authorization = %q, want Bearer tok", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", gotContentType)
	}
	if created.ID != "ti-123" || created.AzureTenantID != "tenant-1" {
		t.Fatalf("decoded response = %+v, want server-assigned ids", created)
	}

	if _, ok := gotPayload["fileHashType"]; !ok {
		t.Fatalf("payload missing fileHashType: %v", gotPayload)
	}
	if _, ok := gotPayload["emailSenderAddress"]; ok {
		t.Fatalf("payload contains unsupplied email attribute: %v", gotPayload)
	}
}

// Round-trip through a test double: every supplied attribute must survive
// serialization with its type intact.
func TestSubmitIndicatorRoundTrip(t *testing.T) {
	var received domain.ThreatIndicator
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, APIVersionBeta, &auth.Static{Token: "tok"}, server.Client())
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	sent := testIndicator()
	if _, err := client.SubmitIndicator(context.Background(), sent); err != nil {
		t.Fatalf("SubmitIndicator returned error: %v", err)
	}

	if !received.ExpirationDateTime.Equal(sent.ExpirationDateTime) {
		t.Fatalf("expirationDateTime = %v, want %v", received.ExpirationDateTime, sent.ExpirationDateTime)
	}
	if received.Confidence == nil || *received.Confidence != 85 {
		t.Fatalf("confidence = %v, want 85", received.Confidence)
	}
	if !reflect.DeepEqual(received.KillChain, sent.KillChain) {
		t.Fatalf("killChain = %v, want %v", received.KillChain, sent.KillChain)
	}
	if received.FileHashType != sent.FileHashType || received.FileHashValue != sent.FileHashValue {
		t.Fatalf("file hash fields = %v/%v, want %v/%v",
			received.FileHashType, received.FileHashValue, sent.FileHashType, sent.FileHashValue)
	}
}

func TestSubmitIndicatorAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":"InvalidRequest","message":"fileHashValue malformed"}}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, APIVersionBeta, &auth.Static{Token: "tok"}, server.Client())
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = client.SubmitIndicator(context.Background(), testIndicator())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("SubmitIndicator returned %v, want APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("StatusCode = %d, want 400", apiErr.StatusCode)
	}
	if apiErr.Body == "" || !json.Valid([]byte(apiErr.Body)) {
		t.Fatalf("Body = %q, want full error body", apiErr.Body)
	}
}

func TestSubmitIndicatorTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client, err := NewClient(server.URL, APIVersionBeta, &auth.Static{Token: "tok"}, &http.Client{})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = client.SubmitIndicator(context.Background(), testIndicator())

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("SubmitIndicator returned %v, want TransportError", err)
	}
}

func TestSubmitIndicatorAuthFailureSkipsRequest(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client, err := NewClient(server.URL, APIVersionBeta, &auth.Static{}, server.Client())
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = client.SubmitIndicator(context.Background(), testIndicator())

	var authErr *auth.Error
	if !errors.As(err, &authErr) {
		t.Fatalf("SubmitIndicator returned %v, want auth.Error", err)
	}
	if calls != 0 {
		t.Fatalf("observed %d HTTP calls, want 0", calls)
	}
}
