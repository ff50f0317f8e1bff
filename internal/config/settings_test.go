package config

import (
	"testing"
	"time"
)

func TestDefaultsFromEmbeddedSettings(t *testing.T) {
	cfg := GetConfig()

	if cfg.Graph.Root != "https://graph.microsoft.com" {
		t.Fatalf("Graph.Root = %q, want production Graph root", cfg.Graph.Root)
	}
	if cfg.Graph.APIVersion != "beta" {
		t.Fatalf("Graph.APIVersion = %q, want beta", cfg.Graph.APIVersion)
	}
	if cfg.Graph.TargetProduct == "" {
		t.Fatal("Graph.TargetProduct default is empty")
	}
}

func TestEnvOverrides(t *testing.T) {
	orig := GetConfig()
	t.Cleanup(func() { SetConfig(orig) })

	t.Setenv("GRAPH_ROOT", "https://graph.example.test")
	t.Setenv("GRAPH_TENANT_ID", "tenant-123")
	t.Setenv("GRAPH_CLIENT_SECRET", "hunter2")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "45")

	ReadSettings()
	cfg := GetConfig()

	if cfg.Graph.Root != "https://graph.example.test" {
		t.Fatalf("Graph.Root = %q, want env override", cfg.Graph.Root)
	}
	if cfg.Auth.TenantID != "tenant-123" {
		t.Fatalf("Auth.TenantID = %q, want tenant-123", cfg.Auth.TenantID)
	}
	if cfg.Auth.ClientSecret != "hunter2" {
		t.Fatalf("Auth.ClientSecret not taken from environment")
	}
	if cfg.HTTP.TimeoutSeconds != 45 {
		t.Fatalf("HTTP.TimeoutSeconds = %d, want 45", cfg.HTTP.TimeoutSeconds)
	}
}

func TestInvalidTimeoutOverrideIgnored(t *testing.T) {
	orig := GetConfig()
	t.Cleanup(func() { SetConfig(orig) })

	t.Setenv("HTTP_TIMEOUT_SECONDS", "soon")

	ReadSettings()
	if got := GetConfig().HTTP.TimeoutSeconds; got != 0 {
		t.Fatalf("HTTP.TimeoutSeconds = %d, want default 0", got)
	}
}

func TestHTTPTimeout(t *testing.T) {
	var cfg Config
	if cfg.HTTPTimeout() != 0 {
		t.Fatalf("zero config HTTPTimeout = %s, want 0", cfg.HTTPTimeout())
	}

	cfg.HTTP.TimeoutSeconds = 30
	if cfg.HTTPTimeout() != 30*time.Second {
		t.Fatalf("HTTPTimeout = %s, want 30s", cfg.HTTPTimeout())
	}
}
