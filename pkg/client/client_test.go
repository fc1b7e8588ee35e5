package client

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pulseview/cli/pkg/config"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "pulseview-client-test")
	if err != nil {
		os.Exit(1)
	}
	if err := config.Init(filepath.Join(dir, "config.toml")); err != nil {
		os.Exit(1)
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// TestGetClientInitialization validates client initialization
func TestGetClientInitialization(t *testing.T) {
	httpClient = nil

	client := GetClient()
	if client == nil {
		t.Fatal("GetClient should not return nil")
	}
}

// TestGetClientSingleton validates that GetClient returns same instance
func TestGetClientSingleton(t *testing.T) {
	httpClient = nil

	client1 := GetClient()
	client2 := GetClient()

	if client1 != client2 {
		t.Error("GetClient should return same instance")
	}
}

// TestPlaceholderBearerTokenSet validates the placeholder credential header
func TestPlaceholderBearerTokenSet(t *testing.T) {
	httpClient = nil

	client := GetClient()

	auth := client.Header.Get("Authorization")
	if auth == "" {
		t.Fatal("Authorization header should be set on init")
	}
	if !strings.HasPrefix(auth, "Bearer ") {
		t.Errorf("Expected a Bearer credential, got %q", auth)
	}
}

// TestSetBearerToken validates overriding the credential
func TestSetBearerToken(t *testing.T) {
	httpClient = nil

	SetBearerToken("real_token_12345")

	auth := GetClient().Header.Get("Authorization")
	if auth != "Bearer real_token_12345" {
		t.Errorf("Expected overridden token, got %q", auth)
	}
}

// TestUserAgentSet validates the client identifies itself
func TestUserAgentSet(t *testing.T) {
	httpClient = nil

	client := GetClient()
	if ua := client.Header.Get("User-Agent"); !strings.HasPrefix(ua, "Pulseview-CLI/") {
		t.Errorf("Expected Pulseview user agent, got %q", ua)
	}
}
