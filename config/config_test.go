package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kbukum/parsekit/errors"
)

// chdir changes the working directory for the duration of the test,
// matching the behavior of testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("chdir back: %v", err)
		}
	})
}

func validSettings() Settings {
	return Settings{
		ServerURL:     "https://api.example.com/1",
		ApplicationID: "app-id",
		RESTAPIKey:    "rest-key",
	}
}

func TestSettings_Validate_Success(t *testing.T) {
	set := validSettings()
	if err := set.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSettings_Validate_MissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"no server_url", func(s *Settings) { s.ServerURL = "" }},
		{"bad server_url", func(s *Settings) { s.ServerURL = "not a url" }},
		{"no application_id", func(s *Settings) { s.ApplicationID = "" }},
		{"no rest_api_key", func(s *Settings) { s.RESTAPIKey = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set := validSettings()
			tc.mutate(&set)
			err := set.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			appErr, ok := errors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != errors.ErrCodeInvalidInput {
				t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
			}
		})
	}
}

func TestSettings_IsZero(t *testing.T) {
	var set Settings
	if !set.IsZero() {
		t.Error("zero value should report IsZero")
	}
	if validSettings().IsZero() {
		t.Error("populated settings should not report IsZero")
	}
}

func TestSettings_ApplyDefaults(t *testing.T) {
	set := validSettings()
	set.ApplyDefaults()
	if set.Timeout != 30*time.Second {
		t.Errorf("expected 30s default timeout, got %v", set.Timeout)
	}

	set.Timeout = 5 * time.Second
	set.ApplyDefaults()
	if set.Timeout != 5*time.Second {
		t.Errorf("expected explicit timeout to survive, got %v", set.Timeout)
	}
}

func TestLoad_FromYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "parse.yml")
	content := []byte("server_url: https://api.example.com/1\napplication_id: yaml-app\nrest_api_key: yaml-key\ndebug: true\n")
	if err := os.WriteFile(file, content, 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	set, err := Load(WithConfigFile(file))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.ApplicationID != "yaml-app" {
		t.Errorf("expected yaml-app, got %q", set.ApplicationID)
	}
	if !set.Debug {
		t.Error("expected debug=true")
	}
	if set.Timeout != 30*time.Second {
		t.Errorf("expected default timeout, got %v", set.Timeout)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "parse.yml")
	content := []byte("server_url: https://api.example.com/1\napplication_id: yaml-app\nrest_api_key: yaml-key\n")
	if err := os.WriteFile(file, content, 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("PARSE_APPLICATION_ID", "env-app")

	set, err := Load(WithConfigFile(file))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.ApplicationID != "env-app" {
		t.Errorf("expected env to win, got %q", set.ApplicationID)
	}
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("PARSE_SERVER_URL", "https://api.example.com/1")
	t.Setenv("PARSE_APPLICATION_ID", "env-app")
	t.Setenv("PARSE_REST_API_KEY", "env-key")

	// Run from an empty directory so no stray parse.yml is picked up.
	chdir(t, t.TempDir())

	set, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.RESTAPIKey != "env-key" {
		t.Errorf("expected env-key, got %q", set.RESTAPIKey)
	}
}

func TestLoad_IncompleteSettings(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load()
	if err == nil {
		t.Fatal("expected validation error for empty settings")
	}
}
