package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Speech.SampleRate != 16000 {
		t.Fatalf("expected default sample rate 16000, got %d", cfg.Speech.SampleRate)
	}
	if cfg.Speech.MaxAlternatives != 30 {
		t.Fatalf("expected default max alternatives 30, got %d", cfg.Speech.MaxAlternatives)
	}
	if cfg.LocationID != "global" {
		t.Fatalf("expected default location global, got %q", cfg.LocationID)
	}
	if cfg.MimeType != "text/plain" {
		t.Fatalf("expected default mime type text/plain, got %q", cfg.MimeType)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
project_id: test-project
location_id: us-central1
glossary_id: test-glossary
bundle_identifier: com.example.app
speech:
  language_code: ja-JP
  sample_rate: 8000
publisher:
  enabled: true
  servers: ["nats://one:4222"]
  subject: test.subject
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ProjectID != "test-project" || cfg.LocationID != "us-central1" || cfg.GlossaryID != "test-glossary" {
		t.Fatalf("unexpected ids: %+v", cfg)
	}
	if cfg.BundleIdentifier != "com.example.app" {
		t.Fatalf("expected bundle identifier, got %q", cfg.BundleIdentifier)
	}
	if cfg.Speech.LanguageCode != "ja-JP" || cfg.Speech.SampleRate != 8000 {
		t.Fatalf("unexpected speech config: %+v", cfg.Speech)
	}
	// values missing from the file keep their defaults
	if cfg.Speech.MaxAlternatives != 30 {
		t.Fatalf("expected default max alternatives to survive, got %d", cfg.Speech.MaxAlternatives)
	}
	if !cfg.Publisher.Enabled || cfg.Publisher.Subject != "test.subject" {
		t.Fatalf("unexpected publisher config: %+v", cfg.Publisher)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VT_PROJECT_ID", "env-project")
	t.Setenv("VT_ACCESS_TOKEN", "token")
	t.Setenv("VT_SPEECH_SAMPLE_RATE", "44100")
	t.Setenv("VT_SPEECH_INTERIM_RESULTS", "false")
	t.Setenv("VT_PUBLISHER_SERVERS", "nats://one:4222, nats://two:4222")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ProjectID != "env-project" {
		t.Fatalf("expected project override, got %q", cfg.ProjectID)
	}
	if cfg.AccessToken != "token" {
		t.Fatalf("expected token override")
	}
	if cfg.Speech.SampleRate != 44100 {
		t.Fatalf("expected sample rate 44100, got %d", cfg.Speech.SampleRate)
	}
	if cfg.Speech.InterimResults {
		t.Fatal("expected interim results override false")
	}
	if len(cfg.Publisher.Servers) != 2 || cfg.Publisher.Servers[1] != "nats://two:4222" {
		t.Fatalf("expected 2 servers, got %v", cfg.Publisher.Servers)
	}
}

func TestInvalidEnvValuesAreIgnored(t *testing.T) {
	t.Setenv("VT_SPEECH_SAMPLE_RATE", "not-a-number")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Speech.SampleRate != 16000 {
		t.Fatalf("expected default sample rate, got %d", cfg.Speech.SampleRate)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}, wantErr: false},
		{name: "zero sample rate", mutate: func(c *Config) { c.Speech.SampleRate = 0 }, wantErr: true},
		{name: "too many alternatives", mutate: func(c *Config) { c.Speech.MaxAlternatives = 31 }, wantErr: true},
		{name: "empty language code", mutate: func(c *Config) { c.Speech.LanguageCode = "" }, wantErr: true},
		{name: "unknown mime type", mutate: func(c *Config) { c.MimeType = "application/pdf" }, wantErr: true},
		{name: "negative stream duration", mutate: func(c *Config) { c.Speech.MaxStreamDuration = -1 }, wantErr: true},
		{
			name: "publisher without servers",
			mutate: func(c *Config) {
				c.Publisher.Enabled = true
				c.Publisher.Servers = nil
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
