package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ProjectID        string            `yaml:"project_id"`
	LocationID       string            `yaml:"location_id"`
	GlossaryID       string            `yaml:"glossary_id"`
	MimeType         string            `yaml:"mime_type"`
	BundleIdentifier string            `yaml:"bundle_identifier"`
	AccessToken      string            `yaml:"access_token"`
	LogLevel         string            `yaml:"log_level"`
	Speech           SpeechConfig      `yaml:"speech"`
	Translation      TranslationConfig `yaml:"translation"`
	Preferences      PreferencesConfig `yaml:"preferences"`
	Publisher        PublisherConfig   `yaml:"publisher"`
	Metrics          MetricsConfig     `yaml:"metrics"`
}

type SpeechConfig struct {
	Endpoint          string `yaml:"endpoint"`
	SampleRate        int    `yaml:"sample_rate"`
	LanguageCode      string `yaml:"language_code"`
	MaxAlternatives   int    `yaml:"max_alternatives"`
	WordTimeOffsets   bool   `yaml:"word_time_offsets"`
	InterimResults    bool   `yaml:"interim_results"`
	SingleUtterance   bool   `yaml:"single_utterance"`
	MaxStreamDuration int    `yaml:"max_stream_duration_ms"`
}

type TranslationConfig struct {
	Endpoint string `yaml:"endpoint"`
}

type PreferencesConfig struct {
	Path string `yaml:"path"`
}

type PublisherConfig struct {
	Enabled        bool     `yaml:"enabled"`
	Servers        []string `yaml:"servers"`
	Subject        string   `yaml:"subject"`
	Token          string   `yaml:"token"`
	Username       string   `yaml:"username"`
	Password       string   `yaml:"password"`
	ConnectTimeout int      `yaml:"connect_timeout_ms"`
}

type MetricsConfig struct {
	Bind string `yaml:"bind"`
}

func Default() Config {
	return Config{
		LocationID: "global",
		MimeType:   "text/plain",
		LogLevel:   "info",
		Speech: SpeechConfig{
			Endpoint:          "speech.googleapis.com:443",
			SampleRate:        16000,
			LanguageCode:      "en-US",
			MaxAlternatives:   30,
			WordTimeOffsets:   true,
			InterimResults:    true,
			SingleUtterance:   false,
			MaxStreamDuration: 290000,
		},
		Translation: TranslationConfig{
			Endpoint: "translate.googleapis.com:443",
		},
		Preferences: PreferencesConfig{
			Path: "./data/preferences.db",
		},
		Publisher: PublisherConfig{
			Enabled:        false,
			Servers:        []string{"nats://localhost:4222"},
			Subject:        "voicetranslation",
			ConnectTimeout: 2000,
		},
	}
}

func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return cfg, fmt.Errorf("config file not found: %w", err)
			}
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	overrideString(&cfg.ProjectID, "VT_PROJECT_ID")
	overrideString(&cfg.LocationID, "VT_LOCATION_ID")
	overrideString(&cfg.GlossaryID, "VT_GLOSSARY_ID")
	overrideString(&cfg.MimeType, "VT_MIME_TYPE")
	overrideString(&cfg.BundleIdentifier, "VT_BUNDLE_IDENTIFIER")
	overrideString(&cfg.AccessToken, "VT_ACCESS_TOKEN")
	overrideString(&cfg.LogLevel, "VT_LOG_LEVEL")
	overrideString(&cfg.Speech.Endpoint, "VT_SPEECH_ENDPOINT")
	overrideInt(&cfg.Speech.SampleRate, "VT_SPEECH_SAMPLE_RATE")
	overrideString(&cfg.Speech.LanguageCode, "VT_SPEECH_LANGUAGE_CODE")
	overrideInt(&cfg.Speech.MaxAlternatives, "VT_SPEECH_MAX_ALTERNATIVES")
	overrideBool(&cfg.Speech.WordTimeOffsets, "VT_SPEECH_WORD_TIME_OFFSETS")
	overrideBool(&cfg.Speech.InterimResults, "VT_SPEECH_INTERIM_RESULTS")
	overrideBool(&cfg.Speech.SingleUtterance, "VT_SPEECH_SINGLE_UTTERANCE")
	overrideInt(&cfg.Speech.MaxStreamDuration, "VT_SPEECH_MAX_STREAM_DURATION_MS")
	overrideString(&cfg.Translation.Endpoint, "VT_TRANSLATION_ENDPOINT")
	overrideString(&cfg.Preferences.Path, "VT_PREFERENCES_PATH")
	overrideBool(&cfg.Publisher.Enabled, "VT_PUBLISHER_ENABLED")
	overrideStringSlice(&cfg.Publisher.Servers, "VT_PUBLISHER_SERVERS")
	overrideString(&cfg.Publisher.Subject, "VT_PUBLISHER_SUBJECT")
	overrideString(&cfg.Publisher.Token, "VT_PUBLISHER_TOKEN")
	overrideString(&cfg.Publisher.Username, "VT_PUBLISHER_USERNAME")
	overrideString(&cfg.Publisher.Password, "VT_PUBLISHER_PASSWORD")
	overrideInt(&cfg.Publisher.ConnectTimeout, "VT_PUBLISHER_CONNECT_TIMEOUT_MS")
	overrideString(&cfg.Metrics.Bind, "VT_METRICS_BIND")
}

func overrideString(target *string, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok && strings.TrimSpace(value) != "" {
		*target = value
	}
}

func overrideInt(target *int, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			*target = parsed
		}
	}
}

func overrideBool(target *bool, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			*target = parsed
		}
	}
}

func overrideStringSlice(target *[]string, envKey string) {
	value, ok := os.LookupEnv(envKey)
	if !ok || strings.TrimSpace(value) == "" {
		return
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) > 0 {
		*target = out
	}
}

// Validate checks the values that do not depend on the command being run.
// The project ID is checked by the commands that need it.
func (c Config) Validate() error {
	if c.Speech.SampleRate <= 0 {
		return errors.New("speech.sample_rate must be positive")
	}
	if c.Speech.LanguageCode == "" {
		return errors.New("speech.language_code must be specified")
	}
	if c.Speech.MaxAlternatives < 0 || c.Speech.MaxAlternatives > 30 {
		return errors.New("speech.max_alternatives must be between 0 and 30")
	}
	if c.Speech.MaxStreamDuration < 0 {
		return errors.New("speech.max_stream_duration_ms must not be negative")
	}
	if c.Speech.Endpoint == "" {
		return errors.New("speech.endpoint must be specified")
	}
	if c.Translation.Endpoint == "" {
		return errors.New("translation.endpoint must be specified")
	}
	if c.MimeType != "text/plain" && c.MimeType != "text/html" {
		return fmt.Errorf("mime_type must be text/plain or text/html, got %q", c.MimeType)
	}
	if c.Publisher.Enabled {
		if len(c.Publisher.Servers) == 0 {
			return errors.New("publisher.servers must not be empty when the publisher is enabled")
		}
		if c.Publisher.Subject == "" {
			return errors.New("publisher.subject must be specified when the publisher is enabled")
		}
	}
	return nil
}
