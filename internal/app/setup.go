package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/oauth2"

	"github.com/hekt/voice-translation/internal/auth"
	"github.com/hekt/voice-translation/internal/config"
	"github.com/hekt/voice-translation/internal/logger"
	"github.com/hekt/voice-translation/internal/metrics"
)

// loadConfig reads the config file and applies the flags set on the command line.
func loadConfig(cCtx *cli.Context) (config.Config, error) {
	cfg, err := config.Load(cCtx.String(configFlag.Name))
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	overrideString := func(target *string, name string) {
		if cCtx.IsSet(name) {
			*target = cCtx.String(name)
		}
	}
	overrideString(&cfg.ProjectID, projectFlag.Name)
	overrideString(&cfg.LocationID, locationFlag.Name)
	overrideString(&cfg.AccessToken, tokenFlag.Name)
	overrideString(&cfg.BundleIdentifier, bundleIDFlag.Name)
	overrideString(&cfg.GlossaryID, glossaryIDFlag.Name)
	overrideString(&cfg.Metrics.Bind, metricsAddrFlag.Name)
	overrideString(&cfg.Speech.LanguageCode, speechLanguageFlag.Name)
	if cCtx.IsSet(publishFlag.Name) {
		cfg.Publisher.Enabled = cCtx.Bool(publishFlag.Name)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setLogger writes debug logs to a file so they do not mix with the interim
// results on the terminal. Other levels go to stderr.
func setLogger(cCtx *cli.Context, cfg config.Config) error {
	if cCtx.Bool(debugFlag.Name) {
		l, err := logger.NewFileLogger(
			fmt.Sprintf("output/log-%d.log", time.Now().Unix()),
			slog.LevelDebug,
		)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		slog.SetDefault(l)
		return nil
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(logger.New(os.Stderr, level))
	return nil
}

func newAuthorizer(ctx context.Context, cfg config.Config) (*auth.Authorizer, error) {
	var ts oauth2.TokenSource
	if cfg.AccessToken != "" {
		ts = auth.StaticTokenSource(cfg.AccessToken)
	} else {
		var err error
		ts, err = auth.DefaultTokenSource(ctx)
		if err != nil {
			return nil, err
		}
	}

	return &auth.Authorizer{
		TokenSource:      ts,
		BundleIdentifier: cfg.BundleIdentifier,
	}, nil
}

// startMetrics serves metrics in the background until ctx is done.
func startMetrics(ctx context.Context, cfg config.Config) {
	if cfg.Metrics.Bind == "" {
		return
	}
	go func() {
		if err := metrics.Serve(ctx, cfg.Metrics.Bind); err != nil {
			slog.Error(fmt.Sprintf("failed to serve metrics: %v", err))
		}
	}()
}

// setup prepares what every command needs: configuration, logging and the
// request authorizer.
func setup(cCtx *cli.Context) (config.Config, *auth.Authorizer, error) {
	cfg, err := loadConfig(cCtx)
	if err != nil {
		return cfg, nil, err
	}
	if err := setLogger(cCtx, cfg); err != nil {
		return cfg, nil, fmt.Errorf("failed to set logger: %w", err)
	}

	authorizer, err := newAuthorizer(cCtx.Context, cfg)
	if err != nil {
		return cfg, nil, fmt.Errorf("failed to build authorizer: %w", err)
	}
	return cfg, authorizer, nil
}
