package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hekt/voice-translation/internal/actions/preference"
	"github.com/hekt/voice-translation/internal/actions/recognize"
	"github.com/hekt/voice-translation/internal/actions/translate"
	"github.com/hekt/voice-translation/internal/config"
)

func NewRecognizeCommand() *cli.Command {
	return &cli.Command{
		Name:  "recognize",
		Usage: "recognize voice from stdin and optionally translate it",
		Flags: commonFlags(
			outputFlag,
			translationOutputFlag,
			bufferSizeFlag,
			inactivityTimeoutFlag,
			speechLanguageFlag,
			translateFlag,
			sourceFlag,
			targetFlag,
			glossaryFlag,
			glossaryIDFlag,
			publishFlag,
			metricsAddrFlag,
		),
		Action: func(cCtx *cli.Context) error {
			cfg, authorizer, err := setup(cCtx)
			if err != nil {
				return err
			}
			startMetrics(cCtx.Context, cfg)

			options := make([]recognize.Option, 0, 8)
			if cCtx.IsSet(outputFlag.Name) {
				options = append(options, recognize.WithOutputFilePath(cCtx.String(outputFlag.Name)))
			}
			if cCtx.IsSet(translationOutputFlag.Name) {
				options = append(options, recognize.WithTranslationFilePath(cCtx.String(translationOutputFlag.Name)))
			}
			if cCtx.IsSet(bufferSizeFlag.Name) {
				options = append(options, recognize.WithBufferSize(cCtx.Int(bufferSizeFlag.Name)))
			}
			if cCtx.IsSet(inactivityTimeoutFlag.Name) {
				options = append(options, recognize.WithInactivityTimeout(cCtx.Duration(inactivityTimeoutFlag.Name)))
			}
			if cCtx.Bool(translateFlag.Name) {
				options = append(options, recognize.WithTranslation(true))
			}
			if cCtx.IsSet(sourceFlag.Name) {
				options = append(options, recognize.WithSourceLanguageCode(cCtx.String(sourceFlag.Name)))
			}
			if cCtx.IsSet(targetFlag.Name) {
				options = append(options, recognize.WithTargetLanguageCode(cCtx.String(targetFlag.Name)))
			}
			if cCtx.IsSet(glossaryFlag.Name) {
				options = append(options, recognize.WithGlossary(cCtx.Bool(glossaryFlag.Name)))
			}

			return recognize.Run(
				cCtx.Context,
				recognize.Args{
					Config:     cfg,
					Authorizer: authorizer,
				},
				options...,
			)
		},
	}
}

func NewTranslateCommand() *cli.Command {
	return &cli.Command{
		Category:  "translate",
		Name:      "translate",
		Usage:     "translate text",
		ArgsUsage: "<text>",
		Flags: commonFlags(
			sourceFlag,
			targetFlag,
			glossaryFlag,
			glossaryIDFlag,
		),
		Action: func(cCtx *cli.Context) error {
			cfg, authorizer, err := setup(cCtx)
			if err != nil {
				return err
			}

			settings := translate.Settings{
				SourceLanguageCode: cCtx.String(sourceFlag.Name),
				TargetLanguageCode: cCtx.String(targetFlag.Name),
			}
			if cCtx.IsSet(glossaryFlag.Name) {
				glossary := cCtx.Bool(glossaryFlag.Name)
				settings.Glossary = &glossary
			}

			return translate.Run(
				cCtx.Context,
				translate.Args{Config: cfg, Authorizer: authorizer},
				textArg(cCtx),
				settings,
			)
		},
	}
}

func NewDetectCommand() *cli.Command {
	return &cli.Command{
		Category:  "translate",
		Name:      "detect",
		Usage:     "detect the language of text",
		ArgsUsage: "<text>",
		Flags:     commonFlags(),
		Action: func(cCtx *cli.Context) error {
			cfg, authorizer, err := setup(cCtx)
			if err != nil {
				return err
			}
			return translate.Detect(
				cCtx.Context,
				translate.Args{Config: cfg, Authorizer: authorizer},
				textArg(cCtx),
			)
		},
	}
}

func NewLanguagesCommand() *cli.Command {
	return &cli.Command{
		Category: "translate",
		Name:     "languages",
		Usage:    "list supported languages for Translation API",
		Flags:    commonFlags(),
		Action: func(cCtx *cli.Context) error {
			cfg, authorizer, err := setup(cCtx)
			if err != nil {
				return err
			}
			return translate.Languages(cCtx.Context, translate.Args{Config: cfg, Authorizer: authorizer})
		},
	}
}

func NewGlossariesCommand() *cli.Command {
	return &cli.Command{
		Category: "translate",
		Name:     "glossaries",
		Usage:    "list glossaries for Translation API",
		Flags:    commonFlags(),
		Action: func(cCtx *cli.Context) error {
			cfg, authorizer, err := setup(cCtx)
			if err != nil {
				return err
			}
			return translate.Glossaries(cCtx.Context, translate.Args{Config: cfg, Authorizer: authorizer})
		},
	}
}

func NewPreferencesCommand() *cli.Command {
	preferencesFlags := []cli.Flag{configFlag, debugFlag}

	return &cli.Command{
		Category: "manage",
		Name:     "preferences",
		Usage:    "show or update the stored translation preferences",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "show the preferences",
				Flags: preferencesFlags,
				Action: func(cCtx *cli.Context) error {
					cfg, err := setupLocal(cCtx)
					if err != nil {
						return err
					}
					return preference.Show(cCtx.Context, cfg.Preferences.Path, os.Stdout)
				},
			},
			{
				Name:  "set",
				Usage: "update the preferences",
				Flags: append(preferencesFlags, sourceFlag, targetFlag, glossaryFlag),
				Action: func(cCtx *cli.Context) error {
					cfg, err := setupLocal(cCtx)
					if err != nil {
						return err
					}

					args := preference.SetArgs{
						SourceLanguageCode: cCtx.String(sourceFlag.Name),
						TargetLanguageCode: cCtx.String(targetFlag.Name),
					}
					if cCtx.IsSet(glossaryFlag.Name) {
						glossary := cCtx.Bool(glossaryFlag.Name)
						args.Glossary = &glossary
					}
					if err := preference.Set(cCtx.Context, cfg.Preferences.Path, args); err != nil {
						return err
					}

					fmt.Println("Preferences updated")

					return nil
				},
			},
			{
				Name:  "reset",
				Usage: "restore the default preferences",
				Flags: preferencesFlags,
				Action: func(cCtx *cli.Context) error {
					cfg, err := setupLocal(cCtx)
					if err != nil {
						return err
					}
					if err := preference.Reset(cCtx.Context, cfg.Preferences.Path); err != nil {
						return err
					}

					fmt.Println("Preferences reset")

					return nil
				},
			},
		},
	}
}

// setupLocal prepares the commands that do not call any Cloud API.
func setupLocal(cCtx *cli.Context) (config.Config, error) {
	cfg, err := loadConfig(cCtx)
	if err != nil {
		return cfg, err
	}
	if err := setLogger(cCtx, cfg); err != nil {
		return cfg, fmt.Errorf("failed to set logger: %w", err)
	}
	return cfg, nil
}

func textArg(cCtx *cli.Context) string {
	return strings.TrimSpace(strings.Join(cCtx.Args().Slice(), " "))
}
