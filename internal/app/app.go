package app

import (
	"github.com/urfave/cli/v2"
)

func New() *cli.App {
	return &cli.App{
		Name:  "voice-translation",
		Usage: "recognize speech and translate it with Google Cloud",
		Commands: []*cli.Command{
			NewRecognizeCommand(),
			NewTranslateCommand(),
			NewDetectCommand(),
			NewLanguagesCommand(),
			NewGlossariesCommand(),
			NewPreferencesCommand(),
		},
	}
}
