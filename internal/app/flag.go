package app

import "github.com/urfave/cli/v2"

var configFlag = &cli.StringFlag{
	Name:    "config",
	Aliases: []string{"c"},
	Usage:   "Config file path",
	EnvVars: []string{"VT_CONFIG"},
}

var projectFlag = &cli.StringFlag{
	Name:  "project",
	Usage: "Google Cloud Project ID",
}

var locationFlag = &cli.StringFlag{
	Name:  "location",
	Usage: "Translation location ID",
}

var tokenFlag = &cli.StringFlag{
	Name:  "token",
	Usage: "OAuth2 access token sent as the bearer token, application default credentials when empty",
}

var bundleIDFlag = &cli.StringFlag{
	Name:  "bundle-id",
	Usage: "Bundle identifier sent with every request",
}

var debugFlag = &cli.BoolFlag{
	Name:  "debug",
	Usage: "Enable debug log",
	Value: false,
}

var metricsAddrFlag = &cli.StringFlag{
	Name:  "metrics-addr",
	Usage: "Address to serve Prometheus metrics on, disabled when empty",
}

func commonFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		configFlag,
		projectFlag,
		locationFlag,
		tokenFlag,
		bundleIDFlag,
		debugFlag,
	}, flags...)
}

//
// Recognize flags
//

var outputFlag = &cli.StringFlag{
	Name:  "output",
	Usage: "Output file path",
}

var translationOutputFlag = &cli.StringFlag{
	Name:  "translation-output",
	Usage: "Translation output file path",
}

var bufferSizeFlag = &cli.IntFlag{
	Name:  "buffersize",
	Usage: "Buffer size bytes",
}

var inactivityTimeoutFlag = &cli.DurationFlag{
	Name:  "inactivity-timeout",
	Usage: "Stop when no response arrives for the duration, 0 to disable",
}

var speechLanguageFlag = &cli.StringFlag{
	Name:    "language-code",
	Aliases: []string{"l"},
	Usage:   "Language code of the speech",
}

var translateFlag = &cli.BoolFlag{
	Name:  "translate",
	Usage: "Translate every final result",
}

var publishFlag = &cli.BoolFlag{
	Name:  "publish",
	Usage: "Publish results to NATS",
}

//
// Translation flags
//

var sourceFlag = &cli.StringFlag{
	Name:    "source",
	Aliases: []string{"s"},
	Usage:   "Source language code, the stored preference when empty",
}

var targetFlag = &cli.StringFlag{
	Name:    "target",
	Aliases: []string{"t"},
	Usage:   "Target language code, the stored preference when empty",
}

var glossaryFlag = &cli.BoolFlag{
	Name:  "glossary",
	Usage: "Use the configured glossary, the stored preference when unset",
}

var glossaryIDFlag = &cli.StringFlag{
	Name:  "glossary-id",
	Usage: "Glossary ID",
}
