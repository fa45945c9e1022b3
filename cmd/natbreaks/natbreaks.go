package main

import (
	"os"

	"github.com/katalvlaran/natbreaks/operations"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/level"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func main() {
	app := buildApp()
	err := app.Run(os.Args)
	grip.EmergencyFatal(err)
}

func buildApp() *cli.App {
	app := cli.NewApp()

	app.Name = "natbreaks"
	app.Usage = "Fisher-Jenks natural breaks classification"
	app.Version = "0.1.0"

	app.Commands = []cli.Command{
		operations.Breaks(),
		operations.Generate(),
		operations.Bench(),
	}

	// Global options, independent from specific sub commands.
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "level",
			Value: "info",
			Usage: "Specify lowest visible loglevel as string: 'emergency|alert|critical|error|warning|notice|info|debug'",
		},
	}

	app.Before = func(c *cli.Context) error {
		return errors.WithStack(loggingSetup(app.Name, c.String("level")))
	}

	return app
}

// loggingSetup names the process-wide grip sender and lowers or raises its
// threshold to the --level value. Unknown level names are rejected rather
// than silently muting every message.
func loggingSetup(name, logLevel string) error {
	threshold := level.FromString(logLevel)
	if threshold == level.Invalid {
		return errors.Errorf("unknown log level %q", logLevel)
	}

	sender := grip.GetSender()
	sender.SetName(name)
	lvl := sender.Level()
	lvl.Threshold = threshold

	return errors.Wrapf(sender.SetLevel(lvl), "set %s threshold", logLevel)
}
