package operations

import (
	"fmt"
	"time"

	"github.com/katalvlaran/natbreaks/dataset"
	"github.com/katalvlaran/natbreaks/jenks"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// Bench returns the ./natbreaks bench command, which times the solver on
// uniform samples of increasing size.
func Bench() cli.Command {
	return cli.Command{
		Name:  "bench",
		Usage: "time the solver on seeded uniform samples",
		Flags: mergeFlags(solverFlags(), seedFlags(), benchFlags(), configFlags()),
		Action: func(c *cli.Context) error {
			conf, err := resolveConfig(c)
			if err != nil {
				return errors.WithStack(err)
			}
			sizes, err := parseSizes(c.String(sizesFlag))
			if err != nil {
				return errors.WithStack(err)
			}

			for _, n := range sizes {
				timing, err := timeSolve(n, conf)
				if err != nil {
					return errors.WithStack(err)
				}
				grip.Info(message.Fields{
					"op":       "bench",
					"n":        n,
					"classes":  conf.Classes,
					"workers":  conf.Workers,
					"dur_secs": timing.dur.Seconds(),
				})
				if _, err := fmt.Fprintf(c.App.Writer, "n=%d k=%d workers=%d dur=%s cost=%s\n",
					n, conf.Classes, conf.Workers, timing.dur, formatFloat(timing.cost)); err != nil {
					return errors.WithStack(err)
				}
			}

			return nil
		},
	}
}

type solveTiming struct {
	dur  time.Duration
	cost float64
}

// timeSolve runs one full solve on a fresh sample of n observations.
func timeSolve(n int, conf solverConfig) (solveTiming, error) {
	data := dataset.Uniform(n, sampleMin, sampleMax, conf.Seed)
	opts := jenks.DefaultOptions()
	opts.Workers = conf.Workers

	startAt := time.Now()
	res, err := jenks.Solve(data, conf.Classes, opts)
	if err != nil {
		return solveTiming{}, errors.Wrapf(err, "n=%d", n)
	}

	return solveTiming{dur: time.Since(startAt), cost: res.Cost}, nil
}
