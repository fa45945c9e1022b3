package operations

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

////////////////////////////////////////////////////////////////////////
//
// Flag Name Constants

const (
	configFlag = "config"
	outputFlag = "output"

	classesFlag = "classes"
	workersFlag = "workers"

	kindFlag  = "kind"
	countFlag = "n"
	seedFlag  = "seed"
	sizesFlag = "sizes"

	configFileEnv = "NATBREAKS_CONFIG"
)

////////////////////////////////////////////////////////////////////////
//
// Utility Functions

func joinFlagNames(ids ...string) string { return strings.Join(ids, ", ") }

func mergeFlags(in ...[]cli.Flag) []cli.Flag {
	out := []cli.Flag{}

	for idx := range in {
		out = append(out, in[idx]...)
	}

	return out
}

// parseSizes turns "10,1000,10000" into positive ints.
func parseSizes(in string) ([]int, error) {
	out := []int{}
	for _, part := range strings.Split(in, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid size '%s'", part)
		}
		if n <= 0 {
			return nil, errors.Errorf("size must be positive, got %d", n)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, errors.New("no sizes specified")
	}

	return out, nil
}

////////////////////////////////////////////////////////////////////////
//
// Flag Groups

func configFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags, cli.StringFlag{
		Name:   configFlag,
		Usage:  "path to a yaml file with default classes/workers/seed",
		EnvVar: configFileEnv,
	})
}

func solverFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags,
		cli.IntFlag{
			Name:  joinFlagNames(classesFlag, "k"),
			Usage: "number of classes to split the observations into",
			Value: defaultClasses,
		},
		cli.IntFlag{
			Name:  workersFlag,
			Usage: "goroutines used to fill each DP column (1 runs sequentially)",
			Value: defaultWorkers,
		})
}

func seedFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags, cli.Int64Flag{
		Name:  seedFlag,
		Usage: "random seed for generated samples (0 selects the fixed default)",
	})
}

func generateFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags,
		cli.StringFlag{
			Name:  kindFlag,
			Usage: "sample kind: 'uniform' or 'clusters'",
			Value: kindUniform,
		},
		cli.IntFlag{
			Name:  countFlag,
			Usage: "number of observations (per cluster for 'clusters')",
			Value: 1000,
		},
		cli.StringFlag{
			Name:  joinFlagNames(outputFlag, "o"),
			Usage: "path to the output file",
			Value: "sample.json",
		})
}

func benchFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags, cli.StringFlag{
		Name:  sizesFlag,
		Usage: "comma separated observation counts to time",
		Value: "10,1000,10000",
	})
}
