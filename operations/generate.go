package operations

import (
	"github.com/katalvlaran/natbreaks/dataset"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

const (
	kindUniform  = "uniform"
	kindClusters = "clusters"

	sampleMin = 0.0
	sampleMax = 10.0

	clusterSigma = 0.4
)

// clusterCenters spreads five clusters across [sampleMin, sampleMax).
var clusterCenters = []float64{1, 3, 5, 7, 9}

// Generate returns the ./natbreaks generate command, which writes a
// reproducible sample to a json file for use with the breaks command.
func Generate() cli.Command {
	return cli.Command{
		Name:  "generate",
		Usage: "write a seeded sample of observations to a json file",
		Flags: mergeFlags(generateFlags(), seedFlags(), configFlags()),
		Action: func(c *cli.Context) error {
			seed := c.Int64(seedFlag)
			if path := c.String(configFlag); path != "" && !c.IsSet(seedFlag) {
				conf := solverConfig{}
				if err := readConfigFile(path, &conf); err != nil {
					return errors.WithStack(err)
				}
				seed = conf.Seed
			}

			data, err := sample(c.String(kindFlag), c.Int(countFlag), seed)
			if err != nil {
				return errors.WithStack(err)
			}

			output := c.String(outputFlag)
			if err := dataset.Save(output, data); err != nil {
				return errors.Wrap(err, "saving sample")
			}

			grip.Info(message.Fields{
				"op":     "generate",
				"kind":   c.String(kindFlag),
				"n":      len(data),
				"seed":   seed,
				"output": output,
			})

			return nil
		},
	}
}

// sample builds n observations of the given kind.
func sample(kind string, n int, seed int64) ([]float64, error) {
	if n <= 0 {
		return nil, errors.Errorf("n must be positive, got %d", n)
	}

	switch kind {
	case kindUniform:
		return dataset.Uniform(n, sampleMin, sampleMax, seed), nil
	case kindClusters:
		return dataset.Clusters(clusterCenters, n, clusterSigma, seed), nil
	default:
		return nil, errors.Errorf("unknown sample kind '%s'", kind)
	}
}
