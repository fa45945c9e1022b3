package operations

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/natbreaks/dataset"
	"github.com/katalvlaran/natbreaks/jenks"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// Breaks returns the ./natbreaks breaks command, which loads observations
// from one or more json/yaml files, sorts them, and prints the optimal
// class breaks as indices and as values.
func Breaks() cli.Command {
	return cli.Command{
		Name:      "breaks",
		Usage:     "compute Fisher-Jenks natural breaks for observations in json/yaml files",
		ArgsUsage: "FILE [FILE...]",
		Flags:     mergeFlags(solverFlags(), configFlags()),
		Action: func(c *cli.Context) error {
			conf, err := resolveConfig(c)
			if err != nil {
				return errors.WithStack(err)
			}
			if c.NArg() == 0 {
				return errors.New("must specify at least one input file")
			}

			raw, err := dataset.LoadAll(c.Args()...)
			if err != nil {
				return errors.Wrap(err, "loading observations")
			}
			data := dataset.Sorted(raw)

			opts := jenks.DefaultOptions()
			opts.Workers = conf.Workers

			startAt := time.Now()
			res, err := jenks.Solve(data, conf.Classes, opts)
			if err != nil {
				return errors.Wrapf(err, "computing %d classes over %d observations", conf.Classes, len(data))
			}
			grip.Info(message.Fields{
				"op":       "breaks",
				"n":        len(data),
				"classes":  conf.Classes,
				"workers":  conf.Workers,
				"dur_secs": time.Since(startAt).Seconds(),
			})

			return errors.WithStack(printBreaks(c.App.Writer, data, res))
		},
	}
}

// printBreaks writes the report: zero-based starts of classes 2..k,
// 1-based class ends, class bounds (min followed by each class maximum),
// total cost and GVF.
func printBreaks(w io.Writer, data []float64, res jenks.Result) error {
	bounds, err := res.Values(data)
	if err != nil {
		return errors.WithStack(err)
	}
	gvf, err := res.GVF(data)
	if err != nil {
		return errors.WithStack(err)
	}

	var out strings.Builder
	out.WriteString("Class starts:\n")
	out.WriteString(joinInts(jenks.LowerBounds(res.Breaks)) + "\n")
	out.WriteString("Class ends:\n")
	out.WriteString(joinInts(res.Breaks) + "\n")
	out.WriteString("Class bounds:\n")
	out.WriteString(joinFloats(bounds) + "\n")
	fmt.Fprintf(&out, "Cost: %s\n", formatFloat(res.Cost))
	fmt.Fprintf(&out, "GVF: %.6f\n", gvf)

	_, err = io.WriteString(w, out.String())

	return err
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ", ")
}

func joinFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatFloat(v)
	}

	return strings.Join(parts, ", ")
}
