package operations

import (
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	yaml "gopkg.in/yaml.v2"
)

const (
	defaultClasses = 5
	defaultWorkers = 1
)

// solverConfig holds the settings shared by the commands. Values come from
// flag defaults, then an optional yaml file, then explicitly set flags.
type solverConfig struct {
	Classes int   `yaml:"classes"`
	Workers int   `yaml:"workers"`
	Seed    int64 `yaml:"seed"`
}

// readConfigFile decodes path into conf, leaving absent keys untouched.
func readConfigFile(path string, conf *solverConfig) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return errors.Errorf("file %s does not exist", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "invalid file: %s", path)
	}

	if err := yaml.UnmarshalStrict(data, conf); err != nil {
		return errors.Wrapf(err, "problem parsing yaml from file %s", path)
	}

	return nil
}

// resolveConfig merges flag defaults, the config file and explicit flags.
func resolveConfig(c *cli.Context) (solverConfig, error) {
	conf := solverConfig{
		Classes: c.Int(classesFlag),
		Workers: c.Int(workersFlag),
		Seed:    c.Int64(seedFlag),
	}

	if path := c.String(configFlag); path != "" {
		fromFile := conf
		if err := readConfigFile(path, &fromFile); err != nil {
			return solverConfig{}, errors.WithStack(err)
		}
		if !c.IsSet(classesFlag) {
			conf.Classes = fromFile.Classes
		}
		if !c.IsSet(workersFlag) {
			conf.Workers = fromFile.Workers
		}
		if !c.IsSet(seedFlag) {
			conf.Seed = fromFile.Seed
		}
	}

	if conf.Classes < 1 {
		return solverConfig{}, errors.Errorf("classes must be positive, got %d", conf.Classes)
	}
	if conf.Workers < 0 {
		return solverConfig{}, errors.Errorf("workers must not be negative, got %d", conf.Workers)
	}

	return conf, nil
}
