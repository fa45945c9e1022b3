// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v2"
)

// document is the keyed file layout: {"values": [...]}.
type document struct {
	Values []float64 `yaml:"values" json:"values"`
}

// Load reads observations from a JSON or YAML file. Both a bare array
// ([0.1, 2.5, ...]) and a keyed document ({values: [...]}) are accepted.
// Values are returned in file order; sort them before solving.
func Load(path string) ([]float64, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.Errorf("file %s does not exist", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid file: %s", path)
	}

	return Parse(raw)
}

// Parse decodes observations from JSON or YAML bytes.
func Parse(raw []byte) ([]float64, error) {
	var values []float64
	if err := yaml.Unmarshal(raw, &values); err == nil {
		if values == nil {
			values = []float64{}
		}
		return values, nil
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "problem parsing yaml/json observations")
	}
	if doc.Values == nil {
		return nil, errors.New("no observations: expected an array or a 'values' key")
	}

	return doc.Values, nil
}

// LoadAll loads every path and concatenates the values in argument order.
// All failures are reported together; no values are returned on error.
func LoadAll(paths ...string) ([]float64, error) {
	if len(paths) == 0 {
		return nil, errors.New("no input files")
	}

	var (
		out []float64
		err error
	)
	for _, p := range paths {
		values, loadErr := Load(p)
		if loadErr != nil {
			err = multierr.Append(err, loadErr)
			continue
		}
		out = append(out, values...)
	}
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Save writes data to path as a JSON array.
func Save(path string, data []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	if data == nil {
		data = []float64{}
	}
	if err = json.NewEncoder(f).Encode(data); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}

	return nil
}
