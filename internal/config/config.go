// Copyright ©2012 Dan Kortschak <dan.kortschak@adelaide.edu.au>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package config holds the run configuration of the height comparison driver.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid configuration")

// A Config describes a set of height comparison trials.
type Config struct {
	Trials  int   `yaml:"trials"`  // Number of trials to run.
	Size    int   `yaml:"size"`    // Number of values inserted per trial.
	Seed    int64 `yaml:"seed"`    // Random seed. Zero requests a time based seed.
	Workers int   `yaml:"workers"` // Number of trials run concurrently.
	Sorted  bool  `yaml:"sorted"`  // Insert values in ascending order.
}

// Default returns the configuration used by the original experiment: 100
// trials of 50000 random values.
func Default() Config {
	return Config{
		Trials:  100,
		Size:    50000,
		Workers: 1,
	}
}

// Load reads a YAML configuration from path. Fields absent from the file keep
// their default values. An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML configuration over the defaults and validates it.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, err
	}
	return c, c.Validate()
}

// Validate returns an error wrapping ErrInvalid if c cannot describe a run.
func (c Config) Validate() error {
	switch {
	case c.Trials < 1:
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalid, c.Trials)
	case c.Size < 1:
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalid, c.Size)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalid, c.Workers)
	}
	return nil
}

// Marshal returns the YAML encoding of c.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(&c)
}
