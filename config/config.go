/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config loads the settings of a population run.
//
// Values are layered: Default, then an optional YAML file, then
// environment variables prefixed with BINPOP_ (for example
// BINPOP_SIZE=1000 or BINPOP_FINAL_KSTAR1=13,14).
package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/popsynth/binpop/independent"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "BINPOP_"

// Config holds the settings of a population run.
type Config struct {
	// Sampler is the registry name of the sampler.
	Sampler string `yaml:"sampler" env:"SAMPLER"`

	FinalKstar1  []int   `yaml:"final_kstar1" env:"FINAL_KSTAR1"`
	FinalKstar2  []int   `yaml:"final_kstar2" env:"FINAL_KSTAR2"`
	PrimaryModel string  `yaml:"primary_model" env:"PRIMARY_MODEL"`
	EccModel     string  `yaml:"ecc_model" env:"ECC_MODEL"`
	SFHModel     string  `yaml:"sfh_model" env:"SFH_MODEL"`
	BinaryModel  string  `yaml:"binary_model" env:"BINARY_MODEL"`
	ComponentAge float64 `yaml:"component_age" env:"COMPONENT_AGE"`
	Metallicity  float64 `yaml:"metallicity" env:"METALLICITY"`
	Size         int     `yaml:"size" env:"SIZE"`

	// Populations is the number of independent populations to draw.
	Populations int `yaml:"populations" env:"POPULATIONS"`
	// Workers limits the populations drawn at once; 0 means no limit.
	Workers int `yaml:"workers" env:"WORKERS"`
	// Seed of the random streams; 0 picks a random one.
	Seed int64 `yaml:"seed" env:"SEED"`

	MaxMultiplier int `yaml:"max_multiplier" env:"MAX_MULTIPLIER"`
	MaxDraws      int `yaml:"max_draws" env:"MAX_DRAWS"`

	// Output is the SQLite file populations are written to.
	// Nothing is written when empty.
	Output string `yaml:"output" env:"OUTPUT"`
}

// Default returns the settings of a Milky Way thin disk run:
// constant star formation over 10 Gyr at solar metallicity.
func Default() Config {
	all := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}
	return Config{
		Sampler:       independent.Name,
		FinalKstar1:   all,
		FinalKstar2:   append([]int(nil), all...),
		PrimaryModel:  independent.Kroupa93.String(),
		EccModel:      independent.Thermal.String(),
		SFHModel:      independent.Const.String(),
		BinaryModel:   independent.Half.String(),
		ComponentAge:  10000,
		Metallicity:   0.02,
		Size:          10000,
		Populations:   1,
		MaxMultiplier: independent.DefaultRetryPolicy.MaxMultiplier,
		MaxDraws:      independent.DefaultRetryPolicy.MaxDraws,
	}
}

// Load returns Default overlaid with the YAML file at path, if path is
// not empty, and with the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrap(err, "read config file")
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "parse config file %s", path)
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads prefixed environment variables into target.
// Unset variables leave the target untouched.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return errors.Wrap(err, "parse env")
	}
	return nil
}

// Validate checks for invalid configuration values.
func (c Config) Validate() error {
	if c.Sampler == "" {
		return errors.New("sampler must be set")
	}
	if _, err := c.Params(); err != nil {
		return err
	}
	if c.Size <= 0 {
		return errors.Errorf("size must be > 0, got %d", c.Size)
	}
	if c.ComponentAge < 0 {
		return errors.Errorf("component_age must be >= 0, got %g", c.ComponentAge)
	}
	if c.Metallicity <= 0 {
		return errors.Errorf("metallicity must be > 0, got %g", c.Metallicity)
	}
	if c.Populations <= 0 {
		return errors.Errorf("populations must be > 0, got %d", c.Populations)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.MaxMultiplier < 1 {
		return errors.Errorf("max_multiplier must be >= 1, got %d", c.MaxMultiplier)
	}
	if c.MaxDraws < c.Size {
		return errors.Errorf("max_draws (%d) should be >= size (%d)", c.MaxDraws, c.Size)
	}
	return nil
}

// Params converts the model names into sampler parameters.
func (c Config) Params() (independent.Params, error) {
	primary, err := independent.ParseMassModel(c.PrimaryModel)
	if err != nil {
		return independent.Params{}, err
	}
	ecc, err := independent.ParseEccModel(c.EccModel)
	if err != nil {
		return independent.Params{}, err
	}
	sfh, err := independent.ParseSFHModel(c.SFHModel)
	if err != nil {
		return independent.Params{}, err
	}
	binary, err := independent.ParseBinaryModel(c.BinaryModel)
	if err != nil {
		return independent.Params{}, err
	}

	return independent.Params{
		FinalKstar1:  c.FinalKstar1,
		FinalKstar2:  c.FinalKstar2,
		PrimaryModel: primary,
		EccModel:     ecc,
		SFHModel:     sfh,
		ComponentAge: c.ComponentAge,
		Metallicity:  c.Metallicity,
		Size:         c.Size,
		BinaryModel:  binary,
	}, nil
}

// RetryPolicy returns the oversampling bounds.
func (c Config) RetryPolicy() independent.RetryPolicy {
	return independent.RetryPolicy{
		MaxMultiplier: c.MaxMultiplier,
		MaxDraws:      c.MaxDraws,
	}
}
