/*
 * config.go, part of gokin.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package config loads the settings of gokin from defaults, an optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/rmera/gokin/estimator"
)

//Environment variables that override the file.
const (
	EnvEstimatorAddr        = "GOKIN_ESTIMATOR_ADDR"
	EnvEstimatorDialTimeout = "GOKIN_ESTIMATOR_DIAL_TIMEOUT"
	EnvEstimatorIdleTimeout = "GOKIN_ESTIMATOR_IDLE_TIMEOUT"
	EnvLogLevel             = "GOKIN_LOG_LEVEL"
	EnvDumpDir              = "GOKIN_DUMP_DIR"
)

//Config holds all the settings.
type Config struct {
	Estimator estimator.Config `yaml:"estimator"`
	Log       LogConfig        `yaml:"log"`
}

//LogConfig sets up the logger.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	//Development gives human-readable output
	Development bool `yaml:"development"`
}

//Default returns the settings used when nothing else is given.
func Default() *Config {
	return &Config{
		Estimator: estimator.DefaultConfig(),
		Log:       LogConfig{Level: "info"},
	}
}

var validate = validator.New()

//Load reads the configuration. The defaults are overwritten by the YAML file at path, if path is not
//empty, and then by the environment. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	if err := cfg.fromEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (C *Config) fromEnv() error {
	if v, ok := os.LookupEnv(EnvEstimatorAddr); ok {
		C.Estimator.Addr = v
	}
	if v, ok := os.LookupEnv(EnvDumpDir); ok {
		C.Estimator.DumpDir = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		C.Log.Level = strings.ToLower(v)
	}
	durations := []struct {
		env string
		dst *time.Duration
	}{
		{EnvEstimatorDialTimeout, &C.Estimator.DialTimeout},
		{EnvEstimatorIdleTimeout, &C.Estimator.IdleTimeout},
	}
	for _, d := range durations {
		v, ok := os.LookupEnv(d.env)
		if !ok {
			continue
		}
		t, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", d.env, err)
		}
		*d.dst = t
	}
	return nil
}

//Validate checks the settings, and returns all the problems found in one error.
func (C *Config) Validate() error {
	err := validate.Struct(C)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fieldMessage(e))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func fieldMessage(e validator.FieldError) string {
	field := strings.TrimPrefix(e.Namespace(), "Config.")
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "hostname_port":
		return fmt.Sprintf("%s must be host:port, got %q", field, e.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "gt", "gte", "lte":
		return fmt.Sprintf("%s is out of range (%s %s)", field, e.Tag(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

//NewLogger builds the logger described by cfg.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
