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

package estimator

import "time"

//Config is the configuration of a Client. The zero value is not useful, start from DefaultConfig.
type Config struct {
	//Addr is the host:port where the estimator listens.
	Addr string `yaml:"addr" validate:"required,hostname_port"`
	//Name goes in the source of every reaction obtained from the estimator.
	Name        string        `yaml:"name" validate:"required"`
	DialTimeout time.Duration `yaml:"dial_timeout" validate:"gt=0"`
	//IdleTimeout is the longest wait for new bytes while reading a response. 0 waits forever.
	IdleTimeout time.Duration `yaml:"idle_timeout" validate:"gte=0"`
	//DumpDir, if set, gets a zstd-compressed copy of every response that can't be read.
	DumpDir string        `yaml:"dump_dir"`
	Breaker BreakerConfig `yaml:"breaker"`
}

//BreakerConfig configures the circuit breaker around the estimator connection.
type BreakerConfig struct {
	Enabled bool `yaml:"enabled"`
	//MaxRequests allowed through while half-open.
	MaxRequests uint32 `yaml:"max_requests" validate:"gte=1"`
	//Interval after which the failure counts are cleared while closed. 0 never clears them.
	Interval time.Duration `yaml:"interval" validate:"gte=0"`
	//Timeout is how long the breaker stays open before letting a request through.
	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
	//MinRequests before the failure ratio is considered.
	MinRequests      uint32  `yaml:"min_requests" validate:"gte=1"`
	FailureThreshold float64 `yaml:"failure_threshold" validate:"gt=0,lte=1"`
}

//DefaultConfig returns the configuration for an estimator on the local host, port 5000.
func DefaultConfig() Config {
	return Config{
		Addr:        "127.0.0.1:5000",
		Name:        "RMG-Java",
		DialTimeout: 10 * time.Second,
		IdleTimeout: 60 * time.Second,
		Breaker: BreakerConfig{
			Enabled:          true,
			MaxRequests:      1,
			Interval:         60 * time.Second,
			Timeout:          30 * time.Second,
			MinRequests:      3,
			FailureThreshold: 0.6,
		},
	}
}
