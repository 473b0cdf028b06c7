/*
 * transport.go, part of gokin.
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

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const readChunk = 4096

func newBreaker(cfg BreakerConfig, logger *zap.Logger) *gobreaker.CircuitBreaker {
	if !cfg.Enabled {
		return nil
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "estimator",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("estimator circuit breaker changed state",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
}

//roundTrip does one exchange, through the breaker if there is one.
func (C *Client) roundTrip(req []byte) ([]byte, error) {
	if C.breaker == nil {
		return C.exchange(req)
	}
	out, err := C.breaker.Execute(func() (interface{}, error) {
		raw, err := C.exchange(req)
		if err != nil {
			return nil, err
		}
		return raw, nil
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %v", ErrBreakerOpen, err)
	}
	if err != nil {
		return nil, err
	}
	return out.([]byte), nil
}

//exchange connects to the estimator, sends req and reads until the estimator closes the
//connection. The connection is always closed before returning.
func (C *Client) exchange(req []byte) ([]byte, error) {
	dialer := net.Dialer{Timeout: C.cfg.DialTimeout}
	conn, err := dialer.Dial("tcp", C.cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOffline, err)
	}
	defer conn.Close()
	if _, err := conn.Write(req); err != nil {
		return nil, fmt.Errorf("%w: sending request: %v", ErrOffline, err)
	}
	var resp bytes.Buffer
	buf := make([]byte, readChunk)
	for {
		if C.cfg.IdleTimeout > 0 {
			if err := conn.SetReadDeadline(time.Now().Add(C.cfg.IdleTimeout)); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrOffline, err)
			}
		}
		n, err := conn.Read(buf)
		resp.Write(buf[:n])
		if err == io.EOF {
			return resp.Bytes(), nil
		}
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return nil, fmt.Errorf("%w: no data for %s after %d bytes", ErrStalled, C.cfg.IdleTimeout, resp.Len())
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading response: %v", ErrOffline, err)
		}
	}
}
