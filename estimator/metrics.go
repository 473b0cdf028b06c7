/*
 * metrics.go, part of gokin.
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
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

//Query outcomes, as recorded in the queries counter.
const (
	OutcomeOK                 = "ok"
	OutcomeOffline            = "offline"
	OutcomeFraming            = "framing"
	OutcomeNoReactions        = "no_reactions"
	OutcomeUnresolvedProducts = "unresolved_products"
	OutcomeBreakerOpen        = "breaker_open"
	OutcomeError              = "error"
)

//Metrics are the Prometheus collectors of a Client.
type Metrics struct {
	Queries  *prometheus.CounterVec
	Exchange prometheus.Histogram
}

//NewMetrics creates the collectors and registers them with reg. A nil reg
//gets a new private registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	M := &Metrics{
		Queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gokin",
			Subsystem: "estimator",
			Name:      "queries_total",
			Help:      "Estimator queries, by outcome.",
		}, []string{"outcome"}),
		Exchange: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gokin",
			Subsystem: "estimator",
			Name:      "exchange_seconds",
			Help:      "Time from connecting to the estimator to the end of its response.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
		}),
	}
	reg.MustRegister(M.Queries, M.Exchange)
	for _, o := range []string{OutcomeOK, OutcomeOffline, OutcomeFraming, OutcomeNoReactions,
		OutcomeUnresolvedProducts, OutcomeBreakerOpen, OutcomeError} {
		M.Queries.WithLabelValues(o)
	}
	return M
}

//Outcome returns the outcome label for the error returned by Client.Query.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrBreakerOpen):
		return OutcomeBreakerOpen
	case errors.Is(err, ErrOffline), errors.Is(err, ErrStalled):
		return OutcomeOffline
	case errors.Is(err, ErrFraming):
		return OutcomeFraming
	case errors.Is(err, ErrNoReactions):
		return OutcomeNoReactions
	case errors.Is(err, ErrUnresolvedProducts):
		return OutcomeUnresolvedProducts
	default:
		return OutcomeError
	}
}
