/*
 * client.go, part of gokin.
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
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/rmera/gokin/rxn"
)

//longest part of a raw response that goes into the log
const maxLoggedResponse = 2048

//Client queries an estimator. It is safe for concurrent use, each query opens its own connection.
type Client struct {
	cfg     Config
	logger  *zap.Logger
	metrics *Metrics
	reg     prometheus.Registerer
	breaker *gobreaker.CircuitBreaker
}

//Option configures a Client.
type Option func(*Client)

//WithLogger sets the logger of the Client. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(C *Client) {
		C.logger = l
	}
}

//WithMetrics makes the Client record into m.
func WithMetrics(m *Metrics) Option {
	return func(C *Client) {
		C.metrics = m
	}
}

//WithRegisterer makes the Client register its own metrics with reg. It has no effect together with WithMetrics.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(C *Client) {
		C.reg = reg
	}
}

//NewClient returns a Client for the estimator described by cfg.
func NewClient(cfg Config, opts ...Option) *Client {
	C := &Client{cfg: cfg, logger: zap.NewNop()}
	for _, o := range opts {
		o(C)
	}
	if C.metrics == nil {
		C.metrics = NewMetrics(C.reg)
	}
	C.breaker = newBreaker(cfg.Breaker, C.logger)
	return C
}

//Config returns the configuration of the client.
func (C *Client) Config() Config {
	return C.cfg
}

//Metrics returns the collectors the client records into.
func (C *Client) Metrics() *Metrics {
	return C.metrics
}

//Reactions returns the reactions the estimator knows between reactants and products. products can be
//empty, then every reaction of the reactants is returned. On any failure the reason is logged and an
//empty list is returned.
func (C *Client) Reactions(reactants, products []*rxn.Species) []*rxn.Reaction {
	out, err := C.Query(reactants, products)
	if err != nil {
		C.logger.Warn("no reactions from estimator",
			zap.String("addr", C.cfg.Addr),
			zap.String("outcome", Outcome(err)),
			zap.Error(err))
		return []*rxn.Reaction{}
	}
	return out
}

//Query is like Reactions but it returns the reason for an empty result, which wraps one of
//ErrNoReactants, ErrOffline, ErrStalled, ErrBreakerOpen, ErrFraming, ErrUnresolvedProducts
//or ErrNoReactions.
func (C *Client) Query(reactants, products []*rxn.Species) (ret []*rxn.Reaction, err error) {
	id := uuid.NewString()
	log := C.logger.With(zap.String("request_id", id), zap.String("addr", C.cfg.Addr))
	defer func() {
		C.metrics.Queries.WithLabelValues(Outcome(err)).Inc()
	}()
	req, err := BuildRequest(reactants)
	if err != nil {
		return nil, err
	}
	log.Debug("querying estimator",
		zap.Stringer("reactants", speciesList(reactants)),
		zap.Stringer("products", speciesList(products)),
		zap.Int("bytes", len(req)))
	start := time.Now()
	raw, err := C.roundTrip(req)
	if err != nil {
		return nil, err
	}
	C.metrics.Exchange.Observe(time.Since(start).Seconds())
	resp, err := ParseResponse(raw)
	if err != nil {
		C.badResponse(log, id, raw, err)
		return nil, err
	}
	dict, err := NewDictionary(resp)
	if err != nil {
		C.badResponse(log, id, raw, err)
		return nil, err
	}
	log.Debug("estimator response", zap.Int("bytes", len(raw)), zap.Int("species", dict.Len()), zap.Int("lines", len(resp.Lines)))
	reactantNames := make([]string, 0, len(reactants))
	for i, sp := range reactants {
		name, ok := dict.Identify(sp)
		if !ok {
			log.Warn("reactant not in estimator dictionary", zap.Stringer("reactant", sp))
			name = unresolvedName(i)
		}
		reactantNames = append(reactantNames, name)
	}
	var productNames []string
	for _, sp := range products {
		name, ok := dict.Identify(sp)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnresolvedProducts, sp)
		}
		productNames = append(productNames, name)
	}
	ret, lineErrs := Match(resp.Lines, reactantNames, productNames, dict, C.cfg.Name)
	for _, e := range lineErrs {
		var le LineError
		if errors.As(e, &le) {
			log.Warn("skipped estimator reaction line", zap.Int("line", le.Line), zap.String("text", le.Text), zap.String("reason", le.Reason))
		}
	}
	if len(ret) == 0 {
		return nil, fmt.Errorf("%w: reactants %v, products %v", ErrNoReactions, reactantNames, productNames)
	}
	return ret, nil
}

func (C *Client) badResponse(log *zap.Logger, id string, raw []byte, err error) {
	shown := raw
	if len(shown) > maxLoggedResponse {
		shown = shown[:maxLoggedResponse]
	}
	fields := []zap.Field{zap.Error(err), zap.Int("bytes", len(raw)), zap.ByteString("response", shown)}
	if C.cfg.DumpDir != "" {
		path, derr := dumpResponse(C.cfg.DumpDir, id, raw)
		if derr != nil {
			log.Error("could not dump estimator response", zap.Error(derr))
		} else {
			fields = append(fields, zap.String("dump", path))
		}
	}
	log.Error("unreadable estimator response", fields...)
}

//unresolvedName stands in for reactant i when it is not in the dictionary. It keeps the
//number of reactants of the query, and no reaction line can contain it.
func unresolvedName(i int) string {
	return fmt.Sprintf("\x00unresolved%d", i)
}

type speciesList []*rxn.Species

func (S speciesList) String() string {
	names := make([]string, 0, len(S))
	for _, s := range S {
		names = append(names, s.String())
	}
	return strings.Join(names, " + ")
}
