/*
 * reconcile.go, part of gokin.
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

//Package reconcile turns the raw candidate reactions of a rule engine into
//reactions with exactly one kinetics expression each. Candidates without
//kinetics are estimated by their family in both directions, and an estimate
//that traces back to the same database record from both sides is kept once.
package reconcile

import (
	"fmt"

	"github.com/rmera/gokin/rxn"
	"go.uber.org/zap"
)

//Method is the way a family obtained an estimate.
type Method int

const (
	RateRules Method = iota
	GroupAdditivity
	Depository
)

func (M Method) String() string {
	switch M {
	case RateRules:
		return "rate rules"
	case GroupAdditivity:
		return "group additivity"
	case Depository:
		return "depository"
	}
	return fmt.Sprintf("Method(%d)", int(M))
}

//Estimate is one kinetics result from a family.
type Estimate struct {
	Kinetics   rxn.Kinetics
	Method     Method
	Depository string     //only for Method == Depository
	Entry      *rxn.Entry //the database record, if any
	Forward    bool       //false if it was obtained for the reverse reaction
}

//Family is a reaction family of the rule engine.
type Family interface {
	Name() string
	//OwnReverse is true if the family can estimate the reverse of its own reactions.
	OwnReverse() bool
	//Estimates returns every kinetics estimate available for the matched template, in
	//the given direction, with the given degeneracy. Forward must be set in every result.
	Estimates(template []string, degeneracy int, forward bool) ([]Estimate, error)
}

//Generator is the rule engine: it matches reactants (and optionally products) against its
//families and libraries and returns the raw candidates.
type Generator interface {
	Generate(reactants, products []*rxn.Species) ([]*Candidate, error)
}

//Candidate is a raw reaction as produced by the rule engine. Either Kinetics
//(and Source) are set, for instance for a library hit, or Family and Template are.
type Candidate struct {
	Reactants  []*rxn.Species
	Products   []*rxn.Species
	Kinetics   rxn.Kinetics
	Source     rxn.Source
	Entry      *rxn.Entry
	Family     Family
	Template   []string
	Degeneracy int
	Reversible bool
	//Reverse is the same reaction matched in the opposite direction, if the
	//family produced one.
	Reverse *Candidate
}

//Reconciler resolves the kinetics of the candidates of a Generator.
type Reconciler struct {
	gen    Generator
	logger *zap.Logger
}

//Option configures a Reconciler.
type Option func(*Reconciler)

//WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(R *Reconciler) { R.logger = l }
}

//New returns a Reconciler that obtains its candidates from gen.
func New(gen Generator, opts ...Option) *Reconciler {
	R := &Reconciler{gen: gen, logger: zap.NewNop()}
	for _, o := range opts {
		o(R)
	}
	return R
}

//Candidates returns the candidates for reactants and products. If there is only one
//reactant, the candidates of its reaction with itself are added too.
func (R *Reconciler) Candidates(reactants, products []*rxn.Species) ([]*Candidate, error) {
	cands, err := R.gen.Generate(reactants, products)
	if err != nil {
		return nil, fmt.Errorf("generating reactions: %w", err)
	}
	if len(reactants) == 1 {
		self, err := R.gen.Generate([]*rxn.Species{reactants[0], reactants[0]}, products)
		if err != nil {
			return nil, fmt.Errorf("generating self reactions: %w", err)
		}
		cands = append(cands, self...)
	}
	R.logger.Debug("generated candidates", zap.Int("reactants", len(reactants)), zap.Int("candidates", len(cands)))
	return cands, nil
}

//Resolve generates the candidates for reactants and products and reconciles them.
func (R *Reconciler) Resolve(reactants, products []*rxn.Species) ([]*rxn.Reaction, error) {
	cands, err := R.Candidates(reactants, products)
	if err != nil {
		return nil, err
	}
	return R.Reconcile(cands)
}

//Reconcile returns one reaction per kinetics estimate of each candidate. Candidates that
//already carry kinetics are passed through. The same reaction can show up several times,
//once per distinct source, but never twice for the same database record.
func (R *Reconciler) Reconcile(cands []*Candidate) ([]*rxn.Reaction, error) {
	ret := make([]*rxn.Reaction, 0, len(cands))
	for _, c := range cands {
		if c.Kinetics != nil {
			ret = append(ret, passThrough(c))
			continue
		}
		ests, err := estimates(c)
		if err != nil {
			return nil, err
		}
		for _, e := range ests {
			ret = append(ret, fromEstimate(c, e))
		}
		R.logger.Debug("resolved candidate",
			zap.String("family", c.Family.Name()),
			zap.Strings("template", c.Template),
			zap.Int("estimates", len(ests)))
	}
	return ret, nil
}

func passThrough(c *Candidate) *rxn.Reaction {
	if c.Source == nil {
		panic("reconcile: candidate with kinetics but no source")
	}
	return rxn.NewReaction(rxn.Reaction{
		Reactants:  c.Reactants,
		Products:   c.Products,
		Kinetics:   c.Kinetics,
		Degeneracy: c.Degeneracy,
		Reversible: c.Reversible,
		Source:     c.Source,
		Entry:      c.Entry,
	})
}

//estimates queries the family of c in the forward and, if possible, reverse
//direction, and merges the results.
func estimates(c *Candidate) ([]Estimate, error) {
	if c.Family == nil || len(c.Template) == 0 {
		panic(fmt.Sprintf("reconcile: candidate %s has neither kinetics nor a matched template", equation(c)))
	}
	forward, err := c.Family.Estimates(c.Template, c.Degeneracy, true)
	if err != nil {
		return nil, fmt.Errorf("family %s, forward estimates: %w", c.Family.Name(), err)
	}
	if !c.Family.OwnReverse() || c.Reverse == nil {
		return forward, nil
	}
	if len(c.Reverse.Template) == 0 {
		panic(fmt.Sprintf("reconcile: reverse of %s has no matched template", equation(c)))
	}
	reverse, err := c.Family.Estimates(c.Reverse.Template, c.Reverse.Degeneracy, false)
	if err != nil {
		return nil, fmt.Errorf("family %s, reverse estimates: %w", c.Family.Name(), err)
	}
	return merge(forward, reverse), nil
}

//merge appends to forward the reverse estimates that don't come from a record
//already in forward seen from the other side.
func merge(forward, reverse []Estimate) []Estimate {
	n := len(forward)
	ret := append(make([]Estimate, 0, n+len(reverse)), forward...)
	for _, r := range reverse {
		dup := false
		for _, f := range ret[:n] {
			if rxn.SameRecord(f.Entry, r.Entry) && f.Forward != r.Forward {
				dup = true
				break
			}
		}
		if !dup {
			ret = append(ret, r)
		}
	}
	return ret
}

func fromEstimate(c *Candidate, e Estimate) *rxn.Reaction {
	r := rxn.Reaction{
		Reactants:  c.Reactants,
		Products:   c.Products,
		Kinetics:   e.Kinetics,
		Degeneracy: c.Degeneracy,
		Reversible: c.Reversible,
	}
	template := c.Template
	if !e.Forward {
		if c.Reverse == nil {
			panic(fmt.Sprintf("reconcile: reverse estimate for %s, which has no reverse match", equation(c)))
		}
		r.Reactants, r.Products = c.Products, c.Reactants
		r.Degeneracy = c.Reverse.Degeneracy
		template = c.Reverse.Template
	}
	switch e.Method {
	case RateRules:
		r.Source = rxn.RateRuleEstimate{Family: c.Family.Name(), Templates: template, Estimator: e.Method.String()}
	case GroupAdditivity:
		r.Source = rxn.GroupAdditivityEstimate{Family: c.Family.Name(), Templates: template, Estimator: e.Method.String()}
	default:
		r.Source = rxn.DepositoryResult{Depository: e.Depository, Entry: e.Entry}
		r.Entry = e.Entry
	}
	return rxn.NewReaction(r)
}

func equation(c *Candidate) string {
	names := func(list []*rxn.Species) string {
		ret := ""
		for i, s := range list {
			if i > 0 {
				ret += " + "
			}
			ret += s.String()
		}
		return ret
	}
	return names(c.Reactants) + " -> " + names(c.Products)
}
