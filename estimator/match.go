/*
 * match.go, part of gokin.
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
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rmera/gokin/rxn"
)

const (
	//DuplicateMarker starts the reaction field of a line that repeats the previous
	//reaction with a second set of kinetics.
	DuplicateMarker = "DUP"
	//DuplicateWarning is appended to the comment of a reaction followed by a duplicate line.
	DuplicateWarning = "WARNING: the estimator reported duplicate kinetics for this reaction. Only the first rate expression is shown; the expressions were not summed."
	//AmbiguityWarning is appended to a reaction that the estimator listed more than once.
	AmbiguityWarning = "WARNING: the estimator listed this reaction more than once; only the first entry is shown."

	arrow = "-->"
)

//Match goes through the reaction lines and returns a reaction for each line whose
//reactants and products are the query names, in either direction. If productNames is nil only
//reactants are compared. Species are taken from dict. Lines that can't be used are
//returned as LineErrors, they don't stop the matching.
func Match(lines []string, reactantNames, productNames []string, dict *Dictionary, estimator string) ([]*rxn.Reaction, []error) {
	out := make([]*rxn.Reaction, 0, 2)
	keys := make([]string, 0, 2)
	var errs []error
	last := -1 //most recently matched reaction, in out
	for i, line := range lines {
		fields := strings.Split(line, "\t")
		eq := strings.TrimSpace(fields[0])
		if strings.HasPrefix(eq, DuplicateMarker) {
			if last >= 0 {
				out[last] = out[last].WithComment(DuplicateWarning)
			}
			continue
		}
		lr, lp, err := splitEquation(eq)
		if err != nil {
			errs = append(errs, LineError{Line: i, Text: line, Reason: err.Error()})
			continue
		}
		forward := sameNames(lr, reactantNames) && (productNames == nil || sameNames(lp, productNames))
		reverse := sameNames(lp, reactantNames) && (productNames == nil || sameNames(lr, productNames))
		if !forward && !reverse {
			continue
		}
		kin, err := ParseArrhenius(fields, len(lr))
		if err != nil {
			errs = append(errs, LineError{Line: i, Text: line, Reason: err.Error()})
			continue
		}
		reactants, err := dict.species(lr)
		if err != nil {
			errs = append(errs, LineError{Line: i, Text: line, Reason: err.Error()})
			continue
		}
		products, err := dict.species(lp)
		if err != nil {
			errs = append(errs, LineError{Line: i, Text: line, Reason: err.Error()})
			continue
		}
		key := reactionKey(lr, lp)
		if j := indexOf(keys, key); j >= 0 {
			out[j] = out[j].WithComment(AmbiguityWarning)
			last = j
			continue
		}
		out = append(out, rxn.NewReaction(rxn.Reaction{
			Reactants:  reactants,
			Products:   products,
			Kinetics:   kin,
			Degeneracy: 1,
			Source:     rxn.EstimatorResult{Estimator: estimator},
		}))
		keys = append(keys, key)
		last = len(out) - 1
	}
	return out, errs
}

//ParseArrhenius reads A, n and Ea from fields 1 to 3 of a reaction line. The units of A depend on
//the number of reactants, Ea is in kcal/mol and the reference temperature is 1 K. The fields after
//Ea are joined back, with tabs, as the comment.
func ParseArrhenius(fields []string, nReactants int) (*rxn.Arrhenius, error) {
	if len(fields) < 4 {
		return nil, fmt.Errorf("expected at least 4 tab-separated fields, got %d", len(fields))
	}
	units, err := rxn.ArrheniusUnits(nReactants)
	if err != nil {
		return nil, err
	}
	names := [3]string{"pre-exponential factor", "temperature exponent", "activation energy"}
	var vals [3]float64
	for i := range vals {
		vals[i], err = parseFortranFloat(fields[i+1])
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", names[i], err)
		}
	}
	comment := strings.TrimSpace(strings.Join(fields[4:], "\t"))
	return rxn.NewArrhenius(
		rxn.Quantity{Value: vals[0], Units: units},
		vals[1],
		rxn.Quantity{Value: vals[2], Units: "kcal/mol"},
		rxn.Quantity{Value: 1, Units: "K"},
		comment,
	), nil
}

//parseFortranFloat also takes exponents written with D, like 1.0D+14
func parseFortranFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.Map(func(r rune) rune {
		if r == 'D' || r == 'd' {
			return 'e'
		}
		return r
	}, s)
	return strconv.ParseFloat(s, 64)
}

//splitEquation splits "A + B --> C" into its reactant and product names.
func splitEquation(eq string) ([]string, []string, error) {
	sides := strings.Split(eq, arrow)
	if len(sides) != 2 {
		return nil, nil, fmt.Errorf("can't read reaction %q", eq)
	}
	r := splitSide(sides[0])
	p := splitSide(sides[1])
	if r == nil || p == nil {
		return nil, nil, fmt.Errorf("reaction %q has an empty side", eq)
	}
	return r, p, nil
}

func splitSide(side string) []string {
	names := strings.Split(side, " + ")
	for i, n := range names {
		names[i] = strings.TrimSpace(n)
		if names[i] == "" {
			return nil
		}
	}
	return names
}

//sameNames tells whether the names on one side of a line are the query names. That is
//the case if both are the same multiset, or if the query has a single name and every one
//of the (several) names on the line is that name, which happens when the query was a self
//reaction whose reactant was sent once.
func sameNames(line, query []string) bool {
	if len(line) == len(query) {
		l := sortedCopy(line)
		q := sortedCopy(query)
		for i := range l {
			if l[i] != q[i] {
				return false
			}
		}
		return true
	}
	if len(query) == 1 && len(line) > 1 {
		for _, n := range line {
			if n != query[0] {
				return false
			}
		}
		return true
	}
	return false
}

func sortedCopy(s []string) []string {
	c := append(make([]string, 0, len(s)), s...)
	sort.Strings(c)
	return c
}

//reactionKey identifies a reaction regardless of the order of species and direction.
func reactionKey(r, p []string) string {
	a := strings.Join(sortedCopy(r), "+")
	b := strings.Join(sortedCopy(p), "+")
	if b < a {
		a, b = b, a
	}
	return a + "=" + b
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
