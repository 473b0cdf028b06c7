/*
 * reaction.go, part of gokin.
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

package rxn

import (
	"fmt"
)

//Reaction is a fully specified reaction: species, one kinetics expression and where
//it comes from. Don't modify a Reaction after it is built.
type Reaction struct {
	Reactants  []*Species
	Products   []*Species
	Kinetics   Kinetics
	Degeneracy int
	Reversible bool
	Source     Source
	Entry      *Entry
}

//NewReaction copies r and returns it. It panics if r lacks kinetics, source or
//species: partially resolved reactions are a programming error. A zero degeneracy
//is taken to be 1.
func NewReaction(r Reaction) *Reaction {
	if r.Kinetics == nil {
		panic("NewReaction: reaction without kinetics")
	}
	if r.Source == nil {
		panic("NewReaction: reaction without source")
	}
	if len(r.Reactants) == 0 || len(r.Products) == 0 {
		panic("NewReaction: reaction without reactants or products")
	}
	if r.Degeneracy == 0 {
		r.Degeneracy = 1
	}
	ret := r
	ret.Reactants = append(make([]*Species, 0, len(r.Reactants)), r.Reactants...)
	ret.Products = append(make([]*Species, 0, len(r.Products)), r.Products...)
	return &ret
}

//WithComment returns a copy of the reaction whose kinetics carry the extra comment c.
func (R *Reaction) WithComment(c string) *Reaction {
	cp := *R
	cp.Kinetics = R.Kinetics.WithComment(c)
	return NewReaction(cp)
}

//Comment returns the comment of the kinetics.
func (R *Reaction) Comment() string {
	return R.Kinetics.Comment()
}

func (R *Reaction) String() string {
	arrow := "-->"
	if R.Reversible {
		arrow = "<=>"
	}
	return fmt.Sprintf("%s %s %s", joinSpecies(R.Reactants), arrow, joinSpecies(R.Products))
}
