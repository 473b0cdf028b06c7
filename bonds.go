/*
 * bonds.go, part of gokin.
 *
 * Copyright 2012-2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package chem

import (
	"fmt"
	"math"
)

//Bond is an edge of the molecular graph.
type Bond struct {
	Index int
	At1   *Atom
	At2   *Atom
	Order float64 //1 single, 2 double, 3 triple, 1.5 benzene
}

//Cross takes one of the atoms of the bond and returns the other one.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin.Index == B.At1.Index {
		return B.At2
	}
	if origin.Index == B.At2.Index {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!") //I think this got to be a programming error, so a panic is warranted.

}

//Symbol returns the adjacency list letter for the bond order.
func (B *Bond) Symbol() string {
	return OrderSymbol(B.Order)
}

//OrderSymbol returns the adjacency list letter for a bond order. It panics
//for orders that have no letter.
func OrderSymbol(order float64) string {
	for k, v := range bondSymbolOrder {
		if math.Abs(v-order) < 1e-3 {
			return k
		}
	}
	panic(fmt.Sprintf("No adjacency list symbol for bond order %g", order))
}

//SymbolOrder returns the bond order for an adjacency list letter.
func SymbolOrder(symbol string) (float64, error) {
	o, ok := bondSymbolOrder[symbol]
	if !ok {
		return 0, newCError(fmt.Sprintf("Unknown bond order %q", symbol), 0, "SymbolOrder")
	}
	return o, nil
}

//SetOrder changes the order of the bond. The atoms are not touched.
func (B *Bond) SetOrder(order float64) {
	if order <= 0 {
		panic(fmt.Sprintf("Invalid bond order %g", order))
	}
	B.Order = order
}
