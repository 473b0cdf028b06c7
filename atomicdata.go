/*
 * atomicdata.go, part of gokin.
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

//A map for assigning mass to elements.
//Note that just the elements common in gas-phase kinetics are present
var symbolMass = map[string]float64{
	"H":  1.008,
	"He": 4.003,
	"C":  12.01,
	"N":  14.01,
	"O":  16.00,
	"F":  18.998,
	"Ne": 20.18,
	"Si": 28.08,
	"P":  30.97,
	"S":  32.06,
	"Cl": 35.45,
	"Ar": 39.95,
	"Br": 79.904,
	"I":  126.90,
}

//Valence electrons per element. Used to figure out how many
//hydrogens an atom needs.
var symbolValenceElectrons = map[string]int{
	"H":  1,
	"He": 2,
	"C":  4,
	"N":  5,
	"O":  6,
	"F":  7,
	"Ne": 8,
	"Si": 4,
	"P":  5,
	"S":  6,
	"Cl": 7,
	"Ar": 8,
	"Br": 7,
	"I":  7,
}

//Lone pairs of the neutral, closed-shell atom in its usual valence.
//The legacy adjacency list dialect doesn't give lone pairs, these are assumed then.
var symbolLonePairs = map[string]int{
	"H":  0,
	"He": 1,
	"C":  0,
	"N":  1,
	"O":  2,
	"F":  3,
	"Ne": 4,
	"Si": 0,
	"P":  1,
	"S":  2,
	"Cl": 3,
	"Ar": 4,
	"Br": 3,
	"I":  3,
}

//Bond order symbols used in adjacency lists.
var bondSymbolOrder = map[string]float64{
	"S": 1,
	"D": 2,
	"T": 3,
	"B": 1.5,
	"Q": 4,
}

//KnownElement returns true if symbol is one of the elements gokin knows about.
func KnownElement(symbol string) bool {
	_, ok := symbolValenceElectrons[symbol]
	return ok
}
