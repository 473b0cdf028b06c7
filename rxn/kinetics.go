/*
 * kinetics.go, part of gokin.
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
	"math"
)

//R is the gas constant in J/(mol*K)
const R = 8.314462618

//Quantity is a value with its units.
type Quantity struct {
	Value float64
	Units string
}

func (Q Quantity) String() string {
	return fmt.Sprintf("%g %s", Q.Value, Q.Units)
}

//Kinetics is a rate expression. Implementations are immutable.
type Kinetics interface {
	//RateCoefficient evaluates the expression at temperature T, in K. The result
	//has the units of the pre-exponential factor.
	RateCoefficient(T float64) (float64, error)
	Comment() string
	//WithComment returns a copy of the expression with c appended to its comment.
	WithComment(c string) Kinetics
	String() string
}

//Arrhenius is the modified Arrhenius expression k = A (T/T0)^n exp(-Ea/RT)
type Arrhenius struct {
	A       Quantity
	N       float64
	Ea      Quantity
	T0      Quantity
	comment string
}

//NewArrhenius returns a modified Arrhenius expression. A T0 without units is taken to be in K.
func NewArrhenius(A Quantity, n float64, Ea, T0 Quantity, comment string) *Arrhenius {
	if T0.Units == "" {
		T0.Units = "K"
	}
	return &Arrhenius{A: A, N: n, Ea: Ea, T0: T0, comment: comment}
}

//energy conversion to J/mol
var energyFactor = map[string]float64{
	"J/mol":    1,
	"kJ/mol":   1000,
	"cal/mol":  4.184,
	"kcal/mol": 4184,
}

//RateCoefficient evaluates the expression at temperature T, in K.
func (K *Arrhenius) RateCoefficient(T float64) (float64, error) {
	if T <= 0 {
		return 0, fmt.Errorf("Invalid temperature %g K", T)
	}
	f, ok := energyFactor[K.Ea.Units]
	if !ok {
		return 0, fmt.Errorf("Unknown activation energy units %q", K.Ea.Units)
	}
	if K.T0.Units != "K" || K.T0.Value <= 0 {
		return 0, fmt.Errorf("Invalid reference temperature %s", K.T0)
	}
	return K.A.Value * math.Pow(T/K.T0.Value, K.N) * math.Exp(-K.Ea.Value*f/(R*T)), nil
}

//Comment returns the free-text provenance of the expression.
func (K *Arrhenius) Comment() string {
	return K.comment
}

//WithComment returns a copy of K with c appended, in a new line, to its comment.
func (K *Arrhenius) WithComment(c string) Kinetics {
	N := *K
	if N.comment == "" {
		N.comment = c
	} else {
		N.comment = N.comment + "\n" + c
	}
	return &N
}

func (K *Arrhenius) String() string {
	return fmt.Sprintf("Arrhenius(A=%s, n=%g, Ea=%s, T0=%s)", K.A, K.N, K.Ea, K.T0)
}

//ArrheniusUnits returns the units of the pre-exponential factor for a reaction
//with nReactants reactants.
func ArrheniusUnits(nReactants int) (string, error) {
	switch nReactants {
	case 1:
		return "s^-1", nil
	case 2:
		return "cm^3/(mol*s)", nil
	case 3:
		return "cm^6/(mol^2*s)", nil
	}
	return "", fmt.Errorf("No Arrhenius units for %d reactants", nReactants)
}
