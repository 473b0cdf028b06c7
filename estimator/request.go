/*
 * request.go, part of gokin.
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
	"fmt"

	"github.com/rmera/gokin/rxn"
)

//RequestEnd terminates every request.
const RequestEnd = "END\n"

//BuildRequest writes the request for reactants. Reactants that are isomorphic to an earlier one are
//sent only once, so a self reaction lists its reactant a single time. Labels are removed and
//hydrogens written explicitly, in the legacy adjacency list dialect.
func BuildRequest(reactants []*rxn.Species) ([]byte, error) {
	if len(reactants) == 0 {
		return nil, ErrNoReactants
	}
	unique := make([]*rxn.Species, 0, len(reactants))
	for _, sp := range reactants {
		dup := false
		for _, u := range unique {
			if u.IsIsomorphic(sp) {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, sp)
		}
	}
	var b bytes.Buffer
	for i, sp := range unique {
		mol := sp.Molecule().Copy()
		mol.ClearLabels()
		fmt.Fprintf(&b, "reactant%d (molecule/cm3) 1\n%s\n\n", i+1, mol.AdjListOld(true))
	}
	b.WriteString(RequestEnd)
	return b.Bytes(), nil
}
