/*
 * hydrogens.go, part of gokin.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package chem

import (
	"fmt"
	"math"
)

//ImplicitHydrogens returns the number of hydrogens the atom needs to complete
//its valence, given its charge, unpaired electrons, lone pairs and current bonds.
//The result can be negative for an overvalent atom.
func ImplicitHydrogens(at *Atom) (int, error) {
	ve, ok := symbolValenceElectrons[at.Symbol]
	if !ok {
		return 0, newCError(fmt.Sprintf("No valence data for element %s", at.Symbol), 0, "ImplicitHydrogens")
	}
	bonded := int(math.Round(at.BondedOrder()))
	return ve - at.Charge - at.Radicals - 2*at.LonePairs - bonded, nil
}

//SaturateH adds, in place, as many hydrogens to each atom of mol as needed
//to complete its valence. It returns error if some atom exceeds its valence.
func SaturateH(mol *Molecule) error {
	n := mol.Len() //the new hydrogens don't need to be checked
	for i := 0; i < n; i++ {
		at := mol.Atom(i)
		need, err := ImplicitHydrogens(at)
		if err != nil {
			return errDecorate(err, "SaturateH")
		}
		if need < 0 {
			return newCError(fmt.Sprintf("Atom %d (%s) exceeds its valence by %d", i+1, at.Symbol, -need), 0, "SaturateH")
		}
		for ; need > 0; need-- {
			h := mol.AddAtom(&Atom{Symbol: "H"})
			if _, err := mol.AddBond(i, h, 1); err != nil {
				return errDecorate(err, "SaturateH")
			}
		}
	}
	return nil
}
