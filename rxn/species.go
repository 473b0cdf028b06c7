/*
 * species.go, part of gokin.
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
	"strings"

	chem "github.com/rmera/gokin"
	"github.com/rmera/gokin/chemgraph"
)

//Species is a chemical entity. Its Molecules are alternative (resonance) structures
//that are interchangeable for identity purposes.
type Species struct {
	Label     string
	Molecules []*chem.Molecule
}

//NewSpecies returns a species with the given label and structures. It panics
//if no structure is given.
func NewSpecies(label string, mols ...*chem.Molecule) *Species {
	if len(mols) == 0 {
		panic("NewSpecies: a species needs at least one structure")
	}
	S := &Species{Label: label, Molecules: make([]*chem.Molecule, len(mols))}
	copy(S.Molecules, mols)
	return S
}

//SpeciesFromAdjList reads a species from an adjacency list, with implicit hydrogens added.
func SpeciesFromAdjList(label, adj string) (*Species, error) {
	mol, err := chem.ReadAdjList(adj, true)
	if err != nil {
		return nil, err
	}
	return NewSpecies(label, mol), nil
}

//Molecule returns the first structure of the species.
func (S *Species) Molecule() *chem.Molecule {
	return S.Molecules[0]
}

//IsIsomorphic returns true if some structure of S is isomorphic to some structure of other.
func (S *Species) IsIsomorphic(other *Species) bool {
	for _, a := range S.Molecules {
		for _, b := range other.Molecules {
			if chemgraph.Isomorphic(a, b) {
				return true
			}
		}
	}
	return false
}

//WithResonance returns a new species holding the resonance structures of all the structures of S.
func (S *Species) WithResonance() *Species {
	mols := make([]*chem.Molecule, 0, len(S.Molecules))
	for _, m := range S.Molecules {
		for _, r := range chemgraph.Resonance(m) {
			dup := false
			for _, prev := range mols {
				if chemgraph.Isomorphic(prev, r) {
					dup = true
					break
				}
			}
			if !dup {
				mols = append(mols, r)
			}
		}
	}
	return NewSpecies(S.Label, mols...)
}

//String returns the label, or the formula if there is no label.
func (S *Species) String() string {
	if S.Label != "" {
		return S.Label
	}
	return S.Molecule().Formula()
}

func joinSpecies(list []*Species) string {
	names := make([]string, 0, len(list))
	for _, s := range list {
		names = append(names, s.String())
	}
	return strings.Join(names, " + ")
}
