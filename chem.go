/*
 * chem.go, part of gokin.
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
	"sort"
	"strings"
)

/**Note: Some functions here panic instead of returning errors. This is because they are "fundamental"
 * functions. If something goes wrong here, the program is most likely wrong and should
 * crash. Most panics are related to using the function on a nil object or trying to access out-of bounds
 * fields**/

//Atom is a vertex of the molecular graph.
type Atom struct {
	Symbol    string
	Label     string //reaction-center label, such as "*1". Empty for unlabeled atoms.
	Radicals  int
	LonePairs int
	Charge    int
	Index     int //position in the molecule, 0-based.
	Bonds     []*Bond
}

//Atom methods

//Copy returns a copy of the Atom object, without bonds.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	Newat.Symbol = A.Symbol
	Newat.Label = A.Label
	Newat.Radicals = A.Radicals
	Newat.LonePairs = A.LonePairs
	Newat.Charge = A.Charge
	Newat.Index = A.Index
	return Newat
}

//IsHydrogen returns true if the atom is a hydrogen.
func (A *Atom) IsHydrogen() bool {
	return A.Symbol == "H"
}

//BondedOrder returns the sum of the orders of all the bonds of the atom.
func (A *Atom) BondedOrder() float64 {
	var o float64
	for _, b := range A.Bonds {
		o += b.Order
	}
	return o
}

//Signature is a string that two atoms must share to be mapped onto each other
//in an isomorphism.
func (A *Atom) Signature() string {
	return fmt.Sprintf("%s u%d p%d %s d%d", A.Symbol, A.Radicals, A.LonePairs, chargeString(A.Charge), len(A.Bonds))
}

/**Type Molecule**/

//Molecule is a molecular graph: atoms and the bonds between them. There are no coordinates.
//AddAtom and AddBond keep the indexes of atoms and bonds, which are never changed afterwards,
//so a molecule that is only read can be shared between goroutines.
type Molecule struct {
	Atoms []*Atom
	Bonds []*Bond
}

//NewMolecule returns an empty molecule.
func NewMolecule() *Molecule {
	return &Molecule{Atoms: make([]*Atom, 0, 6), Bonds: make([]*Bond, 0, 6)}
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the Molecule. Panics if
//out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i >= M.Len() || i < 0 {
		panic(fmt.Sprintf("Molecule: Requested Atom %d out of bounds", i))
	}
	return M.Atoms[i]
}

//AddAtom appends at to the molecule and sets its index. It returns the new index.
func (M *Molecule) AddAtom(at *Atom) int {
	at.Index = len(M.Atoms)
	M.Atoms = append(M.Atoms, at)
	return at.Index
}

//AddBond bonds the atoms with indexes i and j with the given order.
func (M *Molecule) AddBond(i, j int, order float64) (*Bond, error) {
	if i == j {
		return nil, newCError(fmt.Sprintf("Atom %d can't be bonded to itself", i+1), 0, "AddBond")
	}
	if i < 0 || j < 0 || i >= M.Len() || j >= M.Len() {
		return nil, newCError(fmt.Sprintf("Bond %d-%d refers to atoms out of range", i+1, j+1), 0, "AddBond")
	}
	if M.BondBetween(i, j) != nil {
		return nil, newCError(fmt.Sprintf("Atoms %d and %d are already bonded", i+1, j+1), 0, "AddBond")
	}
	if order <= 0 {
		return nil, newCError(fmt.Sprintf("Invalid bond order %g", order), 0, "AddBond")
	}
	b := &Bond{Index: len(M.Bonds), At1: M.Atoms[i], At2: M.Atoms[j], Order: order}
	b.At1.Bonds = append(b.At1.Bonds, b)
	b.At2.Bonds = append(b.At2.Bonds, b)
	M.Bonds = append(M.Bonds, b)
	return b, nil
}

//BondBetween returns the bond between the atoms with indexes i and j, or nil
//if they are not bonded.
func (M *Molecule) BondBetween(i, j int) *Bond {
	at := M.Atom(i)
	for _, b := range at.Bonds {
		if (b.At1.Index == i && b.At2.Index == j) || (b.At1.Index == j && b.At2.Index == i) {
			return b
		}
	}
	return nil
}

//Copy returns a deep copy of the molecule.
func (M *Molecule) Copy() *Molecule {
	mol := new(Molecule)
	mol.Atoms = make([]*Atom, 0, M.Len())
	mol.Bonds = make([]*Bond, 0, len(M.Bonds))
	for _, at := range M.Atoms {
		mol.AddAtom(at.Copy())
	}
	for _, b := range M.Bonds {
		if _, err := mol.AddBond(b.At1.Index, b.At2.Index, b.Order); err != nil {
			panic(fmt.Sprintf("Molecule copy error: %s", err.Error())) //copying a corrupted molecule means that the program is wrong.
		}
	}
	return mol
}

//ClearLabels removes the reaction-center labels from all atoms, in place.
func (M *Molecule) ClearLabels() {
	for _, at := range M.Atoms {
		at.Label = ""
	}
}

//Radicals returns the total number of unpaired electrons in the molecule.
func (M *Molecule) Radicals() int {
	r := 0
	for _, at := range M.Atoms {
		r += at.Radicals
	}
	return r
}

//Multiplicity returns the spin multiplicity, assuming all unpaired electrons are parallel.
func (M *Molecule) Multiplicity() int {
	return M.Radicals() + 1
}

//Charge returns the total formal charge of the molecule.
func (M *Molecule) Charge() int {
	c := 0
	for _, at := range M.Atoms {
		c += at.Charge
	}
	return c
}

//Mass returns the molecular mass in g/mol. Unknown elements count as 0.
func (M *Molecule) Mass() float64 {
	var m float64
	for _, at := range M.Atoms {
		m += symbolMass[at.Symbol]
	}
	return m
}

//Formula returns the molecular formula in Hill order: C first, H second, then
//everything else alphabetically. Without carbon, everything goes alphabetically.
func (M *Molecule) Formula() string {
	count := make(map[string]int)
	for _, at := range M.Atoms {
		count[at.Symbol]++
	}
	symbols := make([]string, 0, len(count))
	for s := range count {
		symbols = append(symbols, s)
	}
	_, hasC := count["C"]
	sort.Slice(symbols, func(i, j int) bool {
		if hasC {
			for _, first := range []string{"C", "H"} {
				if symbols[i] == first {
					return symbols[j] != first
				}
				if symbols[j] == first {
					return false
				}
			}
		}
		return symbols[i] < symbols[j]
	})
	var sb strings.Builder
	for _, s := range symbols {
		sb.WriteString(s)
		if count[s] > 1 {
			fmt.Fprintf(&sb, "%d", count[s])
		}
	}
	return sb.String()
}

//String returns the formula of the molecule.
func (M *Molecule) String() string {
	return M.Formula()
}
