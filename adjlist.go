/*
 * adjlist.go, part of gokin.
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

package chem

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

/*Adjacency lists have one line per atom:

	1 *1 C u1 p0 c0 {2,S} {3,D}

index (1-based), optional label, element, unpaired electrons, lone pairs, formal charge
and the bonds, each as {neighbor,order}. The legacy dialect only has the number of unpaired
electrons, with no prefix, and no lone pairs or charge:

	1 *1 C 1 {2,S} {3,D}

Two non-bonding electrons beyond the usual lone pairs are written "2S" when they
are paired (singlet) and "2T", or just "2", when they are not (triplet).

Both dialects are read. A leading line with the species name and a "multiplicity N" line are
accepted and ignored.*/

type adjBond struct {
	from, to int //1-based
	order    float64
	line     int
}

//ReadAdjList reads an adjacency list in either dialect and returns the molecule.
//If saturateH is true, implicit hydrogens are added to every atom until it reaches
//its usual valence.
func ReadAdjList(text string, saturateH bool) (*Molecule, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	mol := NewMolecule()
	bonds := make([]adjBond, 0, len(lines))
	for ln, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "multiplicity") {
			continue
		}
		if !isAtomLine(line) {
			if mol.Len() == 0 {
				continue //the name of the species
			}
			return nil, newCError(fmt.Sprintf("Unexpected line %q in adjacency list", line), ln+1, "ReadAdjList")
		}
		at, index, atbonds, err := parseAtomLine(line, ln+1)
		if err != nil {
			return nil, errDecorate(err, "ReadAdjList")
		}
		if index != mol.Len()+1 {
			return nil, newCError(fmt.Sprintf("Atom index %d out of sequence, expected %d", index, mol.Len()+1), ln+1, "ReadAdjList")
		}
		mol.AddAtom(at)
		bonds = append(bonds, atbonds...)
	}
	if mol.Len() == 0 {
		return nil, newCError("Empty adjacency list", 0, "ReadAdjList")
	}
	if err := addAdjBonds(mol, bonds); err != nil {
		return nil, errDecorate(err, "ReadAdjList")
	}
	if saturateH {
		if err := SaturateH(mol); err != nil {
			return nil, errDecorate(err, "ReadAdjList")
		}
	}
	return mol, nil
}

//addAdjBonds checks that every bond is listed by both of its atoms, with the
//same order, and adds it to mol.
func addAdjBonds(mol *Molecule, bonds []adjBond) error {
	orders := make(map[[2]int]float64, len(bonds))
	counts := make(map[[2]int]int, len(bonds))
	keys := make([][2]int, 0, len(bonds)/2)
	for _, b := range bonds {
		if b.to < 1 || b.to > mol.Len() {
			return newCError(fmt.Sprintf("Bond from atom %d to non-existent atom %d", b.from, b.to), b.line, "addAdjBonds")
		}
		if b.to == b.from {
			return newCError(fmt.Sprintf("Atom %d is bonded to itself", b.from), b.line, "addAdjBonds")
		}
		key := [2]int{b.from, b.to}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		prev, ok := orders[key]
		if !ok {
			orders[key] = b.order
			keys = append(keys, key)
		} else if prev != b.order {
			return newCError(fmt.Sprintf("Bond %d-%d has different orders on each atom", key[0], key[1]), b.line, "addAdjBonds")
		}
		counts[key]++
	}
	for _, key := range keys {
		if counts[key] != 2 {
			return newCError(fmt.Sprintf("Bond %d-%d must be listed once by each of its atoms", key[0], key[1]), 0, "addAdjBonds")
		}
		if _, err := mol.AddBond(key[0]-1, key[1]-1, orders[key]); err != nil {
			return errDecorate(err, "addAdjBonds")
		}
	}
	return nil
}

func parseAtomLine(line string, ln int) (*Atom, int, []adjBond, error) {
	fields := strings.Fields(line)
	index, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, 0, nil, newCError(fmt.Sprintf("Invalid atom index %q", fields[0]), ln, "parseAtomLine")
	}
	i := 1
	at := &Atom{LonePairs: -1}
	if strings.HasPrefix(fields[i], "*") {
		at.Label = fields[i]
		i++
	}
	if i >= len(fields) {
		return nil, 0, nil, newCError("Atom line without element", ln, "parseAtomLine")
	}
	at.Symbol = fields[i]
	if !KnownElement(at.Symbol) {
		return nil, 0, nil, newCError(fmt.Sprintf("Unknown element %q", at.Symbol), ln, "parseAtomLine")
	}
	bonds := make([]adjBond, 0, 4)
	extraPairs := 0
	for i++; i < len(fields); i++ {
		f := fields[i]
		switch {
		case strings.HasPrefix(f, "{"):
			to, order, err := parseBondField(f)
			if err != nil {
				return nil, 0, nil, newCError(err.Error(), ln, "parseAtomLine")
			}
			bonds = append(bonds, adjBond{from: index, to: to, order: order, line: ln})
		case strings.HasPrefix(f, "u"):
			at.Radicals, err = atoiFirst(f[1:])
		case strings.HasPrefix(f, "p"):
			at.LonePairs, err = atoiFirst(f[1:])
		case strings.HasPrefix(f, "c"):
			at.Charge, err = atoiFirst(f[1:])
		default:
			at.Radicals, extraPairs, err = legacyElectrons(f)
		}
		if err != nil {
			return nil, 0, nil, newCError(fmt.Sprintf("Can't read atom field %q: %s", f, err.Error()), ln, "parseAtomLine")
		}
	}
	if at.LonePairs < 0 {
		at.LonePairs = symbolLonePairs[at.Symbol] + extraPairs
	}
	return at, index, bonds, nil
}

//legacyElectrons reads the electron field of the legacy dialect: a number of non-bonding
//electrons beyond the usual lone pairs, optionally followed by the spin state. "2S" is a
//singlet (the 2 electrons paired in one extra lone pair), "2T" or "2" a triplet (2 unpaired
//electrons). It returns the unpaired electrons and the extra lone pairs.
func legacyElectrons(f string) (int, int, error) {
	digits := strings.TrimRight(f, "STV")
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, 0, fmt.Errorf("unexpected field %q", f)
	}
	switch f[len(digits):] {
	case "":
		return n, 0, nil
	case "S":
		if n%2 != 0 {
			break
		}
		return 0, n / 2, nil
	case "T":
		if n < 2 || n%2 != 0 {
			break
		}
		return 2, (n - 2) / 2, nil
	case "V":
		if n != 4 {
			break
		}
		return 4, 0, nil
	}
	return 0, 0, fmt.Errorf("spin state in %q doesn't fit its electrons", f)
}

//legacyElectronField is the inverse of legacyElectrons for at.
func legacyElectronField(at *Atom) string {
	extra := at.LonePairs - symbolLonePairs[at.Symbol]
	if at.Charge != 0 || extra <= 0 {
		if at.Radicals == 2 {
			return "2T"
		}
		return strconv.Itoa(at.Radicals)
	}
	switch at.Radicals {
	case 0:
		return fmt.Sprintf("%dS", 2*extra)
	case 2:
		return fmt.Sprintf("%dT", 2+2*extra)
	}
	return strconv.Itoa(at.Radicals)
}

//parseBondField reads a field like {2,D}
func parseBondField(f string) (int, float64, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(f, "{"), "}")
	parts := strings.Split(inner, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("Malformed bond %q", f)
	}
	to, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("Malformed bond %q", f)
	}
	order, err := SymbolOrder(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return to, order, nil
}

//atoiFirst reads things like "1", "+1" or "[0,2]", in which case
//only the first value is taken.
func atoiFirst(s string) (int, error) {
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if i := strings.Index(s, ","); i >= 0 {
		s = s[:i]
	}
	return strconv.Atoi(s)
}

//AdjList returns the adjacency list for the molecule in the current dialect. If explicitH is false
//plain hydrogens (unlabeled, neutral, closed-shell, bonded to one heavy atom) are left out.
func (M *Molecule) AdjList(explicitH bool) string {
	return M.adjList(explicitH, false)
}

//AdjListOld returns the adjacency list for the molecule in the legacy dialect, the one
//understood by older programs.
func (M *Molecule) AdjListOld(explicitH bool) string {
	return M.adjList(explicitH, true)
}

func (M *Molecule) adjList(explicitH, legacy bool) string {
	newindex := make(map[int]int, M.Len())
	kept := make([]*Atom, 0, M.Len())
	for _, at := range M.Atoms {
		if !explicitH && implicitable(at) {
			continue
		}
		kept = append(kept, at)
		newindex[at.Index] = len(kept)
	}
	lines := make([]string, 0, len(kept))
	for _, at := range kept {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d", newindex[at.Index])
		if at.Label != "" {
			fmt.Fprintf(&sb, " %s", at.Label)
		}
		if legacy {
			fmt.Fprintf(&sb, " %s %s", at.Symbol, legacyElectronField(at))
		} else {
			fmt.Fprintf(&sb, " %s u%d p%d %s", at.Symbol, at.Radicals, at.LonePairs, chargeString(at.Charge))
		}
		type nb struct {
			index int
			sym   string
		}
		nbs := make([]nb, 0, len(at.Bonds))
		for _, b := range at.Bonds {
			other := b.Cross(at)
			j, ok := newindex[other.Index]
			if !ok {
				continue
			}
			nbs = append(nbs, nb{j, b.Symbol()})
		}
		sort.Slice(nbs, func(i, j int) bool { return nbs[i].index < nbs[j].index })
		for _, v := range nbs {
			fmt.Fprintf(&sb, " {%d,%s}", v.index, v.sym)
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

//implicitable returns true for hydrogens that can be left implicit in an adjacency list.
func implicitable(at *Atom) bool {
	if !at.IsHydrogen() || at.Label != "" || at.Radicals != 0 || at.Charge != 0 || len(at.Bonds) != 1 {
		return false
	}
	return !at.Bonds[0].Cross(at).IsHydrogen()
}
