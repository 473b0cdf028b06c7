/*
 * response.go, part of gokin.
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
	"strings"

	chem "github.com/rmera/gokin"
	"github.com/rmera/gokin/chemgraph"
	"github.com/rmera/gokin/rxn"
)

const (
	sectionSeparator = "\n\n\n"
	speciesSeparator = "\n\n"
)

//SpeciesBlock is one entry of the species dictionary, as sent by the estimator.
type SpeciesBlock struct {
	Name    string
	AdjList string
}

//Response is an estimator response split into its parts.
type Response struct {
	Species []SpeciesBlock
	//Lines are the non-empty reaction lines, without the banner.
	Lines []string
}

//ParseResponse splits a raw response into the species dictionary and the reaction lines.
//It returns an error wrapping ErrFraming if raw doesn't have exactly one section separator.
func ParseResponse(raw []byte) (*Response, error) {
	parts := strings.Split(string(raw), sectionSeparator)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: expected 2 sections, got %d", ErrFraming, len(parts))
	}
	resp := new(Response)
	for _, chunk := range strings.Split(parts[0], speciesSeparator) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		lines := strings.SplitN(chunk, "\n", 2)
		if len(lines) < 2 || strings.TrimSpace(lines[1]) == "" {
			return nil, fmt.Errorf("%w: species %q has no adjacency list", ErrFraming, lines[0])
		}
		resp.Species = append(resp.Species, SpeciesBlock{Name: strings.TrimSpace(lines[0]), AdjList: lines[1]})
	}
	lines := strings.Split(parts[1], "\n")
	for _, l := range lines[1:] {
		if strings.TrimSpace(l) == "" {
			continue
		}
		resp.Lines = append(resp.Lines, strings.TrimRight(l, "\r"))
	}
	return resp, nil
}

//Dictionary maps the estimator's species names to molecules.
type Dictionary struct {
	names []string
	mols  []*chem.Molecule
	index map[string]int
}

//NewDictionary reads the adjacency lists of resp, adding implicit hydrogens. If a name is
//repeated, the first block is kept.
func NewDictionary(resp *Response) (*Dictionary, error) {
	D := &Dictionary{
		names: make([]string, 0, len(resp.Species)),
		mols:  make([]*chem.Molecule, 0, len(resp.Species)),
		index: make(map[string]int, len(resp.Species)),
	}
	for _, b := range resp.Species {
		if _, ok := D.index[b.Name]; ok {
			continue
		}
		mol, err := chem.ReadAdjList(b.AdjList, true)
		if err != nil {
			return nil, fmt.Errorf("%w: species %s: %v", ErrFraming, b.Name, err)
		}
		D.index[b.Name] = len(D.names)
		D.names = append(D.names, b.Name)
		D.mols = append(D.mols, mol)
	}
	return D, nil
}

//Len returns the number of species in the dictionary.
func (D *Dictionary) Len() int {
	return len(D.names)
}

//Molecule returns the molecule for name.
func (D *Dictionary) Molecule(name string) (*chem.Molecule, bool) {
	i, ok := D.index[name]
	if !ok {
		return nil, false
	}
	return D.mols[i], true
}

//Identify returns the dictionary name of sp. Every resonance structure of sp is tried against
//every molecule of the dictionary, in order, and the first match wins. The second return value
//is false if sp is not in the dictionary.
func (D *Dictionary) Identify(sp *rxn.Species) (string, bool) {
	for _, s := range sp.WithResonance().Molecules {
		for i, m := range D.mols {
			if chemgraph.Isomorphic(s, m) {
				return D.names[i], true
			}
		}
	}
	return "", false
}

//species wraps the molecules for names as single-structure species.
func (D *Dictionary) species(names []string) ([]*rxn.Species, error) {
	ret := make([]*rxn.Species, 0, len(names))
	for _, n := range names {
		mol, ok := D.Molecule(n)
		if !ok {
			return nil, fmt.Errorf("species %s is not in the dictionary", n)
		}
		ret = append(ret, rxn.NewSpecies(n, mol))
	}
	return ret, nil
}
