/*
 * chem_test.go, part of gokin.
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
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAdjListExplicit(Te *testing.T) {
	text, err := os.ReadFile("test/methane.adj")
	require.NoError(Te, err)
	mol, err := ReadAdjList(string(text), false)
	require.NoError(Te, err)
	assert.Equal(Te, 5, mol.Len())
	assert.Len(Te, mol.Bonds, 4)
	assert.Equal(Te, "CH4", mol.Formula())
	assert.Equal(Te, 1, mol.Multiplicity())
	assert.InDelta(Te, 16.04, mol.Mass(), 0.01)
}

func TestReadAdjListSaturate(Te *testing.T) {
	text, err := os.ReadFile("test/methyl.adj")
	require.NoError(Te, err)
	mol, err := ReadAdjList(string(text), true)
	require.NoError(Te, err)
	assert.Equal(Te, "CH3", mol.Formula())
	assert.Equal(Te, 2, mol.Multiplicity())

	allyl, err := ReadAdjList(`
1 C 1 {2,S}
2 C 0 {1,S} {3,D}
3 C 0 {2,D}
`, true)
	require.NoError(Te, err)
	assert.Equal(Te, "C3H5", allyl.Formula())
	assert.Equal(Te, 2.0, allyl.BondBetween(1, 2).Order)

	water, err := ReadAdjList("1 O u0 p2 c0", true)
	require.NoError(Te, err)
	assert.Equal(Te, "H2O", water.Formula())

	oh, err := ReadAdjList("1 O u1 p2 c0", true)
	require.NoError(Te, err)
	assert.Equal(Te, "HO", oh.Formula())

	h, err := ReadAdjList("1 H u1 p0 c0", true)
	require.NoError(Te, err)
	assert.Equal(Te, 1, h.Len())
}

func TestReadAdjListLabels(Te *testing.T) {
	mol, err := ReadAdjList("1 *1 C u0 p0 c0 {2,S}\n2 *2 H u0 p0 c0 {1,S}", true)
	require.NoError(Te, err)
	assert.Equal(Te, "*1", mol.Atom(0).Label)
	assert.Equal(Te, "*2", mol.Atom(1).Label)
	mol.ClearLabels()
	for _, at := range mol.Atoms {
		assert.Empty(Te, at.Label)
	}
}

func TestReadAdjListErrors(Te *testing.T) {
	cases := map[string]string{
		"empty":          "\n\n",
		"one-sided bond": "1 C u0 {2,S}\n2 C u0",
		"order mismatch": "1 C u0 {2,S}\n2 C u0 {1,D}",
		"dangling bond":  "1 C u0 {3,S}\n2 C u0",
		"self bond":      "1 C u0 {1,S}",
		"bad element":    "1 Xx u0",
		"bad sequence":   "2 C u0",
		"bad order":      "1 C u0 {2,X}\n2 C u0 {1,X}",
	}
	for name, text := range cases {
		_, err := ReadAdjList(text, false)
		assert.Error(Te, err, name)
	}
	//carbon with five bonds
	_, err := ReadAdjList("1 C u0 {2,S} {3,S} {4,S} {5,S} {6,S}\n2 C u0 {1,S}\n3 C u0 {1,S}\n4 C u0 {1,S}\n5 C u0 {1,S}\n6 C u0 {1,S}", true)
	require.Error(Te, err)
	perr, ok := err.(ParseError)
	require.True(Te, ok)
	assert.Contains(Te, perr.Decorate(""), "SaturateH")
}

func TestAdjListWrite(Te *testing.T) {
	text, err := os.ReadFile("test/allyl.adj")
	require.NoError(Te, err)
	mol, err := ReadAdjList(string(text), true)
	require.NoError(Te, err)
	heavy := mol.AdjList(false)
	assert.Equal(Te, "1 C u1 p0 c0 {2,S}\n2 C u0 p0 c0 {1,S} {3,D}\n3 C u0 p0 c0 {2,D}", heavy)
	full := mol.AdjList(true)
	assert.Equal(Te, mol.Len(), len(strings.Split(full, "\n")))
	again, err := ReadAdjList(full, false)
	require.NoError(Te, err)
	assert.Equal(Te, mol.Formula(), again.Formula())

	old := mol.AdjListOld(false)
	assert.True(Te, strings.HasPrefix(old, "1 C 1 {2,S}\n"), old)
	fromOld, err := ReadAdjList(old, true)
	require.NoError(Te, err)
	assert.Equal(Te, "C3H5", fromOld.Formula())
}

func TestLegacySpinStates(Te *testing.T) {
	cases := []struct {
		text      string
		radicals  int
		lonePairs int
		written   string
	}{
		{"1 C 2S", 0, 1, "1 C 2S"},
		{"1 C 2T", 2, 0, "1 C 2T"},
		{"1 C 2", 2, 0, "1 C 2T"},
		{"1 C 0", 0, 0, "1 C 0"},
		{"1 O 2S", 0, 3, "1 O 2S"},
		{"1 C 4V", 4, 0, "1 C 4"},
	}
	for _, c := range cases {
		mol, err := ReadAdjList(c.text, true)
		require.NoError(Te, err, c.text)
		at := mol.Atom(0)
		assert.Equal(Te, c.radicals, at.Radicals, c.text)
		assert.Equal(Te, c.lonePairs, at.LonePairs, c.text)
		assert.Equal(Te, c.written, mol.AdjListOld(false), c.text)
	}
	//singlet and triplet methylene both have two hydrogens
	singlet, err := ReadAdjList("1 C 2S", true)
	require.NoError(Te, err)
	assert.Equal(Te, "CH2", singlet.Formula())
	assert.Equal(Te, 1, singlet.Multiplicity())
	triplet, err := ReadAdjList("1 C 2T", true)
	require.NoError(Te, err)
	assert.Equal(Te, "CH2", triplet.Formula())
	assert.Equal(Te, 3, triplet.Multiplicity())

	//the current dialect singlet is written with its pair
	cur, err := ReadAdjList("1 C u0 p1 c0", true)
	require.NoError(Te, err)
	assert.True(Te, strings.HasPrefix(cur.AdjListOld(true), "1 C 2S {2,S} {3,S}\n"), cur.AdjListOld(true))

	for _, bad := range []string{"1 C 1S", "1 C 3T", "1 C 2X", "1 C 2V"} {
		_, err := ReadAdjList(bad, true)
		assert.Error(Te, err, bad)
	}
}

func TestMoleculeCopy(Te *testing.T) {
	mol, err := ReadAdjList("1 C u0 p0 c0 {2,D}\n2 O u0 p2 c0 {1,D}", true)
	require.NoError(Te, err)
	cp := mol.Copy()
	cp.Atom(0).Label = "*1"
	cp.BondBetween(0, 1).SetOrder(1)
	assert.Empty(Te, mol.Atom(0).Label)
	assert.Equal(Te, 2.0, mol.BondBetween(0, 1).Order)
	assert.Equal(Te, "CH2O", cp.Formula())
}

func TestFormulaOrder(Te *testing.T) {
	mol, err := ReadAdjList("1 O u0 p2 c0 {2,S}\n2 C u0 p0 c0 {1,S} {3,S}\n3 Cl u0 p3 c0 {2,S}", true)
	require.NoError(Te, err)
	assert.Equal(Te, "CH3ClO", mol.Formula())
	n2, err := ReadAdjList("1 N u0 p1 c0 {2,T}\n2 N u0 p1 c0 {1,T}", true)
	require.NoError(Te, err)
	assert.Equal(Te, "N2", n2.Formula())
}
