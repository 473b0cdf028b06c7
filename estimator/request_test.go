package estimator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmera/gokin/rxn"
)

func TestBuildRequestMethane(Te *testing.T) {
	req, err := BuildRequest([]*rxn.Species{mustSpecies(Te, "CH4", methaneAdj)})
	require.NoError(Te, err)
	expected := "reactant1 (molecule/cm3) 1\n" +
		"1 C 0 {2,S} {3,S} {4,S} {5,S}\n" +
		"2 H 0 {1,S}\n" +
		"3 H 0 {1,S}\n" +
		"4 H 0 {1,S}\n" +
		"5 H 0 {1,S}\n" +
		"\n" +
		"END\n"
	assert.Equal(Te, expected, string(req))
}

func TestBuildRequestDeduplicates(Te *testing.T) {
	a := mustSpecies(Te, "a", butenyl1Adj)
	//a renumbered copy of a, given as a separate species
	b := mustSpecies(Te, "b", "1 C u0 p0 c0 {2,S}\n2 C u0 p0 c0 {1,S} {3,D}\n3 C u0 p0 c0 {2,D} {4,S}\n4 C u1 p0 c0 {3,S}")
	c := mustSpecies(Te, "c", methylAdj)
	req, err := BuildRequest([]*rxn.Species{a, a, b, c})
	require.NoError(Te, err)
	s := string(req)
	assert.Equal(Te, 1, strings.Count(s, "reactant1 "))
	assert.Equal(Te, 1, strings.Count(s, "reactant2 "))
	assert.NotContains(Te, s, "reactant3")
	assert.True(Te, strings.HasSuffix(s, "\n\nEND\n"))
}

func TestBuildRequestClearsLabels(Te *testing.T) {
	sp := mustSpecies(Te, "x", "1 *1 C u1 p0 c0 {2,S}\n2 *2 C u0 p0 c0 {1,S}")
	req, err := BuildRequest([]*rxn.Species{sp})
	require.NoError(Te, err)
	assert.NotContains(Te, string(req), "*")
	//the species itself keeps them
	assert.Equal(Te, "*1", sp.Molecule().Atom(0).Label)
}

func TestBuildRequestEmpty(Te *testing.T) {
	_, err := BuildRequest(nil)
	assert.ErrorIs(Te, err, ErrNoReactants)
}
