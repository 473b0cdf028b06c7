package estimator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rmera/gokin/rxn"
)

const (
	methaneAdj = "1 C u0 p0 c0"
	methylAdj  = "multiplicity 2\n1 C u1 p0 c0"
	hAdj       = "multiplicity 2\n1 H u1 p0 c0"
	//but-2-enyl, radical on the terminal carbon and on C3
	butenyl1Adj = "1 C u1 p0 c0 {2,S}\n2 C u0 p0 c0 {1,S} {3,D}\n3 C u0 p0 c0 {2,D} {4,S}\n4 C u0 p0 c0 {3,S}"
	butenyl3Adj = "1 C u0 p0 c0 {2,D}\n2 C u0 p0 c0 {1,D} {3,S}\n3 C u1 p0 c0 {2,S} {4,S}\n4 C u0 p0 c0 {3,S}"
)

//methaneResponse is what the estimator answers for methane.
const methaneResponse = "CH4\n1 C 0\n\nCH3\n1 C 1\n\nH\n1 H 1\n\n\n" +
	"Reactions\n" +
	"CH4 --> CH3 + H\t1.0e14\t0\t100.0\tcomment\n"

func mustSpecies(Te *testing.T, label, adj string) *rxn.Species {
	Te.Helper()
	sp, err := rxn.SpeciesFromAdjList(label, adj)
	require.NoError(Te, err)
	return sp
}

func mustDictionary(Te *testing.T, raw string) (*Response, *Dictionary) {
	Te.Helper()
	resp, err := ParseResponse([]byte(raw))
	require.NoError(Te, err)
	dict, err := NewDictionary(resp)
	require.NoError(Te, err)
	return resp, dict
}
