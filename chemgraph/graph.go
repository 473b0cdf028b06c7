package chemgraph

import (
	chem "github.com/rmera/gokin"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph is a gonum view of a chem.Molecule. Node IDs are atom indexes
// and edge weights are bond orders. The molecule must not change while
// the view is in use.
type Graph struct {
	*simple.WeightedUndirectedGraph
	Mol *chem.Molecule
}

// FromMolecule builds the gonum graph for mol.
func FromMolecule(mol *chem.Molecule) *Graph {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for i := 0; i < mol.Len(); i++ {
		g.AddNode(simple.Node(i))
	}
	for _, b := range mol.Bonds {
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(b.At1.Index), simple.Node(b.At2.Index), b.Order))
	}
	return &Graph{WeightedUndirectedGraph: g, Mol: mol}
}

// Atom returns the atom behind the node with the given id.
func (G *Graph) Atom(id int64) *chem.Atom {
	return G.Mol.Atom(int(id))
}

// Neighbors returns the ids of the nodes bonded to id.
func (G *Graph) Neighbors(id int64) []int64 {
	nodes := graph.NodesOf(G.From(id))
	ret := make([]int64, 0, len(nodes))
	for _, n := range nodes {
		ret = append(ret, n.ID())
	}
	return ret
}

// Order returns the bond order between x and y, and false if they
// are not bonded.
func (G *Graph) Order(x, y int64) (float64, bool) {
	if x == y {
		return 0, false
	}
	return G.Weight(x, y)
}

// Connected returns true if every atom of mol can be reached from every other.
func Connected(mol *chem.Molecule) bool {
	if mol.Len() == 0 {
		return false
	}
	return len(topo.ConnectedComponents(FromMolecule(mol))) == 1
}
