package chemgraph

import (
	"math"
	"sort"

	chem "github.com/rmera/gokin"
)

// Isomorphic returns true if a and b are the same molecular graph: there is a
// one-to-one map between their atoms that keeps element, unpaired electrons, lone
// pairs, charge and every bond with its order. Labels are ignored.
func Isomorphic(a, b *chem.Molecule) bool {
	if a.Len() != b.Len() || len(a.Bonds) != len(b.Bonds) {
		return false
	}
	if a.Len() == 0 {
		return true
	}
	ga := FromMolecule(a)
	gb := FromMolecule(b)
	if !sameSignatures(ga, gb) {
		return false
	}
	m := &matcher{
		a:     ga,
		b:     gb,
		order: searchOrder(ga),
		ab:    make(map[int64]int64, a.Len()),
		ba:    make(map[int64]int64, a.Len()),
	}
	return m.match(0)
}

func sameSignatures(ga, gb *Graph) bool {
	sa := make([]string, 0, ga.Mol.Len())
	sb := make([]string, 0, gb.Mol.Len())
	for i := 0; i < ga.Mol.Len(); i++ {
		sa = append(sa, ga.Mol.Atom(i).Signature())
		sb = append(sb, gb.Mol.Atom(i).Signature())
	}
	sort.Strings(sa)
	sort.Strings(sb)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

// searchOrder walks each connected part of the graph breadth-first, starting
// from its most connected heavy atom, so every atom after the first of its part
// has an already-mapped neighbor. That keeps the backtracking shallow.
func searchOrder(g *Graph) []int64 {
	n := g.Mol.Len()
	starts := make([]int64, n)
	for i := range starts {
		starts[i] = int64(i)
	}
	sort.SliceStable(starts, func(i, j int) bool {
		ai, aj := g.Atom(starts[i]), g.Atom(starts[j])
		if ai.IsHydrogen() != aj.IsHydrogen() {
			return !ai.IsHydrogen()
		}
		return len(ai.Bonds) > len(aj.Bonds)
	})
	seen := make(map[int64]bool, n)
	order := make([]int64, 0, n)
	for _, s := range starts {
		if seen[s] {
			continue
		}
		queue := []int64{s}
		seen[s] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			order = append(order, cur)
			for _, nb := range g.Neighbors(cur) {
				if !seen[nb] {
					seen[nb] = true
					queue = append(queue, nb)
				}
			}
		}
	}
	return order
}

type matcher struct {
	a, b   *Graph
	order  []int64
	ab, ba map[int64]int64
}

func (m *matcher) match(depth int) bool {
	if depth == len(m.order) {
		return true
	}
	x := m.order[depth]
	for _, y := range m.candidates(x) {
		if !m.feasible(x, y) {
			continue
		}
		m.ab[x] = y
		m.ba[y] = x
		if m.match(depth + 1) {
			return true
		}
		delete(m.ab, x)
		delete(m.ba, y)
	}
	return false
}

// candidates returns the atoms of b that x could map to. If x has a mapped
// neighbor, only the free neighbors of its image are worth trying.
func (m *matcher) candidates(x int64) []int64 {
	for _, nb := range m.a.Neighbors(x) {
		if img, ok := m.ab[nb]; ok {
			ret := make([]int64, 0, 4)
			for _, c := range m.b.Neighbors(img) {
				if _, used := m.ba[c]; !used {
					ret = append(ret, c)
				}
			}
			return ret
		}
	}
	ret := make([]int64, 0, m.b.Mol.Len())
	for i := 0; i < m.b.Mol.Len(); i++ {
		if _, used := m.ba[int64(i)]; !used {
			ret = append(ret, int64(i))
		}
	}
	return ret
}

// feasible checks that mapping x onto y keeps every bond between x and the
// atoms mapped so far, in both directions.
func (m *matcher) feasible(x, y int64) bool {
	if m.a.Atom(x).Signature() != m.b.Atom(y).Signature() {
		return false
	}
	for _, nb := range m.a.Neighbors(x) {
		img, ok := m.ab[nb]
		if !ok {
			continue
		}
		oa, _ := m.a.Order(x, nb)
		ob, bonded := m.b.Order(y, img)
		if !bonded || math.Abs(oa-ob) > 1e-3 {
			return false
		}
	}
	for _, nb := range m.b.Neighbors(y) {
		if _, ok := m.ba[nb]; !ok {
			continue
		}
		if _, bonded := m.a.Order(x, m.ba[nb]); !bonded {
			return false
		}
	}
	return true
}
