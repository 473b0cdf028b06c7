package chemgraph

import (
	chem "github.com/rmera/gokin"
)

// MaxResonance caps the number of structures Resonance returns.
const MaxResonance = 32

// Resonance returns mol followed by every distinct structure reachable from it by
// moving an unpaired electron across an allylic system, X(.)-Y=Z to X=Y-Z(.).
// Structures are compared with Isomorphic, so symmetric shifts add nothing.
// mol itself is not modified.
func Resonance(mol *chem.Molecule) []*chem.Molecule {
	ret := []*chem.Molecule{mol}
	for i := 0; i < len(ret) && len(ret) < MaxResonance; i++ {
		for _, s := range allylShifts(ret[i]) {
			if !containsIsomorph(ret, s) {
				ret = append(ret, s)
			}
			if len(ret) >= MaxResonance {
				break
			}
		}
	}
	return ret
}

func containsIsomorph(mols []*chem.Molecule, mol *chem.Molecule) bool {
	for _, m := range mols {
		if Isomorphic(m, mol) {
			return true
		}
	}
	return false
}

func allylShifts(mol *chem.Molecule) []*chem.Molecule {
	ret := make([]*chem.Molecule, 0, 2)
	for _, x := range mol.Atoms {
		if x.Radicals == 0 {
			continue
		}
		for _, xy := range x.Bonds {
			if xy.Order != 1 && xy.Order != 2 {
				continue
			}
			y := xy.Cross(x)
			for _, yz := range y.Bonds {
				if yz == xy || (yz.Order != 2 && yz.Order != 3) {
					continue
				}
				z := yz.Cross(y)
				cp := mol.Copy()
				b1 := cp.BondBetween(x.Index, y.Index)
				b2 := cp.BondBetween(y.Index, z.Index)
				b1.SetOrder(b1.Order + 1)
				b2.SetOrder(b2.Order - 1)
				cp.Atom(x.Index).Radicals--
				cp.Atom(z.Index).Radicals++
				ret = append(ret, cp)
			}
		}
	}
	return ret
}
