/*
 * compare_test.go, part of monLint.
 *
 * Copyright 2026 rmeraaatacademicosdotutadotcl
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
 * monLint is developed at Universidad de Tarapaca (UTA)
 *
 */

package monlint

import "testing"

func comp(name string, atoms AtomSet, bonds BondSet) *Component {
	return &Component{Name: name, Atoms: atoms, Bonds: bonds}
}

func kinds(ds []Discrepancy) []Kind {
	ks := make([]Kind, len(ds))
	for i, d := range ds {
		ks[i] = d.Kind
	}
	return ks
}

func TestCompareEqual(Te *testing.T) {
	a := AtomSet{"N1": "N", "C1": "C", "O1": "O"}
	b := BondSet{{"C1", "N1"}: {"sing", "N"}, {"C1", "O1"}: {"doub", "N"}}
	ds := Compare(comp("XXX", a, b), comp("XXX", a, b))
	if len(ds) != 0 {
		Te.Errorf("equal components gave discrepancies: %v", ds)
	}
}

// Same elements under different names: atom mismatch but no
// formula-level mismatch.
func TestCompareRenamedAtoms(Te *testing.T) {
	mon := comp("XXX", AtomSet{"C1": "C", "O1": "O"}, nil)
	ccd := comp("XXX", AtomSet{"CA": "C", "O": "O"}, nil)
	ds := Compare(mon, ccd)
	if len(ds) != 1 || ds[0].Kind != AtomNameMismatch {
		Te.Fatalf("got %v, want one AtomNameMismatch", kinds(ds))
	}
}

func TestCompareDifferentComposition(Te *testing.T) {
	mon := comp("XXX", AtomSet{"C1": "C", "O1": "O"}, nil)
	ccd := comp("XXX", AtomSet{"C1": "C", "N1": "N"}, nil)
	ds := Compare(mon, ccd)
	if len(ds) != 2 || ds[0].Kind != AtomNameMismatch || ds[1].Kind != FormulaAtomMismatch {
		Te.Fatalf("got %v, want AtomNameMismatch then FormulaAtomMismatch", kinds(ds))
	}
	if ds[1].Mon != "C O" || ds[1].CCD != "C N" {
		Te.Errorf("wrong formulas in report: %q <> %q", ds[1].Mon, ds[1].CCD)
	}
}

func TestCompareBonds(Te *testing.T) {
	atoms := AtomSet{"A": "C", "B": "C", "C": "C"}
	mon := comp("XXX", atoms, BondSet{{"A", "B"}: {"sing", "N"}})
	ccd := comp("XXX", atoms, BondSet{{"A", "B"}: {"doub", "N"}, {"B", "C"}: {"sing", "N"}})
	ds := Compare(mon, ccd)
	if len(ds) != 2 {
		Te.Fatalf("got %v, want BondSetMismatch and BondAttributeMismatch", kinds(ds))
	}
	set := ds[0]
	if set.Kind != BondSetMismatch || len(set.OnlyMon) != 0 || len(set.OnlyCCD) != 1 ||
		set.OnlyCCD[0] != (BondKey{"B", "C"}) {
		Te.Errorf("wrong set mismatch: %+v", set)
	}
	attr := ds[1]
	if attr.Kind != BondAttributeMismatch || attr.Bond != (BondKey{"A", "B"}) ||
		attr.MonAttr != (BondAttr{"sing", "N"}) || attr.CCDAttr != (BondAttr{"doub", "N"}) {
		Te.Errorf("wrong attribute mismatch: %+v", attr)
	}
}

// Swapping the inputs must swap the sides of the report, nothing else.
func TestCompareSymmetric(Te *testing.T) {
	atoms := AtomSet{"A": "C", "B": "C", "C": "C"}
	mon := comp("XXX", atoms, BondSet{{"A", "B"}: {"sing", "N"}})
	ccd := comp("XXX", atoms, BondSet{{"A", "B"}: {"doub", "N"}, {"B", "C"}: {"sing", "N"}})
	fwd := Compare(mon, ccd)
	rev := Compare(ccd, mon)
	if len(fwd) != len(rev) {
		Te.Fatalf("asymmetric lengths: %d vs %d", len(fwd), len(rev))
	}
	if len(fwd[0].OnlyCCD) != len(rev[0].OnlyMon) || fwd[0].OnlyCCD[0] != rev[0].OnlyMon[0] {
		Te.Errorf("set mismatch sides don't swap: %+v vs %+v", fwd[0], rev[0])
	}
	if fwd[1].MonAttr != rev[1].CCDAttr || fwd[1].CCDAttr != rev[1].MonAttr {
		Te.Errorf("attribute sides don't swap: %+v vs %+v", fwd[1], rev[1])
	}
}

// Differently recorded source order tokens that canonicalize equal
// must not be reported.
func TestComparePromotedBondsEqual(Te *testing.T) {
	atoms := AtomSet{"C1": "C", "C2": "C"}
	k1, a1, err := CanonicalBond("C1", "C2", "doub", "Y")
	if err != nil {
		Te.Fatal(err)
	}
	k2, a2, err := CanonicalBond("C2", "C1", "arom", "Y")
	if err != nil {
		Te.Fatal(err)
	}
	ds := Compare(comp("XXX", atoms, BondSet{k1: a1}), comp("XXX", atoms, BondSet{k2: a2}))
	if len(ds) != 0 {
		Te.Errorf("promoted bonds compare unequal: %v", ds)
	}
}
