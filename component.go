/*
 * component.go, part of monLint.
 *
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
 *
 */

package monlint

import (
	"strings"

	"github.com/rmera/monlint/cif"
)

// AtomSet maps heavy-atom names to element symbols, both upper-cased.
// Hydrogens are excluded by policy: monomer libraries and the CCD
// disagree wildly on hydrogen naming, and the comparison is about the
// heavy-atom skeleton.
type AtomSet map[string]string

// Component is the comparable representation of one chemical
// component, built fresh from a data block for each comparison.
type Component struct {
	Name  string
	Atoms AtomSet
	Bonds BondSet
}

// BondColumns maps the logical roles of a bond table to the physical
// column names one source uses. The two dictionaries name the same
// concepts differently, so each gets its own mapping.
type BondColumns struct {
	Atom1    string
	Atom2    string
	Order    string
	Aromatic string
}

// The bond-table vocabularies of the two sources.
var (
	CCDBondColumns     = BondColumns{"atom_id_1", "atom_id_2", "value_order", "pdbx_aromatic_flag"}
	MonomerBondColumns = BondColumns{"atom_id_1", "atom_id_2", "type", "aromatic"}
)

// Atoms extracts the heavy-atom set of a block from its
// _chem_comp_atom table. An absent table yields an empty set, which
// the comparison then reports as an atom mismatch; a duplicated atom
// name is an internal-consistency fault of the source table and is
// returned as an error.
func Atoms(b *cif.Block) (AtomSet, error) {
	t := b.Table("_chem_comp_atom.", "atom_id", "type_symbol")
	atoms := make(AtomSet)
	heavy := 0
	for i := 0; i < t.Len(); i++ {
		sym := strings.ToUpper(t.Get(i, 1))
		if sym == "H" {
			continue
		}
		heavy++
		atoms[strings.ToUpper(t.Get(i, 0))] = sym
	}
	if len(atoms) != heavy {
		return nil, formatError(b.Name, "%d heavy atom rows but %d distinct names", heavy, len(atoms))
	}
	return atoms, nil
}

// Bonds extracts the canonical bond set of a block from the bond table
// addressed by cols. Bonds with an endpoint outside the given atom set
// (hydrogens, mostly) are dropped. Duplicate canonical keys keep the
// last row's attributes, but the duplicated keys are also returned so
// the caller can surface them. An absent bond table yields an empty
// set; single-atom components have none.
func Bonds(b *cif.Block, cols BondColumns, atoms AtomSet) (BondSet, []BondKey, error) {
	t := b.Table("_chem_comp_bond.", cols.Atom1, cols.Atom2, cols.Order, cols.Aromatic)
	bonds := make(BondSet)
	var dups []BondKey
	for i := 0; i < t.Len(); i++ {
		a1 := strings.ToUpper(t.Get(i, 0))
		a2 := strings.ToUpper(t.Get(i, 1))
		if _, ok := atoms[a1]; !ok {
			continue
		}
		if _, ok := atoms[a2]; !ok {
			continue
		}
		key, attr, err := CanonicalBond(a1, a2, t.Get(i, 2), t.Get(i, 3))
		if err != nil {
			return nil, nil, errDecorate(err, "Bonds: "+b.Name)
		}
		if _, ok := bonds[key]; ok {
			dups = append(dups, key)
		}
		bonds[key] = attr //last row wins, as upstream sources assume
	}
	return bonds, dups, nil
}

// Extract builds the full comparable representation of a component
// from its block, under the column vocabulary of its source. It also
// returns the duplicated bond keys found, if any.
func Extract(b *cif.Block, name string, cols BondColumns) (*Component, []BondKey, error) {
	atoms, err := Atoms(b)
	if err != nil {
		return nil, nil, errDecorate(err, "Extract")
	}
	bonds, dups, err := Bonds(b, cols, atoms)
	if err != nil {
		return nil, nil, errDecorate(err, "Extract")
	}
	return &Component{Name: name, Atoms: atoms, Bonds: bonds}, dups, nil
}
