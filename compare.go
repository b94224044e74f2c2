/*
 * compare.go, part of monLint.
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
	"fmt"
	"maps"
	"strings"
)

// Kind labels what a Discrepancy is about.
type Kind int

const (
	//the declared or tallied element counts differ
	FormulaAtomMismatch Kind = iota
	//the atom name -> element maps differ
	AtomNameMismatch
	//the two sides bond different atom pairs
	BondSetMismatch
	//a bond present on both sides has different order or aromaticity
	BondAttributeMismatch
	//a record was malformed or internally inconsistent
	SourceDataError
	//the monomer has no CCD entry
	MissingFromCCD
	//the heavy-atom bond graph has more than one piece
	DisconnectedAtoms
)

// Discrepancy is one disagreement found between (or within) the
// sources. Only the fields relevant to its Kind are set. It is a
// reporting artifact; nothing stores it beyond the run that found it.
type Discrepancy struct {
	Kind Kind
	Name string //component name
	//FormulaAtomMismatch: the two renderings in conflict
	Mon string
	CCD string
	//BondSetMismatch: the symmetric difference of the bond keys
	OnlyMon []BondKey
	OnlyCCD []BondKey
	//BondAttributeMismatch: the shared key and both attribute values
	Bond    BondKey
	MonAttr BondAttr
	CCDAttr BondAttr
	//SourceDataError, DisconnectedAtoms: free-form detail
	Detail string
}

// String renders the discrepancy as one report line.
func (d Discrepancy) String() string {
	switch d.Kind {
	case FormulaAtomMismatch:
		return fmt.Sprintf("[%s] %s <> %s", d.Name, d.Mon, d.CCD)
	case AtomNameMismatch:
		return fmt.Sprintf("atom names differ in %s", d.Name)
	case BondSetMismatch:
		s := fmt.Sprintf("bonds differ in %s", d.Name)
		if len(d.OnlyMon) > 0 {
			s += fmt.Sprintf("; only in mon. lib.: %s", joinKeys(d.OnlyMon))
		}
		if len(d.OnlyCCD) > 0 {
			s += fmt.Sprintf("; only in CCD: %s", joinKeys(d.OnlyCCD))
		}
		return s
	case BondAttributeMismatch:
		return fmt.Sprintf("[%s] %s: %s <> CCD %s", d.Name, d.Bond, d.MonAttr, d.CCDAttr)
	case SourceDataError:
		return fmt.Sprintf("[%s] bad source data: %s", d.Name, d.Detail)
	case MissingFromCCD:
		return fmt.Sprintf("not in CCD: %s", d.Name)
	case DisconnectedAtoms:
		return fmt.Sprintf("[%s] disconnected atoms: %s", d.Name, d.Detail)
	}
	return fmt.Sprintf("[%s] unknown discrepancy", d.Name)
}

func joinKeys(keys []BondKey) string {
	strs := make([]string, len(keys))
	for i, k := range keys {
		strs[i] = k.String()
	}
	return strings.Join(strs, " ")
}

// Compare checks two representations of the same component, monomer
// library against CCD, and returns every discrepancy found. Maps are
// compared by exact key+value equality; all emitted lists are in
// sorted order so the output of a run is reproducible.
func Compare(mon, ccd *Component) []Discrepancy {
	var ds []Discrepancy
	name := mon.Name
	if !maps.Equal(mon.Atoms, ccd.Atoms) {
		ds = append(ds, Discrepancy{Kind: AtomNameMismatch, Name: name})
		//distinguish "same atoms under different names" from a
		//genuinely different composition
		monf := CountElements(mon.Atoms)
		ccdf := CountElements(ccd.Atoms)
		if !maps.Equal(monf, ccdf) {
			ds = append(ds, Discrepancy{
				Kind: FormulaAtomMismatch,
				Name: name,
				Mon:  monf.String(),
				CCD:  ccdf.String(),
			})
		}
	}
	if !maps.Equal(mon.Bonds, ccd.Bonds) {
		var onlyMon, onlyCCD, shared []BondKey
		for k := range mon.Bonds {
			if _, ok := ccd.Bonds[k]; !ok {
				onlyMon = append(onlyMon, k)
			} else {
				shared = append(shared, k)
			}
		}
		for k := range ccd.Bonds {
			if _, ok := mon.Bonds[k]; !ok {
				onlyCCD = append(onlyCCD, k)
			}
		}
		sortBondKeys(onlyMon)
		sortBondKeys(onlyCCD)
		sortBondKeys(shared)
		ds = append(ds, Discrepancy{
			Kind:    BondSetMismatch,
			Name:    name,
			OnlyMon: onlyMon,
			OnlyCCD: onlyCCD,
		})
		for _, k := range shared {
			if mon.Bonds[k] != ccd.Bonds[k] {
				ds = append(ds, Discrepancy{
					Kind:    BondAttributeMismatch,
					Name:    name,
					Bond:    k,
					MonAttr: mon.Bonds[k],
					CCDAttr: ccd.Bonds[k],
				})
			}
		}
	}
	return ds
}
