/*
 * driver.go, part of monLint.
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
	"log"
	"maps"
	"strings"

	"github.com/rmera/monlint/cif"
)

// Checker drives a whole consistency run. The zero value is a quiet
// checker with every optional check off; there is no global state, a
// Checker carries all its configuration.
type Checker struct {
	Verbose       bool //log each component as it is compared
	ReportMissing bool //report monomers with no CCD entry
	Connectivity  bool //also check bond-graph connectivity
	Log           *log.Logger
}

func (ck *Checker) logf(format string, a ...interface{}) {
	if ck.Log != nil {
		ck.Log.Printf(format, a...)
		return
	}
	log.Printf(format, a...)
}

// CheckFormulas verifies, for every CCD block that declares one, that
// the formula string matches the block's own atom table. Unlike the
// cross-source comparison this tallies all atoms, hydrogens included;
// a declared formula counts them. Blocks without a formula are
// skipped. Malformed blocks become SourceDataError discrepancies and
// the run continues.
func (ck *Checker) CheckFormulas(ccd []*cif.Block) []Discrepancy {
	var ds []Discrepancy
	for _, b := range ccd {
		text, ok := b.Value("_chem_comp.formula")
		if !ok {
			continue
		}
		declared, err := ParseFormula(text)
		if err != nil {
			ds = append(ds, Discrepancy{Kind: SourceDataError, Name: b.Name, Detail: err.Error()})
			continue
		}
		tally := make(Formula)
		t := b.Table("_chem_comp_atom.", "type_symbol")
		for i := 0; i < t.Len(); i++ {
			tally[strings.ToUpper(t.Get(i, 0))]++
		}
		if !maps.Equal(declared, tally) {
			ds = append(ds, Discrepancy{
				Kind: FormulaAtomMismatch,
				Name: b.Name,
				Mon:  declared.String(),
				CCD:  tally.String(),
			})
		}
	}
	return ds
}

// CompareLibraries compares every monomer-library component that also
// exists in the CCD, and returns the discrepancies found together with
// the number of components compared. Components present only in the
// CCD are never flagged; the monomer library is the smaller, curated
// subset. A malformed component, or an unreadable file, yields a
// SourceDataError discrepancy and the run continues.
func (ck *Checker) CompareLibraries(monPaths []string, ccd []*cif.Block) ([]Discrepancy, int) {
	index := make(map[string]*cif.Block, len(ccd))
	for _, b := range ccd {
		index[b.Name] = b
	}
	var ds []Discrepancy
	matched := 0
	for _, path := range monPaths {
		blocks, err := cif.ReadFile(path)
		if err != nil {
			ds = append(ds, Discrepancy{Kind: SourceDataError, Name: path, Detail: err.Error()})
			continue
		}
		for _, mb := range blocks {
			if mb.Name == "" || mb.Name == "comp_list" {
				continue
			}
			name, found := strings.CutPrefix(mb.Name, "comp_")
			if !found {
				ds = append(ds, Discrepancy{Kind: SourceDataError, Name: mb.Name,
					Detail: "monomer block name without comp_ prefix"})
				continue
			}
			cb, inCCD := index[name]
			if !inCCD {
				if ck.ReportMissing {
					ds = append(ds, Discrepancy{Kind: MissingFromCCD, Name: name})
				}
				continue
			}
			matched++
			if ck.Verbose {
				ck.logf("comparing %s", name)
			}
			ds = append(ds, ck.compareComponent(name, mb, cb)...)
		}
	}
	return ds, matched
}

// compareComponent runs every enabled check on one matched pair of
// blocks. Extraction faults are confined to this component.
func (ck *Checker) compareComponent(name string, mb, cb *cif.Block) []Discrepancy {
	var ds []Discrepancy
	mon, mdups, err := Extract(mb, name, MonomerBondColumns)
	if err != nil {
		return append(ds, Discrepancy{Kind: SourceDataError, Name: name, Detail: err.Error()})
	}
	ccd, cdups, err := Extract(cb, name, CCDBondColumns)
	if err != nil {
		return append(ds, Discrepancy{Kind: SourceDataError, Name: name, Detail: err.Error()})
	}
	for _, k := range mdups {
		ds = append(ds, Discrepancy{Kind: SourceDataError, Name: name,
			Detail: "duplicate bond " + k.String() + " in monomer library"})
	}
	for _, k := range cdups {
		ds = append(ds, Discrepancy{Kind: SourceDataError, Name: name,
			Detail: "duplicate bond " + k.String() + " in CCD"})
	}
	ds = append(ds, Compare(mon, ccd)...)
	if ck.Connectivity {
		if d := CheckConnectivity(mon); d != nil {
			d.Detail += " (monomer library)"
			ds = append(ds, *d)
		}
		if d := CheckConnectivity(ccd); d != nil {
			d.Detail += " (CCD)"
			ds = append(ds, *d)
		}
	}
	return ds
}
