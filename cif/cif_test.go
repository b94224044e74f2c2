/*
 * cif_test.go, part of monLint.
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

package cif

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestReadScalarsAndLoops(Te *testing.T) {
	blocks, err := Read(strings.NewReader(`#a comment
data_ONE
_chem_comp.id ONE
_chem_comp.name 'a name with spaces'
_chem_comp.formula
"C2 H N O"
loop_
_chem_comp_atom.atom_id
_chem_comp_atom.type_symbol
C1 C
'C 2' C
data_TWO
_chem_comp.id TWO
`))
	if err != nil {
		Te.Fatal(err)
	}
	if len(blocks) != 2 || blocks[0].Name != "ONE" || blocks[1].Name != "TWO" {
		Te.Fatalf("wrong blocks: %v", blocks)
	}
	b := blocks[0]
	if v, ok := b.Value("_chem_comp.name"); !ok || v != "a name with spaces" {
		Te.Errorf("got %q %v", v, ok)
	}
	//a scalar value on the line after its tag
	if v, ok := b.Value("_chem_comp.FORMULA"); !ok || v != "C2 H N O" {
		Te.Errorf("got %q %v", v, ok)
	}
	if _, ok := b.Value("_chem_comp.absent"); ok {
		Te.Error("absent tag reported present")
	}
	t := b.Table("_chem_comp_atom.", "type_symbol", "atom_id")
	if t.Len() != 2 {
		Te.Fatalf("got %d rows, want 2", t.Len())
	}
	//columns come back in the requested order, not file order
	if t.Get(0, 0) != "C" || t.Get(0, 1) != "C1" || t.Get(1, 1) != "C 2" {
		Te.Errorf("wrong cells: %q %q %q", t.Get(0, 0), t.Get(0, 1), t.Get(1, 1))
	}
}

func TestReadAbsentTable(Te *testing.T) {
	blocks, err := Read(strings.NewReader(`data_ONE
loop_
_chem_comp_atom.atom_id
_chem_comp_atom.type_symbol
C1 C
`))
	if err != nil {
		Te.Fatal(err)
	}
	t := blocks[0].Table("_chem_comp_bond.", "atom_id_1", "atom_id_2")
	if t != nil {
		Te.Error("found a bond table in a block without one")
	}
	if t.Len() != 0 {
		Te.Error("a nil table must have zero rows")
	}
}

func TestReadTextField(Te *testing.T) {
	blocks, err := Read(strings.NewReader(`data_ONE
_entry.note
;first line
second line
;
_entry.after done
`))
	if err != nil {
		Te.Fatal(err)
	}
	v, ok := blocks[0].Value("_entry.note")
	if !ok || v != "first line\nsecond line" {
		Te.Errorf("got %q %v", v, ok)
	}
	if v, ok := blocks[0].Value("_entry.after"); !ok || v != "done" {
		Te.Errorf("got %q %v", v, ok)
	}
}

func TestReadMalformed(Te *testing.T) {
	for _, text := range []string{
		"_tag value\n",               //tag outside a data block
		"data_X\nloop_\n_a\nv1 v2\n", //row longer than the header
		"data_X\n_tag\n",             //tag with no value
		"data_X\nstray\n",            //value with no tag
	} {
		if _, err := Read(strings.NewReader(text)); err == nil {
			Te.Errorf("no error for %q", text)
		}
	}
}

func TestReadFileGzip(Te *testing.T) {
	plain, err := ReadFile(filepath.Join("..", "test", "ccd.cif"))
	if err != nil {
		Te.Fatal(err)
	}
	gzipped, err := ReadFile(filepath.Join("..", "test", "ccd.cif.gz"))
	if err != nil {
		Te.Fatal(err)
	}
	if len(plain) != len(gzipped) {
		Te.Fatalf("plain has %d blocks, gzipped %d", len(plain), len(gzipped))
	}
	for i := range plain {
		if plain[i].Name != gzipped[i].Name {
			Te.Errorf("block %d: %s vs %s", i, plain[i].Name, gzipped[i].Name)
		}
	}
}

func TestSortedSearch(Te *testing.T) {
	paths, err := SortedSearch(filepath.Join("..", "test", "monlib"))
	if err != nil {
		Te.Fatal(err)
	}
	want := []string{
		filepath.Join("..", "test", "monlib", "a", "ATN.cif"),
		filepath.Join("..", "test", "monlib", "b", "BAD.cif"),
		filepath.Join("..", "test", "monlib", "b", "BDX.cif"),
		filepath.Join("..", "test", "monlib", "m", "MIS.cif"),
	}
	if len(paths) != len(want) {
		Te.Fatalf("got %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			Te.Errorf("path %d: got %s, want %s", i, paths[i], want[i])
		}
	}
}
