/*
 * bonds.go, part of monLint.
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
	"sort"
	"strings"
)

// BondKey is the canonical, unordered identity of a bond: the two atom
// names with the lexicographically smaller one first. Bond direction
// carries no meaning in either dictionary.
type BondKey struct {
	A1, A2 string
}

func (k BondKey) String() string {
	return k.A1 + "-" + k.A2
}

// BondAttr holds the canonical attributes of a bond: the 4-character
// lower-case order token and the upper-case aromatic flag, after
// aromatic promotion.
type BondAttr struct {
	Order    string
	Aromatic string
}

func (a BondAttr) String() string {
	return a.Order + "/" + a.Aromatic
}

// BondSet maps canonical bond keys to canonical bond attributes for
// one component.
type BondSet map[BondKey]BondAttr

// The order tokens both dictionaries may use, truncated to 4
// lower-case characters. Anything else means the source is malformed.
var validOrders = map[string]bool{
	"sing": true,
	"doub": true,
	"trip": true,
	"arom": true,
	"delo": true,
	"1.5":  true,
}

// CanonicalBond normalizes one bond record into its canonical key and
// attributes:
//
// The atom pair is sorted, so (a,b) and (b,a) yield the same key. The
// order token is truncated to its first 4 characters and lower-cased;
// the aromatic flag is upper-cased. A single or double bond flagged as
// aromatic is promoted to aromatic order, so a source recording an
// aromatic ring bond by its formal order compares equal to one
// recording it as aromatic directly.
//
// Unknown order tokens or aromatic flags are data errors in the
// source, reported as a non-critical error for the component at hand.
func CanonicalBond(id1, id2, order, aromatic string) (BondKey, BondAttr, error) {
	if id1 > id2 {
		id1, id2 = id2, id1
	}
	key := BondKey{id1, id2}
	o := strings.ToLower(order)
	if len(o) > 4 {
		o = o[:4]
	}
	if !validOrders[o] {
		return key, BondAttr{}, formatError("", "unknown bond order %q for bond %s", order, key)
	}
	ar := strings.ToUpper(aromatic)
	if ar != "Y" && ar != "N" {
		return key, BondAttr{}, formatError("", "unknown aromatic flag %q for bond %s", aromatic, key)
	}
	if (o == "sing" || o == "doub") && ar == "Y" {
		o = "arom"
	}
	return key, BondAttr{o, ar}, nil
}

// sortBondKeys orders bond keys by atom pair, for reproducible
// reports.
func sortBondKeys(keys []BondKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].A1 != keys[j].A1 {
			return keys[i].A1 < keys[j].A1
		}
		return keys[i].A2 < keys[j].A2
	})
}
