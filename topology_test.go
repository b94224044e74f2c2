/*
 * topology_test.go, part of monLint.
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

func TestConnectivityConnected(Te *testing.T) {
	c := comp("TST",
		AtomSet{"C1": "C", "C2": "C", "O1": "O"},
		BondSet{
			{"C1", "C2"}: {"sing", "N"},
			{"C2", "O1"}: {"sing", "N"},
		})
	if d := CheckConnectivity(c); d != nil {
		Te.Errorf("connected component flagged: %v", d)
	}
}

func TestConnectivityDisconnected(Te *testing.T) {
	//C1-C2 is one piece, O1-O2 another, P1 is on its own
	c := comp("TST",
		AtomSet{"C1": "C", "C2": "C", "O1": "O", "O2": "O", "P1": "P"},
		BondSet{
			{"C1", "C2"}: {"sing", "N"},
			{"O1", "O2"}: {"sing", "N"},
		})
	d := CheckConnectivity(c)
	if d == nil {
		Te.Fatal("disconnected component not flagged")
	}
	if d.Kind != DisconnectedAtoms || d.Name != "TST" {
		Te.Errorf("wrong discrepancy: %+v", d)
	}
	//three stray atoms: whichever two-atom piece is not the largest,
	//plus the isolated P1
	if d.Detail != "C1 C2 P1" && d.Detail != "O1 O2 P1" {
		Te.Errorf("wrong stray atoms: %q", d.Detail)
	}
}

// Single-atom components carry no bonds and must not be flagged.
func TestConnectivityNoBonds(Te *testing.T) {
	c := comp("NA", AtomSet{"NA": "NA"}, BondSet{})
	if d := CheckConnectivity(c); d != nil {
		Te.Errorf("bondless component flagged: %v", d)
	}
}
