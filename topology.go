/*
 * topology.go, part of monLint.
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

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// CheckConnectivity verifies that the heavy atoms of a component form
// a single connected piece under its bond set; a monomer is one
// molecule. It returns a DisconnectedAtoms discrepancy listing the
// atoms outside the largest fragment, or nil when the component is
// connected. Components without any bonds are not checked: single-atom
// components (metals, ions) are legitimate and carry no bond table.
func CheckConnectivity(c *Component) *Discrepancy {
	if len(c.Bonds) == 0 {
		return nil
	}
	names := make([]string, 0, len(c.Atoms))
	for n := range c.Atoms {
		names = append(names, n)
	}
	sort.Strings(names)
	ids := make(map[string]int64, len(names))
	g := simple.NewUndirectedGraph()
	for i, n := range names {
		ids[n] = int64(i)
		g.AddNode(simple.Node(int64(i)))
	}
	for k := range c.Bonds {
		if k.A1 == k.A2 {
			continue //self bonds can't exist, but SetEdge would panic
		}
		g.SetEdge(simple.Edge{F: simple.Node(ids[k.A1]), T: simple.Node(ids[k.A2])})
	}
	pieces := topo.ConnectedComponents(g)
	if len(pieces) <= 1 {
		return nil
	}
	largest := 0
	for i, p := range pieces {
		if len(p) > len(pieces[largest]) {
			largest = i
		}
	}
	var stray []string
	for i, p := range pieces {
		if i == largest {
			continue
		}
		for _, node := range p {
			stray = append(stray, names[node.ID()])
		}
	}
	sort.Strings(stray)
	return &Discrepancy{
		Kind:   DisconnectedAtoms,
		Name:   c.Name,
		Detail: strings.Join(stray, " "),
	}
}
