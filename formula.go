/*
 * formula.go, part of monLint.
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
	"strconv"
	"strings"
)

// Formula maps element symbols (upper-cased) to their atom count.
// Equality between formulas is plain map equality; the order of a
// formula string never matters.
type Formula map[string]int

// ParseFormula reads a formula string like "C12 H17 N5 O4 S" into a
// Formula. Each whitespace-separated token is an element symbol
// followed by an optional count; a missing count means 1. Symbols are
// upper-cased so formulas from different sources compare equal.
func ParseFormula(text string) (Formula, error) {
	f := make(Formula)
	for _, tok := range strings.Fields(text) {
		i := 0
		for i < len(tok) && isAlpha(tok[i]) {
			i++
		}
		if i == 0 {
			return nil, formatError("", "formula token %q has no element symbol", tok)
		}
		n := 1
		if i < len(tok) {
			var err error
			n, err = strconv.Atoi(tok[i:])
			if err != nil || n < 1 {
				return nil, formatError("", "formula token %q has a malformed count", tok)
			}
		}
		f[strings.ToUpper(tok[:i])] += n
	}
	return f, nil
}

func isAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// CountElements tallies the elements of an atom set into a Formula.
func CountElements(atoms AtomSet) Formula {
	f := make(Formula, len(atoms))
	for _, sym := range atoms {
		f[strings.ToUpper(sym)]++
	}
	return f
}

// String renders the formula in its canonical display form: elements
// in alphabetic order, the count appended only when it is not 1.
// {C:12, O:8, N:1} -> "C12 N O8". This form is for reports only;
// comparison is map equality.
func (f Formula) String() string {
	elems := make([]string, 0, len(f))
	for e := range f {
		elems = append(elems, e)
	}
	sort.Strings(elems)
	var b strings.Builder
	for i, e := range elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e)
		if f[e] != 1 {
			b.WriteString(strconv.Itoa(f[e]))
		}
	}
	return b.String()
}
