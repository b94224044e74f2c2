/*
 * doc.go, part of monLint.
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

/*Package monlint checks the consistency of chemical component definitions
between a monomer library and the PDB Chemical Component Dictionary (CCD).

For every component present in both sources it verifies that:

    The heavy-atom names, and the element assigned to each name, agree.

    The bond topology agrees: the same unordered atom pairs are bonded,
	with the same bond order and aromaticity. A formally single or double
	bond flagged as aromatic compares equal to a bond recorded directly
	with aromatic order.

    Optionally, that the elemental formula declared by a CCD entry matches
	its own atom table, and that the heavy-atom bond graph of a component
	is connected.

Comparisons work on maps keyed by case-normalized atom names and
canonical bond pairs, so they are independent of row order and of the
column vocabularies of the two sources. A malformed record spoils only
the component it belongs to; the rest of the run continues.

The cif subpackage provides the minimal CIF/mmCIF reading this needs,
including transparent gzip and the sorted traversal of a monomer
library tree. The monlint command under cmd/ drives a whole run.*/
package monlint
