/*
 * main.go, part of monLint.
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

// The monlint command compares a monomer library against the PDB
// Chemical Component Dictionary and prints one line per discrepancy.
package main

import (
	"fmt"
	"os"

	"github.com/rmera/monlint"
	"github.com/rmera/monlint/cif"
	"github.com/spf13/cobra"
)

var (
	monPath      string
	formulas     bool
	verbose      bool
	missing      bool
	connectivity bool
)

var rootCmd = &cobra.Command{
	Use:   "monlint [flags] /path/to/components.cif[.gz]",
	Short: "check monomer library definitions against the CCD",
	Long: `monlint compares the chemical components of a local monomer library
with the PDB Chemical Component Dictionary (CCD). For every component
present in both it checks atom naming, bond topology, bond order and
aromaticity, and prints one line per discrepancy found.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&monPath, "monomers", "m", "",
		"monomer library path (default: $CLIBD_MON)")
	rootCmd.Flags().BoolVarP(&formulas, "formulas", "f", false,
		"check CCD formulas against CCD atom tables")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose")
	rootCmd.Flags().BoolVar(&missing, "missing", false,
		"report monomers that have no CCD entry")
	rootCmd.Flags().BoolVar(&connectivity, "connectivity", false,
		"also check that each component's bond graph is connected")
}

func run(cmd *cobra.Command, args []string) error {
	if monPath == "" {
		monPath = os.Getenv("CLIBD_MON")
	}
	if monPath == "" && !formulas {
		return fmt.Errorf("unknown monomer library path: use -m or set $CLIBD_MON")
	}
	ccd, err := cif.ReadFile(args[0])
	if err != nil {
		return err
	}
	ck := &monlint.Checker{
		Verbose:       verbose,
		ReportMissing: missing,
		Connectivity:  connectivity,
	}
	found := 0
	if formulas {
		for _, d := range ck.CheckFormulas(ccd) {
			fmt.Println(d)
			found++
		}
	}
	if monPath != "" {
		paths, err := cif.SortedSearch(monPath)
		if err != nil {
			return err
		}
		ds, matched := ck.CompareLibraries(paths, ccd)
		for _, d := range ds {
			fmt.Println(d)
			found++
		}
		fmt.Printf("Compared %d monomers.\n", matched)
	}
	if found > 0 {
		os.Exit(1)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
