/*
 * files.go, part of monLint.
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

package cif

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ReadFile reads all data blocks from a CIF file. Files ending in .gz
// are decompressed on the fly, so components.cif and components.cif.gz
// are read the same way.
func ReadFile(path string) ([]*Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Error{err.Error(), path, 0, []string{"ReadFile"}, true}
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, Error{"can't read gzip header: " + err.Error(), path, 0, []string{"ReadFile"}, true}
		}
		defer gz.Close()
		r = gz
	}
	return read(r, path)
}

// SortedSearch enumerates the candidate files of a monomer library
// tree, root/?/*.cif, in alphabetic order. File names containing an
// underscore are skipped; those are lists and link definitions, not
// monomers.
func SortedSearch(root string) ([]string, error) {
	dirs, err := os.ReadDir(root)
	if err != nil {
		return nil, Error{err.Error(), root, 0, []string{"SortedSearch"}, true}
	}
	var paths []string
	for _, d := range dirs {
		if !d.IsDir() || len(d.Name()) != 1 {
			continue
		}
		files, err := os.ReadDir(filepath.Join(root, d.Name()))
		if err != nil {
			return nil, Error{err.Error(), root, 0, []string{"SortedSearch"}, true}
		}
		for _, f := range files {
			name := f.Name()
			if f.IsDir() || !strings.HasSuffix(strings.ToLower(name), ".cif") {
				continue
			}
			if strings.Contains(name, "_") {
				continue
			}
			paths = append(paths, filepath.Join(root, d.Name(), name))
		}
	}
	return paths, nil
}

//Errors

// Error is the error type for CIF reading. It fullfills monlint.Error.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	line     int
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.line > 0 {
		return fmt.Sprintf("cif file %s line %d: %s", err.filename, err.line, err.message)
	}
	return fmt.Sprintf("cif file %s: %s", err.filename, err.message)
}

// Decorate adds new information to the error and returns the
// decoration trail.
func (E Error) Decorate(deco string) []string {
	//E.deco is a slice, and hence a pointer itself, so this works
	//without a pointer receiver.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// FileName returns the file associated to the error.
func (err Error) FileName() string { return err.filename }

// Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }
