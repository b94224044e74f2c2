/*
 * interfaces.go, part of monLint.
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

import "fmt"

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //The decorate slice should contain a list of functions in the calling stack, plus, for each function, any relevant information, or nothing. If passed an empty string, it should just return the current value, not add the empty string to the slice.
}

// CError is the concrete error of the monlint package. It records the
// component whose data could not be processed, so the driver can report
// the fault against that component and move on.
type CError struct {
	msg       string
	component string //the component whose record is at fault, or empty.
	deco      []string
	critical  bool
}

func (err CError) Error() string {
	if err.component != "" {
		return fmt.Sprintf("component %s: %s", err.component, err.msg)
	}
	return err.msg
}

// Decorate adds new information to the error and returns the
// decoration trail.
func (E CError) Decorate(deco string) []string {
	//E.deco is a slice, and hence a pointer itself, so this works
	//without a pointer receiver.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// Component returns the name of the component whose record caused the
// error, or an empty string if the error is not tied to one.
func (err CError) Component() string { return err.component }

// Critical returns true if the error is critical, false otherwise.
func (err CError) Critical() bool { return err.critical }

// formatError builds the error for a malformed record: fatal for the
// component being processed, survivable for the run.
func formatError(component, format string, a ...interface{}) CError {
	return CError{msg: fmt.Sprintf(format, a...), component: component, critical: false}
}

//errDecorate is a helper function that asserts that the error
//implements Error and decorates it with the caller's name before returning it.
//if used with an error from outside the library, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
