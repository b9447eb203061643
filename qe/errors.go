/*
 * errors.go, part of goAton.
 *
 * Copyright 2024 The goAton authors
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
 */

package qe

import "fmt"

// Error is the general structure for the errors of this package. It fullfills aton.FileError.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	return fmt.Sprintf("goAton/qe: file %s: %s", err.filename, err.message)
}

// Decorate adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the QE input associated to the error
func (err *Error) FileName() string { return err.filename }

// Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

const (
	ErrCantRead      = "Can't read the input file"
	ErrNoPositions   = "No ATOMIC_POSITIONS card"
	ErrNoCell        = "Crystal or alat coordinates need the cell, which was not found"
	ErrUnknownUnit   = "Unknown unit"
	ErrAtomNotFound  = "No atom found at the given position"
	ErrBadCoordinate = "Coordinates must have 3 components"
	ErrCantWrite     = "Can't write the input file"
)

func newError(message, filename, caller string) *Error {
	return &Error{message, filename, []string{caller}, true}
}
