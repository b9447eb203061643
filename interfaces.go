/*
 * interfaces.go, part of goAton.
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

package aton

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	//Decorate adds information when the error is passed up. Each call returns the decoration slice resulting from the current call.
	//If passed an empty string, it just returns the current value. Elements should be in the format "FunctionName: Extra info".
	Decorate(string) []string
	Critical() bool
}

// FileError is an Error associated to a given file.
type FileError interface {
	Error
	FileName() string
}

// ErrDecorate decorates err with the caller's name if err implements Error, and returns it.
// Other errors are returned unchanged.
func ErrDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
	}
	return err
}
