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

package qrotor

import "fmt"

// Error is the general structure for the errors of this package. It fullfills aton.Error.
type Error struct {
	message  string
	system   string //the comment of the system that failed, if any
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	if err.system == "" {
		return "goAton/qrotor: " + err.message
	}
	return fmt.Sprintf("goAton/qrotor: system %q: %s", err.system, err.message)
}

// Decorate adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

const (
	ErrUnknownGroup     = "Unknown rotor group"
	ErrUnknownPotential = "Unknown potential"
	ErrBadGrid          = "The grid needs at least 3 points"
	ErrBadLevels        = "Levels must be at least 1 and less than the grid size"
	ErrBadB             = "The rotational constant B must be positive"
	ErrNoPotential      = "The potential has not been computed"
	ErrBadPotential     = "The potential and the grid have different sizes"
	ErrBadConstants     = "Wrong number of potential constants"
	ErrDiagonalization  = "Diagonalization failed"
	ErrFewPositions     = "At least three positions are required to define the rotation axis"
	ErrBadAngle         = "The angle must be positive to repeat the rotation"
	ErrBadPotentialFile = "Can't read the potential file"
)

func newError(message, system, caller string) *Error {
	return &Error{message, system, []string{caller}, true}
}
