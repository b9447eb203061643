/*
 * doc.go, part of goAton.
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

/*
Package aton is the root of the goAton toolbox, a set of small packages for
materials science research around the quantum rotor problem.

		**goAton Capabilities**

	    Solves the energy levels and wavefunctions of 1-D quantum rotors, such as
		methyl and amine groups, on a periodic angular grid (package qrotor).
		The Hamiltonian can be diagonalized in full or iteratively, with a
		shift-invert subspace method that deals well with degenerate levels.

	    Builds rotational potentials from analytic models or from tabulated
		energies, which are interpolated with periodic splines.

	    Rotates groups of atoms in Quantum ESPRESSO input files, so the
		rotational potential can be computed with an external ab-initio code
		(package qe).

	    Converts between the energy and length units used in the field, and
		provides the isotope masses of the atoms that form rotor groups
		(package phys).

	    Finds, edits and extracts text in input files (package txt), and moves
		files around, saving and loading results as compressed .aton files
		(package st).

The root package only holds what is shared among the rest: the Error
interface implemented by the errors of the library, and the logger.
*/
package aton
