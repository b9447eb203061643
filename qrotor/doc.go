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
Package qrotor studies the energy levels of quantum rotations, such as those of methyl
and amine groups.

A rotor is described by a System: the rotational constant B of the group, a periodic
angular grid, and a potential on that grid. The Hamiltonian

	H = -B d²/dφ² + V(φ)

is discretized with periodic finite differences and solved for its lowest eigenvalues
and eigenvectors, either by full diagonalization or by shift-invert subspace iteration.
Energies are in meV and angles in radians, unless noted otherwise.

Several systems can be grouped in an Experiment and solved at once with Energies. The
potential itself usually comes from ab-initio calculations of rotated structures, which
RotateQE prepares for Quantum ESPRESSO.
*/
package qrotor
