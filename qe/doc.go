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

// Package qe reads and edits Quantum ESPRESSO pw.x input files. It locates atoms by their
// approximate positions, converts their coordinates between the units that pw.x accepts and
// cartesian angstroms, and adds new atoms. Only the ibrav=0 case, where the cell is given in
// a CELL_PARAMETERS card, is supported for crystal coordinates.
//
// pw.x output files are not read. The potential energies used by goAton/qrotor must be
// collected from them by other means.
package qe
