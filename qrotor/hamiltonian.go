/*
 * hamiltonian.go, part of goAton.
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

import (
	"gonum.org/v1/gonum/mat"
)

// Laplacian returns the second derivative matrix for the periodic grid, built with
// central finite differences. The grid must be evenly spaced and have at least 3 points.
func Laplacian(grid []float64) *mat.SymDense {
	n := len(grid)
	dx := grid[1] - grid[0]
	d := 1 / (dx * dx)
	L := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		L.SetSym(i, i, -2*d)
		if i < n-1 {
			L.SetSym(i, i+1, d)
		}
	}
	//Periodic boundary conditions
	L.SetSym(0, n-1, d)
	return L
}

// Hamiltonian returns the Hamiltonian matrix -B*Laplacian + V for the system, which must
// have its grid and potential values set.
func Hamiltonian(S *System) (*mat.SymDense, error) {
	n := len(S.Grid)
	if n < 3 {
		return nil, newError(ErrBadGrid, S.Comment, "Hamiltonian")
	}
	if len(S.PotentialValues) == 0 {
		return nil, newError(ErrNoPotential, S.Comment, "Hamiltonian")
	}
	if len(S.PotentialValues) != n {
		return nil, newError(ErrBadPotential, S.Comment, "Hamiltonian")
	}
	H := Laplacian(S.Grid)
	H.ScaleSym(-S.B, H)
	for i, v := range S.PotentialValues {
		H.SetSym(i, i, H.At(i, i)+v)
	}
	return H, nil
}
