/*
 * constants.go, part of goAton.
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
	"math"

	"github.com/rmera/goaton/phys"
)

// Rotor groups
const (
	CH3 = "CH3"
	CD3 = "CD3"
	NH3 = "NH3"
	ND3 = "ND3"
)

// group holds the rotating atom, its distance to the central atom in A, and how many of them there are.
type group struct {
	atom  string
	dist  float64
	atoms int
}

var groups = map[string]group{
	CH3: {"H", phys.CHDist, 3},
	CD3: {"D", phys.CHDist, 3},
	NH3: {"H", phys.NHDist, 3},
	ND3: {"D", phys.NHDist, 3},
}

// Inertia returns the moment of inertia, in amu A², of the given group around its C3 axis.
// The atoms are assumed to be at tetrahedral angles from the axis.
func Inertia(g string) (float64, error) {
	gr, ok := groups[g]
	if !ok {
		return 0, newError(ErrUnknownGroup+" "+g, "", "Inertia")
	}
	m, err := phys.Mass(gr.atom)
	if err != nil {
		return 0, newError(err.Error(), "", "Inertia")
	}
	r := gr.dist * math.Sin(phys.TetrahedralAngle*phys.Deg2Rad)
	return float64(gr.atoms) * m * r * r, nil
}

// RotationalConstant returns B = ħ²/2I, in meV, for a moment of inertia in amu A².
func RotationalConstant(inertia float64) float64 {
	i := inertia * phys.AMU * phys.Angstrom * phys.Angstrom
	return phys.Hbar * phys.Hbar / (2 * i) / (1e-3 * phys.Electronvolt)
}

// GroupB returns the rotational constant, in meV, of the given group.
func GroupB(g string) (float64, error) {
	i, err := Inertia(g)
	if err != nil {
		return 0, err
	}
	return RotationalConstant(i), nil
}
