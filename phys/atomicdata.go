/*
 * atomicdata.go, part of goAton.
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

package phys

import "fmt"

// A map for assigning isotope masses (in amu) to the atoms that form the usual rotor groups.
// Standard atomic weights are used for the elements, and the exact mass for deuterium.
var symbolMass = map[string]float64{
	"H":  1.00784,
	"D":  2.014102,
	"He": 4.002602,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
}

// Mass returns the mass, in amu, of the given atom. Deuterium is "D".
func Mass(symbol string) (float64, error) {
	m, ok := symbolMass[symbol]
	if !ok {
		return 0, fmt.Errorf("goAton/phys: no mass for %q", symbol)
	}
	return m, nil
}
