/*
 * units.go, part of goAton.
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

import (
	"fmt"
	"strings"
)

// Energy is a unit of energy.
type Energy string

const (
	MeV     Energy = "meV"
	EV      Energy = "eV"
	Cm      Energy = "cm-1"
	Ry      Energy = "Ry"
	Ha      Energy = "Ha"
	KJMol   Energy = "kJ/mol"
	KcalMol Energy = "kcal/mol"
	Kelvin  Energy = "K"
	THz     Energy = "THz"
	Joule   Energy = "J"
)

// toJoule maps each energy unit to its value in J (per particle for the molar units).
var toJoule = map[Energy]float64{
	MeV:     1e-3 * Electronvolt,
	EV:      Electronvolt,
	Cm:      Planck * SpeedOfLight * 100,
	Ry:      Hartree / 2,
	Ha:      Hartree,
	KJMol:   1e3 / Avogadro,
	KcalMol: Kcal2KJ * 1e3 / Avogadro,
	Kelvin:  Boltzmann,
	THz:     Planck * 1e12,
	Joule:   1,
}

// aliases accepted by ParseEnergy, lowercase.
var energyAliases = map[string]Energy{
	"mev":      MeV,
	"ev":       EV,
	"cm-1":     Cm,
	"cm^-1":    Cm,
	"1/cm":     Cm,
	"ry":       Ry,
	"rydberg":  Ry,
	"ha":       Ha,
	"hartree":  Ha,
	"kj/mol":   KJMol,
	"kcal/mol": KcalMol,
	"k":        Kelvin,
	"kelvin":   Kelvin,
	"thz":      THz,
	"j":        Joule,
}

// ParseEnergy returns the energy unit named by s, case-insensitive.
func ParseEnergy(s string) (Energy, error) {
	u, ok := energyAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("goAton/phys: unknown energy unit %q", s)
	}
	return u, nil
}

// Convert converts the energy v from the unit from to the unit to.
// It panics if either unit is unknown, as that is a programming error.
func Convert(v float64, from, to Energy) float64 {
	f, ok := toJoule[from]
	if !ok {
		panic("goAton/phys: unknown energy unit " + string(from))
	}
	t, ok := toJoule[to]
	if !ok {
		panic("goAton/phys: unknown energy unit " + string(to))
	}
	return v * f / t
}

// ConvertAll converts in place all the values in vals from the unit from to the unit to, and returns vals.
func ConvertAll(vals []float64, from, to Energy) []float64 {
	if from == to {
		return vals
	}
	factor := Convert(1, from, to)
	for i := range vals {
		vals[i] *= factor
	}
	return vals
}
