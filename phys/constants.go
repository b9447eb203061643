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

package phys

//This provides physical constants and useful conversion factors.
//Values are CODATA 2018.

// Physical constants, SI units
const (
	Planck       = 6.62607015e-34 //J s
	Hbar         = Planck / (2 * 3.141592653589793)
	Boltzmann    = 1.380649e-23        //J/K
	Avogadro     = 6.02214076e23       //1/mol
	Electronvolt = 1.602176634e-19     //J
	SpeedOfLight = 299792458.0         //m/s
	AMU          = 1.66053906660e-27   //kg
	ElectronMass = 9.1093837015e-31    //kg
	Bohr         = 5.29177210903e-11   //m
	Angstrom     = 1e-10               //m
	Hartree      = 4.3597447222071e-18 //J
)

// Conversions
const (
	Deg2Rad = 3.141592653589793 / 180
	Rad2Deg = 180 / 3.141592653589793
	A2Bohr  = Angstrom / Bohr
	Bohr2A  = Bohr / Angstrom
	Ha2eV   = Hartree / Electronvolt
	Ha2Kcal = 627.509474 //Hartree to kcal/mol
	Kcal2KJ = 4.184
	KJ2Kcal = 1 / 4.184
	Ry2eV   = Ha2eV / 2
	MeV2Cm  = 1e-3 * Electronvolt / (Planck * SpeedOfLight * 100) //meV to cm^-1
	Cm2MeV  = 1 / MeV2Cm
)

// Others
const (
	CHDist = 1.09 //C(sp3)--H distance in A
	NHDist = 1.03 //N--H distance in A for an ammonium group
	//TetrahedralAngle is the angle between a bond and the rotation axis of an
	//sp3 rotor group, in degrees, measured from the atom holding the group.
	TetrahedralAngle = 109.4712206
)
