/*
 * units_test.go, part of goAton.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	assert.InDelta(t, 8.0655, Convert(1, MeV, Cm), 1e-3)
	assert.InDelta(t, 27.2114, Convert(1, Ha, EV), 1e-4)
	assert.InDelta(t, 13.6057, Convert(1, Ry, EV), 1e-4)
	assert.InDelta(t, 11.6045, Convert(1, MeV, Kelvin), 1e-3)
	assert.InDelta(t, 0.24180, Convert(1, MeV, THz), 1e-4)
	assert.InDelta(t, 627.509, Convert(1, Ha, KcalMol), 1e-2)
	assert.InDelta(t, 1/MeV2Cm, Cm2MeV, 1e-12)
	assert.InDelta(t, 1.0, Convert(Convert(1, KJMol, Cm), Cm, KJMol), 1e-12)
}

func TestConvertAll(t *testing.T) {
	v := []float64{1, 2}
	ConvertAll(v, EV, MeV)
	assert.InDeltaSlice(t, []float64{1000, 2000}, v, 1e-9)
	assert.Panics(t, func() { Convert(1, "furlong", MeV) })
}

func TestParseEnergy(t *testing.T) {
	u, err := ParseEnergy(" CM^-1 ")
	require.NoError(t, err)
	assert.Equal(t, Cm, u)
	_, err = ParseEnergy("parsec")
	assert.Error(t, err)
}

func TestMass(t *testing.T) {
	m, err := Mass("D")
	require.NoError(t, err)
	assert.InDelta(t, 2.014, m, 1e-3)
	_, err = Mass("Xx")
	assert.Error(t, err)
	assert.InDelta(t, 1.8897, A2Bohr, 1e-4)
}
