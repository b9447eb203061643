/*
 * rotate_test.go, part of goAton.
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
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/goaton/qe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func assertVec(t *testing.T, expected, actual r3.Vec) {
	t.Helper()
	assert.InDelta(t, 0, r3.Norm(r3.Sub(expected, actual)), 1e-9, "expected %v, got %v", expected, actual)
}

func TestRotateCoords(t *testing.T) {
	s := math.Sqrt(3) / 2
	p := []r3.Vec{{X: 1}, {X: -0.5, Y: s}, {X: -0.5, Y: -s}, {X: 1, Z: 2}}
	rotated, err := RotateCoords(p, 120, false)
	require.NoError(t, err)
	require.Len(t, rotated, 4)
	assertVec(t, p[2], rotated[0])
	assertVec(t, p[0], rotated[1])
	assertVec(t, p[1], rotated[2])
	assertVec(t, r3.Vec{X: -0.5, Y: -s, Z: 2}, rotated[3])

	full, err := RotateCoords(p, 360, true)
	require.NoError(t, err)
	require.Len(t, full, 6)
	for i := range p {
		assertVec(t, p[i], full[i])
	}
	assertVec(t, r3.Vec{}, full[4])
	assertVec(t, r3.Vec{Z: -1}, full[5])

	_, err = RotateCoords(p[:2], 120, false)
	assert.Error(t, err)
	_, err = RotateCoords([]r3.Vec{{}, {X: 1}, {X: 2}}, 120, false)
	assert.Error(t, err)
}

func TestAngles(t *testing.T) {
	a, err := Angles(90, true)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 90, 180, 270}, a)
	a, err = Angles(45, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{45}, a)
	_, err = Angles(0, true)
	assert.Error(t, err)
}

func copyMethyl(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("testdata/methyl.in")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "methyl.in")
	require.NoError(t, os.WriteFile(path, b, 0o644))
	return path
}

func TestRotateQE(t *testing.T) {
	path := copyMethyl(t)
	hydrogens := [][]float64{
		{0.6028, 0.5, 0.4637},
		{0.4486, 0.589, 0.4637},
		{0.4486, 0.411, 0.4637},
	}
	out, err := RotateQE(path, hydrogens, 120, false, 3, false)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(filepath.Dir(path), "methyl_120.in")}, out)
	orig, err := qe.Read(path)
	require.NoError(t, err)
	rot, err := qe.Read(out[0])
	require.NoError(t, err)
	require.Len(t, rot.Atoms, 5)
	//A 120 degree turn leaves the group looking the same, but the atoms have moved.
	for i := 2; i < 5; i++ {
		moved := rot.Atoms[i].Pos
		assert.NotEqual(t, orig.Atoms[i].Pos, moved)
		_, err := orig.GetAtom(moved[:], 3)
		assert.NoError(t, err)
	}
	assert.Contains(t, rot.Atoms[4].Line, "0 0 1")
	assert.Equal(t, orig.Atoms[0], rot.Atoms[0])

	out, err = RotateQE(path, hydrogens, 90, true, 3, true)
	require.NoError(t, err)
	require.Len(t, out, 4)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "methyl_270.in"), out[3])
	axis, err := qe.Read(out[0])
	require.NoError(t, err)
	assert.Equal(t, 7, axis.Nat)
	require.Len(t, axis.Atoms, 7)
	assert.Equal(t, "He", axis.Atoms[5].Element)
	assert.InDelta(t, 0.4637, axis.Atoms[5].Pos[2], 1e-4)

	_, err = RotateQE(path, [][]float64{{0.9, 0.9, 0.9}, {0.5, 0.5, 0.5}, {0.5, 0.5, 0.65}}, 120, false, 3, false)
	assert.Error(t, err)
	_, err = RotateQE(path, hydrogens[:2], 120, false, 3, false)
	assert.Error(t, err)
}
