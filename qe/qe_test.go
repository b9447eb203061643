/*
 * qe_test.go, part of goAton.
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

package qe

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func copyInput(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("testdata/methyl.in")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "methyl.in")
	require.NoError(t, os.WriteFile(path, b, 0o644))
	return path
}

func TestRead(t *testing.T) {
	in, err := Read("testdata/methyl.in")
	require.NoError(t, err)
	assert.Equal(t, 5, in.Nat)
	assert.Equal(t, Crystal, in.PositionsUnit)
	assert.InDelta(t, 10.0, in.Alat, 1e-5)
	require.NotNil(t, in.Cell)
	assert.InDelta(t, 10.0, in.Cell.At(2, 2), 1e-5)
	require.Len(t, in.Atoms, 5)
	assert.Equal(t, "C", in.Atoms[0].Element)
	assert.Equal(t, "H", in.Atoms[4].Element)
	assert.InDelta(t, 0.4637, in.Atoms[4].Pos[2], 1e-12)
	_, err = Read("testdata/missing.in")
	assert.Error(t, err)
}

func TestCartesian(t *testing.T) {
	in, err := Read("testdata/methyl.in")
	require.NoError(t, err)
	v, err := in.ToCartesian(in.Atoms[2].Pos)
	require.NoError(t, err)
	assert.InDelta(t, 6.02765, v.X, 1e-4)
	assert.InDelta(t, 4.637, v.Z, 1e-4)
	back, err := in.FromCartesian(v)
	require.NoError(t, err)
	for i := range back {
		assert.InDelta(t, in.Atoms[2].Pos[i], back[i], 1e-12)
	}
	for _, unit := range []string{Angstrom, Bohr, Alat} {
		in.PositionsUnit = unit
		v, err := in.ToCartesian([3]float64{1, 2, 3})
		require.NoError(t, err)
		back, err := in.FromCartesian(v)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{1, 2, 3}, back[:], 1e-12, unit)
	}
	in.PositionsUnit = Bohr
	v, err = in.ToCartesian([3]float64{1, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.529177, r3.Norm(v), 1e-6)
	in.PositionsUnit = "furlong"
	_, err = in.ToCartesian([3]float64{1, 0, 0})
	assert.Error(t, err)
}

func TestGetAtom(t *testing.T) {
	in, err := Read("testdata/methyl.in")
	require.NoError(t, err)
	a, err := in.GetAtom([]float64{0.6028, 0.5, 0.4637}, 3)
	require.NoError(t, err)
	assert.Equal(t, in.Atoms[2], a)
	_, err = in.GetAtom([]float64{0.6028, 0.5, 0.4637}, 6)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "testdata/methyl.in", e.FileName())
	_, err = in.GetAtom([]float64{0.5, 0.5}, 3)
	assert.Error(t, err)
}

func TestSetAtomsAddAtom(t *testing.T) {
	path := copyInput(t)
	in, err := Read(path)
	require.NoError(t, err)
	require.NoError(t, SetAtoms(path, in.Atoms[4:], [][3]float64{{0.1, 0.2, 0.3}}))
	require.NoError(t, AddAtom(path, FormatAtom("He", [3]float64{0.5, 0.5, 0.5})))
	in2, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 6, in2.Nat)
	require.Len(t, in2.Atoms, 6)
	assert.Equal(t, [3]float64{0.1, 0.2, 0.3}, in2.Atoms[4].Pos)
	assert.Contains(t, in2.Atoms[4].Line, "0 0 1")
	assert.Equal(t, "He", in2.Atoms[5].Element)
	assert.Error(t, SetAtoms(path, in.Atoms, nil))
}

const overlapping = `&SYSTEM
  ibrav = 0
  nat = 2
/
CELL_PARAMETERS angstrom
  8.0  0.0  0.0
  0.0  8.0  0.0
  0.0  0.0  8.0
ATOMIC_POSITIONS crystal
  H 0.5 0.5 0.45
  H 0.5 0.5 0.4
K_POINTS gamma
`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pw.in")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// The line of the second atom is a prefix of the first one's. Only the atom asked for must move.
func TestSetAtomsSimilarLines(t *testing.T) {
	path := writeInput(t, overlapping)
	in, err := Read(path)
	require.NoError(t, err)
	a, err := in.GetAtom([]float64{0.5, 0.5, 0.4}, 3)
	require.NoError(t, err)
	assert.Equal(t, 10, a.Index)
	require.NoError(t, SetAtoms(path, []Atom{a}, [][3]float64{{0.9, 0.9, 0.9}}))
	in2, err := Read(path)
	require.NoError(t, err)
	require.Len(t, in2.Atoms, 2)
	assert.Equal(t, [3]float64{0.5, 0.5, 0.45}, in2.Atoms[0].Pos)
	assert.Equal(t, [3]float64{0.9, 0.9, 0.9}, in2.Atoms[1].Pos)

	//The file changed, so the old atom no longer matches its line.
	assert.Error(t, SetAtoms(path, []Atom{a}, [][3]float64{{0.1, 0.1, 0.1}}))

	require.NoError(t, AddAtom(path, FormatAtom("He", [3]float64{0.5, 0.5, 0.5})))
	in3, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 3, in3.Nat)
	require.Len(t, in3.Atoms, 3)
	assert.Equal(t, "He", in3.Atoms[2].Element)
	assert.Equal(t, in2.Atoms[0], in3.Atoms[0])
}

func TestAlatFromCell(t *testing.T) {
	path := writeInput(t, strings.Replace(overlapping, "ATOMIC_POSITIONS crystal", "ATOMIC_POSITIONS alat", 1))
	in, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, Alat, in.PositionsUnit)
	assert.InDelta(t, 8.0, in.Alat, 1e-12)
	v, err := in.ToCartesian(in.Atoms[1].Pos)
	require.NoError(t, err)
	assert.InDelta(t, 3.2, v.Z, 1e-12)
	back, err := in.FromCartesian(v)
	require.NoError(t, err)
	assert.InDeltaSlice(t, in.Atoms[1].Pos[:], back[:], 1e-12)
}
