/*
 * st_test.go, part of goAton.
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

package st

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(filepath.Base(path)), 0o644))
}

func TestGetList(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "relax.in"))
	touch(t, filepath.Join(dir, "relax.out"))
	files, err := List(dir, nil, false)
	require.NoError(t, err)
	sort.Strings(files)
	assert.Equal(t, []string{"relax.in", "relax.out"}, files)
	got, err := Get(dir, ".out")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "relax.out"), got)
	_, err = Get(dir)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, dir, e.FileName())
	_, err = Get(dir, ".xml")
	assert.Error(t, err)
	_, err = Get(filepath.Join(dir, "missing"))
	assert.Error(t, err)
	files, err = List(filepath.Join(dir, "relax.in"), []string{"in"}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "relax.in")}, files)
}

func TestMoveCopyRemove(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	touch(t, a)
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, Copy(a, b))
	content, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, "a.txt", string(content))
	c := filepath.Join(dir, "c.txt")
	require.NoError(t, Move(b, c))
	assert.NoFileExists(t, b)
	assert.FileExists(t, c)
	require.NoError(t, Remove(c))
	assert.NoFileExists(t, c)
	assert.NoError(t, Remove(c))
	assert.NoError(t, Remove(""))
	assert.Error(t, Copy(b, c))
}

func TestRename(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "CH3_0.in"))
	touch(t, filepath.Join(dir, "CH3_60.in"))
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	touch(t, filepath.Join(sub, "CH3_x.in"))
	require.NoError(t, RenameOnFolder("CH3", "CD3", dir))
	assert.FileExists(t, filepath.Join(dir, "CD3_0.in"))
	assert.FileExists(t, filepath.Join(dir, "CD3_60.in"))
	assert.FileExists(t, filepath.Join(sub, "CH3_x.in"))
	require.NoError(t, RenameOnFolders("CH3", "ND3", dir))
	assert.FileExists(t, filepath.Join(sub, "ND3_x.in"))
}

func TestCopyToFolders(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "CH3_0_relax.in"))
	touch(t, filepath.Join(dir, "CH3_60_relax.in"))
	require.NoError(t, CopyToFolders(dir, ".in", "_relax"))
	assert.FileExists(t, filepath.Join(dir, "CH3_0", "CH3_0.in"))
	assert.FileExists(t, filepath.Join(dir, "CH3_60", "CH3_60.in"))
	assert.Error(t, CopyToFolders(dir, ".cif"))
}

func TestSaveLoad(t *testing.T) {
	type result struct {
		Comment     string
		Eigenvalues []float64
	}
	name := filepath.Join(t.TempDir(), "methyl")
	written, err := Save(result{"CH3", []float64{0.1, 0.2}}, name)
	require.NoError(t, err)
	assert.Equal(t, name+Extension, written)
	var r result
	require.NoError(t, Load(written, &r))
	assert.Equal(t, "CH3", r.Comment)
	assert.Equal(t, []float64{0.1, 0.2}, r.Eigenvalues)
	touch(t, name+".txt")
	assert.Error(t, Load(name+".txt", &r))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "data.aton", Filename(""))
	assert.Equal(t, "out/methyl.aton", Filename("out/methyl"))
	assert.Equal(t, "methyl.aton", Filename("methyl.aton"))
	written, err := Save([]int{1}, filepath.Join(t.TempDir(), "r.aton"))
	require.NoError(t, err)
	assert.Equal(t, ".aton", filepath.Ext(written))
	assert.NotContains(t, written, ".aton.aton")
}
