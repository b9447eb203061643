/*
 * main_test.go, part of goAton.
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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func copyFile(t *testing.T, src, dir string) string {
	t.Helper()
	b, err := os.ReadFile(src)
	require.NoError(t, err)
	dst := filepath.Join(dir, filepath.Base(src))
	require.NoError(t, os.WriteFile(dst, b, 0o644))
	return dst
}

func TestSolveShow(t *testing.T) {
	dir := t.TempDir()
	conf := copyFile(t, "testdata/barriers.toml", dir)
	copyFile(t, "testdata/cosine.dat", dir)
	out, err := run(t, "solve", conf, "-o", filepath.Join(dir, "results"))
	require.NoError(t, err)
	assert.Contains(t, out, "# Methyl barriers")
	assert.Contains(t, out, "V3 = 40 meV")
	assert.Contains(t, out, "E3 = ")
	saved := filepath.Join(dir, "results.aton")
	assert.FileExists(t, saved)

	shown, err := run(t, "show", saved)
	require.NoError(t, err)
	assert.Equal(t, strings.Split(out, "Saved to")[0], shown)
}

func TestPotential(t *testing.T) {
	dir := t.TempDir()
	conf := copyFile(t, "testdata/barriers.toml", dir)
	copyFile(t, "testdata/cosine.dat", dir)
	out, err := run(t, "potential", conf, filepath.Join(dir, "pot"))
	require.NoError(t, err)
	assert.Contains(t, out, "potential_3.dat")
	assert.FileExists(t, filepath.Join(dir, "pot", "potential_2.dat"))
}

func TestRotate(t *testing.T) {
	dir := t.TempDir()
	in := copyFile(t, "../../qe/testdata/methyl.in", dir)
	out, err := run(t, "rotate", in,
		"-p", "0.6028,0.5,0.4637", "-p", "0.4486,0.589,0.4637", "-p", "0.4486,0.411,0.4637",
		"--angle", "60", "--repeat")
	require.NoError(t, err)
	lines := strings.Fields(out)
	require.Len(t, lines, 6)
	assert.Equal(t, filepath.Join(dir, "methyl_300.in"), lines[5])

	_, err = run(t, "rotate", in, "-p", "0.6,0.5", "-p", "0.4,0.5,0.4", "-p", "0.4,0.4,0.4")
	assert.Error(t, err)
}

func TestSolveFlags(t *testing.T) {
	dir := t.TempDir()
	conf := copyFile(t, "testdata/barriers.toml", dir)
	copyFile(t, "testdata/cosine.dat", dir)
	_, err := run(t, "solve", conf, "--method", "lanczos")
	assert.ErrorContains(t, err, "lanczos")
	assert.NoFileExists(t, filepath.Join(dir, "barriers.aton"))

	saved := filepath.Join(dir, "results.aton")
	out, err := run(t, "solve", conf, "--method", "Dense", "-o", saved)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved to "+saved+"\n")
	assert.FileExists(t, saved)
	assert.NoFileExists(t, saved+".aton")
}
