/*
 * save.go, part of goAton.
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
	"bufio"
	"encoding/json"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	aton "github.com/rmera/goaton"
	"go.uber.org/zap"
)

// Extension is the extension of the files written by Save.
const Extension = ".aton"

// Filename returns the name of the file that Save writes for the given name: the .aton
// extension is added if missing, and an empty name becomes "data.aton".
func Filename(name string) string {
	if name == "" {
		name = "data"
	}
	if !strings.HasSuffix(name, Extension) {
		name += Extension
	}
	return name
}

// Save writes v as zstd-compressed JSON to the file named by Filename(filename).
// It returns the name of the written file.
func Save(v any, filename string) (string, error) {
	filename = Filename(filename)
	f, err := os.Create(filename)
	if err != nil {
		return "", newError(ErrIO, filename, "Save", err)
	}
	defer f.Close()
	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return "", newError(ErrIO, filename, "Save", err)
	}
	if err = json.NewEncoder(zw).Encode(v); err != nil {
		zw.Close()
		return "", newError(ErrFormat, filename, "Save", err)
	}
	if err = zw.Close(); err != nil {
		return "", newError(ErrIO, filename, "Save", err)
	}
	if err = f.Close(); err != nil {
		return "", newError(ErrIO, filename, "Save", err)
	}
	aton.L().Info("data saved and compressed", zap.String("file", filename))
	return filename, nil
}

// Load reads a file written by Save into v, which must be a pointer.
func Load(path string, v any) error {
	path, err := Get(path)
	if err != nil {
		return aton.ErrDecorate(err, "Load")
	}
	f, err := os.Open(path)
	if err != nil {
		return newError(ErrIO, path, "Load", err)
	}
	defer f.Close()
	zr, err := zstd.NewReader(bufio.NewReader(f))
	if err != nil {
		return newError(ErrFormat, path, "Load", err)
	}
	defer zr.Close()
	if err = json.NewDecoder(zr).Decode(v); err != nil {
		return newError(ErrFormat, path, "Load", err)
	}
	return nil
}
