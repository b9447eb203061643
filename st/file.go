/*
 * file.go, part of goAton.
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

// Package st moves files around, and saves and loads results as compressed .aton files.
package st

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	aton "github.com/rmera/goaton"
	"go.uber.org/zap"
)

// Error is the general structure for the errors of this package. It fullfills aton.FileError.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	return fmt.Sprintf("goAton/st: %s: %s", err.filename, err.message)
}

// Decorate adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file associated to the error
func (err *Error) FileName() string { return err.filename }

// Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

const (
	ErrNotFound  = "Nothing found"
	ErrEmpty     = "Empty directory (maybe due to the filters)"
	ErrAmbiguous = "More than one file found, please use a more strict filter"
	ErrIO        = "Input/Output failure"
	ErrFormat    = "Wrong format"
)

func newError(message, filename, caller string, err error) *Error {
	if err != nil {
		message = message + ": " + err.Error()
	}
	return &Error{message, filename, []string{caller}, true}
}

// Get checks that path exists and returns its absolute path. If path is a directory,
// the file inside it matching the filters is returned, if there is only one.
func Get(path string, filters ...string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", newError(ErrNotFound, path, "Get", nil)
	}
	if !info.IsDir() {
		return filepath.Abs(path)
	}
	files, err := List(path, filters, true)
	if err != nil {
		return "", aton.ErrDecorate(err, "Get")
	}
	switch len(files) {
	case 1:
		return files[0], nil
	case 0:
		return "", newError(ErrEmpty, path, "Get", nil)
	default:
		return "", newError(ErrAmbiguous, path, "Get", fmt.Errorf("%v", files))
	}
}

// List returns the files inside folder whose names contain any of the filters, or all files
// if there are no filters. If folder is a file, its directory is used. Full paths are returned
// if abspath is true, base names otherwise.
func List(folder string, filters []string, abspath bool) ([]string, error) {
	if info, err := os.Stat(folder); err == nil && !info.IsDir() {
		folder = filepath.Dir(folder)
	}
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, newError(ErrNotFound, folder, "List", err)
	}
	folder, err = filepath.Abs(folder)
	if err != nil {
		return nil, newError(ErrIO, folder, "List", err)
	}
	ret := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if !matchAny(name, filters) {
			continue
		}
		if abspath {
			name = filepath.Join(folder, name)
		}
		ret = append(ret, name)
	}
	return ret, nil
}

func matchAny(name string, filters []string) bool {
	if len(filters) == 0 {
		return true
	}
	for _, f := range filters {
		if strings.Contains(name, filepath.Base(f)) {
			return true
		}
	}
	return false
}

// Copy copies the file old to new, keeping its permissions.
func Copy(old, new string) error {
	in, err := os.Open(old)
	if err != nil {
		return newError(ErrNotFound, old, "Copy", err)
	}
	defer in.Close()
	info, err := in.Stat()
	if err != nil {
		return newError(ErrIO, old, "Copy", err)
	}
	out, err := os.OpenFile(new, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return newError(ErrIO, new, "Copy", err)
	}
	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return newError(ErrIO, new, "Copy", err)
	}
	if err = out.Close(); err != nil {
		return newError(ErrIO, new, "Copy", err)
	}
	return nil
}

// Move moves the file old to new.
func Move(old, new string) error {
	if err := os.Rename(old, new); err != nil {
		return newError(ErrIO, old, "Move", err)
	}
	return nil
}

// Remove removes the file or folder at path. Removing something that does not exist is not an error.
func Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.RemoveAll(path); err != nil {
		return newError(ErrIO, path, "Remove", err)
	}
	aton.L().Debug("removed", zap.String("path", path))
	return nil
}

// RenameOnFolder renames the files in folder whose name contains old, replacing old with new.
// If folder is empty, the current working directory is used.
func RenameOnFolder(old, new, folder string) error {
	if folder == "" {
		folder = "."
	}
	files, err := List(folder, []string{old}, true)
	if err != nil {
		return aton.ErrDecorate(err, "RenameOnFolder")
	}
	for _, f := range files {
		name := strings.ReplaceAll(filepath.Base(f), old, new)
		if err := Move(f, filepath.Join(filepath.Dir(f), name)); err != nil {
			return aton.ErrDecorate(err, "RenameOnFolder")
		}
	}
	return nil
}

// RenameOnFolders renames the files inside each subfolder of folder, replacing old with new in their names.
// If folder is empty, the current working directory is used.
func RenameOnFolders(old, new, folder string) error {
	if folder == "" {
		folder = "."
	}
	entries, err := os.ReadDir(folder)
	if err != nil {
		return newError(ErrNotFound, folder, "RenameOnFolders", err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if err := RenameOnFolder(old, new, filepath.Join(folder, e.Name())); err != nil {
			return aton.ErrDecorate(err, "RenameOnFolders")
		}
	}
	return nil
}

// CopyToFolders copies each file in folder with the given extension to its own subfolder, named as
// the file without the extension and without the strings in toDelete.
// If folder is empty, the current working directory is used.
func CopyToFolders(folder, extension string, toDelete ...string) error {
	if folder == "" {
		folder = "."
	}
	files, err := List(folder, []string{extension}, true)
	if err != nil {
		return aton.ErrDecorate(err, "CopyToFolders")
	}
	if len(files) == 0 {
		return newError(ErrEmpty, folder, "CopyToFolders", fmt.Errorf("no %s files", extension))
	}
	for _, f := range files {
		name := filepath.Base(f)
		for _, s := range toDelete {
			name = strings.ReplaceAll(name, s, "")
		}
		dir := filepath.Join(filepath.Dir(f), strings.TrimSuffix(name, extension))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return newError(ErrIO, dir, "CopyToFolders", err)
		}
		if err := Copy(f, filepath.Join(dir, name)); err != nil {
			return aton.ErrDecorate(err, "CopyToFolders")
		}
	}
	return nil
}
