/*
 * edit.go, part of goAton.
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

package txt

import (
	"fmt"
	"os"
	"strings"
)

func writeLines(path string, lines []string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("goAton/txt: %w", err)
	}
	data := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), info.Mode().Perm()); err != nil {
		return fmt.Errorf("goAton/txt: %w", err)
	}
	return nil
}

// ReplaceLine replaces the whole lines of the file at path that contain key with text.
// matches works as in FindLines. It returns the number of replaced lines.
func ReplaceLine(path, key, text string, matches int) (int, error) {
	lines, err := readLines(path)
	if err != nil {
		return 0, err
	}
	idx := indexes(lines, func(s string) bool { return strings.Contains(s, key) }, matches)
	for _, i := range idx {
		lines[i] = text
	}
	if len(idx) == 0 {
		return 0, nil
	}
	return len(idx), writeLines(path, lines)
}

// Insert puts text as a new line right after the first line of the file containing key.
// If key is empty, text is appended at the end of the file.
func Insert(path, key, text string) error {
	lines, err := readLines(path)
	if err != nil {
		return err
	}
	pos := len(lines)
	if key != "" {
		pos = -1
		for i, l := range lines {
			if strings.Contains(l, key) {
				pos = i + 1
				break
			}
		}
		if pos < 0 {
			return fmt.Errorf("goAton/txt: %q not found in %s", key, path)
		}
	}
	return writeLines(path, insertAt(lines, pos, text))
}

func insertAt(lines []string, pos int, text string) []string {
	lines = append(lines, "")
	copy(lines[pos+1:], lines[pos:])
	lines[pos] = text
	return lines
}

// InsertLine puts text in the file at path as the line number i, counting from 0. An i equal
// to the number of lines appends text at the end of the file.
func InsertLine(path string, i int, text string) error {
	lines, err := readLines(path)
	if err != nil {
		return err
	}
	if i < 0 || i > len(lines) {
		return fmt.Errorf("goAton/txt: line %d out of range in %s", i, path)
	}
	return writeLines(path, insertAt(lines, i, text))
}

// SetLine replaces the line number i, counting from 0, of the file at path with text. The
// current line must be exactly old, otherwise nothing is written and an error is returned.
func SetLine(path string, i int, old, text string) error {
	lines, err := readLines(path)
	if err != nil {
		return err
	}
	if i < 0 || i >= len(lines) {
		return fmt.Errorf("goAton/txt: line %d out of range in %s", i, path)
	}
	if lines[i] != old {
		return fmt.Errorf("goAton/txt: line %d of %s is %q, not %q", i, path, lines[i], old)
	}
	lines[i] = text
	return writeLines(path, lines)
}

// Replace replaces every ocurrence of old in the file at path with new. It returns the number of replacements.
func Replace(path, old, new string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("goAton/txt: %w", err)
	}
	n := strings.Count(string(b), old)
	if n == 0 {
		return 0, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("goAton/txt: %w", err)
	}
	s := strings.ReplaceAll(string(b), old, new)
	return n, os.WriteFile(path, []byte(s), info.Mode().Perm())
}
