/*
 * find.go, part of goAton.
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

// Package txt finds, edits and extracts text from the plain text files used as
// input by ab-initio codes. Files are small, so they are read fully in memory.
package txt

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// readLines returns the lines of the file, without the trailing newline characters.
func readLines(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("goAton/txt: %w", err)
	}
	s := strings.TrimSuffix(string(b), "\n")
	if s == "" {
		return []string{}, nil
	}
	return strings.Split(s, "\n"), nil
}

// matcher returns a function that reports whether a line contains key. If regex is true, key is
// compiled as a regular expression.
func matcher(key string, regex bool) (func(string) bool, error) {
	if !regex {
		return func(s string) bool { return strings.Contains(s, key) }, nil
	}
	re, err := regexp.Compile(key)
	if err != nil {
		return nil, fmt.Errorf("goAton/txt: bad expression %q: %w", key, err)
	}
	return re.MatchString, nil
}

// Indexes returns the indexes of the lines in lines matched by match. If matches>0, only the first matches
// indexes are returned, if matches<0, only the last -matches, if 0, all of them.
func indexes(lines []string, match func(string) bool, matches int) []int {
	ret := make([]int, 0, 4)
	for i, l := range lines {
		if match(l) {
			ret = append(ret, i)
		}
	}
	if matches > 0 && len(ret) > matches {
		ret = ret[:matches]
	} else if matches < 0 && len(ret) > -matches {
		ret = ret[len(ret)+matches:]
	}
	return ret
}

// FindLines returns the lines of the file at path that contain key, or that match it if regex is true.
// If matches>0, only the first matches lines are returned, if matches<0 only the last -matches. 0 returns all.
// An empty slice, and no error, is returned if nothing is found.
func FindLines(path, key string, matches int, regex bool) ([]string, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	match, err := matcher(key, regex)
	if err != nil {
		return nil, err
	}
	idx := indexes(lines, match, matches)
	ret := make([]string, 0, len(idx))
	for _, i := range idx {
		ret = append(ret, lines[i])
	}
	return ret, nil
}

// FindBetween returns the text between the first line containing start and the first line after it containing end.
// The lines with the keys are included only if includeKeys is true. If end is empty or never found, the text runs
// until the end of the file.
func FindBetween(path, start, end string, includeKeys bool) (string, error) {
	lines, err := readLines(path)
	if err != nil {
		return "", err
	}
	first := -1
	for i, l := range lines {
		if strings.Contains(l, start) {
			first = i
			break
		}
	}
	if first < 0 {
		return "", fmt.Errorf("goAton/txt: %q not found in %s", start, path)
	}
	last := len(lines)
	endfound := false
	if end != "" {
		for i := first + 1; i < len(lines); i++ {
			if strings.Contains(lines[i], end) {
				last = i
				endfound = true
				break
			}
		}
	}
	if !includeKeys {
		first++
	} else if endfound {
		last++
	}
	if first >= last {
		return "", nil
	}
	return strings.Join(lines[first:last], "\n"), nil
}
