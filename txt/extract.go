/*
 * extract.go, part of goAton.
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
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// floats in plain or scientific notation, also Fortran's 1.0d-3.
var floatRe = regexp.MustCompile(`[-+]?(?:\d+\.?\d*|\.\d+)(?:[eEdD][-+]?\d+)?`)

func parseFloat(s string) (float64, error) {
	s = strings.NewReplacer("d", "e", "D", "e").Replace(s)
	return strconv.ParseFloat(s, 64)
}

// Number returns the value assigned to name in text, as in "name = value" or "name: value".
// If name is empty, the first number in text is returned.
func Number(text, name string) (float64, error) {
	if name != "" {
		i := strings.Index(text, name)
		if i < 0 {
			return 0, fmt.Errorf("goAton/txt: %q not found", name)
		}
		text = strings.TrimLeft(text[i+len(name):], " \t=:")
	}
	f := floatRe.FindString(text)
	if f == "" {
		return 0, fmt.Errorf("goAton/txt: no number for %q", name)
	}
	return parseFloat(f)
}

// Coords returns all the numbers in line. Numbers that are part of a word, like the 1 in "H1" are ignored.
func Coords(line string) []float64 {
	ret := make([]float64, 0, 3)
	for _, field := range strings.FieldsFunc(line, func(r rune) bool { return unicode.IsSpace(r) || r == ',' }) {
		f, err := parseFloat(field)
		if err != nil {
			continue
		}
		ret = append(ret, f)
	}
	return ret
}

// Element returns the chemical symbol at the beginning of line, removing the numbers or
// labels attached to it (so "H1" and "C_a" give "H" and "C").
func Element(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", fmt.Errorf("goAton/txt: empty line")
	}
	word := []rune(fields[0])
	if !unicode.IsUpper(word[0]) {
		return "", fmt.Errorf("goAton/txt: %q does not start with an element", fields[0])
	}
	if len(word) > 1 && unicode.IsLower(word[1]) {
		return string(word[:2]), nil
	}
	return string(word[:1]), nil
}

// Column returns the i-th whitespace-separated field in line. Negative i counts from the end.
func Column(line string, i int) (string, error) {
	fields := strings.Fields(line)
	if i < 0 {
		i += len(fields)
	}
	if i < 0 || i >= len(fields) {
		return "", fmt.Errorf("goAton/txt: column %d out of range in %q", i, line)
	}
	return fields[i], nil
}
