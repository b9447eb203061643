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

package qe

import (
	"fmt"
	"math"
	"strings"

	aton "github.com/rmera/goaton"
	"github.com/rmera/goaton/txt"
	"go.uber.org/zap"
)

// GetAtom returns the atom whose position is closest to pos, among those closer than
// 10^-precision in each coordinate. pos is in the units of the ATOMIC_POSITIONS card.
func (in *Input) GetAtom(pos []float64, precision int) (Atom, error) {
	if len(pos) < 3 {
		return Atom{}, newError(ErrBadCoordinate, in.Path, "GetAtom")
	}
	tol := math.Pow(10, -float64(precision))
	best := -1
	bestd := math.Inf(1)
	for i, a := range in.Atoms {
		d := 0.0
		ok := true
		for j := 0; j < 3; j++ {
			diff := math.Abs(a.Pos[j] - pos[j])
			if diff > tol {
				ok = false
				break
			}
			d += diff * diff
		}
		if ok && d < bestd {
			best, bestd = i, d
		}
	}
	if best < 0 {
		return Atom{}, newError(fmt.Sprintf("%s: %v", ErrAtomNotFound, pos[:3]), in.Path, "GetAtom")
	}
	return in.Atoms[best], nil
}

// FormatAtom returns an ATOMIC_POSITIONS line for the atom with the given label at pos. Anything
// given in extra, such as the if_pos flags, is appended at the end of the line.
func FormatAtom(label string, pos [3]float64, extra ...string) string {
	l := fmt.Sprintf("  %s   %.15f   %.15f   %.15f", label, pos[0], pos[1], pos[2])
	if len(extra) > 0 {
		l += "   " + strings.Join(extra, " ")
	}
	return l
}

// Moved returns the line of the atom a, moved to pos. The label of the atom and any field after
// its coordinates are kept.
func (a Atom) Moved(pos [3]float64) string {
	f := strings.Fields(a.Line)
	if len(f) < 4 {
		return FormatAtom(a.Element, pos)
	}
	return FormatAtom(f[0], pos, f[4:]...)
}

// SetAtoms writes to the file at path the atoms in atoms, each moved to the corresponding
// position in pos. path is usually a copy of the file the atoms were read from. Atoms are
// located by their line number, and the line must not have changed since it was read.
func SetAtoms(path string, atoms []Atom, pos [][3]float64) error {
	if len(atoms) != len(pos) {
		return newError(fmt.Sprintf("%d atoms and %d positions", len(atoms), len(pos)), path, "SetAtoms")
	}
	for i, a := range atoms {
		if err := txt.SetLine(path, a.Index, a.Line, a.Moved(pos[i])); err != nil {
			return newError(ErrCantWrite+": "+err.Error(), path, "SetAtoms")
		}
	}
	return nil
}

// AddAtom appends line to the ATOMIC_POSITIONS card of the input at path, and increases nat
// accordingly. The species of the new atom must already be declared in ATOMIC_SPECIES.
func AddAtom(path, line string) error {
	in, err := Read(path)
	if err != nil {
		return aton.ErrDecorate(err, "AddAtom")
	}
	at := in.posLine + 1
	if len(in.Atoms) > 0 {
		at = in.Atoms[len(in.Atoms)-1].Index + 1
	}
	if err := txt.InsertLine(path, at, line); err != nil {
		return newError(ErrCantWrite+": "+err.Error(), path, "AddAtom")
	}
	if in.natLine < 0 {
		aton.L().Warn("nat not found, not updated", zap.String("file", path))
		return nil
	}
	natline := in.natLine
	if natline >= at {
		natline++
	}
	newnat := natRe.ReplaceAllString(in.natText, fmt.Sprintf("nat = %d", in.Nat+1))
	if err := txt.SetLine(path, natline, in.natText, newnat); err != nil {
		return newError(ErrCantWrite+": "+err.Error(), path, "AddAtom")
	}
	return nil
}
