/*
 * input.go, part of goAton.
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
	"regexp"
	"strconv"
	"strings"

	"github.com/rmera/goaton/phys"
	"github.com/rmera/goaton/txt"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Units of ATOMIC_POSITIONS and CELL_PARAMETERS
const (
	Alat     = "alat"
	Bohr     = "bohr"
	Angstrom = "angstrom"
	Crystal  = "crystal"
)

var cards = []string{"ATOMIC_SPECIES", "ATOMIC_POSITIONS", "K_POINTS", "CELL_PARAMETERS",
	"OCCUPATIONS", "CONSTRAINTS", "ATOMIC_VELOCITIES", "ATOMIC_FORCES", "ADDITIONAL_K_POINTS",
	"SOLVENTS", "HUBBARD"}

var natRe = regexp.MustCompile(`(?i)\bnat\s*=\s*(\d+)`)

// the A lattice parameter, in A, which is not followed by other letters, unlike "ATOMIC_..."
var aRe = regexp.MustCompile(`(?i)(?:^|[\s,])A\s*=\s*([-+]?[\d.]+(?:[eEdD][-+]?\d+)?)`)

// Atom is an atom line of the ATOMIC_POSITIONS card.
type Atom struct {
	Line    string //the line, as in the file
	Index   int    //the number of the line in the file, from 0
	Element string
	Pos     [3]float64 //in the units of the card
}

// Input holds the parts of a pw.x input file needed to handle atomic positions.
type Input struct {
	Path          string
	Nat           int
	Alat          float64    //in A. |a1| if only the cell is given, 0 if neither is.
	Cell          *mat.Dense //lattice vectors as rows, in A. nil if not given.
	PositionsUnit string
	Atoms         []Atom

	posLine int //ATOMIC_POSITIONS line
	natLine int //-1 if nat is not given
	natText string
}

// cardUnit returns the unit in a card line such as "ATOMIC_POSITIONS {crystal}", or def if none is given.
func cardUnit(line, def string) string {
	f := strings.Fields(strings.NewReplacer("{", " ", "}", " ", "(", " ", ")", " ").Replace(line))
	if len(f) < 2 {
		return def
	}
	return strings.ToLower(f[1])
}

func isCard(line string) bool {
	l := strings.ToUpper(strings.TrimSpace(line))
	for _, c := range cards {
		if strings.HasPrefix(l, c) {
			return true
		}
	}
	return strings.HasPrefix(l, "&")
}

// Read parses the pw.x input file at path.
func Read(path string) (*Input, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, newError(ErrCantRead, path, "Read")
	}
	lines := strings.Split(string(b), "\n")
	in := &Input{Path: path}
	in.Alat, err = readAlat(path)
	if err != nil {
		return nil, err
	}
	in.natLine = -1
	poscard := -1
	for i, l := range lines {
		if m := natRe.FindStringSubmatch(l); m != nil && in.natLine < 0 {
			in.Nat, _ = strconv.Atoi(m[1])
			in.natLine, in.natText = i, l
		}
		up := strings.ToUpper(strings.TrimSpace(l))
		switch {
		case strings.HasPrefix(up, "CELL_PARAMETERS"):
			if in.Cell, err = readCell(path, lines[i:], in.Alat); err != nil {
				return nil, err
			}
		case strings.HasPrefix(up, "ATOMIC_POSITIONS"):
			poscard = i
			in.PositionsUnit = cardUnit(l, Alat)
		}
	}
	if poscard < 0 {
		return nil, newError(ErrNoPositions, path, "Read")
	}
	//Without celldm(1) or A, pw.x takes the length of the first lattice vector as alat.
	if in.Alat == 0 && in.Cell != nil {
		in.Alat = floats.Norm(mat.Row(nil, 0, in.Cell), 2)
	}
	in.posLine = poscard
	for i, l := range lines[poscard+1:] {
		if isCard(l) {
			break
		}
		c := txt.Coords(l)
		el, err := txt.Element(l)
		if err != nil || len(c) < 3 {
			continue
		}
		in.Atoms = append(in.Atoms, Atom{Line: l, Index: poscard + 1 + i, Element: el, Pos: [3]float64{c[0], c[1], c[2]}})
	}
	return in, nil
}

// readAlat returns the lattice parameter in A, from celldm(1) (in Bohr) or A (in A). 0 if neither is present.
func readAlat(path string) (float64, error) {
	l, err := txt.FindLines(path, `(?i)celldm\(1\)`, 1, true)
	if err != nil {
		return 0, newError(ErrCantRead, path, "readAlat")
	}
	if len(l) > 0 {
		if v, err := txt.Number(l[0], "celldm(1)"); err == nil {
			return v * phys.Bohr2A, nil
		}
	}
	l, err = txt.FindLines(path, aRe.String(), 1, true)
	if err != nil {
		return 0, newError(ErrCantRead, path, "readAlat")
	}
	if len(l) > 0 {
		m := aRe.FindStringSubmatch(l[0])
		if v, err := txt.Number(m[1], ""); err == nil {
			return v, nil
		}
	}
	return 0, nil
}

// readCell reads the cell from lines, starting with the CELL_PARAMETERS line itself.
func readCell(path string, lines []string, alat float64) (*mat.Dense, error) {
	if len(lines) < 4 {
		return nil, newError(ErrNoCell, path, "readCell")
	}
	var factor float64
	switch unit := cardUnit(lines[0], Alat); unit {
	case Angstrom:
		factor = 1
	case Bohr:
		factor = phys.Bohr2A
	case Alat:
		if alat == 0 {
			return nil, newError(ErrNoCell, path, "readCell")
		}
		factor = alat
	default:
		return nil, newError(ErrUnknownUnit+" "+unit, path, "readCell")
	}
	cell := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		c := txt.Coords(lines[i+1])
		if len(c) < 3 {
			return nil, newError(ErrNoCell, path, "readCell")
		}
		for j := 0; j < 3; j++ {
			cell.Set(i, j, c[j]*factor)
		}
	}
	return cell, nil
}

// ToCartesian converts pos, in the units of the ATOMIC_POSITIONS card, to cartesian coordinates in A.
func (in *Input) ToCartesian(pos [3]float64) (r3.Vec, error) {
	v := r3.Vec{X: pos[0], Y: pos[1], Z: pos[2]}
	switch in.PositionsUnit {
	case Angstrom:
		return v, nil
	case Bohr:
		return r3.Scale(phys.Bohr2A, v), nil
	case Alat:
		if in.Alat == 0 {
			return r3.Vec{}, newError(ErrNoCell, in.Path, "ToCartesian")
		}
		return r3.Scale(in.Alat, v), nil
	case Crystal:
		if in.Cell == nil {
			return r3.Vec{}, newError(ErrNoCell, in.Path, "ToCartesian")
		}
		var r mat.VecDense
		r.MulVec(in.Cell.T(), mat.NewVecDense(3, pos[:]))
		return r3.Vec{X: r.AtVec(0), Y: r.AtVec(1), Z: r.AtVec(2)}, nil
	}
	return r3.Vec{}, newError(ErrUnknownUnit+" "+in.PositionsUnit, in.Path, "ToCartesian")
}

// FromCartesian converts the cartesian coordinates v, in A, to the units of the ATOMIC_POSITIONS card.
func (in *Input) FromCartesian(v r3.Vec) ([3]float64, error) {
	switch in.PositionsUnit {
	case Angstrom:
		return [3]float64{v.X, v.Y, v.Z}, nil
	case Bohr:
		v = r3.Scale(phys.A2Bohr, v)
		return [3]float64{v.X, v.Y, v.Z}, nil
	case Alat:
		if in.Alat == 0 {
			return [3]float64{}, newError(ErrNoCell, in.Path, "FromCartesian")
		}
		v = r3.Scale(1/in.Alat, v)
		return [3]float64{v.X, v.Y, v.Z}, nil
	case Crystal:
		if in.Cell == nil {
			return [3]float64{}, newError(ErrNoCell, in.Path, "FromCartesian")
		}
		var x mat.VecDense
		if err := x.SolveVec(in.Cell.T(), mat.NewVecDense(3, []float64{v.X, v.Y, v.Z})); err != nil {
			return [3]float64{}, newError(ErrNoCell+": "+err.Error(), in.Path, "FromCartesian")
		}
		return [3]float64{x.AtVec(0), x.AtVec(1), x.AtVec(2)}, nil
	}
	return [3]float64{}, newError(ErrUnknownUnit+" "+in.PositionsUnit, in.Path, "FromCartesian")
}
