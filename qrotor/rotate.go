/*
 * rotate.go, part of goAton.
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

package qrotor

import (
	"path/filepath"
	"strconv"
	"strings"

	aton "github.com/rmera/goaton"
	"github.com/rmera/goaton/phys"
	"github.com/rmera/goaton/qe"
	"github.com/rmera/goaton/st"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
)

// RotateCoords rotates positions by angle degrees around the axis normal to the plane of the
// first three positions, passing through their geometric center. Any further positions are
// rotated in the same way. If showAxis is true, the center and the center plus the (unit) axis
// are appended to the returned slice.
func RotateCoords(positions []r3.Vec, angle float64, showAxis bool) ([]r3.Vec, error) {
	if len(positions) < 3 {
		return nil, newError(ErrFewPositions, "", "RotateCoords")
	}
	center := r3.Scale(1.0/3.0, r3.Add(r3.Add(positions[0], positions[1]), positions[2]))
	v1 := r3.Sub(positions[0], positions[1])
	v2 := r3.Sub(positions[0], positions[2])
	axis := r3.Cross(v2, v1)
	if r3.Norm(axis) == 0 {
		return nil, newError(ErrFewPositions+": the first three positions are collinear", "", "RotateCoords")
	}
	axis = r3.Unit(axis)
	rot := r3.NewRotation(angle*phys.Deg2Rad, axis)
	ret := make([]r3.Vec, 0, len(positions)+2)
	for _, p := range positions {
		ret = append(ret, r3.Add(rot.Rotate(r3.Sub(p, center)), center))
	}
	if showAxis {
		ret = append(ret, center, r3.Add(center, axis))
	}
	return ret, nil
}

// Angles returns the angles, in degrees, for which RotateQE produces structures: only angle, or,
// if repeat is true, every multiple of angle in [0, 360).
func Angles(angle float64, repeat bool) ([]float64, error) {
	if !repeat {
		return []float64{angle}, nil
	}
	if !(angle > 0) {
		return nil, newError(ErrBadAngle, "", "Angles")
	}
	var r []float64
	for i := 0; float64(i)*angle < 360; i++ {
		r = append(r, float64(i)*angle)
	}
	return r, nil
}

// RotateQE rotates the atoms of the Quantum ESPRESSO input at path found at (approximately)
// positions, given in the units of its ATOMIC_POSITIONS card and matched up to precision decimals.
// The rotation is that of RotateCoords. Each rotated structure is written next to the original,
// as name_angle.ext, and the names of the new files are returned. If repeat is true, the
// rotation is repeated over the whole circumference, in steps of angle. showAxis adds two He
// atoms marking the rotation axis, for debugging. He must then be declared in ATOMIC_SPECIES
// for the file to be usable.
func RotateQE(path string, positions [][]float64, angle float64, repeat bool, precision int, showAxis bool) ([]string, error) {
	if len(positions) < 3 {
		return nil, newError(ErrFewPositions, "", "RotateQE")
	}
	in, err := qe.Read(path)
	if err != nil {
		return nil, aton.ErrDecorate(err, "RotateQE")
	}
	atoms := make([]qe.Atom, len(positions))
	cart := make([]r3.Vec, len(positions))
	for i, p := range positions {
		atoms[i], err = in.GetAtom(p, precision)
		if err != nil {
			return nil, aton.ErrDecorate(err, "RotateQE")
		}
		cart[i], err = in.ToCartesian(atoms[i].Pos)
		if err != nil {
			return nil, aton.ErrDecorate(err, "RotateQE")
		}
		aton.L().Debug("atom found", zap.String("element", atoms[i].Element), zap.Float64s("position", atoms[i].Pos[:]))
	}
	angles, err := Angles(angle, repeat)
	if err != nil {
		return nil, aton.ErrDecorate(err, "RotateQE")
	}
	ext := filepath.Ext(path)
	name := strings.TrimSuffix(path, ext)
	outputs := make([]string, 0, len(angles))
	for _, a := range angles {
		out := name + "_" + strconv.FormatFloat(a, 'f', -1, 64) + ext
		rotated, err := RotateCoords(cart, a, showAxis)
		if err != nil {
			return outputs, aton.ErrDecorate(err, "RotateQE")
		}
		newpos := make([][3]float64, len(rotated))
		for i, v := range rotated {
			newpos[i], err = in.FromCartesian(v)
			if err != nil {
				return outputs, aton.ErrDecorate(err, "RotateQE")
			}
		}
		if err := st.Copy(path, out); err != nil {
			return outputs, aton.ErrDecorate(err, "RotateQE")
		}
		if err := qe.SetAtoms(out, atoms, newpos[:len(atoms)]); err != nil {
			return outputs, aton.ErrDecorate(err, "RotateQE")
		}
		for _, p := range newpos[len(atoms):] {
			if err := qe.AddAtom(out, qe.FormatAtom("He", p)); err != nil {
				return outputs, aton.ErrDecorate(err, "RotateQE")
			}
		}
		aton.L().Info("structure rotated", zap.String("file", out), zap.Float64("angle", a))
		outputs = append(outputs, out)
	}
	return outputs, nil
}
