/*
 * potential.go, part of goAton.
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
	"bufio"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	aton "github.com/rmera/goaton"
	"github.com/rmera/goaton/phys"
	"github.com/rmera/goaton/txt"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/mat"
)

// Potential names
const (
	Zero      = "zero"
	Sine      = "sine"
	Cosine    = "cosine"
	Titov2023 = "titov2023"
	File      = "file"
	Values    = "values"
)

// Titov2023Constants are the default constants, in meV, of the Titov2023 potential.
var Titov2023Constants = []float64{2.7860, 0.0130, -1.5284, -0.0037, -1.2791}

// A model returns the potential on the grid x for the given constants.
type model func(x, constants []float64) ([]float64, error)

var models = map[string]model{
	Zero:      zero,
	Sine:      sine,
	Cosine:    cosine,
	Titov2023: titov2023,
}

// Potentials returns the names of the available potentials.
func Potentials() []string {
	r := []string{File, Values}
	for k := range models {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

func zero(x, _ []float64) ([]float64, error) {
	return make([]float64, len(x)), nil
}

// periodicConstants fills C, A, frequency and phase from c, with the defaults 0, 0, 3 and 0.
func periodicConstants(c []float64) (C, A, freq, phase float64, err error) {
	if len(c) > 4 {
		return 0, 0, 0, 0, fmt.Errorf("%s: %d given, at most 4 expected", ErrBadConstants, len(c))
	}
	def := []float64{0, 0, 3, 0}
	copy(def, c)
	return def[0], def[1], def[2], def[3], nil
}

// sine is C + A*sin(freq*x + phase). Constants are C, A, freq and phase.
func sine(x, c []float64) ([]float64, error) {
	C, A, freq, phase, err := periodicConstants(c)
	if err != nil {
		return nil, err
	}
	r := make([]float64, len(x))
	for i, v := range x {
		r[i] = C + A*math.Sin(freq*v+phase)
	}
	return r, nil
}

// cosine is the usual hindered rotor, C + (A/2)*(1 - cos(freq*x + phase)), with a barrier of height A.
// Constants are C, A, freq and phase.
func cosine(x, c []float64) ([]float64, error) {
	C, A, freq, phase, err := periodicConstants(c)
	if err != nil {
		return nil, err
	}
	r := make([]float64, len(x))
	for i, v := range x {
		r[i] = C + 0.5*A*(1-math.Cos(freq*v+phase))
	}
	return r, nil
}

// titov2023 is C0 + C1 sin(3x) + C2 cos(3x) + C3 sin(6x) + C4 cos(6x), from
// Titov et al., 2023. Titov2023Constants are used if no constants are given.
func titov2023(x, c []float64) ([]float64, error) {
	if len(c) == 0 {
		c = Titov2023Constants
	}
	if len(c) != 5 {
		return nil, fmt.Errorf("%s: %d given, 5 expected", ErrBadConstants, len(c))
	}
	r := make([]float64, len(x))
	for i, v := range x {
		r[i] = c[0] + c[1]*math.Sin(3*v) + c[2]*math.Cos(3*v) + c[3]*math.Sin(6*v) + c[4]*math.Cos(6*v)
	}
	return r, nil
}

// solvePotential returns the values of the potential of the system on its grid.
func solvePotential(S *System) ([]float64, error) {
	name := strings.ToLower(strings.TrimSpace(S.PotentialName))
	switch name {
	case "", Values:
		if len(S.PotentialValues) != len(S.Grid) {
			return nil, newError(ErrBadPotential, S.Comment, "solvePotential")
		}
		return S.PotentialValues, nil
	case File:
		unit := phys.MeV
		if S.PotentialUnit != "" {
			u, err := phys.ParseEnergy(S.PotentialUnit)
			if err != nil {
				return nil, newError(err.Error(), S.Comment, "solvePotential")
			}
			unit = u
		}
		angles, energies, err := LoadPotential(S.PotentialFile)
		if err != nil {
			return nil, aton.ErrDecorate(err, "solvePotential")
		}
		phys.ConvertAll(energies, unit, phys.MeV)
		return Interpolate(angles, energies, S.Grid)
	}
	m, ok := models[name]
	if !ok {
		return nil, newError(ErrUnknownPotential+" "+S.PotentialName, S.Comment, "solvePotential")
	}
	v, err := m(S.Grid, S.PotentialConstants)
	if err != nil {
		return nil, newError(err.Error(), S.Comment, "solvePotential")
	}
	return v, nil
}

// Potential computes the potential values of the system on its grid, building the grid first
// if needed. If S.CorrectPotentialOffset is true, the minimum of the potential is substracted
// and stored in S.CorrectedPotentialOffset.
func Potential(S *System) error {
	if err := S.Validate(); err != nil {
		return aton.ErrDecorate(err, "Potential")
	}
	S.SetGrid()
	V, err := solvePotential(S)
	if err != nil {
		return aton.ErrDecorate(err, "Potential")
	}
	V = append([]float64(nil), V...)
	if S.CorrectPotentialOffset {
		offset := floats.Min(V)
		floats.AddConst(-offset, V)
		S.CorrectedPotentialOffset = offset
	}
	S.PotentialValues = V
	return nil
}

// LoadPotential reads a potential from a text file with two columns: angles, in degrees, and energies.
// Empty lines and lines starting with '#' are ignored.
func LoadPotential(path string) (angles, energies []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, newError(ErrBadPotentialFile+": "+err.Error(), "", "LoadPotential")
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		l := strings.TrimSpace(sc.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		c := txt.Coords(l)
		if len(c) < 2 {
			return nil, nil, newError(fmt.Sprintf("%s: %s line %d", ErrBadPotentialFile, path, n), "", "LoadPotential")
		}
		angles = append(angles, c[0])
		energies = append(energies, c[1])
	}
	if err := sc.Err(); err != nil {
		return nil, nil, newError(ErrBadPotentialFile+": "+err.Error(), "", "LoadPotential")
	}
	if len(angles) < 3 {
		return nil, nil, newError(ErrBadPotentialFile+": at least 3 points are needed", "", "LoadPotential")
	}
	return angles, energies, nil
}

// SavePotential writes the potential of the system to path, in the format read by LoadPotential,
// with angles in degrees and energies in meV.
func SavePotential(path string, S *System) error {
	if len(S.PotentialValues) != len(S.Grid) || len(S.Grid) == 0 {
		return newError(ErrNoPotential, S.Comment, "SavePotential")
	}
	f, err := os.Create(path)
	if err != nil {
		return newError(err.Error(), S.Comment, "SavePotential")
	}
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# %s\n# Angle/deg    Potential/meV\n", S.Comment)
	for i, x := range S.Grid {
		fmt.Fprintf(w, "%12.6f  %18.10f\n", x*phys.Rad2Deg, S.PotentialValues[i])
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return newError(err.Error(), S.Comment, "SavePotential")
	}
	return f.Close()
}

// Interpolate returns the potential on grid (in radians) from the values at the given angles,
// in degrees, using a periodic cubic spline: the interpolated potential and its first and
// second derivatives are continuous across 0 and 360 degrees. Angles are taken modulo 360,
// and repeated angles are averaged.
func Interpolate(angles, energies, grid []float64) ([]float64, error) {
	if len(angles) != len(energies) {
		return nil, newError(ErrBadPotentialFile+": angles and energies differ in number", "", "Interpolate")
	}
	type point struct{ x, y float64 }
	sum := make(map[float64][2]float64, len(angles))
	for i, a := range angles {
		a = math.Mod(a, 360)
		if a < 0 {
			a += 360
		}
		a = math.Round(a*1e9) / 1e9
		if a == 360 {
			a = 0
		}
		s := sum[a]
		sum[a] = [2]float64{s[0] + energies[i], s[1] + 1}
	}
	pts := make([]point, 0, len(sum))
	for a, s := range sum {
		pts = append(pts, point{a, s[0] / s[1]})
	}
	if len(pts) < 3 {
		return nil, newError(ErrBadPotentialFile+": at least 3 different angles are needed", "", "Interpolate")
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].x < pts[j].x })
	n := len(pts)
	//The first point is repeated one period later, closing the curve.
	xs := make([]float64, n+1)
	ys := make([]float64, n+1)
	for i, p := range pts {
		xs[i] = p.x
		ys[i] = p.y
	}
	xs[n] = xs[0] + 360
	ys[n] = ys[0]
	slopes, err := periodicSlopes(xs, ys)
	if err != nil {
		return nil, newError(err.Error(), "", "Interpolate")
	}
	var spline interp.PiecewiseCubic
	spline.FitWithDerivatives(xs, ys, slopes)
	r := make([]float64, len(grid))
	for i, x := range grid {
		d := math.Mod(x*phys.Rad2Deg, 360)
		if d < 0 {
			d += 360
		}
		if d < xs[0] {
			d += 360
		}
		r[i] = spline.Predict(d)
	}
	aton.L().Debug("potential interpolated", zap.Int("points", n), zap.Int("grid", len(grid)))
	return r, nil
}

// periodicSlopes returns the derivatives at the knots xs of the cubic spline through ys
// with continuous second derivative, where the last knot is the first one a period later.
// The slope at the last knot is that of the first.
func periodicSlopes(xs, ys []float64) ([]float64, error) {
	n := len(xs) - 1
	A := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		prev := (i + n - 1) % n
		next := (i + 1) % n
		//Interval widths and rises before and after knot i.
		hp, dp := xs[i]-xs[prev], ys[i]-ys[prev]
		if i == 0 {
			hp = xs[n] - xs[n-1]
			dp = ys[n] - ys[n-1]
		}
		hn, dn := xs[i+1]-xs[i], ys[i+1]-ys[i]
		A.Set(i, prev, A.At(i, prev)+1/hp)
		A.Set(i, i, A.At(i, i)+2*(1/hp+1/hn))
		A.Set(i, next, A.At(i, next)+1/hn)
		b.SetVec(i, 3*(dp/(hp*hp)+dn/(hn*hn)))
	}
	var k mat.VecDense
	if err := k.SolveVec(A, b); err != nil {
		return nil, err
	}
	r := make([]float64, n+1)
	copy(r, k.RawVector().Data)
	r[n] = r[0]
	return r, nil
}
