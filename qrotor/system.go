/*
 * system.go, part of goAton.
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
	"fmt"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// System is a single rotor problem: its inputs, and the results once solved.
// Energies are in meV, angles in radians.
type System struct {
	Comment string `json:"comment"`
	//Group is the rotor group (CH3, CD3, NH3, ND3). It sets B in NewSystem, but is otherwise informative.
	Group string  `json:"group"`
	B     float64 `json:"B"`
	//GridSize is the number of grid points. It is used to build Grid if that is empty.
	GridSize int       `json:"gridsize"`
	Grid     []float64 `json:"grid,omitempty"`
	//PotentialName selects the potential. See Potentials for the available ones.
	PotentialName      string    `json:"potential_name"`
	PotentialConstants []float64 `json:"potential_constants,omitempty"`
	//PotentialFile is the two-column (degrees, energy) file used by the "file" potential, with
	//energies in PotentialUnit (meV if empty).
	PotentialFile   string    `json:"potential_file,omitempty"`
	PotentialUnit   string    `json:"potential_unit,omitempty"`
	PotentialValues []float64 `json:"potential_values,omitempty"`
	//Levels is the number of eigenvalues to solve for.
	Levels int `json:"levels"`
	//If true, the minimum of the potential is substracted from it, and stored in CorrectedPotentialOffset.
	CorrectPotentialOffset bool `json:"correct_potential_offset"`
	SaveEigenvectors       bool `json:"save_eigenvectors"`

	//Results
	CorrectedPotentialOffset float64     `json:"corrected_potential_offset"`
	Eigenvalues              []float64   `json:"eigenvalues,omitempty"`
	Eigenvectors             [][]float64 `json:"eigenvectors,omitempty"` //one slice per level
	EigenvaluesB             []float64   `json:"eigenvalues_B,omitempty"`
	PotentialMax             float64     `json:"potential_max"`
	PotentialMin             float64     `json:"potential_min"`
	PotentialMaxB            float64     `json:"potential_max_B"`
	EnergyBarrier            float64     `json:"energy_barrier"`
	FirstTransition          float64     `json:"first_transition"`
	Converged                bool        `json:"converged"`
	Method                   string      `json:"method,omitempty"`
	Runtime                  float64     `json:"runtime"` //in s
}

// Default parameters for new systems
const (
	DefaultGridSize = 500
	DefaultLevels   = 5
)

// NewSystem returns a system for the given group with reasonable defaults: a free rotor
// with DefaultGridSize points, solved for DefaultLevels levels, with the potential offset corrected.
// If group is empty, B is left as 0 and must be set before solving.
func NewSystem(group string) (*System, error) {
	s := &System{
		Group:                  group,
		GridSize:               DefaultGridSize,
		Levels:                 DefaultLevels,
		PotentialName:          "zero",
		CorrectPotentialOffset: true,
	}
	if group == "" {
		return s, nil
	}
	b, err := GroupB(group)
	if err != nil {
		return nil, err
	}
	s.B = b
	s.Comment = group
	return s, nil
}

// SetGrid builds a grid of GridSize points if the system doesn't have one, and
// sets GridSize to the size of the grid otherwise.
func (S *System) SetGrid() {
	if len(S.Grid) == 0 {
		S.Grid = Grid(S.GridSize)
		return
	}
	S.GridSize = len(S.Grid)
}

// Validate checks that the inputs of the system make sense.
func (S *System) Validate() error {
	n := S.GridSize
	if len(S.Grid) > 0 {
		n = len(S.Grid)
	}
	if n < 3 {
		return newError(ErrBadGrid, S.Comment, "Validate")
	}
	if S.Levels < 1 || S.Levels >= n {
		return newError(ErrBadLevels, S.Comment, "Validate")
	}
	if !(S.B > 0) {
		return newError(ErrBadB, S.Comment, "Validate")
	}
	return nil
}

// Copy returns a deep copy of the system.
func (S *System) Copy() *System {
	r := *S
	r.Grid = slices.Clone(S.Grid)
	r.PotentialConstants = slices.Clone(S.PotentialConstants)
	r.PotentialValues = slices.Clone(S.PotentialValues)
	r.Eigenvalues = slices.Clone(S.Eigenvalues)
	r.EigenvaluesB = slices.Clone(S.EigenvaluesB)
	if S.Eigenvectors != nil {
		r.Eigenvectors = make([][]float64, len(S.Eigenvectors))
		for i, v := range S.Eigenvectors {
			r.Eigenvectors[i] = slices.Clone(v)
		}
	}
	return &r
}

// Splittings returns the differences between consecutive eigenvalues.
func (S *System) Splittings() []float64 {
	if len(S.Eigenvalues) < 2 {
		return nil
	}
	r := make([]float64, len(S.Eigenvalues)-1)
	for i := range r {
		r[i] = S.Eigenvalues[i+1] - S.Eigenvalues[i]
	}
	return r
}

// String returns a short summary of the solved system.
func (S *System) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: B = %.4f meV, %d points, potential %s\n", S.Comment, S.B, S.GridSize, S.PotentialName)
	for i, e := range S.Eigenvalues {
		fmt.Fprintf(&b, "  E%d = %.6f meV\n", i, e)
	}
	return b.String()
}

// Grid returns n points evenly spaced in [0, 2π). The endpoint is left out, since
// it is the same point as 0 in a periodic grid.
func Grid(n int) []float64 {
	if n < 1 {
		return nil
	}
	g := make([]float64, n+1)
	floats.Span(g, 0, 2*math.Pi)
	return g[:n]
}

// Experiment is a set of systems, usually variations of the same rotor, to be solved together.
type Experiment struct {
	Comment string    `json:"comment"`
	Systems []*System `json:"systems"`
}

// Copy returns a deep copy of the experiment.
func (E *Experiment) Copy() *Experiment {
	r := &Experiment{Comment: E.Comment, Systems: make([]*System, len(E.Systems))}
	for i, s := range E.Systems {
		r.Systems[i] = s.Copy()
	}
	return r
}

// Eigenvalues returns the eigenvalues of each system of the experiment.
func (E *Experiment) Eigenvalues() [][]float64 {
	r := make([][]float64, len(E.Systems))
	for i, s := range E.Systems {
		r[i] = s.Eigenvalues
	}
	return r
}
