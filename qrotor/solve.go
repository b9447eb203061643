/*
 * solve.go, part of goAton.
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
	"context"
	"runtime"
	"time"

	aton "github.com/rmera/goaton"
	"github.com/rmera/goaton/st"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Diagonalization methods
const (
	Auto     = ""
	Dense    = "dense"
	Subspace = "subspace"
)

// Options contains the options for the Schrodinger solver.
type Options struct {
	//Method is Dense, Subspace or Auto. Auto uses full diagonalization for small grids, and
	//subspace iteration otherwise.
	Method string
	//Tolerance is the relative residual under which an eigenpair is converged (Subspace only).
	//Non-positive values are replaced by the default.
	Tolerance float64
	//MaxIter is the maximum number of subspace iterations. Non-positive values are replaced by the default.
	MaxIter int
	//CPUs is the maximum number of systems solved at the same time by Energies.
	CPUs int
	//DenseLimit is the largest grid for which Auto picks Dense.
	DenseLimit int
}

// DefaultOptions returns reasonable options for most systems.
func DefaultOptions() *Options {
	return &Options{
		Method:     Auto,
		Tolerance:  1e-8,
		MaxIter:    1000,
		CPUs:       runtime.NumCPU(),
		DenseLimit: 300,
	}
}

// filled returns a copy of O where the unset iteration parameters take their default values.
func (O *Options) filled() *Options {
	r := *O
	def := DefaultOptions()
	if r.Tolerance <= 0 {
		r.Tolerance = def.Tolerance
	}
	if r.MaxIter <= 0 {
		r.MaxIter = def.MaxIter
	}
	return &r
}

func (O *Options) method(S *System) string {
	n := len(S.Grid)
	switch O.Method {
	case Dense:
		return Dense
	case Subspace:
		//The block would be the whole matrix anyway.
		if 2*S.Levels+4 >= n {
			return Dense
		}
		return Subspace
	}
	if n <= O.DenseLimit || 2*S.Levels+4 >= n {
		return Dense
	}
	return Subspace
}

// Schrodinger solves the time-independent Schrödinger equation for the system, which must have
// its potential computed (see Potential). It fills the eigenvalues, and eigenvectors if requested,
// along with the derived quantities. If opts is nil, DefaultOptions are used. When not all the
// requested levels converge, a warning is logged and S.Converged is set to false.
func Schrodinger(S *System, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	opts = opts.filled()
	start := time.Now()
	if err := S.Validate(); err != nil {
		return aton.ErrDecorate(err, "Schrodinger")
	}
	S.SetGrid()
	H, err := Hamiltonian(S)
	if err != nil {
		return aton.ErrDecorate(err, "Schrodinger")
	}
	S.Method = opts.method(S)
	var evals []float64
	var evecs *mat.Dense
	converged := S.Levels
	switch S.Method {
	case Dense:
		evals, evecs, err = denseEigen(H, S.Levels)
	default:
		sigma := floats.Min(S.PotentialValues) - S.B/2
		evals, evecs, converged, err = subspaceEigen(H, S.Levels, sigma, opts.Tolerance, opts.MaxIter)
	}
	if err != nil {
		return aton.ErrDecorate(err, "Schrodinger")
	}
	S.Converged = converged == S.Levels
	if !S.Converged {
		aton.L().Warn("not all eigenvalues converged",
			zap.String("system", S.Comment),
			zap.Int("requested", S.Levels),
			zap.Int("converged", converged))
	}
	S.Eigenvalues = append([]float64(nil), evals...)
	S.EigenvaluesB = make([]float64, len(evals))
	for i, e := range evals {
		S.EigenvaluesB[i] = e / S.B
	}
	S.Eigenvectors = nil
	if S.SaveEigenvectors {
		S.Eigenvectors = make([][]float64, evecs.RawMatrix().Cols)
		for j := range S.Eigenvectors {
			S.Eigenvectors[j] = mat.Col(nil, j, evecs)
		}
	}
	S.PotentialMax = floats.Max(S.PotentialValues)
	S.PotentialMin = floats.Min(S.PotentialValues)
	S.PotentialMaxB = S.PotentialMax / S.B
	S.EnergyBarrier = S.PotentialMax - S.Eigenvalues[0]
	S.FirstTransition = 0
	if len(S.Eigenvalues) > 1 {
		S.FirstTransition = S.Eigenvalues[1] - S.Eigenvalues[0]
	}
	S.Runtime = time.Since(start).Seconds()
	aton.L().Debug("system solved",
		zap.String("system", S.Comment),
		zap.String("method", S.Method),
		zap.Int("gridsize", S.GridSize),
		zap.Float64s("eigenvalues", S.Eigenvalues),
		zap.Float64("runtime", S.Runtime))
	return nil
}

// Solve computes the potential of the system and then solves it with Schrodinger.
func Solve(S *System, opts *Options) error {
	if err := Potential(S); err != nil {
		return aton.ErrDecorate(err, "Solve")
	}
	return aton.ErrDecorate(Schrodinger(S, opts), "Solve")
}

// Energies solves all the systems of the experiment, at most opts.CPUs at a time. The experiment
// given is not modified: a solved copy is returned. If filename is not empty, the result is
// also saved to it (see st.Save).
func Energies(ctx context.Context, exp *Experiment, opts *Options, filename string) (*Experiment, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	r := exp.Copy()
	g, ctx := errgroup.WithContext(ctx)
	if opts.CPUs > 0 {
		g.SetLimit(opts.CPUs)
	}
	aton.L().Info("solving experiment", zap.String("comment", r.Comment), zap.Int("systems", len(r.Systems)))
	for _, s := range r.Systems {
		s := s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return Solve(s, opts)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, aton.ErrDecorate(err, "Energies")
	}
	if filename != "" {
		out, err := st.Save(r, filename)
		if err != nil {
			return r, aton.ErrDecorate(err, "Energies")
		}
		aton.L().Info("experiment saved", zap.String("file", out))
	}
	return r, nil
}

// EnergiesOf solves a single system, wrapped in an experiment with the same comment.
func EnergiesOf(ctx context.Context, S *System, opts *Options, filename string) (*Experiment, error) {
	return Energies(ctx, &Experiment{Comment: S.Comment, Systems: []*System{S}}, opts, filename)
}
