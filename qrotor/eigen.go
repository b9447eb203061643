/*
 * eigen.go, part of goAton.
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
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// This is a facility to sort eigenvectors/eigenvalues pairs.
// It satisfies the sort.Interface interface. The eigenvectors are
// the columns of evecs.
type eigenpair struct {
	evecs *mat.Dense
	evals sort.Float64Slice
}

func (E eigenpair) Less(i, j int) bool {
	return E.evals[i] < E.evals[j]
}
func (E eigenpair) Swap(i, j int) {
	E.evals.Swap(i, j)
	r, _ := E.evecs.Dims()
	for k := 0; k < r; k++ {
		a, b := E.evecs.At(k, i), E.evecs.At(k, j)
		E.evecs.Set(k, i, b)
		E.evecs.Set(k, j, a)
	}
}
func (E eigenpair) Len() int {
	return len(E.evals)
}

// fixSign makes the largest component, in absolute value, of each column of evecs positive,
// so results don't depend on the arbitrary sign returned by the solvers.
func fixSign(evecs *mat.Dense) {
	r, c := evecs.Dims()
	for j := 0; j < c; j++ {
		col := evecs.ColView(j).(*mat.VecDense)
		imax := 0
		for i := 1; i < r; i++ {
			if math.Abs(col.AtVec(i)) > math.Abs(col.AtVec(imax)) {
				imax = i
			}
		}
		if col.AtVec(imax) < 0 {
			col.ScaleVec(-1, col)
		}
	}
}

// denseEigen returns the k lowest eigenvalues of H, in ascending order, and their
// eigenvectors as the columns of a n×k matrix.
func denseEigen(H *mat.SymDense, k int) ([]float64, *mat.Dense, error) {
	var es mat.EigenSym
	if ok := es.Factorize(H, true); !ok {
		return nil, nil, newError(ErrDiagonalization, "", "denseEigen")
	}
	evals := es.Values(nil)
	var evecs mat.Dense
	es.VectorsTo(&evecs)
	sort.Sort(eigenpair{&evecs, evals})
	n, _ := evecs.Dims()
	ret := mat.DenseCopyOf(evecs.Slice(0, n, 0, k))
	fixSign(ret)
	return evals[:k], ret, nil
}

// orthonormalize applies modified Gram-Schmidt, twice, to the columns of A, in place.
func orthonormalize(A *mat.Dense, rng *rand.Rand) {
	r, c := A.Dims()
	for j := 0; j < c; j++ {
		v := A.ColView(j).(*mat.VecDense)
		for pass := 0; pass < 2; pass++ {
			for i := 0; i < j; i++ {
				u := A.ColView(i)
				v.AddScaledVec(v, -mat.Dot(u, v), u)
			}
		}
		norm := mat.Norm(v, 2)
		if norm < 1e-12 {
			//The column collapsed into the others. Replace it with a random one.
			for i := 0; i < r; i++ {
				v.SetVec(i, rng.Float64()-0.5)
			}
			j--
			continue
		}
		v.ScaleVec(1/norm, v)
	}
}

// subspaceEigen returns the k lowest eigenvalues of H, and the corresponding eigenvectors as
// columns, by subspace iteration on (H - sigma*I)^-1, followed by a Rayleigh-Ritz projection
// on H at each step. sigma must be lower than the lowest eigenvalue of H, so the shifted
// matrix is positive definite. The block is larger than k, so degenerate levels are found together.
// It also returns the number of the lowest eigenpairs that converged within maxiter iterations.
func subspaceEigen(H *mat.SymDense, k int, sigma, tol float64, maxiter int) ([]float64, *mat.Dense, int, error) {
	if maxiter < 1 {
		return nil, nil, 0, newError(ErrDiagonalization+": no iterations allowed", "", "subspaceEigen")
	}
	n := H.SymmetricDim()
	p := 2*k + 4
	if p > n {
		p = n
	}
	shifted := mat.NewSymDense(n, nil)
	shifted.CopySym(H)
	for i := 0; i < n; i++ {
		shifted.SetSym(i, i, H.At(i, i)-sigma)
	}
	var chol mat.Cholesky
	if ok := chol.Factorize(shifted); !ok {
		return nil, nil, 0, newError(ErrDiagonalization+": shifted matrix not positive definite", "", "subspaceEigen")
	}
	rng := rand.New(rand.NewSource(1))
	X := mat.NewDense(n, p, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			X.Set(i, j, rng.Float64()-0.5)
		}
	}
	orthonormalize(X, rng)
	var Y, HY, T, S, HX mat.Dense
	Ts := mat.NewSymDense(p, nil)
	res := mat.NewVecDense(n, nil)
	var es mat.EigenSym
	var theta []float64
	converged := 0
	for it := 0; it < maxiter; it++ {
		if err := chol.SolveTo(&Y, X); err != nil {
			return nil, nil, 0, newError(ErrDiagonalization+": "+err.Error(), "", "subspaceEigen")
		}
		orthonormalize(&Y, rng)
		//Rayleigh-Ritz
		HY.Mul(H, &Y)
		T.Mul(Y.T(), &HY)
		for i := 0; i < p; i++ {
			for j := i; j < p; j++ {
				Ts.SetSym(i, j, 0.5*(T.At(i, j)+T.At(j, i)))
			}
		}
		if ok := es.Factorize(Ts, true); !ok {
			return nil, nil, 0, newError(ErrDiagonalization, "", "subspaceEigen")
		}
		theta = es.Values(theta)
		es.VectorsTo(&S)
		sort.Sort(eigenpair{&S, theta})
		X.Mul(&Y, &S)
		HX.Mul(&HY, &S)
		converged = 0
		for j := 0; j < k; j++ {
			res.AddScaledVec(HX.ColView(j), -theta[j], X.ColView(j))
			if mat.Norm(res, 2) > tol*math.Max(1, math.Abs(theta[j])) {
				break
			}
			converged++
		}
		if converged == k {
			break
		}
	}
	ret := mat.DenseCopyOf(X.Slice(0, n, 0, k))
	fixSign(ret)
	return theta[:k], ret, converged, nil
}
