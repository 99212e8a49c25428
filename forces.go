/*
 * forces.go, part of forceplot.
 *
 * Copyright 2021 The forceplot authors.
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

package forceplot

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Components is the number of Cartesian force components per atom.
const Components int = 3

// Step holds the forces of one ionic step, flattened: the x, y and z
// components of the first atom, then those of the second, and so on.
// A Step is not modified after it has been read.
type Step []float64

// NewStep copies data into a new Step. The length of data must be
// divisible by Components.
func NewStep(data []float64) (Step, error) {
	if len(data)%Components != 0 {
		return nil, CError{fmt.Sprintf("%d force components given, not divisible by %d", len(data), Components), "", []string{"NewStep"}, true}
	}
	S := make(Step, len(data))
	copy(S, data)
	return S, nil
}

// Len returns the number of force components (bars) in the step.
func (S Step) Len() int {
	return len(S)
}

// Value returns the i-th force component. Together with Len, it
// lets a Step be plotted directly as a set of bar heights.
func (S Step) Value(i int) float64 {
	return S[i]
}

// Atoms returns the number of atoms in the step.
func (S Step) Atoms() int {
	return len(S) / Components
}

// Atom returns the force vector on the i-th atom.
// It panics if i is out of range.
func (S Step) Atom(i int) [3]float64 {
	if i < 0 || i >= S.Atoms() {
		panic(ErrIndexOutOfRange)
	}
	var f [3]float64
	copy(f[:], S[i*Components:(i+1)*Components])
	return f
}

//Matrix returns the forces as an Nx3 matrix, one row per atom, the
//way gonum-based chemistry code usually keeps per-atom vectors.
//The matrix does not share memory with the step.
func (S Step) Matrix() *mat.Dense {
	if S.Atoms() == 0 {
		return nil
	}
	data := make([]float64, S.Atoms()*Components)
	copy(data, S)
	return mat.NewDense(S.Atoms(), Components, data)
}

// Norms returns the magnitude of the force on each atom, in eV/Å.
func (S Step) Norms() []float64 {
	m := S.Matrix()
	if m == nil {
		return nil
	}
	norms := make([]float64, S.Atoms())
	for i := range norms {
		norms[i] = mat.Norm(m.RowView(i), 2)
	}
	return norms
}

// MaxForce returns the index of the atom with the largest force in the
// step, and the magnitude of that force. For a step without atoms, it
// returns -1 and 0.
func (S Step) MaxForce() (int, float64) {
	norms := S.Norms()
	if len(norms) == 0 {
		return -1, 0
	}
	i := floats.MaxIdx(norms)
	return i, norms[i]
}

// Run is the ordered sequence of steps found in a log, in the order
// in which the optimization produced them.
type Run []Step

// Len returns the number of steps in the run.
func (R Run) Len() int {
	return len(R)
}
