/*
 * animate.go, part of forceplot.
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

package display

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vaspviz/forceplot"
)

// Animator shows the steps of a run on a surface, one at a time, with
// a fixed pause between them.
type Animator struct {
	Surface Surface
	Pause   time.Duration
	// Cutoff is the force criterion, in eV/Å, steps are checked against.
	Cutoff float64
	// Sleep blocks for the pause. time.Sleep if nil.
	Sleep func(time.Duration)
	// Log gets a debug entry per frame. Nothing is logged if nil.
	Log logrus.FieldLogger
}

// Play shows every step of run, in order, each followed by the pause.
// An empty run shows nothing. Play does not close the surface, so the
// last frame stays on display.
func (A *Animator) Play(run forceplot.Run) error {
	if A.Surface == nil {
		return fmt.Errorf("display: animator without a surface")
	}
	sleep := A.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	for i, step := range run {
		f := Frame{Number: i + 1, Forces: step}
		if err := A.Surface.Show(f); err != nil {
			return fmt.Errorf("display: showing step %d of %d: %w", f.Number, run.Len(), err)
		}
		if A.Log != nil {
			fields := logrus.Fields{
				"step":   f.Number,
				"of":     run.Len(),
				"atoms":  step.Atoms(),
				"forces": step.Len(),
			}
			if atom, max := step.MaxForce(); atom >= 0 {
				fields["max_atom"] = atom + 1
				fields["max_force"] = max
				fields["max_vector"] = step.Atom(atom)
				fields["converged"] = max <= A.Cutoff
			}
			A.Log.WithFields(fields).Debug("frame shown")
		}
		sleep(A.Pause)
	}
	if A.Log != nil && run.Len() > 0 {
		_, max := run[run.Len()-1].MaxForce()
		A.Log.WithFields(logrus.Fields{
			"steps":     run.Len(),
			"max_force": max,
			"cutoff":    A.Cutoff,
			"converged": max <= A.Cutoff,
		}).Info("last step")
	}
	return nil
}
