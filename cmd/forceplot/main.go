/*
 * main.go, part of forceplot.
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

// Command forceplot animates the forces on the ions along a VASP
// geometry optimization, so one can watch the structure approach
// equilibrium when a force criterion (negative EDIFFG) is used.
//
// Run it with no arguments in the directory of the calculation:
//
//	forceplot
//
// It reads ./OUTCAR and shows one bar chart per ionic step, with dashed
// lines at +/- the cutoff.
package main

import (
	"os"
)

func main() {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	if err := runCommand(rootCmd, os.Stderr); err != nil {
		os.Exit(1)
	}
}
