/*
 * doc.go, part of forceplot.
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

/*Package forceplot follows the forces on the ions along a VASP geometry
optimization.

With the electronic steps, convergence is easy to monitor, as the change in
energy is printed after every step. It is harder for the ionic optimization
when a force criterion (negative EDIFFG), and not an energy criterion, is used.
forceplot shows all the force components of each ionic step as a bar chart,
one step after the other, so one can watch the structure approach equilibrium.


	**Packages**

    forceplot (this one) has the data types: a Step is the flat list of
	force components of one ionic step, a Run the steps in order.

    outcar reads the force blocks of an OUTCAR file, compressed or not.

    chemplot draws the bar chart of a step with gonum/plot.

    display shows the charts on a terminal, as true color images or as
	text, with a pause between steps.

    config holds the settings, with defaults and YAML loading.

The forceplot command, in cmd/forceplot, puts everything together.
*/
package forceplot
