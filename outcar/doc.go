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
 * */

/*Package outcar reads the forces on the ions, for each ionic step,
from the output of a VASP geometry optimization.

A force block starts with a line containing "TOTAL". The two lines
after it are headers, then each line gives one atom, with the x, y
and z force components in the 4th, 5th and 6th whitespace-separated
fields. A line containing "---" ends the block:

	POSITION                                       TOTAL-FORCE (eV/Angst)
	-----------------------------------------------------------------
	     x            y            z            fx          fy          fz
	     0.00000      0.00000      0.00000     0.012       -0.020       0.031
	-----------------------------------------------------------------

Everything outside force blocks is ignored. Anything unexpected inside
a block is an error, no attempt at recovery is made.

Files compressed with gzip or zstd are decompressed on the fly.*/
package outcar
