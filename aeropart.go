/*
Copyright © 2026 the aeropart authors.
This file is part of aeropart.

aeropart is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

aeropart is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with aeropart.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package aeropart models discrete aerosol particles as mixtures of
// chemical species and calculates their physical properties.
//
// A SpeciesTable holds the material constants of every species
// (density, number of ions, molar mass and hygroscopicity parameter κ)
// together with the fractal parameters that describe the shape of the
// particles. A Particle is a vector of per-species volumes [m³] that refers
// to a SpeciesTable; its volume, dry volume, mass, radius and diameter are
// calculated from the volumes and the table. Particle geometry follows the
// fractal aggregate model described in:
//
// Naumann, K.-H. (2003), COSIMA - a computer program simulating the dynamics of
// fractal aggregates, Journal of Aerosol Science, 34(10), 1371–1397,
// doi:10.1016/S0021-8502(03)00367-7.
//
// All quantities are in SI units and no unit conversion is performed.
//
// Queries never modify a SpeciesTable or a Particle, so both may be read
// from multiple goroutines at once. Changing the fractal parameters of a
// table while another goroutine queries particles that refer to it is a
// data race; callers must serialize such changes themselves.
package aeropart

// Version gives the version number.
const Version = "0.1.0"
