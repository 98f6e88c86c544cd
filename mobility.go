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

package aeropart

import (
	"fmt"
	"math"
)

// GasConstant is the universal gas constant [J/mol/K].
const GasConstant = 8.314472

// AirMolarMass is the molar mass of dry air [kg/mol].
const AirMolarMass = 28.97e-3

// Cunningham slip correction parameters.
const (
	slipA = 1.142
	slipQ = 0.558
	slipB = 0.999
)

// mobilityTolerance is the relative convergence tolerance of
// Vol2MobilityRad, which gives up after maxMobilityIterations.
const (
	mobilityTolerance     = 1e-12
	maxMobilityIterations = 100
)

// AirMeanFreePath returns the mean free path [m] of air molecules at
// temperature T [K] and pressure [Pa]. The viscosity of air follows
// Sutherland's law.
func AirMeanFreePath(T, pressure float64) (float64, error) {
	if err := checkPositive("temperature", T); err != nil {
		return 0, err
	}
	if err := checkPositive("pressure", pressure); err != nil {
		return 0, err
	}
	viscosity := 1.8325e-5 * (296.16 + 120) / (T + 120) * math.Pow(T/296.16, 1.5)
	density := pressure * AirMolarMass / (GasConstant * T)
	speed := math.Sqrt(8 * GasConstant * T / (math.Pi * AirMolarMass))
	return 2 * viscosity / (density * speed), nil
}

// slipCorrection returns the Cunningham slip correction factor of a sphere
// with radius r [m] in a gas with mean free path l [m].
func slipCorrection(r, l float64) float64 {
	kn := l / r
	return 1 + kn*(slipA+slipQ*math.Exp(-slipB/kn))
}

// kirkwoodRiseman returns the ratio of the continuum regime mobility radius
// to the geometric radius of an aggregate with fractal dimension d.
func kirkwoodRiseman(d float64) float64 {
	return -0.06483*d*d + 0.6353*d - 0.4898
}

// Vol2MobilityRad returns the mobility equivalent radius [m] of a particle
// with volume v [m³] at temperature T [K] and pressure [Pa], i.e. the
// radius of the sphere with the same drag in the gas. Spherical particles
// have a mobility radius equal to their geometric radius. Aggregates have
// a continuum regime mobility radius R_c = h(D) R_g, with R_g the geometric
// radius and h the Kirkwood-Riseman ratio, and take the slip correction of
// their mass equivalent sphere R_me in the transition regime:
//
//	R_m / C(R_m) = R_c / C(R_me)
//
// which is solved for R_m with Newton's method. The fractal dimension of
// aggregates must be between 1 and 3.
func (f Fractal) Vol2MobilityRad(v, T, pressure float64) (float64, error) {
	l, err := AirMeanFreePath(T, pressure)
	if err != nil {
		return 0, err
	}
	if f.IsSpherical() || v == 0 {
		return f.Vol2Rad(v), nil
	}
	if f.Dim < 1 || f.Dim > 3 {
		return 0, fmt.Errorf("%w: fractal dimension=%g but should be between 1 and 3 for mobility",
			ErrInvalidParameter, f.Dim)
	}
	rc := kirkwoodRiseman(f.Dim) * f.Vol2Rad(v)
	target := rc / slipCorrection(SphereVol2Rad(v), l)

	// g(x) = x / C(x) = x² / h(x) is increasing in x.
	x := rc
	for i := 0; i < maxMobilityIterations; i++ {
		e := math.Exp(-slipB * x / l)
		h := x + l*(slipA+slipQ*e)
		g := x*x/h - target
		dg := (x*x + 2*x*l*slipA + 2*x*l*slipQ*e + slipB*slipQ*x*x*e) / (h * h)
		next := x - g/dg
		if next <= 0 {
			next = x / 2
		}
		if math.Abs(next-x) < mobilityTolerance*next {
			return next, nil
		}
		x = next
	}
	return 0, fmt.Errorf("%w: mobility radius of volume %g m³ after %d iterations",
		ErrNotConverged, v, maxMobilityIterations)
}
