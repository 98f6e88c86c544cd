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

// Package kohler calculates the hygroscopic growth and activation of
// aerosol particles using the single-parameter κ-Köhler theory described in:
//
// Petters, M. D. and Kreidenweis, S. M. (2007), A single parameter
// representation of hygroscopic growth and cloud condensation nucleus
// activity, Atmos. Chem. Phys., 7, 1961–1971, doi:10.5194/acp-7-1961-2007.
package kohler

import (
	"errors"
	"fmt"
	"math"

	"github.com/spatialmodel/aeropart"
)

// waterSurfaceTension is the surface tension of water [J/m²].
const waterSurfaceTension = 0.073

var (
	// ErrNoSolute is returned for particles without hygroscopic solute.
	ErrNoSolute = errors.New("kohler: particle has no solute")

	// ErrNotConverged is returned when the critical diameter iteration
	// does not converge.
	ErrNotConverged = errors.New("kohler: critical diameter did not converge")
)

// maxIterations is the Newton iteration limit for CritDiameter.
const maxIterations = 100

// A returns the Kelvin coefficient 4σM_w / (RTρ_w) [m] at
// temperature T [K].
func A(T float64) (float64, error) {
	if !(T > 0) || math.IsInf(T, 0) {
		return 0, fmt.Errorf("kohler: temperature=%g K but should be >0: %w", T, aeropart.ErrInvalidParameter)
	}
	return 4 * waterSurfaceTension * aeropart.WaterMolarMass /
		(aeropart.GasConstant * T * aeropart.WaterDensity), nil
}

// solute returns the Kelvin coefficient, solute diameter and solute κ of p.
func solute(p *aeropart.Particle, T float64) (a, soluteDiam, kappa float64, err error) {
	a, err = A(T)
	if err != nil {
		return 0, 0, 0, err
	}
	soluteDiam = p.SoluteDiameter()
	kappa = p.SoluteKappa()
	if soluteDiam == 0 || kappa == 0 {
		return 0, 0, 0, fmt.Errorf("%w (solute diameter=%g m, κ=%g)", ErrNoSolute, soluteDiam, kappa)
	}
	return a, soluteDiam, kappa, nil
}

// ApproxCritRelHumid returns an approximation of the critical relative
// humidity [1] of particle p at temperature T [K], valid for κ > 0.2:
//
//	S_c = 1 + sqrt(4A³ / (27 κ D_d³))
//
// where D_d is the diameter of the solute part of the particle.
func ApproxCritRelHumid(p *aeropart.Particle, T float64) (float64, error) {
	a, d, kappa, err := solute(p, T)
	if err != nil {
		return 0, err
	}
	c := math.Sqrt(4 * a * a * a / 27)
	return c/math.Sqrt(kappa*d*d*d) + 1, nil
}

// EquilibriumRelHumid returns the relative humidity [1] at which particle p
// is in equilibrium with water vapor at temperature T [K] when its wet
// diameter is wetDiam [m]. wetDiam must be larger than the solute diameter.
func EquilibriumRelHumid(p *aeropart.Particle, T, wetDiam float64) (float64, error) {
	a, d, kappa, err := solute(p, T)
	if err != nil {
		return 0, err
	}
	if !(wetDiam > d) {
		return 0, fmt.Errorf("kohler: wet diameter %g m is not larger than solute diameter %g m: %w",
			wetDiam, d, aeropart.ErrInvalidParameter)
	}
	return kohler(wetDiam, d, kappa, a), nil
}

func kohler(D, d, kappa, a float64) float64 {
	D3, d3 := D*D*D, d*d*d
	return (D3 - d3) / (D3 - d3*(1-kappa)) * math.Exp(a/D)
}

// CritDiameter returns the wet diameter [m] at which the Köhler curve of
// particle p at temperature T [K] has its maximum. It solves
//
//	D⁶ + c₄D⁴ + c₃D³ + c₀ = 0
//
// with c₄ = -3D_d³κ/A, c₃ = -D_d³(2-κ) and c₀ = D_d⁶(1-κ) using
// Newton's method.
func CritDiameter(p *aeropart.Particle, T float64) (float64, error) {
	a, d, kappa, err := solute(p, T)
	if err != nil {
		return 0, err
	}
	d3 := d * d * d
	c4 := -3 * d3 * kappa / a
	c3 := -d3 * (2 - kappa)
	c0 := d3 * d3 * (1 - kappa)

	D := math.Max(math.Sqrt(-4./3.*c4), math.Cbrt(-c3))
	for i := 0; i < maxIterations; i++ {
		D2 := D * D
		f := D2*D2*D2 + c4*D2*D2 + c3*D2*D + c0
		df := 6*D2*D2*D + 4*c4*D2*D + 3*c3*D2
		dD := f / df
		D -= dD
		if math.Abs(dD/D) < 1e-14 {
			return D, nil
		}
	}
	return 0, fmt.Errorf("%w after %d iterations (solute diameter=%g m, κ=%g)",
		ErrNotConverged, maxIterations, d, kappa)
}

// CritRelHumid returns the critical relative humidity [1] of particle p at
// temperature T [K], i.e. the maximum of its Köhler curve.
func CritRelHumid(p *aeropart.Particle, T float64) (float64, error) {
	D, err := CritDiameter(p, T)
	if err != nil {
		return 0, err
	}
	a, d, kappa, err := solute(p, T)
	if err != nil {
		return 0, err
	}
	return kohler(D, d, kappa, a), nil
}
