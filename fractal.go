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

// Default fractal parameters. With these values particles are spheres.
const (
	DefaultFracDim       = 3.0
	DefaultVolFillFactor = 1.0
	DefaultPrimeRadius   = 1e-8 // [m]
)

// sphereVolScale returns r³ for a sphere of volume v.
func sphereVolScale(v float64) float64 {
	return 3 * v / (4 * math.Pi)
}

// SphereVol2Rad returns the radius [m] of a sphere with volume v [m³].
func SphereVol2Rad(v float64) float64 {
	return math.Pow(sphereVolScale(v), 1.0/3)
}

// SphereRad2Vol returns the volume [m³] of a sphere with radius r [m].
func SphereRad2Vol(r float64) float64 {
	return 4 * math.Pi / 3 * r * r * r
}

// Fractal holds the parameters of the fractal aggregate particle model.
// Particles are clusters of monomers with radius PrimeRadius, and their
// geometric radius grows with volume with exponent 1/Dim.
type Fractal struct {
	// Dim is the mass-based fractal dimension. 3 means spherical particles.
	Dim float64

	// VolFillFactor is the volume filling factor [1].
	VolFillFactor float64

	// PrimeRadius is the radius of the monomers [m].
	PrimeRadius float64
}

// DefaultFractal returns the parameters for spherical particles.
func DefaultFractal() Fractal {
	return Fractal{
		Dim:           DefaultFracDim,
		VolFillFactor: DefaultVolFillFactor,
		PrimeRadius:   DefaultPrimeRadius,
	}
}

// Validate returns an error if any of the parameters is not a finite,
// positive number.
func (f Fractal) Validate() error {
	if err := checkPositive("fractal dimension", f.Dim); err != nil {
		return err
	}
	if err := checkPositive("volume filling factor", f.VolFillFactor); err != nil {
		return err
	}
	return checkPositive("prime radius", f.PrimeRadius)
}

func checkPositive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s=%g but should be >0", ErrInvalidParameter, name, v)
	}
	return nil
}

// IsSpherical returns whether the parameters describe spherical particles.
func (f Fractal) IsSpherical() bool {
	return f.Dim == 3 && f.VolFillFactor == 1
}

// Vol2Num returns the number of monomers in a particle of volume v [m³].
func (f Fractal) Vol2Num(v float64) float64 {
	return v / SphereRad2Vol(f.PrimeRadius)
}

// Vol2Rad returns the geometric radius [m] of a particle with volume v [m³]:
//
//	r = R₀ (v / (f ⁴⁄₃πR₀³))^(1/D) = (3v / (4πf))^(1/D) R₀^(1-3/D)
//
// where R₀ is the prime radius, f is the volume filling factor and D is the
// fractal dimension. The second form is used so that for D = 3 and f = 1 the
// result is exactly SphereVol2Rad(v).
func (f Fractal) Vol2Rad(v float64) float64 {
	return math.Pow(sphereVolScale(v)/f.VolFillFactor, 1/f.Dim) *
		math.Pow(f.PrimeRadius, 1-3/f.Dim)
}

// Rad2Vol returns the volume [m³] of a particle with geometric radius r [m].
// It is the inverse of Vol2Rad.
func (f Fractal) Rad2Vol(r float64) float64 {
	return f.VolFillFactor * 4 * math.Pi / 3 *
		math.Pow(r, f.Dim) * math.Pow(f.PrimeRadius, 3-f.Dim)
}

// Vol2Diam returns the geometric diameter [m] of a particle with volume v [m³].
func (f Fractal) Vol2Diam(v float64) float64 {
	return 2 * f.Vol2Rad(v)
}

// Diam2Vol returns the volume [m³] of a particle with geometric diameter d [m].
func (f Fractal) Diam2Vol(d float64) float64 {
	return f.Rad2Vol(d / 2)
}
