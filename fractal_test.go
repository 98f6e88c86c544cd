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
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestSphereVol2Rad(t *testing.T) {
	var tests = []struct {
		in, out float64
	}{
		{in: 0, out: 0},
		{in: 4 * math.Pi / 3, out: 1},
		{in: 4 * math.Pi / 3 * 8, out: 2},
		{in: 4 * math.Pi / 3 * 1e-24, out: 1e-8},
	}
	for _, test := range tests {
		t.Run(fmt.Sprint(test.in), func(t *testing.T) {
			have := SphereVol2Rad(test.in)
			if !floats.EqualWithinAbsOrRel(have, test.out, testTolerance, testTolerance) {
				t.Errorf("%g = %g, want %g", test.in, have, test.out)
			}
			back := SphereRad2Vol(have)
			if !floats.EqualWithinAbsOrRel(back, test.in, testTolerance, testTolerance) {
				t.Errorf("round trip %g = %g", test.in, back)
			}
		})
	}
}

// At D = 3 and f = 1 the fractal radius must be exactly the radius of
// a sphere, whatever the prime radius.
func TestFractalSphericalLimit(t *testing.T) {
	for _, r0 := range []float64{1e-9, 1e-8, 3.7e-8, 1, 42} {
		f := Fractal{Dim: 3, VolFillFactor: 1, PrimeRadius: r0}
		if !f.IsSpherical() {
			t.Fatalf("%+v is not spherical", f)
		}
		for _, v := range []float64{0, 1, 5, 6, 1e-21, 123.456, 7e-18} {
			if have, want := f.Vol2Rad(v), SphereVol2Rad(v); have != want {
				t.Errorf("R₀=%g, v=%g: have %g, want %g", r0, v, have, want)
			}
		}
	}
}

func TestFractalRoundTrip(t *testing.T) {
	for _, f := range []Fractal{
		DefaultFractal(),
		{Dim: 2.5, VolFillFactor: 0.43, PrimeRadius: 1e-8},
		{Dim: 1.8, VolFillFactor: 1.43, PrimeRadius: 2e-8},
	} {
		for _, v := range []float64{1e-24, 1e-21, 1e-18} {
			t.Run(fmt.Sprintf("%+v/%g", f, v), func(t *testing.T) {
				r := f.Vol2Rad(v)
				if have := f.Rad2Vol(r); !floats.EqualWithinRel(have, v, 1e-10) {
					t.Errorf("radius: have %g, want %g", have, v)
				}
				d := f.Vol2Diam(v)
				if d != 2*r {
					t.Errorf("diameter %g != 2 * %g", d, r)
				}
				if have := f.Diam2Vol(d); !floats.EqualWithinRel(have, v, 1e-10) {
					t.Errorf("diameter: have %g, want %g", have, v)
				}
			})
		}
	}
}

// A particle made of exactly one fully packed monomer has the monomer radius.
func TestFractalMonomer(t *testing.T) {
	for _, d := range []float64{1.5, 2, 2.5, 3} {
		f := Fractal{Dim: d, VolFillFactor: 1, PrimeRadius: 1e-8}
		v := SphereRad2Vol(f.PrimeRadius)
		if have := f.Vol2Rad(v); !floats.EqualWithinRel(have, f.PrimeRadius, 1e-12) {
			t.Errorf("D=%g: have %g, want %g", d, have, f.PrimeRadius)
		}
		if have := f.Vol2Num(v); !floats.EqualWithinRel(have, 1, 1e-12) {
			t.Errorf("D=%g: monomers %g, want 1", d, have)
		}
	}
}

func TestFractalValidate(t *testing.T) {
	var tests = []struct {
		name string
		f    Fractal
		ok   bool
	}{
		{name: "default", f: DefaultFractal(), ok: true},
		{name: "aggregate", f: Fractal{Dim: 1.8, VolFillFactor: 1.43, PrimeRadius: 1e-8}, ok: true},
		{name: "zero dim", f: Fractal{Dim: 0, VolFillFactor: 1, PrimeRadius: 1e-8}},
		{name: "negative fill", f: Fractal{Dim: 3, VolFillFactor: -1, PrimeRadius: 1e-8}},
		{name: "zero radius", f: Fractal{Dim: 3, VolFillFactor: 1, PrimeRadius: 0}},
		{name: "nan radius", f: Fractal{Dim: 3, VolFillFactor: 1, PrimeRadius: math.NaN()}},
		{name: "inf dim", f: Fractal{Dim: math.Inf(1), VolFillFactor: 1, PrimeRadius: 1e-8}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.f.Validate()
			if test.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !test.ok && !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("have %v, want %v", err, ErrInvalidParameter)
			}
		})
	}
}
