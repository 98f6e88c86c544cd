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

import "fmt"

// property is a scalar particle quantity that can be looked up by name.
type property struct {
	f     func(*Particle) float64
	units string
}

var properties = map[string]property{
	"Volume":         {f: (*Particle).Volume, units: "m^3"},
	"DryVolume":      {f: (*Particle).DryVolume, units: "m^3"},
	"Mass":           {f: (*Particle).Mass, units: "kg"},
	"Moles":          {f: (*Particle).Moles, units: "mol"},
	"Density":        {f: (*Particle).Density, units: "kg/m^3"},
	"SoluteVolume":   {f: (*Particle).SoluteVolume, units: "m^3"},
	"SoluteDiameter": {f: (*Particle).SoluteDiameter, units: "m"},
	"SoluteKappa":    {f: (*Particle).SoluteKappa, units: "1"},
	"Radius":         {f: (*Particle).Radius, units: "m"},
	"DryRadius":      {f: (*Particle).DryRadius, units: "m"},
	"Diameter":       {f: (*Particle).Diameter, units: "m"},
	"DryDiameter":    {f: (*Particle).DryDiameter, units: "m"},
}

// Properties returns the names of the particle properties that can be
// used with Value and Units.
func Properties() []string {
	return []string{
		"Volume", "DryVolume", "SoluteVolume", "Mass", "Moles", "Density",
		"SoluteKappa", "Radius", "DryRadius", "Diameter", "DryDiameter",
		"SoluteDiameter",
	}
}

// Value returns the value of the named property of the particle. It returns
// an error if given an invalid property name.
func (p *Particle) Value(name string) (float64, error) {
	prop, ok := properties[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidProperty, name)
	}
	return prop.f(p), nil
}

// Units returns the SI units of the named property, or an
// error if the property name is invalid.
func Units(name string) (string, error) {
	prop, ok := properties[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidProperty, name)
	}
	return prop.units, nil
}
