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

package aeroputil

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ctessum/unit"
	"github.com/spatialmodel/aeropart"
	"github.com/spatialmodel/aeropart/science/kohler"
)

// moleDim is the amount of substance dimension. "mol" is reserved by
// package unit.
var moleDim = unit.NewDimension("mole")

// dimensions gives the unit.Dimensions for each of the units strings
// returned by aeropart.Units, and for molar mass.
var dimensions = map[string]unit.Dimensions{
	"m^3": unit.Meter3,
	"m":   unit.Meter,
	"kg":  unit.Kilogram,
	"kg/m^3": unit.Dimensions{
		unit.MassDim:   1,
		unit.LengthDim: -3,
	},
	"mol": unit.Dimensions{moleDim: 1},
	"kg/mol": unit.Dimensions{
		unit.MassDim: 1,
		moleDim:      -1,
	},
	"1": unit.Dimless,
}

// Quantity is a named particle property.
type Quantity struct {
	Name  string
	Value *unit.Unit
}

// Report calculates the named properties of p. If T > 0, the mobility
// diameter at temperature T [K] and the given pressure [Pa] is included as
// MobilityDiameter, and the critical relative humidity at temperature T is
// included as CritRelHumid when the particle contains solute.
func Report(p *aeropart.Particle, properties []string, T, pressure float64) ([]Quantity, error) {
	o := make([]Quantity, 0, len(properties)+1)
	for _, name := range properties {
		v, err := p.Value(name)
		if err != nil {
			return nil, err
		}
		units, err := aeropart.Units(name)
		if err != nil {
			return nil, err
		}
		dims, ok := dimensions[units]
		if !ok {
			return nil, fmt.Errorf("aeroputil: no dimensions for units %q of %s", units, name)
		}
		o = append(o, Quantity{Name: name, Value: unit.New(v, dims)})
	}
	if T > 0 {
		d, err := p.MobilityDiameter(T, pressure)
		if err != nil {
			return nil, err
		}
		o = append(o, Quantity{Name: "MobilityDiameter", Value: unit.New(d, unit.Meter)})

		rh, err := kohler.CritRelHumid(p, T)
		switch {
		case err == nil:
			o = append(o, Quantity{Name: "CritRelHumid", Value: unit.New(rh, unit.Dimless)})
		case errors.Is(err, kohler.ErrNoSolute):
			Log.WithField("temperature", T).Debug("particle has no solute; skipping critical relative humidity")
		default:
			return nil, err
		}
	}
	return o, nil
}

// WriteReport writes quantities as an aligned table to w.
func WriteReport(w io.Writer, q []Quantity) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, qq := range q {
		if _, err := fmt.Fprintf(tw, "%s\t%.6g\n", qq.Name, qq.Value); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteSpecies writes the species of t as an aligned table to w.
func WriteSpecies(w io.Writer, t *aeropart.SpeciesTable) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "Index\tName\tDensity\tIonCount\tMolarMass\tKappa\tDry\tSolute"); err != nil {
		return err
	}
	for i := 0; i < t.Len(); i++ {
		s, err := t.Species(i)
		if err != nil {
			return err
		}
		density := unit.New(s.Density, dimensions["kg/m^3"])
		molarMass := unit.New(s.MolarMass, dimensions["kg/mol"])
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%.6g\t%g\t%.6g\t%g\t%v\t%v\n", i, s.Name,
			density, s.IonCount, molarMass, s.Kappa, t.IsDry(i), t.IsSolute(i)); err != nil {
			return err
		}
	}
	return tw.Flush()
}
