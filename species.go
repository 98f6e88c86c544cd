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

// Constants holds the material properties of an aerosol species.
type Constants struct {
	// Density is the species density [kg/m³].
	Density float64

	// IonCount is the number of ions the species dissociates into in
	// solution. Species with IonCount == 0 are treated as the water-like
	// component of a particle and are excluded from its dry volume.
	IonCount float64

	// MolarMass is the molar mass of the species [kg/mol].
	MolarMass float64

	// Kappa is the hygroscopicity parameter κ [1]. It is used for solute
	// species that do not dissociate into ions, such as organic carbon;
	// for the others κ is derived from IonCount.
	Kappa float64
}

// Species is a named aerosol chemical species.
type Species struct {
	Name string
	Constants
}

func (s Species) validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: empty species name", ErrInvalidParameter)
	}
	if err := checkPositive(s.Name+" density", s.Density); err != nil {
		return err
	}
	if err := checkPositive(s.Name+" molar mass", s.MolarMass); err != nil {
		return err
	}
	if !(s.IonCount >= 0) || math.IsInf(s.IonCount, 0) {
		return fmt.Errorf("%w: %s ion count=%g but should be >=0", ErrInvalidParameter, s.Name, s.IonCount)
	}
	if math.IsNaN(s.Kappa) || math.IsInf(s.Kappa, 0) {
		return fmt.Errorf("%w: %s kappa=%g is not finite", ErrInvalidParameter, s.Name, s.Kappa)
	}
	return nil
}

// WaterName is the name of the species that is the solvent in
// hygroscopic calculations. All other species are solute.
const WaterName = "H2O"

// SpeciesTable is an ordered set of aerosol species and the fractal
// parameters shared by all particles that refer to it. The position of a
// species in the table is the index used for the volumes of a Particle.
// The species cannot be changed after the table is created.
type SpeciesTable struct {
	species []Species
	index   map[string]int
	water   int
	fractal Fractal
}

// NewSpeciesTable creates a table holding the given species in order,
// with the default (spherical) fractal parameters. An empty table is valid.
func NewSpeciesTable(species ...Species) (*SpeciesTable, error) {
	t := &SpeciesTable{
		species: make([]Species, len(species)),
		index:   make(map[string]int, len(species)),
		water:   -1,
		fractal: DefaultFractal(),
	}
	for i, s := range species {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("creating species table: %w", err)
		}
		if j, ok := t.index[s.Name]; ok {
			return nil, fmt.Errorf("%w: %s at positions %d and %d", ErrDuplicateSpecies, s.Name, j, i)
		}
		t.index[s.Name] = i
		t.species[i] = s
		if s.Name == WaterName {
			t.water = i
		}
	}
	return t, nil
}

// Len returns the number of species in the table.
func (t *SpeciesTable) Len() int { return len(t.species) }

func (t *SpeciesTable) checkIndex(i int) error {
	if i < 0 || i >= len(t.species) {
		return fmt.Errorf("%w: species %d of %d", ErrIndexOutOfRange, i, len(t.species))
	}
	return nil
}

// Species returns the species at index i.
func (t *SpeciesTable) Species(i int) (Species, error) {
	if err := t.checkIndex(i); err != nil {
		return Species{}, err
	}
	return t.species[i], nil
}

// ConstantsOf returns the material constants of the species at index i.
func (t *SpeciesTable) ConstantsOf(i int) (Constants, error) {
	if err := t.checkIndex(i); err != nil {
		return Constants{}, err
	}
	return t.species[i].Constants, nil
}

// SpecByName returns the index of the species with the given name.
func (t *SpeciesTable) SpecByName(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrSpeciesNotFound, name)
	}
	return i, nil
}

// IsDry returns whether the species at index i counts towards the dry
// volume of a particle, which is the case when it dissociates into ions.
// It returns false for out-of-range indices.
func (t *SpeciesTable) IsDry(i int) bool {
	return i >= 0 && i < len(t.species) && t.species[i].IonCount != 0
}

// Water returns the index of the WaterName species, or -1 if the table
// has none.
func (t *SpeciesTable) Water() int { return t.water }

// IsSolute returns whether the species at index i is solute, i.e. any
// species other than water. It returns false for out-of-range indices.
// Unlike IsDry, it includes species that don't dissociate into ions.
func (t *SpeciesTable) IsSolute(i int) bool {
	return i >= 0 && i < len(t.species) && i != t.water
}

// Names returns the species names in table order.
func (t *SpeciesTable) Names() []string {
	o := make([]string, len(t.species))
	for i, s := range t.species {
		o[i] = s.Name
	}
	return o
}

func (t *SpeciesTable) column(f func(Constants) float64) []float64 {
	o := make([]float64, len(t.species))
	for i, s := range t.species {
		o[i] = f(s.Constants)
	}
	return o
}

// Densities returns the species densities [kg/m³] in table order.
func (t *SpeciesTable) Densities() []float64 {
	return t.column(func(c Constants) float64 { return c.Density })
}

// IonCounts returns the number of ions of each species in table order.
func (t *SpeciesTable) IonCounts() []float64 {
	return t.column(func(c Constants) float64 { return c.IonCount })
}

// MolarMasses returns the species molar masses [kg/mol] in table order.
func (t *SpeciesTable) MolarMasses() []float64 {
	return t.column(func(c Constants) float64 { return c.MolarMass })
}

// Kappas returns the species hygroscopicity parameters in table order.
func (t *SpeciesTable) Kappas() []float64 {
	return t.column(func(c Constants) float64 { return c.Kappa })
}

// Fractal returns the fractal parameters of the table.
func (t *SpeciesTable) Fractal() Fractal { return t.fractal }

// FracDim returns the fractal dimension.
func (t *SpeciesTable) FracDim() float64 { return t.fractal.Dim }

// VolFillFactor returns the volume filling factor.
func (t *SpeciesTable) VolFillFactor() float64 { return t.fractal.VolFillFactor }

// PrimeRadius returns the monomer radius [m].
func (t *SpeciesTable) PrimeRadius() float64 { return t.fractal.PrimeRadius }

// SetFractal replaces all fractal parameters at once. The table is left
// unchanged if f is invalid.
func (t *SpeciesTable) SetFractal(f Fractal) error {
	if err := f.Validate(); err != nil {
		return err
	}
	t.fractal = f
	return nil
}

// SetFracDim sets the fractal dimension.
func (t *SpeciesTable) SetFracDim(d float64) error {
	f := t.fractal
	f.Dim = d
	return t.SetFractal(f)
}

// SetVolFillFactor sets the volume filling factor.
func (t *SpeciesTable) SetVolFillFactor(v float64) error {
	f := t.fractal
	f.VolFillFactor = v
	return t.SetFractal(f)
}

// SetPrimeRadius sets the monomer radius [m].
func (t *SpeciesTable) SetPrimeRadius(r float64) error {
	f := t.fractal
	f.PrimeRadius = r
	return t.SetFractal(f)
}

// Vol2Rad converts volume [m³] to geometric radius [m] using the fractal
// parameters of the table.
func (t *SpeciesTable) Vol2Rad(v float64) float64 { return t.fractal.Vol2Rad(v) }

// Rad2Vol converts geometric radius [m] to volume [m³].
func (t *SpeciesTable) Rad2Vol(r float64) float64 { return t.fractal.Rad2Vol(r) }

// Vol2Diam converts volume [m³] to geometric diameter [m].
func (t *SpeciesTable) Vol2Diam(v float64) float64 { return t.fractal.Vol2Diam(v) }

// Diam2Vol converts geometric diameter [m] to volume [m³].
func (t *SpeciesTable) Diam2Vol(d float64) float64 { return t.fractal.Diam2Vol(d) }
