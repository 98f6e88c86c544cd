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

	"github.com/gonum/floats"
)

// Properties of liquid water.
const (
	WaterMolarMass = 18e-3 // [kg/mol]
	WaterDensity   = 1e3   // [kg/m³]
)

// Particle is a single aerosol particle. Element i of its volume vector is
// the volume [m³] of species i of the SpeciesTable it refers to. Species
// beyond the end of the volume vector have zero volume.
type Particle struct {
	table   *SpeciesTable
	volumes []float64
}

// NewParticle creates a particle made of the given species volumes [m³].
// volumes is copied and may not be longer than the number of species in t.
// An empty volume vector creates a particle with zero volume.
func NewParticle(t *SpeciesTable, volumes []float64) (*Particle, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil species table", ErrInvalidParameter)
	}
	if len(volumes) > t.Len() {
		return nil, fmt.Errorf("%w: %d volumes for %d species", ErrLengthMismatch, len(volumes), t.Len())
	}
	for i, v := range volumes {
		if !(v >= 0) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: volume of species %d is %g", ErrInvalidParameter, i, v)
		}
	}
	return &Particle{
		table:   t,
		volumes: append([]float64(nil), volumes...),
	}, nil
}

// Table returns the species table the particle refers to.
func (p *Particle) Table() *SpeciesTable { return p.table }

// Len returns the length of the volume vector.
func (p *Particle) Len() int { return len(p.volumes) }

// Volumes returns a copy of the species volumes [m³].
func (p *Particle) Volumes() []float64 {
	return append([]float64(nil), p.volumes...)
}

// Volume returns the total volume of the particle [m³].
func (p *Particle) Volume() float64 {
	return floats.Sum(p.volumes)
}

// SpeciesVolume returns the volume [m³] of species i in the particle.
func (p *Particle) SpeciesVolume(i int) (float64, error) {
	if i < 0 || i >= len(p.volumes) {
		return 0, fmt.Errorf("%w: volume %d of %d", ErrIndexOutOfRange, i, len(p.volumes))
	}
	return p.volumes[i], nil
}

// SpeciesVolumeByName returns the volume [m³] of the named species.
func (p *Particle) SpeciesVolumeByName(name string) (float64, error) {
	i, err := p.table.SpecByName(name)
	if err != nil {
		return 0, err
	}
	if i >= len(p.volumes) {
		return 0, nil
	}
	return p.volumes[i], nil
}

// DryVolume returns the volume [m³] of the particle excluding its
// water-like species, i.e. the species with an ion count of zero.
func (p *Particle) DryVolume() float64 {
	var v float64
	for i, vi := range p.volumes {
		if p.table.IsDry(i) {
			v += vi
		}
	}
	return v
}

// Mass returns the total mass of the particle [kg].
func (p *Particle) Mass() float64 {
	return floats.Dot(p.volumes, p.table.Densities()[:len(p.volumes)])
}

// SpeciesMass returns the mass [kg] of species i in the particle.
func (p *Particle) SpeciesMass(i int) (float64, error) {
	v, err := p.SpeciesVolume(i)
	if err != nil {
		return 0, err
	}
	return v * p.table.species[i].Density, nil
}

// SpeciesMassByName returns the mass [kg] of the named species.
func (p *Particle) SpeciesMassByName(name string) (float64, error) {
	i, err := p.table.SpecByName(name)
	if err != nil {
		return 0, err
	}
	if i >= len(p.volumes) {
		return 0, nil
	}
	return p.volumes[i] * p.table.species[i].Density, nil
}

// SpeciesMasses returns the mass [kg] of each species in the particle.
func (p *Particle) SpeciesMasses() []float64 {
	o := make([]float64, len(p.volumes))
	for i, v := range p.volumes {
		o[i] = v * p.table.species[i].Density
	}
	return o
}

// Moles returns the total amount of substance in the particle [mol].
func (p *Particle) Moles() float64 {
	var n float64
	for i, v := range p.volumes {
		s := p.table.species[i]
		n += v * s.Density / s.MolarMass
	}
	return n
}

// Density returns the average density of the particle [kg/m³], or zero
// if the particle has no volume.
func (p *Particle) Density() float64 {
	v := p.Volume()
	if v == 0 {
		return 0
	}
	return p.Mass() / v
}

// SoluteVolume returns the volume [m³] of the particle excluding water.
// It differs from DryVolume for solute species that don't dissociate
// into ions.
func (p *Particle) SoluteVolume() float64 {
	var v float64
	for i, vi := range p.volumes {
		if p.table.IsSolute(i) {
			v += vi
		}
	}
	return v
}

// SoluteDiameter returns the geometric diameter [m] of the solute part
// of the particle.
func (p *Particle) SoluteDiameter() float64 {
	return p.table.Vol2Diam(p.SoluteVolume())
}

// SoluteKappa returns the volume-weighted average hygroscopicity parameter
// of the solute species in the particle, or zero if it has no solute.
// For species that dissociate into ions κ is derived from the number of
// ions as (M_w / ρ_w) (ρ / M) n_ions; the others use their Kappa.
func (p *Particle) SoluteKappa() float64 {
	const cw = WaterMolarMass / WaterDensity
	var volKappa, vol float64
	for i, v := range p.volumes {
		if !p.table.IsSolute(i) {
			continue
		}
		s := p.table.species[i]
		kappa := s.Kappa
		if s.IonCount > 0 {
			kappa = cw * s.Density / s.MolarMass * s.IonCount
		}
		volKappa += v * kappa
		vol += v
	}
	if vol == 0 {
		return 0
	}
	return volKappa / vol
}

// Radius returns the geometric radius of the particle [m].
func (p *Particle) Radius() float64 {
	return p.table.Vol2Rad(p.Volume())
}

// DryRadius returns the geometric radius of the dry particle [m].
func (p *Particle) DryRadius() float64 {
	return p.table.Vol2Rad(p.DryVolume())
}

// Diameter returns the geometric diameter of the particle [m].
func (p *Particle) Diameter() float64 {
	return 2 * p.Radius()
}

// DryDiameter returns the geometric diameter of the dry particle [m].
func (p *Particle) DryDiameter() float64 {
	return 2 * p.DryRadius()
}

// MobilityDiameter returns the mobility equivalent diameter [m] of the
// particle at temperature T [K] and pressure [Pa].
func (p *Particle) MobilityDiameter(T, pressure float64) (float64, error) {
	r, err := p.table.fractal.Vol2MobilityRad(p.Volume(), T, pressure)
	if err != nil {
		return 0, err
	}
	return 2 * r, nil
}

// Coagulate returns a new particle made of the combined species volumes of
// p and q, which must refer to the same species table. Neither p nor q is
// changed.
func (p *Particle) Coagulate(q *Particle) (*Particle, error) {
	if q == nil || p.table != q.table {
		return nil, ErrTableMismatch
	}
	n := len(p.volumes)
	if len(q.volumes) > n {
		n = len(q.volumes)
	}
	volumes := make([]float64, n)
	copy(volumes, p.volumes)
	floats.Add(volumes[:len(q.volumes)], q.volumes)
	return &Particle{table: p.table, volumes: volumes}, nil
}
