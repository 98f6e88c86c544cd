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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lnashier/viper"
	"github.com/spatialmodel/aeropart"
	"github.com/spf13/cast"
)

// speciesRecord is one species in a species file.
type speciesRecord struct {
	Name      string
	Density   float64
	IonCount  float64
	MolarMass float64
	Kappa     float64
}

// speciesFile is the layout of a TOML species file:
//
//	[[Species]]
//	Name = "H2O"
//	Density = 1000.0
//	IonCount = 0.0
//	MolarMass = 18e-3
//	Kappa = 0.0
type speciesFile struct {
	Species []speciesRecord
}

// ReadSpeciesFile reads a list of species in TOML format from r.
// Unknown keys are an error. The fractal parameters are not part of a
// species file; they are configuration variables (see SpeciesTable).
func ReadSpeciesFile(r io.Reader) ([]aeropart.Species, error) {
	var f speciesFile
	md, err := toml.DecodeReader(r, &f)
	if err != nil {
		return nil, fmt.Errorf("aeroputil: decoding species file: %v", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("aeroputil: unknown keys in species file: %v", undecoded)
	}
	o := make([]aeropart.Species, len(f.Species))
	for i, s := range f.Species {
		o[i] = aeropart.Species{
			Name: s.Name,
			Constants: aeropart.Constants{
				Density:   s.Density,
				IonCount:  s.IonCount,
				MolarMass: s.MolarMass,
				Kappa:     s.Kappa,
			},
		}
	}
	return o, nil
}

// ParseSpeciesList parses species given as a JSON list of single-entry
// objects that map a species name to its constants in the order
// [density, ion count, molar mass, kappa], for example:
//
//	[{"H2O": [1000, 0, 18e-3, 0]}, {"Cl": [2200, 1, 35.5e-3, 0]}]
//
// The order of the list is the order of the species table.
func ParseSpeciesList(s string) ([]aeropart.Species, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var list []map[string][]float64
	d := json.NewDecoder(bytes.NewBufferString(s))
	if err := d.Decode(&list); err != nil {
		return nil, fmt.Errorf("aeroputil: parsing species list: %v", err)
	}
	o := make([]aeropart.Species, 0, len(list))
	for i, entry := range list {
		if len(entry) != 1 {
			return nil, fmt.Errorf("aeroputil: species list entry %d has %d names; it should have exactly one", i, len(entry))
		}
		for name, c := range entry {
			if len(c) != 4 {
				return nil, fmt.Errorf("aeroputil: species %s has %d constants; it should have 4 (density, ion count, molar mass, kappa)", name, len(c))
			}
			o = append(o, aeropart.Species{
				Name:      name,
				Constants: aeropart.Constants{Density: c[0], IonCount: c[1], MolarMass: c[2], Kappa: c[3]},
			})
		}
	}
	return o, nil
}

// SpeciesTable creates a species table from a viper configuration. Species
// are read from the file in the SpeciesFile variable if it is set, and from
// the JSON list in the Species variable otherwise. The fractal parameters
// come from the FracDim, VolFillFactor and PrimeRadius variables.
func SpeciesTable(cfg *viper.Viper) (*aeropart.SpeciesTable, error) {
	var (
		species []aeropart.Species
		err     error
	)
	if path := os.ExpandEnv(cfg.GetString("SpeciesFile")); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("aeroputil: opening species file: %w", err)
		}
		defer f.Close()
		species, err = ReadSpeciesFile(f)
		if err != nil {
			return nil, err
		}
	} else {
		species, err = ParseSpeciesList(cfg.GetString("Species"))
		if err != nil {
			return nil, err
		}
	}

	t, err := aeropart.NewSpeciesTable(species...)
	if err != nil {
		return nil, err
	}
	fractal, err := fractalConfig(cfg)
	if err != nil {
		return nil, err
	}
	if err := t.SetFractal(fractal); err != nil {
		return nil, fmt.Errorf("aeroputil: parsing fractal configuration: %w", err)
	}
	return t, nil
}

// fractalConfig reads the fractal parameters from a viper configuration.
func fractalConfig(cfg *viper.Viper) (aeropart.Fractal, error) {
	var f aeropart.Fractal
	vars := []*float64{&f.Dim, &f.VolFillFactor, &f.PrimeRadius}
	varNames := []string{"FracDim", "VolFillFactor", "PrimeRadius"}
	for i, name := range varNames {
		v, err := cast.ToFloat64E(cfg.Get(name))
		if err != nil {
			return f, fmt.Errorf("aeroputil: parsing %s: %v", name, err)
		}
		*vars[i] = v
	}
	return f, nil
}

// toFloat64SliceE converts i to a []float64, accounting for the fact that
// it may be a string slice if it was set from a command line argument or a
// comma-separated string if it was set from an environment variable.
func toFloat64SliceE(i interface{}) ([]float64, error) {
	var items []interface{}
	switch v := i.(type) {
	case nil:
		return nil, nil
	case []float64:
		return v, nil
	case []interface{}:
		items = v
	case []string:
		for _, s := range v {
			items = append(items, s)
		}
	case string:
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				items = append(items, s)
			}
		}
	default:
		return nil, fmt.Errorf("invalid type %T for list of numbers", i)
	}
	o := make([]float64, len(items))
	for j, item := range items {
		f, err := cast.ToFloat64E(item)
		if err != nil {
			return nil, err
		}
		o[j] = f
	}
	return o, nil
}

// Particle creates a particle from the volumes in the Volumes variable of
// a viper configuration.
func Particle(cfg *viper.Viper, t *aeropart.SpeciesTable) (*aeropart.Particle, error) {
	volumes, err := toFloat64SliceE(cfg.Get("Volumes"))
	if err != nil {
		return nil, fmt.Errorf("aeroputil: parsing Volumes: %v", err)
	}
	return aeropart.NewParticle(t, volumes)
}
