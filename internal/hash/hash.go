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

// Package hash creates keys that identify species table configurations.
package hash

import (
	"encoding/gob"
	"fmt"
	"hash/fnv"

	"github.com/davecgh/go-spew/spew"
	"github.com/spatialmodel/aeropart"
)

// tableContents holds everything that affects the properties of particles
// referencing a species table.
type tableContents struct {
	Species []aeropart.Species
	Fractal aeropart.Fractal
}

// Table returns a key for the species and fractal parameters of t.
// Tables with the same species in the same order and the same fractal
// parameters have the same key.
func Table(t *aeropart.SpeciesTable) string {
	c := tableContents{
		Species: make([]aeropart.Species, t.Len()),
		Fractal: t.Fractal(),
	}
	for i := range c.Species {
		c.Species[i], _ = t.Species(i)
	}
	return key(c)
}

func key(object interface{}) string {
	h := fnv.New128a()

	e := gob.NewEncoder(h)
	if err := e.Encode(object); err == nil {
		bKey := h.Sum([]byte{})
		return fmt.Sprintf("%x", bKey[0:h.Size()])
	}
	// Fall back to spew for values gob can't encode.
	h.Reset()
	printer := spew.ConfigState{
		Indent:                  " ",
		SortKeys:                true,
		DisableMethods:          true,
		SpewKeys:                true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
	printer.Fprintf(h, "%#v", object)
	bKey := h.Sum([]byte{})
	return fmt.Sprintf("%x", bKey[0:h.Size()])
}
