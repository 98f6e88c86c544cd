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

package hash

import (
	"testing"

	"github.com/spatialmodel/aeropart"
)

func table(t *testing.T, species ...aeropart.Species) *aeropart.SpeciesTable {
	tbl, err := aeropart.NewSpeciesTable(species...)
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func TestTable(t *testing.T) {
	h2o := aeropart.Species{Name: "H2O", Constants: aeropart.Constants{Density: 1000, MolarMass: 18e-3}}
	cl := aeropart.Species{Name: "Cl", Constants: aeropart.Constants{Density: 2200, IonCount: 1, MolarMass: 35.5e-3}}

	a, b := table(t, h2o, cl), table(t, h2o, cl)
	if Table(a) != Table(b) {
		t.Errorf("equal tables have different keys: %s, %s", Table(a), Table(b))
	}
	if Table(a) == Table(table(t, cl, h2o)) {
		t.Error("species order should change the key")
	}
	if err := b.SetFracDim(2.5); err != nil {
		t.Fatal(err)
	}
	if Table(a) == Table(b) {
		t.Error("fractal dimension should change the key")
	}
	if k := Table(table(t)); len(k) != 32 {
		t.Errorf("empty table key %q should have 32 hex digits", k)
	}
}

func TestKeyFallback(t *testing.T) {
	// gob can't encode channels.
	type unencodable struct{ C chan int }
	if key(unencodable{}) != key(unencodable{}) {
		t.Error("fallback keys should be deterministic")
	}
}
