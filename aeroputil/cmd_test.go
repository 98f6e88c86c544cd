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
	"errors"
	"strings"
	"testing"

	"github.com/ctessum/unit"
	"github.com/spatialmodel/aeropart"
)

// fields splits command output into lines of whitespace-separated fields.
func fields(s string) [][]string {
	var o [][]string
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		o = append(o, strings.Fields(line))
	}
	return o
}

func TestVersionCmd(t *testing.T) {
	var b bytes.Buffer
	Root.SetOutput(&b)
	Root.SetArgs([]string{"version"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	if have, want := b.String(), "aeropart v"+aeropart.Version+"\n"; have != want {
		t.Errorf("have %q, want %q", have, want)
	}
}

func TestSpeciesCmd(t *testing.T) {
	var b bytes.Buffer
	Root.SetOutput(&b)
	Cfg.Set("SpeciesFile", "testdata/saltwater.toml")
	defer Cfg.Set("SpeciesFile", "")
	Root.SetArgs([]string{"species"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	lines := fields(b.String())
	if len(lines) != 4 {
		t.Fatalf("have %d lines, want 4:\n%s", len(lines), b.String())
	}
	for i, name := range []string{"H2O", "Cl", "Na"} {
		if lines[i+1][1] != name {
			t.Errorf("line %d: have %s, want %s", i+1, lines[i+1][1], name)
		}
	}
	// Index Name Density kg m^-3 IonCount MolarMass kg mole^-1 Kappa Dry Solute
	want := []string{"0", "H2O", "1000", "kg", "m^-3", "0", "0.018", "kg", "mole^-1", "0", "false", "false"}
	if strings.Join(lines[1], " ") != strings.Join(want, " ") {
		t.Errorf("H2O: have %v, want %v", lines[1], want)
	}
	if have := lines[2][len(lines[2])-2:]; have[0] != "true" || have[1] != "true" {
		t.Errorf("Cl dry and solute: %v", have)
	}
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestWriteSpeciesError(t *testing.T) {
	tbl, err := aeropart.NewSpeciesTable(saltWaterSpecies...)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteSpecies(errWriter{}, tbl); err == nil {
		t.Error("expected a write error")
	}
}

func TestParticleCmd(t *testing.T) {
	var b bytes.Buffer
	Root.SetOutput(&b)
	Cfg.Set("Volumes", []string{"1", "2", "3"})
	Cfg.Set("Properties", []string{"Volume", "DryVolume", "Mass", "Density"})
	Root.SetArgs([]string{"particle"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	want := [][]string{
		{"Volume", "6", "m^3"},
		{"DryVolume", "5", "m^3"},
		{"Mass", "6060", "kg"},
		{"Density", "1010", "kg", "m^-3"},
	}
	have := fields(b.String())
	if len(have) != len(want) {
		t.Fatalf("have %d lines, want %d:\n%s", len(have), len(want), b.String())
	}
	for i := range want {
		if strings.Join(have[i], " ") != strings.Join(want[i], " ") {
			t.Errorf("line %d: have %v, want %v", i, have[i], want[i])
		}
	}

	Cfg.Set("Properties", []string{"Charge"})
	if err := Root.Execute(); !errors.Is(err, aeropart.ErrInvalidProperty) {
		t.Errorf("have %v, want %v", err, aeropart.ErrInvalidProperty)
	}
	Cfg.Set("Properties", aeropart.Properties())
	Cfg.Set("Volumes", []string{})
}

func TestReport(t *testing.T) {
	tbl, err := aeropart.NewSpeciesTable(saltWaterSpecies...)
	if err != nil {
		t.Fatal(err)
	}
	p, err := aeropart.NewParticle(tbl, []float64{1e-22, 2e-22, 3e-22})
	if err != nil {
		t.Fatal(err)
	}
	q, err := Report(p, aeropart.Properties(), 298, 101325)
	if err != nil {
		t.Fatal(err)
	}
	if len(q) != len(aeropart.Properties())+2 {
		t.Fatalf("have %d quantities, want %d", len(q), len(aeropart.Properties())+2)
	}
	dims := map[string]unit.Dimensions{
		"Volume":           unit.Meter3,
		"Mass":             unit.Kilogram,
		"Moles":            unit.Dimensions{moleDim: 1},
		"Radius":           unit.Meter,
		"SoluteKappa":      unit.Dimless,
		"MobilityDiameter": unit.Meter,
		"CritRelHumid":     unit.Dimless,
	}
	for _, qq := range q {
		d, ok := dims[qq.Name]
		if !ok {
			continue
		}
		if err := qq.Value.Check(d); err != nil {
			t.Errorf("%s: %v", qq.Name, err)
		}
	}
	if last := q[len(q)-1]; last.Name != "CritRelHumid" || !(last.Value.Value() > 1) {
		t.Errorf("critical RH: %s = %v", last.Name, last.Value.Value())
	}

	water, err := aeropart.NewParticle(tbl, []float64{1e-21})
	if err != nil {
		t.Fatal(err)
	}
	q, err = Report(water, []string{"Volume"}, 298, 101325)
	if err != nil {
		t.Fatal(err)
	}
	if len(q) != 2 || q[1].Name != "MobilityDiameter" {
		t.Errorf("water particle: have %d quantities, want Volume and MobilityDiameter", len(q))
	}
	if _, err := Report(water, nil, 298, 0); !errors.Is(err, aeropart.ErrInvalidParameter) {
		t.Errorf("zero pressure: have %v, want %v", err, aeropart.ErrInvalidParameter)
	}
	q, err = Report(water, []string{"Volume"}, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	var b bytes.Buffer
	if err := WriteReport(&b, q); err != nil {
		t.Fatal(err)
	}
	if have := fields(b.String()); len(have) != 1 || have[0][0] != "Volume" || have[0][2] != "m^3" {
		t.Errorf("report: %q", b.String())
	}
}
