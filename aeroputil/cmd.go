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

// Package aeroputil contains the configuration, logging and command-line
// interface for package aeropart.
package aeroputil

import (
	"fmt"
	"os"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/aeropart"
	"github.com/spatialmodel/aeropart/internal/hash"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

// Log is the logger used by the commands.
var Log *logrus.Logger

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	Log = logrus.New()
	Log.Out = os.Stderr
	Log.SetLevel(logrus.InfoLevel)
	Log.Formatter = &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	}

	// Options are the configuration options available to aeropart.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "verbose",
			usage: `
              verbose turns on debug logging.`,
			shorthand:  "v",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "SpeciesFile",
			usage: `
              SpeciesFile is the path to a TOML file listing the aerosol
              species in [[Species]] tables with the fields Name, Density [kg/m³],
              IonCount, MolarMass [kg/mol] and Kappa. The path can include
              environment variables. If it is set, Species is ignored.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{speciesCmd.Flags(), particleCmd.Flags()},
		},
		{
			name: "Species",
			usage: `
              Species is a JSON list of the aerosol species, where each
              species is an object mapping its name to its constants
              [density (kg/m³), ion count, molar mass (kg/mol), kappa].`,
			defaultVal: `[{"H2O": [1000, 0, 18e-3, 0]}, {"Cl": [2200, 1, 35.5e-3, 0]}, {"Na": [220, 1, 23e-3, 0]}]`,
			flagsets:   []*pflag.FlagSet{speciesCmd.Flags(), particleCmd.Flags()},
		},
		{
			name: "FracDim",
			usage: `
              FracDim is the fractal dimension of the particles. 3 means
              spherical particles.`,
			defaultVal: aeropart.DefaultFracDim,
			flagsets:   []*pflag.FlagSet{speciesCmd.Flags(), particleCmd.Flags()},
		},
		{
			name: "VolFillFactor",
			usage: `
              VolFillFactor is the volume filling factor of fractal particles.`,
			defaultVal: aeropart.DefaultVolFillFactor,
			flagsets:   []*pflag.FlagSet{speciesCmd.Flags(), particleCmd.Flags()},
		},
		{
			name: "PrimeRadius",
			usage: `
              PrimeRadius is the radius [m] of the monomers that fractal
              particles are made of.`,
			defaultVal: aeropart.DefaultPrimeRadius,
			flagsets:   []*pflag.FlagSet{speciesCmd.Flags(), particleCmd.Flags()},
		},
		{
			name: "Volumes",
			usage: `
              Volumes are the volumes [m³] of each species in the particle,
              in the order of the species list.`,
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{particleCmd.Flags()},
		},
		{
			name: "Properties",
			usage: `
              Properties are the names of the particle properties to calculate.`,
			defaultVal: aeropart.Properties(),
			flagsets:   []*pflag.FlagSet{particleCmd.Flags()},
		},
		{
			name: "Temperature",
			usage: `
              Temperature [K] is used to calculate the mobility diameter and
              the critical relative humidity of the particle. The calculations
              are skipped if it is not positive.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{particleCmd.Flags()},
		},
		{
			name: "Pressure",
			usage: `
              Pressure [Pa] is the air pressure used to calculate the mobility
              diameter of the particle.`,
			defaultVal: 101325.0,
			flagsets:   []*pflag.FlagSet{particleCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("AEROPART")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}

	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(speciesCmd)
	Root.AddCommand(particleCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets the logging level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("aeropart: problem reading configuration file: %v", err)
		}
	}
	if Cfg.GetBool("verbose") {
		Log.SetLevel(logrus.DebugLevel)
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "aeropart",
	Short: "Properties of particle-resolved aerosols.",
	Long: `aeropart calculates the physical properties of aerosol particles that are
mixtures of chemical species. Use the subcommands specified below to access
the functionality.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'AEROPART_var' where 'var' is the
name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of aeropart.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("aeropart v%s\n", aeropart.Version)
	},
	DisableAutoGenTag: true,
}

// speciesCmd prints the species table.
var speciesCmd = &cobra.Command{
	Use:   "species",
	Short: "Print the species table.",
	Long: `species reads the species table specified in the configuration
and prints the constants of each species.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := SpeciesTable(Cfg)
		if err != nil {
			return err
		}
		logTable(t)
		return WriteSpecies(cmd.OutOrStdout(), t)
	},
	DisableAutoGenTag: true,
}

// particleCmd calculates the properties of a particle.
var particleCmd = &cobra.Command{
	Use:   "particle",
	Short: "Calculate particle properties.",
	Long: `particle calculates the properties of a single particle made of the
species volumes specified in the Volumes configuration variable.

	Available properties:
	Volume, DryVolume: total and dry volume (m³)
	Mass: total mass (kg)
	Moles: total amount of substance (mol)
	Density: average density (kg/m³)
	SoluteVolume: volume of everything but water (m³)
	SoluteKappa: average hygroscopicity parameter of the solute species (1)
	Radius, DryRadius, Diameter, DryDiameter, SoluteDiameter: geometric size (m)
	MobilityDiameter: mobility equivalent diameter (m), if Temperature > 0
	CritRelHumid: critical relative humidity (1), if Temperature > 0`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := SpeciesTable(Cfg)
		if err != nil {
			return err
		}
		logTable(t)
		p, err := Particle(Cfg, t)
		if err != nil {
			return err
		}
		props, err := cast.ToStringSliceE(Cfg.Get("Properties"))
		if err != nil {
			return fmt.Errorf("aeropart: reading Properties: %v", err)
		}
		q, err := Report(p, props, Cfg.GetFloat64("Temperature"), Cfg.GetFloat64("Pressure"))
		if err != nil {
			return err
		}
		fields := logrus.Fields{}
		for _, qq := range q {
			fields[qq.Name] = qq.Value.Value()
		}
		Log.WithFields(fields).Debug("calculated particle properties")
		return WriteReport(cmd.OutOrStdout(), q)
	},
	DisableAutoGenTag: true,
}

func logTable(t *aeropart.SpeciesTable) {
	Log.WithFields(logrus.Fields{
		"species":       t.Len(),
		"fracDim":       t.FracDim(),
		"volFillFactor": t.VolFillFactor(),
		"primeRadius":   t.PrimeRadius(),
		"key":           hash.Table(t),
	}).Info("loaded species table")
}
