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

import "errors"

// Errors returned by the functions in this package. They are wrapped with
// additional context, so use errors.Is to check for them.
var (
	// ErrDuplicateSpecies is returned when a species name appears more
	// than once in a SpeciesTable.
	ErrDuplicateSpecies = errors.New("aeropart: duplicate species")

	// ErrInvalidParameter is returned for physically meaningless input,
	// such as a non-positive density or prime radius.
	ErrInvalidParameter = errors.New("aeropart: invalid parameter")

	// ErrLengthMismatch is returned when a particle has more volumes than
	// its SpeciesTable has species.
	ErrLengthMismatch = errors.New("aeropart: more volumes than species")

	// ErrIndexOutOfRange is returned for species or volume indices outside
	// of the valid range.
	ErrIndexOutOfRange = errors.New("aeropart: index out of range")

	// ErrSpeciesNotFound is returned when a species name is not in the table.
	ErrSpeciesNotFound = errors.New("aeropart: species not found")

	// ErrInvalidProperty is returned for an unknown particle property name.
	ErrInvalidProperty = errors.New("aeropart: invalid property")

	// ErrTableMismatch is returned when particles that refer to different
	// species tables are combined.
	ErrTableMismatch = errors.New("aeropart: particles refer to different species tables")

	// ErrNotConverged is returned when an iterative calculation does not
	// converge.
	ErrNotConverged = errors.New("aeropart: iteration did not converge")
)
