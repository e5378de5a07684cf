/* Copyright (C) 2016-2026 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */


package pique

/* -------------------------------------------------------------------------- */

import "errors"

/* -------------------------------------------------------------------------- */

var (
  ErrConfiguration       = errors.New("configuration error")
  ErrTrackLengthMismatch = errors.New("tracks have different lengths")
  ErrContigSetMismatch   = errors.New("IP and BG contig names do not match")
  ErrOverlappingRegion   = errors.New("overlapping analysis regions are not allowed")
  ErrRegionNotFound      = errors.New("analysis region does not exist")
  ErrContigNotFound      = errors.New("contig not found")
)
