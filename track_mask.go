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

// Set all positions covered by at least one mask interval to zero. The
// input track is not modified. Mask intervals may overlap, come in any
// order, and may exceed the track boundaries.
func Mask(track CoverageTrack, masks []Interval) CoverageTrack {
  result := track.Clone()
  for _, m := range masks {
    m = m.Clip(len(result))
    for i := m.Start; i < m.Stop; i++ {
      result[i] = 0.0
    }
  }
  return result
}

func MaskStranded(tracks StrandedTracks, masks []Interval) StrandedTracks {
  return tracks.Map(func(t CoverageTrack) CoverageTrack {
    return Mask(t, masks)
  })
}
