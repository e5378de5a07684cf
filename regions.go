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

func isActive(value, threshold float64) bool {
  // zero coverage carries no signal, even at threshold zero
  return value >= threshold && value > 0.0
}

// Find maximal runs of positions with values greater or equal to
// threshold. Runs separated by a single inactive position are reported
// separately. The result is ordered by start position.
func FindRegions(track CoverageTrack, threshold float64) RegionSet {
  regions := RegionSet{}
  n := len(track)
  for i := 0; i < n; i++ {
    if isActive(track[i], threshold) {
      // region begins here
      from := i
      // increment until either the sequence ended or
      // the value drops below the threshold
      for i < n && isActive(track[i], threshold) {
        i += 1
      }
      regions = append(regions, Interval{from, i})
    }
  }
  return regions
}
