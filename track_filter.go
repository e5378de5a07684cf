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

// Smoothen a track with a window of windowLength positions and suppress
// low-level noise. Each position is replaced by the sum of the window
// centered at it, where positions outside the track count as zero. Sums
// strictly below levelThreshold are set to zero afterwards. Window lengths
// smaller than one are treated as one.
func FilterSet(track CoverageTrack, windowLength int, levelThreshold float64) CoverageTrack {
  if windowLength < 1 {
    windowLength = 1
  }
  n := len(track)
  offset1 := divIntUp  (windowLength-1, 2)
  offset2 := divIntDown(windowLength-1, 2)

  result := AllocCoverageTrack(n)
  for i := 0; i < n; i++ {
    from := iMax(0, i-offset1)
    to   := iMin(n, i+offset2+1)
    // sum each window separately so that values are exact window sums
    v := 0.0
    for _, x := range track[from:to] {
      v += x
    }
    if v < levelThreshold {
      v = 0.0
    }
    result[i] = v
  }
  return result
}

func FilterStranded(tracks StrandedTracks, windowLength int, levelThreshold float64) StrandedTracks {
  return tracks.Map(func(t CoverageTrack) CoverageTrack {
    return FilterSet(t, windowLength, levelThreshold)
  })
}

/* -------------------------------------------------------------------------- */

// Filtered IP and background tracks of a contig together with the
// parameters used to compute them.
type FilteredTracks struct {
  IP             StrandedTracks
  BG             StrandedTracks
  WindowLength   int
  LevelThreshold float64
}

func NewFilteredTracks(ip, bg StrandedTracks, windowLength int, levelThreshold float64) FilteredTracks {
  return FilteredTracks{
    IP            : FilterStranded(ip, windowLength, levelThreshold),
    BG            : FilterStranded(bg, windowLength, levelThreshold),
    WindowLength  : windowLength,
    LevelThreshold: levelThreshold }
}
