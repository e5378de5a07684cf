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

import "fmt"
import "math"

/* -------------------------------------------------------------------------- */

// A coverage track stores one non-negative value per position of a
// contig. The first position in a sequence is numbered 0.
type CoverageTrack []float64

/* constructor
 * -------------------------------------------------------------------------- */

func AllocCoverageTrack(length int) CoverageTrack {
  return make(CoverageTrack, length)
}

func (track CoverageTrack) Clone() CoverageTrack {
  t := make(CoverageTrack, len(track))
  copy(t, track)
  return t
}

/* access methods
 * -------------------------------------------------------------------------- */

func (track CoverageTrack) Length() int {
  return len(track)
}

// Maximum value of the track, zero if the track is empty.
func (track CoverageTrack) Max() float64 {
  if len(track) == 0 {
    return 0.0
  }
  r := math.Inf(-1)
  for _, v := range track {
    if v > r {
      r = v
    }
  }
  return r
}

// Minimum value of the track, zero if the track is empty.
func (track CoverageTrack) Min() float64 {
  if len(track) == 0 {
    return 0.0
  }
  r := math.Inf(1)
  for _, v := range track {
    if v < r {
      r = v
    }
  }
  return r
}

// Values within r. The interval is clipped to the track boundaries.
func (track CoverageTrack) Slice(r Interval) CoverageTrack {
  r = r.Clip(len(track))
  if r.Start >= r.Stop {
    return CoverageTrack{}
  }
  return track[r.Start:r.Stop]
}

func (track CoverageTrack) Sum(r Interval) float64 {
  sum := 0.0
  for _, v := range track.Slice(r) {
    sum += v
  }
  return sum
}

// Position of the maximum within r. Ties are resolved to the leftmost
// position. Returns r.Start if r does not intersect the track.
func (track CoverageTrack) ArgMax(r Interval) int {
  s := track.Slice(r)
  if len(s) == 0 {
    return r.Start
  }
  j := 0
  for i := 1; i < len(s); i++ {
    if s[i] > s[j] {
      j = i
    }
  }
  return iMax(r.Start, 0) + j
}

func (track CoverageTrack) CountNonZero() int {
  n := 0
  for _, v := range track {
    if v != 0.0 {
      n++
    }
  }
  return n
}

/* stranded tracks
 * -------------------------------------------------------------------------- */

type Strand byte

const (
  Forward Strand = '+'
  Reverse Strand = '-'
)

// Forward and reverse coverage of one sample on one contig.
type StrandedTracks struct {
  Forward CoverageTrack
  Reverse CoverageTrack
}

func (tracks StrandedTracks) Get(strand Strand) CoverageTrack {
  if strand == Reverse {
    return tracks.Reverse
  }
  return tracks.Forward
}

func (tracks StrandedTracks) Clone() StrandedTracks {
  return StrandedTracks{tracks.Forward.Clone(), tracks.Reverse.Clone()}
}

func (tracks StrandedTracks) Slice(r Interval) StrandedTracks {
  return StrandedTracks{tracks.Forward.Slice(r), tracks.Reverse.Slice(r)}
}

// Sum over both strands within r.
func (tracks StrandedTracks) Sum(r Interval) float64 {
  return tracks.Forward.Sum(r) + tracks.Reverse.Sum(r)
}

// Common length of both strands.
func (tracks StrandedTracks) Length() (int, error) {
  if len(tracks.Forward) != len(tracks.Reverse) {
    return 0, fmt.Errorf("forward and reverse tracks have different lengths (`%d' and `%d')", len(tracks.Forward), len(tracks.Reverse))
  }
  return len(tracks.Forward), nil
}

func (tracks StrandedTracks) Map(f func(CoverageTrack) CoverageTrack) StrandedTracks {
  return StrandedTracks{f(tracks.Forward), f(tracks.Reverse)}
}
