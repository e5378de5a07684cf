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
import "sort"

/* -------------------------------------------------------------------------- */

// Interval object used to identify a genomic subsequence. By convention the
// first position in a sequence is numbered 0. The fields Start, Stop are
// interpreted as the half-open interval [Start, Stop).
type Interval struct {
  Start, Stop int
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewInterval(start, stop int) (Interval, error) {
  if start < 0 {
    return Interval{}, fmt.Errorf("invalid interval [%d %d): negative start", start, stop)
  }
  if start >= stop {
    return Interval{}, fmt.Errorf("invalid interval [%d %d): start must be smaller than stop", start, stop)
  }
  return Interval{start, stop}, nil
}

/* -------------------------------------------------------------------------- */

func (r Interval) Width() int {
  return r.Stop - r.Start
}

func (r Interval) Valid() bool {
  return r.Start >= 0 && r.Start < r.Stop
}

// Check that r lies within a sequence of the given length.
func (r Interval) CheckBounds(length int) error {
  if !r.Valid() || r.Stop > length {
    return fmt.Errorf("interval %v out of bounds [0 %d)", r, length)
  }
  return nil
}

// Two intervals overlap if their intersection has positive width. Touching
// intervals such as [0 5) and [5 8) do not overlap.
func (r Interval) Overlaps(s Interval) bool {
  return r.Start < s.Stop && s.Start < r.Stop
}

func (r Interval) Contains(s Interval) bool {
  return r.Start <= s.Start && s.Stop <= r.Stop
}

func (r Interval) ContainsPosition(p int) bool {
  return r.Start <= p && p < r.Stop
}

// Intersection of r and s. The second return value is false if both
// intervals do not overlap.
func (r Interval) Intersection(s Interval) (Interval, bool) {
  if !r.Overlaps(s) {
    return Interval{}, false
  }
  return Interval{iMax(r.Start, s.Start), iMin(r.Stop, s.Stop)}, true
}

func (r Interval) Shift(offset int) Interval {
  return Interval{r.Start+offset, r.Stop+offset}
}

// Clip r to [0, length).
func (r Interval) Clip(length int) Interval {
  return Interval{iMax(r.Start, 0), iMin(r.Stop, length)}
}

func (r Interval) String() string {
  return fmt.Sprintf("[%d %d)", r.Start, r.Stop)
}

/* region sets
 * -------------------------------------------------------------------------- */

// Sequence of intervals ordered by start position.
type RegionSet []Interval

func (r RegionSet) Len() int {
  return len(r)
}

func (r RegionSet) Less(i, j int) bool {
  if r[i].Start != r[j].Start {
    return r[i].Start < r[j].Start
  }
  return r[i].Stop < r[j].Stop
}

func (r RegionSet) Swap(i, j int) {
  r[i], r[j] = r[j], r[i]
}

/* -------------------------------------------------------------------------- */

func (r RegionSet) Clone() RegionSet {
  s := make(RegionSet, len(r))
  copy(s, r)
  return s
}

// Sort intervals by start position and remove duplicates.
func (r RegionSet) Unique() RegionSet {
  s := r.Clone()
  sort.Sort(s)
  result := RegionSet{}
  for i := 0; i < len(s); i++ {
    if i == 0 || s[i] != s[i-1] {
      result = append(result, s[i])
    }
  }
  return result
}

// Test if some interval in r contains s.
func (r RegionSet) Covers(s Interval) bool {
  for _, x := range r {
    if x.Contains(s) {
      return true
    }
  }
  return false
}

// Compare two region sets as unordered collections.
func (r RegionSet) Equals(s RegionSet) bool {
  a := r.Unique()
  b := s.Unique()
  if len(a) != len(b) {
    return false
  }
  for i := 0; i < len(a); i++ {
    if a[i] != b[i] {
      return false
    }
  }
  return true
}

func (r RegionSet) Shift(offset int) RegionSet {
  s := make(RegionSet, len(r))
  for i := 0; i < len(r); i++ {
    s[i] = r[i].Shift(offset)
  }
  return s
}
