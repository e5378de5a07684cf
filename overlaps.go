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

import "sort"

/* -------------------------------------------------------------------------- */

type endPoint struct {
  position int
  isEnd    bool
  srcIdx   int
  isA      bool
}

type endPointList []endPoint

func (r endPointList) Len() int {
  return len(r)
}

func (r endPointList) Less(i, j int) bool {
  if r[i].position != r[j].position {
    return r[i].position < r[j].position
  }
  // intervals are half-open, so at equal positions an interval must be
  // closed before the next one is opened
  return r[i].isEnd && !r[j].isEnd
}

func (r endPointList) Swap(i, j int) {
  r[i], r[j] = r[j], r[i]
}

func removeIndex(s []int, k int) []int {
  for i := 0; i < len(s); i++ {
    if s[i] == k {
      return append(s[0:i], s[i+1:]...)
    }
  }
  return s
}

/* -------------------------------------------------------------------------- */

// Compute the envelope of two region sets. For every pair of overlapping
// intervals a in regionsA and b in regionsB the intersection of a and b is
// reported. Intervals that only touch are ignored. The result is sorted by
// start position and contains no duplicates. Empty intervals in the input
// are skipped.
func Overlaps(regionsA, regionsB RegionSet) RegionSet {
  entry := endPointList{}
  for i, r := range regionsA {
    if r.Start < r.Stop {
      entry = append(entry, endPoint{r.Start, false, i, true})
      entry = append(entry, endPoint{r.Stop,  true,  i, true})
    }
  }
  for i, r := range regionsB {
    if r.Start < r.Stop {
      entry = append(entry, endPoint{r.Start, false, i, false})
      entry = append(entry, endPoint{r.Stop,  true,  i, false})
    }
  }
  sort.Stable(entry)

  result := RegionSet{}
  listA  := []int{}
  listB  := []int{}
  for _, e := range entry {
    if e.isA {
      if e.isEnd {
        listA = removeIndex(listA, e.srcIdx)
      } else {
        // all open intervals of B overlap with this one
        for _, j := range listB {
          if r, ok := regionsA[e.srcIdx].Intersection(regionsB[j]); ok {
            result = append(result, r)
          }
        }
        listA = append(listA, e.srcIdx)
      }
    } else {
      if e.isEnd {
        listB = removeIndex(listB, e.srcIdx)
      } else {
        for _, j := range listA {
          if r, ok := regionsA[j].Intersection(regionsB[e.srcIdx]); ok {
            result = append(result, r)
          }
        }
        listB = append(listB, e.srcIdx)
      }
    }
  }
  return result.Unique()
}
