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

import "bytes"
import "fmt"
import "math"

import "gonum.org/v1/gonum/stat"

/* -------------------------------------------------------------------------- */

const (
  AnnotationEnrichmentRatio = "enrichment_ratio"
  AnnotationBindsAt         = "binds_at"
)

type AnnotationMap map[string]float64

func (m AnnotationMap) EnrichmentRatio() float64 {
  return m[AnnotationEnrichmentRatio]
}

func (m AnnotationMap) BindsAt() float64 {
  return m[AnnotationBindsAt]
}

/* -------------------------------------------------------------------------- */

// A peak is an envelope interval relative to the start of its analysis
// region, together with annotations.
type Peak struct {
  Interval
  Annotations AnnotationMap
}

// Genomic coordinates of the peak.
func (peak Peak) Absolute(region Interval) Interval {
  return peak.Interval.Shift(region.Start)
}

/* -------------------------------------------------------------------------- */

// Peaks found within a single analysis region of a contig.
type AnalysisRegionPeaks struct {
  Contig string
  Region Interval
  Norms  []float64
  Peaks  []Peak
}

// Mean of the normalization samples, NaN if there are none.
func (r AnalysisRegionPeaks) NormMean() float64 {
  if len(r.Norms) == 0 {
    return math.NaN()
  }
  return stat.Mean(r.Norms, nil)
}

// Population standard deviation of the normalization samples, NaN if
// there are none.
func (r AnalysisRegionPeaks) NormStd() float64 {
  if len(r.Norms) == 0 {
    return math.NaN()
  }
  _, std := stat.PopMeanStdDev(r.Norms, nil)
  return std
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (r AnalysisRegionPeaks) String() string {
  var buffer bytes.Buffer
  // number of lines to print
  const n int = 10

  printRow := func(i int) {
    if i != 0 {
      buffer.WriteString("\n")
    }
    a := r.Peaks[i].Absolute(r.Region)
    buffer.WriteString(
      fmt.Sprintf("%10d %10s [%10d, %10d) | %10.1f %16f",
        i+1,
        r.Contig,
        a.Start,
        a.Stop,
        r.Peaks[i].Annotations.BindsAt(),
        r.Peaks[i].Annotations.EnrichmentRatio()))
  }

  // print header
  buffer.WriteString(
    fmt.Sprintf("%10s %10s %25s | %10s %16s\n",
      "", "seqnames", "ranges", "binds_at", "enrichment_ratio"))

  // select rows to print
  if len(r.Peaks) <= n+1 {
    // print all entries
    for i := 0; i < len(r.Peaks); i++ {
      printRow(i)
    }
  } else {
    // print first n/2 rows
    for i := 0; i < n/2; i++ {
      printRow(i)
    }
    buffer.WriteString(
      fmt.Sprintf("\n%10s %10s %25s | %10s", "", "...", "...", "..."))
    // print last n/2 rows
    for i := len(r.Peaks) - n/2; i < len(r.Peaks); i++ {
      printRow(i)
    }
  }
  return buffer.String()
}
