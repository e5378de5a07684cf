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

import "gonum.org/v1/gonum/stat"

/* -------------------------------------------------------------------------- */

// An annotator computes metadata for a peak. The peak interval is given in
// contig coordinates, ip and bg are the masked coverage tracks of the
// contig, and norms are the normalization samples of the contig. The
// result must contain at least the keys enrichment_ratio (non-negative)
// and binds_at (contig coordinate).
type Annotator func(peak Interval, ip, bg StrandedTracks, norms []float64) AnnotationMap

/* -------------------------------------------------------------------------- */

// Normalization samples of a contig. For each normalization region the
// ratio of IP and BG coverage over both strands is computed. Regions
// without background coverage are skipped.
func NormSamples(ip, bg StrandedTracks, regions []Interval) []float64 {
  norms := []float64{}
  for _, r := range regions {
    s := bg.Sum(r)
    if s <= 0.0 {
      continue
    }
    norms = append(norms, ip.Sum(r)/s)
  }
  return norms
}

// Default annotation strategy. The enrichment ratio compares IP coverage
// within the peak with normalized BG coverage, using a pseudocount of one
// on both sides. Reads on the forward strand pile up left of a binding
// site and reads on the reverse strand right of it, so the binding
// coordinate is estimated as the midpoint between both strand summits.
func DefaultAnnotator(peak Interval, ip, bg StrandedTracks, norms []float64) AnnotationMap {
  norm := 1.0
  if len(norms) > 0 {
    norm = stat.Mean(norms, nil)
  }
  er := (ip.Sum(peak) + 1.0)/(norm*bg.Sum(peak) + 1.0)

  fSummit := ip.Forward.ArgMax(peak)
  rSummit := ip.Reverse.ArgMax(peak)

  return AnnotationMap{
    AnnotationEnrichmentRatio: er,
    AnnotationBindsAt        : float64(divIntDown(fSummit+rSummit, 2)) }
}
