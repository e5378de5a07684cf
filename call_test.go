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

import "math"
import "testing"

/* -------------------------------------------------------------------------- */

func newCallTestData(t *testing.T) *Data {
  n  := 30
  ipF := AllocCoverageTrack(n)
  ipR := AllocCoverageTrack(n)
  for i := 10; i < 20; i++ {
    ipF[i] = 1
  }
  for i := 12; i < 24; i++ {
    ipR[i] = 1
  }
  ipF[14] = 5
  ipR[18] = 5

  data := NewData()
  if err := data.AddContig("chr1", ipF, ipR, AllocCoverageTrack(n), AllocCoverageTrack(n)); err != nil {
    t.Fatal(err)
  }
  if _, err := data.FilterData("chr1", 1, 1); err != nil {
    t.Fatal(err)
  }
  return data
}

/* -------------------------------------------------------------------------- */

func TestCallPeaks1(t *testing.T) {
  data := newCallTestData(t)

  result, err := data.CallPeaks("chr1", PeakConfig{TooBig: 100, TooSmall: 1})
  if err != nil {
    t.Fatal(err)
  }
  if len(result) != 1 || len(result[0].Peaks) != 1 {
    t.Fatalf("TestCallPeaks1 failed: %v", result)
  }
  peak := result[0].Peaks[0]
  if peak.Absolute(result[0].Region) != (Interval{12, 20}) {
    t.Errorf("TestCallPeaks1 failed: %v", peak.Interval)
  }
  if peak.Annotations.BindsAt() != 16 {
    t.Errorf("TestCallPeaks1 failed: binds_at = %v", peak.Annotations.BindsAt())
  }
  if math.Abs(peak.Annotations.EnrichmentRatio() - 25) > 1e-12 {
    t.Errorf("TestCallPeaks1 failed: enrichment_ratio = %v", peak.Annotations.EnrichmentRatio())
  }
}

func TestCallPeaks2(t *testing.T) {
  data := newCallTestData(t)

  // too small
  if result, err := data.CallPeaks("chr1", PeakConfig{TooBig: 100, TooSmall: 10}); err != nil {
    t.Fatal(err)
  } else if len(result) != 1 || len(result[0].Peaks) != 0 {
    t.Errorf("TestCallPeaks2 failed: %v", result)
  }
  // too big
  if result, err := data.CallPeaks("chr1", PeakConfig{TooBig: 7, TooSmall: 0}); err != nil {
    t.Fatal(err)
  } else if len(result) != 1 || len(result[0].Peaks) != 0 {
    t.Errorf("TestCallPeaks2 failed: %v", result)
  }
  // threshold above the summits
  if result, err := data.CallPeaks("chr1", PeakConfig{Threshold: 6, TooBig: 100}); err != nil {
    t.Fatal(err)
  } else if len(result[0].Peaks) != 0 {
    t.Errorf("TestCallPeaks2 failed: %v", result)
  }
}

func TestCallPeaks3(t *testing.T) {
  data := newCallTestData(t)

  if err := data.SetAnalysisRegions("chr1", []Interval{{0, 15}, {15, 30}}); err != nil {
    t.Fatal(err)
  }
  result, err := data.CallPeaks("chr1", PeakConfig{TooBig: 100})
  if err != nil {
    t.Fatal(err)
  }
  if len(result) != 2 {
    t.Fatalf("TestCallPeaks3 failed: %v", result)
  }
  expected := []Interval{{12, 15}, {15, 20}}
  for i, r := range result {
    if len(r.Peaks) != 1 {
      t.Errorf("TestCallPeaks3 failed: %v", r)
      continue
    }
    if a := r.Peaks[0].Absolute(r.Region); a != expected[i] {
      t.Errorf("TestCallPeaks3 failed: %v", a)
    }
  }
  // peaks are stored relative to their region
  if r := result[1]; len(r.Peaks) == 1 && r.Peaks[0].Interval != (Interval{0, 5}) {
    t.Errorf("TestCallPeaks3 failed: %v", r.Peaks[0].Interval)
  }
}

func TestCallPeaks4(t *testing.T) {
  data := newCallTestData(t)

  called := 0
  annotator := func(peak Interval, ip, bg StrandedTracks, norms []float64) AnnotationMap {
    called++
    return AnnotationMap{AnnotationEnrichmentRatio: 1, AnnotationBindsAt: float64(peak.Start), "width": float64(peak.Width())}
  }
  result, err := data.CallPeaks("chr1", PeakConfig{TooBig: 100, Annotator: annotator})
  if err != nil {
    t.Fatal(err)
  }
  if called != 1 || result[0].Peaks[0].Annotations["width"] != 8 {
    t.Error("TestCallPeaks4 failed!")
  }
  if _, err := data.CallPeaks("chr2", PeakConfig{}); err == nil {
    t.Error("TestCallPeaks4 failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestNormSamples1(t *testing.T) {
  ip := StrandedTracks{CoverageTrack{2, 2, 2, 2}, CoverageTrack{1, 1, 1, 1}}
  bg := StrandedTracks{CoverageTrack{1, 1, 0, 0}, CoverageTrack{1, 1, 0, 0}}

  norms := NormSamples(ip, bg, []Interval{{0, 2}, {2, 4}, {0, 4}})
  if len(norms) != 2 || norms[0] != 1.5 || norms[1] != 3 {
    t.Errorf("TestNormSamples1 failed: %v", norms)
  }
  a := DefaultAnnotator(Interval{0, 2}, ip, bg, norms)
  // (6+1)/(2.25*4+1)
  if math.Abs(a.EnrichmentRatio() - 0.7) > 1e-12 {
    t.Errorf("TestNormSamples1 failed: %v", a)
  }
  if a.BindsAt() != 0 {
    t.Errorf("TestNormSamples1 failed: %v", a)
  }
}
