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

/* -------------------------------------------------------------------------- */

type PeakConfig struct {
  // detection level applied to the filtered tracks
  Threshold float64
  // envelopes wider than TooBig or narrower than TooSmall are dropped
  TooBig    float64
  TooSmall  float64
  // annotation strategy, DefaultAnnotator if nil
  Annotator Annotator
  // normalization regions per contig
  Norms     map[string][]Interval
}

// Call peaks within all analysis regions of a contig. The contig must have
// been filtered with FilterData before.
func (data *Data) CallPeaks(name string, config PeakConfig) ([]AnalysisRegionPeaks, error) {
  contig, err := data.Contig(name)
  if err != nil {
    return nil, err
  }
  filtered, err := data.Filtered(name)
  if err != nil {
    return nil, err
  }
  annotate := config.Annotator
  if annotate == nil {
    annotate = DefaultAnnotator
  }
  norms  := NormSamples(contig.IP, contig.BG, config.Norms[name])
  result := []AnalysisRegionPeaks{}

  for _, region := range contig.Regions() {
    ip := filtered.IP.Slice(region)
    r  := AnalysisRegionPeaks{Contig: name, Region: region, Norms: norms}

    forward  := FindRegions(ip.Forward, config.Threshold)
    reverse  := FindRegions(ip.Reverse, config.Threshold)
    envelope := Overlaps(forward, reverse)

    for _, e := range envelope {
      if w := float64(e.Width()); w > config.TooBig || w < config.TooSmall {
        continue
      }
      annotations := annotate(e.Shift(region.Start), contig.IP, contig.BG, norms)
      if annotations == nil {
        return nil, fmt.Errorf("annotator returned no annotations for peak %v on contig `%s'", e, name)
      }
      r.Peaks = append(r.Peaks, Peak{e, annotations})
    }
    result = append(result, r)
  }
  return result, nil
}

// Run the evaporating lake on the filtered tracks of a contig. The contig
// must have been filtered with FilterData before.
func (data *Data) EvaporatingLake(name string, config LakeConfig) ([]LakeIteration, error) {
  filtered, err := data.Filtered(name)
  if err != nil {
    return nil, err
  }
  if config.Logger != nil {
    config.Logger = config.Logger.WithField("contig", name)
  }
  return EvaporatingLake(filtered.IP, filtered.BG, config)
}
