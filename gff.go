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
import "io"

import "github.com/biogo/biogo/io/featio"
import "github.com/biogo/biogo/io/featio/gff"

/* -------------------------------------------------------------------------- */

const (
  FeatureAnalysisRegion = "analysis_region"
  FeatureMask           = "mask"
  FeatureNormRegion     = "norm_region"
)

// Analysis regions, masks and normalization regions per contig.
type RegionDescription struct {
  Regions map[string][]Interval
  Masks   map[string][]Interval
  Norms   map[string][]Interval
}

func NewRegionDescription() RegionDescription {
  return RegionDescription{
    Regions: make(map[string][]Interval),
    Masks  : make(map[string][]Interval),
    Norms  : make(map[string][]Interval) }
}

/* i/o
 * -------------------------------------------------------------------------- */

// Read a region description in GFF format. Features of type
// analysis_region, mask, and norm_region are collected, all other
// features are ignored. Coordinates are zero-based and half-open.
func (desc *RegionDescription) Read(reader io.Reader) error {
  r := NewRegionDescription()

  sc := featio.NewScanner(gff.NewReader(reader))
  for sc.Next() {
    f, ok := sc.Feat().(*gff.Feature)
    if !ok {
      continue
    }
    var dst map[string][]Interval
    switch f.Feature {
    case FeatureAnalysisRegion:
      dst = r.Regions
    case FeatureMask:
      dst = r.Masks
    case FeatureNormRegion:
      dst = r.Norms
    default:
      continue
    }
    i, err := NewInterval(f.FeatStart, f.FeatEnd)
    if err != nil {
      return fmt.Errorf("feature `%s' on `%s': %v", f.Feature, f.SeqName, err)
    }
    dst[f.SeqName] = append(dst[f.SeqName], i)
  }
  if err := sc.Error(); err != nil {
    return err
  }
  *desc = r
  return nil
}

func (desc *RegionDescription) Import(filename string) error {
  f, err := openFile(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  if err := desc.Read(f); err != nil {
    return fmt.Errorf("reading region description `%s' failed: %v", filename, err)
  }
  return nil
}

/* -------------------------------------------------------------------------- */

// Apply masks and replace analysis regions of all contigs mentioned in the
// description. Contigs without analysis_region features keep their
// regions.
func (data *Data) ApplyRegionDescription(desc RegionDescription) error {
  for name, masks := range desc.Masks {
    if err := data.MaskContig(name, masks); err != nil {
      return err
    }
  }
  for name, regions := range desc.Regions {
    if err := data.SetAnalysisRegions(name, regions); err != nil {
      return err
    }
  }
  return nil
}
