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

import "github.com/biogo/store/interval"

/* -------------------------------------------------------------------------- */

type regionEntry struct {
  Interval
  uid uintptr
}

func (r regionEntry) Overlap(b interval.IntRange) bool {
  // half-open interval indexing
  return r.Stop > b.Start && r.Start < b.End
}

func (r regionEntry) ID() uintptr {
  return r.uid
}

func (r regionEntry) Range() interval.IntRange {
  return interval.IntRange{Start: r.Start, End: r.Stop}
}

/* -------------------------------------------------------------------------- */

// Coverage tracks and analysis regions of a single contig.
type ContigData struct {
  Name    string
  Length  int
  IP      StrandedTracks
  BG      StrandedTracks
  regions interval.IntTree
  nextId  uintptr
}

// Container for the coverage tracks of all contigs. Analysis regions of a
// contig never overlap. Data is not safe for concurrent modification.
type Data struct {
  contigs  map[string]*ContigData
  filtered map[string]FilteredTracks
}

/* constructor
 * -------------------------------------------------------------------------- */

func NewData() *Data {
  return &Data{
    contigs : make(map[string]*ContigData),
    filtered: make(map[string]FilteredTracks) }
}

/* -------------------------------------------------------------------------- */

// Add a contig with IP and BG tracks for both strands. All four tracks
// must have the same length. The contig is initialized with a single
// analysis region covering the whole sequence.
func (data *Data) AddContig(name string, ipForward, ipReverse, bgForward, bgReverse CoverageTrack) error {
  n := len(ipForward)
  for _, t := range []CoverageTrack{ipReverse, bgForward, bgReverse} {
    if len(t) != n {
      return fmt.Errorf("contig `%s': %w (`%d', `%d', `%d', `%d')", name, ErrTrackLengthMismatch,
        len(ipForward), len(ipReverse), len(bgForward), len(bgReverse))
    }
  }
  contig := &ContigData{
    Name  : name,
    Length: n,
    IP    : StrandedTracks{ipForward, ipReverse},
    BG    : StrandedTracks{bgForward, bgReverse} }
  if n > 0 {
    if err := contig.insertRegion(Interval{0, n}); err != nil {
      return err
    }
  }
  data.contigs[name] = contig
  delete(data.filtered, name)
  return nil
}

// Load IP and BG tracks of all contigs. Both inputs must contain the same
// set of contig names.
func (data *Data) LoadData(ip, bg map[string]StrandedTracks) error {
  ipContigs := make([]string, 0, len(ip))
  bgContigs := make([]string, 0, len(bg))
  for name := range ip {
    ipContigs = append(ipContigs, name)
  }
  for name := range bg {
    bgContigs = append(bgContigs, name)
  }
  sort.Strings(ipContigs)
  sort.Strings(bgContigs)

  if len(ipContigs) != len(bgContigs) {
    return fmt.Errorf("%w: BG and IP have different number of contigs (IP: %v, BG: %v)", ErrContigSetMismatch, ipContigs, bgContigs)
  }
  for i := 0; i < len(ipContigs); i++ {
    if ipContigs[i] != bgContigs[i] {
      return fmt.Errorf("%w (IP: %v, BG: %v)", ErrContigSetMismatch, ipContigs, bgContigs)
    }
  }
  for _, name := range ipContigs {
    if err := data.AddContig(name, ip[name].Forward, ip[name].Reverse, bg[name].Forward, bg[name].Reverse); err != nil {
      return err
    }
  }
  return nil
}

/* access methods
 * -------------------------------------------------------------------------- */

// Sorted list of contig names.
func (data *Data) Contigs() []string {
  names := make([]string, 0, len(data.contigs))
  for name := range data.contigs {
    names = append(names, name)
  }
  sort.Strings(names)
  return names
}

func (data *Data) Contig(name string) (*ContigData, error) {
  if contig, ok := data.contigs[name]; !ok {
    return nil, fmt.Errorf("%w: `%s'", ErrContigNotFound, name)
  } else {
    return contig, nil
  }
}

func (data *Data) Length(name string) (int, error) {
  contig, err := data.Contig(name)
  if err != nil {
    return 0, err
  }
  return contig.Length, nil
}

func (data *Data) Genome() Genome {
  genome := Genome{}
  for _, name := range data.Contigs() {
    genome.Seqnames = append(genome.Seqnames, name)
    genome.Lengths  = append(genome.Lengths,  data.contigs[name].Length)
  }
  return genome
}

/* analysis regions
 * -------------------------------------------------------------------------- */

func (contig *ContigData) insertRegion(r Interval) error {
  contig.nextId++
  return contig.regions.Insert(regionEntry{r, contig.nextId}, false)
}

// Analysis regions ordered by start position.
func (contig *ContigData) Regions() RegionSet {
  regions := RegionSet{}
  contig.regions.Do(func(e interval.IntInterface) bool {
    regions = append(regions, e.(regionEntry).Interval)
    return false
  })
  sort.Sort(regions)
  return regions
}

func (data *Data) Regions(name string) (RegionSet, error) {
  contig, err := data.Contig(name)
  if err != nil {
    return nil, err
  }
  return contig.Regions(), nil
}

// Add an analysis region to a contig. Overlapping regions are not allowed.
func (data *Data) AddAnalysisRegion(name string, start, stop int) error {
  contig, err := data.Contig(name)
  if err != nil {
    return err
  }
  r := Interval{start, stop}
  if err := r.CheckBounds(contig.Length); err != nil {
    return fmt.Errorf("contig `%s': %v", name, err)
  }
  if hits := contig.regions.Get(regionEntry{Interval: r}); len(hits) > 0 {
    return fmt.Errorf("contig `%s': %w (%v overlaps %v)", name, ErrOverlappingRegion, r, hits[0].(regionEntry).Interval)
  }
  return contig.insertRegion(r)
}

// Remove an analysis region from a contig. The region must match an
// existing one exactly.
func (data *Data) DelAnalysisRegion(name string, start, stop int) error {
  contig, err := data.Contig(name)
  if err != nil {
    return err
  }
  r := Interval{start, stop}
  if r.Valid() {
    for _, e := range contig.regions.Get(regionEntry{Interval: r}) {
      if entry := e.(regionEntry); entry.Interval == r {
        return contig.regions.Delete(entry, false)
      }
    }
  }
  return fmt.Errorf("contig `%s': %w: %v", name, ErrRegionNotFound, r)
}

// Replace all analysis regions of a contig.
func (data *Data) SetAnalysisRegions(name string, regions []Interval) error {
  contig, err := data.Contig(name)
  if err != nil {
    return err
  }
  for _, r := range contig.Regions() {
    if err := data.DelAnalysisRegion(name, r.Start, r.Stop); err != nil {
      return err
    }
  }
  for _, r := range regions {
    if err := data.AddAnalysisRegion(name, r.Start, r.Stop); err != nil {
      return err
    }
  }
  return nil
}

/* masking and filtering
 * -------------------------------------------------------------------------- */

// Mask IP and BG tracks of a single contig.
func (data *Data) MaskContig(name string, masks []Interval) error {
  contig, err := data.Contig(name)
  if err != nil {
    return err
  }
  contig.IP = MaskStranded(contig.IP, masks)
  contig.BG = MaskStranded(contig.BG, masks)
  delete(data.filtered, name)
  return nil
}

// Mask IP and BG tracks of all contigs.
func (data *Data) MaskAll(masks []Interval) error {
  for _, name := range data.Contigs() {
    if err := data.MaskContig(name, masks); err != nil {
      return err
    }
  }
  return nil
}

// Filter IP and BG tracks of a contig. The result is cached and can be
// retrieved with Filtered.
func (data *Data) FilterData(name string, windowLength int, levelThreshold float64) (FilteredTracks, error) {
  contig, err := data.Contig(name)
  if err != nil {
    return FilteredTracks{}, err
  }
  if f, ok := data.filtered[name]; ok && f.WindowLength == windowLength && f.LevelThreshold == levelThreshold {
    return f, nil
  }
  f := NewFilteredTracks(contig.IP, contig.BG, windowLength, levelThreshold)
  data.filtered[name] = f
  return f, nil
}

func (data *Data) Filtered(name string) (FilteredTracks, error) {
  if _, err := data.Contig(name); err != nil {
    return FilteredTracks{}, err
  }
  if f, ok := data.filtered[name]; !ok {
    return FilteredTracks{}, fmt.Errorf("contig `%s' has not been filtered", name)
  } else {
    return f, nil
  }
}
