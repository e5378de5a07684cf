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

import "bufio"
import "fmt"
import "io"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

type trackRecord struct {
  seqname  string
  position int
  value    float64
}

// Parse a track table with columns sequence, strand, position, and value.
// A header line starting with `sequence' and lines containing `#' are
// skipped. Rows with strand `+' or `-' are only accepted for the matching
// strand, rows with `.' or `*' for both.
func readTrackRecords(reader io.Reader, strand Strand) ([]trackRecord, error) {
  records := []trackRecord{}
  scanner := bufio.NewScanner(reader)
  for i := 1; scanner.Scan(); i++ {
    line := scanner.Text()
    if strings.Contains(line, "#") {
      continue
    }
    fields := strings.Fields(line)
    if len(fields) == 0 {
      continue
    }
    if fields[0] == "sequence" {
      continue
    }
    if len(fields) != 4 {
      return nil, fmt.Errorf("invalid track table (line %d): expected 4 columns", i)
    }
    switch fields[1] {
    case "+", "-":
      if fields[1] != string(strand) {
        continue
      }
    case ".", "*":
    default:
      return nil, fmt.Errorf("invalid track table (line %d): invalid strand `%s'", i, fields[1])
    }
    t1, e1 := strconv.ParseInt(fields[2], 10, 64)
    if e1 != nil || t1 < 0 {
      return nil, fmt.Errorf("invalid track table (line %d): invalid position `%s'", i, fields[2])
    }
    t2, e2 := strconv.ParseFloat(fields[3], 64)
    if e2 != nil || t2 < 0 {
      return nil, fmt.Errorf("invalid track table (line %d): invalid value `%s'", i, fields[3])
    }
    records = append(records, trackRecord{fields[0], int(t1), t2})
  }
  return records, scanner.Err()
}

func trackRecordsGenome(records []trackRecord) Genome {
  genome := Genome{}
  index  := make(map[string]int)
  for _, r := range records {
    if i, ok := index[r.seqname]; ok {
      genome.Lengths[i] = iMax(genome.Lengths[i], r.position+1)
    } else {
      index[r.seqname] = len(genome.Seqnames)
      genome.Seqnames  = append(genome.Seqnames, r.seqname)
      genome.Lengths   = append(genome.Lengths,  r.position+1)
    }
  }
  return genome
}

func trackRecordsAlloc(records []trackRecord, genome Genome) (map[string]CoverageTrack, error) {
  tracks := make(map[string]CoverageTrack)
  for i, name := range genome.Seqnames {
    tracks[name] = AllocCoverageTrack(genome.Lengths[i])
  }
  for _, r := range records {
    seq, ok := tracks[r.seqname]
    if !ok {
      return nil, fmt.Errorf("sequence `%s' not found in genome", r.seqname)
    }
    if r.position >= len(seq) {
      return nil, fmt.Errorf("position `%d' exceeds length of sequence `%s'", r.position, r.seqname)
    }
    // repeated positions are summed
    seq[r.position] += r.value
  }
  return tracks, nil
}

// Read coverage of one strand from a track table. Tracks are allocated for
// all contigs of genome. If genome is empty, contigs and lengths are
// inferred from the table.
func ReadTrackTable(reader io.Reader, strand Strand, genome Genome) (map[string]CoverageTrack, error) {
  records, err := readTrackRecords(reader, strand)
  if err != nil {
    return nil, err
  }
  if genome.Length() == 0 {
    genome = trackRecordsGenome(records)
  }
  return trackRecordsAlloc(records, genome)
}

// Write a track table containing all non-zero positions of the given
// tracks. Contigs are written in the order of genome.
func WriteTrackTable(writer io.Writer, genome Genome, tracks map[string]StrandedTracks) error {
  if _, err := fmt.Fprintf(writer, "sequence\tstrand\tposition\tvalue\n"); err != nil {
    return err
  }
  for _, name := range genome.Seqnames {
    t, ok := tracks[name]
    if !ok {
      continue
    }
    for _, strand := range []Strand{Forward, Reverse} {
      for i, v := range t.Get(strand) {
        if v == 0.0 {
          continue
        }
        if _, err := fmt.Fprintf(writer, "%s\t%c\t%d\t%v\n", name, strand, i, v); err != nil {
          return err
        }
      }
    }
  }
  return nil
}

/* input files
 * -------------------------------------------------------------------------- */

// Coverage input of an analysis. Files with suffix `.bam' are read as
// alignments, all other files as track tables.
type TrackFiles struct {
  IPForward string
  IPReverse string
  BGForward string
  BGReverse string
}

type trackInput struct {
  filename string
  strand   Strand
  tracks   map[string]CoverageTrack
  records  []trackRecord
  isTable  bool
}

// Import IP and BG coverage. Track tables are allocated with the contig
// lengths of genome if it is non-empty. Otherwise the union of all BAM
// headers and of the positions seen in all track tables is used.
func ImportTrackFiles(files TrackFiles, genome Genome) (map[string]StrandedTracks, map[string]StrandedTracks, error) {
  inputs := []*trackInput{
    &trackInput{filename: files.IPForward, strand: Forward},
    &trackInput{filename: files.IPReverse, strand: Reverse},
    &trackInput{filename: files.BGForward, strand: Forward},
    &trackInput{filename: files.BGReverse, strand: Reverse} }

  inferred := Genome{}
  bamCache := make(map[string]map[string]StrandedTracks)
  for _, in := range inputs {
    if strings.HasSuffix(in.filename, ".bam") {
      t, ok := bamCache[in.filename]
      if !ok {
        tracks, g, err := ImportBamCoverage(in.filename)
        if err != nil {
          return nil, nil, err
        }
        t = tracks
        bamCache[in.filename] = t
        inferred = inferred.Merge(g)
      }
      in.tracks = make(map[string]CoverageTrack)
      for name, s := range t {
        in.tracks[name] = s.Get(in.strand)
      }
    } else {
      f, err := openFile(in.filename)
      if err != nil {
        return nil, nil, err
      }
      records, err := readTrackRecords(f, in.strand)
      f.Close()
      if err != nil {
        return nil, nil, fmt.Errorf("reading track `%s' failed: %v", in.filename, err)
      }
      in.records  = records
      in.isTable  = true
      inferred    = inferred.Merge(trackRecordsGenome(records))
    }
  }
  if genome.Length() == 0 {
    genome = inferred
  }
  for _, in := range inputs {
    if in.isTable {
      tracks, err := trackRecordsAlloc(in.records, genome)
      if err != nil {
        return nil, nil, fmt.Errorf("reading track `%s' failed: %v", in.filename, err)
      }
      in.tracks = tracks
    }
  }
  join := func(f, r *trackInput) map[string]StrandedTracks {
    result := make(map[string]StrandedTracks)
    for name, t := range f.tracks {
      result[name] = StrandedTracks{t, r.tracks[name]}
    }
    for name, t := range r.tracks {
      if _, ok := result[name]; !ok {
        result[name] = StrandedTracks{f.tracks[name], t}
      }
    }
    return result
  }
  return join(inputs[0], inputs[1]), join(inputs[2], inputs[3]), nil
}
