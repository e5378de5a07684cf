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
import "os"

import "github.com/biogo/hts/bam"
import "github.com/biogo/hts/sam"

/* -------------------------------------------------------------------------- */

// Compute stranded per-position coverage of all contigs in a BAM file.
// Every reference position aligned to a read (match, mismatch, or
// deletion) counts once for the strand of the read. Unmapped reads are
// skipped.
func ReadBamCoverage(reader io.Reader) (map[string]StrandedTracks, Genome, error) {
  br, err := bam.NewReader(reader, 1)
  if err != nil {
    return nil, Genome{}, err
  }
  defer br.Close()

  genome := Genome{}
  tracks := make(map[string]StrandedTracks)
  for _, ref := range br.Header().Refs() {
    genome.Seqnames = append(genome.Seqnames, ref.Name())
    genome.Lengths  = append(genome.Lengths,  ref.Len())
    tracks[ref.Name()] = StrandedTracks{
      AllocCoverageTrack(ref.Len()),
      AllocCoverageTrack(ref.Len()) }
  }
  for {
    r, err := br.Read()
    if err == io.EOF {
      break
    }
    if err != nil {
      return nil, Genome{}, err
    }
    if r.Flags&sam.Unmapped != 0 || r.Ref == nil {
      continue
    }
    t, ok := tracks[r.Ref.Name()]
    if !ok {
      continue
    }
    seq := t.Forward
    if r.Flags&sam.Reverse != 0 {
      seq = t.Reverse
    }
    pos := r.Pos
    for _, co := range r.Cigar {
      n := co.Len()
      switch co.Type() {
      case sam.CigarMatch, sam.CigarEqual, sam.CigarMismatch, sam.CigarDeletion:
        for j := pos; j < pos+n && j < len(seq); j++ {
          if j >= 0 {
            seq[j] += 1.0
          }
        }
      }
      if co.Type().Consumes().Reference != 0 {
        pos += n
      }
    }
  }
  return tracks, genome, nil
}

func ImportBamCoverage(filename string) (map[string]StrandedTracks, Genome, error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, Genome{}, err
  }
  defer f.Close()

  tracks, genome, err := ReadBamCoverage(f)
  if err != nil {
    return nil, Genome{}, fmt.Errorf("reading bam file `%s' failed: %v", filename, err)
  }
  return tracks, genome, nil
}
