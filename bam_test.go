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
import "testing"

import "github.com/biogo/hts/bam"
import "github.com/biogo/hts/sam"

/* -------------------------------------------------------------------------- */

func newTestBam(t *testing.T) *bytes.Buffer {
  ref, err := sam.NewReference("chr1", "", "", 20, nil, nil)
  if err != nil {
    t.Fatal(err)
  }
  header, err := sam.NewHeader(nil, []*sam.Reference{ref})
  if err != nil {
    t.Fatal(err)
  }
  buffer := new(bytes.Buffer)
  bw, err := bam.NewWriter(buffer, header, 1)
  if err != nil {
    t.Fatal(err)
  }
  newRecord := func(name string, pos int, cigar []sam.CigarOp, seq string, flags sam.Flags) {
    qual := bytes.Repeat([]byte{30}, len(seq))
    r, err := sam.NewRecord(name, ref, nil, pos, -1, 0, 60, cigar, []byte(seq), qual, nil)
    if err != nil {
      t.Fatal(err)
    }
    r.Flags = flags
    if err := bw.Write(r); err != nil {
      t.Fatal(err)
    }
  }
  newRecord("r1", 2,
    []sam.CigarOp{sam.NewCigarOp(sam.CigarMatch, 4)}, "ACGT", 0)
  newRecord("r2", 10,
    []sam.CigarOp{
      sam.NewCigarOp(sam.CigarMatch,    2),
      sam.NewCigarOp(sam.CigarDeletion, 1),
      sam.NewCigarOp(sam.CigarMatch,    2)}, "ACGT", sam.Reverse)
  newRecord("r3", 10,
    []sam.CigarOp{
      sam.NewCigarOp(sam.CigarSoftClipped, 1),
      sam.NewCigarOp(sam.CigarMatch,       2),
      sam.NewCigarOp(sam.CigarDeletion,    1),
      sam.NewCigarOp(sam.CigarMatch,       2)}, "AACGT", sam.Reverse)
  if err := bw.Close(); err != nil {
    t.Fatal(err)
  }
  return buffer
}

/* -------------------------------------------------------------------------- */

func TestBamCoverage1(t *testing.T) {
  tracks, genome, err := ReadBamCoverage(newTestBam(t))
  if err != nil {
    t.Fatal(err)
  }
  if n, err := genome.SeqLength("chr1"); err != nil || n != 20 {
    t.Fatalf("TestBamCoverage1 failed: %v", genome)
  }
  forward := AllocCoverageTrack(20)
  reverse := AllocCoverageTrack(20)
  for i := 2; i < 6; i++ {
    forward[i] = 1
  }
  for i := 10; i < 15; i++ {
    reverse[i] = 2
  }
  if !equalTracks(tracks["chr1"].Forward, forward) {
    t.Errorf("TestBamCoverage1 failed: %v", tracks["chr1"].Forward)
  }
  if !equalTracks(tracks["chr1"].Reverse, reverse) {
    t.Errorf("TestBamCoverage1 failed: %v", tracks["chr1"].Reverse)
  }
}

func TestBamCoverage2(t *testing.T) {
  if _, _, err := ReadBamCoverage(bytes.NewReader([]byte("not a bam file"))); err == nil {
    t.Error("TestBamCoverage2 failed!")
  }
}
