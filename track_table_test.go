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
import "os"
import "path/filepath"
import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

const testTrackTable = "sequence\tstrand\tposition\tvalue\n" +
  "chr1\t+\t2\t1\n" +
  "chr1\t+\t2\t2\n" +
  "chr1\t-\t5\t4\n" +
  "# comment\n" +
  "chr2\t.\t9\t1.5\n"

/* -------------------------------------------------------------------------- */

func TestTrackTable1(t *testing.T) {
  forward, err := ReadTrackTable(strings.NewReader(testTrackTable), Forward, Genome{})
  if err != nil {
    t.Fatal(err)
  }
  // lengths are inferred from the strand's records
  if !equalTracks(forward["chr1"], CoverageTrack{0, 0, 3}) {
    t.Errorf("TestTrackTable1 failed: %v", forward["chr1"])
  }
  if len(forward["chr2"]) != 10 || forward["chr2"][9] != 1.5 {
    t.Errorf("TestTrackTable1 failed: %v", forward["chr2"])
  }
  genome, _ := NewGenome([]string{"chr1", "chr2"}, []int{8, 10})
  reverse, err := ReadTrackTable(strings.NewReader(testTrackTable), Reverse, genome)
  if err != nil {
    t.Fatal(err)
  }
  if !equalTracks(reverse["chr1"], CoverageTrack{0, 0, 0, 0, 0, 4, 0, 0}) {
    t.Errorf("TestTrackTable1 failed: %v", reverse["chr1"])
  }
  if reverse["chr2"][9] != 1.5 {
    t.Errorf("TestTrackTable1 failed: %v", reverse["chr2"])
  }
}

func TestTrackTable2(t *testing.T) {
  genome, _ := NewGenome([]string{"chr1"}, []int{4})
  for _, input := range []string{
    "chr1\t+\t2\n",
    "chr1\tx\t2\t1\n",
    "chr1\t+\t-1\t1\n",
    "chr1\t+\t2\tabc\n",
    "chr1\t+\t7\t1\n",
    "chr3\t+\t1\t1\n" } {
    if _, err := ReadTrackTable(strings.NewReader(input), Forward, genome); err == nil {
      t.Errorf("TestTrackTable2 failed for `%s'", strings.TrimSpace(input))
    }
  }
}

func TestTrackTable3(t *testing.T) {
  genome, _ := NewGenome([]string{"chr1"}, []int{6})
  tracks := map[string]StrandedTracks{
    "chr1": {CoverageTrack{0, 1, 0, 2.5, 0, 0}, CoverageTrack{0, 0, 0, 0, 0, 3}} }

  buffer := new(bytes.Buffer)
  if err := WriteTrackTable(buffer, genome, tracks); err != nil {
    t.Fatal(err)
  }
  expected := "sequence\tstrand\tposition\tvalue\n" +
    "chr1\t+\t1\t1\n" +
    "chr1\t+\t3\t2.5\n" +
    "chr1\t-\t5\t3\n"
  if buffer.String() != expected {
    t.Errorf("TestTrackTable3 failed: %s", buffer.String())
  }
  reverse, err := ReadTrackTable(strings.NewReader(buffer.String()), Reverse, genome)
  if err != nil {
    t.Fatal(err)
  }
  if !equalTracks(reverse["chr1"], tracks["chr1"].Reverse) {
    t.Errorf("TestTrackTable3 failed: %v", reverse["chr1"])
  }
}

func TestTrackFiles1(t *testing.T) {
  dir   := t.TempDir()
  files := TrackFiles{
    IPForward: filepath.Join(dir, "ip.forward.track"),
    IPReverse: filepath.Join(dir, "ip.reverse.track"),
    BGForward: filepath.Join(dir, "bg.forward.track"),
    BGReverse: filepath.Join(dir, "bg.reverse.track") }
  content := map[string]string{
    files.IPForward: "chr1\t+\t3\t2\n",
    files.IPReverse: "chr1\t-\t7\t1\n",
    files.BGForward: "chr1\t+\t1\t1\n",
    files.BGReverse: "chr1\t-\t1\t1\nchr2\t-\t4\t1\n" }
  for filename, s := range content {
    if err := os.WriteFile(filename, []byte(s), 0644); err != nil {
      t.Fatal(err)
    }
  }
  ip, bg, err := ImportTrackFiles(files, Genome{})
  if err != nil {
    t.Fatal(err)
  }
  // all tracks share the merged genome
  for _, tracks := range []map[string]StrandedTracks{ip, bg} {
    if n, err := tracks["chr1"].Length(); err != nil || n != 8 {
      t.Errorf("TestTrackFiles1 failed: %v", tracks["chr1"])
    }
    if n, err := tracks["chr2"].Length(); err != nil || n != 5 {
      t.Errorf("TestTrackFiles1 failed: %v", tracks["chr2"])
    }
  }
  if ip["chr1"].Forward[3] != 2 || ip["chr1"].Reverse[7] != 1 || bg["chr2"].Reverse[4] != 1 {
    t.Error("TestTrackFiles1 failed!")
  }
  data := NewData()
  if err := data.LoadData(ip, bg); err != nil {
    t.Error(err)
  }
}
