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
import "io/ioutil"
import "math"
import "path/filepath"
import "strings"
import "testing"

import "github.com/biogo/biogo/io/featio"
import "github.com/biogo/biogo/io/featio/gff"

/* -------------------------------------------------------------------------- */

func testPeaks() []AnalysisRegionPeaks {
  return []AnalysisRegionPeaks{
    AnalysisRegionPeaks{
      Contig: "chr1",
      Region: Interval{100, 200},
      Norms : []float64{1, 3},
      Peaks : []Peak{
        Peak{Interval{10, 20}, AnnotationMap{AnnotationEnrichmentRatio: 2.5, AnnotationBindsAt: 115}},
        Peak{Interval{50, 60}, AnnotationMap{AnnotationEnrichmentRatio: 4, AnnotationBindsAt: 154}} } } }
}

/* -------------------------------------------------------------------------- */

func TestExportGFF1(t *testing.T) {
  buffer := new(bytes.Buffer)
  if err := WritePeaksGFF(buffer, testPeaks()); err != nil {
    t.Fatal(err)
  }
  features := []*gff.Feature{}
  sc := featio.NewScanner(gff.NewReader(buffer))
  for sc.Next() {
    if f, ok := sc.Feat().(*gff.Feature); ok {
      features = append(features, f)
    }
  }
  if err := sc.Error(); err != nil {
    t.Fatal(err)
  }
  if len(features) != 2 {
    t.Fatalf("TestExportGFF1 failed: %d features", len(features))
  }
  f := features[1]
  if f.SeqName != "chr1" || f.Source != PeakSource || f.Feature != PeakFeature {
    t.Errorf("TestExportGFF1 failed: %v", f)
  }
  if f.FeatStart != 150 || f.FeatEnd != 160 {
    t.Errorf("TestExportGFF1 failed: [%d %d)", f.FeatStart, f.FeatEnd)
  }
  if f.FeatScore == nil || *f.FeatScore != 4 {
    t.Errorf("TestExportGFF1 failed: %v", f.FeatScore)
  }
}

func TestExportTables1(t *testing.T) {
  buffer := new(bytes.Buffer)
  if err := WriteQP(buffer, testPeaks()); err != nil {
    t.Fatal(err)
  }
  if s := buffer.String(); s != "sequence\tstrand\tposition\tvalue\nchr1\t.\t115\t2.5\nchr1\t.\t154\t4\n" {
    t.Errorf("TestExportTables1 failed: %s", s)
  }
  buffer.Reset()
  if err := WritePeakTSV(buffer, testPeaks()); err != nil {
    t.Fatal(err)
  }
  lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
  if len(lines) != 3 || lines[1] != "chr1\t110\t120\t115\t2.5\t2\t1\t1\t3" {
    t.Errorf("TestExportTables1 failed: %v", lines)
  }
  buffer.Reset()
  if err := WriteBookmarks(buffer, testPeaks(), "ArcA"); err != nil {
    t.Fatal(err)
  }
  lines = strings.Split(strings.TrimSpace(buffer.String()), "\n")
  if len(lines) != 4 || lines[0] != ">name: Pique bookmarks for ArcA" {
    t.Fatalf("TestExportTables1 failed: %v", lines)
  }
  if lines[2] != "chr1\t110\t120\tnone\tpeak\tbinds_at:115 enrichment_ratio:2.5" {
    t.Errorf("TestExportTables1 failed: %v", lines[2])
  }
}

func TestExportLake1(t *testing.T) {
  curves := LakeCurves{
    Levels    : []float64{10, 5, 0},
    Foreground: []int{1, 3, 2},
    Background: []int{0, 1, 1} }
  filename := filepath.Join(t.TempDir(), "test.lake.tsv.gz")
  if err := ExportLakeTable(filename, []string{"chr1"}, []LakeCurves{curves}); err != nil {
    t.Fatal(err)
  }
  f, err := openFile(filename)
  if err != nil {
    t.Fatal(err)
  }
  defer f.Close()
  b, err := ioutil.ReadAll(f)
  if err != nil {
    t.Fatal(err)
  }
  expected := "contig\titeration\tlevel\tforeground\tbackground\n" +
    "chr1\t0\t10\t1\t0\n" +
    "chr1\t1\t5\t3\t1\n" +
    "chr1\t2\t0\t2\t1\n"
  if string(b) != expected {
    t.Errorf("TestExportLake1 failed: %s", string(b))
  }
  if err := ExportLakeTable(filename, []string{"chr1", "chr2"}, []LakeCurves{curves}); err == nil {
    t.Error("TestExportLake1 failed!")
  }
}

func TestAnalysisRegionPeaks1(t *testing.T) {
  r := testPeaks()[0]
  if r.NormMean() != 2 || r.NormStd() != 1 {
    t.Errorf("TestAnalysisRegionPeaks1 failed: %v %v", r.NormMean(), r.NormStd())
  }
  r.Norms = nil
  if !math.IsNaN(r.NormMean()) || !math.IsNaN(r.NormStd()) {
    t.Error("TestAnalysisRegionPeaks1 failed!")
  }
  lines := strings.Split(r.String(), "\n")
  if len(lines) != 3 {
    t.Fatalf("TestAnalysisRegionPeaks1 failed: %v", lines)
  }
  // absolute coordinates
  if fields := strings.Fields(lines[2]); len(fields) < 5 || fields[1] != "chr1" || fields[2] != "[" || fields[3] != "150," || fields[4] != "160)" {
    t.Errorf("TestAnalysisRegionPeaks1 failed: %v", lines[2])
  }
}
