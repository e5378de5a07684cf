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
import "strings"

import "github.com/biogo/biogo/io/featio/gff"
import "github.com/biogo/biogo/seq"

/* -------------------------------------------------------------------------- */

const PeakSource  = "Pique-1.0"
const PeakFeature = "peak"

func formatValue(v float64) string {
  return fmt.Sprintf("%v", v)
}

/* -------------------------------------------------------------------------- */

// Write peaks in GFF format. The score column holds the enrichment ratio.
func WritePeaksGFF(writer io.Writer, peaks []AnalysisRegionPeaks) error {
  w := gff.NewWriter(writer, 60, true)
  for _, ar := range peaks {
    for _, p := range ar.Peaks {
      a  := p.Absolute(ar.Region)
      er := p.Annotations.EnrichmentRatio()
      f  := &gff.Feature{
        SeqName   : ar.Contig,
        Source    : PeakSource,
        Feature   : PeakFeature,
        FeatStart : a.Start,
        FeatEnd   : a.Stop,
        FeatScore : &er,
        FeatStrand: seq.None,
        FeatFrame : gff.NoFrame }
      if _, err := w.Write(f); err != nil {
        return err
      }
    }
  }
  return nil
}

// Write a quantitative positional file of estimated binding coordinates.
func WriteQP(writer io.Writer, peaks []AnalysisRegionPeaks) error {
  if _, err := fmt.Fprintf(writer, "sequence\tstrand\tposition\tvalue\n"); err != nil {
    return err
  }
  for _, ar := range peaks {
    for _, p := range ar.Peaks {
      if _, err := fmt.Fprintf(writer, "%s\t.\t%s\t%s\n", ar.Contig,
        formatValue(p.Annotations.BindsAt()),
        formatValue(p.Annotations.EnrichmentRatio())); err != nil {
        return err
      }
    }
  }
  return nil
}

// Write a table of peaks with binding coordinates, enrichment ratios, and
// the normalization samples of the contig.
func WritePeakTSV(writer io.Writer, peaks []AnalysisRegionPeaks) error {
  if _, err := fmt.Fprintf(writer, "contig\tstart\tstop\tbinds_at\tenrichment_ratio\taverage_contig_norm\tstd_contig_norm\n"); err != nil {
    return err
  }
  for _, ar := range peaks {
    norms := make([]string, len(ar.Norms))
    for i, v := range ar.Norms {
      norms[i] = formatValue(v)
    }
    for _, p := range ar.Peaks {
      a      := p.Absolute(ar.Region)
      fields := []string{
        ar.Contig,
        fmt.Sprintf("%d", a.Start),
        fmt.Sprintf("%d", a.Stop),
        formatValue(p.Annotations.BindsAt()),
        formatValue(p.Annotations.EnrichmentRatio()),
        formatValue(ar.NormMean()),
        formatValue(ar.NormStd()) }
      fields = append(fields, norms...)
      if _, err := fmt.Fprintf(writer, "%s\n", strings.Join(fields, "\t")); err != nil {
        return err
      }
    }
  }
  return nil
}

// Write a bookmark file. Each peak is followed by all its annotations.
func WriteBookmarks(writer io.Writer, peaks []AnalysisRegionPeaks, name string) error {
  if _, err := fmt.Fprintf(writer, ">name: Pique bookmarks for %s\n", name); err != nil {
    return err
  }
  if _, err := fmt.Fprintf(writer, "Chromosome\tStart\tEnd\tStrand\tName\tAnnotation\n"); err != nil {
    return err
  }
  for _, ar := range peaks {
    for _, p := range ar.Peaks {
      a := p.Absolute(ar.Region)
      annotations := []string{}
      for _, key := range sortedKeys(p.Annotations) {
        annotations = append(annotations, fmt.Sprintf("%s:%s", key, formatValue(p.Annotations[key])))
      }
      if _, err := fmt.Fprintf(writer, "%s\t%d\t%d\tnone\tpeak\t%s\n", ar.Contig, a.Start, a.Stop,
        strings.Join(annotations, " ")); err != nil {
        return err
      }
    }
  }
  return nil
}

// Write lake curves of a contig as a table with one row per iteration.
func WriteLakeTable(writer io.Writer, contig string, curves LakeCurves) error {
  for i := 0; i < curves.Length(); i++ {
    if _, err := fmt.Fprintf(writer, "%s\t%d\t%s\t%d\t%d\n", contig, i,
      formatValue(curves.Levels[i]), curves.Foreground[i], curves.Background[i]); err != nil {
      return err
    }
  }
  return nil
}

func WriteLakeTableHeader(writer io.Writer) error {
  _, err := fmt.Fprintf(writer, "contig\titeration\tlevel\tforeground\tbackground\n")
  return err
}

/* -------------------------------------------------------------------------- */

func ExportPeaksGFF(filename string, peaks []AnalysisRegionPeaks) error {
  return writeFile(filename, func(w io.Writer) error {
    return WritePeaksGFF(w, peaks)
  })
}

func ExportQP(filename string, peaks []AnalysisRegionPeaks) error {
  return writeFile(filename, func(w io.Writer) error {
    return WriteQP(w, peaks)
  })
}

func ExportPeakTSV(filename string, peaks []AnalysisRegionPeaks) error {
  return writeFile(filename, func(w io.Writer) error {
    return WritePeakTSV(w, peaks)
  })
}

func ExportBookmarks(filename string, peaks []AnalysisRegionPeaks, name string) error {
  return writeFile(filename, func(w io.Writer) error {
    return WriteBookmarks(w, peaks, name)
  })
}

func ExportTrackTable(filename string, genome Genome, tracks map[string]StrandedTracks) error {
  return writeFile(filename, func(w io.Writer) error {
    return WriteTrackTable(w, genome, tracks)
  })
}

// Export lake curves of several contigs, given in the order of contigs.
func ExportLakeTable(filename string, contigs []string, curves []LakeCurves) error {
  if len(contigs) != len(curves) {
    return fmt.Errorf("number of contigs and lake curves do not match")
  }
  return writeFile(filename, func(w io.Writer) error {
    if err := WriteLakeTableHeader(w); err != nil {
      return err
    }
    for i := range contigs {
      if err := WriteLakeTable(w, contigs[i], curves[i]); err != nil {
        return err
      }
    }
    return nil
  })
}
