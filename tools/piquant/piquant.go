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


package main

/* -------------------------------------------------------------------------- */

import   "errors"
import   "fmt"
import   "os"

import   "github.com/fatih/color"
import   "github.com/pborman/getopt"
import   "github.com/sirupsen/logrus"

import . "github.com/pbenner/pique"

/* -------------------------------------------------------------------------- */

type Session struct {
  Config
  Log *logrus.Logger
}

/* -------------------------------------------------------------------------- */

func (session Session) step(msg string, f func() error) {
  session.Log.Info(msg)
  if err := f(); err != nil {
    session.Log.Debug(color.New(color.FgRed).Sprint("failed"))
    session.Log.Fatal(err)
  }
  session.Log.Debug(color.New(color.FgGreen).Sprint("done"))
}

func (session Session) filename(suffix string) string {
  return fmt.Sprintf("%s.%s", session.OutputPrefix, suffix)
}

/* -------------------------------------------------------------------------- */

func loadData(session Session) *Data {
  data   := NewData()
  genome := Genome{}
  if session.Genome != "" {
    session.step(fmt.Sprintf("reading genome `%s'...", session.Genome), func() error {
      return genome.Import(session.Genome)
    })
  }
  session.step("reading track data...", func() error {
    files := TrackFiles{
      IPForward: session.ForwardChIPTrack,
      IPReverse: session.ReverseChIPTrack,
      BGForward: session.ForwardBgndTrack,
      BGReverse: session.ReverseBgndTrack }
    ip, bg, err := ImportTrackFiles(files, genome)
    if err != nil {
      return err
    }
    return data.LoadData(ip, bg)
  })
  session.Log.Debugf("contigs:\n%v", data.Genome())
  return data
}

func applyMasks(session Session, data *Data) RegionDescription {
  desc := NewRegionDescription()
  session.step("applying mask...", func() error {
    masks, err := ImportMaskingLoci(session.MaskingLoci)
    if err != nil {
      return err
    }
    if err := data.MaskAll(masks); err != nil {
      return err
    }
    if session.RegionsFile != "" {
      if err := desc.Import(session.RegionsFile); err != nil {
        return err
      }
      return data.ApplyRegionDescription(desc)
    }
    return nil
  })
  return desc
}

func runFilters(session Session, data *Data) {
  session.step("running filters...", func() error {
    for _, name := range data.Contigs() {
      if _, err := data.FilterData(name, session.WindowLength, session.LThresh); err != nil {
        return err
      }
    }
    return nil
  })
}

func runLake(session Session, data *Data, db *ResultsDB) {
  contigs := data.Contigs()
  curves  := make([]LakeCurves, len(contigs))
  session.step("running evaporating lake...", func() error {
    for i, name := range contigs {
      iterations, err := data.EvaporatingLake(name, LakeConfig{
        Steps  : session.Steps,
        Threads: session.Threads,
        Logger : session.Log })
      if err != nil {
        return err
      }
      curves[i] = NewLakeCurves(iterations)
    }
    return nil
  })
  session.step("writing lake curves...", func() error {
    if err := ExportLakeTable(session.filename("lake.tsv"), contigs, curves); err != nil {
      return err
    }
    for i, name := range contigs {
      if session.Plot {
        title := fmt.Sprintf("%s (%s)", session.TrackName, name)
        if err := PlotLakeCurves(session.filename(name+".lake.pdf"), title, curves[i]); err != nil {
          return err
        }
      }
      if db != nil {
        if err := db.InsertLakeCurves(session.TrackName, name, curves[i]); err != nil {
          return err
        }
      }
    }
    return nil
  })
}

func callPeaks(session Session, data *Data, desc RegionDescription, db *ResultsDB) {
  peaks := []AnalysisRegionPeaks{}
  session.step("calling peaks...", func() error {
    config := PeakConfig{
      Threshold: session.PeakThreshold,
      TooBig   : session.TooBig,
      TooSmall : session.TooSmall,
      Norms    : desc.Norms }
    for _, name := range data.Contigs() {
      r, err := data.CallPeaks(name, config)
      if err != nil {
        return err
      }
      for _, ar := range r {
        session.Log.Debugf("peaks in region %v:\n%v", ar.Region, ar)
      }
      peaks = append(peaks, r...)
    }
    return nil
  })
  session.step("writing peaks...", func() error {
    tracks := make(map[string]StrandedTracks)
    for _, name := range data.Contigs() {
      contig, err := data.Contig(name)
      if err != nil {
        return err
      }
      tracks[name] = contig.IP
    }
    if err := ExportPeaksGFF(session.filename("gff"), peaks); err != nil {
      return err
    }
    if err := ExportQP(session.filename("qp"), peaks); err != nil {
      return err
    }
    if err := ExportPeakTSV(session.filename("peaks.tsv"), peaks); err != nil {
      return err
    }
    if err := ExportBookmarks(session.filename("bookmarks"), peaks, session.TrackName); err != nil {
      return err
    }
    if err := ExportTrackTable(session.filename("track"), data.Genome(), tracks); err != nil {
      return err
    }
    if db != nil {
      return db.InsertPeaks(session.TrackName, peaks)
    }
    return nil
  })
  n := 0
  for _, r := range peaks {
    n += len(r.Peaks)
  }
  session.Log.WithField("peaks", n).Info("finished")
}

/* -------------------------------------------------------------------------- */

func piquant(session Session) {
  var db *ResultsDB
  if session.ResultsDB != "" {
    session.step(fmt.Sprintf("opening results database `%s'...", session.ResultsDB), func() error {
      r, err := OpenResultsDB(session.ResultsDB)
      db = r
      return err
    })
    defer db.Close()
  }
  data := loadData(session)
  desc := applyMasks(session, data)
  runFilters(session, data)
  runLake  (session, data, db)
  callPeaks(session, data, desc, db)
}

/* -------------------------------------------------------------------------- */

func main() {
  log := logrus.New()

  options := getopt.New()

  optVerbose := options.CounterLong("verbose", 'v', "verbose level [-v or -vv]")
  optHelp    := options.   BoolLong("help",    'h', "print help")

  options.SetParameters("<config.yaml>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 1 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  switch {
  case *optVerbose >= 2:
    log.SetLevel(logrus.TraceLevel)
  case *optVerbose == 1:
    log.SetLevel(logrus.DebugLevel)
  default:
    log.SetLevel(logrus.InfoLevel)
  }
  config, err := ReadConfig(options.Args()[0])
  if err != nil {
    if errors.Is(err, ErrConfiguration) {
      fmt.Fprintln(os.Stderr, color.New(color.FgRed).Sprint(err))
      os.Exit(1)
    }
    log.Fatal(err)
  }
  log.WithFields(logrus.Fields{
    "track" : config.TrackName,
    "steps" : config.Steps,
    "window": config.WindowLength }).Debug("configuration")

  piquant(Session{config, log})
}
