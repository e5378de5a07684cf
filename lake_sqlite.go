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

import "database/sql"
import "fmt"

import _ "github.com/mattn/go-sqlite3"

/* -------------------------------------------------------------------------- */

const resultsSchema = `
CREATE TABLE IF NOT EXISTS lake (
  track      TEXT    NOT NULL,
  contig     TEXT    NOT NULL,
  iteration  INTEGER NOT NULL,
  level      REAL    NOT NULL,
  foreground INTEGER NOT NULL,
  background INTEGER NOT NULL,
  PRIMARY KEY (track, contig, iteration)
);
CREATE TABLE IF NOT EXISTS peaks (
  track            TEXT    NOT NULL,
  contig           TEXT    NOT NULL,
  start            INTEGER NOT NULL,
  stop             INTEGER NOT NULL,
  binds_at         REAL    NOT NULL,
  enrichment_ratio REAL    NOT NULL
);
`

// SQLite database receiving lake curves and peaks of one or more
// analyses.
type ResultsDB struct {
  db *sql.DB
}

func OpenResultsDB(filename string) (*ResultsDB, error) {
  db, err := sql.Open("sqlite3", filename)
  if err != nil {
    return nil, fmt.Errorf("opening results database `%s' failed: %v", filename, err)
  }
  // sqlite serializes writers, and each connection to `:memory:' would
  // see a different database
  db.SetMaxOpenConns(1)
  if _, err := db.Exec(resultsSchema); err != nil {
    db.Close()
    return nil, fmt.Errorf("initializing results database `%s' failed: %v", filename, err)
  }
  return &ResultsDB{db}, nil
}

func (r *ResultsDB) Close() error {
  return r.db.Close()
}

/* -------------------------------------------------------------------------- */

func (r *ResultsDB) transaction(f func(tx *sql.Tx) error) error {
  tx, err := r.db.Begin()
  if err != nil {
    return err
  }
  if err := f(tx); err != nil {
    tx.Rollback()
    return err
  }
  return tx.Commit()
}

// Store lake curves of a contig. Existing curves of the same track and
// contig are replaced.
func (r *ResultsDB) InsertLakeCurves(track, contig string, curves LakeCurves) error {
  return r.transaction(func(tx *sql.Tx) error {
    if _, err := tx.Exec("DELETE FROM lake WHERE track = ? AND contig = ?", track, contig); err != nil {
      return err
    }
    stmt, err := tx.Prepare("INSERT INTO lake (track, contig, iteration, level, foreground, background) VALUES (?, ?, ?, ?, ?, ?)")
    if err != nil {
      return err
    }
    defer stmt.Close()
    for i := 0; i < curves.Length(); i++ {
      if _, err := stmt.Exec(track, contig, i, curves.Levels[i], curves.Foreground[i], curves.Background[i]); err != nil {
        return err
      }
    }
    return nil
  })
}

func (r *ResultsDB) InsertPeaks(track string, peaks []AnalysisRegionPeaks) error {
  return r.transaction(func(tx *sql.Tx) error {
    stmt, err := tx.Prepare("INSERT INTO peaks (track, contig, start, stop, binds_at, enrichment_ratio) VALUES (?, ?, ?, ?, ?, ?)")
    if err != nil {
      return err
    }
    defer stmt.Close()
    for _, ar := range peaks {
      for _, p := range ar.Peaks {
        a := p.Absolute(ar.Region)
        if _, err := stmt.Exec(track, ar.Contig, a.Start, a.Stop,
          p.Annotations.BindsAt(), p.Annotations.EnrichmentRatio()); err != nil {
          return err
        }
      }
    }
    return nil
  })
}

// Retrieve lake curves of a contig ordered by iteration.
func (r *ResultsDB) LakeCurves(track, contig string) (LakeCurves, error) {
  rows, err := r.db.Query("SELECT level, foreground, background FROM lake WHERE track = ? AND contig = ? ORDER BY iteration", track, contig)
  if err != nil {
    return LakeCurves{}, err
  }
  defer rows.Close()

  curves := LakeCurves{}
  for rows.Next() {
    var level float64
    var fg, bg int
    if err := rows.Scan(&level, &fg, &bg); err != nil {
      return LakeCurves{}, err
    }
    curves.Levels     = append(curves.Levels,     level)
    curves.Foreground = append(curves.Foreground, fg)
    curves.Background = append(curves.Background, bg)
  }
  return curves, rows.Err()
}

func (r *ResultsDB) CountPeaks(track string) (int, error) {
  n := 0
  err := r.db.QueryRow("SELECT COUNT(*) FROM peaks WHERE track = ?", track).Scan(&n)
  return n, err
}
