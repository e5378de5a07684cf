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

import "github.com/pbenner/threadpool"
import "github.com/sirupsen/logrus"

/* -------------------------------------------------------------------------- */

// Result of one threshold level of the evaporating lake scan.
type LakeIteration struct {
  Level              float64
  ForegroundForward  RegionSet
  ForegroundReverse  RegionSet
  ForegroundEnvelope RegionSet
  BackgroundForward  RegionSet
  BackgroundReverse  RegionSet
  BackgroundEnvelope RegionSet
}

type LakeConfig struct {
  // number of steps between the lowest and highest signal value
  Steps   int
  // number of worker threads
  Threads int
  // receives progress observations, may be nil
  Logger  logrus.FieldLogger
}

/* -------------------------------------------------------------------------- */

// Threshold levels of the scan. A linearly spaced sequence from bot to top
// is reflected around top, i.e. level i is top - (bot + i*step) with
// step = (top - bot)/steps. The result has steps+1 elements.
func LakeLevels(top, bot float64, steps int) []float64 {
  if steps < 1 {
    return nil
  }
  step   := (top - bot)/float64(steps)
  levels := make([]float64, steps+1)
  for i := 0; i <= steps; i++ {
    levels[i] = top - (bot + float64(i)*step)
  }
  return levels
}

// Evaluate a single threshold level on filtered foreground (IP) and
// background (BG) tracks.
func LakeLevel(ip, bg StrandedTracks, level float64) LakeIteration {
  r := LakeIteration{Level: level}
  r.ForegroundForward  = FindRegions(ip.Forward, level)
  r.ForegroundReverse  = FindRegions(ip.Reverse, level)
  r.ForegroundEnvelope = Overlaps(r.ForegroundForward, r.ForegroundReverse)
  r.BackgroundForward  = FindRegions(bg.Forward, level)
  r.BackgroundReverse  = FindRegions(bg.Reverse, level)
  r.BackgroundEnvelope = Overlaps(r.BackgroundForward, r.BackgroundReverse)
  return r
}

// Run the evaporating lake algorithm on filtered tracks. The detection
// threshold recedes from the top of the foreground signal, and at each
// level the envelopes of foreground and background are recorded. The
// returned iterations are index-aligned between foreground and background.
func EvaporatingLake(ip, bg StrandedTracks, config LakeConfig) ([]LakeIteration, error) {
  if config.Steps < 1 {
    return nil, fmt.Errorf("invalid number of steps `%d'", config.Steps)
  }
  threads := config.Threads
  if threads < 1 {
    threads = 1
  }
  top := ip.Forward.Max()
  if v := ip.Reverse.Max(); v > top {
    top = v
  }
  bot := ip.Forward.Min()
  if v := ip.Reverse.Min(); v < bot {
    bot = v
  }
  levels := LakeLevels(top, bot, config.Steps)
  result := make([]LakeIteration, len(levels))

  pool := threadpool.New(threads, 100*threads)
  g    := pool.NewJobGroup()

  if err := pool.AddRangeJob(0, len(levels), g, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    // each iteration writes only its own slot
    result[i] = LakeLevel(ip, bg, levels[i])
    if config.Logger != nil && i % 10 == 0 {
      config.Logger.WithFields(logrus.Fields{
        "iteration": i,
        "level"    : levels[i],
        "peaks"    : len(result[i].ForegroundEnvelope),
      }).Info("evaporating lake")
    }
    return nil
  }); err != nil {
    return nil, err
  }
  if err := pool.Wait(g); err != nil {
    return nil, err
  }
  return result, nil
}

/* lake curves
 * -------------------------------------------------------------------------- */

// Number of foreground and background envelopes per threshold level.
type LakeCurves struct {
  Levels     []float64
  Foreground []int
  Background []int
}

func NewLakeCurves(iterations []LakeIteration) LakeCurves {
  n := len(iterations)
  curves := LakeCurves{
    Levels    : make([]float64, n),
    Foreground: make([]int, n),
    Background: make([]int, n) }
  for i, it := range iterations {
    curves.Levels    [i] = it.Level
    curves.Foreground[i] = len(it.ForegroundEnvelope)
    curves.Background[i] = len(it.BackgroundEnvelope)
  }
  return curves
}

func (curves LakeCurves) Length() int {
  return len(curves.Levels)
}
