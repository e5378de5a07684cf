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
import "io/ioutil"
import "math"

import "gopkg.in/yaml.v3"

/* -------------------------------------------------------------------------- */

// Runtime parameters of a piquant analysis.
type Config struct {
  Steps            int
  LThresh          float64
  TooBig           float64
  TooSmall         float64
  TrackName        string
  ForwardChIPTrack string
  ReverseChIPTrack string
  ForwardBgndTrack string
  ReverseBgndTrack string
  MaskingLoci      string
  // optional parameters
  WindowLength     int
  PeakThreshold    float64
  RegionsFile      string
  Genome           string
  OutputPrefix     string
  Threads          int
  Plot             bool
  ResultsDB        string
}

func DefaultConfig() Config {
  return Config{
    WindowLength: 300,
    Threads     : 1 }
}

/* -------------------------------------------------------------------------- */

type configReader struct {
  opts map[string]interface{}
}

func (obj configReader) missing(key string) error {
  return fmt.Errorf("%w: config file missing option : %s", ErrConfiguration, key)
}

func (obj configReader) invalid(key, expected string) error {
  return fmt.Errorf("%w: option `%s' must be %s (got `%v')", ErrConfiguration, key, expected, obj.opts[key])
}

func (obj configReader) number(key string, dst *float64, required bool) error {
  v, ok := obj.opts[key]
  if !ok {
    if required {
      return obj.missing(key)
    }
    return nil
  }
  switch x := v.(type) {
  case int:
    *dst = float64(x)
  case float64:
    *dst = x
  default:
    return obj.invalid(key, "numeric")
  }
  return nil
}

func (obj configReader) integer(key string, dst *int, required bool) error {
  v, ok := obj.opts[key]
  if !ok {
    if required {
      return obj.missing(key)
    }
    return nil
  }
  switch x := v.(type) {
  case int:
    *dst = x
  case float64:
    if x != math.Trunc(x) {
      return obj.invalid(key, "an integer")
    }
    *dst = int(x)
  default:
    return obj.invalid(key, "an integer")
  }
  return nil
}

func (obj configReader) str(key string, dst *string, required bool) error {
  v, ok := obj.opts[key]
  if !ok {
    if required {
      return obj.missing(key)
    }
    return nil
  }
  switch x := v.(type) {
  case string:
    *dst = x
  case int, float64:
    *dst = fmt.Sprintf("%v", x)
  default:
    return obj.invalid(key, "a string")
  }
  return nil
}

func (obj configReader) boolean(key string, dst *bool) error {
  v, ok := obj.opts[key]
  if !ok {
    return nil
  }
  if x, ok := v.(bool); !ok {
    return obj.invalid(key, "a boolean")
  } else {
    *dst = x
  }
  return nil
}

/* -------------------------------------------------------------------------- */

// Parse a YAML configuration. Required options are checked in a fixed
// order and the first missing option is reported.
func ParseConfig(b []byte) (Config, error) {
  config := DefaultConfig()
  opts   := make(map[string]interface{})
  if err := yaml.Unmarshal(b, &opts); err != nil {
    return config, fmt.Errorf("%w: %v", ErrConfiguration, err)
  }
  r := configReader{opts}

  for _, err := range []error{
    r.integer("steps",              &config.Steps,            true),
    r.number ("l_thresh",           &config.LThresh,          true),
    r.number ("too_big",            &config.TooBig,           true),
    r.number ("too_small",          &config.TooSmall,         true),
    r.str    ("track_name",         &config.TrackName,        true),
    r.str    ("forward_ChIP_track", &config.ForwardChIPTrack, true),
    r.str    ("forward_bgnd_track", &config.ForwardBgndTrack, true),
    r.str    ("reverse_ChIP_track", &config.ReverseChIPTrack, true),
    r.str    ("masking_loci",       &config.MaskingLoci,      true),
    r.str    ("reverse_bgnd_track", &config.ReverseBgndTrack, true),
    r.integer("window_length",      &config.WindowLength,     false),
    r.number ("peak_threshold",     &config.PeakThreshold,    false),
    r.str    ("regions_file",       &config.RegionsFile,      false),
    r.str    ("genome",             &config.Genome,           false),
    r.str    ("output_prefix",      &config.OutputPrefix,     false),
    r.integer("threads",            &config.Threads,          false),
    r.boolean("plot",               &config.Plot),
    r.str    ("results_db",         &config.ResultsDB,        false) } {
    if err != nil {
      return config, err
    }
  }
  if config.Steps < 1 {
    return config, r.invalid("steps", "a positive integer")
  }
  if config.WindowLength < 1 {
    return config, r.invalid("window_length", "a positive integer")
  }
  if config.Threads < 1 {
    return config, r.invalid("threads", "a positive integer")
  }
  if config.OutputPrefix == "" {
    config.OutputPrefix = config.TrackName
  }
  return config, nil
}

func ReadConfig(filename string) (Config, error) {
  b, err := ioutil.ReadFile(filename)
  if err != nil {
    return DefaultConfig(), err
  }
  return ParseConfig(b)
}
