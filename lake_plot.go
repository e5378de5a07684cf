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

import "gonum.org/v1/plot"
import "gonum.org/v1/plot/plotter"
import "gonum.org/v1/plot/plotutil"
import "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

func (curves LakeCurves) xys() (plotter.XYs, plotter.XYs) {
  fg := make(plotter.XYs, curves.Length())
  bg := make(plotter.XYs, curves.Length())
  for i := 0; i < curves.Length(); i++ {
    fg[i].X = curves.Levels[i]
    fg[i].Y = float64(curves.Foreground[i])
    bg[i].X = curves.Levels[i]
    bg[i].Y = float64(curves.Background[i])
  }
  return fg, bg
}

// Plot foreground and background peak counts against the threshold
// level. The file format is determined by the file name extension.
func PlotLakeCurves(filename, title string, curves LakeCurves) error {
  if curves.Length() == 0 {
    return fmt.Errorf("lake curves are empty")
  }
  fg, bg := curves.xys()

  p := plot.New()
  p.Title.Text   = title
  p.X.Label.Text = "threshold level"
  p.Y.Label.Text = "peaks"

  if err := plotutil.AddLinePoints(p, "ChIP", fg, "background", bg); err != nil {
    return err
  }
  if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
    return fmt.Errorf("saving plot `%s' failed: %v", filename, err)
  }
  return nil
}
