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

import "bufio"
import "fmt"
import "io"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Parse masking loci. Each line contains an interval given by the first
// two whitespace separated fields (start and stop). Lines containing a
// `#' at any position are skipped entirely, as are empty lines and
// empty intervals.
func ReadMaskingLoci(reader io.Reader) ([]Interval, error) {
  masks   := []Interval{}
  scanner := bufio.NewScanner(reader)
  for i := 1; scanner.Scan(); i++ {
    line := scanner.Text()
    if strings.Contains(line, "#") {
      continue
    }
    fields := strings.Fields(line)
    if len(fields) == 0 {
      continue
    }
    if len(fields) < 2 {
      return nil, fmt.Errorf("invalid masking loci (line %d): expected start and stop", i)
    }
    t1, e1 := strconv.ParseInt(fields[0], 10, 64)
    if e1 != nil {
      return nil, fmt.Errorf("invalid masking loci (line %d): %v", i, e1)
    }
    t2, e2 := strconv.ParseInt(fields[1], 10, 64)
    if e2 != nil {
      return nil, fmt.Errorf("invalid masking loci (line %d): %v", i, e2)
    }
    // empty intervals mask nothing
    if t1 >= t2 {
      continue
    }
    r, err := NewInterval(int(t1), int(t2))
    if err != nil {
      return nil, fmt.Errorf("invalid masking loci (line %d): %v", i, err)
    }
    masks = append(masks, r)
  }
  if err := scanner.Err(); err != nil {
    return nil, err
  }
  return masks, nil
}

func ImportMaskingLoci(filename string) ([]Interval, error) {
  f, err := openFile(filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()

  masks, err := ReadMaskingLoci(f)
  if err != nil {
    return nil, fmt.Errorf("reading masking loci `%s' failed: %v", filename, err)
  }
  return masks, nil
}
