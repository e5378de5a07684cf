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
import "compress/gzip"
import "io"
import "os"
import "sort"
import "strings"

/* -------------------------------------------------------------------------- */

func iMin(a, b int) int {
  if a < b {
    return a
  } else {
    return b
  }
}

func iMax(a, b int) int {
  if a > b {
    return a
  } else {
    return b
  }
}

// Divide a by b, the result is rounded down.
func divIntDown(a, b int) int {
  return a/b
}

// Divide a by b, the result is rounded up.
func divIntUp(a, b int) int {
  return (a+b-1)/b
}

/* -------------------------------------------------------------------------- */

func sortedKeys(m map[string]float64) []string {
  keys := make([]string, 0, len(m))
  for k := range m {
    keys = append(keys, k)
  }
  sort.Strings(keys)
  return keys
}

/* -------------------------------------------------------------------------- */

// Create a file and pass a buffered writer to f. Output is gzip
// compressed if the file name ends with `.gz'.
func writeFile(filename string, f func(io.Writer) error) error {
  file, err := os.Create(filename)
  if err != nil {
    return err
  }
  defer file.Close()

  buffer := bufio.NewWriter(file)
  if strings.HasSuffix(filename, ".gz") {
    w := gzip.NewWriter(buffer)
    if err := f(w); err != nil {
      return err
    }
    if err := w.Close(); err != nil {
      return err
    }
  } else {
    if err := f(buffer); err != nil {
      return err
    }
  }
  if err := buffer.Flush(); err != nil {
    return err
  }
  return file.Close()
}

func isGzip(filename string) bool {

  f, err := os.Open(filename)
  if err != nil {
    return false
  }
  defer f.Close()

  b := make([]byte, 2)
  n, err := f.Read(b)
  if err != nil {
    return false
  }

  if n == 2 && b[0] == 31 && b[1] == 139 {
    return true
  }
  return false
}

// Open a text file for reading, transparently decompressing gzip input.
func openFile(filename string) (io.ReadCloser, error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  if !isGzip(filename) {
    return f, nil
  }
  g, err := gzip.NewReader(f)
  if err != nil {
    f.Close()
    return nil, err
  }
  return gzipFile{g, f}, nil
}

type gzipFile struct {
  *gzip.Reader
  file *os.File
}

func (obj gzipFile) Close() error {
  obj.Reader.Close()
  return obj.file.Close()
}
