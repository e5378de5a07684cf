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
import "bytes"
import "fmt"
import "io"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Structure containing contig sizes.
type Genome struct {
  Seqnames []string
  Lengths  []int
}

/* constructor
 * -------------------------------------------------------------------------- */

func NewGenome(seqnames []string, lengths []int) (Genome, error) {
  if len(seqnames) != len(lengths) {
    return Genome{}, fmt.Errorf("number of sequence names and lengths do not match")
  }
  return Genome{seqnames, lengths}, nil
}

/* -------------------------------------------------------------------------- */

// Number of contigs in the structure.
func (genome Genome) Length() int {
  return len(genome.Seqnames)
}

// Length of the given contig. Returns an error if the contig
// is not found.
func (genome Genome) SeqLength(seqname string) (int, error) {
  for i, s := range genome.Seqnames {
    if seqname == s {
      return genome.Lengths[i], nil
    }
  }
  return 0, fmt.Errorf("sequence `%s' not found", seqname)
}

// Union of two genomes. If a contig is present in both, the larger
// length is kept.
func (genome Genome) Merge(other Genome) Genome {
  seqnames := append([]string{}, genome.Seqnames...)
  lengths  := append([]int   {}, genome.Lengths ...)
  for j, name := range other.Seqnames {
    found := false
    for i := 0; i < len(seqnames); i++ {
      if seqnames[i] == name {
        lengths[i] = iMax(lengths[i], other.Lengths[j])
        found      = true
        break
      }
    }
    if !found {
      seqnames = append(seqnames, name)
      lengths  = append(lengths,  other.Lengths[j])
    }
  }
  return Genome{seqnames, lengths}
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (genome Genome) String() string {
  var buffer bytes.Buffer

  printRow := func(i int) {
    if i != 0 {
      buffer.WriteString("\n")
    }
    buffer.WriteString(
      fmt.Sprintf("%10s %10d",
        genome.Seqnames[i],
        genome.Lengths [i]))
  }

  // pring header
  buffer.WriteString(
    fmt.Sprintf("%10s %10s\n", "seqnames", "lengths"))

  for i := 0; i < genome.Length(); i++ {
    printRow(i)
  }
  return buffer.String()
}

/* i/o
 * -------------------------------------------------------------------------- */

// Import contig sizes from a UCSC text file. The format is a whitespace
// separated table where the first column is the name of the contig and
// the second column its length.
func (genome *Genome) Read(reader io.Reader) error {
  seqnames := []string{}
  lengths  := []int{}

  scanner := bufio.NewScanner(reader)
  for i := 1; scanner.Scan(); i++ {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) < 2 {
      return fmt.Errorf("invalid genome file (line %d)", i)
    }
    t, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      return fmt.Errorf("invalid genome file (line %d): %v", i, err)
    }
    seqnames = append(seqnames, fields[0])
    lengths  = append(lengths,  int(t))
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  genome.Seqnames = seqnames
  genome.Lengths  = lengths
  return nil
}

func (genome *Genome) Import(filename string) error {
  f, err := openFile(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  if err := genome.Read(f); err != nil {
    return fmt.Errorf("reading genome `%s' failed: %v", filename, err)
  }
  return nil
}
