package icplace

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// CSVHeader is the first line of a cell positions file.
const CSVHeader = "x,y,z,type"

// SaveMode selects what [Save] does with an existing file.
type SaveMode int

const (
	Overwrite SaveMode = iota
	// Append adds rows to an existing positions file. The file's first line
	// must contain [CSVHeader].
	Append
)

// ParseSaveMode accepts "overwrite" and "append"; the empty string is Overwrite.
func ParseSaveMode(s string) (SaveMode, error) {
	switch strings.ToLower(s) {
	case "", "overwrite":
		return Overwrite, nil
	case "append":
		return Append, nil
	}
	return 0, fmt.Errorf("unknown save mode %q", s)
}

// TypeLabel renders a cell type for the type column.
type TypeLabel func(cellType string) string

// TypeName writes cell types by name.
func TypeName(cellType string) string { return cellType }

// TypeIndex writes cell types by their position in names. Unknown types are
// written by name.
func TypeIndex(names []string) TypeLabel {
	idx := make(map[string]string, len(names))
	for i, n := range names {
		idx[n] = strconv.Itoa(i)
	}
	return func(cellType string) string {
		if s, ok := idx[cellType]; ok {
			return s
		}
		return cellType
	}
}

// WriteCSV writes one x,y,z,type row per placed cell. The header is written
// only if header is true.
func WriteCSV(w io.Writer, batches []Batch, label TypeLabel, header bool) error {
	if label == nil {
		label = TypeName
	}
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(strings.Split(CSVHeader, ",")); err != nil {
			return err
		}
	}
	row := make([]string, 4)
	for _, b := range batches {
		row[3] = label(b.CellType)
		for _, p := range b.Points {
			row[0] = formatCoord(p.X)
			row[1] = formatCoord(p.Y)
			row[2] = formatCoord(p.Z)
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Save writes the batches to path. In [Append] mode an existing file must
// start with the positions header, otherwise nothing is written and the
// error wraps [ErrAppendFormat]; a missing file is created as in [Overwrite].
func Save(path string, mode SaveMode, batches []Batch, label TypeLabel) error {
	if mode == Append {
		tail, err := checkAppendable(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// fall through to a fresh file
		case err != nil:
			return err
		default:
			return appendRows(path, tail, batches, label)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, batches, label, true); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// checkAppendable verifies the header of an existing file and returns its
// last byte, or 0 if it is empty.
func checkAppendable(path string) (byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	first, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, err
	}
	if !strings.Contains(first, CSVHeader) {
		return 0, fmt.Errorf("%w: %s does not start with %q", ErrAppendFormat, path, CSVHeader)
	}
	fi, err := f.Stat()
	if err != nil {
		return 0, err
	}
	if fi.Size() == 0 {
		return 0, nil
	}
	var last [1]byte
	if _, err := f.ReadAt(last[:], fi.Size()-1); err != nil {
		return 0, err
	}
	return last[0], nil
}

func appendRows(path string, tail byte, batches []Batch, label TypeLabel) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if tail != 0 && tail != '\n' {
		w.WriteByte('\n')
	}
	if err := WriteCSV(w, batches, label, false); err != nil {
		f.Close()
		return fmt.Errorf("appending to %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
