// Package mapdesc parses the line-oriented text format that describes a
// board map.
//
// The first line holds "rows,cols". Every following line describes one cell
// in row-major order: a type label (NullCell, NormalCell, PosiCell, NegaCell)
// followed by the flat indices of the cells it links to, all comma separated:
//
//	2,2
//	NormalCell,1
//	NormalCell,0
//	NormalCell,3
//	NormalCell,2
//
// Neighbour lists are kept in source order. NullCell lines never carry
// neighbours; anything after their label is ignored.
package mapdesc

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"boardmap/pkg/engine/world"
)

// ErrFormat is the sentinel matched by every FormatError.
var ErrFormat = errors.New("mapdesc: malformed map description")

// FormatError reports a malformed description. Line is 1-based; the header
// is line 1.
type FormatError struct {
	Line   int
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("mapdesc: line %d: %s", e.Line, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is lets errors.Is match ErrFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func formatErr(line int, err error, reason string, args ...any) *FormatError {
	return &FormatError{Line: line, Reason: fmt.Sprintf(reason, args...), Err: err}
}

// Cell is one parsed cell line.
type Cell struct {
	Type      world.CellType
	Neighbors []int
	Line      int
}

// Description is a fully validated map description.
type Description struct {
	Dims  world.Dims
	Cells []Cell
}

// Parse parses and validates a map description. It never returns a partial
// description together with an error.
func Parse(src string) (*Description, error) {
	lines := splitLines(src)

	dims, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}

	if got, want := len(lines)-1, dims.Size(); got != want {
		return nil, formatErr(len(lines), nil, "expected %d cell lines for a %dx%d grid, found %d",
			want, dims.Rows, dims.Cols, got)
	}

	desc := &Description{
		Dims:  dims,
		Cells: make([]Cell, dims.Size()),
	}
	for i, text := range lines[1:] {
		cell, err := parseCell(text, i+2, dims)
		if err != nil {
			return nil, err
		}
		desc.Cells[i] = cell
	}
	return desc, nil
}

// ParseReader reads r to the end and parses it.
func ParseReader(r io.Reader) (*Description, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "mapdesc: read description")
	}
	return Parse(string(data))
}

// splitLines normalises line endings and drops a single trailing newline.
func splitLines(src string) []string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.TrimSuffix(src, "\n")
	return strings.Split(src, "\n")
}

func parseHeader(text string) (world.Dims, error) {
	h, err := headerParser.ParseString("", text)
	if err != nil {
		return world.Dims{}, formatErr(1, err, "header must be \"rows,cols\"")
	}
	rows, err := strconv.Atoi(h.Rows)
	if err != nil {
		return world.Dims{}, formatErr(1, err, "bad row count %q", h.Rows)
	}
	cols, err := strconv.Atoi(h.Cols)
	if err != nil {
		return world.Dims{}, formatErr(1, err, "bad column count %q", h.Cols)
	}
	dims, err := world.NewDims(rows, cols)
	if err != nil {
		return world.Dims{}, formatErr(1, err, "bad grid size")
	}
	return dims, nil
}

func parseCell(text string, line int, dims world.Dims) (Cell, error) {
	if label, _, _ := strings.Cut(text, ","); strings.TrimSpace(label) == world.LabelEmpty {
		return Cell{Type: world.Empty, Line: line}, nil
	}

	parsed, err := cellParser.ParseString("", text)
	if err != nil {
		return Cell{}, formatErr(line, err, "cell line must be \"Label[,neighbour]*\"")
	}

	cellType, ok := world.ParseCellType(parsed.Label)
	if !ok {
		return Cell{}, formatErr(line, nil, "unknown cell type %q", parsed.Label)
	}

	cell := Cell{Type: cellType, Line: line}
	cell.Neighbors = make([]int, 0, len(parsed.Fields))
	for _, f := range parsed.Fields {
		n, err := strconv.Atoi(f.Value)
		if err != nil {
			return Cell{}, formatErr(line, err, "column %d: neighbour %q is not an integer", f.Pos.Column, f.Value)
		}
		if err := dims.CheckIndex(n); err != nil {
			return Cell{}, formatErr(line, err, "column %d: neighbour %d", f.Pos.Column, n)
		}
		cell.Neighbors = append(cell.Neighbors, n)
	}
	return cell, nil
}

// Cell returns the cell at flat index i.
func (d *Description) Cell(i int) (Cell, error) {
	if err := d.Dims.CheckIndex(i); err != nil {
		return Cell{}, err
	}
	return d.Cells[i], nil
}

// Format writes the description back in canonical form.
func (d *Description) Format(w io.Writer) error {
	_, err := io.WriteString(w, d.String())
	return err
}

func (d *Description) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d,%d\n", d.Dims.Rows, d.Dims.Cols)
	for _, c := range d.Cells {
		sb.WriteString(c.Type.Label())
		for _, n := range c.Neighbors {
			sb.WriteByte(',')
			sb.WriteString(strconv.Itoa(n))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
