// Package mapdesc tests parsing of text map descriptions: header, line count,
// labels, neighbour lists and error classification.
package mapdesc

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardmap/pkg/engine/world"
)

const twoByTwo = "2,2\nNormalCell,1\nNormalCell,0\nNormalCell,3\nNormalCell,2"

func TestParse_TwoByTwo(t *testing.T) {
	desc, err := Parse(twoByTwo)
	require.NoError(t, err)

	assert.Equal(t, world.Dims{Rows: 2, Cols: 2}, desc.Dims)
	require.Len(t, desc.Cells, 4)
	want := [][]int{{1}, {0}, {3}, {2}}
	for i, c := range desc.Cells {
		assert.Equal(t, world.Normal, c.Type, "cell %d type", i)
		assert.Equal(t, want[i], c.Neighbors, "cell %d neighbours", i)
		assert.Equal(t, i+2, c.Line, "cell %d line", i)
	}
}

func TestParse_VertexCountMatchesDims(t *testing.T) {
	srcs := []string{
		"1,1\nNormalCell",
		"1,3\nNormalCell,1\nPosiCell,0,2\nNegaCell,1",
		"3,2\nNullCell\nNormalCell\nNormalCell,3\nNormalCell,2\nNullCell\nNullCell\n",
	}
	for _, src := range srcs {
		desc, err := Parse(src)
		require.NoError(t, err, src)
		assert.Len(t, desc.Cells, desc.Dims.Size())
	}
}

func TestParse_NullCellIgnoresTrailingFields(t *testing.T) {
	desc, err := Parse("1,2\nNullCell,1,0,junk\nNormalCell")
	require.NoError(t, err)
	assert.Equal(t, world.Empty, desc.Cells[0].Type)
	assert.Empty(t, desc.Cells[0].Neighbors)
}

func TestParse_NullCellIgnoresOutOfRangeTrailingFields(t *testing.T) {
	desc, err := Parse("1,1\nNullCell,99")
	require.NoError(t, err)
	assert.Empty(t, desc.Cells[0].Neighbors)
}

func TestParse_KeepsSourceOrder(t *testing.T) {
	desc, err := Parse("1,4\nNormalCell,3,1,2\nNormalCell\nNormalCell\nNormalCell")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, desc.Cells[0].Neighbors)
}

func TestParse_ToleratesCRLFAndSpaces(t *testing.T) {
	desc, err := Parse("1, 2\r\nNormalCell , 1\r\n NormalCell,0\r\n")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, desc.Cells[0].Neighbors)
	assert.Equal(t, []int{0}, desc.Cells[1].Neighbors)
}

func TestParse_FormatErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"empty input", "", 1},
		{"header one field", "4\nNormalCell", 1},
		{"header three fields", "1,1,1\nNormalCell", 1},
		{"header zero rows", "0,2\n", 1},
		{"header cell count overflows", "4294967296,4294967296", 1},
		{"header cell count overflows with lines", "9223372036854775807,2\nNormalCell", 1},
		{"header not numeric", "a,b\nNormalCell", 1},
		{"too few lines", "2,2\nNormalCell\nNormalCell", 3},
		{"too many lines", "1,1\nNormalCell\nNormalCell", 3},
		{"blank line inside", "1,2\n\nNormalCell", 2},
		{"unknown label", "1,1\nWallCell", 2},
		{"empty field", "1,2\nNormalCell,,1\nNormalCell", 2},
		{"trailing comma", "1,2\nNormalCell,1,\nNormalCell", 2},
		{"non integer neighbour", "1,2\nNormalCell,x\nNormalCell", 2},
		{"float neighbour", "1,2\nNormalCell,1.5\nNormalCell", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := Parse(tt.src)
			require.Error(t, err)
			assert.Nil(t, desc, "no partial description on error")
			assert.True(t, errors.Is(err, ErrFormat), "errors.Is(%v, ErrFormat)", err)

			var fe *FormatError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.line, fe.Line)
		})
	}
}

func TestParse_NeighbourOutOfRange(t *testing.T) {
	src := "2,2\nNormalCell,99\nNormalCell,0\nNormalCell,3\nNormalCell,2"
	desc, err := Parse(src)
	require.Error(t, err)
	assert.Nil(t, desc)
	assert.True(t, errors.Is(err, ErrFormat))
	assert.True(t, errors.Is(err, world.ErrIndexOutOfRange))

	var ie *world.IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 99, ie.Index)
	assert.Equal(t, 4, ie.Size)
}

func TestParse_NegativeNeighbour(t *testing.T) {
	_, err := Parse("1,2\nNormalCell,-1\nNormalCell")
	assert.True(t, errors.Is(err, world.ErrIndexOutOfRange))
}

func TestParseReader(t *testing.T) {
	desc, err := ParseReader(strings.NewReader(twoByTwo))
	require.NoError(t, err)
	assert.Len(t, desc.Cells, 4)
}

func TestDescription_StringReparses(t *testing.T) {
	src := "2,3\nNormalCell,1,3\nPosiCell,0\nNullCell\nNegaCell,0,4\nNormalCell,3\nNullCell\n"
	desc, err := Parse(src)
	require.NoError(t, err)
	assert.Equal(t, src, desc.String())
}

func TestDescription_CellOutOfRange(t *testing.T) {
	desc, err := Parse(twoByTwo)
	require.NoError(t, err)
	_, err = desc.Cell(4)
	assert.True(t, errors.Is(err, world.ErrIndexOutOfRange))
	c, err := desc.Cell(3)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, c.Neighbors)
}
