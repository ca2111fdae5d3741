package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridIsZeroFilled(t *testing.T) {
	g := New(DefaultSize)
	require.Equal(t, 32, g.Size())
	for row := 0; row < g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			v, ok := g.GetCell(col, row)
			require.True(t, ok)
			require.Equalf(t, 0, v, "cell (%d,%d)", col, row)
		}
	}
}

func TestPaintThenGet(t *testing.T) {
	g := New(DefaultSize, WithLimit(8))
	for row := 0; row < g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			want := (col + row) % 8
			require.True(t, g.PaintCell(col, row, want))
			got, ok := g.GetCell(col, row)
			require.True(t, ok)
			require.Equal(t, want, got)
		}
	}
}

func TestPaintCellDropsInvalidWrites(t *testing.T) {
	cases := []struct {
		name     string
		col, row int
		index    int
	}{
		{"negative_col", -1, 0, 1},
		{"negative_row", 0, -1, 1},
		{"col_past_edge", 32, 5, 1},
		{"row_past_edge", 5, 32, 1},
		{"index_past_limit", 3, 3, 8},
		{"negative_index", 3, 3, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := New(DefaultSize, WithLimit(8))
			assert.False(t, g.PaintCell(c.col, c.row, c.index))
			g.Each(func(col, row, index int) {
				if index != 0 {
					t.Fatalf("cell (%d,%d) mutated to %d", col, row, index)
				}
			})
		})
	}
}

func TestGetCellOutOfRange(t *testing.T) {
	g := New(4)
	_, ok := g.GetCell(4, 0)
	assert.False(t, ok)
	_, ok = g.GetCell(0, -1)
	assert.False(t, ok)
}

func TestCellsAreIndependent(t *testing.T) {
	g := New(4)
	require.True(t, g.PaintCell(1, 2, 5))
	v, _ := g.GetCell(2, 1)
	assert.Equal(t, 0, v, "transposed cell must not change")
	v, _ = g.GetCell(1, 2)
	assert.Equal(t, 5, v)
}

func TestFill(t *testing.T) {
	g := New(3, WithLimit(4))
	require.True(t, g.Fill(2))
	g.Each(func(col, row, index int) {
		assert.Equal(t, 2, index)
	})
	assert.False(t, g.Fill(4))
}

func TestNewClampsSize(t *testing.T) {
	assert.Equal(t, 1, New(0).Size())
}
