package jenks

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewTables_Boundary verifies cost(0,0)=0 and +Inf everywhere else.
func TestNewTables_Boundary(t *testing.T) {
	tb := newTables(4, 3)
	assert.Equal(t, 0.0, tb.costCol(0)[0])
	for j := 0; j <= 3; j++ {
		for i := 0; i <= 4; i++ {
			if i == 0 && j == 0 {
				continue
			}
			assert.True(t, math.IsInf(tb.costCol(j)[i], 1), "cell (%d,%d)", i, j)
		}
	}
}

// TestBuildTables_InfeasibleCellsStayInf verifies rows i<j are never written.
func TestBuildTables_InfeasibleCellsStayInf(t *testing.T) {
	tb, err := buildTables([]float64{1, 2, 4, 7, 8, 9}, 4, 1)
	require.NoError(t, err)
	for j := 1; j <= 4; j++ {
		for i := 0; i < j; i++ {
			assert.True(t, math.IsInf(tb.costCol(j)[i], 1), "cell (%d,%d)", i, j)
			assert.Zero(t, tb.backCol(j)[i], "cell (%d,%d)", i, j)
		}
		for i := j; i <= 6; i++ {
			m := tb.backCol(j)[i]
			assert.True(t, m >= j && m <= i, "pointer (%d,%d)=%d", i, j, m)
		}
	}
}

// TestExtractBreaks_Valid walks a hand-built table.
func TestExtractBreaks_Valid(t *testing.T) {
	tb := newTables(6, 3)
	tb.backCol(3)[6] = 4 // last class 4..6
	tb.backCol(2)[3] = 3 // middle class 3..3
	tb.backCol(1)[2] = 1 // first class 1..2

	breaks, err := extractBreaks(tb)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 6}, breaks)
}

// TestExtractBreaks_Malformed verifies corrupt pointers are reported as
// ErrInternalInconsistency instead of producing a partition.
func TestExtractBreaks_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		setup func(tb *tables)
	}{
		{"zero pointer", func(tb *tables) {}},
		{"pointer past row", func(tb *tables) {
			tb.backCol(3)[6] = 7
		}},
		{"pointer leaves too few rows", func(tb *tables) {
			tb.backCol(3)[6] = 2
		}},
		{"first class not starting at 1", func(tb *tables) {
			tb.backCol(3)[6] = 5
			tb.backCol(2)[4] = 4
			tb.backCol(1)[3] = 2
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tb := newTables(6, 3)
			tc.setup(tb)
			breaks, err := extractBreaks(tb)
			assert.ErrorIs(t, err, ErrInternalInconsistency)
			assert.NotErrorIs(t, err, ErrInvalidArgument)
			assert.Nil(t, breaks)
		})
	}
}

// TestTablesPointer_OutOfRange verifies the bounds-checked reader.
func TestTablesPointer_OutOfRange(t *testing.T) {
	tb := newTables(3, 2)
	for _, c := range [][2]int{{-1, 0}, {4, 1}, {1, -1}, {1, 3}} {
		_, err := tb.pointer(c[0], c[1])
		assert.ErrorIs(t, err, ErrInternalInconsistency, "cell %v", c)
	}
	_, err := tb.pointer(3, 2)
	assert.NoError(t, err)
}

// TestValidateBreaks covers the partition shape checks.
func TestValidateBreaks(t *testing.T) {
	assert.NoError(t, validateBreaks(5, []int{5}))
	assert.NoError(t, validateBreaks(5, []int{1, 2, 3, 4, 5}))
	for _, b := range [][]int{nil, {}, {0, 5}, {2, 2, 5}, {3, 2, 5}, {1, 4}, {1, 6}, {1, 2, 3, 4, 5, 6}} {
		assert.ErrorIs(t, validateBreaks(5, b), ErrBadBreaks, "breaks %v", b)
	}
}

// TestCheckCost verifies a non-finite optimum is reported as a solver defect.
func TestCheckCost(t *testing.T) {
	require.NoError(t, checkCost(0))
	require.NoError(t, checkCost(1e300))
	for _, c := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		err := checkCost(c)
		assert.ErrorIs(t, err, ErrInternalInconsistency)
		assert.NotErrorIs(t, err, ErrInvalidArgument)
	}
}
