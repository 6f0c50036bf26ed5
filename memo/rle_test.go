package memo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRLEVector_InitialState(t *testing.T) {
	v := NewRLEVector(10, 4)
	require.Equal(t, 1, v.CurrNumOfRuns())
	for i := 0; i < 10; i++ {
		require.Equal(t, 0, v.Get(i))
	}
}

func TestRLEVector_SetThenGetMatchesDenseOracle(t *testing.T) {
	sizes := []int{1, 5, 8, 17, 33}
	widths := []int{1, 2, 3, 4, 5}

	for _, size := range sizes {
		for _, k := range widths {
			v := NewRLEVector(size, k)
			dense := make([]int, size)

			sets := []int{0, size / 2, size - 1, size / 3, 1}
			for _, i := range sets {
				if i < 0 || i >= size {
					continue
				}
				v.Set(i)
				dense[i] = 1
				for j := 0; j < size; j++ {
					require.Equal(t, dense[j], v.Get(j), "size=%d k=%d j=%d", size, k, j)
				}
			}
		}
	}
}

func TestRLEVector_MaxNumOfRunsIsHighWaterMark(t *testing.T) {
	v := NewRLEVector(8, 1)
	require.Equal(t, 1, v.MaxNumOfRuns())
	v.Set(0)
	v.Set(2)
	v.Set(4)
	v.Set(6)
	require.GreaterOrEqual(t, v.MaxNumOfRuns(), v.CurrNumOfRuns())
	// Setting every remaining bit collapses back to a single run, but the
	// high-water mark from the alternating pattern above must persist.
	for i := 1; i < 8; i += 2 {
		v.Set(i)
	}
	require.Equal(t, 1, v.CurrNumOfRuns())
	require.GreaterOrEqual(t, v.MaxNumOfRuns(), 5)
}

func TestRLEVector_MaxBytesGrowsWithRunCount(t *testing.T) {
	v := NewRLEVector(16, 1)
	base := v.MaxBytes()
	for i := 0; i < 16; i += 2 {
		v.Set(i)
	}
	require.Greater(t, v.MaxBytes(), base)
}
