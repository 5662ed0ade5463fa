package fitdata

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/osse101/fitreport/internal/domain"
	"github.com/osse101/fitreport/internal/testing/leaktest"
)

func TestGenerate_Deterministic(t *testing.T) {
	a, err := GenerateDefault()
	require.NoError(t, err)
	b, err := Generate(100, 42)
	require.NoError(t, err)

	assert.Equal(t, a, b)

	other, err := Generate(100, 7)
	require.NoError(t, err)
	assert.Equal(t, a.X, other.X)
	assert.Equal(t, a.YTrue, other.YTrue)
	assert.NotEqual(t, a.YPred, other.YPred, "seed only affects the noise")
}

func TestGenerate_ConcurrentCallersAreIsolated(t *testing.T) {
	want, err := Generate(500, 42)
	require.NoError(t, err)

	const workers = 8
	got := make([]Curve, workers)
	leaktest.CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				c, err := Generate(500, 42)
				if err == nil {
					got[i] = c
				}
			}(i)
		}
		wg.Wait()
	})

	for i := range got {
		assert.Equal(t, want, got[i], "worker %d", i)
	}
}

func TestGenerate_Domain(t *testing.T) {
	for _, n := range []int{2, 3, 10, 100, 1001} {
		c, err := Generate(n, 1)
		require.NoError(t, err)

		require.Len(t, c.X, n)
		require.Len(t, c.YTrue, n)
		require.Len(t, c.YPred, n)
		assert.Equal(t, 0.0, c.X[0])
		assert.Equal(t, 10.0, c.X[n-1])

		step := 10.0 / float64(n-1)
		for i := 1; i < n; i++ {
			assert.InDelta(t, step, c.X[i]-c.X[i-1], 1e-12, "n=%d i=%d", n, i)
		}
	}
}

func TestGenerate_Signal(t *testing.T) {
	c, err := Generate(50, 3)
	require.NoError(t, err)

	for i, x := range c.X {
		assert.InDelta(t, 2*x+1+0.5*math.Sin(x), c.YTrue[i], 1e-12)
	}
	assert.Equal(t, 1.0, Signal(0))
	assert.InDelta(t, 21+0.5*math.Sin(10), Signal(10), 1e-12)
}

func TestGenerate_NoiseDistribution(t *testing.T) {
	for _, seed := range []int64{0, 42, 12345} {
		c, err := Generate(200000, seed)
		require.NoError(t, err)

		mean, std := stat.MeanStdDev(c.Residuals(), nil)
		assert.InDelta(t, 0, mean, 0.005, "seed %d", seed)
		assert.InDelta(t, NoiseStdDev, std, 0.005, "seed %d", seed)
	}
}

func TestGenerate_EdgeCounts(t *testing.T) {
	t.Run("zero points", func(t *testing.T) {
		c, err := Generate(0, 42)
		require.NoError(t, err)
		assert.Equal(t, 0, c.Len())
		assert.NotNil(t, c.X)
		assert.Empty(t, c.YPred)
	})

	t.Run("one point sits at the domain start", func(t *testing.T) {
		c, err := Generate(1, 42)
		require.NoError(t, err)
		assert.Equal(t, []float64{0}, c.X)
		assert.Equal(t, []float64{1}, c.YTrue)
		assert.Len(t, c.YPred, 1)
	})

	t.Run("negative count", func(t *testing.T) {
		_, err := Generate(-5, 42)
		assert.ErrorIs(t, err, domain.ErrInvalidPointCount)
		assert.Contains(t, err.Error(), "-5")
	})
}

func TestStats(t *testing.T) {
	t.Run("perfect fit", func(t *testing.T) {
		c := Curve{
			X:     []float64{0, 1, 2},
			YTrue: []float64{1, 3, 5},
			YPred: []float64{1, 3, 5},
		}
		s := c.Stats()
		assert.Equal(t, 3, s.Points)
		assert.Equal(t, 0.0, s.ResidualMean)
		assert.Equal(t, 0.0, s.RMSE)
		assert.Equal(t, 1.0, s.RSquared)
	})

	t.Run("known residuals", func(t *testing.T) {
		c := Curve{
			X:     []float64{0, 1},
			YTrue: []float64{0, 2},
			YPred: []float64{1, 1},
		}
		s := c.Stats()
		assert.Equal(t, []float64{1, -1}, c.Residuals())
		assert.Equal(t, 0.0, s.ResidualMean)
		assert.InDelta(t, 1.0, s.RMSE, 1e-12)
		assert.InDelta(t, math.Sqrt2, s.ResidualStd, 1e-12)
		assert.InDelta(t, 0.0, s.RSquared, 1e-12)
	})

	t.Run("generated curve fits closely", func(t *testing.T) {
		c, err := GenerateDefault()
		require.NoError(t, err)
		s := c.Stats()
		assert.Greater(t, s.RSquared, 0.99)
		assert.InDelta(t, NoiseStdDev, s.RMSE, 0.1)
	})

	t.Run("empty curve", func(t *testing.T) {
		s := Curve{}.Stats()
		assert.Equal(t, 0, s.Points)
		assert.True(t, math.IsNaN(s.RMSE))
		assert.True(t, math.IsNaN(s.RSquared))
	})
}

func TestWriteCSV(t *testing.T) {
	c, err := Generate(25, 42)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.WriteCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 26)
	assert.Equal(t, CSVHeader, records[0])

	for i, rec := range records[1:] {
		x, err := strconv.ParseFloat(rec[0], 64)
		require.NoError(t, err)
		yPred, err := strconv.ParseFloat(rec[2], 64)
		require.NoError(t, err)
		assert.Equal(t, c.X[i], x, "values survive the text form exactly")
		assert.Equal(t, c.YPred[i], yPred)
	}
}

func TestWrite(t *testing.T) {
	c, err := Generate(5, 42)
	require.NoError(t, err)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, c.Write(&buf, "json"))

		var decoded map[string][]float64
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, c.YTrue, decoded["y_true"])
	})

	t.Run("unsupported", func(t *testing.T) {
		var buf bytes.Buffer
		err := c.Write(&buf, "yaml")
		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	})
}

func BenchmarkGenerate(b *testing.B) {
	for _, n := range []int{100, 10000} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Generate(n, int64(i)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
