// Package fitdata synthesizes deterministic goodness-of-fit data so the
// plotting step can be exercised without a real optimization run.
package fitdata

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/osse101/fitreport/internal/domain"
	"github.com/osse101/fitreport/internal/metrics"
)

// Generation defaults
const (
	DefaultPoints int   = 100
	DefaultSeed   int64 = 42
)

// Curve constants
const (
	DomainStart   = 0.0
	DomainEnd     = 10.0
	Slope         = 2.0
	Intercept     = 1.0
	SineAmplitude = 0.5
	NoiseMean     = 0.0
	NoiseStdDev   = 0.3
)

// Curve is a synthetic curve triple: an evenly spaced domain, the noiseless
// signal over it and a noisy observation of that signal.
type Curve struct {
	X     []float64 `json:"x"`
	YTrue []float64 `json:"y_true"`
	YPred []float64 `json:"y_pred"`
}

// Generate builds nPoints samples of y = 2x + 1 + 0.5·sin(x) over [0, 10]
// and adds N(0, 0.3) noise. The random source is created and seeded once
// per call, so equal arguments always give identical curves and concurrent
// callers never share generator state.
func Generate(nPoints int, seed int64) (Curve, error) {
	if nPoints < 0 {
		return Curve{}, fmt.Errorf("%w: got %d", domain.ErrInvalidPointCount, nPoints)
	}

	x := Linspace(DomainStart, DomainEnd, nPoints)
	noise := distuv.Normal{
		Mu:    NoiseMean,
		Sigma: NoiseStdDev,
		Src:   rand.NewPCG(uint64(seed), 0),
	}

	c := Curve{
		X:     x,
		YTrue: make([]float64, nPoints),
		YPred: make([]float64, nPoints),
	}
	for i, xi := range x {
		c.YTrue[i] = Signal(xi)
	}
	for i := range c.YPred {
		c.YPred[i] = c.YTrue[i] + noise.Rand()
	}

	metrics.CurvesGenerated.Inc()
	metrics.PointsGenerated.Add(float64(nPoints))
	return c, nil
}

// GenerateDefault generates DefaultPoints samples with DefaultSeed
func GenerateDefault() (Curve, error) {
	return Generate(DefaultPoints, DefaultSeed)
}

// Signal is the noiseless model 2x + 1 + 0.5·sin(x)
func Signal(x float64) float64 {
	return Slope*x + Intercept + SineAmplitude*math.Sin(x)
}

// Linspace returns n evenly spaced values over the closed interval [start, end].
// The last value is exactly end. One point yields [start] and zero points
// an empty slice.
func Linspace(start, end float64, n int) []float64 {
	switch n {
	case 0:
		return []float64{}
	case 1:
		return []float64{start}
	}
	x := floats.Span(make([]float64, n), start, end)
	x[n-1] = end
	return x
}

// Len returns the number of samples
func (c Curve) Len() int {
	return len(c.X)
}
