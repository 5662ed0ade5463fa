package fitdata

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FitStats summarizes how well YPred tracks YTrue
type FitStats struct {
	Points       int     `json:"points"`
	ResidualMean float64 `json:"residual_mean"`
	ResidualStd  float64 `json:"residual_std"`
	RMSE         float64 `json:"rmse"`
	RSquared     float64 `json:"r_squared"`
}

// Residuals returns YPred - YTrue element-wise
func (c Curve) Residuals() []float64 {
	r := make([]float64, len(c.YPred))
	floats.SubTo(r, c.YPred, c.YTrue)
	return r
}

// Stats computes residual mean and sample standard deviation, RMSE and the
// coefficient of determination of YPred against YTrue. Statistics that are
// undefined for the curve's length are NaN.
func (c Curve) Stats() FitStats {
	n := c.Len()
	s := FitStats{
		Points:       n,
		ResidualMean: math.NaN(),
		ResidualStd:  math.NaN(),
		RMSE:         math.NaN(),
		RSquared:     math.NaN(),
	}
	if n == 0 {
		return s
	}

	r := c.Residuals()
	s.ResidualMean = stat.Mean(r, nil)
	s.RMSE = math.Sqrt(floats.Dot(r, r) / float64(n))
	if n > 1 {
		s.ResidualStd = stat.StdDev(r, nil)
		s.RSquared = stat.RSquaredFrom(c.YPred, c.YTrue, nil)
	}
	return s
}
