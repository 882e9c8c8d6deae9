package stats

import (
	"math"

	"github.com/de-tools/impact-atlas/pkg/models/domain"
)

// pairAcc accumulates the sums needed for a pairwise Pearson coefficient.
type pairAcc struct {
	n     float64
	sumX  float64
	sumY  float64
	sumXX float64
	sumYY float64
	sumXY float64
}

func (p *pairAcc) add(x, y float64) {
	p.n++
	p.sumX += x
	p.sumY += y
	p.sumXX += x * x
	p.sumYY += y * y
	p.sumXY += x * y
}

// r returns the Pearson coefficient, clamped to [-1, 1], and whether it is
// defined. It is undefined with fewer than two observations or when either
// variable has zero variance.
func (p *pairAcc) r() (float64, bool) {
	if p.n < 2 {
		return 0, false
	}
	cov := p.sumXY - p.sumX*p.sumY/p.n
	varX := p.sumXX - p.sumX*p.sumX/p.n
	varY := p.sumYY - p.sumY*p.sumY/p.n
	if varX <= 0 || varY <= 0 {
		return 0, false
	}

	r := cov / math.Sqrt(varX*varY)
	if r > 1 {
		r = 1
	}
	if r < -1 {
		r = -1
	}
	return r, true
}

// Correlation computes the pairwise Pearson correlation matrix among the
// given metrics over the view. The matrix is symmetric; the diagonal is 1.0
// wherever the metric has non-zero variance. Cells are marked undefined
// instead of defaulting to zero when the view is too small or a metric is
// constant.
func Correlation(view domain.FilteredView, metrics []domain.Metric) domain.CorrelationMatrix {
	n := len(metrics)
	matrix := domain.CorrelationMatrix{
		Metrics: metrics,
		Values:  make([][]float64, n),
		Defined: make([][]bool, n),
	}
	for i := range metrics {
		matrix.Values[i] = make([]float64, n)
		matrix.Defined[i] = make([]bool, n)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			acc := pairAcc{}
			for _, rec := range view {
				acc.add(rec.MetricValue(metrics[i]), rec.MetricValue(metrics[j]))
			}

			r, ok := acc.r()
			matrix.Values[i][j] = r
			matrix.Defined[i][j] = ok
			matrix.Values[j][i] = r
			matrix.Defined[j][i] = ok
		}
	}

	return matrix
}
