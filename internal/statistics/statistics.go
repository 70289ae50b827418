// Package statistics summarises simulated deals.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/lox/choker/internal/evaluator"
)

// DealResult is the outcome of one simulated deal
type DealResult struct {
	Value float64         // score of the completed river hand
	Shape evaluator.Shape // how the completed hand scored
	Hit   bool            // the opening cards matched the target combination
}

// Statistics accumulates deal results
type Statistics struct {
	Deals  int
	Values []float64 // every completed-hand value, in deal order

	Hits   int
	Shapes [3]int // indexed by evaluator.Shape
}

// Mean returns the mean completed-hand value
func (s *Statistics) Mean() float64 {
	if s.Deals == 0 {
		return 0
	}
	return stat.Mean(s.Values, nil)
}

// Variance returns the sample variance of the values
func (s *Statistics) Variance() float64 {
	if s.Deals < 2 {
		return 0
	}
	return stat.Variance(s.Values, nil)
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Deals == 0 {
		return 0
	}
	return stat.StdErr(s.StdDev(), float64(s.Deals))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean,
// using the t-distribution with Deals-1 degrees of freedom.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	if s.Deals < 2 {
		return mean, mean
	}
	tDist := distuv.StudentsT{
		Mu:    0,
		Sigma: 1,
		Nu:    float64(s.Deals - 1),
	}
	// Two-tailed 95% CI uses 97.5th percentile
	margin := tDist.Quantile(0.975) * s.StdError()
	return mean - margin, mean + margin
}

// HitRate returns the share of deals whose opening cards matched, in percent.
func (s *Statistics) HitRate() float64 {
	if s.Deals == 0 {
		return 0
	}
	return 100 * float64(s.Hits) / float64(s.Deals)
}

// ShapeRate returns the share of completed hands of one shape, in percent.
func (s *Statistics) ShapeRate(shape evaluator.Shape) float64 {
	if s.Deals == 0 || int(shape) < 0 || int(shape) >= len(s.Shapes) {
		return 0
	}
	return 100 * float64(s.Shapes[shape]) / float64(s.Deals)
}

// Add incorporates one deal
func (s *Statistics) Add(r DealResult) {
	s.Deals++
	s.Values = append(s.Values, r.Value)

	if r.Hit {
		s.Hits++
	}
	if int(r.Shape) >= 0 && int(r.Shape) < len(s.Shapes) {
		s.Shapes[r.Shape]++
	}
}

// Merge folds other into s.
func (s *Statistics) Merge(other *Statistics) {
	s.Deals += other.Deals
	s.Values = append(s.Values, other.Values...)
	s.Hits += other.Hits
	for i := range s.Shapes {
		s.Shapes[i] += other.Shapes[i]
	}
}

// Median returns the median value
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the linearly interpolated value at the given
// percentile (0.0 to 1.0).
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.LinInterp, sorted, nil)
}

// Validate checks that the counters agree with each other
func (s *Statistics) Validate() error {
	if s.Deals <= 0 {
		return fmt.Errorf("invalid deal count: %d", s.Deals)
	}
	if len(s.Values) != s.Deals {
		return fmt.Errorf("values length (%d) does not match deal count (%d)", len(s.Values), s.Deals)
	}
	if s.Hits > s.Deals {
		return fmt.Errorf("hits (%d) exceed deals (%d)", s.Hits, s.Deals)
	}

	shapes := 0
	for _, n := range s.Shapes {
		shapes += n
	}
	if shapes != s.Deals {
		return fmt.Errorf("shape total (%d) does not match deal count (%d)", shapes, s.Deals)
	}
	return nil
}
