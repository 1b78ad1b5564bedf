// Package plotter - the tuning-session collector.
package plotter

import (
	"errors"
	"fmt"

	"github.com/ragrwal1/CSE-355-Final-Project-SP25/regexgen"
)

// ErrNoRuns signals a Plot call on a History that never saw a completed run.
var ErrNoRuns = errors.New("plotter: no recorded runs to plot")

// Step is one bisection iteration as reported by the tuner: the probed
// midpoint, the score estimate there, and the central-difference derivative.
type Step struct {
	Run        int
	Iteration  int
	Mid        float64
	Score      float64
	Derivative float64
}

// History collects tuner events for later inspection or charting. Pass it
// as the Observer option to a tuning session.
//
// History is not safe for concurrent use; the tuner emits events
// sequentially, so no locking is needed in practice.
type History struct {
	steps []Step
	runs  []float64
}

var _ regexgen.Observer = (*History)(nil)

// NewHistory returns an empty collector.
func NewHistory() *History {
	return &History{}
}

// ObserveStep records one bisection iteration.
func (h *History) ObserveStep(run, iteration int, mid, score, derivative float64) {
	h.steps = append(h.steps, Step{
		Run:        run,
		Iteration:  iteration,
		Mid:        mid,
		Score:      score,
		Derivative: derivative,
	})
}

// ObserveRun records the literal probability a completed run settled on.
func (h *History) ObserveRun(run int, literalProb float64) {
	h.runs = append(h.runs, literalProb)
}

// Steps returns a copy of every recorded iteration, in arrival order.
func (h *History) Steps() []Step {
	out := make([]Step, len(h.steps))
	copy(out, h.steps)
	return out
}

// Runs returns a copy of the per-run literal probabilities, in run order.
func (h *History) Runs() []float64 {
	out := make([]float64, len(h.runs))
	copy(out, h.runs)
	return out
}

// RollingAverage returns the cumulative mean of the run history: element i
// is the mean of runs 0..i. Returns nil when no runs were recorded.
func (h *History) RollingAverage() []float64 {
	if len(h.runs) == 0 {
		return nil
	}
	out := make([]float64, len(h.runs))
	var sum float64
	for i, v := range h.runs {
		sum += v
		out[i] = sum / float64(i+1)
	}
	return out
}

// Plot renders the session as an SVG chart: the per-run literal probability,
// its rolling average, and the rolling averages of the four branch weights
// each run's probability derives. Returns ErrNoRuns on an empty history.
func (h *History) Plot(width, height float64) (string, error) {
	n := len(h.runs)
	if n == 0 {
		return "", ErrNoRuns
	}

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i + 1)
	}

	// Per-run branch weights, then the rolling mean of each component.
	stars := make([]float64, n)
	unions := make([]float64, n)
	concats := make([]float64, n)
	for i, lit := range h.runs {
		w, err := regexgen.WeightsFromLiteral(lit)
		if err != nil {
			return "", fmt.Errorf("plotter: run %d: %w", i+1, err)
		}
		stars[i] = w.Star
		unions[i] = w.Union
		concats[i] = w.Concat
	}

	p := New(width, height)
	p.Title = "Literal probability per tuning run"
	p.XLabel = "run"
	p.YLabel = "probability"
	p.AddSeries(xs, h.Runs(), "literal (run)", "")
	p.AddSeries(xs, h.RollingAverage(), "literal (avg)", "")
	p.AddSeries(xs, rolling(stars), "star (avg)", "")
	p.AddSeries(xs, rolling(unions), "union (avg)", "")
	p.AddSeries(xs, rolling(concats), "concat (avg)", "")
	return p.Render(), nil
}

// rolling is the cumulative mean of vals.
func rolling(vals []float64) []float64 {
	out := make([]float64, len(vals))
	var sum float64
	for i, v := range vals {
		sum += v
		out[i] = sum / float64(i+1)
	}
	return out
}
