package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"sigs.k8s.io/moea/pkg/multiobjective/framework"
)

// PlotResults renders a scatter plot comparing the true Pareto front of the given Problem
// with the final population resulted from the algorithm.
func PlotResults(w io.Writer, results []framework.ObjectiveSpacePoint, problem framework.Problem, algorithmName string) error {
	if len(results) == 0 {
		return fmt.Errorf("results are empty for %s Benchmark", problem.Name())
	}

	if len(results[0]) != 2 {
		return fmt.Errorf("can only plot 2D for %s Benchmark", problem.Name())
	}

	scatter := newScatter(fmt.Sprintf("%s Results for %s Benchmark", algorithmName, problem.Name()))

	trueParetoFront := problem.TrueParetoFront(100)
	trueX := make([]opts.ScatterData, len(trueParetoFront))
	for i, p := range trueParetoFront {
		trueX[i] = opts.ScatterData{
			Value:      []float64(p),
			Symbol:     "circle",
			SymbolSize: 10,
		}
	}

	foundX := make([]opts.ScatterData, len(results))
	for i, res := range results {
		foundX[i] = opts.ScatterData{
			Value:      []float64{res[0], res[1]},
			Symbol:     "triangle",
			SymbolSize: 10,
		}
	}

	scatter.AddSeries("True Pareto Front", trueX).
		AddSeries(fmt.Sprintf("%s Solutions", algorithmName), foundX).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
			charts.WithEmphasisOpts(opts.Emphasis{}),
		)

	return scatter.Render(w)
}

// PlotAssociation renders the normalized population with one series per
// reference direction, so every solution is drawn in the colour of the niche
// it was assigned to. The direction itself is drawn as a diamond at unit length.
func PlotAssociation(w io.Writer, title string, s *framework.Solutions, assignment []int, weights *framework.Weights) error {
	if s == nil || s.Len() == 0 {
		return fmt.Errorf("no solutions to plot for %s", title)
	}
	if s.Objectives() != 2 || weights.Objectives() != 2 {
		return fmt.Errorf("can only plot 2D associations, got %d objectives", s.Objectives())
	}
	if len(assignment) != s.Len() {
		return fmt.Errorf("assignment has %d entries for %d solutions", len(assignment), s.Len())
	}

	series := make([][]opts.ScatterData, weights.Len())
	weights.Each(func(i int, d framework.ObjectiveSpacePoint) {
		tip := Scale(1/Magnitude(d), d)
		series[i] = append(series[i], opts.ScatterData{
			Value:      tip,
			Symbol:     "diamond",
			SymbolSize: 14,
		})
	})
	for i, ref := range assignment {
		if ref < 0 || ref >= weights.Len() {
			return fmt.Errorf("solution %d assigned to unknown reference point %d", i, ref)
		}
		p := s.At(i)
		series[ref] = append(series[ref], opts.ScatterData{
			Value:      []float64{p[0], p[1]},
			Symbol:     "circle",
			SymbolSize: 8,
		})
	}

	scatter := newScatter(title)
	for i, data := range series {
		scatter.AddSeries(fmt.Sprintf("reference %d", i), data)
	}
	scatter.SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{
			Show: opts.Bool(false),
		}),
	)

	return scatter.Render(w)
}

func newScatter(title string) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "f1(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "f2(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))
	return scatter
}
