package optim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/sketchphys/internal/config"
	"github.com/san-kum/sketchphys/internal/scene"
)

var ErrNoCandidates = errors.New("optim: no candidate produced the metric")

// GridSearch tries every combination of physics parameter values and keeps
// the one that minimises a metric.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Objective maps a finished run to the value being minimised.
type Objective func(result *scene.Result) (float64, bool)

// MetricObjective minimises a named metric.
func MetricObjective(name string) Objective {
	return func(result *scene.Result) (float64, bool) {
		v, ok := result.Metrics[name]
		return v, ok
	}
}

// TargetObjective minimises |metric - target|.
func TargetObjective(name string, target float64) Objective {
	return func(result *scene.Result) (float64, bool) {
		v, ok := result.Metrics[name]
		return math.Abs(v - target), ok
	}
}

func (g *GridSearch) Search(ctx context.Context, base *config.Config, objective Objective) (map[string]float64, float64, error) {
	if len(g.paramNames) != len(g.ranges) {
		return nil, 0, fmt.Errorf("optim: %d params but %d ranges", len(g.paramNames), len(g.ranges))
	}

	best := math.Inf(1)
	var bestParams map[string]float64

	if err := g.searchRecursive(ctx, 0, make(map[string]float64), base, objective, &best, &bestParams); err != nil {
		return nil, 0, err
	}
	if bestParams == nil {
		return nil, 0, ErrNoCandidates
	}

	return bestParams, best, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	base *config.Config,
	objective Objective,
	best *float64,
	bestParams *map[string]float64,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if depth == len(g.paramNames) {
		val, ok, err := evaluate(ctx, base, current, objective)
		if err != nil {
			return err
		}
		if ok && val < *best {
			*best = val
			*bestParams = make(map[string]float64)
			for k, v := range current {
				(*bestParams)[k] = v
			}
		}
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, base, objective, best, bestParams); err != nil {
			return err
		}
	}
	return nil
}

// evaluate runs one candidate. Invalid parameter names are errors; runs that
// stop on an invalid state are skipped.
func evaluate(ctx context.Context, base *config.Config, params map[string]float64, objective Objective) (float64, bool, error) {
	cfg := base.Clone()
	for k, v := range params {
		if err := cfg.Physics.SetParam(k, v); err != nil {
			return 0, false, err
		}
	}

	s, err := scene.FromConfig(cfg)
	if err != nil {
		return 0, false, err
	}
	for _, m := range scene.DefaultMetrics(cfg) {
		s.AddMetric(m)
	}

	result, err := s.Run(ctx, scene.Config{Frames: cfg.Frames, ValidateState: true})
	if err != nil {
		return 0, false, err
	}
	if len(result.Errors) > 0 {
		return 0, false, nil
	}

	val, ok := objective(result)
	return val, ok, nil
}
