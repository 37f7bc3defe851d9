package scene

import (
	"context"
	"sync"

	"github.com/san-kum/sketchphys/internal/config"
)

// Sweep runs the same configuration once per value of a physics parameter,
// each run in its own goroutine.
type Sweep struct {
	base    *config.Config
	param   string
	values  []float64
	metrics func(*config.Config) []Metric
}

// NewSweep prepares a sweep. metrics is called once per run with that run's
// config, so runs never share metric state; it may be nil.
func NewSweep(base *config.Config, param string, values []float64, metrics func(*config.Config) []Metric) *Sweep {
	return &Sweep{base: base, param: param, values: values, metrics: metrics}
}

func (sw *Sweep) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, len(sw.values))
	errs := make([]error, len(sw.values))

	var wg sync.WaitGroup
	for i, v := range sw.values {
		wg.Add(1)
		go func(idx int, value float64) {
			defer wg.Done()

			cfg := sw.base.Clone()
			if err := cfg.Physics.SetParam(sw.param, value); err != nil {
				errs[idx] = err
				return
			}

			s, err := FromConfig(cfg)
			if err != nil {
				errs[idx] = err
				return
			}
			if sw.metrics != nil {
				for _, m := range sw.metrics(cfg) {
					s.AddMetric(m)
				}
			}

			results[idx], errs[idx] = s.Run(ctx, Config{Frames: cfg.Frames, ValidateState: cfg.ValidateState})
		}(i, v)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
