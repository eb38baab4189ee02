package calculation

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/rpgo/savings-calculator/internal/domain"
	"golang.org/x/sync/errgroup"
)

// SweepField names the rate a sweep varies
type SweepField string

const (
	SweepReturn    SweepField = "return"
	SweepInflation SweepField = "inflation"
	SweepGrowth    SweepField = "growth" // annual growth rate or raise fraction, per growth policy
)

// DefaultSweepLimit bounds the number of projections run at once
const DefaultSweepLimit = 10

// maxSweepPoints caps generated value ranges
const maxSweepPoints = 1000

// ParseSweepField resolves a user-supplied field name
func ParseSweepField(name string) (SweepField, error) {
	switch SweepField(strings.ToLower(strings.TrimSpace(name))) {
	case SweepReturn, "return_rate", "annual_return_rate":
		return SweepReturn, nil
	case SweepInflation, "inflation_rate", "annual_inflation_rate":
		return SweepInflation, nil
	case SweepGrowth, "growth_rate", "raise", "raise_fraction":
		return SweepGrowth, nil
	default:
		return "", fmt.Errorf("unknown sweep field %q (want %s, %s or %s)", name, SweepReturn, SweepInflation, SweepGrowth)
	}
}

// SweepPoint is one projection of a sweep
type SweepPoint struct {
	Value        float64                     `json:"value"`
	Parameters   domain.SimulationParameters `json:"parameters"`
	Series       *domain.MonthlySeries       `json:"series"`
	FinalNominal float64                     `json:"final_nominal"`
	FinalReal    float64                     `json:"final_real"`
}

// SweepValues returns from, from+step, ... up to and including to
func SweepValues(from, to, step float64) ([]float64, error) {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("sweep step must be positive, got %v", step)
	}
	if to < from {
		return nil, fmt.Errorf("sweep range end %v is before start %v", to, from)
	}
	n := int(math.Floor((to-from)/step+1e-9)) + 1
	if n > maxSweepPoints {
		return nil, fmt.Errorf("sweep would run %d projections, limit is %d", n, maxSweepPoints)
	}
	values := make([]float64, n)
	for i := range values {
		values[i] = math.Round((from+float64(i)*step)*1e10) / 1e10
	}
	return values, nil
}

// Sweep projects base once per value, replacing the chosen field. Runs are
// independent and execute concurrently, at most limit at a time; each gets
// its own parameter copy and output series. Cancellation is checked before
// each run starts. Any failure discards the whole sweep.
func (pe *ProjectionEngine) Sweep(ctx context.Context, base domain.SimulationParameters, field SweepField, values []float64, limit int) ([]SweepPoint, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no sweep values provided")
	}
	if limit <= 0 {
		limit = DefaultSweepLimit
	}

	results := make([]SweepPoint, len(values))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, v := range values {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			params, err := withField(base, field, v)
			if err != nil {
				return err
			}
			series, err := pe.Project(params)
			if err != nil {
				return fmt.Errorf("%s=%.4f: %w", field, v, err)
			}
			final := series.Final()
			results[i] = SweepPoint{
				Value:        v,
				Parameters:   params,
				Series:       series,
				FinalNominal: final.Nominal,
				FinalReal:    final.Real,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	loggerOrNop(pe.Logger).Debugf("sweep over %s completed %d run(s)", field, len(results))
	return results, nil
}

func withField(p domain.SimulationParameters, field SweepField, v float64) (domain.SimulationParameters, error) {
	switch field {
	case SweepReturn:
		p.AnnualReturnRate = v
	case SweepInflation:
		p.AnnualInflationRate = v
	case SweepGrowth:
		switch g := p.Growth.(type) {
		case domain.ContinuousGrowth:
			g.AnnualGrowthRate = v
			p.Growth = g
		case domain.PeriodicRaise:
			g.RaiseFraction = v
			p.Growth = g
		default:
			return p, fmt.Errorf("cannot sweep growth without a growth policy")
		}
	default:
		return p, fmt.Errorf("unknown sweep field %q", field)
	}
	return p, nil
}
