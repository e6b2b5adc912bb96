package harness

import (
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kaiklok/kairos/internal/kairos"
	"github.com/kaiklok/kairos/internal/pulse"
	"github.com/kaiklok/kairos/internal/solar"
)

// Scenario defines a conformance scenario: a list of instants assembled
// through the one shared code path and snapshotted in order.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario pins down.
	Description string `yaml:"description"`

	// Instants are strict signed ISO datetimes, assembled in order.
	Instants []string `yaml:"instants"`
}

// LoadScenario reads a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s has no name", path)
	}
	return &s, nil
}

// Run assembles every instant of the scenario against the default observer
// and returns one snapshot per instant.
func Run(s *Scenario) ([]map[string]any, error) {
	calc := solar.NewCalculator(solar.DefaultObserver)
	out := make([]map[string]any, 0, len(s.Instants))
	for _, instant := range s.Instants {
		resp, err := kairos.MomentFromUTC(instant, calc)
		if err != nil {
			return nil, fmt.Errorf("instant %q: %w", instant, err)
		}
		out = append(out, snapshotOf(resp))
	}
	return out, nil
}

// snapshotOf reduces a response to the canonical-JSON value model. Big
// integers become decimal strings; the step percentage becomes a 9-digit
// fixed-point decimal computed from the exact micropulse remainder.
func snapshotOf(resp kairos.Response) map[string]any {
	return map[string]any{
		"timestamp":    resp.Timestamp,
		"micro_pulses": resp.MicroPulses.String(),
		"pulse":        resp.Moment.Pulse.String(),
		"beat":         resp.Moment.Beat,
		"step_index":   resp.Moment.StepIndex,
		"step_pct":     stepPctDecimal(resp.Moment.MicroIntoStep),
		"weekday":      resp.Moment.Weekday,
		"chakra_day":   resp.Moment.ChakraDay,
		"eternal": map[string]any{
			"day_index":    resp.Eternal.DayIndex.String(),
			"year_index":   resp.Eternal.YearIndex.String(),
			"month_index":  resp.Eternal.MonthIndex,
			"week_index":   resp.Eternal.WeekIndex,
			"day_of_month": resp.Eternal.DayOfMonth,
			"month":        resp.Eternal.Month,
			"week":         resp.Eternal.Week,
		},
		"solar": map[string]any{
			"date":      resp.Solar.SolarDate.String(),
			"day_index": resp.Solar.DayIndex.String(),
			"weekday":   resp.Solar.Weekday,
			"month":     resp.Solar.Month,
		},
		"narrative": resp.Narrative,
	}
}

// stepPctDecimal renders microIntoStep/StepMicro as "0." plus 9 truncated
// decimal digits, entirely in integer arithmetic.
func stepPctDecimal(microIntoStep *big.Int) string {
	scaled := new(big.Int).Mul(microIntoStep, big.NewInt(1_000_000_000))
	scaled.Quo(scaled, pulse.StepMicro)
	return fmt.Sprintf("0.%09d", scaled.Int64())
}
