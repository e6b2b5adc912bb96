package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario and compares its canonical snapshot
// against testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	moments, err := Run(scenario)
	if err != nil {
		return err
	}

	asAny := make([]any, len(moments))
	for i, m := range moments {
		asAny[i] = m
	}
	payload, err := MarshalCanonical(map[string]any{
		"scenario_name": scenario.Name,
		"moments":       asAny,
	})
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, payload)
	return nil
}
