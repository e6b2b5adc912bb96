package kairos

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiklok/kairos/internal/clock"
	"github.com/kaiklok/kairos/internal/pulse"
	"github.com/kaiklok/kairos/internal/solar"
	"github.com/kaiklok/kairos/internal/testutil"
)

func newCalc() *solar.Calculator {
	return solar.NewCalculator(solar.DefaultObserver)
}

func TestAssemble_GenesisScenario(t *testing.T) {
	// The Genesis instant decodes to pulse 0, beat 0, step 0, solar day 0.
	resp := Assemble(big.NewInt(0), newCalc())

	assert.Zero(t, resp.Moment.Pulse.Sign())
	assert.Equal(t, 0, resp.Moment.Beat)
	assert.Equal(t, 0, resp.Moment.StepIndex)
	assert.Equal(t, "2024-05-10T06:45:41.888Z", resp.Timestamp)
	assert.Zero(t, resp.Eternal.YearIndex.Sign())
	assert.Zero(t, resp.Solar.DayIndex.Sign())
	assert.Contains(t, resp.Narrative, "Beat 0/36")
	assert.Contains(t, resp.Narrative, "Solhara")
}

func TestAssemble_FieldsShareOneCoordinate(t *testing.T) {
	// The moment's day index and the eternal indices must come from the
	// same coordinate: cross-check weekday labels and day indices.
	calc := newCalc()
	for _, deltaDays := range []int64{-100, -1, 0, 1, 17, 400} {
		mu := new(big.Int).Mul(pulse.DayMicro, big.NewInt(deltaDays))
		mu.Add(mu, big.NewInt(123_456_789)) // partway into the day
		resp := Assemble(mu, calc)

		assert.Zero(t, resp.Moment.DayIndex.Cmp(resp.Eternal.DayIndex), "delta %d", deltaDays)
		assert.Equal(t, resp.Moment.Weekday, resp.Eternal.Weekday, "delta %d", deltaDays)
		assert.Zero(t, resp.MicroPulses.Cmp(mu))
	}
}

func TestMomentFromUTC_RoundTripsTimestamp(t *testing.T) {
	calc := newCalc()
	resp, err := MomentFromUTC("2024-05-10T06:45:41.888Z", calc)
	require.NoError(t, err)
	assert.Zero(t, resp.MicroPulses.Sign())

	_, err = MomentFromUTC("garbage", calc)
	require.Error(t, err)
}

func TestMomentFromPulse(t *testing.T) {
	resp := MomentFromPulse(big.NewInt(17), newCalc())
	assert.Equal(t, int64(17), resp.Moment.Pulse.Int64())
	assert.Equal(t, int64(17_000_000), resp.MicroPulses.Int64())

	// Step geometry: 11 pulses per step, so pulse 17 sits in step 1.
	assert.Equal(t, 1, resp.Moment.StepIndex)
}

func TestMomentNow(t *testing.T) {
	mono := testutil.NewFakeMonotonic()
	k := clock.New(clock.WithMonotonic(mono.Read))
	calc := newCalc()

	_, err := MomentNow(k, calc)
	require.Error(t, err, "unseeded clock must refuse to assemble")

	k.SeedFromMicroPulses(big.NewInt(42_000_000))
	resp, err := MomentNow(k, calc)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.Moment.Pulse.Int64())
	assert.Equal(t, k.Session(), resp.Session)
}
