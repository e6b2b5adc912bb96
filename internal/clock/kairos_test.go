package clock

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiklok/kairos/internal/pulse"
	"github.com/kaiklok/kairos/internal/testutil"
)

func TestNow_UnseededFails(t *testing.T) {
	k := New()
	_, err := k.Now()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotSeeded))
}

func TestNow_SeedThenRead(t *testing.T) {
	mono := testutil.NewFakeMonotonic()
	k := New(WithMonotonic(mono.Read))

	k.SeedFromMicroPulses(big.NewInt(1_000_000))
	got, err := k.Now()
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000), got.Int64())

	// One pulse of wall time ((3+√5)s ≈ 5.236068 s) is one pulse of
	// micropulses, within rounding.
	mono.Advance(5236068 * time.Microsecond)
	got, err = k.Now()
	require.NoError(t, err)
	assert.InDelta(t, 2_000_000, got.Int64(), 25)
}

func TestNow_MonotonicNonDecreasing(t *testing.T) {
	mono := testutil.NewFakeMonotonic()
	k := New(WithMonotonic(mono.Read))
	k.SeedFromMicroPulses(big.NewInt(0))

	prev := big.NewInt(-1)
	for i := 0; i < 1000; i++ {
		// Uneven advances, including zero: readings must never decrease.
		mono.Advance(time.Duration(i%7) * 1313 * time.Nanosecond)
		got, err := k.Now()
		require.NoError(t, err)
		require.GreaterOrEqual(t, got.Cmp(prev), 0, "reading %d went backward", i)
		prev = got
	}
}

func TestNow_NeverResamplesWallClock(t *testing.T) {
	// Seed from a fixed UTC instant, then advance only the monotonic
	// source: the reading depends on the seed and the delta, not on
	// whatever the wall clock says at read time.
	mono := testutil.NewFakeMonotonic()
	k := New(WithMonotonic(mono.Read))
	require.NoError(t, k.SeedFromUTC("2024-05-10T06:45:41.888Z"))

	got, err := k.Now()
	require.NoError(t, err)
	assert.Zero(t, got.Sign(), "genesis seed with zero delta reads zero")
}

func TestSeedFromUTC_PropagatesParseErrors(t *testing.T) {
	k := New()
	err := k.SeedFromUTC("not a timestamp")
	require.Error(t, err)

	_, nowErr := k.Now()
	assert.True(t, errors.Is(nowErr, ErrNotSeeded), "failed seed must not half-seed the clock")
}

func TestReseedReplacesAtomically(t *testing.T) {
	mono := testutil.NewFakeMonotonic()
	k := New(WithMonotonic(mono.Read))

	k.SeedFromMicroPulses(big.NewInt(100))
	mono.Advance(time.Hour)
	k.SeedFromMicroPulses(big.NewInt(500))

	// The new seed pairs with the monotonic reading at re-seed time, so the
	// hour that passed before re-seeding is invisible.
	got, err := k.Now()
	require.NoError(t, err)
	assert.Equal(t, int64(500), got.Int64())
}

func TestSetProvider_OverridesAndClears(t *testing.T) {
	k := New()
	k.SetProvider(func() (*big.Int, error) { return big.NewInt(777), nil })

	got, err := k.Now()
	require.NoError(t, err)
	assert.Equal(t, int64(777), got.Int64())

	// Clearing the provider on an unseeded clock surfaces ErrNotSeeded again.
	k.SetProvider(nil)
	_, err = k.Now()
	assert.True(t, errors.Is(err, ErrNotSeeded))
}

func TestSessionTokensAreUnique(t *testing.T) {
	a, b := New(), New()
	assert.NotEmpty(t, a.Session())
	assert.NotEqual(t, a.Session(), b.Session())
}

func TestTwoClocksAreIndependent(t *testing.T) {
	monoA, monoB := testutil.NewFakeMonotonic(), testutil.NewFakeMonotonic()
	a := New(WithMonotonic(monoA.Read))
	b := New(WithMonotonic(monoB.Read))

	a.SeedFromMicroPulses(big.NewInt(0))
	b.SeedFromMicroPulses(new(big.Int).Set(pulse.DayMicro))

	monoA.Advance(time.Second)
	gotA, err := a.Now()
	require.NoError(t, err)
	gotB, err := b.Now()
	require.NoError(t, err)

	assert.Positive(t, gotA.Sign())
	assert.Equal(t, pulse.DayMicro.Int64(), gotB.Int64())
}
