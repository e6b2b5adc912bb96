package solar

import (
	"math/big"

	"github.com/kaiklok/kairos/internal/bridge"
	"github.com/kaiklok/kairos/internal/civil"
	"github.com/kaiklok/kairos/internal/pulse"
)

// Calculator memoizes sunrise per calendar date for one observer.
//
// The cache is append-only: a key, once written, is never recomputed or
// overwritten, so every caller that asks about a date sees the same
// millisecond forever. Single-writer by construction; a multi-goroutine
// host must wrap the calculator in its own synchronization.
type Calculator struct {
	obs   Observer
	cache map[string]int64

	// genesisSolarDays is the civil day number of the Genesis instant's
	// solar date, resolved lazily so it goes through the same cache.
	genesisSolarDays *big.Int
}

// NewCalculator creates a calculator for the observer.
func NewCalculator(obs Observer) *Calculator {
	return &Calculator{obs: obs, cache: make(map[string]int64)}
}

// NewCalculatorWithCache creates a calculator pre-warmed with previously
// computed sunrise entries (for example, loaded from the sunrise store).
// The seed map is copied.
func NewCalculatorWithCache(obs Observer, seed map[string]int64) *Calculator {
	c := NewCalculator(obs)
	for k, v := range seed {
		c.cache[k] = v
	}
	return c
}

// Observer returns the calculator's reference location.
func (c *Calculator) Observer() Observer { return c.obs }

// SunriseEpochMs returns the memoized sunrise for the date.
func (c *Calculator) SunriseEpochMs(date civil.Date) int64 {
	key := date.String()
	if ms, ok := c.cache[key]; ok {
		return ms
	}
	ms := sunriseEpochMs(date, c.obs)
	c.cache[key] = ms
	return ms
}

// Snapshot returns a copy of the cache for persistence.
func (c *Calculator) Snapshot() map[string]int64 {
	out := make(map[string]int64, len(c.cache))
	for k, v := range c.cache {
		out[k] = v
	}
	return out
}

// SolarDate resolves the solar calendar date owning the instant: the
// instant's own UTC date, or the previous date when the instant precedes
// that date's sunrise.
func (c *Calculator) SolarDate(epochMs *big.Int) civil.Date {
	ms := bridge.ClampInt64(epochMs)
	date := civil.DateFromEpochMs(big.NewInt(ms))
	if ms < c.SunriseEpochMs(date) {
		date = date.AddDays(-1)
	}
	return date
}

// Indices are the solar-calendar analogue of the eternal indices, anchored
// so the Genesis instant's solar date is solar day zero.
type Indices struct {
	pulse.EternalIndices

	// SolarDate is the owning UTC calendar date.
	SolarDate civil.Date

	// SunriseEpochMs is the memoized sunrise that opened the solar day.
	SunriseEpochMs int64
}

// IndicesFromEpochMs computes the solar indices for an instant. Instants
// outside the int64 epoch-ms range clamp to the boundary date first; the
// loss is documented, not a wrap.
func (c *Calculator) IndicesFromEpochMs(epochMs *big.Int) Indices {
	date := c.SolarDate(epochMs)
	dayNumber := new(big.Int).Sub(civil.DaysFromCivil(date), c.genesisDays())
	return Indices{
		EternalIndices: pulse.EternalFromDayIndex(dayNumber),
		SolarDate:      date,
		SunriseEpochMs: c.SunriseEpochMs(date),
	}
}

func (c *Calculator) genesisDays() *big.Int {
	if c.genesisSolarDays == nil {
		d := c.SolarDate(big.NewInt(pulse.GenesisEpochMs))
		c.genesisSolarDays = civil.DaysFromCivil(d)
	}
	return c.genesisSolarDays
}
