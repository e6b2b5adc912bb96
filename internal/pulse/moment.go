package pulse

import (
	"math/big"

	"github.com/kaiklok/kairos/internal/bridge"
)

// Moment is the read-only fixed-cadence view of one micropulse coordinate.
type Moment struct {
	// Pulse is ⌊µ / 1 000 000⌋, negative before Genesis.
	Pulse *big.Int

	// DayIndex is ⌊µ / DayMicro⌋ against the exact day length.
	DayIndex *big.Int

	// Beat (0..35), StepIndex (0..43) and StepPct ([0,1)) locate the
	// instant on the lattice grid.
	Beat      int
	StepIndex int
	StepPct   float64

	// MicroIntoStep is the exact sub-step offset backing StepPct.
	MicroIntoStep *big.Int

	// Weekday is one of the 6 weekday labels; ChakraDay the matching entry
	// of the 7-name chakra table (indexed mod 6, see labels.go).
	Weekday   string
	ChakraDay string
}

// MomentFromMicroPulses derives the full moment view from one micropulse
// coordinate. Everything in the result is a pure function of mu.
func MomentFromMicroPulses(mu *big.Int) Moment {
	lat := LatticeFromMicroPulses(mu)
	dayIndex := bridge.DivFloor(mu, DayMicro)
	wd := int(bridge.ModFloor(dayIndex, daysPerWeekBig).Int64())

	return Moment{
		Pulse:         bridge.DivFloor(mu, microPerPulseBig),
		DayIndex:      dayIndex,
		Beat:          lat.Beat,
		StepIndex:     lat.StepIndex,
		StepPct:       lat.PercentIntoStep,
		MicroIntoStep: lat.MicroIntoStep,
		Weekday:       WeekdayNames[wd],
		ChakraDay:     ChakraNames[wd],
	}
}

// PulseInt64 is the overflow-clamped view of Pulse for fixed-width
// consumers. Values beyond the int64 range clamp to the nearest bound;
// the loss is deliberate and documented rather than a wrap.
func (m Moment) PulseInt64() int64 {
	return bridge.ClampInt64(m.Pulse)
}
