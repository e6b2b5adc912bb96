package pulse

import "math/big"

// GenesisEpochMs is the fixed epoch anchor: 2024-05-10T06:45:41.888Z.
// Every micropulse count in the system is measured from this instant.
const GenesisEpochMs int64 = 1715323541888

// Grid geometry. The figures are fixed for all time; nothing in the engine
// ever reconfigures them.
const (
	MicroPerPulse = 1_000_000

	BeatsPerDay   = 36
	StepsPerBeat  = 44
	PulsesPerStep = 11

	DaysPerWeek   = 6
	WeeksPerMonth = 7
	DaysPerMonth  = DaysPerWeek * WeeksPerMonth // 42
	MonthsPerYear = 8
	DaysPerYear   = DaysPerMonth * MonthsPerYear // 336
)

// Day-length constants in micropulses. The exact day is 17 491.270421
// pulses; it is NOT a whole multiple of 36·44, so the lattice uses a
// truncated grid instead:
//
//	BeatMicro    = ⌊DayMicro / 36⌋
//	StepMicro    = ⌊BeatMicro / 44⌋
//	GridDayMicro = 36 · BeatMicro
//
// The exact day indexes days and weekdays; the grid day decomposes beats
// and steps. The two deliberately diverge by 29 µpulses per day, and each
// beat carries a 30-µpulse ragged top that the decomposer clamps into
// step 43. Unifying them would shift every published beat boundary.
var (
	DayMicro     = big.NewInt(17_491_270_421)
	BeatMicro    = big.NewInt(485_868_622)
	StepMicro    = big.NewInt(11_042_468)
	GridDayMicro = big.NewInt(17_491_270_392)

	microPerPulseBig = big.NewInt(MicroPerPulse)
	genesisMsBig     = big.NewInt(GenesisEpochMs)
	daysPerWeekBig   = big.NewInt(DaysPerWeek)
	daysPerYearBig   = big.NewInt(DaysPerYear)
)
