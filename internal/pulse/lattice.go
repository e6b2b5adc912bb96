package pulse

import (
	"math/big"

	"github.com/kaiklok/kairos/internal/bridge"
)

// Lattice locates a micropulse coordinate inside the beat/step grid of its
// day. All fields are derived with Euclidean arithmetic, so negative
// coordinates land in valid cells.
type Lattice struct {
	// Beat is the beat of the day, 0..35.
	Beat int

	// StepIndex is the step within the beat, 0..43.
	StepIndex int

	// MicroIntoStep is the exact micropulse offset into the step,
	// clamped into [0, StepMicro).
	MicroIntoStep *big.Int

	// PercentIntoStep is MicroIntoStep/StepMicro in [0, 1).
	// Display convenience only; exact math stays on MicroIntoStep.
	PercentIntoStep float64
}

// LatticeFromMicroPulses decomposes a micropulse coordinate against the
// truncated grid day. Each beat's final 30 µpulses (plus the sub-step
// remainder) fall past step 43·StepMicro; they clamp into step 43 so the
// published invariants hold: Beat ∈ [0,36), StepIndex ∈ [0,44),
// PercentIntoStep ∈ [0,1).
func LatticeFromMicroPulses(mu *big.Int) Lattice {
	inDay := bridge.ModFloor(mu, GridDayMicro)

	beat := new(big.Int).Quo(inDay, BeatMicro) // inDay ≥ 0, Quo is fine
	inBeat := new(big.Int).Rem(inDay, BeatMicro)

	step := new(big.Int).Quo(inBeat, StepMicro)
	stepIdx := int(step.Int64())
	if stepIdx > StepsPerBeat-1 {
		stepIdx = StepsPerBeat - 1
	}

	into := new(big.Int).Mul(big.NewInt(int64(stepIdx)), StepMicro)
	into.Sub(inBeat, into)
	// Ragged top of the beat: keep the offset inside the step.
	if into.Cmp(StepMicro) >= 0 {
		into.Sub(StepMicro, bigOne)
	}

	return Lattice{
		Beat:            int(beat.Int64()),
		StepIndex:       stepIdx,
		MicroIntoStep:   into,
		PercentIntoStep: float64(into.Int64()) / float64(StepMicro.Int64()),
	}
}

var bigOne = big.NewInt(1)
