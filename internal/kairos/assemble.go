package kairos

import (
	"fmt"
	"math/big"

	"github.com/kaiklok/kairos/internal/civil"
	"github.com/kaiklok/kairos/internal/clock"
	"github.com/kaiklok/kairos/internal/pulse"
	"github.com/kaiklok/kairos/internal/solar"
)

// Response is the assembled view of one instant. Every field is a pure
// function of MicroPulses; Session is set only by MomentNow.
type Response struct {
	// MicroPulses is the authoritative coordinate everything else derives
	// from.
	MicroPulses *big.Int

	// Timestamp is the instant rendered back as a signed ISO datetime.
	Timestamp string

	Moment  pulse.Moment
	Eternal pulse.EternalIndices
	Solar   solar.Indices

	// Narrative is the human-oriented one-line summary.
	Narrative string

	// Session identifies the clock instance behind a MomentNow reading.
	Session string
}

// Assemble derives the full response from a micropulse coordinate. The
// epoch-ms used for the solar layer and the timestamp is computed from the
// same coordinate, never re-sampled.
func Assemble(mu *big.Int, calc *solar.Calculator) Response {
	epochMs := pulse.EpochMsFromMicroPulses(mu)
	moment := pulse.MomentFromMicroPulses(mu)
	eternal := pulse.EternalFromDayIndex(moment.DayIndex)
	sol := calc.IndicesFromEpochMs(epochMs)

	return Response{
		MicroPulses: new(big.Int).Set(mu),
		Timestamp:   civil.FormatEpochMs(epochMs),
		Moment:      moment,
		Eternal:     eternal,
		Solar:       sol,
		Narrative:   narrate(moment, eternal),
	}
}

// MomentFromUTC assembles the response for any accepted instant form.
func MomentFromUTC(instant any, calc *solar.Calculator) (Response, error) {
	mu, err := pulse.MicroPulsesSinceGenesis(instant)
	if err != nil {
		return Response{}, err
	}
	return Assemble(mu, calc), nil
}

// MomentFromPulse assembles the response for a whole-pulse index.
func MomentFromPulse(pulseIndex *big.Int, calc *solar.Calculator) Response {
	mu := new(big.Int).Mul(pulseIndex, big.NewInt(pulse.MicroPerPulse))
	return Assemble(mu, calc)
}

// MomentNow assembles the response for the clock's current reading and
// stamps it with the clock's session token.
func MomentNow(k *clock.Kairos, calc *solar.Calculator) (Response, error) {
	mu, err := k.Now()
	if err != nil {
		return Response{}, err
	}
	resp := Assemble(mu, calc)
	resp.Session = k.Session()
	return resp, nil
}

func narrate(m pulse.Moment, e pulse.EternalIndices) string {
	return fmt.Sprintf("Beat %d/%d, step %d/%d: %s, day %d of %s, week of %s",
		m.Beat, pulse.BeatsPerDay, m.StepIndex, pulse.StepsPerBeat,
		m.Weekday, e.DayOfMonth, e.Month, e.Week)
}
