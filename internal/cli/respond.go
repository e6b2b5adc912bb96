package cli

import (
	"fmt"
	"strings"

	"github.com/kaiklok/kairos/internal/kairos"
)

// responsePayload is the JSON projection of an assembled response. Big
// integers travel as decimal strings so consumers never face precision
// loss in a JSON number.
type responsePayload struct {
	Timestamp   string  `json:"timestamp"`
	MicroPulses string  `json:"micro_pulses"`
	Pulse       string  `json:"pulse"`
	Beat        int     `json:"beat"`
	StepIndex   int     `json:"step_index"`
	StepPct     float64 `json:"step_pct"`
	Weekday     string  `json:"weekday"`
	ChakraDay   string  `json:"chakra_day"`

	Eternal eternalPayload `json:"eternal"`
	Solar   solarPayload   `json:"solar"`

	Narrative string `json:"narrative"`
	Session   string `json:"session,omitempty"`
}

type eternalPayload struct {
	DayIndex   string `json:"day_index"`
	YearIndex  string `json:"year_index"`
	MonthIndex int    `json:"month_index"`
	WeekIndex  int    `json:"week_index"`
	DayOfMonth int    `json:"day_of_month"`
	Month      string `json:"month"`
	Week       string `json:"week"`
}

type solarPayload struct {
	Date           string `json:"date"`
	DayIndex       string `json:"day_index"`
	Weekday        string `json:"weekday"`
	Month          string `json:"month"`
	SunriseEpochMs int64  `json:"sunrise_epoch_ms"`
}

func payloadOf(resp kairos.Response) responsePayload {
	return responsePayload{
		Timestamp:   resp.Timestamp,
		MicroPulses: resp.MicroPulses.String(),
		Pulse:       resp.Moment.Pulse.String(),
		Beat:        resp.Moment.Beat,
		StepIndex:   resp.Moment.StepIndex,
		StepPct:     resp.Moment.StepPct,
		Weekday:     resp.Moment.Weekday,
		ChakraDay:   resp.Moment.ChakraDay,
		Eternal: eternalPayload{
			DayIndex:   resp.Eternal.DayIndex.String(),
			YearIndex:  resp.Eternal.YearIndex.String(),
			MonthIndex: resp.Eternal.MonthIndex,
			WeekIndex:  resp.Eternal.WeekIndex,
			DayOfMonth: resp.Eternal.DayOfMonth,
			Month:      resp.Eternal.Month,
			Week:       resp.Eternal.Week,
		},
		Solar: solarPayload{
			Date:           resp.Solar.SolarDate.String(),
			DayIndex:       resp.Solar.DayIndex.String(),
			Weekday:        resp.Solar.Weekday,
			Month:          resp.Solar.Month,
			SunriseEpochMs: resp.Solar.SunriseEpochMs,
		},
		Narrative: resp.Narrative,
		Session:   resp.Session,
	}
}

// renderText is the human-readable projection shared by all commands.
func renderText(resp kairos.Response) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", resp.Narrative)
	fmt.Fprintf(&b, "  timestamp    %s\n", resp.Timestamp)
	fmt.Fprintf(&b, "  pulse        %s\n", resp.Moment.Pulse.String())
	fmt.Fprintf(&b, "  micropulses  %s\n", resp.MicroPulses.String())
	fmt.Fprintf(&b, "  eternal      year %s, %s, day %d (%s week)\n",
		resp.Eternal.YearIndex.String(), resp.Eternal.Month, resp.Eternal.DayOfMonth, resp.Eternal.Week)
	fmt.Fprintf(&b, "  solar        %s (solar day %s, %s)",
		resp.Solar.SolarDate.String(), resp.Solar.DayIndex.String(), resp.Solar.Weekday)
	return b.String()
}

func respond(f *OutputFormatter, resp kairos.Response) error {
	return f.Success(payloadOf(resp), renderText(resp))
}
