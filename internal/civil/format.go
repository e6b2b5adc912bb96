package civil

import (
	"fmt"
	"math/big"

	"github.com/kaiklok/kairos/internal/bridge"
)

// FormatEpochMs renders epoch milliseconds as a signed-year extended ISO
// datetime in UTC, always with millisecond precision:
//
//	-0044-03-15T12:00:00.000Z
//	+10000-01-01T00:00:00.000Z
//
// FormatEpochMs(ParseEpochMs(s)) is the identity for strict UTC inputs.
func FormatEpochMs(ms *big.Int) string {
	days := bridge.DivFloor(ms, bigMsDay)
	rem := bridge.ModFloor(ms, bigMsDay).Int64()

	d := CivilFromDays(days)
	hour := rem / 3_600_000
	rem -= hour * 3_600_000
	minute := rem / 60_000
	rem -= minute * 60_000
	second := rem / 1_000
	milli := rem - second*1_000

	return fmt.Sprintf("%s-%02d-%02dT%02d:%02d:%02d.%03dZ",
		formatYear(d.Year), d.Month, d.Day, hour, minute, second, milli)
}

// formatYear renders an astronomical year for ISO output: zero-padded to 4
// digits, '-' for negative years, '+' prefix once the year needs more than
// 4 digits (ISO 8601 expanded representation).
func formatYear(year *big.Int) string {
	abs := new(big.Int).Abs(year)
	digits := abs.String()
	for len(digits) < 4 {
		digits = "0" + digits
	}
	switch {
	case year.Sign() < 0:
		return "-" + digits
	case len(digits) > 4:
		return "+" + digits
	default:
		return digits
	}
}
