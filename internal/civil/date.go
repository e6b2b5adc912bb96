package civil

import (
	"fmt"
	"math/big"

	"github.com/kaiklok/kairos/internal/bridge"
)

// MsPerDay is the length of a civil day in milliseconds.
const MsPerDay = 86_400_000

var (
	big400    = big.NewInt(400)
	big146097 = big.NewInt(146097)
	bigMsDay  = big.NewInt(MsPerDay)
)

// Date is a proleptic Gregorian calendar date with an arbitrary-precision
// year (astronomical numbering: year 0 exists and precedes year 1).
type Date struct {
	Year  *big.Int
	Month int // 1..12
	Day   int // 1..31
}

// DateOf builds a Date from an int64 year. Convenience for callers whose
// years are known to be small (the solar indexer, tests).
func DateOf(year int64, month, day int) Date {
	return Date{Year: big.NewInt(year), Month: month, Day: day}
}

// AddDays returns the date n civil days after d (n may be negative).
func (d Date) AddDays(n int64) Date {
	z := DaysFromCivil(d)
	z.Add(z, big.NewInt(n))
	return CivilFromDays(z)
}

// String renders the date as a signed ISO calendar date ("-0044-03-15").
func (d Date) String() string {
	return fmt.Sprintf("%s-%02d-%02d", formatYear(d.Year), d.Month, d.Day)
}

// Equal reports whether two dates name the same day.
func (d Date) Equal(o Date) bool {
	return d.Year.Cmp(o.Year) == 0 && d.Month == o.Month && d.Day == o.Day
}

// IsLeap reports whether the (astronomical) year is a proleptic Gregorian
// leap year. Euclidean modulo keeps the rule correct for negative years.
func IsLeap(year *big.Int) bool {
	mod := func(n int64) int64 {
		return bridge.ModFloor(year, big.NewInt(n)).Int64()
	}
	return mod(4) == 0 && (mod(100) != 0 || mod(400) == 0)
}

// DaysInMonth returns the day count of a month in the given year.
func DaysInMonth(year *big.Int, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeap(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// DaysFromCivil converts a calendar date to the count of days since
// 1970-01-01. The era/year-of-era decomposition treats January and February
// as months 13 and 14 of the prior year, so leap-day placement falls out of
// integer arithmetic with no table of month lengths.
func DaysFromCivil(d Date) *big.Int {
	y := new(big.Int).Set(d.Year)
	if d.Month <= 2 {
		y.Sub(y, one)
	}

	era := bridge.DivFloor(y, big400)
	yoe := new(big.Int).Mul(era, big400)
	yoe.Sub(y, yoe) // [0, 399]
	ye := yoe.Int64()

	mp := int64(d.Month) - 3
	if d.Month <= 2 {
		mp = int64(d.Month) + 9
	}
	doy := (153*mp+2)/5 + int64(d.Day) - 1       // [0, 365]
	doe := ye*365 + ye/4 - ye/100 + doy           // [0, 146096]

	days := new(big.Int).Mul(era, big146097)
	days.Add(days, big.NewInt(doe-719468))
	return days
}

// CivilFromDays is the inverse of DaysFromCivil.
func CivilFromDays(z *big.Int) Date {
	shifted := new(big.Int).Add(z, big.NewInt(719468))

	era := bridge.DivFloor(shifted, big146097)
	doeBig := new(big.Int).Mul(era, big146097)
	doeBig.Sub(shifted, doeBig)
	doe := doeBig.Int64() // [0, 146096]

	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	doy := doe - (365*yoe + yoe/4 - yoe/100)               // [0, 365]
	mp := (5*doy + 2) / 153                                // [0, 11]
	day := int(doy - (153*mp+2)/5 + 1)                     // [1, 31]
	month := int(mp + 3)
	if mp >= 10 {
		month = int(mp - 9)
	}

	year := new(big.Int).Mul(era, big400)
	year.Add(year, big.NewInt(yoe))
	if month <= 2 {
		year.Add(year, one)
	}
	return Date{Year: year, Month: month, Day: day}
}

// DateFromEpochMs returns the UTC calendar date containing the instant.
func DateFromEpochMs(ms *big.Int) Date {
	return CivilFromDays(bridge.DivFloor(ms, bigMsDay))
}

var one = big.NewInt(1)
