package pulse

import (
	"math/big"

	"github.com/kaiklok/kairos/internal/bridge"
)

// EternalIndices places a day index inside the fixed 336-day calendar:
// 6-day weeks, 42-day months of 7 named weeks, 8-month years.
type EternalIndices struct {
	// DayIndex is the day coordinate the rest is derived from.
	DayIndex *big.Int

	// YearIndex is ⌊dayIndex / 336⌋, negative before Genesis year 0.
	YearIndex *big.Int

	// MonthIndex is the month within the year, 0..7.
	MonthIndex int

	// WeekIndex is the week within the month, 0..6.
	WeekIndex int

	// DayOfMonth is 1-based, 1..42.
	DayOfMonth int

	// DayOfWeek is 0..5.
	DayOfWeek int

	// Label strings from the fixed tables.
	Weekday string
	Month   string
	Week    string
}

// EternalFromDayIndex computes the eternal-calendar indices for a day
// index. Euclidean division keeps every cyclic field valid for negative
// (pre-Genesis) days; only YearIndex goes negative.
func EternalFromDayIndex(dayIndex *big.Int) EternalIndices {
	dayInYear := int(bridge.ModFloor(dayIndex, daysPerYearBig).Int64()) // [0, 335]
	monthIndex := dayInYear / DaysPerMonth
	dayInMonth := dayInYear % DaysPerMonth
	weekIndex := dayInMonth / DaysPerWeek
	dayOfWeek := int(bridge.ModFloor(dayIndex, daysPerWeekBig).Int64())

	return EternalIndices{
		DayIndex:   new(big.Int).Set(dayIndex),
		YearIndex:  bridge.DivFloor(dayIndex, daysPerYearBig),
		MonthIndex: monthIndex,
		WeekIndex:  weekIndex,
		DayOfMonth: dayInMonth + 1,
		DayOfWeek:  dayOfWeek,
		Weekday:    WeekdayNames[dayOfWeek],
		Month:      MonthNames[monthIndex],
		Week:       WeekNames[weekIndex],
	}
}
