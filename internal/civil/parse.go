package civil

import (
	"math/big"
	"strings"
	"time"
)

// ParseEpochMs converts a signed-year extended ISO datetime string to epoch
// milliseconds. The strict grammar is tried first; on failure the platform
// parser is consulted as an explicit leniency path and its result accepted
// only if it parses cleanly. Anything else fails with TimestampError.
func ParseEpochMs(s string) (*big.Int, error) {
	ms, err := parseStrict(s)
	if err == nil {
		return ms, nil
	}

	// Leniency path: platform parsing, RFC 3339 forms only. The strict
	// error is the one worth reporting if both fail.
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, perr := time.Parse(layout, s); perr == nil {
			return big.NewInt(t.UnixMilli()), nil
		}
	}
	return nil, err
}

// parseStrict matches ±YYYY…-MM-DDThh:mm[:ss[.fraction]](Z|±hh:mm) with an
// unbounded year field. The scan is positional; every branch that fails
// names the part of the grammar it was expecting.
func parseStrict(s string) (*big.Int, error) {
	p := &scanner{src: s}

	negYear := false
	switch {
	case p.peek() == '-':
		negYear = true
		p.pos++
	case p.peek() == '+':
		p.pos++
	}

	yearDigits := p.takeDigits()
	if len(yearDigits) < 4 {
		return nil, timestampErr(s, "expected a year of at least 4 digits")
	}
	year, ok := new(big.Int).SetString(yearDigits, 10)
	if !ok {
		return nil, timestampErr(s, "unreadable year")
	}
	if negYear {
		year.Neg(year)
	}

	month, err := p.fixedField(s, 2, '-', "month")
	if err != nil {
		return nil, err
	}
	day, err := p.fixedField(s, 2, '-', "day")
	if err != nil {
		return nil, err
	}
	hour, err := p.fixedField(s, 2, 'T', "hour")
	if err != nil {
		return nil, err
	}
	minute, err := p.fixedField(s, 2, ':', "minute")
	if err != nil {
		return nil, err
	}

	// The fraction is only grammatical after explicit seconds.
	second := 0
	msFrac := int64(0)
	if p.peek() == ':' {
		second, err = p.fixedField(s, 2, ':', "second")
		if err != nil {
			return nil, err
		}
		if p.peek() == '.' {
			p.pos++
			frac := p.takeDigits()
			if len(frac) == 0 || len(frac) > 9 {
				return nil, timestampErr(s, "expected 1 to 9 fractional-second digits")
			}
			// Zero-pad to nanoseconds, then round to the nearest millisecond.
			ns := mustInt(frac + strings.Repeat("0", 9-len(frac)))
			msFrac = (ns + 500_000) / 1_000_000
		}
	}

	offsetMin, err := p.zoneOffset(s)
	if err != nil {
		return nil, err
	}
	if p.pos != len(s) {
		return nil, timestampErr(s, "trailing characters after zone offset")
	}

	if month < 1 || month > 12 {
		return nil, timestampErr(s, "month out of range")
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return nil, timestampErr(s, "day out of range for month")
	}
	if hour > 23 || minute > 59 || second > 59 {
		return nil, timestampErr(s, "time of day out of range")
	}

	ms := DaysFromCivil(Date{Year: year, Month: month, Day: day})
	ms.Mul(ms, bigMsDay)
	clock := int64(hour)*3_600_000 + int64(minute)*60_000 + int64(second)*1_000 + msFrac
	clock -= int64(offsetMin) * 60_000
	ms.Add(ms, big.NewInt(clock))
	return ms, nil
}

type scanner struct {
	src string
	pos int
}

func (p *scanner) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *scanner) takeDigits() string {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	return p.src[start:p.pos]
}

// fixedField consumes a separator byte followed by exactly n digits.
func (p *scanner) fixedField(full string, n int, sep byte, what string) (int, error) {
	if p.peek() != sep {
		return 0, timestampErr(full, "expected '"+string(sep)+"' before "+what)
	}
	p.pos++
	start := p.pos
	for p.pos < len(p.src) && p.pos-start < n {
		c := p.src[p.pos]
		if c < '0' || c > '9' {
			break
		}
		p.pos++
	}
	if p.pos-start != n {
		return 0, timestampErr(full, "expected "+what+" as 2 digits")
	}
	return int(mustInt(p.src[start:p.pos])), nil
}

// zoneOffset consumes the mandatory zone: 'Z' or ±hh:mm.
// Returns the offset in minutes east of UTC.
func (p *scanner) zoneOffset(full string) (int, error) {
	switch p.peek() {
	case 'Z':
		p.pos++
		return 0, nil
	case '+', '-':
		sign := 1
		if p.peek() == '-' {
			sign = -1
		}
		p.pos++
		start := p.pos
		if len(p.src)-start < 5 || p.src[start+2] != ':' {
			return 0, timestampErr(full, "expected zone offset as ±hh:mm")
		}
		hh, mm := p.src[start:start+2], p.src[start+3:start+5]
		for _, d := range hh + mm {
			if d < '0' || d > '9' {
				return 0, timestampErr(full, "expected zone offset as ±hh:mm")
			}
		}
		p.pos = start + 5
		h, m := mustInt(hh), mustInt(mm)
		if h > 23 || m > 59 {
			return 0, timestampErr(full, "zone offset out of range")
		}
		return sign * int(h*60+m), nil
	default:
		return 0, timestampErr(full, "missing zone offset (Z or ±hh:mm)")
	}
}

// mustInt parses a digit run already validated by the scanner.
func mustInt(digits string) int64 {
	var n int64
	for i := 0; i < len(digits); i++ {
		n = n*10 + int64(digits[i]-'0')
	}
	return n
}
