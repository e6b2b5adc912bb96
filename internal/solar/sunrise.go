package solar

import (
	"math"

	"github.com/kaiklok/kairos/internal/bridge"
	"github.com/kaiklok/kairos/internal/civil"
)

// Observer is the reference location sunrise is computed for.
type Observer struct {
	// LatitudeDeg is geographic latitude, north positive.
	LatitudeDeg float64

	// LongitudeDeg is geographic longitude, east positive.
	LongitudeDeg float64
}

// DefaultObserver is the engine's fixed reference location.
var DefaultObserver = Observer{LatitudeDeg: 31.7683, LongitudeDeg: 35.2137}

// Julian-day anchors and the fixed correction terms of the low-precision
// model. The refraction altitude folds standard atmospheric refraction and
// the solar disc radius into one constant.
const (
	unixEpochJD        = 2440587.5
	j2000JD            = 2451545.0
	msPerJulianDay     = 86_400_000.0
	obliquityDeg       = 23.4397
	refractionAltDeg   = -0.833
	meanAnomalyAtEpoch = 357.5291
	meanAnomalyPerDay  = 0.98560028
	perihelionArgDeg   = 102.9372
)

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// sunriseEpochMs computes sunrise on the given UTC calendar date for the
// observer, in epoch milliseconds. In polar conditions (no sunrise on that
// date) the solar transit is returned instead so the day-boundary rule
// stays total.
func sunriseEpochMs(date civil.Date, obs Observer) int64 {
	days := float64(bridge.ClampInt64(civil.DaysFromCivil(date)))

	// Days since J2000 for the date's midnight, corrected to local mean
	// solar time by the observer's longitude.
	n := days - (j2000JD - unixEpochJD) + 0.5
	jStar := n - obs.LongitudeDeg/360

	meanAnomaly := math.Mod(meanAnomalyAtEpoch+meanAnomalyPerDay*jStar, 360)
	if meanAnomaly < 0 {
		meanAnomaly += 360
	}
	m := radians(meanAnomaly)

	center := 1.9148*math.Sin(m) + 0.0200*math.Sin(2*m) + 0.0003*math.Sin(3*m)
	eclipticLongDeg := math.Mod(meanAnomaly+center+180+perihelionArgDeg, 360)
	l := radians(eclipticLongDeg)

	jTransit := j2000JD + jStar + 0.0053*math.Sin(m) - 0.0069*math.Sin(2*l)

	sinDecl := math.Sin(l) * math.Sin(radians(obliquityDeg))
	cosDecl := math.Cos(math.Asin(sinDecl))

	lat := radians(obs.LatitudeDeg)
	cosHourAngle := (math.Sin(radians(refractionAltDeg)) - math.Sin(lat)*sinDecl) /
		(math.Cos(lat) * cosDecl)

	jRise := jTransit
	if cosHourAngle >= -1 && cosHourAngle <= 1 {
		hourAngleDeg := degrees(math.Acos(cosHourAngle))
		jRise = jTransit - hourAngleDeg/360
	}

	return int64(math.Round((jRise - unixEpochJD) * msPerJulianDay))
}
