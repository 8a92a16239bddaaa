package epoch

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrBadEpoch indicates unparsable input or a non-finite Julian date.
var ErrBadEpoch = errors.New("epoch: invalid epoch")

const (
	// SecondsPerDay is the length of a TT day in SI seconds.
	SecondsPerDay = 86400.0

	// DaysPerJulianYear is the length of a Julian year in days.
	DaysPerJulianYear = 365.25

	// SecondsPerJulianYear is the length of a Julian year in SI seconds.
	SecondsPerJulianYear = DaysPerJulianYear * SecondsPerDay

	// unixEpochJD is the Julian date of 1970-01-01T00:00:00.
	unixEpochJD = 2440587.5

	// j2000JD is the Julian date of 2000-01-01T12:00:00 TT.
	j2000JD = 2451545.0

	jdPrefix = "JD"
)

// Epoch is an instant on the TT scale, stored as a Julian date.
type Epoch struct {
	jd float64
}

// J2000 is 2000-01-01T12:00:00 TT.
var J2000 = Epoch{jd: j2000JD}

// FromJulianDate returns the epoch at Julian date jd.
func FromJulianDate(jd float64) (Epoch, error) {
	if math.IsNaN(jd) || math.IsInf(jd, 0) {
		return Epoch{}, fmt.Errorf("%w: julian date %v", ErrBadEpoch, jd)
	}

	return Epoch{jd: jd}, nil
}

// MustJulianDate is FromJulianDate for constants; it panics on non-finite input.
func MustJulianDate(jd float64) Epoch {
	e, err := FromJulianDate(jd)
	if err != nil {
		panic(err)
	}

	return e
}

// FromTime converts a wall-clock time, read as TT, into an Epoch.
func FromTime(t time.Time) Epoch {
	secs := float64(t.Unix()) + float64(t.Nanosecond())/1e9

	return Epoch{jd: unixEpochJD + secs/SecondsPerDay}
}

// FromYear returns year-01-01T12:00:00 TT, the conventional epoch of a
// frame realization labelled with that year.
func FromYear(year int) Epoch {
	return FromTime(time.Date(year, time.January, 1, 12, 0, 0, 0, time.UTC))
}

// JulianDate returns the Julian date (TT).
func (e Epoch) JulianDate() float64 { return e.jd }

// Time returns the epoch as a UTC-labelled time.Time, rounded to the microsecond.
func (e Epoch) Time() time.Time {
	secs := (e.jd - unixEpochJD) * SecondsPerDay
	whole := math.Floor(secs)
	micros := math.Round((secs - whole) * 1e6)

	return time.Unix(int64(whole), int64(micros)*int64(time.Microsecond)).UTC()
}

// Sub returns e - o in SI seconds.
func (e Epoch) Sub(o Epoch) float64 {
	return (e.jd - o.jd) * SecondsPerDay
}

// JulianYearsSince returns e - o in Julian years.
func (e Epoch) JulianYearsSince(o Epoch) float64 {
	return (e.jd - o.jd) / DaysPerJulianYear
}

// Add returns the epoch shifted by the given number of SI seconds.
func (e Epoch) Add(seconds float64) Epoch {
	return Epoch{jd: e.jd + seconds/SecondsPerDay}
}

// Before reports whether e is strictly earlier than o.
func (e Epoch) Before(o Epoch) bool { return e.jd < o.jd }

// After reports whether e is strictly later than o.
func (e Epoch) After(o Epoch) bool { return e.jd > o.jd }

// Equal reports whether e and o denote the same instant.
func (e Epoch) Equal(o Epoch) bool { return e.jd == o.jd }

// Compare returns -1, 0 or +1 as e is before, equal to, or after o.
func (e Epoch) Compare(o Epoch) int {
	switch {
	case e.jd < o.jd:
		return -1
	case e.jd > o.jd:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether e is the zero value (Julian date 0).
func (e Epoch) IsZero() bool { return e.jd == 0 }

// String formats the epoch as RFC 3339 with a TT suffix.
func (e Epoch) String() string {
	return e.Time().Format(time.RFC3339Nano) + " TT"
}

// Parse reads an epoch from one of:
//
//	2014-01-01T12:00:00Z   RFC 3339 (read as TT)
//	2014-01-01             date only, midnight
//	JD2451545.0            Julian date
//	2014                   year, i.e. FromYear(2014)
func Parse(s string) (Epoch, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), " TT"))
	if s == "" {
		return Epoch{}, fmt.Errorf("%w: empty input", ErrBadEpoch)
	}
	if strings.HasPrefix(strings.ToUpper(s), jdPrefix) {
		jd, err := strconv.ParseFloat(s[len(jdPrefix):], 64)
		if err != nil {
			return Epoch{}, fmt.Errorf("%w: %q: %v", ErrBadEpoch, s, err)
		}

		return FromJulianDate(jd)
	}
	if len(s) == 4 {
		if year, err := strconv.Atoi(s); err == nil {
			return FromYear(year), nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return FromTime(t), nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return FromTime(t), nil
	}

	return Epoch{}, fmt.Errorf("%w: %q", ErrBadEpoch, s)
}
