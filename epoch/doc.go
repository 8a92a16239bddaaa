// Package epoch provides the time value that frame transforms are evaluated at.
//
// An Epoch is an opaque, ordered, comparable instant stored as a Julian date on
// the Terrestrial Time (TT) scale. Time-scale conversions (UTC, TAI, TDB ...)
// are deliberately not modeled here: FromTime takes the wall-clock reading as
// TT. Callers that need sub-minute accuracy across scales convert beforehand.
//
// Epoch values are plain structs and can be used as map keys:
//
//	e := epoch.FromYear(2014)           // 2014-01-01 12:00 TT
//	dt := e.Sub(epoch.J2000)            // seconds since J2000
//	yrs := e.JulianYearsSince(epoch.J2000)
package epoch
