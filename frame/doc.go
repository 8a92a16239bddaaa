// Package frame defines reference-frame identities.
//
// A Frame is a small comparable value: a Kind ("GCRF", "ITRF", ...) plus an
// optional realization year for frames published in successive realizations
// (ITRF2008, ITRF2014, ETRF2000). Two frames are equal when both parts match,
// so Frame can be used directly as a map key and as a graph vertex.
//
// Frames carry no mutable state and no behavior beyond naming. How frames
// relate to each other lives in transform factories registered in a
// framegraph.Graph.
//
//	itrf := frame.ITRF(2014)
//	itrf.String()               // "ITRF2014"
//	e, _ := itrf.RealizationEpoch() // 2014-01-01 12:00 TT
//
// Predicates select frames without naming them exactly:
//
//	frame.OfKind(frame.KindITRF)           // any ITRF realization
//	frame.Realization(frame.KindITRF, 2008) // exactly ITRF2008
package frame
