// Package log is the structured logging surface of refframe.
//
// Components accept a Logger and never reach for a global. Two
// implementations ship here: ZerologAdapter over github.com/rs/zerolog and
// NoopLogger, the default wherever no logger is configured.
//
//	g := framegraph.New(framegraph.WithLogger(log.NewZerologAdapter(os.Stderr, "debug")))
//
// Fields are built with the typed helpers (String, Int, Float64, Err,
// Stringer, Any) so adapters can map them onto native encoders.
package log
