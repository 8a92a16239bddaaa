package frame

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/refframe/epoch"
)

// Sentinel errors for frame construction and parsing.
var (
	// ErrEmptyKind is returned when a frame is built from an empty kind.
	ErrEmptyKind = errors.New("frame: empty kind")

	// ErrBadFrame is returned by Parse for unrecognized names.
	ErrBadFrame = errors.New("frame: invalid frame name")
)

// Kind names a family of frames.
type Kind string

// Built-in kinds.
const (
	KindICRF    Kind = "ICRF"
	KindGCRF    Kind = "GCRF"
	KindEME2000 Kind = "EME2000"
	KindCIRS    Kind = "CIRS"
	KindTIRS    Kind = "TIRS"
	KindITRF    Kind = "ITRF"
	KindETRF    Kind = "ETRF"
)

// realizedKinds are the kinds Parse splits into kind + year.
var realizedKinds = []Kind{KindITRF, KindETRF}

// Frame identifies a reference frame. The zero value is not a valid frame.
type Frame struct {
	Kind        Kind
	Realization int // year; 0 for non-realized frames
}

// New returns the non-realized frame of the given kind. Kinds that would not
// read back unchanged through Parse are rejected: "ITRF" alone, "ITRF2014"
// (use Realized), or "gcrf" (use GCRF).
func New(kind Kind) (Frame, error) {
	f := Frame{Kind: kind}
	if err := f.Validate(); err != nil {
		return Frame{}, err
	}

	return f, nil
}

// Realized returns the realization of kind labelled with year.
func Realized(kind Kind, year int) (Frame, error) {
	if year <= 0 {
		return Frame{}, fmt.Errorf("%w: %s realization year %d", ErrBadFrame, kind, year)
	}
	f := Frame{Kind: kind, Realization: year}
	if err := f.Validate(); err != nil {
		return Frame{}, err
	}

	return f, nil
}

// Validate reports whether f is canonical, that is Parse(f.String()) == f.
// Two distinct canonical frames never share a name.
func (f Frame) Validate() error {
	if strings.TrimSpace(string(f.Kind)) == "" {
		return ErrEmptyKind
	}
	back, err := Parse(f.String())
	if err != nil {
		return err
	}
	if back != f {
		return fmt.Errorf("%w: kind %q realization %d reads back as %s",
			ErrBadFrame, f.Kind, f.Realization, back)
	}

	return nil
}

// ICRF returns the International Celestial Reference Frame.
func ICRF() Frame { return Frame{Kind: KindICRF} }

// GCRF returns the Geocentric Celestial Reference Frame.
func GCRF() Frame { return Frame{Kind: KindGCRF} }

// EME2000 returns the mean equator and equinox of J2000 frame.
func EME2000() Frame { return Frame{Kind: KindEME2000} }

// CIRS returns the Celestial Intermediate Reference System.
func CIRS() Frame { return Frame{Kind: KindCIRS} }

// TIRS returns the Terrestrial Intermediate Reference System.
func TIRS() Frame { return Frame{Kind: KindTIRS} }

// ITRF returns the ITRF realization of the given year.
func ITRF(year int) Frame { return Frame{Kind: KindITRF, Realization: year} }

// ETRF returns the ETRF realization of the given year.
func ETRF(year int) Frame { return Frame{Kind: KindETRF, Realization: year} }

// IsZero reports whether f is the zero Frame.
func (f Frame) IsZero() bool { return f == Frame{} }

// IsRealized reports whether f carries a realization year.
func (f Frame) IsRealized() bool { return f.Realization != 0 }

// RealizationEpoch returns year-01-01 12:00 TT for realized frames.
func (f Frame) RealizationEpoch() (epoch.Epoch, bool) {
	if !f.IsRealized() {
		return epoch.Epoch{}, false
	}

	return epoch.FromYear(f.Realization), true
}

// String returns the canonical name, e.g. "GCRF" or "ITRF2014".
func (f Frame) String() string {
	if f.IsRealized() {
		return string(f.Kind) + strconv.Itoa(f.Realization)
	}

	return string(f.Kind)
}

// Parse is the inverse of String. Names of the realized kinds must carry a
// four-digit year ("ITRF2014"); any other non-empty name becomes a
// non-realized frame of that kind.
func Parse(s string) (Frame, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Frame{}, fmt.Errorf("%w: %w", ErrBadFrame, ErrEmptyKind)
	}
	upper := strings.ToUpper(s)
	for _, k := range realizedKinds {
		if !strings.HasPrefix(upper, string(k)) {
			continue
		}
		rest := upper[len(k):]
		if len(rest) != 4 {
			return Frame{}, fmt.Errorf("%w: %q needs a 4-digit realization year", ErrBadFrame, s)
		}
		year, err := strconv.Atoi(rest)
		if err != nil || year <= 0 {
			return Frame{}, fmt.Errorf("%w: %q", ErrBadFrame, s)
		}

		return Frame{Kind: k, Realization: year}, nil
	}
	for _, k := range []Kind{KindICRF, KindGCRF, KindEME2000, KindCIRS, KindTIRS} {
		if upper == string(k) {
			return Frame{Kind: k}, nil
		}
	}

	return Frame{Kind: Kind(s)}, nil
}

// MustParse is Parse for static names; it panics on error.
func MustParse(s string) Frame {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return f
}
