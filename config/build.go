package config

import (
	"fmt"
	"math"

	"github.com/katalvlaran/refframe/epoch"
	"github.com/katalvlaran/refframe/frame"
	"github.com/katalvlaran/refframe/framegraph"
	"github.com/katalvlaran/refframe/log"
	"github.com/katalvlaran/refframe/matrix"
	"github.com/katalvlaran/refframe/transform"
)

// Option configures Build.
type Option func(*builder)

// WithLogger reports each registration to l.
func WithLogger(l log.Logger) Option {
	return func(b *builder) {
		if l != nil {
			b.logger = l
		}
	}
}

type builder struct {
	logger log.Logger
}

// Build registers the roots, frames and links of doc with g, in document
// order. The first failure aborts; registrations made before it remain.
func Build(doc *Document, g *framegraph.Graph, opts ...Option) error {
	if doc == nil {
		return fmt.Errorf("%w: nil document", ErrInvalidConfig)
	}
	b := &builder{logger: log.NewNoopLogger()}
	for _, opt := range opts {
		opt(b)
	}

	for i, name := range doc.Roots {
		f, err := frame.Parse(name)
		if err != nil {
			return fmt.Errorf("%w: roots[%d]: %w", ErrInvalidConfig, i, err)
		}
		if err = g.AddRoot(f); err != nil {
			return fmt.Errorf("config: roots[%d]: %w", i, err)
		}
		b.logger.Debug("root added", log.Stringer("frame", f))
	}

	for i, spec := range doc.Frames {
		parent, child, fwd, inv, err := spec.Edge.pair(spec.Parent, spec.Name, spec.Inverse)
		if err != nil {
			return fmt.Errorf("%w: frames[%d] %s: %w", ErrInvalidConfig, i, spec.Name, err)
		}
		if err = g.Register(parent, child, fwd, inv); err != nil {
			return fmt.Errorf("config: frames[%d] %s: %w", i, spec.Name, err)
		}
		b.logger.Debug("frame registered",
			log.Stringer("parent", parent),
			log.Stringer("child", child),
			log.String("type", spec.Edge.Type),
		)
	}

	for i, spec := range doc.Links {
		from, to, fwd, inv, err := spec.Edge.pair(spec.From, spec.To, spec.Inverse)
		if err != nil {
			return fmt.Errorf("%w: links[%d]: %w", ErrInvalidConfig, i, err)
		}
		if err = g.Connect(from, to, fwd, inv); err != nil {
			return fmt.Errorf("config: links[%d]: %w", i, err)
		}
		b.logger.Debug("link added", log.Stringer("from", from), log.Stringer("to", to))
	}

	b.logger.Info("frame graph built",
		log.Int("frames", len(g.Frames())),
		log.Int("edges", g.EdgeCount()),
	)

	return nil
}

// pair builds the forward factory a → b and, when inverse is set, b → a.
func (s EdgeSpec) pair(aName, bName string, inverse *EdgeSpec) (a, b frame.Frame, fwd, inv transform.Factory, err error) {
	if a, err = frame.Parse(aName); err != nil {
		return
	}
	if b, err = frame.Parse(bName); err != nil {
		return
	}
	if fwd, err = s.factory(a, b); err != nil {
		return
	}
	if inverse != nil {
		if inv, err = inverse.factory(b, a); err != nil {
			err = fmt.Errorf("inverse: %w", err)
		}
	}

	return
}

// factory builds the factory from → to described by s.
func (s EdgeSpec) factory(from, to frame.Frame) (transform.Factory, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	cost := DefaultCost
	if s.Cost != nil {
		cost = *s.Cost
	}

	var (
		f   transform.Factory
		err error
	)
	switch s.Type {
	case TypeIdentity:
		f, err = transform.NewRotation(from, to, matrix.Identity(), cost)

	case TypeRotation:
		var r matrix.Mat3
		if r, err = matrix.AxisAngle(vec(s.Axis), degrees(s.AngleDeg)); err == nil {
			f, err = transform.NewRotation(from, to, r, cost)
		}

	case TypeTranslation:
		f, err = transform.NewTranslation(from, to, vec(s.Translation), cost)

	case TypeSpin:
		var ref epoch.Epoch
		if ref, err = parseEpoch("reference", s.Reference); err == nil {
			f, err = transform.NewSpin(from, to, transform.SpinParams{
				Axis:      vec(s.Axis),
				Angle0:    degrees(s.AngleDeg),
				Rate:      s.Rate,
				Reference: ref,
			}, cost)
		}

	case TypeHelmert:
		f, err = s.helmert(from, to)

	case TypeKinematic:
		var p transform.KinematicParams
		if p, err = s.Kinematic.params(); err == nil {
			f = transform.NewKinematic(from, to, transform.Constant(cost),
				func(epoch.Epoch) (transform.KinematicParams, error) { return p, nil })
		}

	default:
		err = fmt.Errorf("unknown edge type %q", s.Type)
	}
	if err != nil {
		return nil, err
	}

	if s.ValidFrom == "" {
		return f, nil
	}
	lo, err := parseEpoch("valid_from", s.ValidFrom)
	if err != nil {
		return nil, err
	}
	hi, err := parseEpoch("valid_to", s.ValidTo)
	if err != nil {
		return nil, err
	}

	return transform.Bounded(f, lo, hi)
}

// helmert builds a Helmert factory. Without an explicit reference the
// realization epoch of the target, or failing that the source, is used.
func (s EdgeSpec) helmert(from, to frame.Frame) (transform.Factory, error) {
	h := s.Helmert

	var ref epoch.Epoch
	switch {
	case h.Reference != "":
		var err error
		if ref, err = parseEpoch("reference", h.Reference); err != nil {
			return nil, err
		}
	case to.IsRealized():
		ref, _ = to.RealizationEpoch()
	case from.IsRealized():
		ref, _ = from.RealizationEpoch()
	default:
		return nil, fmt.Errorf("helmert %s→%s needs a reference epoch", from, to)
	}

	p := transform.HelmertFromIERS(
		arr(h.Translation), h.Scale, arr(h.Rotation),
		arr(h.TranslationRate), h.ScaleRate, arr(h.RotationRate),
		ref,
	)
	var opts []transform.HelmertOption
	if s.Cost != nil {
		opts = append(opts, transform.WithHelmertCost(*s.Cost))
	}

	return transform.NewHelmert(from, to, p, opts...)
}

func (k *KinematicSpec) params() (transform.KinematicParams, error) {
	p := transform.KinematicParams{
		Translation:          vec(k.Translation),
		Velocity:             vec(k.Velocity),
		Acceleration:         vec(k.Acceleration),
		Rotation:             matrix.Identity(),
		RotationRate:         vec(k.RotationRate),
		RotationAcceleration: vec(k.RotationAcceleration),
	}
	if len(k.Axis) > 0 {
		r, err := matrix.AxisAngle(vec(k.Axis), degrees(k.AngleDeg))
		if err != nil {
			return transform.KinematicParams{}, err
		}
		p.Rotation = r
	}

	return p, nil
}

func parseEpoch(field, s string) (epoch.Epoch, error) {
	e, err := epoch.Parse(s)
	if err != nil {
		return epoch.Epoch{}, fmt.Errorf("%s: %w", field, err)
	}

	return e, nil
}

func vec(v []float64) matrix.Vec3 {
	if len(v) != 3 {
		return matrix.Zero
	}

	return matrix.Vec3{v[0], v[1], v[2]}
}

func arr(v []float64) [3]float64 { return [3]float64(vec(v)) }

func degrees(d float64) float64 { return d * math.Pi / 180 }
