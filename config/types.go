package config

// Edge types.
const (
	TypeIdentity    = "identity"
	TypeRotation    = "rotation"
	TypeTranslation = "translation"
	TypeSpin        = "spin"
	TypeHelmert     = "helmert"
	TypeKinematic   = "kinematic"
)

// DefaultCost is the cost of an edge that does not set one. Helmert edges
// default to transform.DefaultHelmertCost instead.
const DefaultCost = 1.0

// Document is a whole frame-graph definition.
type Document struct {
	Roots  []string    `yaml:"roots" toml:"roots" validate:"required,min=1,dive,required"`
	Frames []FrameSpec `yaml:"frames" toml:"frames" validate:"dive"`
	Links  []LinkSpec  `yaml:"links" toml:"links" validate:"dive"`
}

// FrameSpec registers Name as a child of Parent. Edge maps Parent → Name;
// Inverse, when set, maps Name → Parent instead of the derived inverse.
type FrameSpec struct {
	Name    string    `yaml:"name" toml:"name" validate:"required,nefield=Parent"`
	Parent  string    `yaml:"parent" toml:"parent" validate:"required"`
	Edge    EdgeSpec  `yaml:"edge" toml:"edge"`
	Inverse *EdgeSpec `yaml:"inverse,omitempty" toml:"inverse,omitempty"`
}

// LinkSpec connects two registered frames.
type LinkSpec struct {
	From    string    `yaml:"from" toml:"from" validate:"required,nefield=To"`
	To      string    `yaml:"to" toml:"to" validate:"required"`
	Edge    EdgeSpec  `yaml:"edge" toml:"edge"`
	Inverse *EdgeSpec `yaml:"inverse,omitempty" toml:"inverse,omitempty"`
}

// EdgeSpec describes one factory. Which parameter fields apply depends on
// Type:
//
//	identity     none
//	rotation     axis, angle_deg
//	translation  translation (m)
//	spin         axis, angle_deg, rate (rad/s), reference
//	helmert      helmert (IERS units)
//	kinematic    kinematic
type EdgeSpec struct {
	Type      string   `yaml:"type" toml:"type" validate:"required,oneof=identity rotation translation spin helmert kinematic"`
	Cost      *float64 `yaml:"cost,omitempty" toml:"cost,omitempty" validate:"omitempty,gte=0"`
	ValidFrom string   `yaml:"valid_from,omitempty" toml:"valid_from,omitempty" validate:"required_with=ValidTo"`
	ValidTo   string   `yaml:"valid_to,omitempty" toml:"valid_to,omitempty" validate:"required_with=ValidFrom"`

	Axis        []float64 `yaml:"axis,omitempty" toml:"axis,omitempty" validate:"omitempty,len=3"`
	AngleDeg    float64   `yaml:"angle_deg,omitempty" toml:"angle_deg,omitempty"`
	Translation []float64 `yaml:"translation,omitempty" toml:"translation,omitempty" validate:"omitempty,len=3"`
	Rate        float64   `yaml:"rate,omitempty" toml:"rate,omitempty"`
	Reference   string    `yaml:"reference,omitempty" toml:"reference,omitempty"`

	Helmert   *HelmertSpec   `yaml:"helmert,omitempty" toml:"helmert,omitempty"`
	Kinematic *KinematicSpec `yaml:"kinematic,omitempty" toml:"kinematic,omitempty"`
}

// HelmertSpec holds the 14 Helmert parameters in the units IERS tables use:
// mm, ppb and mas, with rates per Julian year. Reference defaults to the
// realization epoch of the child frame.
type HelmertSpec struct {
	Translation     []float64 `yaml:"t" toml:"t" validate:"omitempty,len=3"`
	Scale           float64   `yaml:"d" toml:"d"`
	Rotation        []float64 `yaml:"r" toml:"r" validate:"omitempty,len=3"`
	TranslationRate []float64 `yaml:"t_rate" toml:"t_rate" validate:"omitempty,len=3"`
	ScaleRate       float64   `yaml:"d_rate" toml:"d_rate"`
	RotationRate    []float64 `yaml:"r_rate" toml:"r_rate" validate:"omitempty,len=3"`
	Reference       string    `yaml:"reference,omitempty" toml:"reference,omitempty"`
}

// KinematicSpec holds constant kinematic parameters in SI units. The rotation
// is Axis/AngleDeg; a missing axis means no rotation.
type KinematicSpec struct {
	Translation          []float64 `yaml:"translation" toml:"translation" validate:"omitempty,len=3"`
	Velocity             []float64 `yaml:"velocity" toml:"velocity" validate:"omitempty,len=3"`
	Acceleration         []float64 `yaml:"acceleration" toml:"acceleration" validate:"omitempty,len=3"`
	Axis                 []float64 `yaml:"axis" toml:"axis" validate:"omitempty,len=3"`
	AngleDeg             float64   `yaml:"angle_deg" toml:"angle_deg"`
	RotationRate         []float64 `yaml:"rotation_rate" toml:"rotation_rate" validate:"omitempty,len=3"`
	RotationAcceleration []float64 `yaml:"rotation_acceleration" toml:"rotation_acceleration" validate:"omitempty,len=3"`
}
