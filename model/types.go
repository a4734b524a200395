package model

import "github.com/katalvlaran/cshm/geom"

// Atom is an immutable record supplied by an external structure loader:
// element symbol and Cartesian position in ångström. Identity is the
// atom's index within its owning Structure.
type Atom struct {
	Element string
	X, Y, Z float64
}

// Pos returns the atom's position as a geom.Vec3.
func (a Atom) Pos() geom.Vec3 {
	return geom.Vec3{X: a.X, Y: a.Y, Z: a.Z}
}

// Structure is an ordered sequence of atoms supplied by an external parser
// (XYZ/CIF). It is read-only once constructed; the core never mutates it.
type Structure struct {
	ID         string
	Name       string
	Source     string
	FrameIndex int
	Atoms      []Atom
}

// CoordAtom is a derived point belonging to one analysis: the vector from
// the chosen center to a coordinating atom, and its distance. Invariant:
// Distance == Vec.Norm() and Distance > 0.1 (the overlap guard radius).
type CoordAtom struct {
	AtomIndex int
	Element   string
	Vec       geom.Vec3
	Distance  float64
}

// Mode selects the optimizer's stage-constant profile.
type Mode int

const (
	// ModeDefault is the faster profile.
	ModeDefault Mode = iota
	// ModeIntensive is the thorough profile.
	ModeIntensive
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m == ModeIntensive {
		return "intensive"
	}
	return "default"
}

// Options is the single enumerated configuration record for one analysis,
// per spec.md §9's "Dynamic callback bag → typed configuration" design
// note.
type Options struct {
	Mode      Mode
	Flexible  bool
	Seed      uint64
	TimeoutMs int // 0 disables the deadline
}

// Stage enumerates the fixed progress-event variants emitted by the
// optimizer.
type Stage int

const (
	StageKabsch Stage = iota
	StageKeyOrientations
	StageGridSearch
	StageAnnealing
	StageRefinement
	StageComplete
)

// String implements fmt.Stringer.
func (s Stage) String() string {
	switch s {
	case StageKabsch:
		return "Kabsch"
	case StageKeyOrientations:
		return "KeyOrientations"
	case StageGridSearch:
		return "GridSearch"
	case StageAnnealing:
		return "Annealing"
	case StageRefinement:
		return "Refinement"
	case StageComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// ProgressEvent is the fixed variant emitted by the optimizer after each
// stage and periodically within stages. Percent is monotonically
// non-decreasing within one analysis except when Stage==StageComplete.
type ProgressEvent struct {
	Stage     Stage
	Percent   uint8
	BestSoFar float64
	Extra     string
}

// ShapeResult is the result of one ShapeEval invocation: the measure, the
// rotation that produced it, the vertex assignment, the scale (if the
// optimal-scale variant or flexible extension applied one), and the
// aligned reference coordinates — the reference cloud rotated and then
// permuted so that Aligned[i] is the reference vertex assigned to actual
// atom i. Measure is finite iff Assignment is a valid permutation.
type ShapeResult struct {
	Measure    float64
	Rotation   geom.Mat3
	Assignment []int
	Scale      float64
	Aligned    []geom.Vec3
}

// FlexibleResult augments a ShapeResult with the anisotropic-scale search
// outcome from package flexible.
type FlexibleResult struct {
	RigidMeasure    float64
	FlexMeasure     float64
	Delta           float64
	ScaleXYZ        [3]float64
	DistortionIndex float64
	Description     string
}

// GeometryResult pairs a ShapeResult with the reference geometry it was
// evaluated against.
type GeometryResult struct {
	Code       string
	Name       string
	PointGroup string
	Shape      ShapeResult
	Flexible   *FlexibleResult
}

// BondStats summarizes bond-length and inter-ligand angle distributions.
type BondStats struct {
	DistanceMean, DistanceStdDev, DistanceMin, DistanceMax float64
	AngleCount                                             int
	AngleMean, AngleStdDev, AngleMin, AngleMax             float64
}

// QualityMetrics is the set of derived quality indices computed against
// the best-matching geometry.
type QualityMetrics struct {
	AngularDistortionIndex float64
	BondLengthUniformity   float64
	ApproxRMSD             float64
	OverallScore           float64
}

// AnalysisResult is the outcome of one (structure, center) analysis.
type AnalysisResult struct {
	StructureID string
	CenterIndex int
	CN          int
	Rankings    []GeometryResult // ascending by Shape.Measure
	Best        *GeometryResult  // == &Rankings[0], nil if Rankings is empty
	Bonds       BondStats
	Quality     QualityMetrics
	Err         string // InputValidation / CoordinationEmpty / NoReference / "cancelled"
}

// BatchState is the batch driver's state machine position.
type BatchState int

const (
	BatchIdle BatchState = iota
	BatchRunning
	BatchComplete
	BatchCancelled
	BatchError
)

// String implements fmt.Stringer.
func (s BatchState) String() string {
	switch s {
	case BatchIdle:
		return "Idle"
	case BatchRunning:
		return "Running"
	case BatchComplete:
		return "Complete"
	case BatchCancelled:
		return "Cancelled"
	case BatchError:
		return "Error"
	default:
		return "Unknown"
	}
}

// BatchProgress reports a single structure's position within a batch.
type BatchProgress struct {
	Current     int
	Total       int
	StructureID string
	Stage       Stage
}

// BatchResult is the outcome of a batch run: per-structure results keyed
// by input index, preserving input order via the index itself.
type BatchResult struct {
	Results  map[int]*AnalysisResult
	Errors   map[int]string
	State    BatchState
	Progress []BatchProgress
}
