package octree

// Classification is an oracle's verdict on a cubic region: whether it can
// be represented as a single leaf value or needs further subdivision.
type Classification struct {
	kind classificationKind
	v    Voxel
}

type classificationKind uint8

const (
	kindUniformEmpty classificationKind = iota
	kindUniform
	kindHeterogeneous
)

// UniformEmpty classifies a region as entirely the empty voxel.
func UniformEmpty() Classification { return Classification{kind: kindUniformEmpty} }

// Uniform classifies a region as entirely voxel v.
func Uniform(v Voxel) Classification { return Classification{kind: kindUniform, v: v} }

// Heterogeneous classifies a region as needing subdivision into its 8
// octants before it can be resolved further.
func Heterogeneous() Classification { return Classification{kind: kindHeterogeneous} }

// IsHeterogeneous reports whether the region needs subdividing.
func (c Classification) IsHeterogeneous() bool { return c.kind == kindHeterogeneous }

// Voxel returns the uniform value for a UniformEmpty/Uniform classification,
// and the empty voxel for Heterogeneous (the fallback a builder writes when
// it cannot subdivide any further).
func (c Classification) Voxel() Voxel {
	if c.kind == kindUniformEmpty {
		return EmptyVoxel
	}
	return c.v
}

// Oracle classifies a cubic region of space, driving WorldBuilder. It is
// the one piece of the engine spec.md explicitly leaves external: the
// engine only needs some concrete, runnable oracle to exercise WorldBuilder
// against, not a particular field-sampling strategy.
type Oracle interface {
	Classify(bounds Bounds) Classification
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc func(Bounds) Classification

func (f OracleFunc) Classify(b Bounds) Classification { return f(b) }

// SphereOracle classifies a region against a solid sphere, filling the
// inside with Fill and leaving the outside empty. A region is UniformEmpty
// when every corner and the center lie outside, Uniform(Fill) when every
// corner and the center lie inside, and Heterogeneous otherwise (the
// sphere's boundary passes through it).
//
// This mirrors the corner-and-center scalar-field sampling classification
// glrender/octree.go uses to decide whether a cube needs subdividing,
// adapted here from a signed-distance evaluation to a closed-form sphere
// test since WorldBuilder has no SDF evaluator dependency of its own.
type SphereOracle struct {
	Center math32Vec
	Radius float32
	Fill   Voxel
}

// math32Vec avoids importing ms3 here just for a 3-float center; Bounds'
// own corner/center accessors already return ms3.Vec, so SphereOracle
// converts at the call site instead of depending on ms3 directly.
type math32Vec struct{ X, Y, Z float32 }

func (s SphereOracle) classifyPoint(x, y, z float32) bool {
	dx, dy, dz := x-s.Center.X, y-s.Center.Y, z-s.Center.Z
	return dx*dx+dy*dy+dz*dz <= s.Radius*s.Radius
}

func (s SphereOracle) Classify(b Bounds) Classification {
	center := b.Center()
	inside := s.classifyPoint(center.X, center.Y, center.Z)
	allSame := true
	for _, dir := range AllDirections {
		corner := b.Corner(dir)
		if s.classifyPoint(corner.X, corner.Y, corner.Z) != inside {
			allSame = false
			break
		}
	}
	if !allSame {
		return Heterogeneous()
	}
	if inside {
		return Uniform(s.Fill)
	}
	return UniformEmpty()
}

// FuncOracle classifies a region against a scalar field, filling Fill
// wherever field(x,y,z) <= 0 (the usual signed-distance convention). It
// samples the 8 corners and the center the same way SphereOracle does,
// generalized to an arbitrary field instead of a closed-form sphere.
type FuncOracle struct {
	Field func(x, y, z float32) float32
	Fill  Voxel
}

func (f FuncOracle) Classify(b Bounds) Classification {
	center := b.Center()
	inside := f.Field(center.X, center.Y, center.Z) <= 0
	allSame := true
	for _, dir := range AllDirections {
		corner := b.Corner(dir)
		if (f.Field(corner.X, corner.Y, corner.Z) <= 0) != inside {
			allSame = false
			break
		}
	}
	if !allSame {
		return Heterogeneous()
	}
	if inside {
		return Uniform(f.Fill)
	}
	return UniformEmpty()
}

// DefaultBuildDepth is the subdivision floor used when WorldBuilder.MaxDepth
// is zero: 2^6 = 64 voxels per chunk side.
const DefaultBuildDepth = 6

// WorldBuilder populates a Chunk from an Oracle: recursing octant by
// octant, stopping when the oracle reports a uniform region or when the
// path reaches MaxDepth levels.
type WorldBuilder struct {
	Oracle Oracle
	// MaxDepth is the deepest subdivision level Build descends to. Zero
	// means DefaultBuildDepth; values beyond MaxPathLen are clamped to it.
	// A region the oracle still reports heterogeneous at the floor resolves
	// to Classification.Voxel's zero value, the empty voxel.
	MaxDepth int
}

func (w WorldBuilder) maxDepth() int {
	d := w.MaxDepth
	if d <= 0 {
		d = DefaultBuildDepth
	}
	if d > MaxPathLen {
		d = MaxPathLen
	}
	return d
}

// Build populates c entirely from the root bounds.
func (w WorldBuilder) Build(c *Chunk) {
	class := w.Oracle.Classify(RootBounds())
	if !class.IsHeterogeneous() {
		// A uniform root has no parent to condense into; write its value
		// straight into the 8 first-level octants instead.
		for _, dir := range AllDirections {
			c.Set(NewIndexPath(dir), class.Voxel())
		}
		return
	}
	root := RootBounds()
	for _, dir := range AllDirections {
		w.build(c, NewIndexPath(dir), root.Half(dir))
	}
}

func (w WorldBuilder) build(c *Chunk, path IndexPath, bounds Bounds) {
	class := w.Oracle.Classify(bounds)
	if path.Len() >= w.maxDepth() || bounds.IsLeafSized() || !class.IsHeterogeneous() {
		c.Set(path, class.Voxel())
		return
	}
	for _, dir := range AllDirections {
		w.build(c, path.Put(dir), bounds.Half(dir))
	}
}
