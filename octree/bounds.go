package octree

import (
	"github.com/soypat/geometry/ms3"
)

// MaxWidth is the width in discrete units of the root cube. Bounds reached
// from RootBounds by Half have a power-of-two width no larger than MaxWidth
// and an origin that is a multiple of that width, which keeps every
// bisection exact in integer arithmetic.
const MaxWidth uint32 = 1 << 31

// Bounds is an axis-aligned cube expressed in the octree's discrete integer
// grid: an origin corner plus an edge width.
type Bounds struct {
	X, Y, Z uint32
	Width   uint32
}

// RootBounds returns the bounds of the whole addressable volume.
func RootBounds() Bounds {
	return Bounds{Width: MaxWidth}
}

// FromDiscreteGrid builds the bounds of a width-sized cube at cell (x,y,z)
// of a grid that splits the root volume into grid cells per side, letting a
// region be named in ordinary integer coordinates rather than an IndexPath.
// grid must be a power of two no larger than MaxWidth; width need not be,
// since the result describes an oracle region, not an octree node.
func FromDiscreteGrid(x, y, z, width, grid uint32) Bounds {
	scale := MaxWidth / grid
	return Bounds{
		X:     x * scale,
		Y:     y * scale,
		Z:     z * scale,
		Width: width * scale,
	}
}

// FromIndexPath recovers the bounds of the node addressed by path, starting
// from the root and bisecting once per octant on the path.
func FromIndexPath(path IndexPath) Bounds {
	dirs := path.Directions()
	b := RootBounds()
	for _, d := range dirs {
		b = b.Half(d)
	}
	return b
}

// Half returns the sub-cube of b on the dir side, halving Width.
func (b Bounds) Half(dir Direction) Bounds {
	half := b.Width / 2
	out := Bounds{X: b.X, Y: b.Y, Z: b.Z, Width: half}
	if dir.IsMaxX() {
		out.X += half
	}
	if dir.IsMaxY() {
		out.Y += half
	}
	if dir.IsMaxZ() {
		out.Z += half
	}
	return out
}

// Position returns the minimum corner of b projected into [0, 1) float
// space, dividing by MaxWidth.
func (b Bounds) Position() ms3.Vec {
	const inv = 1.0 / float32(int64(MaxWidth))
	return ms3.Vec{
		X: float32(b.X) * inv,
		Y: float32(b.Y) * inv,
		Z: float32(b.Z) * inv,
	}
}

// FloatWidth returns b's edge width projected into the same float space as
// Position.
func (b Bounds) FloatWidth() float32 {
	const inv = 1.0 / float32(int64(MaxWidth))
	return float32(b.Width) * inv
}

// Center returns the midpoint of b in float space.
func (b Bounds) Center() ms3.Vec {
	half := b.FloatWidth() / 2
	pos := b.Position()
	return ms3.Vec{X: pos.X + half, Y: pos.Y + half, Z: pos.Z + half}
}

// Box returns b as an ms3.Box in float space.
func (b Bounds) Box() ms3.Box {
	pos := b.Position()
	w := b.FloatWidth()
	return ms3.Box{
		Min: pos,
		Max: ms3.Vec{X: pos.X + w, Y: pos.Y + w, Z: pos.Z + w},
	}
}

// Corner returns the float-space position of the dir corner of b.
func (b Bounds) Corner(dir Direction) ms3.Vec {
	pos := b.Position()
	w := b.FloatWidth()
	if dir.IsMaxX() {
		pos.X += w
	}
	if dir.IsMaxY() {
		pos.Y += w
	}
	if dir.IsMaxZ() {
		pos.Z += w
	}
	return pos
}

// IsLeafSized reports whether b cannot be halved further (Width==1).
func (b Bounds) IsLeafSized() bool { return b.Width <= 1 }
