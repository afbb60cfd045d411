package octree

// Voxel is the opaque per-leaf datum stored by the octree. Its bit layout is
// left to callers; the octree only ever compares voxels for equality to
// decide whether a subtree is condensable. The zero value is the "empty"
// voxel.
type Voxel uint16

// EmptyVoxel is the distinguished voxel value representing no material.
const EmptyVoxel Voxel = 0

// IsEmpty reports whether v is the empty voxel.
func (v Voxel) IsEmpty() bool { return v == EmptyVoxel }

// Raw returns the underlying 16-bit representation.
func (v Voxel) Raw() uint16 { return uint16(v) }

// VoxelFromRaw wraps a raw 16-bit value as a Voxel.
func VoxelFromRaw(raw uint16) Voxel { return Voxel(raw) }
