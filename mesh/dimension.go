// Package mesh implements the dual-grid traversal and Dual Marching Cubes
// polygonizer that turns an octree.Chunk's implicit surface into a
// triangle-list mesh.
package mesh

import "github.com/soypat/voxeldmc/octree"

// dirSlot names one source octant in an 8-child neighborhood assembly: which
// of the input nodes (0-indexed within the 2/4-node group being recursed
// into) to read, and which of its own children to descend into.
type dirSlot struct {
	Which int
	Dir   octree.Direction
}

// Dimension selects, for one of the three cube axes, the constant tables
// that drive face_proc/edge_proc's neighborhood assembly. It plays the role
// the original implementation gives a compile-time trait parameter
// (monomorphized per axis); here it is a plain value passed to the walker's
// methods; see X, Y, Z below.
type Dimension struct {
	Name string

	// EdgeProcDirGroups selects, from an 8-child block, the two groups of 4
	// children sharing a central edge: an edge parallel to X for X, to Z for
	// Y, and to Y for Z.
	EdgeProcDirGroups [2][4]octree.Direction
	// EdgeProcDirTuples builds the 8-child neighborhood straddling such an
	// edge from a 4-node edge_proc call.
	EdgeProcDirTuples [8]dirSlot

	// FaceProcDirGroups selects, from an 8-child block, the four pairs of
	// children sharing a face: a face perpendicular to Y for X, to X for Y,
	// and to Z for Z.
	FaceProcDirGroups [4][2]octree.Direction
	// FaceProcDirTuples builds the 8-child neighborhood straddling such a
	// face from a 2-node face_proc call.
	FaceProcDirTuples [8]dirSlot

	// FaceEdges1/FaceEdges2 are the two Dimensions face_proc recurses
	// edge_proc over: the ones whose edge groups lie in the shared face.
	// With the axis labelling above, Y and Z name themselves as FaceEdges2.
	FaceEdges1 *Dimension
	FaceEdges2 *Dimension
}

var X, Y, Z Dimension

func init() {
	X = Dimension{
		Name: "X",
		EdgeProcDirGroups: [2][4]octree.Direction{
			{octree.RearLeftBottom, octree.FrontLeftBottom, octree.FrontLeftTop, octree.RearLeftTop},
			{octree.RearRightBottom, octree.FrontRightBottom, octree.FrontRightTop, octree.RearRightTop},
		},
		EdgeProcDirTuples: [8]dirSlot{
			{1, octree.RearLeftTop}, {1, octree.RearRightTop},
			{0, octree.FrontLeftTop}, {0, octree.FrontRightTop},
			{2, octree.RearLeftBottom}, {2, octree.RearRightBottom},
			{3, octree.FrontLeftBottom}, {3, octree.FrontRightBottom},
		},
		FaceProcDirGroups: [4][2]octree.Direction{
			{octree.RearLeftBottom, octree.FrontLeftBottom},
			{octree.RearRightBottom, octree.FrontRightBottom},
			{octree.RearLeftTop, octree.FrontLeftTop},
			{octree.RearRightTop, octree.FrontRightTop},
		},
		FaceProcDirTuples: [8]dirSlot{
			{1, octree.RearLeftBottom}, {1, octree.RearRightBottom},
			{0, octree.FrontLeftBottom}, {0, octree.FrontRightBottom},
			{1, octree.RearLeftTop}, {1, octree.RearRightTop},
			{0, octree.FrontLeftTop}, {0, octree.FrontRightTop},
		},
	}

	Y = Dimension{
		Name: "Y",
		EdgeProcDirGroups: [2][4]octree.Direction{
			{octree.RearLeftBottom, octree.RearRightBottom, octree.FrontRightBottom, octree.FrontLeftBottom},
			{octree.RearLeftTop, octree.RearRightTop, octree.FrontRightTop, octree.FrontLeftTop},
		},
		EdgeProcDirTuples: [8]dirSlot{
			{3, octree.RearRightBottom}, {2, octree.RearLeftBottom},
			{0, octree.FrontRightBottom}, {1, octree.FrontLeftBottom},
			{3, octree.RearRightTop}, {2, octree.RearLeftTop},
			{0, octree.FrontRightTop}, {1, octree.FrontLeftTop},
		},
		FaceProcDirGroups: [4][2]octree.Direction{
			{octree.RearLeftBottom, octree.RearRightBottom},
			{octree.FrontLeftBottom, octree.FrontRightBottom},
			{octree.RearLeftTop, octree.RearRightTop},
			{octree.FrontLeftTop, octree.FrontRightTop},
		},
		FaceProcDirTuples: [8]dirSlot{
			{0, octree.FrontRightBottom}, {1, octree.FrontLeftBottom},
			{0, octree.RearRightBottom}, {1, octree.RearLeftBottom},
			{0, octree.FrontRightTop}, {1, octree.FrontLeftTop},
			{0, octree.RearRightTop}, {1, octree.RearLeftTop},
		},
	}

	Z = Dimension{
		Name: "Z",
		EdgeProcDirGroups: [2][4]octree.Direction{
			{octree.FrontLeftTop, octree.FrontRightTop, octree.FrontRightBottom, octree.FrontLeftBottom},
			{octree.RearLeftTop, octree.RearRightTop, octree.RearRightBottom, octree.RearLeftBottom},
		},
		EdgeProcDirTuples: [8]dirSlot{
			{3, octree.FrontRightTop}, {2, octree.FrontLeftTop},
			{3, octree.RearRightTop}, {2, octree.RearLeftTop},
			{0, octree.FrontRightBottom}, {1, octree.FrontLeftBottom},
			{0, octree.RearRightBottom}, {1, octree.RearLeftBottom},
		},
		FaceProcDirGroups: [4][2]octree.Direction{
			{octree.RearLeftTop, octree.RearLeftBottom},
			{octree.RearRightTop, octree.RearRightBottom},
			{octree.FrontLeftTop, octree.FrontLeftBottom},
			{octree.FrontRightTop, octree.FrontRightBottom},
		},
		FaceProcDirTuples: [8]dirSlot{
			{1, octree.FrontLeftTop}, {1, octree.FrontRightTop},
			{1, octree.RearLeftTop}, {1, octree.RearRightTop},
			{0, octree.FrontLeftBottom}, {0, octree.FrontRightBottom},
			{0, octree.RearLeftBottom}, {0, octree.RearRightBottom},
		},
	}

	X.FaceEdges1, X.FaceEdges2 = &X, &Y
	Y.FaceEdges1, Y.FaceEdges2 = &Z, &Y
	Z.FaceEdges1, Z.FaceEdges2 = &X, &Z
}
