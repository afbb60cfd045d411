package mesh

import "github.com/soypat/voxeldmc/octree"

// terminator marks the end of a cube index's triangle list, per spec.md
// §4.8's packed-edge-triple encoding.
const terminator uint16 = 0xFFFF

// maxTrianglesPerCell bounds how many triangles any single cube
// configuration produces; 5 plus the terminator word is the largest row
// the classic Marching Cubes table ever needs, and this module's
// construction (see buildEdgeTable) never exceeds it either.
const maxTrianglesPerCell = 5

// dmcEdgeTable[cubeIndex] lists, for each of the 256 possible empty/filled
// patterns across a dual cell's 8 corners, the triangles the crossing
// surface decomposes into: each entry packs three 4-bit Edge ids into one
// uint16 (bits 0-3, 4-7, 8-11), and the row is terminated by 0xFFFF.
//
// A cube index's bit d is set iff the corner at octant d holds the empty
// voxel. The table only depends on per-edge sign transitions, so the
// polarity convention does not change the topology, only which side of the
// surface a triangle faces.
var dmcEdgeTable [256][maxTrianglesPerCell + 1]uint16

// cubeFace is one of the cube's 6 faces expressed as its 4 corners in
// cyclic (edge-adjacent) order, so that consecutive entries share a real
// cube edge.
type cubeFace struct {
	corners [4]octree.Direction
}

var cubeFaces = [6]cubeFace{
	{[4]octree.Direction{octree.FrontLeftBottom, octree.RearLeftBottom, octree.RearLeftTop, octree.FrontLeftTop}}, // -X
	{[4]octree.Direction{octree.FrontRightBottom, octree.RearRightBottom, octree.RearRightTop, octree.FrontRightTop}}, // +X
	{[4]octree.Direction{octree.FrontLeftBottom, octree.FrontRightBottom, octree.FrontRightTop, octree.FrontLeftTop}}, // -Y
	{[4]octree.Direction{octree.RearLeftBottom, octree.RearRightBottom, octree.RearRightTop, octree.RearLeftTop}},     // +Y
	{[4]octree.Direction{octree.FrontLeftBottom, octree.FrontRightBottom, octree.RearRightBottom, octree.RearLeftBottom}}, // -Z
	{[4]octree.Direction{octree.FrontLeftTop, octree.FrontRightTop, octree.RearRightTop, octree.RearLeftTop}},            // +Z
}

// edgeByCorners maps an unordered pair of corners to the cube Edge
// connecting them, built once from octree.Edge.Vertices().
var edgeByCorners [8][8]octree.Edge
var hasEdgeByCorners [8][8]bool

var allEdges = [12]octree.Edge{
	octree.LowerFar, octree.LowerRight, octree.LowerNear, octree.LowerLeft,
	octree.UpperFar, octree.UpperRight, octree.UpperNear, octree.UpperLeft,
	octree.VerticalRearLeft, octree.VerticalRearRight, octree.VerticalFrontRight, octree.VerticalFrontLeft,
}

func init() {
	for _, e := range allEdges {
		a, b := e.Vertices()
		edgeByCorners[a][b] = e
		edgeByCorners[b][a] = e
		hasEdgeByCorners[a][b] = true
		hasEdgeByCorners[b][a] = true
	}
	buildEdgeTable()
}

func edgeOf(a, b octree.Direction) octree.Edge {
	if !hasEdgeByCorners[a][b] {
		panic("mesh: corners do not share a cube edge")
	}
	return edgeByCorners[a][b]
}

// buildEdgeTable derives the 256-row cube index table directly from the
// cube's geometry instead of a copied lookup table: for each face, a
// binary corner labeling has an even number of sign changes around its
// 4-edge cycle (0, 2, or 4), so a face either contributes no segment, one
// segment connecting its two crossing edges, or (the ambiguous
// checkerboard case) two segments each cutting off one diagonal corner.
// Every crossing edge borders exactly two faces and is therefore given
// exactly two segment endpoints overall, so the segments assembled across
// all 6 faces always close into disjoint loops; each loop is then
// triangulated as a fan from its first edge.
func buildEdgeTable() {
	for idx := 0; idx < 256; idx++ {
		adjacency := map[octree.Edge][]octree.Edge{}
		connect := func(a, b octree.Edge) {
			adjacency[a] = append(adjacency[a], b)
		}
		for _, face := range cubeFaces {
			c := face.corners
			var v [4]bool
			for i, d := range c {
				v[i] = (idx>>uint(d))&1 == 1
			}
			var crossing [4]bool
			n := 0
			for i := 0; i < 4; i++ {
				j := (i + 1) % 4
				if v[i] != v[j] {
					crossing[i] = true
					n++
				}
			}
			switch n {
			case 0:
				// face is uniform; no surface crosses it.
			case 2:
				var edges []octree.Edge
				for i := 0; i < 4; i++ {
					if crossing[i] {
						edges = append(edges, edgeOf(c[i], c[(i+1)%4]))
					}
				}
				connect(edges[0], edges[1])
				connect(edges[1], edges[0])
			case 4:
				// checkerboard face: corner 0 and 2 share a value, 1 and 3
				// share the other. Pair the edges touching corner 0
				// together, and the edges touching corner 2 together,
				// cutting the face into two separate corners rather than
				// connecting through the middle.
				e30 := edgeOf(c[3], c[0])
				e01 := edgeOf(c[0], c[1])
				e12 := edgeOf(c[1], c[2])
				e23 := edgeOf(c[2], c[3])
				connect(e30, e01)
				connect(e01, e30)
				connect(e12, e23)
				connect(e23, e12)
			default:
				panic("mesh: cube face must have an even number of crossing edges")
			}
		}

		var triangles [][3]octree.Edge
		visited := map[octree.Edge]bool{}
		for _, start := range allEdges {
			if visited[start] || adjacency[start] == nil {
				continue
			}
			loop := []octree.Edge{start}
			visited[start] = true
			prev := start
			cur := adjacency[start][0]
			for cur != start {
				loop = append(loop, cur)
				visited[cur] = true
				next := adjacency[cur][0]
				if next == prev {
					next = adjacency[cur][1]
				}
				prev = cur
				cur = next
			}
			for i := 1; i+1 < len(loop); i++ {
				triangles = append(triangles, [3]octree.Edge{loop[0], loop[i], loop[i+1]})
			}
		}
		if len(triangles) > maxTrianglesPerCell {
			panic("mesh: cube configuration exceeded the triangle budget")
		}

		var row [maxTrianglesPerCell + 1]uint16
		i := 0
		for ; i < len(triangles); i++ {
			t := triangles[i]
			row[i] = uint16(t[0]) | uint16(t[1])<<4 | uint16(t[2])<<8
		}
		for ; i <= maxTrianglesPerCell; i++ {
			row[i] = terminator
		}
		dmcEdgeTable[idx] = row
	}
}
