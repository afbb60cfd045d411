// Command voxeldmc-demo builds a chunk from a sphere oracle, polygonizes it
// with the Dual Marching Cubes mesher, and prints a summary of the result.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/soypat/voxeldmc/mesh"
	"github.com/soypat/voxeldmc/octree"
)

func run() error {
	radius := flag.Float64("radius", 0.3, "sphere radius in the unit chunk, (0, 0.5)")
	size := flag.Float64("size", 1, "world-space size the unit chunk is scaled to")
	depth := flag.Int("depth", octree.DefaultBuildDepth, "octree subdivision depth, 1..21")
	wireframe := flag.Bool("wireframe", false, "also report wireframe segment count")
	flag.Parse()

	if *radius <= 0 || *radius >= 0.5 {
		return fmt.Errorf("radius %v out of range (0, 0.5)", *radius)
	}
	if *depth < 1 || *depth > octree.MaxPathLen {
		return fmt.Errorf("depth %d out of range 1..%d", *depth, octree.MaxPathLen)
	}

	r := float32(*radius)
	oracle := octree.FuncOracle{
		Fill: 1,
		Field: func(x, y, z float32) float32 {
			dx, dy, dz := x-0.5, y-0.5, z-0.5
			return dx*dx + dy*dy + dz*dz - r*r
		},
	}

	chunk := octree.NewChunk()
	builder := octree.WorldBuilder{Oracle: oracle, MaxDepth: *depth}
	builder.Build(chunk)

	m := mesh.NewMesher(chunk, float32(*size))
	out := m.Mesh()

	fmt.Printf("octree nodes:     %d\n", chunk.CountNodes())
	fmt.Printf("mesh vertices:    %d\n", len(out.Positions))
	fmt.Printf("mesh triangles:   %d\n", len(out.Indices)/3)
	fmt.Printf("mesh surface area: %.4f\n", out.SurfaceArea())

	if *wireframe {
		wf := mesh.GenWireframe(chunk)
		fmt.Printf("wireframe segments: %d\n", len(wf.Segments))
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
