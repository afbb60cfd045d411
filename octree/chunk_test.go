package octree

import "testing"

func TestChunkSetFirstLevel(t *testing.T) {
	c := NewChunk()
	for i := Direction(0); i < 8; i++ {
		if got := c.Sample(NewIndexPath(i)); got != EmptyVoxel {
			t.Fatalf("Sample(%d) = %v, want EmptyVoxel before any Set", i, got)
		}
	}
	for i := Direction(0); i < 8; i++ {
		c.Set(NewIndexPath(i), Voxel(i))
	}
	for i := Direction(0); i < 8; i++ {
		if got := c.Sample(NewIndexPath(i)); got != Voxel(i) {
			t.Fatalf("Sample(%d) = %v, want %v", i, got, Voxel(i))
		}
	}
}

func TestChunkSetSecondLevel(t *testing.T) {
	c := NewChunk()
	path := NewIndexPath(FrontLeftBottom).Push(FrontRightBottom)
	c.Set(path, Voxel(13))
	if got := c.Sample(path); got != Voxel(13) {
		t.Fatalf("Sample = %v, want 13", got)
	}

	c.Set(NewIndexPath(FrontLeftBottom).Push(RearLeftBottom), Voxel(12))
	if got := c.Sample(NewIndexPath(FrontLeftBottom).Push(FrontRightBottom)); got != Voxel(13) {
		t.Fatalf("Sample(FLB/FRB) = %v, want 13", got)
	}
	if got := c.Sample(NewIndexPath(FrontLeftBottom).Push(RearLeftBottom)); got != Voxel(12) {
		t.Fatalf("Sample(FLB/RLB) = %v, want 12", got)
	}

	c.Set(NewIndexPath(FrontLeftBottom).Push(FrontRightTop), Voxel(5))
	if got := c.Sample(NewIndexPath(FrontLeftBottom).Push(FrontRightBottom)); got != Voxel(13) {
		t.Fatalf("Sample(FLB/FRB) = %v, want 13", got)
	}
	if got := c.Sample(NewIndexPath(FrontLeftBottom).Push(RearLeftBottom)); got != Voxel(12) {
		t.Fatalf("Sample(FLB/RLB) = %v, want 12", got)
	}
	if got := c.Sample(NewIndexPath(FrontLeftBottom).Push(FrontRightTop)); got != Voxel(5) {
		t.Fatalf("Sample(FLB/FRT) = %v, want 5", got)
	}

	c.Set(NewIndexPath(FrontRightBottom).Push(FrontLeftTop), Voxel(4))
	if got := c.Sample(NewIndexPath(FrontRightBottom).Push(FrontLeftTop)); got != Voxel(4) {
		t.Fatalf("Sample(FRB/FLT) = %v, want 4", got)
	}

	c.Set(NewIndexPath(RearRightTop).Push(RearLeftTop), Voxel(86))
	if got := c.Sample(NewIndexPath(FrontLeftBottom).Push(FrontRightBottom)); got != Voxel(13) {
		t.Fatalf("Sample(FLB/FRB) = %v, want 13", got)
	}
	if got := c.Sample(NewIndexPath(FrontLeftBottom).Push(RearLeftBottom)); got != Voxel(12) {
		t.Fatalf("Sample(FLB/RLB) = %v, want 12", got)
	}
	if got := c.Sample(NewIndexPath(FrontLeftBottom).Push(FrontRightTop)); got != Voxel(5) {
		t.Fatalf("Sample(FLB/FRT) = %v, want 5", got)
	}
	if got := c.Sample(NewIndexPath(FrontRightBottom).Push(FrontLeftTop)); got != Voxel(4) {
		t.Fatalf("Sample(FRB/FLT) = %v, want 4", got)
	}
	if got := c.Sample(NewIndexPath(RearRightTop).Push(RearLeftTop)); got != Voxel(86) {
		t.Fatalf("Sample(RRT/RLT) = %v, want 86", got)
	}
}

func TestChunkSetInheritsParentValueOnSubdivide(t *testing.T) {
	c := NewChunk()
	c.Set(NewIndexPath(FrontLeftBottom), Voxel(7))
	c.Set(NewIndexPath(RearRightTop).Push(FrontLeftBottom), Voxel(9))
	for _, d := range AllDirections {
		if d == RearRightTop {
			continue
		}
		if got := c.Sample(NewIndexPath(d).Push(FrontLeftBottom)); got != Voxel(7) {
			t.Fatalf("Sample(FLB/%v) = %v, want inherited 7", d, got)
		}
	}
	if got := c.Sample(NewIndexPath(RearRightTop).Push(FrontLeftBottom)); got != Voxel(9) {
		t.Fatalf("Sample(FLB/RRT) = %v, want 9", got)
	}
}

func TestChunkCondenseOnSetSingleLevel(t *testing.T) {
	c := NewChunk()
	if got := c.CountNodes(); got != 1 {
		t.Fatalf("CountNodes() = %d, want 1", got)
	}
	for _, d := range AllDirections {
		path := NewIndexPath(d).Push(FrontRightBottom)
		c.Set(path, Voxel(13))
		if got := c.Sample(NewIndexPath(d).Push(FrontRightBottom)); got != Voxel(13) {
			t.Fatalf("Sample after Set(%v) = %v, want 13", d, got)
		}
		want := 2
		if d == RearRightTop {
			want = 1
		}
		if got := c.CountNodes(); got != want {
			t.Fatalf("CountNodes() after Set(%v) = %d, want %d", d, got, want)
		}
	}
}

func TestChunkCondenseOnSetMultipleLevels(t *testing.T) {
	c := NewChunk()
	if got := c.CountNodes(); got != 1 {
		t.Fatalf("CountNodes() = %d, want 1", got)
	}
	for _, d := range AllDirections[:7] {
		path := NewIndexPath(d).Push(FrontRightBottom)
		c.Set(path, Voxel(13))
		if got := c.Sample(NewIndexPath(d).Push(FrontRightBottom)); got != Voxel(13) {
			t.Fatalf("Sample after Set(%v) = %v, want 13", d, got)
		}
		if got := c.CountNodes(); got != 2 {
			t.Fatalf("CountNodes() after Set(%v) = %d, want 2", d, got)
		}
	}
	for _, d := range AllDirections[:7] {
		path := NewIndexPath(d).Push(RearRightTop).Push(FrontRightBottom)
		c.Set(path, Voxel(13))
		if got := c.Sample(path); got != Voxel(13) {
			t.Fatalf("Sample after deep Set(%v) = %v, want 13", d, got)
		}
		if got := c.CountNodes(); got != 3 {
			t.Fatalf("CountNodes() after deep Set(%v) = %d, want 3", d, got)
		}
	}
	path := NewIndexPath(RearRightTop).Push(RearRightTop).Push(FrontRightBottom)
	c.Set(path, Voxel(13))
	if got := c.Sample(path); got != Voxel(13) {
		t.Fatalf("Sample after final Set = %v, want 13", got)
	}
	if got := c.CountNodes(); got != 1 {
		t.Fatalf("CountNodes() after full collapse = %d, want 1", got)
	}
}

func TestChunkIterLeaf(t *testing.T) {
	c := NewChunk()
	for i := Direction(0); i < 7; i++ {
		c.Set(NewIndexPath(i), Voxel(uint16(i)))
	}
	for i := Direction(0); i < 7; i++ {
		c.Set(NewIndexPath(i).Push(RearRightTop), Voxel(uint16(i)+16))
	}
	for i := Direction(0); i < 8; i++ {
		c.Set(NewIndexPath(i).Push(RearRightTop).Push(RearRightTop), Voxel(uint16(i)+32))
	}

	i := 0
	for node := range c.IterLeaf() {
		switch {
		case i < 7:
			if node.Voxel != Voxel(uint16(i)) {
				t.Fatalf("leaf %d: Voxel = %v, want %d", i, node.Voxel, i)
			}
			if node.IndexPath != NewIndexPath(Direction(i)) {
				t.Fatalf("leaf %d: IndexPath mismatch", i)
			}
		case i < 14:
			want := uint16(i) + 9
			if node.Voxel != Voxel(want) {
				t.Fatalf("leaf %d: Voxel = %v, want %d", i, node.Voxel, want)
			}
		default:
			want := uint16(i) + 18
			if node.Voxel != Voxel(want) {
				t.Fatalf("leaf %d: Voxel = %v, want %d", i, node.Voxel, want)
			}
		}
		i++
	}
}

func TestChunkIterLeafTilesUnitCube(t *testing.T) {
	c := NewChunk()
	c.Set(NewIndexPath(FrontLeftBottom), Voxel(1))
	c.Set(NewIndexPath(RearRightTop).Push(FrontLeftBottom), Voxel(2))
	c.Set(NewIndexPath(RearLeftTop).Push(RearRightTop).Push(FrontRightBottom), Voxel(3))

	var volume float64
	for node := range c.IterLeaf() {
		w := float64(node.Bounds().FloatWidth())
		volume += w * w * w
	}
	if volume < 1-1e-6 || volume > 1+1e-6 {
		t.Fatalf("leaf volumes sum to %v, want 1 (exact tiling of the unit cube)", volume)
	}
}

func TestChunkNonEmptyLeaves(t *testing.T) {
	c := NewChunk()
	c.Set(NewIndexPath(FrontLeftBottom), Voxel(7))
	count := 0
	for node := range c.NonEmptyLeaves() {
		count++
		if node.Voxel.IsEmpty() {
			t.Fatal("NonEmptyLeaves yielded an empty voxel")
		}
	}
	if count != 1 {
		t.Fatalf("NonEmptyLeaves count = %d, want 1", count)
	}
}

func TestChunkSetEmptyPathPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on Set with empty path")
		}
	}()
	c := NewChunk()
	c.Set(Empty, Voxel(1))
}

func TestNodeChildClosureOnLeaf(t *testing.T) {
	c := NewChunk()
	c.Set(NewIndexPath(FrontLeftBottom), Voxel(9))
	root := c.Root()
	if root.IsLeaf() {
		t.Fatal("the root cursor always has octants to descend into")
	}
	leaf := root.Child(FrontLeftBottom, c)
	if !leaf.IsLeaf() {
		t.Fatal("octant with no further subdivision should be a leaf")
	}
	if leaf.Voxel != Voxel(9) {
		t.Fatalf("leaf.Voxel = %v, want 9", leaf.Voxel)
	}
	deeper := leaf.Child(RearRightTop, c)
	if deeper.Voxel != leaf.Voxel {
		t.Fatalf("Child on a leaf should preserve its voxel, got %v want %v", deeper.Voxel, leaf.Voxel)
	}
	if !deeper.IsLeaf() {
		t.Fatal("Child on a leaf should still report IsLeaf")
	}
}
