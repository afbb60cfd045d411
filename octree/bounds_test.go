package octree

import "testing"

func TestBoundsHalfShrinksWidth(t *testing.T) {
	b := RootBounds()
	h := b.Half(FrontLeftBottom)
	if h.Width != b.Width/2 {
		t.Fatalf("Width = %d, want %d", h.Width, b.Width/2)
	}
	if h.X != 0 || h.Y != 0 || h.Z != 0 {
		t.Fatalf("FrontLeftBottom half should stay at origin, got %+v", h)
	}
}

func TestBoundsHalfMaxOctant(t *testing.T) {
	b := RootBounds()
	h := b.Half(RearRightTop)
	want := b.Width / 2
	if h.X != want || h.Y != want || h.Z != want {
		t.Fatalf("RearRightTop half = %+v, want origin offset %d on every axis", h, want)
	}
}

func TestBoundsFromIndexPathMatchesManualDescent(t *testing.T) {
	dirs := []Direction{FrontRightTop, RearLeftBottom, FrontLeftTop}
	path := Empty
	for _, d := range dirs {
		path = path.Put(d)
	}
	manual := RootBounds()
	for _, d := range dirs {
		manual = manual.Half(d)
	}
	got := FromIndexPath(path)
	if got != manual {
		t.Fatalf("FromIndexPath = %+v, want %+v", got, manual)
	}
}

func TestBoundsFromDiscreteGrid(t *testing.T) {
	b := FromDiscreteGrid(32, 32, 32, 48, 128)
	scale := MaxWidth / 128
	if b.X != 32*scale || b.Y != 32*scale || b.Z != 32*scale {
		t.Fatalf("origin = (%d,%d,%d), want cell 32 scaled by %d", b.X, b.Y, b.Z, scale)
	}
	if b.Width != 48*scale {
		t.Fatalf("Width = %d, want %d", b.Width, 48*scale)
	}
	if got, want := b.Position().X, float32(0.25); got != want {
		t.Fatalf("Position().X = %v, want %v", got, want)
	}
	if got, want := b.FloatWidth(), float32(0.375); got != want {
		t.Fatalf("FloatWidth() = %v, want %v", got, want)
	}
}

func TestBoundsCenterWithinUnitCube(t *testing.T) {
	c := RootBounds().Center()
	if c.X <= 0 || c.X >= 1 || c.Y <= 0 || c.Y >= 1 || c.Z <= 0 || c.Z >= 1 {
		t.Fatalf("root center should sit strictly inside (0,1)^3, got %+v", c)
	}
}

func TestBoundsLeafSized(t *testing.T) {
	b := Bounds{Width: 1}
	if !b.IsLeafSized() {
		t.Fatal("width-1 bounds should be leaf-sized")
	}
	b.Width = 2
	if b.IsLeafSized() {
		t.Fatal("width-2 bounds should not be leaf-sized")
	}
}
