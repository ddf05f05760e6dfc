package blockfall

import "testing"

func shapesEqual(a, b [][]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for y := range a {
		if len(a[y]) != len(b[y]) {
			return false
		}
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}

func TestShapeReturnsCopy(t *testing.T) {
	first := KindT.Shape()
	first[0][1] = false

	second := KindT.Shape()
	if !second[0][1] {
		t.Error("mutating a returned shape must not affect the canonical shape")
	}
}

func TestAllKindsHaveShapes(t *testing.T) {
	if len(Kinds) != 7 {
		t.Fatalf("expected 7 piece kinds, got %d", len(Kinds))
	}
	for _, k := range Kinds {
		shape := k.Shape()
		if len(shape) == 0 || len(shape[0]) == 0 {
			t.Errorf("kind %s has an empty shape", k)
		}
		filled := 0
		for _, row := range shape {
			for _, cell := range row {
				if cell {
					filled++
				}
			}
		}
		if filled != 4 {
			t.Errorf("kind %s has %d filled cells, expected 4", k, filled)
		}
	}
}

func TestRotateCWTPiece(t *testing.T) {
	shape := KindT.Shape() // .X. / XXX
	rotated := RotateCW(shape)

	expected := [][]bool{
		{true, false},
		{true, true},
		{true, false},
	}
	if !shapesEqual(rotated, expected) {
		t.Errorf("T rotated clockwise = %v, expected %v", rotated, expected)
	}
}

func TestRotateCCWIsThreeCW(t *testing.T) {
	for _, k := range Kinds {
		shape := k.Shape()
		ccw := RotateCCW(shape)
		threeCW := RotateCW(RotateCW(RotateCW(shape)))
		if !shapesEqual(ccw, threeCW) {
			t.Errorf("kind %s: one CCW rotation should equal three CW rotations", k)
		}
	}
}

func TestRotateRoundTrip(t *testing.T) {
	for _, k := range Kinds {
		shape := k.Shape()

		if !shapesEqual(RotateCCW(RotateCW(shape)), shape) {
			t.Errorf("kind %s: CW then CCW should restore the shape", k)
		}

		four := shape
		for i := 0; i < 4; i++ {
			four = RotateCW(four)
		}
		if !shapesEqual(four, shape) {
			t.Errorf("kind %s: four CW rotations should restore the shape", k)
		}
	}
}

func TestPieceDimensions(t *testing.T) {
	p := &Piece{Kind: KindI, Shape: KindI.Shape()}
	if p.Width() != 4 || p.Height() != 1 {
		t.Errorf("I piece should be 4x1, got %dx%d", p.Width(), p.Height())
	}

	p.Shape = RotateCW(p.Shape)
	if p.Width() != 1 || p.Height() != 4 {
		t.Errorf("rotated I piece should be 1x4, got %dx%d", p.Width(), p.Height())
	}
}
