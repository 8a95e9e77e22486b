package pix

import (
	"image"
	"testing"
)

// TestNewImage verifies dimensions and zero initialization.
func TestNewImage(t *testing.T) {
	m := NewImage(4, 3)
	if m.Width() != 4 || m.Height() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 4x3", m.Width(), m.Height())
	}
	if len(m.Data()) != 4*3*Channels {
		t.Fatalf("data length: got %d, want %d", len(m.Data()), 4*3*Channels)
	}
	for i, v := range m.Data() {
		if v != 0 {
			t.Fatalf("data[%d] = %d, want 0", i, v)
		}
	}
}

// TestNewImage_Empty verifies zero-sized images are allowed.
func TestNewImage_Empty(t *testing.T) {
	m := NewImage(0, 0)
	if !m.Empty() {
		t.Error("Empty() = false for 0x0 image")
	}
	if NewImage(5, 5).Empty() {
		t.Error("Empty() = true for 5x5 image")
	}
}

// TestNewImage_NegativePanics verifies negative dimensions panic.
func TestNewImage_NegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewImage(-1, 5) did not panic")
		}
	}()
	NewImage(-1, 5)
}

// TestGetSet verifies channel round-trips and pixel accessors.
func TestGetSet(t *testing.T) {
	m := NewImage(3, 3)
	m.Set(1, 2, 0, 200)
	m.Set(1, 2, 1, 100)
	m.Set(1, 2, 2, 50)

	if got := m.Get(1, 2, 0); got != 200 {
		t.Errorf("Get(1,2,0) = %d, want 200", got)
	}
	if got := m.Pixel(1, 2); got != (RGB{200, 100, 50}) {
		t.Errorf("Pixel(1,2) = %+v, want {200 100 50}", got)
	}

	m.SetPixel(0, 0, RGB{1, 2, 3})
	if got := m.Pixel(0, 0); got != (RGB{1, 2, 3}) {
		t.Errorf("Pixel(0,0) = %+v, want {1 2 3}", got)
	}
}

// TestGet_OutOfBoundsPanics verifies the accessor panics outside the grid.
func TestGet_OutOfBoundsPanics(t *testing.T) {
	m := NewImage(2, 2)
	cases := []struct{ x, y, c int }{
		{-1, 0, 0}, {2, 0, 0}, {0, -1, 0}, {0, 2, 0}, {0, 0, 3}, {0, 0, -1},
	}
	for _, tc := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Get(%d,%d,%d) did not panic", tc.x, tc.y, tc.c)
				}
			}()
			m.Get(tc.x, tc.y, tc.c)
		}()
	}
}

// TestSetClamped verifies values are clamped to [0, 255].
func TestSetClamped(t *testing.T) {
	m := NewImage(1, 1)
	m.SetClamped(0, 0, 0, 300)
	m.SetClamped(0, 0, 1, -5)
	m.SetClamped(0, 0, 2, 128)
	if got := m.Pixel(0, 0); got != (RGB{255, 0, 128}) {
		t.Errorf("clamped pixel = %+v, want {255 0 128}", got)
	}
}

// TestClone verifies the clone is equal but independent.
func TestClone(t *testing.T) {
	m := NewImage(2, 2)
	m.Fill(RGB{10, 20, 30})
	c := m.Clone()

	if !m.Equal(c) {
		t.Fatal("clone not equal to source")
	}

	c.Set(0, 0, 0, 99)
	if m.Get(0, 0, 0) != 10 {
		t.Error("mutating clone changed the source")
	}
}

// TestEqual covers dimension and content mismatches.
func TestEqual(t *testing.T) {
	a := NewImage(2, 2)
	b := NewImage(2, 3)
	if a.Equal(b) {
		t.Error("images with different dimensions reported equal")
	}
	c := NewImage(2, 2)
	c.Set(1, 1, 2, 7)
	if a.Equal(c) {
		t.Error("images with different content reported equal")
	}
}

// TestFill verifies every pixel takes the fill color.
func TestFill(t *testing.T) {
	m := NewImage(3, 2)
	m.Fill(RGB{7, 8, 9})
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := m.Pixel(x, y); got != (RGB{7, 8, 9}) {
				t.Fatalf("Pixel(%d,%d) = %+v, want {7 8 9}", x, y, got)
			}
		}
	}
}

// TestImageInterface verifies Image satisfies image.Image with opaque alpha.
func TestImageInterface(t *testing.T) {
	m := NewImage(4, 5)
	m.SetPixel(2, 3, RGB{200, 150, 100})

	var img image.Image = m
	if got := img.Bounds(); got != image.Rect(0, 0, 4, 5) {
		t.Errorf("Bounds() = %v, want (0,0)-(4,5)", got)
	}
	r, g, b, a := img.At(2, 3).RGBA()
	if r != 200*257 || g != 150*257 || b != 100*257 || a != 255*257 {
		t.Errorf("At(2,3) = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
			r, g, b, a, 200*257, 150*257, 100*257, 255*257)
	}
}

// TestClamp255 checks the saturation helper at its edges.
func TestClamp255(t *testing.T) {
	cases := []struct {
		in   int
		want uint8
	}{
		{-1, 0}, {0, 0}, {128, 128}, {255, 255}, {256, 255}, {1000, 255},
	}
	for _, tc := range cases {
		if got := clamp255(tc.in); got != tc.want {
			t.Errorf("clamp255(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
