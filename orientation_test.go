package imgbound

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestRotationFromOrientation(t *testing.T) {
	want := []Rotation{
		0: Rotate0,
		1: Rotate0,
		2: Rotate0,
		3: Rotate180,
		4: Rotate0,
		5: Rotate0,
		6: Rotate90,
		7: Rotate0,
		8: Rotate270,
		9: Rotate0,
	}
	for orient, rotation := range want {
		if got := rotationFromOrientation(orient); got != rotation {
			t.Errorf("orientation %d: expected %s; got %s", orient, rotation, got)
		}
	}
}

func TestReadRotation(t *testing.T) {
	testCase := []struct {
		orientation uint16
		want        Rotation
	}{
		{0, Rotate0},
		{1, Rotate0},
		{2, Rotate0},
		{3, Rotate180},
		{6, Rotate90},
		{7, Rotate0},
		{8, Rotate270},
	}
	for _, tc := range testCase {
		b := encodeJPEG(t, 16, 8, tc.orientation)
		if got := ReadRotation(bytes.NewReader(b)); got != tc.want {
			t.Errorf("orientation %d: expected %s; got %s", tc.orientation, tc.want, got)
		}
	}

	if got := ReadRotation(bytes.NewReader(encodePNG(t, gradient(4, 4)))); got != Rotate0 {
		t.Errorf("png: expected %s; got %s", Rotate0, got)
	}
	if got := ReadRotation(bytes.NewBufferString("Hello")); got != Rotate0 {
		t.Errorf("invalid data: expected %s; got %s", Rotate0, got)
	}
}

func TestRotationApply(t *testing.T) {
	// 3x2 image with a red pixel in the top-left corner.
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(0, 0, color.NRGBA{0xff, 0, 0, 0xff})

	if dst := Rotate0.Apply(src); dst != image.Image(src) {
		t.Fatal("Rotate0 must return the same image")
	}

	testCase := []struct {
		rotation Rotation
		size     image.Point
		red      image.Point
	}{
		{Rotate90, image.Pt(2, 3), image.Pt(1, 0)},
		{Rotate180, image.Pt(3, 2), image.Pt(2, 1)},
		{Rotate270, image.Pt(2, 3), image.Pt(0, 2)},
	}
	for _, tc := range testCase {
		dst := tc.rotation.Apply(src)
		if dst.Bounds().Size() != tc.size {
			t.Fatalf("%s: expected size %v; got %v", tc.rotation, tc.size, dst.Bounds().Size())
		}
		if r, _, _, _ := dst.At(tc.red.X, tc.red.Y).RGBA(); r != 0xffff {
			t.Errorf("%s: expected red pixel at %v", tc.rotation, tc.red)
		}
	}

	if dst := Rotate90.Apply(Rotate270.Apply(src)); dst.Bounds().Size() == src.Bounds().Size() {
		compare(t, src, dst)
	} else {
		t.Fatalf("bounds differ: %v and %v", src.Bounds().Size(), dst.Bounds().Size())
	}
}

func TestRotationSwaps(t *testing.T) {
	for rotation, want := range map[Rotation]bool{Rotate0: false, Rotate90: true, Rotate180: false, Rotate270: true} {
		if got := rotation.Swaps(); got != want {
			t.Errorf("%s: expected %v; got %v", rotation, want, got)
		}
	}
}

func TestRotationLogical(t *testing.T) {
	for rotation, want := range map[Rotation]image.Point{
		Rotate0:   image.Pt(4, 3),
		Rotate90:  image.Pt(3, 4),
		Rotate180: image.Pt(4, 3),
		Rotate270: image.Pt(3, 4),
	} {
		if w, h := rotation.Logical(4, 3); image.Pt(w, h) != want {
			t.Errorf("%s: expected %v; got %v", rotation, want, image.Pt(w, h))
		}
		info := Info{Width: 4, Height: 3, Rotation: rotation}
		if w, h := info.Logical(); image.Pt(w, h) != want {
			t.Errorf("info %s: expected %v; got %v", rotation, want, image.Pt(w, h))
		}
	}
}
