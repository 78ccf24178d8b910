package kdplot

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSegmentsOfDefaultPoints(t *testing.T) {
	got := Segments(Tree(DefaultPoints), Bounds{MinX: 0, MinY: 0, MaxX: 20, MaxY: 20})
	want := []Segment{
		{X1: 9, Y1: 0, X2: 9, Y2: 20, Axis: 0, Depth: 0},
		{X1: 0, Y1: 7, X2: 9, Y2: 7, Axis: 1, Depth: 1},
		{X1: 3, Y1: 0, X2: 3, Y2: 7, Axis: 0, Depth: 2},
		{X1: 6, Y1: 7, X2: 6, Y2: 20, Axis: 0, Depth: 2},
		{X1: 9, Y1: 15, X2: 20, Y2: 15, Axis: 1, Depth: 1},
		{X1: 13, Y1: 0, X2: 13, Y2: 15, Axis: 0, Depth: 2},
		{X1: 10, Y1: 15, X2: 10, Y2: 20, Axis: 0, Depth: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Segments =\n%+v\nwant\n%+v", got, want)
	}
}

func TestSegmentsEmptyTree(t *testing.T) {
	if got := Segments(Tree(nil), Bounds{MaxX: 1, MaxY: 1}); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestPixel(t *testing.T) {
	im := Image{Bounds: Bounds{MinX: 0, MinY: 0, MaxX: 20, MaxY: 20}, Size: 220, Margin: 10}
	tests := []struct {
		x, y   float64
		px, py int32
	}{
		{0, 0, 10, 210},
		{20, 20, 210, 10},
		{10, 5, 110, 160},
	}
	for _, tt := range tests {
		px, py := im.Pixel(tt.x, tt.y)
		if px != tt.px || py != tt.py {
			t.Errorf("Pixel(%g,%g) = (%d,%d), want (%d,%d)", tt.x, tt.y, px, py, tt.px, tt.py)
		}
	}
}

func TestLoadPoints(t *testing.T) {
	dir := t.TempDir()
	withBounds := filepath.Join(dir, "a.yaml")
	os.WriteFile(withBounds, []byte("bounds: {min_x: 0, min_y: 0, max_x: 20, max_y: 20}\npoints: [[3, 6], [17, 15]]\n"), 0644)
	pts, b, err := LoadPoints(withBounds)
	if err != nil {
		t.Fatalf("LoadPoints: %v", err)
	}
	if len(pts) != 2 || pts[1] != [2]float64{17, 15} || b != (Bounds{0, 0, 20, 20}) {
		t.Fatalf("pts=%v bounds=%+v", pts, b)
	}

	noBounds := filepath.Join(dir, "b.yaml")
	os.WriteFile(noBounds, []byte("points:\n  - [3, 6]\n  - [17, 15]\n"), 0644)
	_, b, err = LoadPoints(noBounds)
	if err != nil {
		t.Fatalf("LoadPoints: %v", err)
	}
	if b != (Bounds{2, 5, 18, 16}) {
		t.Fatalf("derived bounds = %+v", b)
	}

	empty := filepath.Join(dir, "c.yaml")
	os.WriteFile(empty, []byte("points: []\n"), 0644)
	if _, _, err := LoadPoints(empty); err == nil {
		t.Fatal("expected an error for no points")
	}
	if _, _, err := LoadPoints(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestExportWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.png")
	im := Image{Bounds: Bounds{MaxX: 20, MaxY: 20}, Size: 200, Margin: 10}
	if err := Export(path, DefaultPoints, im); err != nil {
		t.Fatalf("Export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Fatalf("not a PNG: % x", data[:min(8, len(data))])
	}
}
