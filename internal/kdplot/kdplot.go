// Package kdplot draws the partition lines of a KD-tree: one split line per node,
// clipped to the region that node owns. Used by the offline kdplot tool and the sandbox overlay.
package kdplot

import (
	"errors"
	"fmt"
	"os"

	"ball-sandbox/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// Bounds is the axis-aligned region being partitioned.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Segment is one split line. Axis 0 lines are vertical (x = const), axis 1 horizontal.
type Segment struct {
	X1, Y1, X2, Y2 float64
	Axis           int
	Depth          int
}

// Segments walks the tree shape and returns the split line of every node, clipped to its cell.
// Order is pre-order from the root.
func Segments(t *physics.KDTree, b Bounds) []Segment {
	out := make([]Segment, 0, t.Len())
	return appendSegments(out, t, t.Root(), b, 0)
}

func appendSegments(out []Segment, t *physics.KDTree, n int, b Bounds, depth int) []Segment {
	if n < 0 {
		return out
	}
	node := t.Node(n)
	left, right := b, b
	if node.Axis == 0 {
		out = append(out, Segment{X1: node.X, Y1: b.MinY, X2: node.X, Y2: b.MaxY, Axis: 0, Depth: depth})
		left.MaxX = node.X
		right.MinX = node.X
	} else {
		out = append(out, Segment{X1: b.MinX, Y1: node.Y, X2: b.MaxX, Y2: node.Y, Axis: 1, Depth: depth})
		left.MaxY = node.Y
		right.MinY = node.Y
	}
	out = appendSegments(out, t, node.Left, left, depth+1)
	return appendSegments(out, t, node.Right, right, depth+1)
}

// DefaultPoints is a small hand-checkable point set.
var DefaultPoints = [][2]float64{{3, 6}, {17, 15}, {13, 15}, {6, 12}, {9, 1}, {2, 7}, {10, 19}}

type pointFile struct {
	Bounds *struct {
		MinX float64 `yaml:"min_x"`
		MinY float64 `yaml:"min_y"`
		MaxX float64 `yaml:"max_x"`
		MaxY float64 `yaml:"max_y"`
	} `yaml:"bounds"`
	Points [][2]float64 `yaml:"points"`
}

// LoadPoints reads a YAML file of the form
//
//	bounds: {min_x: 0, min_y: 0, max_x: 20, max_y: 20}
//	points: [[3, 6], [17, 15]]
//
// When bounds is omitted it is the bounding box of the points.
func LoadPoints(path string) ([][2]float64, Bounds, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Bounds{}, fmt.Errorf("kdplot: %w", err)
	}
	var f pointFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, Bounds{}, fmt.Errorf("kdplot: parse %s: %w", path, err)
	}
	if len(f.Points) == 0 {
		return nil, Bounds{}, errors.New("kdplot: no points")
	}
	b := BoundsOf(f.Points)
	if f.Bounds != nil {
		b = Bounds{MinX: f.Bounds.MinX, MinY: f.Bounds.MinY, MaxX: f.Bounds.MaxX, MaxY: f.Bounds.MaxY}
	}
	if b.MaxX <= b.MinX || b.MaxY <= b.MinY {
		return nil, Bounds{}, fmt.Errorf("kdplot: empty bounds %+v", b)
	}
	return f.Points, b, nil
}

// BoundsOf returns the bounding box of pts, padded by one unit so edge points are not on the frame.
func BoundsOf(pts [][2]float64) Bounds {
	b := Bounds{MinX: pts[0][0], MinY: pts[0][1], MaxX: pts[0][0], MaxY: pts[0][1]}
	for _, p := range pts[1:] {
		b.MinX = min(b.MinX, p[0])
		b.MinY = min(b.MinY, p[1])
		b.MaxX = max(b.MaxX, p[0])
		b.MaxY = max(b.MaxY, p[1])
	}
	b.MinX--
	b.MinY--
	b.MaxX++
	b.MaxY++
	return b
}

// Tree builds a KD-tree over pts, treating each point as a unit-radius body.
func Tree(pts [][2]float64) *physics.KDTree {
	bodies := make([]physics.Body, len(pts))
	for i, p := range pts {
		bodies[i] = physics.NewBody(p[0], p[1], 1, 0, 0, physics.Color{})
	}
	return physics.BuildKDTree(bodies)
}

// Colors used by the plot and the sandbox overlay.
var (
	VerticalColor   = rl.NewColor(31, 119, 180, 255)
	HorizontalColor = rl.NewColor(255, 127, 14, 255)
	PointColor      = rl.NewColor(214, 39, 40, 255)
)

// Image is the pixel mapping of a plot: bounds scaled into a size×size square, y pointing up.
type Image struct {
	Bounds Bounds
	Size   int32
	Margin int32
}

// Pixel maps a world point to image coordinates.
func (im Image) Pixel(x, y float64) (int32, int32) {
	inner := float32(im.Size - 2*im.Margin)
	sx := inner / float32(im.Bounds.MaxX-im.Bounds.MinX)
	sy := inner / float32(im.Bounds.MaxY-im.Bounds.MinY)
	px := float32(im.Margin) + float32(x-im.Bounds.MinX)*sx
	py := float32(im.Size-im.Margin) - float32(y-im.Bounds.MinY)*sy
	return int32(math32.Round(px)), int32(math32.Round(py))
}

// Export renders the partition and the points of pts into a PNG at path.
// It uses raylib's CPU image API only, so no window is needed.
func Export(path string, pts [][2]float64, im Image) error {
	tree := Tree(pts)
	img := rl.GenImageColor(int(im.Size), int(im.Size), rl.White)
	defer rl.UnloadImage(img)

	x0, y0 := im.Pixel(im.Bounds.MinX, im.Bounds.MinY)
	x1, y1 := im.Pixel(im.Bounds.MaxX, im.Bounds.MaxY)
	rl.ImageDrawRectangleLines(img, rl.NewRectangle(float32(x0), float32(y1), float32(x1-x0), float32(y0-y1)), 1, rl.Gray)

	for _, s := range Segments(tree, im.Bounds) {
		ax, ay := im.Pixel(s.X1, s.Y1)
		bx, by := im.Pixel(s.X2, s.Y2)
		c := VerticalColor
		if s.Axis == 1 {
			c = HorizontalColor
		}
		rl.ImageDrawLine(img, ax, ay, bx, by, c)
	}
	for _, p := range pts {
		px, py := im.Pixel(p[0], p[1])
		rl.ImageDrawCircle(img, px, py, 4, PointColor)
	}
	if !rl.ExportImage(*img, path) {
		return fmt.Errorf("kdplot: could not write %s", path)
	}
	return nil
}
