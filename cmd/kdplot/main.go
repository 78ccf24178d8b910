// Command kdplot renders the partition of a 2D KD-tree to a PNG.
//
//	kdplot [-points file.yaml] [-out kdplot.png] [-size 800] [-margin 40]
//
// Without -points it plots the seven-point demo set on a 0..20 square.
package main

import (
	"flag"
	"fmt"
	"os"

	"ball-sandbox/internal/kdplot"
)

func main() {
	pointsPath := flag.String("points", "", "YAML point file (default: built-in demo points)")
	out := flag.String("out", "kdplot.png", "output PNG path")
	size := flag.Int("size", 800, "image width and height in pixels")
	margin := flag.Int("margin", 40, "blank border in pixels")
	flag.Parse()

	pts := kdplot.DefaultPoints
	bounds := kdplot.Bounds{MaxX: 20, MaxY: 20}
	if *pointsPath != "" {
		var err error
		pts, bounds, err = kdplot.LoadPoints(*pointsPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *size <= 2**margin {
		fmt.Fprintf(os.Stderr, "kdplot: size %d leaves no room inside margin %d\n", *size, *margin)
		os.Exit(2)
	}

	im := kdplot.Image{Bounds: bounds, Size: int32(*size), Margin: int32(*margin)}
	if err := kdplot.Export(*out, pts, im); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d points)\n", *out, len(pts))
}
