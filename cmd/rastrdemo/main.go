// Command rastrdemo demonstrates the rastr polygon rasterizer.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/disintegration/imaging"

	"github.com/rastr/rastr"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "demo.png", "output file (format by extension)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		rastr.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	pm := rastr.NewPixmap(*width, *height)
	pm.Clear(rastr.White)

	// Solid red rectangle.
	rastr.FillPolygon(pm, rastr.Rect(50, 50, 200, 150), rastr.Solid(rastr.Red), rastr.BlendNormal)

	// Circle with a radial gradient fading from blue to transparent.
	radial := rastr.NewRadialGradient(400, 300, 100).
		AddStop(0, rastr.Blue).
		AddStop(1, rastr.Transparent)
	rastr.FillPolygon(pm, rastr.Circle(400, 300, 100, 50), radial, rastr.BlendNormal)

	// Triangle with a linear gradient, multiplied so it shows on white.
	linear := rastr.NewLinearGradient(100, 400, 300, 400).
		AddStop(0, rastr.Green).
		AddStop(1, rastr.NewColor(1, 1, 0, 0.5))
	tri := []rastr.Point{
		{X: 100, Y: 400},
		{X: 300, Y: 400},
		{X: 200, Y: 250},
	}
	rastr.FillPolygon(pm, tri, linear, rastr.BlendMultiply)

	// Five-pointed star in difference mode.
	star := rastr.Star(600, 150, 80, 30, 5)
	rastr.FillPolygon(pm, star, rastr.Solid(rastr.NewColor(1, 0.5, 0, 0.8)), rastr.BlendDifference)

	if err := imaging.Save(pm.ToImage(), *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}
