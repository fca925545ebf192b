// Command osgldemo renders a scene with every osgl primitive and saves it
// as a PNG, driving the full pipeline through the headless image display.
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/jukepilot/osgl"
	"github.com/jukepilot/osgl/surface"
)

func main() {
	var (
		width   = flag.Int("width", 512, "image width")
		height  = flag.Int("height", 512, "image height")
		output  = flag.String("output", "demo.png", "output file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		osgl.SetLogger(slog.Default())
	}

	display := surface.NewImageDisplay(*width, *height)
	s, err := surface.New(display, surface.Options{
		Width:      *width,
		Height:     *height,
		Background: osgl.White,
	})
	if err != nil {
		log.Fatalf("create surface: %v", err)
	}

	drawScene(s)

	if err := s.Present(); err != nil {
		log.Fatalf("present: %v", err)
	}
	if err := savePNG(display, *output); err != nil {
		log.Fatalf("save: %v", err)
	}
	log.Printf("demo saved to %s (%dx%d)", *output, s.Width(), s.Height())
}

func drawScene(s *surface.Surface) {
	w := float64(s.Width())
	h := float64(s.Height())

	// Filled circle with a stroke band.
	circle := osgl.DefaultCircleStyle().
		WithFill(osgl.Red).
		WithStroke(osgl.Black, 4)
	_ = osgl.DrawCircle(s, w*0.3, h*0.3, w*0.15, circle)

	// Axis-aligned and rotated rectangles.
	rect := osgl.DefaultRectStyle().WithFill(osgl.Blue).WithStroke(osgl.Cyan, 3)
	_ = osgl.DrawRect(s, w*0.55, h*0.15, w*0.3, h*0.2, rect)

	diamond := osgl.DefaultRectStyle().WithFill(osgl.Magenta).WithRotation(45)
	_ = osgl.DrawRect(s, w*0.6, h*0.55, w*0.2, h*0.2, diamond)

	// A fan of thick lines.
	line := osgl.DefaultLineStyle().WithThickness(3)
	for i := 0; i < 5; i++ {
		t := float64(i) / 4
		_ = osgl.DrawLine(s, w*0.1, h*0.9, w*(0.1+0.3*t), h*0.55, line)
	}

	// An arbitrary polygon.
	pts := []osgl.Point{
		{X: w * 0.15, Y: h * 0.55},
		{X: w * 0.35, Y: h * 0.6},
		{X: w * 0.3, Y: h * 0.8},
		{X: w * 0.1, Y: h * 0.75},
	}
	_ = osgl.DrawPolygon(s, 0, 0, pts, osgl.DefaultPolygonStyle().WithFill(osgl.Green))
}

func savePNG(d *surface.ImageDisplay, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, d.Snapshot())
}
