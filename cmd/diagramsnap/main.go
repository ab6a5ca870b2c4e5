// Command diagramsnap renders a diagram configuration to a PNG, headless.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"audio-diagram/internal/diagram"
	"audio-diagram/internal/paint"
	"audio-diagram/internal/vehicle"
)

func main() {
	configPath := flag.String("diagram", "", "Path to diagram configuration JSON")
	assetDir := flag.String("assets", "assets", "Directory containing vehicle silhouettes")
	outPath := flag.String("out", "diagram.png", "Output PNG path")
	width := flag.Int("width", 800, "Surface width in pixels")
	height := flag.Int("height", 500, "Surface height in pixels")
	selected := flag.String("select", "", "Component ID to render as selected")
	flag.Parse()

	if *configPath == "" {
		fmt.Println("Usage: diagramsnap -diagram <path> [-assets <dir>] [-out diagram.png] [-select <id>]")
		os.Exit(1)
	}

	cfg, err := diagram.LoadConfiguration(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load diagram: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded diagram: %s (%d components, %d connections)\n",
		cfg.Archetype.DisplayName(), len(cfg.Components), len(cfg.Connections))

	// Vehicle body is optional; a missing silhouette degrades to boxes only.
	var body *image.RGBA
	if src, err := vehicle.LoadSilhouette(*assetDir, cfg.Archetype); err != nil {
		fmt.Fprintf(os.Stderr, "No silhouette, rendering without vehicle: %v\n", err)
	} else {
		body = paint.Recolor(src, cfg.BodyColor)
	}

	sel := diagram.Selection{ID: *selected}
	if !sel.Empty() {
		if _, ok := cfg.ComponentByID(sel.ID); !ok {
			fmt.Fprintf(os.Stderr, "Unknown component ID %q, rendering unselected\n", sel.ID)
			sel = diagram.Selection{}
		}
	}

	surface := image.NewRGBA(image.Rect(0, 0, *width, *height))
	diagram.Render(surface, cfg, body, sel)

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := png.Encode(f, surface); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%dx%d)\n", *outPath, *width, *height)
}
