// Command paintcheck runs the pixel classifier on a silhouette and reports
// per-class statistics, optionally writing the recolored result.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"audio-diagram/internal/paint"
	"audio-diagram/internal/vehicle"
	"audio-diagram/pkg/colorutil"
)

func main() {
	assetDir := flag.String("assets", "assets", "Directory containing vehicle silhouettes")
	archName := flag.String("vehicle", "sedan", "Vehicle archetype")
	bodyHex := flag.String("color", "#C62828", "Target body color (hex)")
	outPath := flag.String("out", "", "Optional output PNG for the recolored silhouette")
	flag.Parse()

	archetype, err := vehicle.ParseArchetype(*archName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	target, err := colorutil.ParseHex(*bodyHex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad color %q: %v\n", *bodyHex, err)
		os.Exit(1)
	}

	src, err := vehicle.LoadSilhouette(*assetDir, archetype)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load silhouette: %v\n", err)
		os.Exit(1)
	}

	bounds := src.Bounds()
	fmt.Printf("Silhouette: %s (%dx%d)\n", archetype.DisplayName(), bounds.Dx(), bounds.Dy())

	stats := paint.ClassStats(src)
	fmt.Printf("\n%-12s %10s %10s %10s\n", "Class", "Pixels", "MeanLum", "StdLum")
	for class := paint.ClassTransparent; class <= paint.ClassDetail; class++ {
		st := stats[class]
		fmt.Printf("%-12s %10d %10.3f %10.3f\n", class, st.Count, st.MeanLum, st.StdLum)
	}

	if *outPath == "" {
		return
	}

	recolored := paint.Recolor(src, target)
	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := png.Encode(f, recolored); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nWrote %s tinted %s\n", *outPath, colorutil.Hex(target))
}
