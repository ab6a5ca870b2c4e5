// Package main provides the entry point for the audio install diagram viewer.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"audio-diagram/internal/app"
	"audio-diagram/internal/version"
	"audio-diagram/ui/mainwindow"
	"audio-diagram/ui/prefs"

	fyneapp "fyne.io/fyne/v2/app"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting audio-diagram v%s (%s, built %s)",
		version.Version, version.GitCommit, version.BuildTime)

	assetDir := flag.String("assets", defaultAssetDir(), "directory containing vehicle silhouette images")
	flag.Parse()

	fyneApp := fyneapp.New()
	appState := app.NewState(*assetDir)
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, appState, appPrefs)

	// Positional arguments: diagram file, then optional catalog file.
	// With no arguments, reopen the last diagram from preferences.
	args := flag.Args()
	if len(args) > 1 {
		if err := appState.LoadCatalog(args[1]); err != nil {
			log.Printf("Failed to load catalog %s: %v", args[1], err)
		}
	}
	switch {
	case len(args) > 0:
		if err := appState.LoadDiagram(args[0]); err != nil {
			log.Printf("Failed to load diagram %s: %v", args[0], err)
		}
	default:
		if last := appPrefs.String("lastDiagram"); last != "" {
			if err := appState.LoadDiagram(last); err != nil {
				log.Printf("Failed to reopen %s: %v", last, err)
			}
		}
	}

	win.ShowAndRun()
}

// defaultAssetDir resolves the assets directory next to the executable,
// falling back to the working directory.
func defaultAssetDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "assets"
	}
	return filepath.Join(filepath.Dir(exe), "assets")
}
