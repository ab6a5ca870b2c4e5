// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"

	"audio-diagram/internal/app"
	"audio-diagram/internal/vehicle"
	"audio-diagram/internal/version"
	"audio-diagram/pkg/colorutil"
	diagramcanvas "audio-diagram/ui/canvas"
	"audio-diagram/ui/panels"
	"audio-diagram/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const (
	prefKeyLastDiagram = "lastDiagram"
	prefKeyLastCatalog = "lastCatalog"
	prefKeyWinWidth    = "windowWidth"
	prefKeyWinHeight   = "windowHeight"
)

// Preset body colors offered in the Vehicle menu.
var bodyColors = []struct {
	Name string
	Hex  string
}{
	{"Black", "#1A1A1A"},
	{"White", "#F5F5F5"},
	{"Silver", "#C0C0C8"},
	{"Red", "#C62828"},
	{"Blue", "#1565C0"},
	{"Green", "#2E7D32"},
	{"Orange", "#EF6C00"},
}

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	presenter *diagramcanvas.Presenter
	detail    *panels.DetailPanel
	statusBar *widget.Label
}

// New creates the main window around the shared application state.
func New(fyneApp fyne.App, state *app.State, appPrefs *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow(fmt.Sprintf("Audio Install Diagram v%s", version.Version))

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  appPrefs,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()

	w := appPrefs.FloatWithFallback(prefKeyWinWidth, 1100)
	h := appPrefs.FloatWithFallback(prefKeyWinHeight, 700)
	win.Resize(fyne.NewSize(float32(w), float32(h)))

	win.SetCloseIntercept(func() {
		mw.savePreferences()
		win.Close()
	})

	return mw
}

// setupUI creates the main layout: detail panel | diagram surface.
func (mw *MainWindow) setupUI() {
	mw.presenter = diagramcanvas.NewPresenter(mw.app, mw.state)
	mw.detail = panels.NewDetailPanel(mw.state)
	mw.statusBar = widget.NewLabel("Ready")

	split := container.NewHSplit(
		mw.detail.Container(),
		mw.presenter.Inline(),
	)
	split.SetOffset(0.22)

	mw.SetContent(container.NewBorder(
		nil,          // top
		mw.statusBar, // bottom
		nil, nil,
		split,
	))
}

// setupMenus creates the menu bar.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Diagram...", mw.openDiagram),
		fyne.NewMenuItem("Open Catalog...", mw.openCatalog),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Toggle Fullscreen Diagram", func() {
			mw.state.ToggleFullscreen()
		}),
	)

	var archItems []*fyne.MenuItem
	for _, a := range vehicle.Archetypes() {
		archetype := a
		archItems = append(archItems, fyne.NewMenuItem(archetype.DisplayName(), func() {
			mw.state.SetArchetype(archetype)
		}))
	}

	var colorItems []*fyne.MenuItem
	for _, bc := range bodyColors {
		hex := bc.Hex
		colorItems = append(colorItems, fyne.NewMenuItem(bc.Name, func() {
			c, err := colorutil.ParseHex(hex)
			if err != nil {
				return
			}
			mw.state.SetBodyColor(c)
		}))
	}

	vehicleMenu := fyne.NewMenu("Vehicle", append(archItems,
		append([]*fyne.MenuItem{fyne.NewMenuItemSeparator()}, colorItems...)...)...)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, vehicleMenu))
}

// setupEventHandlers wires the status bar to state changes.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventDiagramLoaded, func(data interface{}) {
		if path, ok := data.(string); ok {
			mw.statusBar.SetText(fmt.Sprintf("Diagram: %s", path))
		}
	})

	mw.state.On(app.EventVehicleReady, func(data interface{}) {
		if archetype, ok := data.(vehicle.Archetype); ok {
			cfg := mw.state.Config()
			if cfg != nil {
				mw.statusBar.SetText(fmt.Sprintf("Vehicle: %s, body %s",
					archetype.DisplayName(), colorutil.Hex(cfg.BodyColor)))
			}
		}
	})

	mw.state.On(app.EventSelectionChanged, func(_ interface{}) {
		if detail, ok := mw.state.SelectedDetail(); ok {
			mw.statusBar.SetText(fmt.Sprintf("Selected: %s", detail.Name))
		} else {
			mw.statusBar.SetText("Ready")
		}
	})
}

// openDiagram shows the diagram file chooser.
func (mw *MainWindow) openDiagram() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()

		if err := mw.state.LoadDiagram(path); err != nil {
			log.Printf("Failed to load diagram %s: %v", path, err)
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.prefs.SetString(prefKeyLastDiagram, path)
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	fd.Show()
}

// openCatalog shows the catalog file chooser.
func (mw *MainWindow) openCatalog() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()

		if err := mw.state.LoadCatalog(path); err != nil {
			log.Printf("Failed to load catalog %s: %v", path, err)
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.prefs.SetString(prefKeyLastCatalog, path)
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	fd.Show()
}

// savePreferences persists window geometry and last-opened files.
func (mw *MainWindow) savePreferences() {
	size := mw.Canvas().Size()
	mw.prefs.SetFloat(prefKeyWinWidth, float64(size.Width))
	mw.prefs.SetFloat(prefKeyWinHeight, float64(size.Height))
	if err := mw.prefs.Save(); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
}
