package canvas

import (
	"audio-diagram/internal/app"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Presenter owns the two drawing surfaces. Both are pure projections of the
// same application state; toggling fullscreen flips which one is active and
// redraws it. Closing the fullscreen overlay reverts to the inline surface
// without touching selection or configuration.
type Presenter struct {
	fyneApp fyne.App
	state   *app.State

	inline *DiagramCanvas

	fullWin    fyne.Window
	fullCanvas *DiagramCanvas
}

// NewPresenter creates the presenter with its inline surface and wires the
// redraw triggers: any state change refreshes every visible surface.
func NewPresenter(fyneApp fyne.App, state *app.State) *Presenter {
	p := &Presenter{
		fyneApp: fyneApp,
		state:   state,
		inline:  NewDiagramCanvas(state),
	}

	redraw := func(_ interface{}) { p.RefreshAll() }
	state.On(app.EventDiagramLoaded, redraw)
	state.On(app.EventVehicleReady, redraw)
	state.On(app.EventSelectionChanged, redraw)

	state.On(app.EventFullscreenToggled, func(data interface{}) {
		active, _ := data.(bool)
		p.applyFullscreen(active)
	})

	return p
}

// Inline returns the inline surface for embedding in the main window.
func (p *Presenter) Inline() *DiagramCanvas {
	return p.inline
}

// RefreshAll redraws every visible surface from current state.
func (p *Presenter) RefreshAll() {
	p.inline.Refresh()
	if p.fullWin != nil && p.fullCanvas != nil && p.state.Fullscreen() {
		p.fullCanvas.Refresh()
	}
}

// applyFullscreen shows or hides the fullscreen overlay window, creating it
// lazily on first use, and immediately redraws the surface that became
// active.
func (p *Presenter) applyFullscreen(active bool) {
	if active {
		if p.fullWin == nil {
			p.buildFullscreenWindow()
		}
		p.fullCanvas.Refresh()
		p.fullWin.Show()
		return
	}

	if p.fullWin != nil {
		p.fullWin.Hide()
	}
	p.inline.Refresh()
}

// buildFullscreenWindow creates the overlay window with its second surface.
func (p *Presenter) buildFullscreenWindow() {
	win := p.fyneApp.NewWindow("Installation Diagram")
	p.fullCanvas = NewDiagramCanvas(p.state)

	closeBtn := widget.NewButton("Close (Esc)", func() {
		p.closeFullscreen()
	})

	win.SetContent(container.NewBorder(
		container.NewHBox(closeBtn), // top
		nil, nil, nil,
		p.fullCanvas,
	))

	win.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			p.closeFullscreen()
		}
	})

	// Window-manager close must revert the toggle, not leave the flag stuck.
	win.SetCloseIntercept(func() {
		p.closeFullscreen()
	})

	win.SetFullScreen(true)
	p.fullWin = win
}

// closeFullscreen reverts to the inline surface if the overlay is active.
func (p *Presenter) closeFullscreen() {
	if p.state.Fullscreen() {
		p.state.ToggleFullscreen()
	}
}
