// Package panels provides the side panels of the main window.
package panels

import (
	"audio-diagram/internal/app"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// DetailPanel shows the full specification of the selected component:
// every populated field of the base box merged with its extended catalog
// record.
type DetailPanel struct {
	state *app.State

	title  *widget.Label
	fields *fyne.Container
	box    *fyne.Container
}

// NewDetailPanel creates the panel and subscribes it to selection changes.
func NewDetailPanel(state *app.State) *DetailPanel {
	dp := &DetailPanel{
		state:  state,
		title:  widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		fields: container.NewVBox(),
	}

	dp.box = container.NewVBox(dp.title, widget.NewSeparator(), dp.fields)
	dp.refresh()

	state.On(app.EventSelectionChanged, func(_ interface{}) { dp.refresh() })
	state.On(app.EventCatalogLoaded, func(_ interface{}) { dp.refresh() })
	state.On(app.EventDiagramLoaded, func(_ interface{}) { dp.refresh() })

	return dp
}

// Container returns the panel for embedding in layouts.
func (dp *DetailPanel) Container() fyne.CanvasObject {
	return container.NewVScroll(dp.box)
}

// refresh rebuilds the field list from the current selection.
func (dp *DetailPanel) refresh() {
	dp.fields.Objects = nil

	detail, ok := dp.state.SelectedDetail()
	if !ok {
		dp.title.SetText("Components")
		dp.fields.Add(widget.NewLabel("Click a component box to\nview its specification."))
		dp.fields.Refresh()
		return
	}

	dp.title.SetText(detail.Name)
	for _, f := range detail.Fields {
		name := widget.NewLabelWithStyle(f.Label, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		value := widget.NewLabel(f.Value)
		value.Wrapping = fyne.TextWrapWord
		dp.fields.Add(container.NewVBox(name, value))
	}
	dp.fields.Refresh()
}
