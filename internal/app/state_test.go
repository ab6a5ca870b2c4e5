package app

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"audio-diagram/internal/diagram"
	"audio-diagram/pkg/geometry"
)

func stateWithConfig() *State {
	s := NewState("testdata")
	s.config = &diagram.Configuration{
		Components: []diagram.ComponentBox{
			{ID: "head-unit", Name: "HEAD UNIT",
				Position: geometry.NewPoint2D(100, 100), Visible: true},
			{ID: "amp", Name: "AMP",
				Position: geometry.NewPoint2D(400, 300), Visible: true},
		},
	}
	return s
}

func TestHandleTapSelectionCycle(t *testing.T) {
	s := stateWithConfig()

	var events []diagram.Selection
	s.On(EventSelectionChanged, func(data interface{}) {
		events = append(events, data.(diagram.Selection))
	})

	// Hit the first box.
	s.HandleTap(110, 110)
	if got := s.Selection(); got.ID != "head-unit" {
		t.Fatalf("selection = %v, want head-unit", got)
	}

	// Hit the second: selection switches.
	s.HandleTap(410, 310)
	if got := s.Selection(); got.ID != "amp" {
		t.Fatalf("selection = %v, want amp", got)
	}

	// Re-hit the second: selection clears.
	s.HandleTap(410, 310)
	if got := s.Selection(); !got.Empty() {
		t.Fatalf("selection = %v, want empty", got)
	}

	// Miss while nothing is selected: no transition, no event.
	s.HandleTap(5, 5)
	if got := s.Selection(); !got.Empty() {
		t.Fatalf("selection = %v, want empty", got)
	}

	if len(events) != 3 {
		t.Errorf("got %d selection events, want 3", len(events))
	}
}

func TestHandleTapMissClears(t *testing.T) {
	s := stateWithConfig()
	s.selection = diagram.Selection{ID: "amp"}

	s.HandleTap(5, 5)
	if got := s.Selection(); !got.Empty() {
		t.Errorf("selection after miss = %v, want empty", got)
	}
}

func TestHandleTapNoConfig(t *testing.T) {
	s := NewState("testdata")
	s.HandleTap(110, 110)
	if got := s.Selection(); !got.Empty() {
		t.Errorf("selection with no diagram = %v, want empty", got)
	}
}

func TestClearSelection(t *testing.T) {
	s := stateWithConfig()
	s.selection = diagram.Selection{ID: "amp"}

	fired := 0
	s.On(EventSelectionChanged, func(interface{}) { fired++ })

	s.ClearSelection()
	if !s.Selection().Empty() {
		t.Error("selection not cleared")
	}
	s.ClearSelection() // already empty: no event
	if fired != 1 {
		t.Errorf("got %d events, want 1", fired)
	}
}

func TestToggleFullscreen(t *testing.T) {
	s := NewState("testdata")

	var got []bool
	s.On(EventFullscreenToggled, func(data interface{}) {
		got = append(got, data.(bool))
	})

	s.ToggleFullscreen()
	s.ToggleFullscreen()

	if len(got) != 2 || got[0] != true || got[1] != false {
		t.Errorf("events = %v, want [true false]", got)
	}
	if s.Fullscreen() {
		t.Error("fullscreen should be off after two toggles")
	}
}

func TestSetBodyColorWithoutConfig(t *testing.T) {
	s := NewState("testdata")
	// Must be a no-op, not a panic.
	s.SetBodyColor(color.RGBA{255, 0, 0, 255})
	if s.Config() != nil {
		t.Error("config appeared from nowhere")
	}
}

func TestLoadDiagramClearsSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagram.json")
	content := `{"vehicle": "sedan", "components": [
		{"id": "hu", "name": "HEAD UNIT", "x": 40, "y": 40}
	]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewState(t.TempDir()) // no assets: vehicle load degrades quietly
	s.selection = diagram.Selection{ID: "stale"}

	loaded := 0
	s.On(EventDiagramLoaded, func(interface{}) { loaded++ })

	if err := s.LoadDiagram(path); err != nil {
		t.Fatalf("LoadDiagram: %v", err)
	}
	if !s.Selection().Empty() {
		t.Error("stale selection survived a diagram load")
	}
	if loaded != 1 {
		t.Errorf("got %d load events, want 1", loaded)
	}
	if s.Config() == nil || len(s.Config().Components) != 1 {
		t.Error("configuration not installed")
	}
}

func TestLoadDiagramBadFile(t *testing.T) {
	s := NewState("testdata")
	if err := s.LoadDiagram(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error")
	}
	if s.Config() != nil {
		t.Error("failed load must not install a configuration")
	}
}

func TestSelectedDetail(t *testing.T) {
	s := stateWithConfig()

	if _, ok := s.SelectedDetail(); ok {
		t.Error("detail with empty selection")
	}

	s.selection = diagram.Selection{ID: "amp"}
	detail, ok := s.SelectedDetail()
	if !ok || detail.Name != "AMP" {
		t.Errorf("detail = %+v, ok = %v", detail, ok)
	}

	// Works without a catalog: base box fields only.
	s.selection = diagram.Selection{ID: "ghost"}
	if _, ok := s.SelectedDetail(); ok {
		t.Error("detail for unknown component")
	}
}
