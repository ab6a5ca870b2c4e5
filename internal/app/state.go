// Package app provides application state, the event bus, and the glue
// between diagram configuration, vehicle assets, and the UI surfaces.
package app

import (
	"image"
	"image/color"
	"log"
	"sync"

	"audio-diagram/internal/catalog"
	"audio-diagram/internal/diagram"
	"audio-diagram/internal/paint"
	"audio-diagram/internal/vehicle"
)

// EventType identifies different application events.
type EventType int

const (
	EventDiagramLoaded EventType = iota
	EventCatalogLoaded
	EventVehicleReady
	EventSelectionChanged
	EventFullscreenToggled
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the loaded diagram, the selection, and the recolored vehicle
// buffer the surfaces render from. There is exactly one logical diagram
// state, fanned out to up to two physical surfaces.
type State struct {
	mu sync.RWMutex

	assetDir string

	config    *diagram.Configuration
	catalog   *catalog.Catalog
	selection diagram.Selection

	// Decoded silhouettes by archetype; decoding runs once per archetype.
	silhouettes map[vehicle.Archetype]*image.RGBA

	// Recolored buffers by (archetype, color).
	paintCache *paint.Cache

	// Current recolored body, nil when the asset failed to load.
	vehicleBody *image.RGBA

	fullscreen bool

	listeners map[EventType][]EventListener
}

// NewState creates a new application state. assetDir is where the vehicle
// silhouette images live.
func NewState(assetDir string) *State {
	return &State{
		assetDir:    assetDir,
		silhouettes: make(map[vehicle.Archetype]*image.RGBA),
		paintCache:  paint.NewCache(),
		listeners:   make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// LoadDiagram loads a diagram configuration file, clears the selection, and
// starts the vehicle asset load.
func (s *State) LoadDiagram(path string) error {
	cfg, err := diagram.LoadConfiguration(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.config = cfg
	s.selection = diagram.Selection{}
	s.vehicleBody = nil
	s.mu.Unlock()

	log.Printf("Loaded diagram: %s (%d components, %d connections)",
		path, len(cfg.Components), len(cfg.Connections))

	s.Emit(EventDiagramLoaded, path)
	s.LoadVehicleAsync()
	return nil
}

// LoadCatalog loads the extended component data file.
func (s *State) LoadCatalog(path string) error {
	c, err := catalog.Load(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.catalog = c
	s.mu.Unlock()

	log.Printf("Loaded catalog: %s (%d records)", path, len(c.Records))
	s.Emit(EventCatalogLoaded, path)
	return nil
}

// LoadVehicleAsync decodes and recolors the configured vehicle silhouette
// off the UI thread, then emits EventVehicleReady. Asset decode is the one
// asynchronous boundary in the renderer; a decode failure degrades to a
// vehicle-less render and is never fatal.
func (s *State) LoadVehicleAsync() {
	s.mu.RLock()
	cfg := s.config
	s.mu.RUnlock()
	if cfg == nil {
		return
	}

	go func() {
		body := s.recoloredBody(cfg.Archetype, cfg.BodyColor)

		s.mu.Lock()
		s.vehicleBody = body
		s.mu.Unlock()

		s.Emit(EventVehicleReady, cfg.Archetype)
	}()
}

// recoloredBody returns the recolored silhouette for the pair, reusing the
// decoded asset and the recolor cache. Returns nil on decode failure.
func (s *State) recoloredBody(archetype vehicle.Archetype, body color.RGBA) *image.RGBA {
	s.mu.RLock()
	src, ok := s.silhouettes[archetype]
	s.mu.RUnlock()

	if !ok {
		loaded, err := vehicle.LoadSilhouette(s.assetDir, archetype)
		if err != nil {
			log.Printf("Vehicle silhouette unavailable, rendering without body: %v", err)
			return nil
		}
		src = loaded

		log.Printf("Silhouette %s: %s", archetype, paint.FormatClassStats(paint.ClassStats(src)))

		s.mu.Lock()
		s.silhouettes[archetype] = src
		s.mu.Unlock()
	}

	return s.paintCache.Recolored(paint.Key{Archetype: archetype, Color: body}, src)
}

// SetBodyColor changes the target body color and re-invokes the recolor
// engine (cached per archetype/color pair).
func (s *State) SetBodyColor(c color.RGBA) {
	s.mu.Lock()
	if s.config == nil {
		s.mu.Unlock()
		return
	}
	s.config.BodyColor = c
	s.mu.Unlock()

	s.LoadVehicleAsync()
}

// SetArchetype changes the vehicle archetype and reloads the silhouette.
func (s *State) SetArchetype(a vehicle.Archetype) {
	s.mu.Lock()
	if s.config == nil {
		s.mu.Unlock()
		return
	}
	s.config.Archetype = a
	s.mu.Unlock()

	s.LoadVehicleAsync()
}

// HandleTap applies one pointer interaction in surface coordinates:
// hit-tests the configuration, steps the selection state machine, and emits
// EventSelectionChanged on every transition. An out-of-range or empty-space
// point is a miss and clears the selection.
func (s *State) HandleTap(x, y float64) {
	s.mu.Lock()
	hit, _ := diagram.HitTest(s.config, x, y)
	next := diagram.Toggle(s.selection, hit)
	changed := next != s.selection
	s.selection = next
	s.mu.Unlock()

	if changed {
		s.Emit(EventSelectionChanged, next)
	}
}

// ClearSelection resets the selection, emitting if it was non-empty.
func (s *State) ClearSelection() {
	s.mu.Lock()
	changed := !s.selection.Empty()
	s.selection = diagram.Selection{}
	s.mu.Unlock()

	if changed {
		s.Emit(EventSelectionChanged, diagram.Selection{})
	}
}

// ToggleFullscreen flips which surface is active and notifies the presenter.
func (s *State) ToggleFullscreen() {
	s.mu.Lock()
	s.fullscreen = !s.fullscreen
	active := s.fullscreen
	s.mu.Unlock()

	s.Emit(EventFullscreenToggled, active)
}

// Fullscreen reports whether the fullscreen surface is active.
func (s *State) Fullscreen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fullscreen
}

// Snapshot returns the render inputs for one composer pass.
func (s *State) Snapshot() (*diagram.Configuration, *image.RGBA, diagram.Selection) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config, s.vehicleBody, s.selection
}

// Config returns the current configuration (nil when none is loaded).
func (s *State) Config() *diagram.Configuration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// Selection returns the current selection state.
func (s *State) Selection() diagram.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}

// SelectedDetail returns the merged detail view for the selected component.
func (s *State) SelectedDetail() (catalog.Detail, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.config == nil || s.selection.Empty() {
		return catalog.Detail{}, false
	}
	box, ok := s.config.ComponentByID(s.selection.ID)
	if !ok {
		return catalog.Detail{}, false
	}
	return catalog.Merge(box, s.catalog.Lookup(box)), true
}
