package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"audio-diagram/internal/diagram"
)

func testCatalog() *Catalog {
	return &Catalog{
		Records: []Record{
			{ComponentID: "amp-1", Brand: "JL Audio", Model: "XD600/1", PowerWatts: 600},
			{Category: "subwoofer", Brand: "Rockford", Model: "P3D4-12",
				PowerWatts: 600, OhmLoad: 2, Quantity: 2, CostDollars: 219.99},
			{Category: "speaker", Brand: "Focal", FrequencyResponse: "60 Hz - 21 kHz"},
		},
	}
}

func TestLookup(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		name      string
		box       diagram.ComponentBox
		wantModel string
		wantNil   bool
	}{
		{
			name:      "by component ID",
			box:       diagram.ComponentBox{ID: "amp-1", Category: diagram.CategoryAmplifier},
			wantModel: "XD600/1",
		},
		{
			name: "ID match wins over category match",
			box: diagram.ComponentBox{ID: "amp-1",
				Category: diagram.CategorySubwoofer, Brand: "Rockford"},
			wantModel: "XD600/1",
		},
		{
			name: "by category and brand",
			box: diagram.ComponentBox{ID: "sub-9",
				Category: diagram.CategorySubwoofer, Brand: "rockford"},
			wantModel: "P3D4-12",
		},
		{
			name: "brand mismatch",
			box: diagram.ComponentBox{ID: "sub-9",
				Category: diagram.CategorySubwoofer, Brand: "Kicker"},
			wantNil: true,
		},
		{
			name:    "empty brand never matches by category",
			box:     diagram.ComponentBox{ID: "sub-9", Category: diagram.CategorySubwoofer},
			wantNil: true,
		},
		{
			name:    "no record at all",
			box:     diagram.ComponentBox{ID: "mystery", Category: diagram.CategoryOther},
			wantNil: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := c.Lookup(tt.box)
			if tt.wantNil {
				if rec != nil {
					t.Errorf("Lookup() = %+v, want nil", rec)
				}
				return
			}
			if rec == nil {
				t.Fatal("Lookup() = nil")
			}
			if rec.Model != tt.wantModel {
				t.Errorf("model = %q, want %q", rec.Model, tt.wantModel)
			}
		})
	}
}

func TestLookupNilCatalog(t *testing.T) {
	var c *Catalog
	if got := c.Lookup(diagram.ComponentBox{ID: "amp-1"}); got != nil {
		t.Errorf("nil catalog Lookup = %+v, want nil", got)
	}
}

func TestMerge(t *testing.T) {
	box := diagram.ComponentBox{
		ID:       "sub-9",
		Name:     "SUBWOOFER",
		Brand:    "Generic",
		Model:    "Unknown",
		Category: diagram.CategorySubwoofer,
	}
	rec := &Record{
		Brand: "Rockford", Model: "P3D4-12",
		PowerWatts: 600, OhmLoad: 2, Quantity: 2, CostDollars: 219.99,
		Notes: "Sealed enclosure",
	}

	d := Merge(box, rec)
	if d.Name != "SUBWOOFER" || d.Category != diagram.CategorySubwoofer {
		t.Errorf("identity fields = %q/%v", d.Name, d.Category)
	}

	fields := make(map[string]string, len(d.Fields))
	for _, f := range d.Fields {
		fields[f.Label] = f.Value
	}

	want := map[string]string{
		"Category": "Subwoofer",
		"Brand":    "Rockford", // record overlays the box brand
		"Model":    "P3D4-12",
		"Power":    "600 W",
		"Quantity": "2",
		"Cost":     "$219.99",
		"Ohm Load": "2 Ω",
		"Notes":    "Sealed enclosure",
	}
	for label, value := range want {
		if fields[label] != value {
			t.Errorf("field %q = %q, want %q", label, fields[label], value)
		}
	}
	if _, ok := fields["Frequency Response"]; ok {
		t.Error("unpopulated field appeared in the detail")
	}
}

func TestMergeNoRecord(t *testing.T) {
	box := diagram.ComponentBox{
		Name: "TWEETER", Brand: "Focal", Category: diagram.CategorySpeaker,
	}

	d := Merge(box, nil)
	if d.Name != "TWEETER" {
		t.Errorf("name = %q", d.Name)
	}
	if len(d.Fields) != 2 { // category and brand; no model
		t.Errorf("fields = %+v, want category and brand only", d.Fields)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `{"records": [
		{"component_id": "amp-1", "brand": "JL Audio", "power_watts": 600}
	]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Records) != 1 || c.Records[0].PowerWatts != 600 {
		t.Errorf("records = %+v", c.Records)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
