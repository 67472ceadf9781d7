package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/piwi3910/cabinetry/internal/model"
)

func TestExportLabels_CreatesFile(t *testing.T) {
	for _, paper := range []string{model.PaperLetter, model.PaperA4, ""} {
		t.Run("paper="+paper, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "labels.pdf")
			if err := ExportLabels(path, testScene(), paper); err != nil {
				t.Fatalf("ExportLabels returned error: %v", err)
			}
			assertPDFWritten(t, path)
		})
	}
}

func TestExportLabels_EmptyScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")

	err := ExportLabels(path, nil, model.PaperLetter)
	if !errors.Is(err, ErrEmptyScene) {
		t.Fatalf("expected ErrEmptyScene, got %v", err)
	}
}

func TestExportLabels_UnknownPaper(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legal.pdf")

	if err := ExportLabels(path, testScene(), "Legal"); err == nil {
		t.Fatal("expected error for unknown paper, got nil")
	}
}

func TestExportLabels_ManyComponents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "many_labels.pdf")

	// 35 labels spill onto a second Letter page (30 per page).
	components := make([]model.Component, 35)
	for i := range components {
		components[i] = model.NewComponentWithID(fmt.Sprintf("h%d", i), model.TypeHandle,
			model.Position{X: float64(i * 160)}, model.LightPalette)
	}

	if err := ExportLabels(path, components, model.PaperLetter); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	assertPDFWritten(t, path)
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(testScene())

	if len(labels) != 6 {
		t.Fatalf("expected 6 labels, got %d", len(labels))
	}

	shelf := labels[1]
	if shelf.ID != "shelf1" || shelf.Name != "Shelf 1" {
		t.Errorf("second label = %q (%s), want Shelf 1 (shelf1)", shelf.Name, shelf.ID)
	}
	if shelf.Cabinet != "Cabinet 1" {
		t.Errorf("expected cabinet 'Cabinet 1', got %q", shelf.Cabinet)
	}
	if shelf.Width != 564 || shelf.Height != 18 || shelf.Depth != 580 {
		t.Errorf("wrong dimensions: got %vx%vx%v", shelf.Width, shelf.Height, shelf.Depth)
	}
	if labels[0].Cabinet != "" {
		t.Errorf("a cabinet label should not name a cabinet, got %q", labels[0].Cabinet)
	}
	if labels[4].Type != "Handle" || labels[4].Cabinet != "" {
		t.Errorf("loose handle label = %+v", labels[4])
	}
}

func TestLabelInfo_JSONFields(t *testing.T) {
	data, err := json.Marshal(LabelInfo{ID: "s1", Name: "Shelf 1", Type: "Shelf", Width: 564})
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if fields["width_mm"] != 564.0 {
		t.Errorf("width_mm = %v, want 564", fields["width_mm"])
	}
	if _, ok := fields["cabinet"]; ok {
		t.Error("empty cabinet should be omitted")
	}
}

func TestSheetFor(t *testing.T) {
	s, err := sheetFor(model.PaperA4)
	if err != nil {
		t.Fatalf("sheetFor(A4) returned error: %v", err)
	}
	if s.perPage() != 24 {
		t.Errorf("A4 sheet holds %d labels, want 24", s.perPage())
	}
	s, err = sheetFor("")
	if err != nil || s.perPage() != 30 {
		t.Errorf("default sheet = %d labels (err %v), want 30", s.perPage(), err)
	}
}
