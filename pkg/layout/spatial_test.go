// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package layout

import (
	"slices"
	"testing"
)

// newTestCanvas lays out a 440px wide canvas, one root column is 10px and
// one column of the box is 5px.
func newTestCanvas(t *testing.T) (*Model, *SpatialIndex) {
	t.Helper()

	m := NewModel()
	add := func(id, componentType, parent string, g Geometry) {
		m.AddWidget(id, componentType, parent)
		if err := m.SetGeometry(id, Desktop, g); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	add("text1", "Text", "", Geometry{Left: 2, Top: 20, Width: 4, Height: 40})
	add("text2", "Text", "", Geometry{Left: 10, Top: 20, Width: 4, Height: 40})
	add("box", "Container", "", Geometry{Left: 20, Top: 100, Width: 22, Height: 200})
	add("child", "Text", "box", Geometry{Left: 2, Top: 10, Width: 4, Height: 20})
	add("calendar", "Calendar", "", Geometry{Left: 0, Top: 400, Width: 10, Height: 100})
	add("button", "Button", "", Geometry{Left: 30, Top: 400, Width: 10, Height: 50})
	add("slider", "RangeSlider", "", Geometry{Left: 0, Top: 600, Width: 4, Height: 20})
	add("modal", "Modal", "", Geometry{Left: 0, Top: 700, Width: 44, Height: 300})
	add("dialog", "Text", "modal", Geometry{Left: 0, Top: 0, Width: 4, Height: 20})

	return m, NewSpatialIndex(m, Desktop, DefaultGridColumns, 440, 0)
}

func TestSpatialIndex_GridWidth(t *testing.T) {
	_, index := newTestCanvas(t)

	if gw := index.GridWidth(""); gw != 10 {
		t.Errorf("expected root grid width 10, got %v", gw)
	}

	if gw := index.GridWidth("box"); gw != 5 {
		t.Errorf("expected box grid width 5, got %v", gw)
	}

	index.SetCanvas(880, 0)
	if gw := index.GridWidth("box"); gw != 10 {
		t.Errorf("expected box grid width to follow the canvas, got %v", gw)
	}
}

func TestSpatialIndex_Rect(t *testing.T) {
	_, index := newTestCanvas(t)

	r, ok := index.Rect("child")
	if !ok {
		t.Fatalf("expected child rect")
	}

	expected := Rect{X: 210, Y: 110, Width: 20, Height: 20}
	if r != expected {
		t.Errorf("expected %+v, got %+v", expected, r)
	}

	if _, ok := index.Rect("missing"); ok {
		t.Errorf("expected no rect for unknown widget")
	}
}

func TestSpatialIndex_Query(t *testing.T) {
	tests := []struct {
		name     string
		point    Point
		exclude  string
		expected []string
	}{
		{name: "Nested widget above its container", point: Point{X: 215, Y: 115}, expected: []string{"child", "box"}},
		{name: "Container only", point: Point{X: 300, Y: 250}, expected: []string{"box"}},
		{name: "Empty canvas", point: Point{X: 5, Y: 5}, expected: []string{}},
		{name: "Dragged subtree is skipped", point: Point{X: 215, Y: 115}, exclude: "box", expected: []string{}},
		{name: "Dragged widget is skipped", point: Point{X: 215, Y: 115}, exclude: "child", expected: []string{"box"}},
		{name: "Right edge is exclusive", point: Point{X: 60, Y: 30}, expected: []string{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, index := newTestCanvas(t)

			if got := index.Query(test.point, test.exclude); !slices.Equal(got, test.expected) {
				t.Errorf("expected %v, got %v", test.expected, got)
			}
		})
	}
}

func TestSpatialIndex_QueryZOrder(t *testing.T) {
	m, index := newTestCanvas(t)

	// later siblings render on top
	m.AddWidget("overlay", "Text", "")
	if err := m.SetGeometry("overlay", Desktop, Geometry{Left: 0, Top: 0, Width: 44, Height: 100}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := index.Query(Point{X: 25, Y: 25}, "")
	if !slices.Equal(got, []string{"overlay", "text1"}) {
		t.Errorf("expected overlay above text1, got %v", got)
	}
}

func TestSpatialIndex_DropTarget(t *testing.T) {
	_, index := newTestCanvas(t)

	if target := index.DropTarget(Point{X: 215, Y: 115}, "text1"); target != "box" {
		t.Errorf("expected box, got %q", target)
	}

	if target := index.DropTarget(Point{X: 350, Y: 420}, "text1"); target != "" {
		t.Errorf("expected root canvas over a button, got %q", target)
	}
}
