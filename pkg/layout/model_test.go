// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package layout

import (
	"errors"
	"testing"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()

	m := NewModel()
	m.AddWidget("form", "Form", "")
	m.AddWidget("box", "Container", "")
	m.AddWidget("inner", "Container", "box")
	m.AddWidget("text", "Text", "inner")
	m.AddWidget("button", "Button", "")
	m.AddWidget("calendar", "Calendar", "")

	return m
}

func TestModel_Geometry(t *testing.T) {
	m := newTestModel(t)

	if _, ok := m.GetGeometry("text", Desktop); ok {
		t.Fatalf("expected no layout before SetGeometry")
	}

	g := Geometry{Left: 1, Top: 20, Width: 4, Height: 40}
	if err := m.SetGeometry("text", Desktop, g); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, ok := m.GetGeometry("text", Desktop); !ok || got != g {
		t.Errorf("expected %+v, got %+v", g, got)
	}

	if _, ok := m.GetGeometry("text", Mobile); ok {
		t.Errorf("expected breakpoints to be independent")
	}

	// the store does not validate
	if err := m.SetGeometry("text", Mobile, Geometry{Left: -3, Width: 100}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := m.SetGeometry("missing", Desktop, g); !errors.Is(err, ErrUnknownWidget) {
		t.Errorf("expected ErrUnknownWidget, got %v", err)
	}
}

func TestModel_Reparent(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		parent         string
		expectedErr    error
		expectedParent string
	}{
		{name: "Move to root", id: "text", parent: "", expectedParent: ""},
		{name: "Move into container", id: "button", parent: "box", expectedParent: "box"},
		{name: "Move into form", id: "button", parent: "form", expectedParent: "form"},
		{name: "Unknown widget", id: "missing", parent: "box", expectedErr: ErrUnknownWidget},
		{name: "Unknown parent", id: "button", parent: "missing", expectedErr: ErrUnknownWidget, expectedParent: ""},
		{name: "Parent is not a container", id: "text", parent: "button", expectedErr: ErrNotContainer, expectedParent: "inner"},
		{name: "Into itself", id: "box", parent: "box", expectedErr: ErrCycle, expectedParent: ""},
		{name: "Into own descendant", id: "box", parent: "inner", expectedErr: ErrCycle, expectedParent: ""},
		{name: "Restricted child", id: "calendar", parent: "box", expectedErr: ErrRestrictedChild, expectedParent: ""},
		{name: "Form inside form", id: "form", parent: "form", expectedErr: ErrCycle, expectedParent: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := newTestModel(t)

			err := m.Reparent(test.id, test.parent)
			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected error %v, got %v", test.expectedErr, err)
			}

			if test.expectedErr == ErrUnknownWidget && test.id == "missing" {
				return
			}

			if p := m.Parent(test.id); p != test.expectedParent {
				t.Errorf("expected parent %q, got %q", test.expectedParent, p)
			}
		})
	}
}

func TestModel_Hierarchy(t *testing.T) {
	m := newTestModel(t)

	if d := m.Depth("text"); d != 2 {
		t.Errorf("expected depth 2, got %d", d)
	}

	if !m.IsDescendant("text", "box") {
		t.Errorf("expected text below box")
	}

	if m.IsDescendant("box", "text") {
		t.Errorf("expected box not below text")
	}

	// corrupted rows loaded from storage must not hang the walk
	m.AddWidget("a", "Container", "b")
	m.AddWidget("b", "Container", "a")
	if m.IsDescendant("a", "missing") {
		t.Errorf("expected no ancestor")
	}
}

func TestGeometry_Valid(t *testing.T) {
	tests := []struct {
		name     string
		geometry Geometry
		expected bool
	}{
		{name: "Inside the grid", geometry: Geometry{Left: 0, Top: 0, Width: 44, Height: 10}, expected: true},
		{name: "Negative left", geometry: Geometry{Left: -1, Width: 4, Height: 10}},
		{name: "Past the last column", geometry: Geometry{Left: 41, Width: 4, Height: 10}},
		{name: "Zero width", geometry: Geometry{Left: 0, Width: 0, Height: 10}},
		{name: "Shorter than a row", geometry: Geometry{Left: 0, Width: 4, Height: 9}},
		{name: "Negative top", geometry: Geometry{Top: -10, Width: 4, Height: 10}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.geometry.Valid(DefaultGridColumns); got != test.expected {
				t.Errorf("expected %v, got %v", test.expected, got)
			}
		})
	}
}

func TestRules(t *testing.T) {
	for _, c := range []string{"Calendar", "Kanban", "Form", "Tabs", "Modal", "Listview", "Container", "Table"} {
		if !IsDropTarget(c) {
			t.Errorf("expected %s to accept drops", c)
		}
	}

	for _, c := range []string{"Button", "Text", "RangeSlider", ""} {
		if IsDropTarget(c) {
			t.Errorf("expected %q not to accept drops", c)
		}
	}

	for _, c := range []string{"RangeSlider", "Container", "BoundedBox"} {
		if !RequiresHandle(c) {
			t.Errorf("expected %s to require its handle", c)
		}
	}

	tests := []struct {
		parent   string
		child    string
		expected bool
	}{
		{parent: "Form", child: "Form", expected: false},
		{parent: "Listview", child: "Tabs", expected: false},
		{parent: "Kanban", child: "Modal", expected: false},
		{parent: "Container", child: "Form", expected: true},
		{parent: "Tabs", child: "Kanban", expected: false},
		{parent: "", child: "Calendar", expected: true},
	}

	for _, test := range tests {
		if got := ChildAllowed(test.parent, test.child); got != test.expected {
			t.Errorf("ChildAllowed(%q, %q): expected %v, got %v", test.parent, test.child, test.expected, got)
		}
	}
}
