// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package layout

import (
	"errors"
	"testing"
)

func newContainersModel(t *testing.T) *Model {
	t.Helper()

	m := NewModel()
	for id, g := range map[string]Geometry{
		"left":  {Left: 0, Top: 0, Width: 10, Height: 200},
		"right": {Left: 20, Top: 0, Width: 10, Height: 200},
	} {
		m.AddWidget(id, "Container", "")
		if err := m.SetGeometry(id, Desktop, g); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	return m
}

func TestApplyDrag_BatchConflicts(t *testing.T) {
	tests := []struct {
		name        string
		records     []DragRecord
		expectedErr error
	}{
		{
			name: "Containers swapped into each other",
			records: []DragRecord{
				{ID: "left", X: 0, Y: 0, Parent: ptr("right"), GW: 10},
				{ID: "right", X: 0, Y: 0, Parent: ptr("left"), GW: 10},
			},
			expectedErr: ErrCycle,
		},
		{
			name: "Later record out of bounds",
			records: []DragRecord{
				{ID: "left", X: 0, Y: 0, Parent: ptr("right"), GW: 10},
				{ID: "right", X: 1000, Y: 0, GW: 10},
			},
			expectedErr: ErrOutOfBounds,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := newContainersModel(t)

			changed, err := ApplyDrag(m, Desktop, DefaultGridColumns, test.records)

			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected error %v, got %v", test.expectedErr, err)
			}

			if len(changed) != 0 {
				t.Errorf("expected nothing changed, got %v", changed)
			}

			for _, id := range []string{"left", "right"} {
				if p := m.Parent(id); p != "" {
					t.Errorf("expected %s to stay on the root canvas, got parent %q", id, p)
				}
			}

			if g, _ := m.GetGeometry("right", Desktop); g.Left != 20 {
				t.Errorf("expected right to keep its geometry, got %+v", g)
			}
		})
	}
}

func TestApplyDrag_OrderedReparents(t *testing.T) {
	m := newContainersModel(t)
	m.AddWidget("text", "Text", "left")
	if err := m.SetGeometry("text", Desktop, Geometry{Left: 0, Top: 0, Width: 4, Height: 20}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// text leaves left before left moves under right
	changed, err := ApplyDrag(m, Desktop, DefaultGridColumns, []DragRecord{
		{ID: "text", X: 0, Y: 300, Parent: ptr(""), GW: 10},
		{ID: "left", X: 0, Y: 0, Parent: ptr("right"), GW: 10},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(changed) != 2 || m.Parent("left") != "right" || m.Parent("text") != "" {
		t.Errorf("unexpected result %v, left parent %q, text parent %q", changed, m.Parent("left"), m.Parent("text"))
	}
}

func TestModel_Clone(t *testing.T) {
	m := newContainersModel(t)
	c := m.Clone()

	if err := c.Reparent("left", "right"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.SetGeometry("right", Desktop, Geometry{Left: 1, Top: 1, Width: 1, Height: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Parent("left") != "" {
		t.Errorf("expected the original parent untouched")
	}
	if g, _ := m.GetGeometry("right", Desktop); g.Left != 20 {
		t.Errorf("expected the original geometry untouched, got %+v", g)
	}
}
