// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package layout

import (
	"slices"
	"testing"
)

func TestSelection_HighestLevel(t *testing.T) {
	m := NewModel()
	m.AddWidget("a", "Text", "")
	m.AddWidget("b", "Text", "")
	m.AddWidget("box", "Container", "")
	m.AddWidget("c", "Text", "box")
	m.AddWidget("d", "Text", "box")
	m.AddWidget("tabs", "Tabs", "")
	m.AddWidget("e", "Text", "tabs")

	tests := []struct {
		name             string
		selected         []string
		expectedLevel    []string
		expectedSpanning bool
		expectedTargets  []string
	}{
		{
			name:            "Nothing selected",
			selected:        nil,
			expectedLevel:   nil,
			expectedTargets: nil,
		},
		{
			name:            "Single widget",
			selected:        []string{"c"},
			expectedLevel:   []string{"c"},
			expectedTargets: []string{"c"},
		},
		{
			name:            "Root siblings",
			selected:        []string{"b", "a"},
			expectedLevel:   []string{"b", "a"},
			expectedTargets: []string{"b", "a"},
		},
		{
			name:            "Nested siblings",
			selected:        []string{"d", "c"},
			expectedLevel:   []string{"d", "c"},
			expectedTargets: []string{"d", "c"},
		},
		{
			name:            "Root widgets win over nested ones",
			selected:        []string{"c", "a", "d", "b"},
			expectedLevel:   []string{"a", "b"},
			expectedTargets: []string{"a", "b"},
		},
		{
			name:            "Siblings of the first selected",
			selected:        []string{"c", "e", "d"},
			expectedLevel:   []string{"c", "d"},
			expectedTargets: []string{"c", "d"},
		},
		{
			name:             "Spanning selection",
			selected:         []string{"c", "a"},
			expectedLevel:    []string{"a"},
			expectedSpanning: true,
			expectedTargets:  []string{GroupHandle},
		},
		{
			name:             "Different containers",
			selected:         []string{"c", "e"},
			expectedLevel:    []string{"c"},
			expectedSpanning: true,
			expectedTargets:  []string{GroupHandle},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := NewSelection()
			s.Select(test.selected...)

			if got := s.HighestLevel(m); !slices.Equal(got, test.expectedLevel) {
				t.Errorf("expected level %v, got %v", test.expectedLevel, got)
			}

			if got := s.Spanning(m); got != test.expectedSpanning {
				t.Errorf("expected spanning %v, got %v", test.expectedSpanning, got)
			}

			if got := s.Targets(m); !slices.Equal(got, test.expectedTargets) {
				t.Errorf("expected targets %v, got %v", test.expectedTargets, got)
			}
		})
	}
}

func TestSelection_Order(t *testing.T) {
	s := NewSelection()

	s.Select("a", "b", "a")
	s.Add("c", "b")

	if got := s.IDs(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected selection %v", got)
	}

	s.Remove("a")
	if !slices.Equal(s.IDs(), []string{"b", "c"}) || s.Contains("a") {
		t.Errorf("unexpected selection %v", s.IDs())
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("expected empty selection")
	}
}
