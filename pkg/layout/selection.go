// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package layout

import (
	"slices"
	"sync"
)

// Selection is the ordered set of selected widgets, the first one leads group gestures
type Selection struct {
	mu  sync.RWMutex
	ids []string
}

// Select replaces the selection
func (s *Selection) Select(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = s.ids[:0]
	for _, id := range ids {
		if !slices.Contains(s.ids, id) {
			s.ids = append(s.ids, id)
		}
	}
}

// Add appends to the selection, ids already selected keep their position
func (s *Selection) Add(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if !slices.Contains(s.ids, id) {
			s.ids = append(s.ids, id)
		}
	}
}

func (s *Selection) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = slices.DeleteFunc(s.ids, func(v string) bool { return v == id })
}

func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = nil
}

func (s *Selection) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.ids)
}

func (s *Selection) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Contains(s.ids, id)
}

func (s *Selection) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.ids)
}

// HighestLevel restricts the selection to the widgets a gesture can move
// together. When any selected widget sits on the root canvas only root
// widgets are kept, otherwise only the siblings of the first selected widget.
func (s *Selection) HighestLevel(model *Model) []string {
	ids := s.IDs()
	if len(ids) == 0 {
		return nil
	}

	parent := model.Parent(ids[0])
	if slices.ContainsFunc(ids, func(id string) bool { return model.Parent(id) == "" }) {
		parent = ""
	}

	return slices.DeleteFunc(ids, func(id string) bool { return model.Parent(id) != parent })
}

// Spanning reports a multi selection with less than two movable widgets,
// in that case dragging is disabled and a group handle is shown instead.
func (s *Selection) Spanning(model *Model) bool {
	return s.Len() > 1 && len(s.HighestLevel(model)) < 2
}

// GroupHandle is the synthetic handle id replacing widgets of a spanning selection
const GroupHandle = "empty-widget"

// Targets lists what the interaction layer binds gestures to: the group
// handle for spanning selections, the highest level widgets otherwise.
func (s *Selection) Targets(model *Model) []string {
	if s.Spanning(model) {
		return []string{GroupHandle}
	}
	return s.HighestLevel(model)
}

func NewSelection() *Selection {
	return new(Selection)
}
