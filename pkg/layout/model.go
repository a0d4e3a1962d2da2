// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package layout

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Geometry is expressed in grid columns horizontally and pixels vertically
type Geometry struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Right is the column right after the widget
func (g Geometry) Right() int {
	return g.Left + g.Width
}

// Valid checks the grid invariants of committed geometry
func (g Geometry) Valid(columns int) bool {
	return g.Left >= 0 && g.Top >= 0 && g.Width >= 1 && g.Right() <= columns && g.Height >= RowHeight
}

type Widget struct {
	ID     string
	Type   string
	Parent string

	layouts map[Breakpoint]Geometry
}

// Model is the in memory store of widget geometry and containment. It does
// not validate geometry, callers check bounds before SetGeometry.
type Model struct {
	mu sync.RWMutex

	widgets map[string]*Widget
	// insertion order, later widgets render on top
	order []string
}

// AddWidget registers a widget, re-adding an existing id replaces its type and parent
func (m *Model) AddWidget(id, componentType, parent string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w, ok := m.widgets[id]; ok {
		w.Type = componentType
		w.Parent = parent
		return
	}

	m.widgets[id] = &Widget{ID: id, Type: componentType, Parent: parent, layouts: make(map[Breakpoint]Geometry)}
	m.order = append(m.order, id)
}

// Widget returns a copy of the widget without its layouts
func (m *Model) Widget(id string) (Widget, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	w, ok := m.widgets[id]
	if !ok {
		return Widget{}, false
	}
	return Widget{ID: w.ID, Type: w.Type, Parent: w.Parent}, true
}

func (m *Model) Type(id string) string {
	w, _ := m.Widget(id)
	return w.Type
}

func (m *Model) Parent(id string) string {
	w, _ := m.Widget(id)
	return w.Parent
}

// IDs lists the widgets in z-order, bottom first
func (m *Model) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]string(nil), m.order...)
}

// GetGeometry returns false when the widget has no layout for the breakpoint
func (m *Model) GetGeometry(id string, breakpoint Breakpoint) (Geometry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	w, ok := m.widgets[id]
	if !ok {
		return Geometry{}, false
	}

	g, ok := w.layouts[breakpoint]
	return g, ok
}

func (m *Model) SetGeometry(id string, breakpoint Breakpoint, g Geometry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.widgets[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownWidget, id)
	}

	w.layouts[breakpoint] = g
	return nil
}

// Reparent moves the widget under parent, an empty parent is the root canvas
func (m *Model) Reparent(id, parent string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkParent(id, parent); err != nil {
		return err
	}

	m.widgets[id].Parent = parent
	return nil
}

// CanReparent runs the Reparent checks without moving the widget
func (m *Model) CanReparent(id, parent string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.checkParent(id, parent)
}

func (m *Model) checkParent(id, parent string) error {
	w, ok := m.widgets[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownWidget, id)
	}

	if parent == "" {
		return nil
	}

	p, ok := m.widgets[parent]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownWidget, parent)
	}

	if !IsDropTarget(p.Type) {
		return fmt.Errorf("%w: %s", ErrNotContainer, p.Type)
	}

	if parent == id || m.isDescendant(parent, id) {
		return ErrCycle
	}

	if !ChildAllowed(p.Type, w.Type) {
		return fmt.Errorf("%w: %s in %s", ErrRestrictedChild, w.Type, p.Type)
	}

	return nil
}

// IsDescendant reports if id sits anywhere below ancestor
func (m *Model) IsDescendant(id, ancestor string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.isDescendant(id, ancestor)
}

func (m *Model) isDescendant(id, ancestor string) bool {
	return slices.Contains(m.ancestors(id), ancestor)
}

// Depth is 0 for widgets on the root canvas
func (m *Model) Depth(id string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.ancestors(id))
}

// ancestors walks up the parent chain, stopping on unknown parents or
// corrupted chains looping back on themselves.
func (m *Model) ancestors(id string) []string {
	var ret []string

	w, ok := m.widgets[id]
	for ok && w.Parent != "" && len(ret) < len(m.widgets) {
		ret = append(ret, w.Parent)
		w, ok = m.widgets[w.Parent]
	}
	return ret
}

// Clone deep copies widgets and layouts, the copy shares no state with m
func (m *Model) Clone() *Model {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c := NewModel()
	c.order = slices.Clone(m.order)
	for id, w := range m.widgets {
		c.widgets[id] = &Widget{ID: w.ID, Type: w.Type, Parent: w.Parent, layouts: maps.Clone(w.layouts)}
	}

	return c
}

func NewModel() *Model {
	m := new(Model)
	m.widgets = make(map[string]*Widget)

	return m
}
