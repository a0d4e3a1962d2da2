// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package layout

import (
	"cmp"
	"slices"
	"sync"
)

type Point struct {
	X float64
	Y float64
}

type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// SpatialIndex answers hit tests from the model geometry instead of the
// rendered page. Nested canvases split their pixel width in the same number
// of columns as the root canvas.
type SpatialIndex struct {
	mu sync.RWMutex

	model      *Model
	breakpoint Breakpoint
	columns    int

	canvasWidth  float64
	canvasHeight float64
}

// SetCanvas updates the root canvas size, a zero height leaves the canvas unbounded
func (s *SpatialIndex) SetCanvas(width, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.canvasWidth = width
	s.canvasHeight = height
}

func (s *SpatialIndex) Breakpoint() Breakpoint {
	return s.breakpoint
}

func (s *SpatialIndex) Columns() int {
	return s.columns
}

// GridWidth is the pixel width of one column inside the container, "" is the root canvas
func (s *SpatialIndex) GridWidth(containerID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.gridWidth(containerID, 0)
}

func (s *SpatialIndex) gridWidth(containerID string, depth int) float64 {
	root := s.canvasWidth / float64(s.columns)
	if containerID == "" || depth > len(s.model.IDs()) {
		return root
	}

	g, ok := s.model.GetGeometry(containerID, s.breakpoint)
	if !ok {
		return root
	}

	return float64(g.Width) * s.gridWidth(s.model.Parent(containerID), depth+1) / float64(s.columns)
}

// Height is the pixel height available inside the container, 0 when unbounded
func (s *SpatialIndex) Height(containerID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if containerID == "" {
		return s.canvasHeight
	}

	g, ok := s.model.GetGeometry(containerID, s.breakpoint)
	if !ok {
		return s.canvasHeight
	}
	return float64(g.Height)
}

// Rect returns the absolute pixel box of the widget on the root canvas
func (s *SpatialIndex) Rect(id string) (Rect, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rect(id, 0)
}

func (s *SpatialIndex) rect(id string, depth int) (Rect, bool) {
	g, ok := s.model.GetGeometry(id, s.breakpoint)
	if !ok || depth > len(s.model.IDs()) {
		return Rect{}, false
	}

	parent := s.model.Parent(id)
	origin := Point{}
	if parent != "" {
		p, ok := s.rect(parent, depth+1)
		if !ok {
			return Rect{}, false
		}
		origin = Point{X: p.X, Y: p.Y}
	}

	gw := s.gridWidth(parent, 0)

	return Rect{
		X:      origin.X + float64(g.Left)*gw,
		Y:      origin.Y + float64(g.Top),
		Width:  float64(g.Width) * gw,
		Height: float64(g.Height),
	}, true
}

// Origin is the absolute position of the container canvas, the root canvas sits at 0,0
func (s *SpatialIndex) Origin(containerID string) (Point, bool) {
	if containerID == "" {
		return Point{}, true
	}

	r, ok := s.Rect(containerID)
	return Point{X: r.X, Y: r.Y}, ok
}

// Query lists the widgets under the point, topmost first. Nested widgets sit
// above their containers and later widgets above earlier siblings. The
// excluded widget and its whole subtree are skipped.
func (s *SpatialIndex) Query(p Point, exclude string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type hit struct {
		id    string
		depth int
		order int
	}

	var hits []hit
	for i, id := range s.model.IDs() {
		if exclude != "" && (id == exclude || s.model.IsDescendant(id, exclude)) {
			continue
		}

		r, ok := s.rect(id, 0)
		if !ok || !r.Contains(p) {
			continue
		}

		hits = append(hits, hit{id: id, depth: s.model.Depth(id), order: i})
	}

	slices.SortFunc(hits, func(a, b hit) int {
		if c := cmp.Compare(b.depth, a.depth); c != 0 {
			return c
		}
		return cmp.Compare(b.order, a.order)
	})

	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.id)
	}
	return ids
}

// DropTarget resolves the nearest container under the point accepting drops,
// "" when the point is over the root canvas.
func (s *SpatialIndex) DropTarget(p Point, exclude string) string {
	for _, id := range s.Query(p, exclude) {
		if IsDropTarget(s.model.Type(id)) {
			return id
		}
	}
	return ""
}

func NewSpatialIndex(model *Model, breakpoint Breakpoint, columns int, canvasWidth, canvasHeight float64) *SpatialIndex {
	s := new(SpatialIndex)

	s.model = model
	s.breakpoint = breakpoint
	s.columns = columns
	if s.columns <= 0 {
		s.columns = DefaultGridColumns
	}
	s.canvasWidth = canvasWidth
	s.canvasHeight = canvasHeight

	return s
}
