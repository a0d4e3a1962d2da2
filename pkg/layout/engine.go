// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package layout

import (
	"context"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/canonical/app-builder/internal/logging"
	"github.com/canonical/app-builder/internal/tracing"
)

type GestureState int

const (
	Idle GestureState = iota
	DragStarting
	Dragging
	ResizeStarting
	Resizing
	Committed
)

func (s GestureState) String() string {
	switch s {
	case Idle:
		return "idle"
	case DragStarting:
		return "drag-starting"
	case Dragging:
		return "dragging"
	case ResizeStarting:
		return "resize-starting"
	case Resizing:
		return "resizing"
	case Committed:
		return "committed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// DragThreshold is the pointer travel in pixels before a drag actually starts
const DragThreshold = 3.0

// Direction of a resize handle, -1 for the left or top edge, 1 for the
// right or bottom edge, 0 when the axis is not resized.
type Direction struct {
	X int
	Y int
}

var (
	Left        = Direction{X: -1}
	Right       = Direction{X: 1}
	Top         = Direction{Y: -1}
	Bottom      = Direction{Y: 1}
	TopLeft     = Direction{X: -1, Y: -1}
	BottomRight = Direction{X: 1, Y: 1}
)

func (d Direction) Valid() bool {
	in := func(v int) bool { return v >= -1 && v <= 1 }
	return in(d.X) && in(d.Y) && (d.X != 0 || d.Y != 0)
}

// gesture is the state of the single active pointer gesture
type gesture struct {
	lead    string
	targets []string
	start   map[string]Geometry
	// parent of the lead, shared by the whole group
	parent string
	gw     float64

	dx         float64
	dy         float64
	pointer    Point
	dropTarget string

	direction Direction
	width     float64
	height    float64
}

// Engine turns pointer gestures into committed geometry. Only one gesture
// runs at a time, group gestures are committed through a debounced batch.
type Engine struct {
	mu sync.Mutex

	state   GestureState
	gesture *gesture

	model     *Model
	index     *SpatialIndex
	selection *Selection
	committer CommitterInterface
	refresher RefresherInterface

	drags   *Batcher[DragRecord]
	resizes *Batcher[ResizeRecord]

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (e *Engine) State() GestureState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// DropTarget is the container highlighted by the current drag, "" for the root canvas
func (e *Engine) DropTarget() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.gesture == nil {
		return ""
	}
	return e.gesture.dropTarget
}

// BeginDrag starts a drag on the widget, onHandle tells if the pointer went
// down on the widget drag handle.
func (e *Engine) BeginDrag(id string, onHandle bool) error {
	// pending group records must land in the model before start geometry is read
	e.Flush()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Idle {
		return ErrGestureActive
	}

	w, ok := e.model.Widget(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownWidget, id)
	}

	if RequiresHandle(w.Type) && !onHandle {
		return ErrHandleRequired
	}

	g, err := e.newGesture(id)
	if err != nil {
		return err
	}

	e.gesture = g
	e.state = DragStarting
	return nil
}

// Move updates the drag with the translation since the gesture started and
// the pointer position on the root canvas.
func (e *Engine) Move(dx, dy float64, pointer Point) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	g := e.gesture
	switch e.state {
	case DragStarting:
		if math.Hypot(dx, dy) < DragThreshold {
			g.pointer = pointer
			return nil
		}
		e.state = Dragging
	case Dragging:
	default:
		return ErrNoGesture
	}

	g.dx, g.dy, g.pointer = dx, dy, pointer
	g.dropTarget = e.resolveDropTarget(g, pointer)

	return nil
}

// EndDrag drops the dragged widgets. A drag that never passed the start
// threshold ends without committing anything.
func (e *Engine) EndDrag(ctx context.Context, pointer Point) error {
	e.mu.Lock()
	switch e.state {
	case DragStarting:
		e.reset()
		e.mu.Unlock()
		return nil
	case Dragging:
	default:
		e.mu.Unlock()
		return ErrNoGesture
	}

	g := e.gesture
	e.state = Committed
	e.mu.Unlock()

	defer e.finish()

	var records []DragRecord
	if len(g.targets) > 1 {
		records = e.groupDragRecords(g)
		e.drags.Submit(ctx, records...)
	} else {
		record, err := e.dropRecord(g, pointer)
		if err != nil {
			return e.abort("drag", err)
		}

		records = []DragRecord{record}
		if err := e.commitDrag(ctx, records); err != nil {
			return err
		}
	}

	e.selection.Select(g.targets...)
	return nil
}

// BeginResize starts a resize from the handle in the given direction
func (e *Engine) BeginResize(id string, direction Direction) error {
	e.Flush()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Idle {
		return ErrGestureActive
	}

	if !direction.Valid() {
		return fmt.Errorf("invalid resize direction %+v", direction)
	}

	if _, ok := e.model.Widget(id); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownWidget, id)
	}

	g, err := e.newGesture(id)
	if err != nil {
		return err
	}

	start := g.start[id]
	g.direction = direction
	g.width = float64(start.Width) * g.gw
	g.height = float64(start.Height)

	e.gesture = g
	e.state = ResizeStarting
	return nil
}

// Resize sets the requested pixel size of the lead widget. The returned box
// is clamped to the resize limits, its position compensates left and top
// resizes so the opposite edge stays in place.
func (e *Engine) Resize(width, height float64) (Rect, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != ResizeStarting && e.state != Resizing {
		return Rect{}, ErrNoGesture
	}
	e.state = Resizing

	g := e.gesture
	start := g.start[g.lead]
	minW, maxW, minH, maxH := e.limits(g, g.lead)

	if g.direction.X != 0 {
		g.width = clamp(width, minW, maxW)
	}
	if g.direction.Y != 0 {
		g.height = clamp(height, minH, maxH)
	}

	return compensate(start, g.gw, g.direction, g.width, g.height), nil
}

// EndResize snaps and commits the resize
func (e *Engine) EndResize(ctx context.Context) error {
	e.mu.Lock()
	switch e.state {
	case ResizeStarting:
		e.reset()
		e.mu.Unlock()
		return nil
	case Resizing:
	default:
		e.mu.Unlock()
		return ErrNoGesture
	}

	g := e.gesture
	e.state = Committed
	e.mu.Unlock()

	defer e.finish()

	records := e.resizeRecords(g)
	if len(records) > 1 {
		e.resizes.Submit(ctx, records...)
	} else if err := e.commitResize(ctx, records); err != nil {
		return err
	}

	e.selection.Select(g.targets...)
	return nil
}

// Cancel drops the active gesture without committing and re-lays out the canvas
func (e *Engine) Cancel() {
	e.mu.Lock()
	active := e.state != Idle && e.state != Committed
	if active {
		e.reset()
	}
	e.mu.Unlock()

	if active {
		e.refresher.Refresh()
	}
}

// SelectionChanged re-lays out the canvas, clearing stale transforms of aborted gestures
func (e *Engine) SelectionChanged() {
	e.refresher.Refresh()
}

// ContainerResized updates the root canvas size and re-lays out the canvas
func (e *Engine) ContainerResized(width, height float64) {
	e.index.SetCanvas(width, height)
	e.refresher.Refresh()
}

// Flush commits pending group gestures without waiting for the debounce window
func (e *Engine) Flush() {
	e.drags.Flush()
	e.resizes.Flush()
}

func (e *Engine) newGesture(id string) (*gesture, error) {
	targets, err := e.gestureTargets(id)
	if err != nil {
		return nil, err
	}

	g := &gesture{
		lead:    id,
		targets: targets,
		start:   make(map[string]Geometry, len(targets)),
		parent:  e.model.Parent(id),
	}
	g.gw = e.index.GridWidth(g.parent)
	g.dropTarget = g.parent

	for _, t := range targets {
		geometry, ok := e.model.GetGeometry(t, e.index.Breakpoint())
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoLayout, t)
		}
		g.start[t] = geometry
	}

	return g, nil
}

// gestureTargets picks the widgets moved with id, the lead goes first
func (e *Engine) gestureTargets(id string) ([]string, error) {
	if !e.selection.Contains(id) || e.selection.Len() < 2 {
		return []string{id}, nil
	}

	if e.selection.Spanning(e.model) {
		return nil, ErrGroupSpansParents
	}

	group := e.selection.HighestLevel(e.model)
	if !slices.Contains(group, id) {
		return []string{id}, nil
	}

	targets := []string{id}
	for _, t := range group {
		if t != id {
			targets = append(targets, t)
		}
	}
	return targets, nil
}

// resolveDropTarget hit tests the pointer for single drags, groups keep the
// lead parent and widgets inside a modal never leave it.
func (e *Engine) resolveDropTarget(g *gesture, pointer Point) string {
	if len(g.targets) > 1 || e.model.Type(g.parent) == "Modal" {
		return g.parent
	}
	return e.index.DropTarget(pointer, g.lead)
}

func (e *Engine) dropRecord(g *gesture, pointer Point) (DragRecord, error) {
	start, ok := g.start[g.lead]
	if !ok {
		return DragRecord{}, fmt.Errorf("%w: %s", ErrNoLayout, g.lead)
	}

	x := float64(start.Left)*g.gw + g.dx
	y := float64(start.Top) + g.dy
	gw := g.gw

	target := e.resolveDropTarget(g, pointer)
	allowed := target == "" || ChildAllowed(e.model.Type(target), e.model.Type(g.lead))

	if target != g.parent && allowed {
		from, ok := e.index.Origin(g.parent)
		if !ok {
			return DragRecord{}, fmt.Errorf("%w: %s", ErrNoLayout, g.parent)
		}
		to, ok := e.index.Origin(target)
		if !ok {
			return DragRecord{}, fmt.Errorf("%w: %s", ErrNoLayout, target)
		}

		x = from.X + x - to.X
		y = from.Y + y - to.Y
		gw = e.index.GridWidth(target)
	}

	if gw <= 0 {
		return DragRecord{}, ErrGridWidth
	}

	x = clamp(math.Round(x/gw)*gw, 0, float64(e.index.Columns()-start.Width)*gw)
	y = math.Max(math.Round(y/RowHeight)*RowHeight, 0)

	record := DragRecord{ID: g.lead, X: x, Y: y, GW: gw}
	if allowed {
		record.Parent = &target
	}
	return record, nil
}

// groupDragRecords offsets every member by the same delta, clamped so the
// whole group stays on the grid. The delta snaps the lead like a single drag.
func (e *Engine) groupDragRecords(g *gesture) []DragRecord {
	columns := e.index.Columns()
	minDx, maxDx, minDy := math.Inf(-1), math.Inf(1), math.Inf(-1)

	lead := g.start[g.lead]
	snappedDx := math.Round(g.dx/g.gw) * g.gw
	snappedDy := math.Round((float64(lead.Top)+g.dy)/RowHeight)*RowHeight - float64(lead.Top)

	for _, t := range g.targets {
		s := g.start[t]
		minDx = math.Max(minDx, -float64(s.Left)*g.gw)
		maxDx = math.Min(maxDx, float64(columns-s.Right())*g.gw)
		minDy = math.Max(minDy, -float64(s.Top))
	}

	dx := clamp(snappedDx, minDx, maxDx)
	dy := math.Max(snappedDy, minDy)

	records := make([]DragRecord, 0, len(g.targets))
	for _, t := range g.targets {
		s := g.start[t]
		parent := g.parent
		records = append(records, DragRecord{
			ID:     t,
			X:      float64(s.Left)*g.gw + dx,
			Y:      float64(s.Top) + dy,
			Parent: &parent,
			GW:     g.gw,
		})
	}
	return records
}

// resizeRecords applies the snapped size change of the lead to every target
func (e *Engine) resizeRecords(g *gesture) []ResizeRecord {
	lead := g.start[g.lead]
	dw := math.Round(g.width/g.gw)*g.gw - float64(lead.Width)*g.gw
	dh := math.Round(g.height/RowHeight)*RowHeight - float64(lead.Height)

	records := make([]ResizeRecord, 0, len(g.targets))
	for _, t := range g.targets {
		s := g.start[t]
		minW, maxW, minH, maxH := e.limits(g, t)

		width := float64(s.Width) * g.gw
		if g.direction.X != 0 {
			width = clamp(width+dw, minW, maxW)
		}
		height := float64(s.Height)
		if g.direction.Y != 0 {
			height = clamp(height+dh, minH, maxH)
		}

		box := compensate(s, g.gw, g.direction, width, height)
		records = append(records, ResizeRecord{
			ID:     t,
			Width:  box.Width,
			Height: box.Height,
			X:      box.X,
			Y:      box.Y,
			GW:     g.gw,
		})
	}
	return records
}

// limits bounds the pixel size of a widget resized in the gesture direction.
// Growing stops at the container edges, shrinking at one column by one row.
func (e *Engine) limits(g *gesture, id string) (minW, maxW, minH, maxH float64) {
	s := g.start[id]
	columns := e.index.Columns()

	minW, minH = g.gw, RowHeight
	maxW, maxH = float64(columns)*g.gw, math.Inf(1)

	switch g.direction.X {
	case -1:
		maxW = float64(s.Right()) * g.gw
	case 1:
		maxW = float64(columns-s.Left) * g.gw
	}

	switch g.direction.Y {
	case -1:
		maxH = float64(s.Top + s.Height)
	case 1:
		if h := e.index.Height(g.parent); h > 0 {
			maxH = h - float64(s.Top)
		}
	}

	return minW, math.Max(maxW, minW), minH, math.Max(maxH, minH)
}

func (e *Engine) commitDrag(ctx context.Context, records []DragRecord) error {
	ctx, span := e.tracer.Start(ctx, "layout.Engine.commitDrag")
	defer span.End()

	updates, err := dragUpdates(e.model, e.index.Breakpoint(), records)
	if err != nil {
		return e.abort("drag", err)
	}

	return e.commit(ctx, "drag", updates, func(ctx context.Context) error {
		return e.committer.CommitDrag(ctx, records)
	})
}

func (e *Engine) commitResize(ctx context.Context, records []ResizeRecord) error {
	ctx, span := e.tracer.Start(ctx, "layout.Engine.commitResize")
	defer span.End()

	updates, err := resizeUpdates(e.model, e.index.Breakpoint(), records)
	if err != nil {
		return e.abort("resize", err)
	}

	return e.commit(ctx, "resize", updates, func(ctx context.Context) error {
		return e.committer.CommitResize(ctx, records)
	})
}

// commit writes the model only once the records are validated and persisted
func (e *Engine) commit(ctx context.Context, kind string, updates []update, persist func(context.Context) error) error {
	if err := check(e.model, e.index.Columns(), updates); err != nil {
		return e.abort(kind, err)
	}

	if err := persist(ctx); err != nil {
		return e.abort(kind, err)
	}

	if _, err := write(e.model, e.index.Breakpoint(), updates); err != nil {
		return e.abort(kind, err)
	}

	e.refresher.Refresh()
	return nil
}

// abort logs the failure and re-lays out the canvas to drop stale transforms
func (e *Engine) abort(kind string, err error) error {
	e.logger.Errorf("%s gesture aborted: %v", kind, err)
	e.refresher.Refresh()

	return fmt.Errorf("%s aborted: %w", kind, err)
}

func (e *Engine) finish() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.reset()
}

func (e *Engine) reset() {
	e.state = Idle
	e.gesture = nil
}

func (e *Engine) setAfterFunc(afterFunc AfterFunc) {
	e.drags = NewBatcher(
		GroupCommitWindow,
		afterFunc,
		func(r DragRecord) string { return r.ID },
		func(ctx context.Context, records []DragRecord) { _ = e.commitDrag(ctx, records) },
	)
	e.resizes = NewBatcher(
		GroupCommitWindow,
		afterFunc,
		func(r ResizeRecord) string { return r.ID },
		func(ctx context.Context, records []ResizeRecord) { _ = e.commitResize(ctx, records) },
	)
}

// compensate positions a resized box so the edges opposite to the handle stay fixed
func compensate(start Geometry, gw float64, direction Direction, width, height float64) Rect {
	x := float64(start.Left) * gw
	y := float64(start.Top)

	if direction.X == -1 {
		x -= width - float64(start.Width)*gw
	}
	if direction.Y == -1 {
		y -= height - float64(start.Height)
	}

	return Rect{X: x, Y: y, Width: width, Height: height}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func NewEngine(
	model *Model,
	index *SpatialIndex,
	selection *Selection,
	committer CommitterInterface,
	refresher RefresherInterface,
	tracer tracing.TracingInterface,
	logger logging.LoggerInterface,
) *Engine {
	e := new(Engine)

	e.model = model
	e.index = index
	e.selection = selection
	e.committer = committer
	e.refresher = refresher

	e.tracer = tracer
	e.logger = logger

	e.setAfterFunc(nil)

	return e
}
