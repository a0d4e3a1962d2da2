// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package layout

import (
	"fmt"
	"math"
)

// DragRecord is the pixel position of a dropped widget inside its container.
// A nil Parent keeps the current parent, an empty one moves to the root canvas.
type DragRecord struct {
	ID     string  `json:"id" validate:"required"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Parent *string `json:"parent,omitempty"`
	GW     float64 `json:"gw" validate:"gt=0"`
}

// ResizeRecord is the pixel box of a resized widget inside its container
type ResizeRecord struct {
	ID     string  `json:"id" validate:"required"`
	Width  float64 `json:"width" validate:"gt=0"`
	Height float64 `json:"height" validate:"gt=0"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	GW     float64 `json:"gw" validate:"gt=0"`
}

type update struct {
	id       string
	geometry Geometry
	parent   string
}

func dragUpdates(model *Model, breakpoint Breakpoint, records []DragRecord) ([]update, error) {
	updates := make([]update, 0, len(records))
	for _, r := range records {
		g, ok := model.GetGeometry(r.ID, breakpoint)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoLayout, r.ID)
		}
		if r.GW <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrGridWidth, r.ID)
		}

		g.Left = int(math.Round(r.X / r.GW))
		g.Top = int(math.Round(r.Y))

		parent := model.Parent(r.ID)
		if r.Parent != nil {
			parent = *r.Parent
		}

		updates = append(updates, update{id: r.ID, geometry: g, parent: parent})
	}
	return updates, nil
}

func resizeUpdates(model *Model, breakpoint Breakpoint, records []ResizeRecord) ([]update, error) {
	updates := make([]update, 0, len(records))
	for _, r := range records {
		if _, ok := model.GetGeometry(r.ID, breakpoint); !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoLayout, r.ID)
		}
		if r.GW <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrGridWidth, r.ID)
		}

		g := Geometry{
			Left:   int(math.Round(r.X / r.GW)),
			Top:    int(math.Round(r.Y)),
			Width:  int(math.Round(r.Width / r.GW)),
			Height: int(math.Round(r.Height)),
		}

		updates = append(updates, update{id: r.ID, geometry: g, parent: model.Parent(r.ID)})
	}
	return updates, nil
}

// check replays the updates in order on a copy of the model, so records
// conflicting with earlier ones of the same batch are caught before anything
// is written. A single rejected record rejects the whole batch.
func check(model *Model, columns int, updates []update) error {
	scratch := model.Clone()

	for _, u := range updates {
		if !u.geometry.Valid(columns) {
			return fmt.Errorf("%w: %s %+v", ErrOutOfBounds, u.id, u.geometry)
		}

		if u.parent != scratch.Parent(u.id) {
			if err := scratch.Reparent(u.id, u.parent); err != nil {
				return err
			}
		}
	}
	return nil
}

// write stores checked updates and returns the ids whose geometry or parent changed
func write(model *Model, breakpoint Breakpoint, updates []update) ([]string, error) {
	var changed []string
	for _, u := range updates {
		old, _ := model.GetGeometry(u.id, breakpoint)
		moved := u.parent != model.Parent(u.id)

		if moved {
			if err := model.Reparent(u.id, u.parent); err != nil {
				return changed, err
			}
		}

		if err := model.SetGeometry(u.id, breakpoint, u.geometry); err != nil {
			return changed, err
		}

		if moved || old != u.geometry {
			changed = append(changed, u.id)
		}
	}
	return changed, nil
}

func apply(model *Model, breakpoint Breakpoint, columns int, updates []update) ([]string, error) {
	if err := check(model, columns, updates); err != nil {
		return nil, err
	}
	return write(model, breakpoint, updates)
}

// ApplyDrag commits drag records into the model, all or nothing
func ApplyDrag(model *Model, breakpoint Breakpoint, columns int, records []DragRecord) ([]string, error) {
	updates, err := dragUpdates(model, breakpoint, records)
	if err != nil {
		return nil, err
	}
	return apply(model, breakpoint, columns, updates)
}

// ApplyResize commits resize records into the model, all or nothing
func ApplyResize(model *Model, breakpoint Breakpoint, columns int, records []ResizeRecord) ([]string, error) {
	updates, err := resizeUpdates(model, breakpoint, records)
	if err != nil {
		return nil, err
	}
	return apply(model, breakpoint, columns, updates)
}
