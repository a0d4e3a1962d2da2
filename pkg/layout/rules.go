// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package layout

import "slices"

const (
	// DefaultGridColumns is the number of columns of every canvas
	DefaultGridColumns = 44
	// RowHeight is the vertical snapping step in pixels, also the minimum widget height
	RowHeight = 10
)

type Breakpoint string

const (
	Desktop Breakpoint = "desktop"
	Mobile  Breakpoint = "mobile"
)

func (b Breakpoint) Valid() bool {
	return b == Desktop || b == Mobile
}

// dropTargets are the component types that accept dropped widgets
var dropTargets = []string{"Calendar", "Kanban", "Form", "Tabs", "Modal", "Listview", "Container", "Table"}

// handleOnly widgets start a drag only from their handle
var handleOnly = []string{"RangeSlider", "Container", "BoundedBox"}

// restrictedChildren maps a container type to the child types it refuses
var restrictedChildren = map[string][]string{
	"Container": {"Calendar", "Kanban"},
	"Form":      {"Calendar", "FilePicker", "Form", "Kanban"},
	"Tabs":      {"Calendar", "Kanban"},
	"Modal":     {"Calendar", "Kanban"},
	"Listview":  {"Calendar", "FilePicker", "Form", "Kanban", "Listview", "Tabs", "Modal"},
	"Kanban":    {"Calendar", "FilePicker", "Form", "Kanban", "Listview", "Modal"},
}

// IsDropTarget reports if widgets of the given type can receive dropped widgets
func IsDropTarget(componentType string) bool {
	return slices.Contains(dropTargets, componentType)
}

// RequiresHandle reports if widgets of the given type are only draggable from their handle
func RequiresHandle(componentType string) bool {
	return slices.Contains(handleOnly, componentType)
}

// ChildAllowed checks the restricted child table, the root canvas accepts anything
func ChildAllowed(parentType, childType string) bool {
	return !slices.Contains(restrictedChildren[parentType], childType)
}
