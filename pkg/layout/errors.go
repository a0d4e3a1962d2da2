// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package layout

import "errors"

var (
	ErrUnknownWidget     = errors.New("unknown widget")
	ErrCycle             = errors.New("reparent would create a cycle")
	ErrRestrictedChild   = errors.New("widget type not allowed in this container")
	ErrNotContainer      = errors.New("parent widget is not a container")
	ErrNoGesture         = errors.New("no gesture in progress")
	ErrGestureActive     = errors.New("another gesture is in progress")
	ErrHandleRequired    = errors.New("widget can only be dragged by its handle")
	ErrGroupSpansParents = errors.New("selection spans multiple parents")
	ErrOutOfBounds       = errors.New("geometry outside of the grid")
	ErrNoLayout          = errors.New("widget has no layout for the breakpoint")
	ErrGridWidth         = errors.New("grid width must be positive")
	ErrBreakpoint        = errors.New("unknown breakpoint")

	ErrAppVersionNotFound = errors.New("app version not found")
)

// IsInvalidLayout reports errors caused by records breaking the grid or containment rules
func IsInvalidLayout(err error) bool {
	for _, target := range []error{
		ErrUnknownWidget, ErrCycle, ErrRestrictedChild, ErrNotContainer,
		ErrOutOfBounds, ErrNoLayout, ErrGridWidth, ErrBreakpoint,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
