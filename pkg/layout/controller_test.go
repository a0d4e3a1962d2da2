// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package layout

import (
	"slices"
	"testing"
)

func TestController_Refresh(t *testing.T) {
	c := NewController()

	var calls []string
	c.Subscribe(func() { calls = append(calls, "canvas") })
	unsubscribe := c.Subscribe(func() { calls = append(calls, "box") })
	c.Subscribe(func() { calls = append(calls, "tabs") })

	c.Refresh()
	if !slices.Equal(calls, []string{"canvas", "box", "tabs"}) {
		t.Fatalf("unexpected calls %v", calls)
	}

	calls = nil
	unsubscribe()
	c.Refresh()

	if !slices.Equal(calls, []string{"canvas", "tabs"}) {
		t.Errorf("unexpected calls after unsubscribe %v", calls)
	}
}

func TestController_SubscribeWhileRefreshing(t *testing.T) {
	c := NewController()

	count := 0
	c.Subscribe(func() {
		c.Subscribe(func() { count++ })
	})

	c.Refresh()
	if count != 0 {
		t.Errorf("expected listeners added during a refresh to wait for the next one")
	}

	c.Refresh()
	if count != 1 {
		t.Errorf("expected 1 call, got %d", count)
	}
}
