// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package layout

import "sync"

// Controller fans a re-layout request out to every subscribed view
type Controller struct {
	mu sync.Mutex

	next      int
	listeners map[int]func()
}

// Subscribe registers f and returns the function removing it
func (c *Controller) Subscribe(f func()) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.next
	c.next++
	c.listeners[id] = f

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		delete(c.listeners, id)
	}
}

// Refresh runs every listener, listeners may subscribe or unsubscribe while running
func (c *Controller) Refresh() {
	c.mu.Lock()
	listeners := make([]func(), 0, len(c.listeners))
	for i := 0; i < c.next; i++ {
		if f, ok := c.listeners[i]; ok {
			listeners = append(listeners, f)
		}
	}
	c.mu.Unlock()

	for _, f := range listeners {
		f()
	}
}

func NewController() *Controller {
	c := new(Controller)
	c.listeners = make(map[int]func())

	return c
}
