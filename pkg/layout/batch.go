// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package layout

import (
	"context"
	"sync"
	"time"
)

// GroupCommitWindow is how long group gestures are coalesced before committing
const GroupCommitWindow = 100 * time.Millisecond

// Timer is the part of *time.Timer the batcher relies on
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d, time.AfterFunc in production
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Batcher debounces record submissions. Records with the same key replace
// each other, the flush function receives everything pending in one call
// once no submission happened for the whole window.
type Batcher[T any] struct {
	mu sync.Mutex

	window    time.Duration
	afterFunc AfterFunc
	key       func(T) string
	flush     func(context.Context, []T)

	ctx     context.Context
	pending []T
	index   map[string]int
	timer   Timer
}

// Submit queues the records and restarts the debounce window
func (b *Batcher[T]) Submit(ctx context.Context, records ...T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.ctx = context.WithoutCancel(ctx)

	for _, r := range records {
		k := b.key(r)
		if i, ok := b.index[k]; ok {
			b.pending[i] = r
			continue
		}
		b.index[k] = len(b.pending)
		b.pending = append(b.pending, r)
	}

	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = b.afterFunc(b.window, b.Flush)
}

// Flush commits pending records right away, a no-op when nothing is queued
func (b *Batcher[T]) Flush() {
	b.mu.Lock()

	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}

	records, ctx := b.pending, b.ctx
	b.pending = nil
	b.index = make(map[string]int)
	b.mu.Unlock()

	if len(records) == 0 {
		return
	}

	b.flush(ctx, records)
}

// Discard drops pending records without committing them
func (b *Batcher[T]) Discard() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.pending = nil
	b.index = make(map[string]int)
}

func (b *Batcher[T]) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.pending)
}

func NewBatcher[T any](window time.Duration, afterFunc AfterFunc, key func(T) string, flush func(context.Context, []T)) *Batcher[T] {
	b := new(Batcher[T])

	b.window = window
	b.afterFunc = afterFunc
	if b.afterFunc == nil {
		b.afterFunc = realAfterFunc
	}
	b.key = key
	b.flush = flush
	b.ctx = context.Background()
	b.index = make(map[string]int)

	return b
}
