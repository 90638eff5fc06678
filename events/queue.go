// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"sync/atomic"
)

// Queue is a lock-free FIFO of published events, for hosts that poll
// widget events instead of (or as well as) registering [Listeners].
// Widgets emit during a frame and the host publishes at the end of it,
// so a consumer on another goroutine may read while the next frame runs.
// The zero value is ready to use.
type Queue struct {
	once sync.Once
	head atomic.Pointer[queueNode]
	tail atomic.Pointer[queueNode]
	len  atomic.Int64
}

type queueNode struct {
	next atomic.Pointer[queueNode]
	ev   Event
}

var queueNodePool = sync.Pool{
	New: func() any { return &queueNode{} },
}

func (q *Queue) init() {
	q.once.Do(func() {
		sentinel := &queueNode{}
		q.head.Store(sentinel)
		q.tail.Store(sentinel)
	})
}

// Send adds an event to the end of the queue.
func (q *Queue) Send(ev Event) {
	q.init()
	n := queueNodePool.Get().(*queueNode)
	n.next.Store(nil)
	n.ev = ev
	for {
		last := q.tail.Load()
		next := last.next.Load()
		if q.tail.Load() != last {
			continue
		}
		if next != nil {
			// tail is behind: help it along
			q.tail.CompareAndSwap(last, next)
			continue
		}
		if last.next.CompareAndSwap(nil, n) {
			q.tail.CompareAndSwap(last, n)
			q.len.Add(1)
			return
		}
	}
}

// Next removes and returns the next event, or nil if the queue is empty.
func (q *Queue) Next() Event {
	q.init()
	for {
		first := q.head.Load()
		last := q.tail.Load()
		next := first.next.Load()
		if first != q.head.Load() {
			continue
		}
		if next == nil {
			return nil
		}
		if first == last {
			q.tail.CompareAndSwap(last, next)
			continue
		}
		ev := next.ev
		if q.head.CompareAndSwap(first, next) {
			q.len.Add(-1)
			first.ev = nil
			queueNodePool.Put(first)
			return ev
		}
	}
}

// Drain calls fun on every queued event in order, removing them.
// It returns the number of events drained.
func (q *Queue) Drain(fun func(Event)) int {
	n := 0
	for ev := q.Next(); ev != nil; ev = q.Next() {
		fun(ev)
		n++
	}
	return n
}

// Len returns the length of the queue.
func (q *Queue) Len() int {
	return int(q.len.Load())
}
