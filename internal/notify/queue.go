// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package notify implements the transient notification queue: entries
// expire on their own after a fixed lifetime and may be dismissed early.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"globalplanner/internal/models"
)

// DefaultTTL is the lifetime of a notification when none is configured.
const DefaultTTL = 3 * time.Second

// Timer is the subset of *time.Timer the queue needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. time.AfterFunc satisfies it once wrapped.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type entry struct {
	n     models.Notification
	timer Timer
}

// Queue is an ordered list of notifications, each removed after ttl by its
// own timer. It is safe for concurrent use.
type Queue struct {
	mu        sync.Mutex
	ttl       time.Duration
	afterFunc AfterFunc
	entries   []entry
}

// Option configures a Queue.
type Option func(*Queue)

// WithClock replaces the timer source, for tests.
func WithClock(fn AfterFunc) Option {
	return func(q *Queue) { q.afterFunc = fn }
}

// New creates a queue whose entries live for ttl. A non-positive ttl uses
// DefaultTTL.
func New(ttl time.Duration, opts ...Option) *Queue {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	q := &Queue{ttl: ttl, afterFunc: realAfterFunc}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Push appends a notification and returns its id. Identical messages are
// kept as separate entries.
func (q *Queue) Push(message string, severity models.Severity) string {
	id := uuid.New().String()

	q.mu.Lock()
	defer q.mu.Unlock()

	q.entries = append(q.entries, entry{
		n:     models.Notification{ID: id, Message: message, Severity: severity},
		timer: q.afterFunc(q.ttl, func() { q.remove(id) }),
	})
	return id
}

// Dismiss removes a notification before it expires. It reports whether the
// id was present.
func (q *Queue) Dismiss(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, e := range q.entries {
		if e.n.ID == id {
			e.timer.Stop()
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the live notifications in insertion order.
func (q *Queue) List() []models.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]models.Notification, len(q.entries))
	for i, e := range q.entries {
		out[i] = e.n
	}
	return out
}

// Len returns the number of live notifications.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

func (q *Queue) remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, e := range q.entries {
		if e.n.ID == id {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return
		}
	}
}
