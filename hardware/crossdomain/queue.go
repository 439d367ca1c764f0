// This file is part of Pixelport.
//
// Pixelport is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pixelport is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pixelport.  If not, see <https://www.gnu.org/licenses/>.

package crossdomain

import (
	"sync/atomic"
)

// Queue is a bounded transfer queue between two clock domains. The producer
// never blocks: posting to a full queue is counted as an overrun and the
// value is dropped. Capacity must therefore be sized for the worst case
// burst of the producing domain.
//
// Values are observed by the consumer in the order they were posted.
type Queue[T any] struct {
	ch      chan T
	overrun atomic.Uint64
}

// NewQueue creates a transfer queue with the given capacity.
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{ch: make(chan T, capacity)}
}

// Post a value from the producing domain. Returns false if the queue was
// full and the value dropped.
func (q *Queue[T]) Post(v T) bool {
	select {
	case q.ch <- v:
		return true
	default:
		q.overrun.Add(1)
		return false
	}
}

// Recv the oldest value in the queue. Returns false if the queue is empty.
// Never waits for the producing domain.
func (q *Queue[T]) Recv() (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		var none T
		return none, false
	}
}

// Len is the number of values currently queued.
func (q *Queue[T]) Len() int {
	return len(q.ch)
}

// Overruns is the number of values dropped because the queue was full.
func (q *Queue[T]) Overruns() uint64 {
	return q.overrun.Load()
}
