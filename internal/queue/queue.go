/*
 * kumu - Generic FIFO queue
 *
 * Copyright 2026, kumu contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package queue implements a strict FIFO used for the free-frame pools
// and the resident-leaf replacement order.
package queue

// node is one link in the queue's backing list.
type node[T any] struct {
	val  T
	next *node[T]
}

// Queue is a singly linked FIFO. The zero value is an empty queue
// ready for use; New returns a pointer to one.
type Queue[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New returns an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue appends v to the rear of the queue.
func (q *Queue[T]) Enqueue(v T) {
	n := &node[T]{val: v}
	if q.tail == nil {
		q.head = n
		q.tail = n
		q.size++
		return
	}
	q.tail.next = n
	q.tail = n
	q.size++
}

// Dequeue removes and returns the front of the queue. It panics if the
// queue is empty: every caller in this repository checks Len/Empty
// first, so an empty dequeue is a programmer error, not a runtime one.
func (q *Queue[T]) Dequeue() T {
	if q.head == nil {
		panic("queue: dequeue from empty queue")
	}
	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.size--
	return n.val
}

// Len reports the number of elements currently queued.
func (q *Queue[T]) Len() int {
	return q.size
}

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool {
	return q.size == 0
}

// ForEach visits every element front-to-rear without removing them,
// for read-only diagnostics (dump/show commands, tests).
func (q *Queue[T]) ForEach(f func(T)) {
	for n := q.head; n != nil; n = n.next {
		f(n.val)
	}
}
