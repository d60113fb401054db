package queue

/*
 * kumu - Generic FIFO queue tests
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

import "testing"

// Check FIFO ordering is preserved across interleaved enqueue/dequeue.
func TestQueueFIFOOrder(t *testing.T) {
	q := New[int]()
	for i := range 5 {
		q.Enqueue(i)
	}
	for i := range 5 {
		v := q.Dequeue()
		if v != i {
			t.Errorf("Dequeue order wrong got: %d expected: %d", v, i)
		}
	}
	if !q.Empty() {
		t.Errorf("Empty() after draining got: false expected: true")
	}
}

// Check Len/Empty track size through a mix of operations.
func TestQueueLenEmpty(t *testing.T) {
	q := New[string]()
	if !q.Empty() {
		t.Errorf("fresh queue Empty() got: false expected: true")
	}
	q.Enqueue("a")
	q.Enqueue("b")
	if r := q.Len(); r != 2 {
		t.Errorf("Len() got: %d expected: %d", r, 2)
	}
	_ = q.Dequeue()
	if r := q.Len(); r != 1 {
		t.Errorf("Len() after dequeue got: %d expected: %d", r, 1)
	}
}

// Check a dequeue from empty panics, per the documented contract.
func TestQueueDequeueEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Dequeue on empty queue did not panic")
		}
	}()
	q := New[int]()
	q.Dequeue()
}

// Check ForEach visits front-to-rear without mutating the queue.
func TestQueueForEachNonDestructive(t *testing.T) {
	q := New[int]()
	for i := range 3 {
		q.Enqueue(i)
	}
	var seen []int
	q.ForEach(func(v int) {
		seen = append(seen, v)
	})
	for i, v := range seen {
		if v != i {
			t.Errorf("ForEach order got: %d expected: %d", v, i)
		}
	}
	if r := q.Len(); r != 3 {
		t.Errorf("Len() after ForEach got: %d expected: %d", r, 3)
	}
}

// Check re-enqueueing after partial drain keeps arrival order, mirroring
// how the free pools cycle frames back in after swap-out/swap-in.
func TestQueueRequeueAfterDrain(t *testing.T) {
	q := New[uint8]()
	for i := range uint8(4) {
		q.Enqueue(i)
	}
	first := q.Dequeue()
	second := q.Dequeue()
	if first != 0 || second != 1 {
		t.Errorf("initial dequeues got: %d,%d expected: 0,1", first, second)
	}
	q.Enqueue(first)
	next := q.Dequeue()
	if next != 2 {
		t.Errorf("Dequeue after requeue got: %d expected: %d", next, 2)
	}
}
