package huffman

import (
	"container/heap"
)

// nodeQueue is a min-priority queue of tree nodes ordered by ascending
// weight.  Nodes of equal weight dequeue in the order they were enqueued;
// the explicit sequence number makes the tie-break independent of any
// stable-sort guarantee, so tree construction is deterministic and
// testable.
type nodeQueue struct {
	list    []queuedNode
	nextSeq uint64
}

type queuedNode struct {
	node Node
	seq  uint64
}

// Enqueue adds a node to the queue.
func (q *nodeQueue) Enqueue(node Node) {
	heap.Push(q, queuedNode{node: node, seq: q.nextSeq})
	q.nextSeq++
}

// Dequeue removes and returns the lowest-weight node, or nil when the
// queue is empty.
func (q *nodeQueue) Dequeue() Node {
	if len(q.list) == 0 {
		return nil
	}
	return heap.Pop(q).(queuedNode).node
}

func (q *nodeQueue) Len() int {
	return len(q.list)
}

func (q *nodeQueue) Swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}

func (q *nodeQueue) Less(i, j int) bool {
	a, b := q.list[i], q.list[j]
	aw, bw := a.node.Weight(), b.node.Weight()
	if aw != bw {
		return aw < bw
	}
	return a.seq < b.seq
}

func (q *nodeQueue) Push(x interface{}) {
	q.list = append(q.list, x.(queuedNode))
}

func (q *nodeQueue) Pop() interface{} {
	last := uint(len(q.list)) - 1
	x := q.list[last]
	q.list = q.list[:last]
	return x
}

var _ heap.Interface = (*nodeQueue)(nil)
