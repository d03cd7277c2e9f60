package huffman

import (
	"testing"
)

func TestNodeQueue_OrdersByWeight(t *testing.T) {
	var q nodeQueue
	q.Enqueue(&Leaf{Symbol: 'a', W: 5})
	q.Enqueue(&Leaf{Symbol: 'b', W: 1})
	q.Enqueue(&Leaf{Symbol: 'c', W: 3})

	expect := []Symbol{'b', 'c', 'a'}
	for i, symbol := range expect {
		node := q.Dequeue()
		leaf, ok := node.(*Leaf)
		if !ok {
			t.Fatalf("dequeue %d: expected *Leaf, got %T", i, node)
		}
		if leaf.Symbol != symbol {
			t.Errorf("dequeue %d: expected %q, got %q", i, symbol, leaf.Symbol)
		}
	}
}

func TestNodeQueue_FIFOAmongEqualWeights(t *testing.T) {
	var q nodeQueue
	for _, symbol := range []Symbol{'d', 'a', 'c', 'b'} {
		q.Enqueue(&Leaf{Symbol: symbol, W: 7})
	}

	expect := []Symbol{'d', 'a', 'c', 'b'}
	for i, symbol := range expect {
		leaf := q.Dequeue().(*Leaf)
		if leaf.Symbol != symbol {
			t.Errorf("dequeue %d: expected %q, got %q", i, symbol, leaf.Symbol)
		}
	}
}

func TestNodeQueue_FIFOSurvivesInterleaving(t *testing.T) {
	var q nodeQueue
	q.Enqueue(&Leaf{Symbol: 'a', W: 2})
	q.Enqueue(&Leaf{Symbol: 'b', W: 1})

	if leaf := q.Dequeue().(*Leaf); leaf.Symbol != 'b' {
		t.Fatalf("expected 'b' first, got %q", leaf.Symbol)
	}

	// 'c' enqueues after 'a' and must dequeue after it despite the
	// intervening pop.
	q.Enqueue(&Leaf{Symbol: 'c', W: 2})

	expect := []Symbol{'a', 'c'}
	for i, symbol := range expect {
		leaf := q.Dequeue().(*Leaf)
		if leaf.Symbol != symbol {
			t.Errorf("dequeue %d: expected %q, got %q", i, symbol, leaf.Symbol)
		}
	}
}

func TestNodeQueue_DequeueEmpty(t *testing.T) {
	var q nodeQueue
	if node := q.Dequeue(); node != nil {
		t.Errorf("expected nil from empty queue, got %v", node)
	}

	q.Enqueue(&Leaf{Symbol: 'a', W: 1})
	q.Dequeue()
	if node := q.Dequeue(); node != nil {
		t.Errorf("expected nil after draining, got %v", node)
	}
}
