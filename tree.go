package huffman

// BuildTree constructs a Huffman tree from a frequency table.  It returns
// nil when ft is nil or empty.
//
// Every (symbol, count) entry becomes a Leaf in the queue, in table order.
// Each round dequeues the two lowest-weight nodes and combines them into a
// Branch whose left child is the first-dequeued node; when only one node
// remains the survivor passes through unchanged, so a single-symbol
// alphabet yields a bare Leaf rather than a one-child Branch.
func BuildTree(ft *FreqTable) Node {
	if ft == nil || ft.Len() == 0 {
		return nil
	}

	var q nodeQueue
	for _, symbol := range ft.Symbols() {
		q.Enqueue(&Leaf{Symbol: symbol, W: ft.Count(symbol)})
	}

	rounds := ft.Len()
	for i := 0; i < rounds; i++ {
		left := q.Dequeue()
		right := q.Dequeue()
		if right == nil {
			q.Enqueue(left)
			continue
		}
		q.Enqueue(&Branch{
			W:     left.Weight() + right.Weight(),
			Left:  left,
			Right: right,
		})
	}
	return q.Dequeue()
}
