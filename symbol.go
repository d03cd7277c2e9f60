package huffman

// Symbol represents a symbol in the alphabet being coded.  The reference
// alphabet is single characters, i.e. Unicode code points.
type Symbol rune

// FreqTable maps each distinct Symbol of an input to the number of times it
// occurs.  It remembers the order in which symbols were first added;
// BuildTree relies on that order for deterministic tree shapes.
type FreqTable struct {
	counts map[Symbol]int
	order  []Symbol
}

// NewFreqTable returns an empty frequency table.
func NewFreqTable() *FreqTable {
	return &FreqTable{counts: make(map[Symbol]int)}
}

// Add records one occurrence of the given symbol.
func (ft *FreqTable) Add(symbol Symbol) {
	if _, seen := ft.counts[symbol]; !seen {
		ft.order = append(ft.order, symbol)
	}
	ft.counts[symbol]++
}

// Count returns the number of recorded occurrences of the given symbol.
func (ft *FreqTable) Count(symbol Symbol) int {
	return ft.counts[symbol]
}

// Len returns the number of distinct symbols in the table.
func (ft *FreqTable) Len() int {
	return len(ft.counts)
}

// Symbols returns a copy of the distinct symbols in first-appearance order.
func (ft *FreqTable) Symbols() []Symbol {
	out := make([]Symbol, len(ft.order))
	copy(out, ft.order)
	return out
}

// CountFrequencies scans input and builds its frequency table.  It returns
// nil when input is empty: callers must treat the missing table as a valid
// terminal state, not a failure.
func CountFrequencies(input string) *FreqTable {
	if input == "" {
		return nil
	}
	ft := NewFreqTable()
	for _, r := range input {
		ft.Add(Symbol(r))
	}
	return ft
}
