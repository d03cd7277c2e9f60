package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Code maps each Symbol to its root-to-leaf path through a Huffman tree:
// false descends left, true descends right.  In any Code derived from a
// tree, no path is a prefix of another.
type Code map[Symbol][]bool

// ExtractCode derives the code table of a Huffman tree: one entry per
// Leaf, mapping its symbol to the path from the root.  A tree that is
// itself a Leaf yields the empty path for its symbol.  Weights are not
// consulted.
func ExtractCode(tree Node) Code {
	code := make(Code)
	var path []bool
	var walk func(node Node)
	walk = func(node Node) {
		switch n := node.(type) {
		case *Leaf:
			// path keeps mutating as the walk continues, so store a copy.
			code[n.Symbol] = append([]bool(nil), path...)
		case *Branch:
			path = append(path, false)
			walk(n.Left)
			path[len(path)-1] = true
			walk(n.Right)
			path = path[:len(path)-1]
		}
	}
	walk(tree)
	return code
}

// BitString renders a bit sequence as a quoted string of 0s and 1s, false
// as 0 and true as 1.
func BitString(bits []bool) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, bit := range bits {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// String returns a single-line rendering of the code table in symbol
// order.
func (c Code) String() string {
	parts := make([]string, 0, len(c))
	for _, symbol := range c.sortedSymbols() {
		parts = append(parts, fmt.Sprintf("%q=%s", symbol, BitString(c[symbol])))
	}
	return "Code{" + strings.Join(parts, ", ") + "}"
}

// Dump writes a programmer-readable listing of the code table to the given
// writer, one symbol per line in symbol order.
func (c Code) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Code{\n")
	for _, symbol := range c.sortedSymbols() {
		fmt.Fprintf(&buf, "\t%q = %s\n", symbol, BitString(c[symbol]))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (c Code) sortedSymbols() []Symbol {
	symbols := make(bySymbol, 0, len(c))
	for symbol := range c {
		symbols = append(symbols, symbol)
	}
	symbols.Sort()
	return symbols
}

var _ fmt.Stringer = Code(nil)

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}
