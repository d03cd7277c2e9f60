package huffman

import (
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Encode Huffman-codes the input string.  It returns the derived code
// table and the concatenation of each input symbol's path, in input order.
// Both results are nil when input is empty.
func Encode(input string) (Code, []bool) {
	ft := CountFrequencies(input)
	if ft == nil {
		return nil, nil
	}
	code := ExtractCode(BuildTree(ft))

	var data []bool
	for _, r := range input {
		path, found := code[Symbol(r)]
		assert.Assertf(found, "symbol %q has no code", r)
		data = append(data, path...)
	}
	return code, data
}

// TreeFromCode rebuilds a traversal tree from a code table alone; it is
// the inverse of ExtractCode.  Every weight in the result is zero.  The
// code must be prefix-free; that is not validated, and a code violating it
// produces an unspecified tree.
func TreeFromCode(code Code) Node {
	for symbol, path := range code {
		if len(path) == 0 {
			// A single-symbol alphabet codes its symbol as the empty
			// path, so the whole tree is that one leaf.
			return &Leaf{Symbol: symbol}
		}
	}

	root := &Branch{}
	for symbol, path := range code {
		current := root
		last := len(path) - 1
		for i, bit := range path {
			if i == last {
				leaf := &Leaf{Symbol: symbol}
				if bit {
					current.Right = leaf
				} else {
					current.Left = leaf
				}
				break
			}
			if bit {
				if current.Right == nil {
					current.Right = &Branch{}
				}
				current = current.Right.(*Branch)
			} else {
				if current.Left == nil {
					current.Left = &Branch{}
				}
				current = current.Left.(*Branch)
			}
		}
	}
	return root
}

// Decode decodes data using a code table.  The tree is rebuilt from the
// code, then data is walked one bit at a time: false moves left, true
// moves right, and reaching a Leaf emits its symbol and resets the walk to
// the root.  Data that ends partway down a path has the partial tail
// silently dropped.
func Decode(code Code, data []bool) string {
	root := TreeFromCode(code)

	var sb strings.Builder
	current := root
	for _, bit := range data {
		branch := current.(*Branch)
		if bit {
			current = branch.Right
		} else {
			current = branch.Left
		}
		if leaf, ok := current.(*Leaf); ok {
			sb.WriteRune(rune(leaf.Symbol))
			current = root
		}
	}
	return sb.String()
}
