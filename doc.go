// Package huffman implements Huffman coding over explicit code trees:
// analyzing symbol frequencies, building an optimal prefix-free binary code
// with a greedy queue-driven merge, encoding an input into a sequence of
// bits, and decoding that sequence losslessly using only the code table.
//
// Encoded data is modeled as an abstract sequence of booleans rather than
// packed bytes; packing into a byte stream is out of scope.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
