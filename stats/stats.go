// Package stats provides entropy and codeword-length analysis for symbol
// sequences and frequency tables.
//
// These measures bracket what the coding core can achieve: FirstOrderEntropy
// is the per-symbol lower bound an arithmetic coder approaches,
// AverageCodewordLength is what a Huffman coder over the same table would
// spend, and TheoreticalBits turns the bound into a whole-sequence budget for
// comparing against actual compressed sizes.
package stats

import (
	"container/heap"
	"math"
)

// FirstOrderEntropy returns the first-order entropy of the sequence in bits
// per symbol. An empty sequence has zero entropy.
func FirstOrderEntropy(symbols []int) float64 {
	if len(symbols) == 0 {
		return 0
	}

	counts := make(map[int]uint64, 16)
	for _, s := range symbols {
		counts[s]++
	}

	n := float64(len(symbols))
	entropy := 0.0
	for _, count := range counts {
		p := float64(count) / n
		entropy -= p * math.Log2(p)
	}

	return entropy
}

// SecondOrderEntropy returns the second-order entropy of the sequence in bits
// per symbol: the entropy of non-overlapping adjacent pairs, halved. A
// trailing unpaired symbol forms a block of its own.
//
// For sequences with inter-symbol correlation this is lower than
// FirstOrderEntropy, quantifying what a context model could gain over a
// memoryless one.
func SecondOrderEntropy(symbols []int) float64 {
	if len(symbols) == 0 {
		return 0
	}

	counts := make(map[[2]int]uint64, 16)
	blocks := 0
	for i := 0; i < len(symbols); i += 2 {
		pair := [2]int{symbols[i], -1}
		if i+1 < len(symbols) {
			pair[1] = symbols[i+1]
		}
		counts[pair]++
		blocks++
	}

	n := float64(blocks)
	entropy := 0.0
	for _, count := range counts {
		p := float64(count) / n
		entropy -= p * math.Log2(p)
	}

	return entropy / 2
}

// TheoreticalBits returns the Shannon lower bound, in bits, for coding a
// sequence whose per-symbol counts are exactly the given table:
// sum over symbols of count * log2(total/count). Zero counts are skipped.
//
// An arithmetic coder with a matching static model lands within a small
// constant of this bound; the flush alone costs two bits.
func TheoreticalBits(counts []uint64) float64 {
	var total uint64
	for _, count := range counts {
		total += count
	}
	if total == 0 {
		return 0
	}

	bits := 0.0
	for _, count := range counts {
		if count == 0 {
			continue
		}
		bits += float64(count) * math.Log2(float64(total)/float64(count))
	}

	return bits
}

// AverageCodewordLength returns the average Huffman codeword length, in bits
// per symbol, for the given frequency table. Zero counts are skipped; a table
// with fewer than two positive counts returns 0.
//
// The value is the sum of internal node weights of the Huffman tree divided
// by the total count, which equals the weighted depth sum without tracking
// per-symbol depths.
func AverageCodewordLength(counts []uint64) float64 {
	weights := make(weightHeap, 0, len(counts))
	var total uint64
	for _, count := range counts {
		if count == 0 {
			continue
		}
		weights = append(weights, count)
		total += count
	}

	if len(weights) < 2 {
		return 0
	}

	heap.Init(&weights)

	var internalSum uint64
	for weights.Len() > 1 {
		a := heap.Pop(&weights).(uint64)
		b := heap.Pop(&weights).(uint64)
		internalSum += a + b
		heap.Push(&weights, a+b)
	}

	return float64(internalSum) / float64(total)
}

// weightHeap is a min-heap of node weights for Huffman tree construction.
type weightHeap []uint64

func (h weightHeap) Len() int           { return len(h) }
func (h weightHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h weightHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *weightHeap) Push(x any)        { *h = append(*h, x.(uint64)) }
func (h *weightHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}

// CompressionStats summarizes one compression run for monitoring and tests.
type CompressionStats struct {
	// OriginalSize is the size of the input before compression, in bytes.
	OriginalSize int64

	// CompressedSize is the size of the output after compression, in bytes.
	CompressedSize int64
}

// CompressionRatio returns compressed size divided by original size.
//
// Values less than 1.0 indicate successful compression.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
// Higher values indicate better compression.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}
