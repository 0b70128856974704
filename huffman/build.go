// Copyright 2025 The huff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

import "container/heap"

// heapItem pairs a node with the sequence number it received when it
// entered the queue. The sequence breaks frequency ties, oldest first.
type heapItem struct {
	node *Node
	seq  int
}

// nodeHeap is a min-heap over (frequency, sequence). Leaves enter in
// ascending symbol order and merged nodes in merge order, which makes
// the tree shape for a given frequency table the same on every run.
type nodeHeap []heapItem

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].node.Freq != h[j].node.Freq {
		return h[i].node.Freq < h[j].node.Freq
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(heapItem)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// Build constructs an optimal prefix-code tree for the frequency table
// and returns its root. Each merge takes the two lightest nodes, the
// first popped becoming the left child. A table with a single symbol
// yields a tree that is a single leaf. An empty table has no tree;
// Build returns ErrNoSymbols.
func Build(freqs FreqTable) (*Node, error) {
	if len(freqs) == 0 {
		return nil, ErrNoSymbols
	}
	h := make(nodeHeap, 0, len(freqs))
	for i := 0; i < 256; i++ {
		if f, ok := freqs[byte(i)]; ok {
			h = append(h, heapItem{&Node{Sym: byte(i), Freq: f}, len(h)})
		}
	}
	heap.Init(&h)
	seq := h.Len()
	for h.Len() > 1 {
		left := heap.Pop(&h).(heapItem).node
		right := heap.Pop(&h).(heapItem).node
		heap.Push(&h, heapItem{
			node: &Node{Left: left, Right: right, Freq: left.Freq + right.Freq},
			seq:  seq,
		})
		seq++
	}
	return heap.Pop(&h).(heapItem).node, nil
}
