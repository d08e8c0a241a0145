// File: heap.go
// Role: The min-heap of predicted collision timestamps driving phase A
// (skip-forward) of RunSaturation.
package emulator

import "github.com/jointpoints/metricwalk/graph"

type heapItem struct {
	t   float64
	idx graph.EdgeIndex
}

type timeHeap []heapItem

func (h timeHeap) Len() int            { return len(h) }
func (h timeHeap) Less(i, j int) bool  { return h[i].t < h[j].t }
func (h timeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *timeHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }
func (h *timeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
