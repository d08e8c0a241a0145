// Package emulator runs epsilon-saturation walks over a graph.Graph: an
// Emulator seeds one walker per edge departing a start vertex, then
// advances every edge's walker population in lockstep until each edge's
// agent.State reports itself saturated.
//
// RunSaturation follows two phases. Phase A (skip-forward) is optional
// and advances by variable steps driven by a min-heap of predicted
// collision times, stopping once every edge meets a necessary-but-not-
// sufficient agent-count condition. Phase B always runs afterward,
// advancing by a fixed dt until every edge actually reports saturated --
// phase A narrows the search, phase B confirms it.
//
// An Emulator is attached to its graph for the duration of its life: any
// structural mutation on that graph moves the emulator to Invalid, and
// closing the graph moves it to Dead. Both transitions are safe to
// observe from a goroutine other than the one running RunSaturation.
package emulator
