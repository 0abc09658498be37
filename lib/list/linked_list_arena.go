package list

import (
	"math"
)

// nodeIndex addresses a node slot inside the arena.
// The slot 0 is reserved as the "none" sentinel (non-zero offset),
// so the zero value of links means no neighbour.
type nodeIndex uint32

const (
	nilIndex            nodeIndex = 0
	defaultArenaCap               = 16
	maxArenaNodeIndices           = math.MaxUint32
)

type arenaNode[T comparable] struct {
	prev, next nodeIndex
	gen        uint32 // Bumped on each release, so the stale handles are detectable.
	inUse      bool
	value      T // It should be placed at the end of the struct to avoid taking too much padding.
}

// nodeArena owns all the nodes of a linked list.
// Released slots are recycled before growing.
type nodeArena[T comparable] struct {
	nodes    []arenaNode[T]
	recycled []nodeIndex
}

func newNodeArena[T comparable](capacity int) *nodeArena[T] {
	if capacity <= 0 {
		capacity = defaultArenaCap
	}
	arena := &nodeArena[T]{
		nodes:    make([]arenaNode[T], 1, capacity+1),
		recycled: make([]nodeIndex, 0, capacity/2+1),
	}
	return arena
}

func (arena *nodeArena[T]) allocate(v T) nodeIndex {
	if rl := len(arena.recycled); rl > 0 {
		idx := arena.recycled[rl-1]
		arena.recycled = arena.recycled[:rl-1]
		node := &arena.nodes[idx]
		node.prev, node.next = nilIndex, nilIndex
		node.inUse = true
		node.value = v
		return idx
	}
	if uint64(len(arena.nodes)) >= maxArenaNodeIndices {
		panic("[linked-list] node arena indices exhausted")
	}
	arena.nodes = append(arena.nodes, arenaNode[T]{
		inUse: true,
		value: v,
	})
	return nodeIndex(len(arena.nodes) - 1)
}

// release recycles the slot and drops the value reference to avoid memory leaks.
func (arena *nodeArena[T]) release(idx nodeIndex) {
	node := &arena.nodes[idx]
	var zero T
	node.value = zero
	node.prev, node.next = nilIndex, nilIndex
	node.inUse = false
	node.gen++
	arena.recycled = append(arena.recycled, idx)
}

func (arena *nodeArena[T]) node(idx nodeIndex) *arenaNode[T] {
	return &arena.nodes[idx]
}

// lookup checks whether the (idx, gen) pair still refers to an in use slot.
func (arena *nodeArena[T]) lookup(idx nodeIndex, gen uint32) (*arenaNode[T], bool) {
	if idx == nilIndex || int(idx) >= len(arena.nodes) {
		return nil, false
	}
	node := &arena.nodes[idx]
	if !node.inUse || node.gen != gen {
		return nil, false
	}
	return node, true
}

func (arena *nodeArena[T]) slotLen() int {
	return len(arena.nodes) - 1
}

func (arena *nodeArena[T]) recycledLen() int {
	return len(arena.recycled)
}

// liveLen is the number of in use slots.
func (arena *nodeArena[T]) liveLen() int {
	return arena.slotLen() - arena.recycledLen()
}
