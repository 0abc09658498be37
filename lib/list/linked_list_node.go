package list

// NodeElement is the handle of a node owned by a linked list.
// The zero value represents the absent node.
// A handle turns stale (IsNil returns true) once its node has been
// removed from the list, even if the arena slot is reused later.
type NodeElement[T comparable] struct {
	listRef  *doublyLinkedList[T]
	arenaRef *nodeArena[T] // The list swaps its arena on copy assignment.
	idx      nodeIndex
	gen      uint32
}

func newNodeElement[T comparable](l *doublyLinkedList[T], idx nodeIndex) NodeElement[T] {
	if idx == nilIndex {
		return NodeElement[T]{}
	}
	return NodeElement[T]{
		listRef:  l,
		arenaRef: l.arena,
		idx:      idx,
		gen:      l.arena.node(idx).gen,
	}
}

func (e NodeElement[T]) resolve() (*arenaNode[T], bool) {
	if e.listRef == nil || e.arenaRef == nil || e.listRef.arena != e.arenaRef {
		return nil, false
	}
	return e.arenaRef.lookup(e.idx, e.gen)
}

func (e NodeElement[T]) IsNil() bool {
	_, ok := e.resolve()
	return !ok
}

func (e NodeElement[T]) HasNext() bool {
	node, ok := e.resolve()
	return ok && node.next != nilIndex
}

func (e NodeElement[T]) HasPrev() bool {
	node, ok := e.resolve()
	return ok && node.prev != nilIndex
}

func (e NodeElement[T]) Next() NodeElement[T] {
	node, ok := e.resolve()
	if !ok {
		return NodeElement[T]{}
	}
	return newNodeElement(e.listRef, node.next)
}

func (e NodeElement[T]) Prev() NodeElement[T] {
	node, ok := e.resolve()
	if !ok {
		return NodeElement[T]{}
	}
	return newNodeElement(e.listRef, node.prev)
}

// Value returns the zero value of T if the node is absent.
func (e NodeElement[T]) Value() T {
	node, ok := e.resolve()
	if !ok {
		var zero T
		return zero
	}
	return node.value
}

// SetValue replaces the value in place and reports whether the node is alive.
func (e NodeElement[T]) SetValue(v T) bool {
	node, ok := e.resolve()
	if !ok {
		return false
	}
	node.value = v
	return true
}

func (e NodeElement[T]) ReadOnly() ReadOnlyNodeElement[T] {
	return ReadOnlyNodeElement[T]{e: e}
}

// ReadOnlyNodeElement is the immutable view of a node handle.
type ReadOnlyNodeElement[T comparable] struct {
	e NodeElement[T]
}

func (e ReadOnlyNodeElement[T]) IsNil() bool {
	return e.e.IsNil()
}

func (e ReadOnlyNodeElement[T]) HasNext() bool {
	return e.e.HasNext()
}

func (e ReadOnlyNodeElement[T]) HasPrev() bool {
	return e.e.HasPrev()
}

func (e ReadOnlyNodeElement[T]) Next() ReadOnlyNodeElement[T] {
	return e.e.Next().ReadOnly()
}

func (e ReadOnlyNodeElement[T]) Prev() ReadOnlyNodeElement[T] {
	return e.e.Prev().ReadOnly()
}

func (e ReadOnlyNodeElement[T]) Value() T {
	return e.e.Value()
}
