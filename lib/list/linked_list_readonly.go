package list

// readOnlyLinkedList shares the implementation with the mutable list,
// it only narrows the node handles into read only views.
type readOnlyLinkedList[T comparable] struct {
	l *doublyLinkedList[T]
}

func (ro *readOnlyLinkedList[T]) NodeCount() int64 {
	return ro.l.NodeCount()
}

func (ro *readOnlyLinkedList[T]) At(index int64) (T, error) {
	return ro.l.At(index)
}

func (ro *readOnlyLinkedList[T]) GetNode(index int64) (ReadOnlyNodeElement[T], error) {
	e, err := ro.l.GetNode(index)
	return e.ReadOnly(), err
}

func (ro *readOnlyLinkedList[T]) Find(v T) (ReadOnlyNodeElement[T], bool) {
	e, ok := ro.l.Find(v)
	return e.ReadOnly(), ok
}

func (ro *readOnlyLinkedList[T]) FindAll(out []ReadOnlyNodeElement[T], v T) []ReadOnlyNodeElement[T] {
	l := ro.l
	for idx := l.findFrom(l.head, v); idx != nilIndex; idx = l.findFrom(l.node(idx).next, v) {
		out = append(out, newNodeElement(l, idx).ReadOnly())
	}
	return out
}

func (ro *readOnlyLinkedList[T]) Head() ReadOnlyNodeElement[T] {
	return ro.l.Head().ReadOnly()
}

func (ro *readOnlyLinkedList[T]) Tail() ReadOnlyNodeElement[T] {
	return ro.l.Tail().ReadOnly()
}

func (ro *readOnlyLinkedList[T]) Values() []T {
	return ro.l.Values()
}

func (ro *readOnlyLinkedList[T]) ForEach(fn func(idx int64, e ReadOnlyNodeElement[T]) error) error {
	if fn == nil {
		return nil
	}
	return ro.l.ForEach(func(idx int64, e NodeElement[T]) error {
		return fn(idx, e.ReadOnly())
	})
}

func (ro *readOnlyLinkedList[T]) ReverseForEach(fn func(idx int64, e ReadOnlyNodeElement[T])) {
	if fn == nil {
		return
	}
	ro.l.ReverseForEach(func(idx int64, e NodeElement[T]) {
		fn(idx, e.ReadOnly())
	})
}

func (ro *readOnlyLinkedList[T]) Equal(other LinkedList[T]) bool {
	return ro.l.Equal(other)
}
