package list

// The doubly linked list stores its nodes inside an arena and links
// them by the slot indices instead of pointers.
//
//	head                                              tail
//	  |                                                 |
//	+------+  next  +------+  next  +------+  next  +------+
//	|  i1  |------->|  i4  |------->|  i2  |------->|  i7  |---> 0
//	|      |<-------|      |<-------|      |<-------|      |
//	+------+  prev  +------+  prev  +------+  prev  +------+
//	   |
//	   +---> prev 0
//
// The slot 0 is the "none" sentinel, so the head's prev and the tail's
// next are both 0. The list exclusively owns all the slots, the handles
// (NodeElement) are only references validated by the slot generation.
//
// Invariants:
//  1. len == 0 iff head == 0 and tail == 0.
//  2. Following next from head reaches tail after len-1 steps.
//  3. Following prev from tail reaches head after len-1 steps.
//  4. node.next.prev == node and node.prev.next == node for internal nodes.

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/benz9527/xlist/lib/infra"
)

var (
	_ LinkedList[struct{}]         = (*doublyLinkedList[struct{}])(nil) // Type check assertion
	_ ReadOnlyLinkedList[struct{}] = (*readOnlyLinkedList[struct{}])(nil)
)

var (
	ErrLinkedListIndexOutOfRange = errors.New("[linked-list] index out of range")
)

type doublyLinkedList[T comparable] struct {
	arena *nodeArena[T]
	opt   *linkedListOption
	head  nodeIndex
	tail  nodeIndex
	len   int64
}

func NewLinkedList[T comparable](opts ...LinkedListOption) LinkedList[T] {
	opt := &linkedListOption{}
	for _, o := range opts {
		o(opt)
	}
	opt.validate()
	return newDoublyLinkedList[T](opt, opt.arenaCap)
}

func newDoublyLinkedList[T comparable](opt *linkedListOption, arenaCap int) *doublyLinkedList[T] {
	return &doublyLinkedList[T]{
		arena: newNodeArena[T](arenaCap),
		opt:   opt,
	}
}

func (l *doublyLinkedList[T]) node(idx nodeIndex) *arenaNode[T] {
	return l.arena.node(idx)
}

// checkElement resolves the handle into a slot index if it is a node of l.
func (l *doublyLinkedList[T]) checkElement(targetE NodeElement[T]) (nodeIndex, bool) {
	if targetE.listRef != l {
		return nilIndex, false
	}
	if _, ok := targetE.resolve(); !ok {
		return nilIndex, false
	}
	return targetE.idx, true
}

func (l *doublyLinkedList[T]) checkIndex(op string, index, bound int64) error {
	if index >= 0 && index < bound {
		return nil
	}
	l.opt.stats.IncreaseIndexOutOfRange(op)
	l.opt.logger.Debug("[linked-list] index out of range",
		zap.String("op", op),
		zap.Int64("index", index),
		zap.Int64("len", l.len),
	)
	return infra.WrapErrorStackWithMessage(
		ErrLinkedListIndexOutOfRange,
		fmt.Sprintf("[linked-list] %s index %d with len %d", op, index, l.len),
	)
}

// detach unlinks the node from its neighbours without releasing it.
func (l *doublyLinkedList[T]) detach(idx nodeIndex) {
	node := l.node(idx)
	prev, next := node.prev, node.next
	if prev != nilIndex {
		l.node(prev).next = next
	} else {
		l.head = next
	}
	if next != nilIndex {
		l.node(next).prev = prev
	} else {
		l.tail = prev
	}
	node.prev, node.next = nilIndex, nilIndex
}

// attachAfter links a detached node right after at.
// If at is the sentinel, the node becomes the new head.
func (l *doublyLinkedList[T]) attachAfter(idx, at nodeIndex) {
	node := l.node(idx)
	if at == nilIndex {
		node.prev, node.next = nilIndex, l.head
		if l.head != nilIndex {
			l.node(l.head).prev = idx
		} else {
			// empty list, the new one is the first one and the last one
			l.tail = idx
		}
		l.head = idx
		return
	}

	atNode := l.node(at)
	next := atNode.next
	node.prev, node.next = at, next
	atNode.next = idx
	if next != nilIndex {
		l.node(next).prev = idx
	} else {
		l.tail = idx
	}
}

func (l *doublyLinkedList[T]) insertAfter(at nodeIndex, v T) nodeIndex {
	idx := l.arena.allocate(v)
	l.attachAfter(idx, at)
	l.len++
	return idx
}

func (l *doublyLinkedList[T]) unlink(idx nodeIndex) {
	l.detach(idx)
	l.arena.release(idx)
	l.len--
	if l.len == 0 {
		l.head, l.tail = nilIndex, nilIndex
	}
}

// nodeAt walks from the nearer end. The index must be valid.
func (l *doublyLinkedList[T]) nodeAt(index int64) nodeIndex {
	if index < l.len/2 {
		iterator := l.head
		for i := int64(0); i < index; i++ {
			iterator = l.node(iterator).next
		}
		return iterator
	}
	iterator := l.tail
	for i := l.len - 1; i > index; i-- {
		iterator = l.node(iterator).prev
	}
	return iterator
}

// findFrom returns the first node equals to v from start (inclusive) to the tail.
func (l *doublyLinkedList[T]) findFrom(start nodeIndex, v T) nodeIndex {
	for iterator := start; iterator != nilIndex; iterator = l.node(iterator).next {
		if l.node(iterator).value == v {
			return iterator
		}
	}
	return nilIndex
}

func (l *doublyLinkedList[T]) NodeCount() int64 {
	return l.len
}

func (l *doublyLinkedList[T]) ReadOnly() ReadOnlyLinkedList[T] {
	return &readOnlyLinkedList[T]{l: l}
}

func (l *doublyLinkedList[T]) Clone() LinkedList[T] {
	dst := newDoublyLinkedList[T](l.opt, int(l.len))
	for iterator := l.head; iterator != nilIndex; iterator = l.node(iterator).next {
		dst.insertAfter(dst.tail, l.node(iterator).value)
	}
	l.opt.stats.RecordInserted(dst.len)
	return dst
}

// CopyFrom builds the copy aside then swaps it in, so that the src nodes
// are never released before they have been copied.
func (l *doublyLinkedList[T]) CopyFrom(src LinkedList[T]) {
	if src == nil {
		return
	}
	if dl, ok := src.(*doublyLinkedList[T]); ok && dl == l {
		return
	}

	tmp := newDoublyLinkedList[T](l.opt, int(src.NodeCount()))
	_ = src.ForEach(func(_ int64, e NodeElement[T]) error {
		tmp.insertAfter(tmp.tail, e.Value())
		return nil
	})
	removed := l.len
	l.arena, l.head, l.tail, l.len = tmp.arena, tmp.head, tmp.tail, tmp.len
	l.opt.stats.RecordRemoved(removed)
	l.opt.stats.RecordInserted(l.len)
}

func (l *doublyLinkedList[T]) Equal(other LinkedList[T]) bool {
	if other == nil {
		return false
	}
	if l.len != other.NodeCount() {
		return false
	}

	dl, ok := other.(*doublyLinkedList[T])
	if !ok {
		values := other.Values()
		for i, iterator := 0, l.head; iterator != nilIndex; i, iterator = i+1, l.node(iterator).next {
			if l.node(iterator).value != values[i] {
				return false
			}
		}
		return true
	}
	if dl == l {
		return true
	}

	lItr, rItr := l.head, dl.head
	for lItr != nilIndex && rItr != nilIndex {
		if l.node(lItr).value != dl.node(rItr).value {
			return false
		}
		lItr, rItr = l.node(lItr).next, dl.node(rItr).next
	}
	return true
}

func (l *doublyLinkedList[T]) AddHead(v T) NodeElement[T] {
	idx := l.insertAfter(nilIndex, v)
	l.opt.stats.RecordInserted(1)
	return newNodeElement(l, idx)
}

func (l *doublyLinkedList[T]) AddTail(v T) NodeElement[T] {
	idx := l.insertAfter(l.tail, v)
	l.opt.stats.RecordInserted(1)
	return newNodeElement(l, idx)
}

// AddNodesHead inserts from the end of values backward,
// so the forward traversal yields values in the input order.
func (l *doublyLinkedList[T]) AddNodesHead(values ...T) {
	for i := len(values) - 1; i >= 0; i-- {
		l.insertAfter(nilIndex, values[i])
	}
	l.opt.stats.RecordInserted(int64(len(values)))
}

func (l *doublyLinkedList[T]) AddNodesTail(values ...T) {
	for i := 0; i < len(values); i++ {
		l.insertAfter(l.tail, values[i])
	}
	l.opt.stats.RecordInserted(int64(len(values)))
}

func (l *doublyLinkedList[T]) InsertAfter(dstE NodeElement[T], v T) NodeElement[T] {
	at, ok := l.checkElement(dstE)
	if !ok {
		l.opt.logger.Debug("[linked-list] insert after a node not in list, ignored")
		return NodeElement[T]{}
	}
	if at == l.tail {
		return l.AddTail(v)
	}
	idx := l.insertAfter(at, v)
	l.opt.stats.RecordInserted(1)
	return newNodeElement(l, idx)
}

func (l *doublyLinkedList[T]) InsertBefore(dstE NodeElement[T], v T) NodeElement[T] {
	at, ok := l.checkElement(dstE)
	if !ok {
		l.opt.logger.Debug("[linked-list] insert before a node not in list, ignored")
		return NodeElement[T]{}
	}
	if at == l.head {
		return l.AddHead(v)
	}
	idx := l.insertAfter(l.node(at).prev, v)
	l.opt.stats.RecordInserted(1)
	return newNodeElement(l, idx)
}

// InsertAt validates the index before any structural change.
func (l *doublyLinkedList[T]) InsertAt(v T, index int64) (NodeElement[T], error) {
	if err := l.checkIndex("InsertAt", index, l.len+1); err != nil {
		return NodeElement[T]{}, err
	}
	switch index {
	case 0:
		return l.AddHead(v), nil
	case l.len:
		return l.AddTail(v), nil
	default:
	}
	idx := l.insertAfter(l.nodeAt(index-1), v)
	l.opt.stats.RecordInserted(1)
	return newNodeElement(l, idx), nil
}

// PushFrontList copies the values first, so that l is allowed to be the srcList.
func (l *doublyLinkedList[T]) PushFrontList(srcList LinkedList[T]) {
	if srcList == nil || srcList.NodeCount() <= 0 {
		return
	}
	l.AddNodesHead(srcList.Values()...)
}

func (l *doublyLinkedList[T]) PushBackList(srcList LinkedList[T]) {
	if srcList == nil || srcList.NodeCount() <= 0 {
		return
	}
	l.AddNodesTail(srcList.Values()...)
}

func (l *doublyLinkedList[T]) RemoveHead() bool {
	if l.head == nilIndex {
		return false
	}
	l.unlink(l.head)
	l.opt.stats.RecordRemoved(1)
	return true
}

func (l *doublyLinkedList[T]) RemoveTail() bool {
	if l.tail == nilIndex {
		return false
	}
	l.unlink(l.tail)
	l.opt.stats.RecordRemoved(1)
	return true
}

func (l *doublyLinkedList[T]) Remove(v T) int64 {
	removed := int64(0)
	for iterator := l.head; iterator != nilIndex; {
		// The slot is reset after unlink, fetch next first.
		next := l.node(iterator).next
		if l.node(iterator).value == v {
			l.unlink(iterator)
			removed++
		}
		iterator = next
	}
	l.opt.stats.RecordRemoved(removed)
	return removed
}

func (l *doublyLinkedList[T]) RemoveAt(index int64) bool {
	if index < 0 || index >= l.len {
		l.opt.logger.Debug("[linked-list] remove at index out of range, ignored",
			zap.Int64("index", index),
			zap.Int64("len", l.len),
		)
		return false
	}
	l.unlink(l.nodeAt(index))
	l.opt.stats.RecordRemoved(1)
	return true
}

func (l *doublyLinkedList[T]) RemoveNode(targetE NodeElement[T]) bool {
	idx, ok := l.checkElement(targetE)
	if !ok {
		return false
	}
	l.unlink(idx)
	l.opt.stats.RecordRemoved(1)
	return true
}

func (l *doublyLinkedList[T]) Clear() {
	removed := l.len
	for iterator := l.head; iterator != nilIndex; {
		next := l.node(iterator).next
		l.arena.release(iterator)
		iterator = next
	}
	l.head, l.tail, l.len = nilIndex, nilIndex, 0
	l.opt.stats.RecordRemoved(removed)
}

func (l *doublyLinkedList[T]) At(index int64) (T, error) {
	if err := l.checkIndex("At", index, l.len); err != nil {
		var zero T
		return zero, err
	}
	return l.node(l.nodeAt(index)).value, nil
}

func (l *doublyLinkedList[T]) SetAt(index int64, v T) error {
	if err := l.checkIndex("SetAt", index, l.len); err != nil {
		return err
	}
	l.node(l.nodeAt(index)).value = v
	return nil
}

func (l *doublyLinkedList[T]) GetNode(index int64) (NodeElement[T], error) {
	if err := l.checkIndex("GetNode", index, l.len); err != nil {
		return NodeElement[T]{}, err
	}
	return newNodeElement(l, l.nodeAt(index)), nil
}

func (l *doublyLinkedList[T]) Find(v T) (NodeElement[T], bool) {
	idx := l.findFrom(l.head, v)
	if idx == nilIndex {
		return NodeElement[T]{}, false
	}
	return newNodeElement(l, idx), true
}

func (l *doublyLinkedList[T]) FindAll(out []NodeElement[T], v T) []NodeElement[T] {
	for idx := l.findFrom(l.head, v); idx != nilIndex; idx = l.findFrom(l.node(idx).next, v) {
		out = append(out, newNodeElement(l, idx))
	}
	return out
}

func (l *doublyLinkedList[T]) Head() NodeElement[T] {
	return newNodeElement(l, l.head)
}

func (l *doublyLinkedList[T]) Tail() NodeElement[T] {
	return newNodeElement(l, l.tail)
}

func (l *doublyLinkedList[T]) Values() []T {
	values := make([]T, 0, l.len)
	for iterator := l.head; iterator != nilIndex; iterator = l.node(iterator).next {
		values = append(values, l.node(iterator).value)
	}
	return values
}

// ForEach allows removing the visited node while iterating.
func (l *doublyLinkedList[T]) ForEach(fn func(idx int64, e NodeElement[T]) error) error {
	if fn == nil {
		return nil
	}
	var (
		iterator       = l.head
		idx      int64 = 0
	)
	for iterator != nilIndex {
		next := l.node(iterator).next
		if err := fn(idx, newNodeElement(l, iterator)); err != nil {
			return err
		}
		iterator = next
		idx++
	}
	return nil
}

// ReverseForEach allows removing the visited node while iterating.
func (l *doublyLinkedList[T]) ReverseForEach(fn func(idx int64, e NodeElement[T])) {
	if fn == nil {
		return
	}
	var (
		iterator       = l.tail
		idx      int64 = 0
	)
	for iterator != nilIndex {
		prev := l.node(iterator).prev
		fn(idx, newNodeElement(l, iterator))
		iterator = prev
		idx++
	}
}

func (l *doublyLinkedList[T]) MoveToFront(targetE NodeElement[T]) bool {
	src, ok := l.checkElement(targetE)
	if !ok || src == l.head {
		return false
	}
	l.detach(src)
	l.attachAfter(src, nilIndex)
	return true
}

func (l *doublyLinkedList[T]) MoveToBack(targetE NodeElement[T]) bool {
	src, ok := l.checkElement(targetE)
	if !ok || src == l.tail {
		return false
	}
	l.detach(src)
	l.attachAfter(src, l.tail)
	return true
}

// MoveBefore moves srcE just prev to dstE.
func (l *doublyLinkedList[T]) MoveBefore(srcE, dstE NodeElement[T]) bool {
	src, dst, ok := l.checkMove(srcE, dstE)
	if !ok || l.node(dst).prev == src {
		return false
	}
	l.detach(src)
	l.attachAfter(src, l.node(dst).prev)
	return true
}

// MoveAfter moves srcE just next to dstE.
func (l *doublyLinkedList[T]) MoveAfter(srcE, dstE NodeElement[T]) bool {
	src, dst, ok := l.checkMove(srcE, dstE)
	if !ok || l.node(dst).next == src {
		return false
	}
	l.detach(src)
	l.attachAfter(src, dst)
	return true
}

func (l *doublyLinkedList[T]) checkMove(srcE, dstE NodeElement[T]) (src, dst nodeIndex, ok bool) {
	if src, ok = l.checkElement(srcE); !ok {
		return nilIndex, nilIndex, false
	}
	if dst, ok = l.checkElement(dstE); !ok || src == dst {
		return nilIndex, nilIndex, false
	}
	return src, dst, true
}
