package list

// Note that the doubly linked list is not thread safe.
// The callers have to serialize the access to a single list.

// ReadOnlyLinkedList is the immutable view of a doubly linked list.
// The node handles returned by it grant read access only.
type ReadOnlyLinkedList[T comparable] interface {
	// NodeCount returns the number of nodes in O(1).
	NodeCount() int64
	// At returns the value at 0-based index or ErrLinkedListIndexOutOfRange.
	At(index int64) (T, error)
	// GetNode returns the node at 0-based index or ErrLinkedListIndexOutOfRange.
	GetNode(index int64) (ReadOnlyNodeElement[T], error)
	// Find returns the first node whose value equals v.
	Find(v T) (ReadOnlyNodeElement[T], bool)
	// FindAll appends every node whose value equals v to out in forward order.
	FindAll(out []ReadOnlyNodeElement[T], v T) []ReadOnlyNodeElement[T]
	Head() ReadOnlyNodeElement[T]
	Tail() ReadOnlyNodeElement[T]
	// Values returns the values in forward order.
	Values() []T
	ForEach(fn func(idx int64, e ReadOnlyNodeElement[T]) error) error
	ReverseForEach(fn func(idx int64, e ReadOnlyNodeElement[T]))
	Equal(other LinkedList[T]) bool
}

// LinkedList is the doubly linked list interface.
type LinkedList[T comparable] interface {
	NodeCount() int64
	// ReadOnly returns the immutable view sharing the same nodes.
	ReadOnly() ReadOnlyLinkedList[T]

	// Clone returns a deep copy. The copy shares no node with l.
	Clone() LinkedList[T]
	// CopyFrom replaces the content of l by a deep copy of src.
	// Copying from itself is a no-op.
	CopyFrom(src LinkedList[T])
	// Equal reports whether both lists have the same count and
	// equal values at every position in forward order.
	Equal(other LinkedList[T]) bool

	// AddHead inserts a new node with value v at the front of l and returns it.
	AddHead(v T) NodeElement[T]
	// AddTail inserts a new node with value v at the back of l and returns it.
	AddTail(v T) NodeElement[T]
	// AddNodesHead inserts values at the front of l, keeping their order.
	AddNodesHead(values ...T)
	// AddNodesTail inserts values at the back of l, keeping their order.
	AddNodesTail(values ...T)
	// InsertAfter inserts a value v as a new node immediately after dstE and returns it.
	// If dstE is not a node of l, the value v will not be inserted.
	InsertAfter(dstE NodeElement[T], v T) NodeElement[T]
	// InsertBefore inserts a value v as a new node immediately before dstE and returns it.
	// If dstE is not a node of l, the value v will not be inserted.
	InsertBefore(dstE NodeElement[T], v T) NodeElement[T]
	// InsertAt inserts v so that it becomes the node at index.
	// The valid range is [0, NodeCount()], otherwise ErrLinkedListIndexOutOfRange.
	InsertAt(v T, index int64) (NodeElement[T], error)
	// PushFrontList inserts a copy of the values of srcList at the front of l.
	PushFrontList(srcList LinkedList[T])
	// PushBackList inserts a copy of the values of srcList at the back of l.
	PushBackList(srcList LinkedList[T])

	RemoveHead() bool
	RemoveTail() bool
	// Remove removes every node whose value equals v and returns the removed count.
	Remove(v T) int64
	// RemoveAt removes the node at index. Out of range index returns false,
	// unlike InsertAt it is not an error.
	RemoveAt(index int64) bool
	// RemoveNode removes targetE if it is a node of l.
	RemoveNode(targetE NodeElement[T]) bool
	Clear()

	At(index int64) (T, error)
	SetAt(index int64, v T) error
	GetNode(index int64) (NodeElement[T], error)
	Find(v T) (NodeElement[T], bool)
	FindAll(out []NodeElement[T], v T) []NodeElement[T]
	// Head returns the first node of l or the absent node if l is empty.
	Head() NodeElement[T]
	// Tail returns the last node of l or the absent node if l is empty.
	Tail() NodeElement[T]
	Values() []T

	// ForEach traverses l and executes fn for each node.
	// If fn returns an error, the traversal stops and returns the error.
	ForEach(fn func(idx int64, e NodeElement[T]) error) error
	// ReverseForEach iterates l in reverse order, calling fn for each node.
	ReverseForEach(fn func(idx int64, e NodeElement[T]))
	PrintForward() error
	PrintReverse() error
	// PrintForwardRecursive prints from node to the tail.
	PrintForwardRecursive(node ReadOnlyNodeElement[T]) error
	// PrintReverseRecursive prints from node to the head.
	PrintReverseRecursive(node ReadOnlyNodeElement[T]) error

	// MoveToFront moves targetE to the front of l.
	MoveToFront(targetE NodeElement[T]) bool
	// MoveToBack moves targetE to the back of l.
	MoveToBack(targetE NodeElement[T]) bool
	// MoveBefore moves srcE in front of dstE.
	MoveBefore(srcE, dstE NodeElement[T]) bool
	// MoveAfter moves srcE next to dstE.
	MoveAfter(srcE, dstE NodeElement[T]) bool
}
