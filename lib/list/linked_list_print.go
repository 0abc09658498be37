package list

import (
	"fmt"
)

// PrintForward writes every value followed by a newline, from head to tail.
func (l *doublyLinkedList[T]) PrintForward() error {
	return l.printChain(l.head, false)
}

// PrintReverse writes every value followed by a newline, from tail to head.
func (l *doublyLinkedList[T]) PrintReverse() error {
	return l.printChain(l.tail, true)
}

// PrintForwardRecursive is expressed by iteration because Go does not
// eliminate the tail calls. An absent node or a node of another list
// prints nothing.
func (l *doublyLinkedList[T]) PrintForwardRecursive(node ReadOnlyNodeElement[T]) error {
	start, ok := l.checkElement(node.e)
	if !ok {
		return nil
	}
	return l.printChain(start, false)
}

func (l *doublyLinkedList[T]) PrintReverseRecursive(node ReadOnlyNodeElement[T]) error {
	start, ok := l.checkElement(node.e)
	if !ok {
		return nil
	}
	return l.printChain(start, true)
}

func (l *doublyLinkedList[T]) printChain(start nodeIndex, backward bool) error {
	for iterator := start; iterator != nilIndex; {
		node := l.node(iterator)
		if _, err := fmt.Fprintln(l.opt.printer, node.value); err != nil {
			return err
		}
		if backward {
			iterator = node.prev
		} else {
			iterator = node.next
		}
	}
	return nil
}
