// Package chain provides a singly linked list with a cached tail.
package chain

import (
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/cbehopkins/linktree"
)

// Link is a single element of a Chain.
type Link[T comparable] struct {
	payload T
	next    *Link[T]
}

// Payload returns the value held by the link.
func (l *Link[T]) Payload() T {
	return l.payload
}

// Next returns the following link, or nil for the tail.
func (l *Link[T]) Next() *Link[T] {
	return l.next
}

func (l *Link[T]) String() string {
	return fmt.Sprintf("<Link %v>", l.payload)
}

// Chain is a singly linked list of links.
// The zero value is an empty chain ready to use.
type Chain[T comparable] struct {
	head   *Link[T]
	tail   *Link[T]
	length int
}

// New creates an empty chain.
func New[T comparable]() *Chain[T] {
	return &Chain[T]{}
}

// Len returns the number of links in the chain.
func (c *Chain[T]) Len() int {
	return c.length
}

// Head returns the first link, or nil if the chain is empty.
func (c *Chain[T]) Head() *Link[T] {
	return c.head
}

// Tail returns the last link, or nil if the chain is empty.
func (c *Chain[T]) Tail() *Link[T] {
	return c.tail
}

// Append adds a new link holding payload to the end of the chain.
func (c *Chain[T]) Append(payload T) {
	link := &Link[T]{payload: payload}
	if c.head == nil {
		c.head = link
	} else {
		c.tail.next = link
	}
	c.tail = link
	c.length++
}

// RemoveAt removes the link at index.
// An index outside [0, Len()) returns an error wrapping linktree.ErrIndexOutOfRange
// and leaves the chain untouched.
func (c *Chain[T]) RemoveAt(index int) error {
	if index < 0 || index >= c.length {
		return fmt.Errorf("remove %d from chain of %d: %w", index, c.length, linktree.ErrIndexOutOfRange)
	}

	var prev *Link[T]
	link := c.head
	for i := 0; i < index; i++ {
		prev = link
		link = link.next
	}

	if prev == nil {
		c.head = link.next
	} else {
		prev.next = link.next
	}
	if link == c.tail {
		c.tail = prev
	}
	link.next = nil
	c.length--
	return nil
}

// Contains reports whether any link holds a payload equal to payload.
func (c *Chain[T]) Contains(payload T) bool {
	for link := c.head; link != nil; link = link.next {
		if link.payload == payload {
			return true
		}
	}
	return false
}

// LinkAt returns the link at index, or nil if there is no such position.
func (c *Chain[T]) LinkAt(index int) *Link[T] {
	if index < 0 {
		return nil
	}
	link := c.head
	for i := 0; link != nil && i < index; i++ {
		link = link.next
	}
	return link
}

// Get returns the payload at index.
func (c *Chain[T]) Get(index int) (T, error) {
	link := c.LinkAt(index)
	if link == nil {
		var zero T
		return zero, fmt.Errorf("get %d from chain of %d: %w", index, c.length, linktree.ErrIndexOutOfRange)
	}
	return link.payload, nil
}

// All returns an iterator over the payloads from head to tail.
// The chain must not be modified while iterating.
func (c *Chain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for link := c.head; link != nil; link = link.next {
			if !yield(link.payload) {
				return
			}
		}
	}
}

// Values returns the payloads as a slice, head first.
func (c *Chain[T]) Values() []T {
	return slices.Collect(c.All())
}

// Print writes each payload to w on its own line.
func (c *Chain[T]) Print(w io.Writer) error {
	for payload := range c.All() {
		if _, err := fmt.Fprintln(w, payload); err != nil {
			return err
		}
	}
	return nil
}
