// Package linktree holds the pieces shared by the chain and tree containers.
package linktree

import "errors"

var (
	// ErrIndexOutOfRange is returned when a position does not exist in a chain.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNilNode is returned when a nil node is used where a node is required.
	ErrNilNode = errors.New("nil node")
	// ErrAlreadyAttached is returned when a tree node would end up with two parents
	// or become its own ancestor.
	ErrAlreadyAttached = errors.New("node already attached to a tree")
)
