package animation

import "github.com/rotisserie/eris"

var (
	// ErrDuplicateNode is returned when a node id is already present in the tree
	ErrDuplicateNode = eris.New("node id already exists in tree")

	// ErrNodeNotFound is returned (or panicked with) when an id does not resolve
	ErrNodeNotFound = eris.New("node not found in tree")

	// ErrUnsupportedNode is returned when a node variant cannot be evaluated by the tree
	ErrUnsupportedNode = eris.New("unsupported node variant")

	// ErrTreeFrozen is returned when a frozen tree is mutated
	ErrTreeFrozen = eris.New("tree is frozen")

	// ErrCycle is panicked with when evaluation loops through redirects
	ErrCycle = eris.New("redirect cycle in tree")

	// ErrEmptyComposite is returned by Validate for an all node without children
	ErrEmptyComposite = eris.New("all node has no children")

	// ErrEvaluation wraps the message of a failing node
	ErrEvaluation = eris.New("animation evaluation failed")
)
