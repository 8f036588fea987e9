package animation

import "github.com/google/uuid"

// NodeID identifies a node inside a tree. uuid.Nil means "absent".
type NodeID = uuid.UUID

// NilID is the absent node id
var NilID = uuid.Nil

// NewNodeID returns a fresh random node id
func NewNodeID() NodeID {
	return uuid.New()
}
