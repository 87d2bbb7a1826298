package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

// Init initializes the process-wide snowflake node. Node ID must be unique
// across instances (0-1023).
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	node = n
	return nil
}

// NextID generates a new unique snowflake ID.
func NextID() int64 {
	return node.Generate().Int64()
}

// NextString generates a new unique snowflake ID in its base-10 string form.
// Used for novel identifiers, which are strings at the API boundary.
func NextString() string {
	return node.Generate().String()
}
