package idutil

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func init() {
	var err error
	node, err = snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
}

// New returns a unique id of the form <prefix>_<snowflake>. The snowflake part
// is time ordered, so ids generated later sort after earlier ones.
func New(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, strings.ToLower(node.Generate().Base36()))
}
