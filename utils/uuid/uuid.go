package uuid

import (
	"strings"

	"github.com/bwmarrin/snowflake"
	guuid "github.com/google/uuid"
)

// SnowNode 雪花id生成器，所有服务端生成的文档id都从这里出
type SnowNode struct {
	node *snowflake.Node
}

func NewNode(nodeId int64) *SnowNode {
	node, err := snowflake.NewNode(nodeId)
	if err != nil {
		panic(err)
	}
	return &SnowNode{node: node}
}

// GenSnowID 生成一个全局唯一的int64 id
func (s *SnowNode) GenSnowID() int64 {
	return s.node.Generate().Int64()
}

// GenUUID16 生成16位的请求id
func GenUUID16() string {
	u := strings.ReplaceAll(guuid.NewString(), "-", "")
	return u[:16]
}
