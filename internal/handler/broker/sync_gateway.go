package broker

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"tradevault/conf"
	"tradevault/pkg/jwt"
	"tradevault/pkg/logger"
)

// 推给客户端的进度消息
type syncEvent struct {
	Stage  string      `json:"stage"` // fetching | uploading | done | failed
	Detail interface{} `json:"detail,omitempty"`
	Time   int64       `json:"time"`
}

// SyncGateway 同步进度的websocket网关，按用户维护连接集合。
// 实现service.SyncNotifier
type SyncGateway struct {
	mu       sync.RWMutex
	conns    map[int64]map[*wsConn]struct{}
	upgrader websocket.Upgrader
}

type wsConn struct {
	conn *websocket.Conn
	send chan []byte
}

func NewSyncGateway() *SyncGateway {
	return &SyncGateway{
		conns: make(map[int64]map[*wsConn]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true }, // 允许跨域
		},
	}
}

// ServeWS 升级连接。ws握手带不了Authorization头，token走query参数
func (g *SyncGateway) ServeWS(ctx *gin.Context) {
	tokenStr := ctx.Query("token")
	claims, err := jwt.ParseToken(tokenStr, conf.AppConfig.Jwt.Secret)
	if err != nil || claims == nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}
	userId := claims.UserId

	conn, err := g.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		logger.Warnf("ws upgrade error: %v", err)
		return
	}
	client := &wsConn{conn: conn, send: make(chan []byte, 16)}

	g.mu.Lock()
	if g.conns[userId] == nil {
		g.conns[userId] = make(map[*wsConn]struct{})
	}
	g.conns[userId][client] = struct{}{}
	g.mu.Unlock()

	go client.writePump()
	// 只收进度不收指令，读循环只为感知断连
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	g.mu.Lock()
	delete(g.conns[userId], client)
	if len(g.conns[userId]) == 0 {
		delete(g.conns, userId)
	}
	g.mu.Unlock()
	close(client.send)
	conn.Close()
}

// NotifySync 把进度推给该用户的所有连接，没有连接就静默丢弃
func (g *SyncGateway) NotifySync(userId int64, stage string, detail interface{}) {
	g.mu.RLock()
	clients := g.conns[userId]
	if len(clients) == 0 {
		g.mu.RUnlock()
		return
	}
	payload, err := json.Marshal(syncEvent{Stage: stage, Detail: detail, Time: time.Now().UnixMilli()})
	if err != nil {
		g.mu.RUnlock()
		return
	}
	for c := range clients {
		select {
		case c.send <- payload:
		default:
			// 队列满就丢掉，进度消息不值得阻塞同步流程
		}
	}
	g.mu.RUnlock()
}

func (c *wsConn) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}
