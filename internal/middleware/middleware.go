package middleware

import (
	"github.com/gin-gonic/gin"

	"tradevault/internal/handler/ping"
)

// 全局中间件和基础路由，业务路由由router.ApiRouter加载
type middlewareRouter struct{}

func NewMiddleware() *middlewareRouter {
	return &middlewareRouter{}
}

func (m *middlewareRouter) Load(g *gin.Engine) {
	g.Use(gin.Recovery())
	g.Use(RequestId())
	g.Use(Logger)
	g.Use(NoCache())
	g.Use(Options())
	g.Use(Secure())

	// 健康检查，启动探活依赖这个路由
	g.GET("/ping", ping.Ping())
}
