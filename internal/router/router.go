package router

import (
	"github.com/gin-gonic/gin"

	"tradevault/internal/handler/broker"
	"tradevault/internal/handler/journal"
	"tradevault/internal/handler/plan"
	"tradevault/internal/handler/setup"
	"tradevault/internal/handler/user"
	"tradevault/internal/middleware"
)

type ApiRouter struct {
	userHandler    *user.UserHandler
	journalHandler *journal.JournalHandler
	setupHandler   *setup.SetupHandler
	planHandler    *plan.PlanHandler
	brokerHandler  *broker.BrokerHandler
	syncGateway    *broker.SyncGateway
}

func NewApiRouter(
	userHandler *user.UserHandler,
	journalHandler *journal.JournalHandler,
	setupHandler *setup.SetupHandler,
	planHandler *plan.PlanHandler,
	brokerHandler *broker.BrokerHandler,
	syncGateway *broker.SyncGateway,
) *ApiRouter {
	return &ApiRouter{
		userHandler:    userHandler,
		journalHandler: journalHandler,
		setupHandler:   setupHandler,
		planHandler:    planHandler,
		brokerHandler:  brokerHandler,
		syncGateway:    syncGateway,
	}
}

func (api *ApiRouter) Load(g *gin.Engine) {
	base := g.Group("/api/v1")

	auth := base.Group("/auth")
	{
		auth.POST("/register", middleware.AntiDuplicateMiddleware(), api.userHandler.UserRegister())
		auth.POST("/login", api.userHandler.UserLogin())
		auth.GET("/active", api.userHandler.UserActiveChange())
		auth.POST("/forget", middleware.AntiDuplicateMiddleware(), api.userHandler.UserPasswordForget())
		auth.POST("/resetpassword", api.userHandler.UserPasswordReset())
		auth.GET("/captcha", api.userHandler.CaptchaGen())
	}

	u := base.Group("/user", middleware.AuthToken())
	{
		u.GET("/info", api.userHandler.UserGetInfo())
		u.POST("/logout", api.userHandler.UserLogout())
		u.GET("/authstatus", api.userHandler.UserAuthStatus())
		u.PUT("/email", api.userHandler.UserUpdateEmail())
		u.PUT("/password", api.userHandler.UserUpdatePassword())
		u.PUT("/name", api.userHandler.UserUpdateName())
		u.PUT("/subscription", api.userHandler.UserUpdateSubscription())
		u.PUT("/photo", api.userHandler.UserUpdatePhoto())
		u.POST("/active", middleware.AntiDuplicateMiddleware(), api.userHandler.UserActiveGen())
		u.DELETE("", api.userHandler.UserDelete())
	}

	j := base.Group("/journal", middleware.AuthToken())
	{
		j.POST("", api.journalHandler.JournalCreate())
		j.GET("", api.journalHandler.JournalList())
		j.GET("/:id", api.journalHandler.JournalGet())
		j.PUT("/:id", api.journalHandler.JournalEdit())
		j.DELETE("/:id", api.journalHandler.JournalDelete())
	}

	s := base.Group("/setup", middleware.AuthToken())
	{
		s.POST("", api.setupHandler.SetupCreate())
		s.GET("", api.setupHandler.SetupList())
		s.GET("/:id", api.setupHandler.SetupGet())
		s.PUT("/:id", api.setupHandler.SetupEdit())
		s.DELETE("/:id", api.setupHandler.SetupDelete())
		s.GET("/:id/metrics", api.setupHandler.SetupMetrics())
	}

	p := base.Group("/plan", middleware.AuthToken())
	{
		p.POST("", api.planHandler.PlanCreate())
		p.GET("", api.planHandler.PlanList())
		p.GET("/:id", api.planHandler.PlanGet())
		p.PUT("/:id", api.planHandler.PlanEdit())
		p.DELETE("/:id", api.planHandler.PlanDelete())
	}

	b := base.Group("/broker", middleware.AuthToken())
	{
		b.POST("", api.brokerHandler.BrokerLink())
		b.GET("", api.brokerHandler.BrokerList())
		b.DELETE("/:id", api.brokerHandler.BrokerUnlink())
		b.POST("/:id/sync", middleware.AntiDuplicateMiddleware(), api.brokerHandler.BrokerSync())
	}

	// 同步进度推送，token走query参数，不挂AuthToken中间件
	base.GET("/broker/sync/ws", api.syncGateway.ServeWS)
}
