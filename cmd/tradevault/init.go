package api

import (
	"gorm.io/gorm"

	"tradevault/conf"
	"tradevault/internal/broker/metaapi"
	"tradevault/internal/dao/query"
	"tradevault/internal/handler/broker"
	"tradevault/internal/handler/journal"
	"tradevault/internal/handler/plan"
	"tradevault/internal/handler/setup"
	"tradevault/internal/handler/user"
	"tradevault/internal/router"
	"tradevault/internal/service"
	"tradevault/pkg/kafka"
	"tradevault/pkg/logger"
)

// 入库报告生产者，进程退出时由CloseProducer统一关闭
var reportProducer kafka.ProducerService

func InitRouter(db *gorm.DB) Router {
	appCfg := conf.AppConfig

	ud := query.NewUserDao(db)
	jd := query.NewJournalDao(db)
	sd := query.NewSetupDao(db)
	pd := query.NewPlanDao(db)
	bd := query.NewBrokerDao(db)

	us := service.NewUserService(ud)
	js := service.NewJournalService(jd, sd)
	ss := service.NewSetupService(sd, jd)
	ps := service.NewPlanService(pd)

	// 券商桥接客户端：模拟模式下不访问外部服务，方便本地联调
	var mtClient metaapi.Client
	if appCfg.MetaApi.Simulated {
		mtClient = metaapi.NewSimulatedClient()
	} else {
		c, err := metaapi.NewRestClient(appCfg.MetaApi.Token, appCfg.MetaApi.Region)
		if err != nil {
			logger.Fatalf("init metaapi client failed: %v", err)
		}
		mtClient = c
	}

	reportProducer = kafka.NewKafkaProducer(appCfg.Kafka.Broker)

	// websocket网关，同步进度通过它推送给前端
	gateway := broker.NewSyncGateway()

	bs := service.NewBrokerService(bd, jd, sd, mtClient, reportProducer, gateway)

	userH := user.NewUserHandler(us)
	journalH := journal.NewJournalHandler(js)
	setupH := setup.NewSetupHandler(ss)
	planH := plan.NewPlanHandler(ps)
	brokerH := broker.NewBrokerHandler(bs)

	return router.NewApiRouter(userH, journalH, setupH, planH, brokerH, gateway)
}

// CloseProducer 关闭kafka生产者，注册到Server的shutdown回调里
func CloseProducer() {
	if reportProducer != nil {
		reportProducer.Close()
	}
}
