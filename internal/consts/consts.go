package consts

import "time"

const (
	// RequestId 请求id名称
	RequestId   = "request_id"
	UserID      = "user_id"
	JWTTokenCtx = "token_ctx"

	UserInfoPrefix     = "User_Info_list:"
	CaptchaPrefix      = "Captcha_list:"
	SetupMetricsPrefix = "Setup_Metrics_snapshot:"
	SyncLockPrefix     = "Broker_Sync_lock:"

	// 默认redis过期时间
	RedisExrDefault = time.Hour * 24 * 5
	// 指标快照的缓存时间，接受短暂的过期窗口
	RedisExrMetrics = time.Second * 30
)

const (
	DateLayout   = "2006-01-02"
	TimeLayout   = "2006-01-02 15:04:05"
	TimeLayoutMs = "2006-01-02 15:04:05.000"
)

// 交易方向
const (
	TradeDirectionLong  = "long"
	TradeDirectionShort = "short"
)

// 日志条目状态：开仓中 / 已平仓
const (
	TradeStatusOpen   = "open"
	TradeStatusClosed = "closed"
)

// 执行质量的默认占位值，等待真实的评分器接入
const (
	DefaultEntryQuality = 1
	DefaultExitQuality  = 1
	DefaultGrade        = "F"
	// 默认交易时段占位
	DefaultMarketSession = "new york"
)

// 券商账户状态
const (
	BrokerAccountCreated  = "CREATED"
	BrokerAccountDeployed = "DEPLOYED"
	BrokerAccountFailed   = "FAILED"
)

// 订阅等级
const (
	SubscriptionFree = "free"
	SubscriptionPro  = "pro"
)

// kafka主题：同步完成后的入库报告
const (
	KafkaTopicIngestReport = "journal_ingest_report"
)
