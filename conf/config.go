package conf

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// 配置加载（数据库、MetaApi密钥等）

type Db struct {
	DbName   string `yaml:"dbname"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// MetaApi 券商桥接服务配置（MT5云端接入）
type MetaApi struct {
	BaseURL   string `yaml:"base_url"`
	Token     string `yaml:"token"`
	Region    string `yaml:"region"`
	Simulated bool   `yaml:"simulated"`
}

// IngestConfig 同步入库的并发配置
type IngestConfig struct {
	// 每个同步任务允许的最大并发写入数
	MaxConcurrentWrites int `yaml:"max-concurrent-writes"`
	// 单条写入的超时时间
	WriteTimeout time.Duration `yaml:"write-timeout"`
	// 初始全量同步回溯多久（0表示从epoch开始拉取）
	InitialLookback time.Duration `yaml:"initial-lookback"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	FileName   string `yaml:"file-name"`
	TimeFormat string `yaml:"time-format"`
	MaxSize    int    `yaml:"max-size"`
	MaxBackups int    `yaml:"max-backups"`
	MaxAge     int    `yaml:"max-age"`
	Compress   bool   `yaml:"compress"`
	LocalTime  bool   `yaml:"local-time"`
	Console    bool   `yaml:"console"`
}

// RedisConfig is used to configure redis
type RedisConfig struct {
	Addr         string `yaml:"address"`
	Password     string `yaml:"password"`
	Db           int    `yaml:"db"`
	PoolSize     int    `yaml:"pool-size"`
	MinIdleConns int    `yaml:"min-idle-conns"`
	IdleTimeout  int    `yaml:"idle-timeout"`
}

type JwtConfig struct {
	Secret                  string `yaml:"secret"`
	JwtTtl                  int64  `yaml:"ttl"`              // token 有效期（秒）
	JwtBlacklistGracePeriod int64  `yaml:"blacklistperiod" ` // 黑名单宽限时间（秒）
}

type KafkaConfig struct {
	Broker string `yaml:"broker"`
}

type EmailConfig struct {
	Host     string `yaml:"smtp_host"`
	Port     int    `yaml:"smtp_port"`
	Username string `yaml:"smtp_user"`
	Password string `yaml:"smtp_password"`
	Sender   string `yaml:"smtp_sender"`
	PreCheck bool   `yaml:"precheck"`
}

type Config struct {
	AppName      string `yaml:"app_name"`
	Listen       string `yaml:"listen"`
	Mode         string `yaml:"mode"`
	Language     string `yaml:"language"`
	MaxPingCount int    `yaml:"max-ping-count"`
	ExternalURL  string `yaml:"external_url"`

	MetaApi MetaApi      `yaml:"metaapi"`
	Db      `yaml:"database"`
	Ingest  IngestConfig `yaml:"ingest"`
	Log     LogConfig    `yaml:"log"`
	Jwt     JwtConfig    `yaml:"jwt"`
	Redis   RedisConfig  `yaml:"redis"`
	Email   EmailConfig  `yaml:"email"`
	Kafka   KafkaConfig  `yaml:"kafka"`
}

var AppConfig Config

func LoadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Read config file error %w", err)
	}
	if err := yaml.Unmarshal(data, &AppConfig); err != nil {
		return fmt.Errorf("Unmarshal config yaml error: %w", err)
	}
	if AppConfig.Ingest.MaxConcurrentWrites <= 0 {
		AppConfig.Ingest.MaxConcurrentWrites = 8
	}
	if AppConfig.Ingest.WriteTimeout <= 0 {
		AppConfig.Ingest.WriteTimeout = 10 * time.Second
	}
	return nil
}
