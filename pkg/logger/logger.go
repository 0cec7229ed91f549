package logger

import (
	"os"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tradevault/conf"
)

var lg *zap.Logger

// InitLogger 初始化全局logger，文件输出走lumberjack滚动
func InitLogger(cfg *conf.LogConfig, appName string) {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = "2006-01-02 15:04:05.000"
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format(timeFormat))
	}
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	cores := make([]zapcore.Core, 0, 2)
	if cfg.FileName != "" {
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.FileName,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
			LocalTime:  cfg.LocalTime,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), fileWriter, level))
	}
	if cfg.Console || cfg.FileName == "" {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stdout), level))
	}

	lg = zap.New(zapcore.NewTee(cores...), zap.AddCallerSkip(1), zap.AddCaller()).
		Named(appName)
	zap.ReplaceGlobals(lg)
}

func l() *zap.Logger {
	if lg == nil {
		// 未初始化时退化到默认logger，避免启动早期打日志panic
		lg, _ = zap.NewProduction(zap.AddCallerSkip(1))
	}
	return lg
}

// Pair 构造一个结构化字段
func Pair(key string, value interface{}) zap.Field {
	return zap.Any(key, value)
}

func Debug(msg string, fields ...zap.Field) { l().Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { l().Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { l().Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { l().Error(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { l().Fatal(msg, fields...) }

func Debugf(format string, args ...interface{}) { l().Sugar().Debugf(format, args...) }
func Infof(format string, args ...interface{})  { l().Sugar().Infof(format, args...) }
func Warnf(format string, args ...interface{})  { l().Sugar().Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { l().Sugar().Errorf(format, args...) }
func Fatalf(format string, args ...interface{}) { l().Sugar().Fatalf(format, args...) }

// Sync 进程退出前刷盘
func Sync() {
	if lg != nil {
		_ = lg.Sync()
	}
}
