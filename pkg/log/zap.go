package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // debug | production
	Encoding     string // console | json
	ColorEnabled bool

	// Optional rotated file sink. Empty FilePath logs to stdout only.
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Init builds the process-wide Logger from config.
func Init(cfg ZapConfig) Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	if cfg.Mode == "debug" {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding == "console" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	sink := zapcore.Lock(os.Stdout)
	ws := zapcore.WriteSyncer(sink)
	if cfg.FilePath != "" {
		fileSink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		})
		ws = zapcore.NewMultiWriteSyncer(sink, fileSink)
	}

	core := zapcore.NewCore(encoder, ws, parseLevel(cfg.Level))

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if cfg.Mode == "debug" {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{s: zap.New(core, opts...).Sugar()}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

type zapLogger struct {
	s *zap.SugaredLogger
}

func (l *zapLogger) Debug(ctx context.Context, arg ...any) { l.s.Debug(arg...) }
func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.s.Debugf(template, arg...)
}
func (l *zapLogger) Info(ctx context.Context, arg ...any) { l.s.Info(arg...) }
func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.s.Infof(template, arg...)
}
func (l *zapLogger) Warn(ctx context.Context, arg ...any) { l.s.Warn(arg...) }
func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.s.Warnf(template, arg...)
}
func (l *zapLogger) Error(ctx context.Context, arg ...any) { l.s.Error(arg...) }
func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.s.Errorf(template, arg...)
}
func (l *zapLogger) Fatal(ctx context.Context, arg ...any) { l.s.Fatal(arg...) }
func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.s.Fatalf(template, arg...)
}
func (l *zapLogger) DPanic(ctx context.Context, arg ...any) { l.s.DPanic(arg...) }
func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.s.DPanicf(template, arg...)
}
func (l *zapLogger) Panic(ctx context.Context, arg ...any) { l.s.Panic(arg...) }
func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.s.Panicf(template, arg...)
}
