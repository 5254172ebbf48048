package logger

import (
	"go.uber.org/zap"
)

type Field = zap.Field

func String(key, val string) Field  { return zap.String(key, val) }
func Int(key string, val int) Field { return zap.Int(key, val) }
func Error(err error) Field         { return zap.Error(err) }
func Any(key string, val any) Field { return zap.Any(key, val) }

type ILogger interface {
	Info(msg string, fields ...Field)
	Warning(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

type logger struct {
	zap *zap.Logger
}

func (l logger) Info(msg string, fields ...Field)    { l.zap.Info(msg, fields...) }
func (l logger) Warning(msg string, fields ...Field) { l.zap.Warn(msg, fields...) }
func (l logger) Error(msg string, fields ...Field)   { l.zap.Error(msg, fields...) }

// New builds a namespaced logger writing structured lines to stdout.
func New(namespace string) ILogger {
	return logger{zap: newZapLogger(namespace)}
}

func newZapLogger(namespace string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.InitialFields = map[string]interface{}{
		"namespace": namespace,
	}

	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return l
}

// Nop returns a logger that discards everything; test wiring uses it.
func Nop() ILogger {
	return logger{zap: zap.NewNop()}
}
