package logger

import (
	"go.uber.org/zap"
)

// ZapLogger реализует Logger поверх zap.SugaredLogger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger создает production-логгер (JSON, уровни от Info).
// При невозможности собрать zap возвращается no-op логгер, чтобы
// приложение не падало из-за логирования.
func NewZapLogger() *ZapLogger {
	z, err := zap.NewProduction(zap.AddCallerSkip(1))
	if err != nil {
		z = zap.NewNop()
	}

	return &ZapLogger{sugar: z.Sugar()}
}

// NewNopLogger возвращает логгер, отбрасывающий все сообщения. Для тестов.
func NewNopLogger() *ZapLogger {
	return &ZapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *ZapLogger) Infof(format string, args ...any) {
	l.sugar.Infof(format, args...)
}

func (l *ZapLogger) Warnf(format string, args ...any) {
	l.sugar.Warnf(format, args...)
}

// Errorf логирует ошибку вместе с форматированным сообщением.
func (l *ZapLogger) Errorf(err error, format string, args ...any) {
	l.sugar.With(zap.Error(err)).Errorf(format, args...)
}

// Sync сбрасывает буферы логгера. Вызывается при завершении процесса.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}
