// Package logger предоставляет общий интерфейс логирования приложения.
package logger

// Logger — интерфейс логгера, внедряемый во все слои приложения.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
}
