package log

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/kochabx/slydepay/log/desensitize"
)

var global atomic.Pointer[Logger]

func init() {
	global.Store(New(WithLevel(zerolog.InfoLevel), WithDesensitize(desensitize.Default())))
}

// G returns the global logger
func G() *Logger {
	return global.Load()
}

// SetGlobalLogger replaces the global logger
func SetGlobalLogger(logger *Logger) {
	if logger != nil {
		global.Store(logger)
	}
}

// Debug 返回 debug 级别的日志事件
func Debug() *zerolog.Event {
	return G().Debug()
}

// Info 返回 info 级别的日志事件
func Info() *zerolog.Event {
	return G().Info()
}

// Warn 返回 warn 级别的日志事件
func Warn() *zerolog.Event {
	return G().Warn()
}

// Error 返回 error 级别的日志事件（带堆栈）
func Error() *zerolog.Event {
	return G().Error().Stack()
}
