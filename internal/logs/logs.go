package logs

import (
	"os"
	"sync"

	"github.com/deak-ai/openehr-mcp-server/internal/ui"
)

var (
	initOnce sync.Once
	logger   *ui.Logger
)

func Init() {
	initOnce.Do(func() {
		opts := ui.Options{
			Out:      os.Stdout,
			LogLevel: ui.LogLevelWarn,
		}
		logger = ui.New(opts)
	})
}

func L() *ui.Logger {
	Init()
	return logger
}

func SetDebugVerbosity(cnt int) {
	switch {
	case cnt <= 0:
		L().SetLogLevel(ui.LogLevelWarn)
	case cnt == 1:
		L().SetLogLevel(ui.LogLevelDebug)
	default:
		L().SetLogLevel(ui.LogLevelDebugVerbose)
	}
}

func Banner(title string) {
	L().Banner(title)
}

func Infof(format string, args ...any) {
	L().Info(format, args...)
}

func Debugf(format string, args ...any) {
	L().Debug(format, args...)
}

func Warnf(format string, args ...any) {
	L().Warn(format, args...)
}

func Errorf(format string, args ...any) {
	L().Error(format, args...)
}

func PromptConfirm(text string) (bool, error) {
	return L().Confirm(text)
}
