// Package runtime owns the process lifecycle of the release tool: the root
// context, interrupt handling and the final exit path.
package runtime

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/deak-ai/openehr-mcp-server/internal/logs"
)

type Runtime struct {
	ctx        context.Context
	cancelFunc context.CancelFunc
	stopSignal context.CancelFunc
}

// NewRuntime builds the root runtime. The context is cancelled on SIGINT or
// SIGTERM; commands pick it up via cobra's ExecuteContext.
func NewRuntime() *Runtime {
	baseCtx, cancel := context.WithCancel(context.Background())
	signalCtx, stopSignal := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM)

	return &Runtime{
		ctx:        signalCtx,
		cancelFunc: cancel,
		stopSignal: stopSignal,
	}
}

func (rt *Runtime) Ctx() context.Context {
	return rt.ctx
}

func (rt *Runtime) CancelCtx() {
	rt.cancelFunc()
}

// Finalize handles both panic and normal exit; call it in a defer at the
// top of main. A non-nil *execErr exits non-zero.
func (rt *Runtime) Finalize(appName, helpHint string, execErr *error) {
	if r := recover(); r != nil {
		fmt.Fprintf(os.Stderr, "%s panic: %v\n", appName, r)
		fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
		if helpHint != "" {
			fmt.Fprintln(os.Stderr, helpHint)
		}

		rt.stopSignal()
		rt.CancelCtx()
		os.Exit(1)
	}

	rt.stopSignal()
	rt.CancelCtx()

	if execErr != nil && *execErr != nil {
		logs.Errorf("%s error: %v", appName, *execErr)
		if helpHint != "" {
			fmt.Fprintln(os.Stderr, helpHint)
		}
		os.Exit(1)
	}
}
