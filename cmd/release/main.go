package main

import (
	release "github.com/deak-ai/openehr-mcp-server/internal/apps/release/cmds"
	"github.com/deak-ai/openehr-mcp-server/internal/runtime"
)

func main() {
	var execErr error

	rt := runtime.NewRuntime()
	defer rt.Finalize("release", "Type 'release help' to get help.", &execErr)

	execErr = release.Execute(rt)
}
