package release

import (
	"github.com/deak-ai/openehr-mcp-server/internal/logs"
	"github.com/deak-ai/openehr-mcp-server/internal/runtime"
	"github.com/spf13/cobra"
)

var verbosity int

func Execute(rt *runtime.Runtime) error {
	rootCmd := &cobra.Command{
		Use:   "release",
		Short: "Release tooling for the openEHR MCP server",
		Long: `release advances the project's semantic version and builds the
multi-tagged container image for it.

A release is two steps, run in order:

  release bump 1.2.0       record the version, commit it, tag v1.2.0
  release build --push     build the image and push all derived tags

There is no transaction across the steps: whatever completed stays in
place if a later step fails, and re-running a bump of an already tagged
version fails instead of rewriting history.`,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logs.SetDebugVerbosity(verbosity)
			return nil
		},
		// we will handle that
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase verbosity level")

	rootCmd.AddCommand(newBumpCmd())
	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newCurrentCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd.ExecuteContext(rt.Ctx())
}
