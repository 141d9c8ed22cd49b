package release

import (
	"fmt"
	"path/filepath"

	releaseconfig "github.com/deak-ai/openehr-mcp-server/internal/apps/release/config"
	"github.com/deak-ai/openehr-mcp-server/internal/logs"
	"github.com/deak-ai/openehr-mcp-server/internal/record"
	"github.com/deak-ai/openehr-mcp-server/internal/versions"
	"github.com/spf13/cobra"
)

func newCurrentCmd() *cobra.Command {
	var repoPath string
	var versionFile string

	cmd := &cobra.Command{
		Use:   "current",
		Short: "Print the recorded version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := record.NewFileStore(filepath.Join(repoPath, versionFile))
			if err != nil {
				return err
			}
			raw, err := store.Load()
			if err != nil {
				return err
			}
			if _, err := versions.Parse(raw); err != nil {
				logs.Warnf("recorded version %q is not well-formed", raw)
			}
			fmt.Println(raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&repoPath, "repo", ".", "Repository root")
	cmd.Flags().StringVar(&versionFile, "version-file", releaseconfig.DefaultVersionFile, "Version record path, relative to the repository root")

	return cmd
}
