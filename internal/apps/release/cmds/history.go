package release

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/deak-ai/openehr-mcp-server/internal/state"
	"github.com/deak-ai/openehr-mcp-server/internal/ui"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var repoPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past version advances for this repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := state.DefaultReleaseLog(cmd.Context())
			if err != nil {
				return err
			}

			project, err := filepath.Abs(repoPath)
			if err != nil {
				project = repoPath
			}

			releases, err := log.List(cmd.Context(), project, limit)
			if err != nil {
				return err
			}
			if len(releases) == 0 {
				fmt.Println("No releases recorded yet.")
				return nil
			}

			table := ui.NewTable(
				ui.Column{Header: "VERSION"},
				ui.Column{Header: "TAG"},
				ui.Column{Header: "COMMIT"},
				ui.Column{Header: "WHEN"},
			)
			for _, r := range releases {
				table.AddRow(r.Version, r.Tag, r.CommitHash, r.CreatedAt.Local().Format(time.DateTime))
			}
			table.Render(os.Stdout)

			return nil
		},
	}

	cmd.Flags().StringVar(&repoPath, "repo", ".", "Repository root")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many entries (0 means all)")

	return cmd
}
