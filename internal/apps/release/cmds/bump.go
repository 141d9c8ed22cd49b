package release

import (
	"fmt"
	"path/filepath"

	releaseconfig "github.com/deak-ai/openehr-mcp-server/internal/apps/release/config"
	"github.com/deak-ai/openehr-mcp-server/internal/advancer"
	"github.com/deak-ai/openehr-mcp-server/internal/gitops"
	"github.com/deak-ai/openehr-mcp-server/internal/logs"
	"github.com/deak-ai/openehr-mcp-server/internal/record"
	"github.com/deak-ai/openehr-mcp-server/internal/state"
	"github.com/deak-ai/openehr-mcp-server/internal/versions"
	"github.com/spf13/cobra"
)

type bumpOptions struct {
	RepoPath     string
	VersionFile  string
	Yes          bool
	RequireNewer bool
}

func newBumpCmd() *cobra.Command {
	opts := &bumpOptions{}

	cmd := &cobra.Command{
		Use:   "bump VERSION",
		Short: "Advance the recorded version, commit and tag it",
		Long: `Advance the project version to VERSION (MAJOR.MINOR.PATCH, with an
optional -PRERELEASE of alphanumerics and dots).

The version file is rewritten, committed as "Bump version to VERSION"
and tagged v<VERSION> with an annotated tag. Nothing is pushed; the
follow-up commands are printed instead.

There is no rollback across the three steps: if the commit or tag
fails, the rewritten version file stays in place and the operator
reconciles by re-running or by hand.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proposed := args[0]

			// Validate before prompting so a typo fails immediately.
			if _, err := versions.Parse(proposed); err != nil {
				return err
			}

			store, err := record.NewFileStore(filepath.Join(opts.RepoPath, opts.VersionFile))
			if err != nil {
				return err
			}
			repo, err := gitops.Open(opts.RepoPath)
			if err != nil {
				return err
			}

			current, err := store.Load()
			if err != nil {
				return err
			}

			if !opts.Yes {
				ok, err := logs.PromptConfirm(fmt.Sprintf("Bump version %s -> %s?", current, proposed))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Aborted. Pass --yes to bump without the prompt.")
					return nil
				}
			}

			adv, err := advancer.New(advancer.Config{
				Store:        store,
				Git:          repo,
				RecordPath:   opts.VersionFile,
				RequireNewer: opts.RequireNewer,
			})
			if err != nil {
				return err
			}

			v, err := adv.Advance(proposed)
			if err != nil {
				return err
			}

			recordHistory(cmd, opts.RepoPath, repo, v)

			logs.Banner("Version " + v.String())
			fmt.Printf("Recorded %s, committed and tagged %s.\n", v, v.TagName())
			fmt.Println("")
			fmt.Println("To publish the release:")
			fmt.Printf("  git push origin %s\n", v.TagName())
			fmt.Println("  git push")
			fmt.Println("  release build --push")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&opts.RequireNewer, "require-newer", false, "Fail unless VERSION orders after the recorded version")
	cmd.Flags().StringVar(&opts.RepoPath, "repo", ".", "Repository root")
	cmd.Flags().StringVar(&opts.VersionFile, "version-file", releaseconfig.DefaultVersionFile, "Version record path, relative to the repository root")

	return cmd
}

// recordHistory appends the advance to the local release log. Best-effort:
// the bump already succeeded, a logging failure must not undo that.
func recordHistory(cmd *cobra.Command, repoPath string, git gitops.Git, v versions.Version) {
	ctx := cmd.Context()

	log, err := state.DefaultReleaseLog(ctx)
	if err != nil {
		logs.Warnf("release history unavailable: %v", err)
		return
	}

	hash, err := git.ShortHead()
	if err != nil {
		logs.Warnf("release history: resolve revision: %v", err)
		return
	}

	project, err := filepath.Abs(repoPath)
	if err != nil {
		project = repoPath
	}

	if err := log.Record(ctx, state.Release{
		Project:    project,
		Version:    v.String(),
		Tag:        v.TagName(),
		CommitHash: hash,
	}); err != nil {
		logs.Warnf("release history not recorded: %v", err)
	}
}
