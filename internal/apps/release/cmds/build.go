package release

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	releaseconfig "github.com/deak-ai/openehr-mcp-server/internal/apps/release/config"
	"github.com/deak-ai/openehr-mcp-server/internal/dockerclient"
	"github.com/deak-ai/openehr-mcp-server/internal/gitops"
	"github.com/deak-ai/openehr-mcp-server/internal/imageplan"
	"github.com/deak-ai/openehr-mcp-server/internal/logs"
	"github.com/deak-ai/openehr-mcp-server/internal/record"
	"github.com/deak-ai/openehr-mcp-server/internal/versions"
	"github.com/spf13/cobra"
)

type buildOptions struct {
	RepoPath    string
	VersionFile string
	Image       string
	ContextDir  string
	Dockerfile  string
	Push        bool
	Latest      bool
}

func newBuildCmd() *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the container image and apply the derived tags",
		Long: `Build the container image for the recorded version and tag it with
the derived tag set: the version itself, version-revision, and the
major-line alias MAJOR-latest. --latest adds the plain latest tag.

With --push the tags are also pushed. A push failure never undoes the
local tags; every tag is attempted and the failures are reported
together.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := record.NewFileStore(filepath.Join(opts.RepoPath, opts.VersionFile))
			if err != nil {
				return err
			}
			raw, err := store.Load()
			if err != nil {
				return err
			}
			v, err := versions.Parse(raw)
			if err != nil {
				return fmt.Errorf("release: version record %q: %w", raw, err)
			}

			repo, err := gitops.Open(opts.RepoPath)
			if err != nil {
				return err
			}
			revision, err := repo.ShortHead()
			if err != nil {
				return err
			}

			tags := imageplan.Plan(v, revision, opts.Latest)

			fmt.Println("Building with tags:")
			for _, tag := range tags {
				fmt.Printf("  %s:%s\n", opts.Image, tag)
			}

			var docker dockerclient.DockerClient
			docker, err = dockerclient.DefaultDockerClient()
			if err != nil {
				return err
			}

			applier, err := imageplan.NewApplier(imageplan.Config{
				Builder:   docker,
				Tagger:    docker,
				Pusher:    docker,
				Inspector: docker,
			})
			if err != nil {
				return err
			}

			err = applier.Apply(cmd.Context(), imageplan.ApplyOptions{
				Image:      opts.Image,
				ContextDir: opts.ContextDir,
				Dockerfile: opts.Dockerfile,
				Tags:       tags,
				Push:       opts.Push,
			})
			if err != nil {
				var pushErr *imageplan.PushError
				if errors.As(err, &pushErr) {
					// Local image and tags are in place; only publishing failed.
					logs.Errorf("push failed for %s", strings.Join(pushErr.Tags, ", "))
					fmt.Println("Local tags were applied. Re-run with --push once the registry is reachable.")
					return nil
				}
				return err
			}

			if opts.Push {
				fmt.Printf("Built and pushed %d tags for %s.\n", len(tags), opts.Image)
			} else {
				fmt.Printf("Built %d local tags for %s. Re-run with --push to publish.\n", len(tags), opts.Image)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Push, "push", false, "Push the tags after building")
	cmd.Flags().BoolVar(&opts.Latest, "latest", false, "Also tag the image as latest")
	cmd.Flags().StringVar(&opts.Image, "image", releaseconfig.DefaultImage, "Image repository to tag")
	cmd.Flags().StringVar(&opts.ContextDir, "context", ".", "Build context directory")
	cmd.Flags().StringVar(&opts.Dockerfile, "dockerfile", "Dockerfile", "Dockerfile path, relative to the build context")
	cmd.Flags().StringVar(&opts.RepoPath, "repo", ".", "Repository root")
	cmd.Flags().StringVar(&opts.VersionFile, "version-file", releaseconfig.DefaultVersionFile, "Version record path, relative to the repository root")

	return cmd
}
