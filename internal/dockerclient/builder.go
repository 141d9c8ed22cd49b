package dockerclient

import (
	"archive/tar"
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/docker/docker/api/types/build"
	sdkimage "github.com/docker/go-sdk/image"
)

type DockerImageBuilder interface {
	BuildImage(ctx context.Context, contextDir, dockerfile, ref string) error
}

// BuildImage builds one image from the given context directory and tags it
// as ref. All further tags are aliases of this single artifact.
func (dc *dockerClient) BuildImage(ctx context.Context, contextDir, dockerfile, ref string) error {
	buildContext, err := tarDirectory(contextDir)
	if err != nil {
		return fmt.Errorf("build context: %w", err)
	}

	_, err = sdkimage.Build(
		ctx,
		buildContext,
		ref,
		sdkimage.WithBuildClient(dc.client),
		sdkimage.WithBuildOptions(build.ImageBuildOptions{
			Dockerfile: dockerfile,
			Remove:     true, // remove intermediate containers
		}),
	)
	if err != nil {
		return fmt.Errorf("image build: %w", err)
	}

	return nil
}

// tarDirectory packs dir into an in-memory tar stream with slash-separated
// paths relative to dir. The .git directory is skipped; everything else in
// the context is the build's business, not ours.
func tarDirectory(dir string) (io.Reader, error) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if d.IsDir() && d.Name() == ".git" {
			return filepath.SkipDir
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() && !info.IsDir() {
			// sockets, devices, symlinks: not part of a build context we support
			return nil
		}

		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(rel)
		if info.IsDir() {
			header.Name += "/"
		}

		if err := tw.WriteHeader(header); err != nil {
			return fmt.Errorf("write tar header %s: %w", header.Name, err)
		}
		if info.IsDir() {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		if _, err := io.Copy(tw, f); err != nil {
			return fmt.Errorf("write %s: %w", header.Name, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := tw.Close(); err != nil {
		return nil, fmt.Errorf("close tar: %w", err)
	}
	return &buf, nil
}
