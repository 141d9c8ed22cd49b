// Package gitops wraps the source-control capabilities the release tool
// consumes: staging, commits, annotated tags, and the current revision.
// It deliberately does not manage branches, remotes, or authentication.
package gitops

import (
	"errors"
	"fmt"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrTagExists means the requested tag name is already taken. Tags are
// immutable historical markers, so this is never silently overwritten.
var ErrTagExists = errors.New("tag already exists")

// ShortRevisionLen is the length of the revision identifier used in image tags.
const ShortRevisionLen = 7

// Fallback commit identity when the repository config carries none.
const (
	defaultAuthorName  = "release"
	defaultAuthorEmail = "release@localhost"
)

// Git is the source-control collaborator interface. Paths are relative to
// the worktree root.
type Git interface {
	Stage(path string) error
	Commit(message string) (string, error)
	TagExists(name string) (bool, error)
	CreateAnnotatedTag(name, message string) error
	ShortHead() (string, error)
}

// Repository implements Git on top of a go-git repository.
type Repository struct {
	repo *git.Repository
}

// Open opens the repository containing path, walking up to find .git the way
// the git CLI does.
func Open(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("gitops: open %s: %w", path, err)
	}
	return &Repository{repo: repo}, nil
}

// NewRepository wraps an already opened go-git repository. Used by tests with
// in-memory storage.
func NewRepository(repo *git.Repository) *Repository {
	return &Repository{repo: repo}
}

func (r *Repository) Stage(path string) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("gitops: worktree: %w", err)
	}
	if _, err := wt.Add(path); err != nil {
		return fmt.Errorf("gitops: stage %s: %w", path, err)
	}
	return nil
}

// Commit records the staged changes and returns the new commit hash.
func (r *Repository) Commit(message string) (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("gitops: worktree: %w", err)
	}

	hash, err := wt.Commit(message, &git.CommitOptions{Author: r.signature()})
	if err != nil {
		return "", fmt.Errorf("gitops: commit: %w", err)
	}
	return hash.String(), nil
}

func (r *Repository) TagExists(name string) (bool, error) {
	_, err := r.repo.Tag(name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, git.ErrTagNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("gitops: lookup tag %s: %w", name, err)
}

// CreateAnnotatedTag tags the current HEAD with an annotated tag carrying
// message. An existing tag of the same name fails with ErrTagExists.
func (r *Repository) CreateAnnotatedTag(name, message string) error {
	head, err := r.repo.Head()
	if err != nil {
		return fmt.Errorf("gitops: head: %w", err)
	}

	_, err = r.repo.CreateTag(name, head.Hash(), &git.CreateTagOptions{
		Tagger:  r.signature(),
		Message: message,
	})
	if err != nil {
		if errors.Is(err, git.ErrTagExists) {
			return fmt.Errorf("%w: %s", ErrTagExists, name)
		}
		return fmt.Errorf("gitops: create tag %s: %w", name, err)
	}
	return nil
}

// ShortHead returns the short identifier of the current revision.
func (r *Repository) ShortHead() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("gitops: head: %w", err)
	}
	return head.Hash().String()[:ShortRevisionLen], nil
}

// signature builds the commit/tag identity from the repository config,
// falling back to a fixed identity so commits never fail on a bare config.
func (r *Repository) signature() *object.Signature {
	name, email := defaultAuthorName, defaultAuthorEmail

	if cfg, err := r.repo.ConfigScoped(config.GlobalScope); err == nil {
		if cfg.User.Name != "" {
			name = cfg.User.Name
		}
		if cfg.User.Email != "" {
			email = cfg.User.Email
		}
	}

	return &object.Signature{
		Name:  name,
		Email: email,
		When:  time.Now(),
	}
}
